package passes

import (
	"github.com/dshills/llvm2c/internal/program"
)

// BlockLayout decides which blocks the Emitter inlines at their single
// goto site instead of printing as a labeled "goto" target: exactly the
// blocks with one static predecessor reference (spec.md §3 invariant 5,
// testable property 3), unless forceLabels keeps every block printed with
// its own label (useful for debugging the translation itself).
func BlockLayout(prog *program.Program, forceLabels bool) {
	prog.RequirePass(program.PassBlockLayout, program.PassFindMetadataFunctionNames)

	if !forceLabels {
		for _, llvmFunc := range prog.Module.Funcs {
			fn, ok := prog.GetFunction(llvmFunc)
			if !ok {
				continue
			}
			for _, block := range fn.Blocks {
				block.DoInline = block.PredecessorRefs() == 1
			}
		}
	}

	prog.AddPass(program.PassBlockLayout)
}
