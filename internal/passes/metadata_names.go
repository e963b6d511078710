package passes

import (
	"regexp"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/metadata"

	"github.com/dshills/llvm2c/internal/program"
)

// metadataVarName matches the synthesized name shape NextVarName mints
// ("var<N>"), the collision FindMetadataFunctionNames guards against.
var metadataVarName = regexp.MustCompile(`^var[0-9]+$`)

// FindMetadataFunctionNames scans llvm.dbg.declare/llvm.dbg.value calls for
// each function's recovered source-level variable names (its
// DILocalVariable's Name field), registering any that collide with the
// var<N> synthesized shape so NextVarName skips that number (spec.md §4.4
// item 3).
func FindMetadataFunctionNames(prog *program.Program) {
	prog.RequirePass(program.PassFindMetadataFunctionNames, program.PassCreateExpressions)

	for _, llvmFunc := range prog.Module.Funcs {
		fn, ok := prog.GetFunction(llvmFunc)
		if !ok {
			continue
		}
		for _, block := range llvmFunc.Blocks {
			for _, inst := range block.Insts {
				call, ok := inst.(*ir.InstCall)
				if !ok {
					continue
				}
				f, ok := call.Callee.(*ir.Func)
				if !ok || (f.GlobalName != "llvm.dbg.declare" && f.GlobalName != "llvm.dbg.value") {
					continue
				}
				name := localVarName(call)
				if name != "" && metadataVarName.MatchString(name) {
					fn.AddMetadataVarName(name)
				}
			}
		}
	}

	prog.AddPass(program.PassFindMetadataFunctionNames)
}

// localVarName extracts the DILocalVariable operand's Name from an
// llvm.dbg.declare/llvm.dbg.value call, or "" if the metadata shape is not
// the documented one.
func localVarName(call *ir.InstCall) string {
	if len(call.Args) < 2 {
		return ""
	}
	mdArg, ok := call.Args[1].(*metadata.Value)
	if !ok {
		return ""
	}
	local, ok := mdArg.Value.(*metadata.DILocalVariable)
	if !ok {
		return ""
	}
	return local.Name
}
