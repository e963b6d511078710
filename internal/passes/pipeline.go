package passes

import "github.com/dshills/llvm2c/internal/program"

// Options controls optional behavior of the Pass Pipeline and Emitter that
// is not dictated by the input IR itself (spec.md §6 CLI flags).
type Options struct {
	// ForceBlockLabels keeps every block's own "bb<N>:" label instead of
	// inlining single-predecessor blocks at their goto site.
	ForceBlockLabels bool
}

// Run executes the eight Translation Pass Pipeline stages in their mandated
// order, once, against a freshly constructed Program (spec.md §4.4). Each
// pass asserts its own prerequisite through Program.RequirePass; Run simply
// calls them in sequence.
func Run(prog *program.Program, opts Options) {
	CreateFunctions(prog)
	CreateExpressions(prog)
	FindMetadataFunctionNames(prog)
	BlockLayout(prog, opts.ForceBlockLabels)
	SimplifyExpressions(prog)
	DeleteUnusedVariables(prog)
	RefDeref(prog)
	EmitPrepass(prog)
}
