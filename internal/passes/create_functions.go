// Package passes implements the ordered Translation Pass Pipeline:
// CreateFunctions, CreateExpressions, FindMetadataFunctionNames, BlockLayout,
// SimplifyExpressions, DeleteUnusedVariables, RefDeref, and EmitPrepass
// (spec.md §4.4). Every pass function asserts its prerequisites through
// Program.RequirePass before doing any work.
package passes

import (
	"github.com/llir/llvm/ir"

	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/program"
)

// CreateFunctions allocates a cir.Function (with translated signature and
// one cir.Block per LLVM basic block) for every function in the module,
// declarations included. Bodies are filled in by CreateExpressions.
func CreateFunctions(prog *program.Program) {
	for _, llvmFunc := range prog.Module.Funcs {
		sig := prog.Types.GetType(llvmFunc.Sig)

		fn := cir.NewFunction(llvmFunc.GlobalName, sig, nil)
		fn.IsDeclaration = len(llvmFunc.Blocks) == 0

		params := make([]*cir.Value, 0, len(llvmFunc.Params))
		for i, p := range llvmFunc.Params {
			paramType := sig.Params[i]
			v := cir.NewValue(fn.NextVarName(), paramType)
			prog.AddExpr(p, v)
			params = append(params, v)
		}
		fn.Params = params

		for _, llvmBlock := range llvmFunc.Blocks {
			block := cir.NewBlock(fn.NextBlockName())
			fn.Blocks = append(fn.Blocks, block)
			prog.AddBlock(llvmBlock, block)
		}

		prog.AddFunction(llvmFunc, fn)

		if llvmFunc.Sig.Variadic {
			prog.HasVarArg = true
		}
	}

	prog.AddPass(program.PassCreateFunctions)
}

// blockOf is a small helper shared by CreateExpressions and later passes to
// resolve an LLVM basic block's already-created cir.Block.
func blockOf(prog *program.Program, b *ir.Block) *cir.Block {
	return prog.GetBlock(b)
}
