package passes

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"

	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/program"
)

// DeleteUnusedVariables removes the StackAlloc declaration and Store
// statement for every local whose alloca has exactly one use, that use being
// a Store where the alloca supplies the pointer (destination) operand, not
// the stored value — a write-only local nothing ever reads back
// (original_source/parser/deleteUnusedVariables.cpp).
func DeleteUnusedVariables(prog *program.Program) {
	prog.RequirePass(program.PassDeleteUnusedVariables, program.PassSimplifyExpressions)

	for _, llvmFunc := range prog.Module.Funcs {
		fn, ok := prog.GetFunction(llvmFunc)
		if !ok {
			continue
		}
		for _, blk := range llvmFunc.Blocks {
			for _, inst := range blk.Insts {
				alloca, ok := inst.(*ir.InstAlloca)
				if !ok {
					continue
				}
				count, soleStore := allocaUsage(llvmFunc, alloca)
				if count != 1 || soleStore == nil {
					continue
				}
				removeDeclAndStore(prog, fn, alloca)
			}
		}
	}

	prog.AddPass(program.PassDeleteUnusedVariables)
}

// allocaUsage scans every instruction and terminator operand in fn for
// references to target, returning the total use count and, if the sole use
// is a Store with target as the destination operand, that Store.
func allocaUsage(fn *ir.Func, target *ir.InstAlloca) (count int, soleStore *ir.InstStore) {
	check := func(v value.Value) {
		if v == value.Value(target) {
			count++
		}
	}

	for _, blk := range fn.Blocks {
		for _, inst := range blk.Insts {
			switch in := inst.(type) {
			case *ir.InstLoad:
				check(in.Src)
			case *ir.InstStore:
				if in.Dst == value.Value(target) {
					count++
					soleStore = in
				}
				check(in.Src)
			case *ir.InstGetElementPtr:
				check(in.Src)
				for _, idx := range in.Indices {
					check(idx)
				}
			case *ir.InstICmp:
				check(in.X)
				check(in.Y)
			case *ir.InstFCmp:
				check(in.X)
				check(in.Y)
			case *ir.InstSelect:
				check(in.Cond)
				check(in.X)
				check(in.Y)
			case *ir.InstCall:
				check(in.Callee)
				for _, a := range in.Args {
					check(a)
				}
			case *ir.InstPhi:
				for _, inc := range in.Incs {
					check(inc.X)
				}
			case *ir.InstExtractValue:
				check(in.X)
			case *ir.InstAdd:
				check(in.X)
				check(in.Y)
			case *ir.InstFAdd:
				check(in.X)
				check(in.Y)
			case *ir.InstSub:
				check(in.X)
				check(in.Y)
			case *ir.InstFSub:
				check(in.X)
				check(in.Y)
			case *ir.InstMul:
				check(in.X)
				check(in.Y)
			case *ir.InstFMul:
				check(in.X)
				check(in.Y)
			case *ir.InstUDiv:
				check(in.X)
				check(in.Y)
			case *ir.InstSDiv:
				check(in.X)
				check(in.Y)
			case *ir.InstFDiv:
				check(in.X)
				check(in.Y)
			case *ir.InstURem:
				check(in.X)
				check(in.Y)
			case *ir.InstSRem:
				check(in.X)
				check(in.Y)
			case *ir.InstFRem:
				check(in.X)
				check(in.Y)
			case *ir.InstAnd:
				check(in.X)
				check(in.Y)
			case *ir.InstOr:
				check(in.X)
				check(in.Y)
			case *ir.InstXor:
				check(in.X)
				check(in.Y)
			case *ir.InstShl:
				check(in.X)
				check(in.Y)
			case *ir.InstLShr:
				check(in.X)
				check(in.Y)
			case *ir.InstAShr:
				check(in.X)
				check(in.Y)
			case *ir.InstTrunc:
				check(in.From)
			case *ir.InstZExt:
				check(in.From)
			case *ir.InstSExt:
				check(in.From)
			case *ir.InstFPTrunc:
				check(in.From)
			case *ir.InstFPExt:
				check(in.From)
			case *ir.InstFPToUI:
				check(in.From)
			case *ir.InstFPToSI:
				check(in.From)
			case *ir.InstUIToFP:
				check(in.From)
			case *ir.InstSIToFP:
				check(in.From)
			case *ir.InstPtrToInt:
				check(in.From)
			case *ir.InstIntToPtr:
				check(in.From)
			case *ir.InstBitCast:
				check(in.From)
			case *ir.InstAddrSpaceCast:
				check(in.From)
			}
		}

		switch term := blk.Term.(type) {
		case *ir.TermRet:
			if term.X != nil {
				check(term.X)
			}
		case *ir.TermCondBr:
			check(term.Cond)
		case *ir.TermSwitch:
			check(term.X)
		}
	}

	return count, soleStore
}

// removeDeclAndStore drops the translated StackAlloc declaration and the
// Store's AssignExpr from fn's blocks, identified by pointer identity
// against the *cir.Value alloca was translated to: translateStore's
// derefLvalue collapses "*&v" back to v for a direct store into an alloca
// (passes/build.go), so the Store's AssignExpr.Left is that exact Value.
func removeDeclAndStore(prog *program.Program, fn *cir.Function, alloca *ir.InstAlloca) {
	target, ok := prog.GetExpr(alloca)
	if !ok {
		return
	}
	declValue, ok := target.(*cir.Value)
	if !ok {
		return
	}

	for _, block := range fn.Blocks {
		filtered := block.Exprs[:0]
		for _, stmt := range block.Exprs {
			if decl, ok := stmt.(*cir.StackAlloc); ok && decl.Var == declValue {
				continue
			}
			if assign, ok := stmt.(*cir.AssignExpr); ok {
				if l, _ := assign.Operands(); l == cir.Expr(declValue) {
					continue
				}
			}
			filtered = append(filtered, stmt)
		}
		block.Exprs = filtered
	}
}
