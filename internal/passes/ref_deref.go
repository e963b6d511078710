package passes

import (
	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/program"
)

// RefDeref normalizes the remaining address-of/deref combinations
// SimplifyExpressions' local folding does not reach: a StructElementExpr
// whose base is a DerefExpr becomes an ArrowExpr, turning "(*p).field" into
// the idiomatic "p->field" (spec.md §4.4 item 7).
func RefDeref(prog *program.Program) {
	prog.RequirePass(program.PassRefDeref, program.PassDeleteUnusedVariables)

	for _, llvmFunc := range prog.Module.Funcs {
		fn, ok := prog.GetFunction(llvmFunc)
		if !ok {
			continue
		}
		for _, block := range fn.Blocks {
			for i, stmt := range block.Exprs {
				block.Exprs[i] = refDerefStmt(prog, stmt)
			}
		}
	}

	prog.AddPass(program.PassRefDeref)
}

func refDerefStmt(prog *program.Program, e cir.Expr) cir.Expr {
	switch v := e.(type) {
	case *cir.IfExpr:
		v.Cond = refDerefExpr(prog, v.Cond)
		refDerefList(prog, v.TrueList)
		refDerefList(prog, v.FalseList)
		return v
	case *cir.SwitchExpr:
		v.Cond = refDerefExpr(prog, v.Cond)
		for i := range v.Cases {
			refDerefList(prog, v.Cases[i].Body)
		}
		if v.Default != nil {
			refDerefList(prog, v.Default)
		}
		return v
	case *cir.ExprList:
		refDerefList(prog, v)
		return v
	default:
		return refDerefExpr(prog, e)
	}
}

func refDerefList(prog *program.Program, list *cir.ExprList) {
	for i, c := range list.Children {
		list.Children[i] = refDerefStmt(prog, c)
	}
}

func refDerefExpr(prog *program.Program, e cir.Expr) cir.Expr {
	switch v := e.(type) {
	case *cir.StructElementExpr:
		v.Expr = refDerefExpr(prog, v.Expr)
		if d, ok := v.Expr.(*cir.DerefExpr); ok {
			return prog.AddOwnership(cir.NewArrowExpr(d.Expr, v.Struct, v.Element))
		}
		return v

	case *cir.ArrowExpr:
		v.Expr = refDerefExpr(prog, v.Expr)
		return v

	case *cir.RefExpr:
		v.Expr = refDerefExpr(prog, v.Expr)
		if d, ok := v.Expr.(*cir.DerefExpr); ok {
			return d.Expr
		}
		return v

	case *cir.DerefExpr:
		v.Expr = refDerefExpr(prog, v.Expr)
		if r, ok := v.Expr.(*cir.RefExpr); ok {
			return r.Expr
		}
		return v

	case *cir.ArrayElementExpr:
		v.Expr = refDerefExpr(prog, v.Expr)
		v.Index = refDerefExpr(prog, v.Index)
		return v

	case *cir.PointerShiftExpr:
		v.BaseExpr = refDerefExpr(prog, v.BaseExpr)
		v.Offset = refDerefExpr(prog, v.Offset)
		return v

	case *cir.CastExpr:
		v.Expr = refDerefExpr(prog, v.Expr)
		return v

	case *cir.SelectExpr:
		v.Cond = refDerefExpr(prog, v.Cond)
		v.Left = refDerefExpr(prog, v.Left)
		v.Right = refDerefExpr(prog, v.Right)
		return v

	case *cir.CallExpr:
		if v.Callee != nil {
			v.Callee = refDerefExpr(prog, v.Callee)
		}
		for i := range v.Args {
			v.Args[i] = refDerefExpr(prog, v.Args[i])
		}
		return v

	case *cir.AggregateInitializer:
		for i := range v.Values {
			v.Values[i] = refDerefExpr(prog, v.Values[i])
		}
		return v

	case *cir.RetExpr:
		if v.Expr != nil {
			v.Expr = refDerefExpr(prog, v.Expr)
		}
		return v

	case binaryNode:
		l, r := v.Operands()
		v.SetOperands(refDerefExpr(prog, l), refDerefExpr(prog, r))
		return e

	default:
		return e
	}
}
