package passes

import (
	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/program"
)

// binaryNode is satisfied by every two-operand Expr (arithmetic, bitwise,
// logical, comparison): all embed cir.binBase, which exposes Operands/
// SetOperands for exactly this kind of generic rewrite.
type binaryNode interface {
	Operands() (cir.Expr, cir.Expr)
	SetOperands(l, r cir.Expr)
}

// SimplifyExpressions rewrites the Expression IR in place: redundant casts
// (source and target type structurally equal) are dropped, zero-offset
// PointerShiftExpr collapses to its base, and "&*x"/"*&x" pairs fold to x
// (spec.md §4.4 item 5). It walks every statement reachable from a
// function's blocks, recursing into nested IfExpr/SwitchExpr bodies.
func SimplifyExpressions(prog *program.Program) {
	prog.RequirePass(program.PassSimplifyExpressions, program.PassBlockLayout)

	for _, llvmFunc := range prog.Module.Funcs {
		fn, ok := prog.GetFunction(llvmFunc)
		if !ok {
			continue
		}
		for _, block := range fn.Blocks {
			for i, stmt := range block.Exprs {
				block.Exprs[i] = simplifyStmt(stmt)
			}
		}
	}

	for _, gv := range prog.GlobalsInOrder() {
		if gv.Initializer != nil {
			gv.Initializer = simplifyExpr(gv.Initializer)
		}
	}

	prog.AddPass(program.PassSimplifyExpressions)
}

// simplifyStmt rewrites a block-level statement, recursing into any nested
// ExprList bodies (IfExpr/SwitchExpr arms) and into its own operand
// expressions.
func simplifyStmt(e cir.Expr) cir.Expr {
	switch v := e.(type) {
	case *cir.IfExpr:
		v.Cond = simplifyExpr(v.Cond)
		simplifyList(v.TrueList)
		simplifyList(v.FalseList)
		return v
	case *cir.SwitchExpr:
		v.Cond = simplifyExpr(v.Cond)
		for i := range v.Cases {
			simplifyList(v.Cases[i].Body)
		}
		if v.Default != nil {
			simplifyList(v.Default)
		}
		return v
	case *cir.ExprList:
		simplifyList(v)
		return v
	default:
		return simplifyExpr(e)
	}
}

func simplifyList(list *cir.ExprList) {
	for i, c := range list.Children {
		list.Children[i] = simplifyStmt(c)
	}
}

// simplifyExpr rewrites a value-producing (or assignment) expression tree,
// returning the replacement to substitute at its parent.
func simplifyExpr(e cir.Expr) cir.Expr {
	switch v := e.(type) {
	case *cir.CastExpr:
		v.Expr = simplifyExpr(v.Expr)
		if v.Type().Equal(v.Expr.Type()) {
			return v.Expr
		}
		return v

	case *cir.RefExpr:
		v.Expr = simplifyExpr(v.Expr)
		if d, ok := v.Expr.(*cir.DerefExpr); ok {
			return d.Expr
		}
		return v

	case *cir.DerefExpr:
		v.Expr = simplifyExpr(v.Expr)
		if r, ok := v.Expr.(*cir.RefExpr); ok {
			return r.Expr
		}
		return v

	case *cir.PointerShiftExpr:
		v.BaseExpr = simplifyExpr(v.BaseExpr)
		v.Offset = simplifyExpr(v.Offset)
		if v.IsZeroOffset() {
			return v.BaseExpr
		}
		return v

	case *cir.ArrayElementExpr:
		v.Expr = simplifyExpr(v.Expr)
		v.Index = simplifyExpr(v.Index)
		return v

	case *cir.StructElementExpr:
		v.Expr = simplifyExpr(v.Expr)
		return v

	case *cir.ArrowExpr:
		v.Expr = simplifyExpr(v.Expr)
		return v

	case *cir.SelectExpr:
		v.Cond = simplifyExpr(v.Cond)
		v.Left = simplifyExpr(v.Left)
		v.Right = simplifyExpr(v.Right)
		return v

	case *cir.CallExpr:
		if v.Callee != nil {
			v.Callee = simplifyExpr(v.Callee)
		}
		for i := range v.Args {
			v.Args[i] = simplifyExpr(v.Args[i])
		}
		return v

	case *cir.AggregateInitializer:
		for i := range v.Values {
			v.Values[i] = simplifyExpr(v.Values[i])
		}
		return v

	case *cir.RetExpr:
		if v.Expr != nil {
			v.Expr = simplifyExpr(v.Expr)
		}
		return v

	case binaryNode:
		l, r := v.Operands()
		v.SetOperands(simplifyExpr(l), simplifyExpr(r))
		return e

	default:
		return e
	}
}
