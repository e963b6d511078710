package passes

import (
	"fmt"

	"github.com/llir/llvm/ir"

	"github.com/dshills/llvm2c/internal/cir"
)

// translateTerminator translates llvmBlock's terminator into the
// control-flow Expr appended last to its translated block, after that
// block's body and any phi assignments propagated into it.
func (b *exprBuilder) translateTerminator(block *cir.Block, llvmBlock *ir.Block) {
	switch term := llvmBlock.Term.(type) {
	case *ir.TermRet:
		var retExpr cir.Expr
		if term.X != nil {
			retExpr = b.resolve(term.X)
		}
		block.Append(b.own(cir.NewRetExpr(retExpr)))

	case *ir.TermBr:
		target := blockOf(b.prog, term.Target)
		target.AddPredecessorRef()
		block.Append(b.own(cir.NewGotoExpr(target)))

	case *ir.TermCondBr:
		cond := b.resolve(term.Cond)
		trueTarget := blockOf(b.prog, term.TargetTrue)
		falseTarget := blockOf(b.prog, term.TargetFalse)
		trueTarget.AddPredecessorRef()
		falseTarget.AddPredecessorRef()

		trueList := b.ownList(cir.NewGotoExpr(trueTarget))
		falseList := b.ownList(cir.NewGotoExpr(falseTarget))
		block.Append(b.own(cir.NewIfExpr(cond, trueList, falseList)))

	case *ir.TermSwitch:
		cond := b.resolve(term.X)
		cases := make([]cir.SwitchCase, 0, len(term.Cases))
		for _, c := range term.Cases {
			target := blockOf(b.prog, c.Target)
			target.AddPredecessorRef()
			cases = append(cases, cir.SwitchCase{
				Label: c.X.X.String(),
				Body:  b.ownList(cir.NewGotoExpr(target)),
			})
		}
		var def *cir.ExprList
		if term.TargetDefault != nil {
			dtarget := blockOf(b.prog, term.TargetDefault)
			dtarget.AddPredecessorRef()
			def = b.ownList(cir.NewGotoExpr(dtarget))
		}
		block.Append(b.own(cir.NewSwitchExpr(cond, cases, def)))

	case *ir.TermUnreachable:
		// No statement: a block ending in unreachable simply has no further
		// control-flow node (spec.md §8 boundary, "unreachable terminator").

	default:
		unsupported(b.fn.Name, fmt.Sprintf("terminator %T", llvmBlock.Term))
	}
}

// ownList builds a single-statement ExprList wrapping a goto, the shape
// every IfExpr arm and SwitchCase/default body takes once BlockLayout has not
// yet decided which blocks inline (spec.md §4.4 item 4 runs after this pass
// and may later fold the targeted block's body in directly).
func (b *exprBuilder) ownList(stmt cir.Expr) *cir.ExprList {
	list := cir.NewExprList([]cir.Expr{b.own(stmt)})
	b.own(list)
	return list
}
