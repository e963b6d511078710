package passes

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"

	"github.com/dshills/llvm2c/internal/cir"
)

// translateICmp maps an integer comparison predicate to its C relational
// operator, casting both operands to an unsigned view of their type for the
// unsigned predicates (ULT/ULE/UGT/UGE) since ctype always interns integers
// signed by default.
func (b *exprBuilder) translateICmp(inst *ir.InstICmp) cir.Expr {
	x, y := b.resolve(inst.X), b.resolve(inst.Y)
	op, unsigned := icmpOp(inst.Pred)
	if unsigned {
		x = b.own(cir.NewCastExpr(x, x.Type().AsUnsigned()))
		y = b.own(cir.NewCastExpr(y, y.Type().AsUnsigned()))
	}
	return cir.NewCmpExpr(x, y, op, b.prog.Types.GetType(inst.Typ))
}

func icmpOp(pred enum.IPred) (op string, unsigned bool) {
	switch pred {
	case enum.IPredEQ:
		return "==", false
	case enum.IPredNE:
		return "!=", false
	case enum.IPredSGT:
		return ">", false
	case enum.IPredSGE:
		return ">=", false
	case enum.IPredSLT:
		return "<", false
	case enum.IPredSLE:
		return "<=", false
	case enum.IPredUGT:
		return ">", true
	case enum.IPredUGE:
		return ">=", true
	case enum.IPredULT:
		return "<", true
	case enum.IPredULE:
		return "<=", true
	default:
		unsupported("<icmp>", "unsupported integer predicate")
		return "", false
	}
}

// translateFCmp maps a floating comparison predicate to its C relational
// operator. The ordered/unordered distinction LLVM draws (oeq vs ueq, NaN
// handling) has no direct C equivalent; both map to the same operator,
// matching the documented supported subset (spec.md Non-goals: NaN-aware
// comparison semantics are out of scope).
func (b *exprBuilder) translateFCmp(inst *ir.InstFCmp) cir.Expr {
	x, y := b.resolve(inst.X), b.resolve(inst.Y)
	op := fcmpOp(inst.Pred)
	return cir.NewCmpExpr(x, y, op, b.prog.Types.GetType(inst.Typ))
}

func fcmpOp(pred enum.FPred) string {
	switch pred {
	case enum.FPredOEQ, enum.FPredUEQ:
		return "=="
	case enum.FPredONE, enum.FPredUNE:
		return "!="
	case enum.FPredOGT, enum.FPredUGT:
		return ">"
	case enum.FPredOGE, enum.FPredUGE:
		return ">="
	case enum.FPredOLT, enum.FPredULT:
		return "<"
	case enum.FPredOLE, enum.FPredULE:
		return "<="
	default:
		unsupported("<fcmp>", "unsupported floating predicate "+pred.String())
		return ""
	}
}
