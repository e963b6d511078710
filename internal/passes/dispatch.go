package passes

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"

	"github.com/dshills/llvm2c/internal/cir"
)

// translateInst dispatches a single non-phi, non-terminator instruction to
// its Expr translation and, for result-producing instructions, declares the
// local variable other instructions will reference it by.
func (b *exprBuilder) translateInst(block *cir.Block, inst ir.Instruction) {
	switch in := inst.(type) {
	case *ir.InstAlloca:
		b.translateAlloca(block, in)
	case *ir.InstLoad:
		b.translateLoad(block, in)
	case *ir.InstStore:
		b.translateStore(block, in)
	case *ir.InstGetElementPtr:
		b.assignResult(block, in, b.translateGEP(in))

	case *ir.InstICmp:
		b.assignResult(block, in, b.translateICmp(in))
	case *ir.InstFCmp:
		b.assignResult(block, in, b.translateFCmp(in))
	case *ir.InstSelect:
		b.assignResult(block, in, cir.NewSelectExpr(
			b.resolve(in.Cond), b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))

	case *ir.InstCall:
		b.translateCall(block, in)

	case *ir.InstExtractValue:
		b.translateExtractValue(block, in)

	case *ir.InstAdd:
		b.assignResult(block, in, cir.NewAddExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstFAdd:
		b.assignResult(block, in, cir.NewAddExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstSub:
		b.assignResult(block, in, cir.NewSubExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstFSub:
		b.assignResult(block, in, cir.NewSubExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstMul:
		b.assignResult(block, in, cir.NewMulExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstFMul:
		b.assignResult(block, in, cir.NewMulExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstUDiv:
		l, r := b.unsignedOperands(in.X, in.Y)
		b.assignResult(block, in, cir.NewDivExpr(l, r, b.prog.Types.GetType(in.Typ).AsUnsigned()))
	case *ir.InstSDiv:
		b.assignResult(block, in, cir.NewDivExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstFDiv:
		b.assignResult(block, in, cir.NewDivExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstURem:
		l, r := b.unsignedOperands(in.X, in.Y)
		b.assignResult(block, in, cir.NewRemExpr(l, r, b.prog.Types.GetType(in.Typ).AsUnsigned()))
	case *ir.InstSRem:
		b.assignResult(block, in, cir.NewRemExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstFRem:
		b.assignResult(block, in, cir.NewRemExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstAnd:
		b.assignResult(block, in, cir.NewAndExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstOr:
		b.assignResult(block, in, cir.NewOrExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstXor:
		b.assignResult(block, in, cir.NewXorExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstShl:
		b.assignResult(block, in, cir.NewShlExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstAShr:
		b.assignResult(block, in, cir.NewAshrExpr(b.resolve(in.X), b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))
	case *ir.InstLShr:
		// spec.md §4.4: only the left operand is coerced to unsigned.
		left := b.own(cir.NewCastExpr(b.resolve(in.X), b.resolve(in.X).Type().AsUnsigned()))
		b.assignResult(block, in, cir.NewLshrExpr(left, b.resolve(in.Y), b.prog.Types.GetType(in.Typ)))

	case *ir.InstTrunc:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))
	case *ir.InstZExt:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))
	case *ir.InstSExt:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))
	case *ir.InstFPTrunc:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))
	case *ir.InstFPExt:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))
	case *ir.InstFPToUI:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To).AsUnsigned()))
	case *ir.InstFPToSI:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))
	case *ir.InstUIToFP:
		src := b.own(cir.NewCastExpr(b.resolve(in.From), b.resolve(in.From).Type().AsUnsigned()))
		b.assignResult(block, in, cir.NewCastExpr(src, b.prog.Types.GetType(in.To)))
	case *ir.InstSIToFP:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))
	case *ir.InstPtrToInt:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))
	case *ir.InstIntToPtr:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))
	case *ir.InstBitCast:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))
	case *ir.InstAddrSpaceCast:
		b.assignResult(block, in, cir.NewCastExpr(b.resolve(in.From), b.prog.Types.GetType(in.To)))

	default:
		unsupported(b.fn.Name, fmt.Sprintf("instruction %T", inst))
	}
}

// unsignedOperands casts both x and y to an unsigned view of their own C
// type, for LLVM ops (UDiv, URem) whose C equivalent depends on operand
// signedness that ctype.Translator does not carry by default.
func (b *exprBuilder) unsignedOperands(x, y value.Value) (cir.Expr, cir.Expr) {
	l := b.resolve(x)
	r := b.resolve(y)
	return b.own(cir.NewCastExpr(l, l.Type().AsUnsigned())), b.own(cir.NewCastExpr(r, r.Type().AsUnsigned()))
}
