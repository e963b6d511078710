package passes

import (
	"fmt"
	"strings"

	"github.com/llir/llvm/ir"

	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/ctype"
)

// indexLit is the type used for an extractvalue array index: LLVM embeds
// these as plain constants in the instruction, not as operands, so there is
// no LLVM value to resolve; the Emitter only reads the printed text.
var indexLit = &ctype.Type{Kind: ctype.KindInteger, Bits: 32}

// translateCall elides debugger and stack-management intrinsics
// (llvm.dbg.declare is dropped entirely; llvm.stacksave/llvm.stackrestore are
// dropped and flag Program.StackSaveElided), rewrites va_start/va_end to
// their libc names, and otherwise emits a direct or indirect call. Calls
// always execute as their own statement: a call is never inlined at a use
// site even when pure-looking, since it may have side effects LLVM's SSA
// form does not expose.
func (b *exprBuilder) translateCall(block *cir.Block, inst *ir.InstCall) {
	name := calleeName(inst)

	switch name {
	case "llvm.dbg.declare", "llvm.dbg.value":
		return
	case "llvm.stacksave", "llvm.stackrestore":
		b.prog.StackSaveElided = true
		return
	}

	args := make([]cir.Expr, 0, len(inst.Args))
	for _, a := range inst.Args {
		args = append(args, b.resolve(a))
	}

	var callee cir.Expr
	if name == "" {
		callee = b.resolve(inst.Callee)
	} else {
		name = strings.TrimPrefix(name, "llvm.")
	}

	resultType := b.prog.Types.GetType(inst.Typ)
	call := b.own(cir.NewCallExpr(callee, name, args, resultType))

	if resultType.Kind == ctype.KindVoid {
		block.Append(call)
		return
	}
	b.assignResult(block, inst, call)
}

// calleeName returns the direct callee's symbol name, or "" for an indirect
// call through a function-pointer value.
func calleeName(inst *ir.InstCall) string {
	if f, ok := inst.Callee.(*ir.Func); ok {
		return f.GlobalName
	}
	return ""
}

// translateExtractValue descends inst's constant index path through the
// aggregate, building the same StructElement/ArrayElement chain
// translateGEP builds for getelementptr (memory.go:60-77): each index
// narrows cur to the real member-access expression at that depth, so the
// final cur is the access path itself, not an index count.
func (b *exprBuilder) translateExtractValue(block *cir.Block, inst *ir.InstExtractValue) {
	cur := b.resolve(inst.X)
	curType := cur.Type()

	for _, idx := range inst.Indices {
		switch curType.Kind {
		case ctype.KindStruct, ctype.KindUnion:
			cur = b.own(cir.NewStructElementExpr(cur, curType, int(idx)))
			curType = curType.Items[idx].Type
		case ctype.KindArray:
			cur = b.own(cir.NewArrayElementExpr(cur, cir.NewValue(fmt.Sprintf("%d", idx), indexLit), curType.Elem))
			curType = curType.Elem
		default:
			unsupported(b.fn.Name, "extractvalue descending through a non-aggregate type "+curType.String())
		}
	}

	b.assignResult(block, inst, cur)
}
