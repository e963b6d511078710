package passes

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"

	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/ctype"
)

// translateAlloca declares the local variable an llvm.alloca reserves. The
// Value leaf carries the pointee type, not a pointer type: later references
// to the alloca'd pointer go through asPointer, which takes its address
// (spec.md §4.4 item 1).
func (b *exprBuilder) translateAlloca(block *cir.Block, inst *ir.InstAlloca) {
	typ := b.prog.Types.GetType(inst.ElemType)
	v := b.declare(block, typ)
	b.prog.AddExpr(inst, v)
}

// translateLoad reads through the pointer operand and snapshots the result
// into a freshly declared local. Aliasing the instruction's value straight to
// the source lvalue would be wrong whenever a later Store to the same
// address happens before this SSA value's next use: LLVM's value semantics
// freeze the value at the load point, so it must be captured there.
func (b *exprBuilder) translateLoad(block *cir.Block, inst *ir.InstLoad) {
	ptr := b.asPointer(inst.Src)
	lvalue := b.derefLvalue(ptr)
	b.assignResult(block, inst, lvalue)
}

// translateStore appends the assignment statement "lvalue = value;".
func (b *exprBuilder) translateStore(block *cir.Block, inst *ir.InstStore) {
	ptr := b.asPointer(inst.Dst)
	lvalue := b.derefLvalue(ptr)
	rhs := b.resolve(inst.Src)
	block.Append(b.own(cir.NewAssignExpr(lvalue, rhs)))
}

// translateGEP flattens a getelementptr into pointer-shift arithmetic (any
// single-index getelementptr, whatever its element type: the common
// "pointer + offset" shape) or a chain of StructElement/ArrayElement accesses (multi-index
// descent through named aggregate layout), wrapped in a RefExpr to recover
// the pointer type getelementptr always yields (spec.md §4.4 item 2's "GEP:
// flattened ... the last hop decides whether the result is an lvalue";
// collapsed back down by SimplifyExpressions/RefDeref wherever it is
// immediately dereferenced).
func (b *exprBuilder) translateGEP(inst *ir.InstGetElementPtr) cir.Expr {
	base := b.asPointer(inst.Src)
	elemType := b.prog.Types.GetType(inst.ElemType)

	if len(inst.Indices) == 1 {
		offset := b.resolve(inst.Indices[0])
		ptrType := &ctype.Type{Kind: ctype.KindPointer, Elem: elemType, Levels: 1}
		shift := b.own(cir.NewPointerShiftExpr(base, offset, ptrType))
		return b.own(cir.NewRefExpr(shift, ptrType))
	}

	idx0 := b.resolve(inst.Indices[0])
	cur := b.own(cir.NewArrayElementExpr(base, idx0, elemType))
	curType := elemType

	for _, idxVal := range inst.Indices[1:] {
		switch curType.Kind {
		case ctype.KindStruct, ctype.KindUnion:
			fieldIdx := constIndexInt(idxVal)
			cur = b.own(cir.NewStructElementExpr(cur, curType, fieldIdx))
			curType = curType.Items[fieldIdx].Type
		case ctype.KindArray:
			idxExpr := b.resolve(idxVal)
			cur = b.own(cir.NewArrayElementExpr(cur, idxExpr, curType.Elem))
			curType = curType.Elem
		default:
			unsupported(b.fn.Name, "getelementptr descending through a non-aggregate type "+curType.String())
		}
	}

	ptrType := &ctype.Type{Kind: ctype.KindPointer, Elem: curType, Levels: 1}
	return b.own(cir.NewRefExpr(cur, ptrType))
}

// constIndexInt reads a getelementptr struct-field index, which LLVM always
// requires to be a constant i32.
func constIndexInt(v value.Value) int {
	c, ok := v.(*constant.Int)
	if !ok {
		unsupported("<gep>", "non-constant struct field index")
	}
	return int(c.X.Int64())
}
