package cir

import "github.com/dshills/llvm2c/internal/ctype"

// ArrayElementExpr is "base[index]".
type ArrayElementExpr struct {
	base
	Expr  Expr
	Index Expr
}

func NewArrayElementExpr(arr, index Expr, typ *ctype.Type) *ArrayElementExpr {
	return &ArrayElementExpr{base{typ}, arr, index}
}
func (a *ArrayElementExpr) Accept(v Visitor) { v.VisitArrayElementExpr(a) }

// StructElementExpr is a struct/union member access, printed as "." when
// Expr's type is not a pointer and "->" when it is.
type StructElementExpr struct {
	base
	Expr    Expr
	Struct  *ctype.Type
	Element int
}

func NewStructElementExpr(e Expr, strct *ctype.Type, element int) *StructElementExpr {
	return &StructElementExpr{base{strct.Items[element].Type}, e, strct, element}
}
func (s *StructElementExpr) Accept(v Visitor) { v.VisitStructElementExpr(s) }

func (s *StructElementExpr) FieldName() string { return s.Struct.Items[s.Element].Name }

// ArrowExpr is an explicit "->" member access, used where RefDeref has
// already proven the base is a dereferenced pointer (spec.md §4.2).
type ArrowExpr struct {
	base
	Expr    Expr
	Struct  *ctype.Type
	Element int
}

func NewArrowExpr(e Expr, strct *ctype.Type, element int) *ArrowExpr {
	return &ArrowExpr{base{strct.Items[element].Type}, e, strct, element}
}
func (a *ArrowExpr) Accept(v Visitor)  { v.VisitArrowExpr(a) }
func (a *ArrowExpr) FieldName() string { return a.Struct.Items[a.Element].Name }

// PointerShiftExpr represents *(((ptrType)(base)) + offset). When Offset is
// a literal zero it is printed as plain Base (collapsed at emission, mirroring
// original_source/writer/ExprWriter.cpp's move->isZero() check, in addition
// to SimplifyExpressions collapsing it statically where provable).
type PointerShiftExpr struct {
	base
	BaseExpr Expr
	Offset   Expr
	PtrType  *ctype.Type
}

func NewPointerShiftExpr(baseExpr, offset Expr, ptrType *ctype.Type) *PointerShiftExpr {
	return &PointerShiftExpr{base{ptrType.Elem}, baseExpr, offset, ptrType}
}
func (p *PointerShiftExpr) Accept(v Visitor) { v.VisitPointerShiftExpr(p) }

// IsZeroOffset reports whether Offset is a literal integer zero, the
// condition under which the Emitter drops the pointer-shift wrapper.
func (p *PointerShiftExpr) IsZeroOffset() bool {
	val, ok := p.Offset.(*Value)
	return ok && val.ValueName == "0"
}
