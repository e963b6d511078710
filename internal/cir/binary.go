package cir

import "github.com/dshills/llvm2c/internal/ctype"

// binBase is embedded by every two-operand arithmetic/bitwise/logical node.
type binBase struct {
	base
	Left, Right Expr
}

func newBinBase(left, right Expr, typ *ctype.Type) binBase {
	return binBase{base{typ}, left, right}
}

// Operands and SetOperands let SimplifyExpressions and RefDeref rewrite
// every two-operand node (arithmetic, bitwise, logical, comparison) through
// one shared code path instead of one case per concrete type.
func (b *binBase) Operands() (Expr, Expr)  { return b.Left, b.Right }
func (b *binBase) SetOperands(l, r Expr) { b.Left, b.Right = l, r }

type AddExpr struct{ binBase }
type SubExpr struct{ binBase }
type MulExpr struct{ binBase }
type DivExpr struct{ binBase }
type RemExpr struct{ binBase }
type AndExpr struct{ binBase }
type OrExpr struct{ binBase }
type XorExpr struct{ binBase }
type ShlExpr struct{ binBase }
type AshrExpr struct{ binBase }

// LshrExpr is a logical shift right; per spec.md §4.4 the left operand is
// always coerced to an unsigned integer of the same width regardless of the
// right operand's signedness (original_source/writer/ExprWriter.cpp only
// wraps expr.left).
type LshrExpr struct{ binBase }

func NewAddExpr(l, r Expr, typ *ctype.Type) *AddExpr   { return &AddExpr{newBinBase(l, r, typ)} }
func NewSubExpr(l, r Expr, typ *ctype.Type) *SubExpr   { return &SubExpr{newBinBase(l, r, typ)} }
func NewMulExpr(l, r Expr, typ *ctype.Type) *MulExpr   { return &MulExpr{newBinBase(l, r, typ)} }
func NewDivExpr(l, r Expr, typ *ctype.Type) *DivExpr   { return &DivExpr{newBinBase(l, r, typ)} }
func NewRemExpr(l, r Expr, typ *ctype.Type) *RemExpr   { return &RemExpr{newBinBase(l, r, typ)} }
func NewAndExpr(l, r Expr, typ *ctype.Type) *AndExpr   { return &AndExpr{newBinBase(l, r, typ)} }
func NewOrExpr(l, r Expr, typ *ctype.Type) *OrExpr     { return &OrExpr{newBinBase(l, r, typ)} }
func NewXorExpr(l, r Expr, typ *ctype.Type) *XorExpr   { return &XorExpr{newBinBase(l, r, typ)} }
func NewShlExpr(l, r Expr, typ *ctype.Type) *ShlExpr   { return &ShlExpr{newBinBase(l, r, typ)} }
func NewAshrExpr(l, r Expr, typ *ctype.Type) *AshrExpr { return &AshrExpr{newBinBase(l, r, typ)} }
func NewLshrExpr(l, r Expr, typ *ctype.Type) *LshrExpr { return &LshrExpr{newBinBase(l, r, typ)} }

func (e *AddExpr) Accept(v Visitor)  { v.VisitAddExpr(e) }
func (e *SubExpr) Accept(v Visitor)  { v.VisitSubExpr(e) }
func (e *MulExpr) Accept(v Visitor)  { v.VisitMulExpr(e) }
func (e *DivExpr) Accept(v Visitor)  { v.VisitDivExpr(e) }
func (e *RemExpr) Accept(v Visitor)  { v.VisitRemExpr(e) }
func (e *AndExpr) Accept(v Visitor)  { v.VisitAndExpr(e) }
func (e *OrExpr) Accept(v Visitor)   { v.VisitOrExpr(e) }
func (e *XorExpr) Accept(v Visitor)  { v.VisitXorExpr(e) }
func (e *ShlExpr) Accept(v Visitor)  { v.VisitShlExpr(e) }
func (e *AshrExpr) Accept(v Visitor) { v.VisitAshrExpr(e) }
func (e *LshrExpr) Accept(v Visitor) { v.VisitLshrExpr(e) }

// CmpExpr is an integer/float comparison; Op is one of the predefined C
// relational operators ("==", "!=", "<", "<=", ">", ">=").
type CmpExpr struct {
	binBase
	Op string
}

func NewCmpExpr(l, r Expr, op string, typ *ctype.Type) *CmpExpr {
	return &CmpExpr{newBinBase(l, r, typ), op}
}
func (e *CmpExpr) Accept(v Visitor) { v.VisitCmpExpr(e) }

// LogicalAndExpr / LogicalOrExpr preserve short-circuit semantics and are
// distinct from the bitwise And/Or above.
type LogicalAndExpr struct{ binBase }
type LogicalOrExpr struct{ binBase }

func NewLogicalAndExpr(l, r Expr, typ *ctype.Type) *LogicalAndExpr {
	return &LogicalAndExpr{newBinBase(l, r, typ)}
}
func NewLogicalOrExpr(l, r Expr, typ *ctype.Type) *LogicalOrExpr {
	return &LogicalOrExpr{newBinBase(l, r, typ)}
}
func (e *LogicalAndExpr) Accept(v Visitor) { v.VisitLogicalAndExpr(e) }
func (e *LogicalOrExpr) Accept(v Visitor)  { v.VisitLogicalOrExpr(e) }

// AssignExpr is a C assignment statement, "l = r". Left must be an lvalue
// form: Value, DerefExpr, StructElementExpr, ArrayElementExpr, or ArrowExpr
// (spec.md §8 testable property 5).
type AssignExpr struct{ binBase }

func NewAssignExpr(l, r Expr) *AssignExpr { return &AssignExpr{newBinBase(l, r, l.Type())} }
func (e *AssignExpr) Accept(v Visitor)    { v.VisitAssignExpr(e) }
