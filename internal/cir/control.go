package cir

import "github.com/dshills/llvm2c/internal/ctype"

// ExprList is a sequence of statements; the Emitter terminates each child
// with ";\n" except IfExpr, GotoExpr, and SwitchExpr, which supply their own
// terminator (original_source/writer/ExprWriter.cpp visit(ExprList&)).
type ExprList struct {
	base
	Children []Expr
}

func NewExprList(children []Expr) *ExprList { return &ExprList{base{ctype.Void}, children} }
func (e *ExprList) Accept(v Visitor)         { v.VisitExprList(e) }
func (e *ExprList) Append(child Expr)        { e.Children = append(e.Children, child) }

// IfExpr is an if/else; TrueList/FalseList are always both present (an empty
// FalseList renders as an empty else block), matching spec.md §4.5's "else
// always present for IfExpr".
type IfExpr struct {
	base
	Cond      Expr
	TrueList  *ExprList
	FalseList *ExprList
}

func NewIfExpr(cond Expr, trueList, falseList *ExprList) *IfExpr {
	return &IfExpr{base{ctype.Void}, cond, trueList, falseList}
}
func (e *IfExpr) Accept(v Visitor) { v.VisitIfExpr(e) }

// SwitchCase is one case arm of a SwitchExpr, preserving source case order.
type SwitchCase struct {
	Label string
	Body  *ExprList
}

// SwitchExpr is a switch statement; Default is nil when the LLVM switch has
// no default arm (spec.md boundary behavior: "switch with no cases and no
// default emits switch(c) {}").
type SwitchExpr struct {
	base
	Cond    Expr
	Cases   []SwitchCase
	Default *ExprList
}

func NewSwitchExpr(cond Expr, cases []SwitchCase, def *ExprList) *SwitchExpr {
	return &SwitchExpr{base{ctype.Void}, cond, cases, def}
}
func (e *SwitchExpr) Accept(v Visitor) { v.VisitSwitchExpr(e) }

// GotoExpr targets a Block; if the Block is marked doInline the Emitter
// inlines its body instead of printing "goto".
type GotoExpr struct {
	base
	Target *Block
}

func NewGotoExpr(target *Block) *GotoExpr { return &GotoExpr{base{ctype.Void}, target} }
func (e *GotoExpr) Accept(v Visitor)      { v.VisitGotoExpr(e) }

// SelectExpr is the ternary operator, "cond ? left : right".
type SelectExpr struct {
	base
	Cond, Left, Right Expr
}

func NewSelectExpr(cond, left, right Expr, typ *ctype.Type) *SelectExpr {
	return &SelectExpr{base{typ}, cond, left, right}
}
func (e *SelectExpr) Accept(v Visitor) { v.VisitSelectExpr(e) }

// CallExpr is a function call. Callee is nil when the callee is an
// unresolved direct symbol printed by name (FuncName); otherwise Callee is
// the (possibly cast-wrapped) expression producing the function pointer.
type CallExpr struct {
	base
	Callee   Expr
	FuncName string
	Args     []Expr
	IsVaFunc bool // va_start/va_end: first argument is wrapped in (void*)
}

func NewCallExpr(callee Expr, funcName string, args []Expr, typ *ctype.Type) *CallExpr {
	return &CallExpr{base{typ}, callee, funcName, args, funcName == "va_start" || funcName == "va_end"}
}
func (e *CallExpr) Accept(v Visitor) { v.VisitCallExpr(e) }

// AsmOperand is one constrained operand of an inline asm block.
type AsmOperand struct {
	Constraint string
	Expr       Expr
}

// AsmExpr is a GNU inline-assembly block:
// __asm__("inst" : outputs : inputs : clobbers).
type AsmExpr struct {
	base
	Inst      string
	Output    []AsmOperand
	Input     []AsmOperand
	Clobbers  string
}

func NewAsmExpr(inst string, output, input []AsmOperand, clobbers string) *AsmExpr {
	return &AsmExpr{base{ctype.Void}, inst, output, input, clobbers}
}
func (e *AsmExpr) Accept(v Visitor) { v.VisitAsmExpr(e) }
