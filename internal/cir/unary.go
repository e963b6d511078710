package cir

import "github.com/dshills/llvm2c/internal/ctype"

// RefExpr is the address-of operator, "&x".
type RefExpr struct {
	base
	Expr Expr
}

func NewRefExpr(e Expr, typ *ctype.Type) *RefExpr { return &RefExpr{base{typ}, e} }
func (r *RefExpr) Accept(v Visitor)                { v.VisitRefExpr(r) }

// DerefExpr is the indirection operator, "*x".
type DerefExpr struct {
	base
	Expr Expr
}

func NewDerefExpr(e Expr, typ *ctype.Type) *DerefExpr { return &DerefExpr{base{typ}, e} }
func (d *DerefExpr) Accept(v Visitor)                  { v.VisitDerefExpr(d) }

// CastExpr is an explicit C cast to Type().
type CastExpr struct {
	base
	Expr Expr
}

func NewCastExpr(e Expr, to *ctype.Type) *CastExpr { return &CastExpr{base{to}, e} }
func (c *CastExpr) Accept(v Visitor)                { v.VisitCastExpr(c) }

// RetExpr is a return statement; Expr is nil for a void return.
type RetExpr struct {
	base
	Expr Expr
}

func NewRetExpr(e Expr) *RetExpr {
	var typ *ctype.Type
	if e != nil {
		typ = e.Type()
	} else {
		typ = ctype.Void
	}
	return &RetExpr{base{typ}, e}
}
func (r *RetExpr) Accept(v Visitor) { v.VisitRetExpr(r) }
