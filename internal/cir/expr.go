// Package cir is the Expression IR: a second, closed intermediate
// representation of C expressions and statements that the Pass Pipeline
// builds from an LLVM module and the Emitter walks to produce C text.
package cir

import "github.com/dshills/llvm2c/internal/ctype"

// Expr is the closed sum-type interface every Expression IR node
// implements. Children referenced by an Expr are non-owning; the Program
// Container is the sole owner (spec.md §3 invariant 1, §9 "Cyclic
// references").
type Expr interface {
	// Type returns the C type this expression evaluates to.
	Type() *ctype.Type
	// IsSimple reports whether the Emitter may print this expression bare;
	// false means a parent must parenthesize it.
	IsSimple() bool
	// Accept dispatches v to the Visit method matching this node's concrete
	// type.
	Accept(v Visitor)
}

// base is embedded by every Expr to provide the common Type/IsSimple
// plumbing; IsSimple defaults to false and is overridden by the few leaf
// kinds that are simple (Value, GlobalValue).
type base struct {
	Typ *ctype.Type
}

func (b *base) Type() *ctype.Type { return b.Typ }
func (b *base) IsSimple() bool     { return false }

// Value is a leaf referencing a named SSA value, a function parameter, or a
// literal constant rendered as text (e.g. "4", "0.5f"). Bare identifiers and
// literals are always simple.
type Value struct {
	base
	ValueName string
}

func NewValue(name string, typ *ctype.Type) *Value { return &Value{base{typ}, name} }
func (v *Value) IsSimple() bool                    { return true }
func (v *Value) Accept(vis Visitor)                { vis.VisitValue(v) }

// GlobalValue is a leaf referencing a translated global variable or
// function by name.
type GlobalValue struct {
	base
	ValueName string
}

func NewGlobalValue(name string, typ *ctype.Type) *GlobalValue { return &GlobalValue{base{typ}, name} }
func (v *GlobalValue) IsSimple() bool                          { return true }
func (v *GlobalValue) Accept(vis Visitor)                      { vis.VisitGlobalValue(v) }

// StackAlloc is the declaration line for a local variable reserved by an
// LLVM alloca; Var is the Value leaf other expressions reference to read or
// write it.
type StackAlloc struct {
	base
	Var *Value
}

func NewStackAlloc(v *Value) *StackAlloc { return &StackAlloc{base{v.Typ}, v} }
func (s *StackAlloc) Accept(vis Visitor) { vis.VisitStackAlloc(s) }

// AggregateInitializer is a comma-separated brace initializer for an array
// or struct constant.
type AggregateInitializer struct {
	base
	Values []Expr
}

func NewAggregateInitializer(typ *ctype.Type, values []Expr) *AggregateInitializer {
	return &AggregateInitializer{base{typ}, values}
}
func (a *AggregateInitializer) Accept(vis Visitor) { vis.VisitAggregateInitializer(a) }
