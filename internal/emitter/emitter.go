// Package emitter is the C Emitter: a precedence/parenthesization-aware
// printer that walks the Expression IR (via cir.Visitor) and produces C
// source text, grounded on original_source/writer/ExprWriter.cpp's exact
// operator spelling, indentation, and block-inlining rules.
package emitter

import (
	"fmt"
	"strings"

	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/program"
)

// Options mirrors the CLI flags that change emitted text without changing
// translated semantics (spec.md §6).
type Options struct {
	// NoFuncCasts strips cast wrappers from an indirect call's callee
	// expression before printing it.
	NoFuncCasts bool
	// ForceBlockLabels prints every inlined block's own label (as a no-op
	// statement target) in addition to inlining its body.
	ForceBlockLabels bool
}

// Emitter renders one Program's translated functions, globals, and struct
// definitions as C source text.
type Emitter struct {
	prog *program.Program
	opts Options

	sb          strings.Builder
	indentCount int
}

// New creates an Emitter for prog. The Program must have completed every
// Pass Pipeline stage, including EmitPrepass, before Print is called.
func New(prog *program.Program, opts Options) *Emitter {
	return &Emitter{prog: prog, opts: opts}
}

func (e *Emitter) write(s string)            { e.sb.WriteString(s) }
func (e *Emitter) writef(f string, a ...any)  { fmt.Fprintf(&e.sb, f, a...) }
func (e *Emitter) indent() {
	for i := 0; i < e.indentCount; i++ {
		e.sb.WriteString("    ")
	}
}

// isStatementTerminated reports whether stmt already prints its own
// terminator (IfExpr/GotoExpr/SwitchExpr), so the statement loop must not
// append ";\n" (original_source/writer/ExprWriter.cpp visit(ExprList&)).
func isStatementTerminated(stmt cir.Expr) bool {
	switch stmt.(type) {
	case *cir.IfExpr, *cir.GotoExpr, *cir.SwitchExpr:
		return true
	default:
		return false
	}
}

func (e *Emitter) emitStatement(stmt cir.Expr) {
	// A goto whose target BlockLayout marked doInline is expanded here,
	// before indenting or visiting: the target's own statements carry their
	// own indentation at this call's (possibly incremented) indentCount,
	// rather than nesting one extra level under a printed "goto" line
	// (original_source/writer/ExprWriter.cpp gotoOrInline).
	if g, ok := stmt.(*cir.GotoExpr); ok && g.Target.DoInline {
		e.emitInlineBlock(g.Target)
		return
	}
	e.indent()
	stmt.Accept(e)
	if !isStatementTerminated(stmt) {
		e.write(";\n")
	}
}

// emitInlineBlock prints target's own statements in place of a goto to it,
// optionally prefixed by its own label when ForceBlockLabels keeps every
// block's label visible for debugging the translation (spec.md §6).
func (e *Emitter) emitInlineBlock(target *cir.Block) {
	if e.opts.ForceBlockLabels {
		e.indent()
		e.writef("%s: ;\n", target.Name)
	}
	e.emitStatements(target.Exprs)
}

func (e *Emitter) emitStatements(stmts []cir.Expr) {
	for _, s := range stmts {
		e.emitStatement(s)
	}
}

// parensIfNotSimple prints expr wrapped in parentheses unless it is simple
// enough (a bare identifier or literal) that wrapping is unnecessary.
func (e *Emitter) parensIfNotSimple(expr cir.Expr) {
	if !expr.IsSimple() {
		e.write("(")
	}
	expr.Accept(e)
	if !expr.IsSimple() {
		e.write(")")
	}
}

// Print renders the full translation unit: headers, struct/union
// definitions, global declarations, function declarations, and function
// definitions, in that order.
func (e *Emitter) Print() string {
	e.emitHeaders()
	e.emitStructs()
	e.emitGlobals()
	e.emitFunctionDecls()
	e.emitFunctionDefs()
	return e.sb.String()
}
