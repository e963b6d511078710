package emitter

import (
	"strings"

	"github.com/dshills/llvm2c/internal/cir"
)

// funcHeader renders "RetType name(params)", the plain function-declarator
// form (distinct from ctype.Type.SurroundName's function-pointer-variable
// form, which a top-level function definition never uses).
func funcHeader(fn *cir.Function) string {
	parts := make([]string, 0, len(fn.Params)+1)
	for _, p := range fn.Params {
		parts = append(parts, p.Type().SurroundName(p.ValueName))
	}
	if fn.Sig.Variadic {
		parts = append(parts, "...")
	}
	params := "void"
	if len(parts) > 0 {
		params = strings.Join(parts, ", ")
	}
	return fn.Sig.Ret.String() + " " + fn.Name + "(" + params + ")"
}

// emitFunctionDecls prints a prototype for every function the module
// declares or defines, so call sites never depend on source order.
func (e *Emitter) emitFunctionDecls() {
	for _, llvmFunc := range e.prog.FunctionsInOrder() {
		fn, ok := e.prog.GetFunction(llvmFunc)
		if !ok {
			continue
		}
		e.write(funcHeader(fn))
		e.write(";\n")
	}
	e.write("\n")
}

// emitFunctionDefs prints the body of every non-declaration function: the
// entry block's statements run straight through (no label, no goto needed to
// reach it), every later block not folded away by BlockLayout gets its own
// label, and blocks marked DoInline are skipped here since GotoExpr prints
// their body inline at the one site that jumps to them.
func (e *Emitter) emitFunctionDefs() {
	for _, llvmFunc := range e.prog.FunctionsInOrder() {
		fn, ok := e.prog.GetFunction(llvmFunc)
		if !ok || fn.IsDeclaration {
			continue
		}
		e.write(funcHeader(fn))
		e.write(" {\n")
		e.indentCount++
		for i, block := range fn.Blocks {
			if i == 0 {
				e.emitStatements(block.Exprs)
				continue
			}
			if block.DoInline {
				continue
			}
			e.indentCount--
			e.indent()
			e.writef("%s:;\n", block.Name)
			e.indentCount++
			e.emitStatements(block.Exprs)
		}
		e.indentCount--
		e.write("}\n\n")
	}
}
