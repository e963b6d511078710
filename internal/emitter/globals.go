package emitter

// emitGlobals prints every translated global variable: an "extern"
// declaration for globals with no initializer (external linkage in the
// source module), otherwise a definition with its initializer.
// InitEmitted guards against double-printing an initializer across repeated
// Print calls on the same Program (spec.md §4.4 item 8, EmitPrepass).
func (e *Emitter) emitGlobals() {
	for _, gv := range e.prog.GlobalsInOrder() {
		if gv.IsExternal {
			e.writef("extern %s;\n", gv.Typ.SurroundName(gv.Name))
			continue
		}
		if gv.InitEmitted {
			continue
		}
		e.write(gv.Typ.SurroundName(gv.Name))
		if gv.Initializer != nil {
			e.write(" = ")
			gv.Initializer.Accept(e)
		}
		e.write(";\n")
		gv.InitEmitted = true
	}
	e.write("\n")
}
