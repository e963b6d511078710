package emitter

import "github.com/dshills/llvm2c/internal/ctype"

// emitHeaders prints the #include block. No system header is required for
// the primitive/aggregate types this decompiler emits (plain char/short/int/
// long long/__int128, never the stdint.h fixed-width aliases); stdarg.h is
// pulled in only when the translated module actually uses variadic functions
// (spec.md §6).
func (e *Emitter) emitHeaders() {
	if e.prog.HasVarArg {
		e.write("#include <stdarg.h>\n\n")
	}
}

// emitStructs prints every translated struct/union definition, a member
// struct/union held by value before the struct that embeds it (pre-order
// dependency emission, original_source/Program.h printStruct/saveStruct;
// SPEC_FULL.md §7). Member types reached only through a pointer need no
// such ordering: C allows an incomplete struct type behind a pointer.
func (e *Emitter) emitStructs() {
	emitted := make(map[*ctype.Type]bool)
	for _, t := range e.prog.Types.StructsInOrder() {
		e.emitStructDef(t, emitted)
	}
}

func (e *Emitter) emitStructDef(t *ctype.Type, emitted map[*ctype.Type]bool) {
	if emitted[t] {
		return
	}
	emitted[t] = true

	for _, f := range t.Items {
		if member := byValueAggregateMember(f.Type); member != nil {
			e.emitStructDef(member, emitted)
		}
	}

	if t.Kind == ctype.KindUnion {
		e.writef("union %s {\n", t.Name)
	} else {
		e.writef("struct %s {\n", t.Name)
	}
	for _, f := range t.Items {
		e.writef("    %s;\n", f.Type.SurroundName(f.Name))
	}
	e.write("};\n\n")
}

// byValueAggregateMember returns the struct/union type t itself embeds by
// value (directly, or as an array element), or nil when t is not an
// aggregate held by value (a pointer to a struct, for instance, needs no
// predecessor definition).
func byValueAggregateMember(t *ctype.Type) *ctype.Type {
	switch t.Kind {
	case ctype.KindStruct, ctype.KindUnion:
		return t
	case ctype.KindArray:
		return byValueAggregateMember(t.Elem)
	default:
		return nil
	}
}
