// Package ctype translates LLVM IR types into the C-surface Type model the
// rest of the decompiler emits declarations from.
package ctype

import (
	"fmt"
	"strings"
)

// Kind discriminates the Type sum type.
type Kind int

const (
	KindVoid Kind = iota
	KindInteger
	KindFloating
	KindPointer
	KindArray
	KindStruct
	KindUnion
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindInteger:
		return "integer"
	case KindFloating:
		return "floating"
	case KindPointer:
		return "pointer"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// FloatKind distinguishes the C floating-point surface types.
type FloatKind int

const (
	FloatKindFloat FloatKind = iota
	FloatKindDouble
	FloatKindLongDouble
	FloatKindFP128
)

// Field is an ordered (Type, name) pair used by Struct and Union.
type Field struct {
	Type *Type
	Name string
}

// Type is the immutable, interned sum type produced by the Type Translator.
// All fields not relevant to Kind are zero-valued.
type Type struct {
	Kind Kind

	// Integer
	Bits     int
	Unsigned bool

	// Floating
	FloatKind FloatKind

	// Pointer
	Elem           *Type
	Levels         int
	IsArrayPointer bool
	Sizes          string

	// Array
	ArraySize     int64
	IsPointerArray bool
	Pointer        *Type // present only when IsPointerArray

	// Struct / Union
	Name  string
	Items []Field

	// Function (only ever appears wrapped in a Pointer, per spec)
	Ret      *Type
	Params   []*Type
	Variadic bool
}

// Void, the canonical void type.
var Void = &Type{Kind: KindVoid}

// AsUnsigned returns a copy of an Integer type with the unsigned bit set. It is
// used by operator contexts (Lshr, unsigned Cmp predicates) that need an
// unsigned view of an otherwise-signed operand type without disturbing the
// interned signed Type node other expressions still reference.
func (t *Type) AsUnsigned() *Type {
	if t.Kind != KindInteger || t.Unsigned {
		return t
	}
	cp := *t
	cp.Unsigned = true
	return &cp
}

// IsLvalueForm reports whether an expression of this type, constructed as one
// of Value/Deref/StructElement/ArrayElement/ArrowExpr, is a valid C lvalue
// target of assignment. Types themselves carry no lvalue-ness; this is a
// guard used by passes/program validation (testable property 5 of spec.md).
func (t *Type) IsLvalueForm() bool { return t != nil }

// intBase returns the canonical C base-type keyword for a rounded-up integer
// bit width, and baseBits the canonical width it was rounded to.
func intBase(bits int) (string, int) {
	switch {
	case bits <= 8:
		return "char", 8
	case bits <= 16:
		return "short", 16
	case bits <= 32:
		return "int", 32
	case bits <= 64:
		return "long long", 64
	case bits <= 128:
		return "__int128", 128
	default:
		return "__int128", 128
	}
}

func (k FloatKind) String() string {
	switch k {
	case FloatKindFloat:
		return "float"
	case FloatKindDouble:
		return "double"
	case FloatKindLongDouble:
		return "long double"
	case FloatKindFP128:
		return "__float128"
	default:
		return "double"
	}
}

// String renders the base type text (the part of a C declaration that
// precedes the declarator's identifier). Use SurroundName to produce a full
// declaration for a given identifier.
func (t *Type) String() string {
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindInteger:
		base, _ := intBase(t.Bits)
		if t.Unsigned {
			return "unsigned " + base
		}
		return base
	case KindFloating:
		return t.FloatKind.String()
	case KindPointer:
		if t.IsArrayPointer {
			// The stars, identifier and bracket sizes are emitted together by
			// SurroundName/the emitter; the base text is just the element type.
			return t.Elem.String()
		}
		return t.Elem.String() + "*"
	case KindArray:
		return t.arrayBase().String()
	case KindStruct:
		return "struct " + t.Name
	case KindUnion:
		return "union " + t.Name
	case KindFunction:
		return t.Ret.String()
	default:
		return "void"
	}
}

// arrayBase descends through nested Array wrappers (multidimensional arrays)
// to the non-array element type.
func (t *Type) arrayBase() *Type {
	cur := t
	for cur.Kind == KindArray {
		cur = cur.Elem
	}
	return cur
}

// arrayDims concatenates bracketed dimensions in source (outermost-first)
// order, e.g. "[3][4]" for int[3][4].
func (t *Type) arrayDims() string {
	var sb strings.Builder
	cur := t
	for cur.Kind == KindArray {
		fmt.Fprintf(&sb, "[%d]", cur.ArraySize)
		cur = cur.Elem
	}
	return sb.String()
}

// SurroundName wraps identifier id in the declarator that makes "T id" a
// legal C declaration for this Type: arrays append bracket sizes, function
// pointers wrap "(*id)(params)", array-pointers wrap "(**id)[N]" style
// declarators, and everything else is a plain "base id" concatenation.
func (t *Type) SurroundName(id string) string {
	switch t.Kind {
	case KindArray:
		base := t.arrayBase()
		dims := t.arrayDims()
		if base.Kind == KindPointer && base.IsArrayPointer {
			return fmt.Sprintf("%s (%s%s%s)%s", base.Elem.String(), strings.Repeat("*", base.Levels), id, dims, base.Sizes)
		}
		return base.String() + " " + id + dims
	case KindPointer:
		if t.IsArrayPointer {
			stars := strings.Repeat("*", t.Levels)
			return fmt.Sprintf("%s (%s%s)%s", t.Elem.String(), stars, id, t.Sizes)
		}
		return t.String() + " " + id
	case KindFunction:
		return t.Ret.String() + " (*" + id + ")(" + t.paramList() + ")"
	default:
		return t.String() + " " + id
	}
}

func (t *Type) paramList() string {
	if len(t.Params) == 0 {
		if t.Variadic {
			return "..."
		}
		return "void"
	}
	parts := make([]string, 0, len(t.Params)+1)
	for _, p := range t.Params {
		parts = append(parts, p.String())
	}
	if t.Variadic {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}

// IsSigned reports whether an Integer type is signed. Non-integer types are
// never "signed" in the comparison-operator sense and report false.
func (t *Type) IsSigned() bool {
	return t.Kind == KindInteger && !t.Unsigned
}

// Equal reports structural equality, used by the simplification pass to drop
// redundant casts ("cast to the same type").
func (t *Type) Equal(o *Type) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil || t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindVoid:
		return true
	case KindInteger:
		return t.Bits == o.Bits && t.Unsigned == o.Unsigned
	case KindFloating:
		return t.FloatKind == o.FloatKind
	case KindPointer:
		return t.IsArrayPointer == o.IsArrayPointer && t.Levels == o.Levels && t.Sizes == o.Sizes && t.Elem.Equal(o.Elem)
	case KindArray:
		return t.ArraySize == o.ArraySize && t.Elem.Equal(o.Elem)
	case KindStruct, KindUnion:
		return t.Name == o.Name
	case KindFunction:
		if t.Variadic != o.Variadic || len(t.Params) != len(o.Params) || !t.Ret.Equal(o.Ret) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].Equal(o.Params[i]) {
				return false
			}
		}
		return true
	}
	return false
}
