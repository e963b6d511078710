package ctype

import (
	"testing"

	"github.com/llir/llvm/ir/types"
)

func TestGetTypeInternsStructurallyEqualTypes(t *testing.T) {
	tr := NewTranslator()
	a := tr.GetType(types.I32)
	b := tr.GetType(types.I32)
	if a != b {
		t.Error("two lookups of the same LLVM integer type must return the same interned *Type")
	}
}

func TestGetTypeZeroWidthIntPanics(t *testing.T) {
	tr := NewTranslator()
	defer func() {
		if recover() == nil {
			t.Fatal("GetType on a zero-width integer must panic")
		}
	}()
	tr.GetType(&types.IntType{BitSize: 0})
}

func TestGetTypeNamedStructRoundTrips(t *testing.T) {
	tr := NewTranslator()
	st := types.NewStruct(types.I32, types.I32)
	st.TypeName = "struct.Point"

	got := tr.GetType(st)
	if got.Kind != KindStruct {
		t.Fatalf("Kind = %v, want KindStruct", got.Kind)
	}
	if got.Name != "Point" {
		t.Errorf("Name = %q, want %q (struct. prefix stripped)", got.Name, "Point")
	}
	if len(got.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(got.Items))
	}
	if got.Items[0].Name == got.Items[1].Name {
		t.Error("synthesized field names must be distinct")
	}

	again := tr.GetType(st)
	if again != got {
		t.Error("re-translating the same LLVM struct type must return the same cached *Type")
	}

	if tr.GetStructByName("Point") != got {
		t.Error("GetStructByName must find the struct registered under its stripped name")
	}
}

func TestGetTypeAnonymousStructGetsSyntheticName(t *testing.T) {
	tr := NewTranslator()
	st := types.NewStruct(types.I32)
	got := tr.GetType(st)
	if got.Name != "anonymous_struct0" {
		t.Errorf("Name = %q, want anonymous_struct0", got.Name)
	}
}

func TestGetTypePointerToArrayOfPointersCollapses(t *testing.T) {
	// A pointer to [3 x i32*] collapses into one Pointer node with
	// IsArrayPointer set, Levels counting both pointer wrappers (spec.md §4.1).
	tr := NewTranslator()
	arrOfPtr := types.NewArray(3, types.NewPointer(types.I32))
	ptr := types.NewPointer(arrOfPtr)

	got := tr.GetType(ptr)
	if got.Kind != KindPointer {
		t.Fatalf("Kind = %v, want KindPointer", got.Kind)
	}
	if !got.IsArrayPointer {
		t.Fatal("expected IsArrayPointer collapse")
	}
	if got.Levels != 2 {
		t.Errorf("Levels = %d, want 2", got.Levels)
	}
	if got.Sizes != "[3]" {
		t.Errorf("Sizes = %q, want [3]", got.Sizes)
	}
}

func TestGetTypeOrdinaryPointerDoesNotCollapse(t *testing.T) {
	tr := NewTranslator()
	got := tr.GetType(types.NewPointer(types.I32))
	if got.IsArrayPointer {
		t.Error("plain pointer-to-int must not set IsArrayPointer")
	}
	if got.Levels != 1 {
		t.Errorf("Levels = %d, want 1", got.Levels)
	}
}

func TestNewUnionFieldNaming(t *testing.T) {
	tr := NewTranslator()
	sub1 := tr.GetType(types.I32)
	sub2 := tr.GetType(types.Double)
	u := tr.NewUnion([]*Type{sub1, sub2})
	if u.Kind != KindUnion {
		t.Fatalf("Kind = %v, want KindUnion", u.Kind)
	}
	if u.Items[0].Name != "ty0" || u.Items[1].Name != "ty1" {
		t.Errorf("union field names = %q, %q; want ty0, ty1", u.Items[0].Name, u.Items[1].Name)
	}
}

func TestNextCounterNamesAreMonotonic(t *testing.T) {
	tr := NewTranslator()
	if got, want := tr.NextStructVarName(), "structVar0"; got != want {
		t.Errorf("NextStructVarName() = %q, want %q", got, want)
	}
	if got, want := tr.NextStructVarName(), "structVar1"; got != want {
		t.Errorf("NextStructVarName() = %q, want %q", got, want)
	}
	if got, want := tr.NextUnionName(), "u0"; got != want {
		t.Errorf("NextUnionName() = %q, want %q", got, want)
	}
}
