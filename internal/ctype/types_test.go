package ctype

import "testing"

func TestIntBaseRoundsUpToCanonicalWidth(t *testing.T) {
	tests := []struct {
		bits     int
		wantBase string
		wantBits int
	}{
		{1, "char", 8},
		{7, "char", 8},
		{8, "char", 8},
		{9, "short", 16},
		{16, "short", 16},
		{17, "int", 32},
		{32, "int", 32},
		{33, "long long", 64},
		{64, "long long", 64},
		{65, "__int128", 128},
		{128, "__int128", 128},
	}
	for _, tt := range tests {
		base, bits := intBase(tt.bits)
		if base != tt.wantBase || bits != tt.wantBits {
			t.Errorf("intBase(%d) = (%q, %d), want (%q, %d)", tt.bits, base, bits, tt.wantBase, tt.wantBits)
		}
	}
}

func TestTypeStringPrimitives(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		want string
	}{
		{"void", Void, "void"},
		{"signed int", &Type{Kind: KindInteger, Bits: 32}, "int"},
		{"unsigned int", &Type{Kind: KindInteger, Bits: 32, Unsigned: true}, "unsigned int"},
		{"bool-width char", &Type{Kind: KindInteger, Bits: 8}, "char"},
		{"double", &Type{Kind: KindFloating, FloatKind: FloatKindDouble}, "double"},
		{"float", &Type{Kind: KindFloating, FloatKind: FloatKindFloat}, "float"},
		{"pointer to int", &Type{Kind: KindPointer, Elem: &Type{Kind: KindInteger, Bits: 32}, Levels: 1}, "int*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSurroundNameScalar(t *testing.T) {
	intTy := &Type{Kind: KindInteger, Bits: 32}
	if got, want := intTy.SurroundName("var0"), "int var0"; got != want {
		t.Errorf("SurroundName = %q, want %q", got, want)
	}
}

func TestSurroundNameArray(t *testing.T) {
	elem := &Type{Kind: KindInteger, Bits: 32}
	arr := &Type{Kind: KindArray, Elem: elem, ArraySize: 4}
	if got, want := arr.SurroundName("buf"), "int buf[4]"; got != want {
		t.Errorf("SurroundName = %q, want %q", got, want)
	}
}

func TestSurroundNameFunctionPointer(t *testing.T) {
	i32 := &Type{Kind: KindInteger, Bits: 32}
	fn := &Type{Kind: KindFunction, Ret: i32, Params: []*Type{i32, i32}}
	if got, want := fn.SurroundName("cb"), "int (*cb)(int, int)"; got != want {
		t.Errorf("SurroundName = %q, want %q", got, want)
	}
}

func TestSurroundNameArrayPointer(t *testing.T) {
	// int* arr[3]: a pointer-to-(array-of-pointers) collapses into one
	// Pointer node with IsArrayPointer set (spec.md §4.1).
	i32 := &Type{Kind: KindInteger, Bits: 32}
	ptr := &Type{Kind: KindPointer, Elem: i32, Levels: 2, IsArrayPointer: true, Sizes: "[3]"}
	if got, want := ptr.SurroundName("p"), "int (**p)[3]"; got != want {
		t.Errorf("SurroundName = %q, want %q", got, want)
	}
}

func TestSurroundNameEmptyParamsIsVoid(t *testing.T) {
	i32 := &Type{Kind: KindInteger, Bits: 32}
	fn := &Type{Kind: KindFunction, Ret: i32}
	if got, want := fn.paramList(), "void"; got != want {
		t.Errorf("paramList() = %q, want %q", got, want)
	}
}

func TestEqualInterning(t *testing.T) {
	a := &Type{Kind: KindInteger, Bits: 32}
	b := &Type{Kind: KindInteger, Bits: 32}
	c := &Type{Kind: KindInteger, Bits: 32, Unsigned: true}
	if !a.Equal(b) {
		t.Error("two signed 32-bit integer Types should be structurally equal")
	}
	if a.Equal(c) {
		t.Error("signed and unsigned integer Types should not be structurally equal")
	}
}

func TestEqualStructByName(t *testing.T) {
	a := &Type{Kind: KindStruct, Name: "foo"}
	b := &Type{Kind: KindStruct, Name: "foo"}
	c := &Type{Kind: KindStruct, Name: "bar"}
	if !a.Equal(b) {
		t.Error("structs with the same name should be structurally equal")
	}
	if a.Equal(c) {
		t.Error("structs with different names should not be structurally equal")
	}
}

func TestAsUnsignedDoesNotMutateInterned(t *testing.T) {
	signed := &Type{Kind: KindInteger, Bits: 32}
	unsigned := signed.AsUnsigned()
	if signed.Unsigned {
		t.Fatal("AsUnsigned must not mutate the original interned Type node")
	}
	if !unsigned.Unsigned {
		t.Fatal("AsUnsigned() result must be unsigned")
	}
	if unsigned.AsUnsigned() != unsigned {
		t.Error("AsUnsigned() on an already-unsigned Type should be a no-op returning the same node")
	}
}
