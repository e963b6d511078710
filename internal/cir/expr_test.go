package cir

import (
	"testing"

	"github.com/dshills/llvm2c/internal/ctype"
)

var i32 = &ctype.Type{Kind: ctype.KindInteger, Bits: 32}

func TestValueAndGlobalValueAreSimple(t *testing.T) {
	v := NewValue("var0", i32)
	if !v.IsSimple() {
		t.Error("Value must be simple")
	}
	g := NewGlobalValue("counter", i32)
	if !g.IsSimple() {
		t.Error("GlobalValue must be simple")
	}
}

func TestCompositeNodesAreNotSimpleByDefault(t *testing.T) {
	left := NewValue("a", i32)
	right := NewValue("b", i32)
	add := NewAddExpr(left, right, i32)
	if add.IsSimple() {
		t.Error("AddExpr must not be simple (needs parenthesization as a sub-expression)")
	}
}

func TestNewCallExprSetsIsVaFuncForVaStartAndVaEnd(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"va_start", true},
		{"va_end", true},
		{"printf", false},
	}
	for _, tt := range tests {
		c := NewCallExpr(nil, tt.name, nil, ctype.Void)
		if c.IsVaFunc != tt.want {
			t.Errorf("NewCallExpr(%q).IsVaFunc = %v, want %v", tt.name, c.IsVaFunc, tt.want)
		}
	}
}

func TestNewRetExprVoidHasVoidType(t *testing.T) {
	r := NewRetExpr(nil)
	if r.Type() != ctype.Void {
		t.Error("NewRetExpr(nil).Type() must be ctype.Void")
	}
	if r.Expr != nil {
		t.Error("NewRetExpr(nil).Expr must be nil")
	}
}

func TestNewAssignExprTypeIsLeftType(t *testing.T) {
	left := NewValue("a", i32)
	right := NewValue("b", i32)
	a := NewAssignExpr(left, right)
	if a.Type() != i32 {
		t.Error("AssignExpr.Type() must equal its left operand's type")
	}
}

func TestPointerShiftIsZeroOffset(t *testing.T) {
	ptrTy := &ctype.Type{Kind: ctype.KindPointer, Elem: i32, Levels: 1}
	base := NewValue("p", ptrTy)
	zero := NewValue("0", i32)
	nonzero := NewValue("4", i32)

	shiftZero := NewPointerShiftExpr(base, zero, ptrTy)
	if !shiftZero.IsZeroOffset() {
		t.Error("PointerShiftExpr with literal \"0\" offset must report IsZeroOffset")
	}
	shiftNonzero := NewPointerShiftExpr(base, nonzero, ptrTy)
	if shiftNonzero.IsZeroOffset() {
		t.Error("PointerShiftExpr with non-zero offset must not report IsZeroOffset")
	}
}

func TestStructElementFieldName(t *testing.T) {
	strct := &ctype.Type{Kind: ctype.KindStruct, Name: "Point", Items: []ctype.Field{
		{Type: i32, Name: "structVar0"},
		{Type: i32, Name: "structVar1"},
	}}
	base := NewValue("pt", strct)
	el := NewStructElementExpr(base, strct, 1)
	if el.FieldName() != "structVar1" {
		t.Errorf("FieldName() = %q, want structVar1", el.FieldName())
	}
	if el.Type() != i32 {
		t.Error("StructElementExpr.Type() must be the selected field's type")
	}
}

func TestBlockPredecessorRefsCounting(t *testing.T) {
	b := NewBlock("bb1")
	if b.PredecessorRefs() != 0 {
		t.Fatal("new Block must start with zero predecessor refs")
	}
	b.AddPredecessorRef()
	b.AddPredecessorRef()
	if b.PredecessorRefs() != 2 {
		t.Errorf("PredecessorRefs() = %d, want 2", b.PredecessorRefs())
	}
}

func TestFunctionNextVarNameSkipsMetadataCollisions(t *testing.T) {
	fn := NewFunction("f", &ctype.Type{Kind: ctype.KindFunction, Ret: ctype.Void}, nil)
	fn.AddMetadataVarName("var0")
	first := fn.NextVarName()
	if first != "var1" {
		t.Errorf("NextVarName() = %q, want var1 (var0 reserved by metadata)", first)
	}
	second := fn.NextVarName()
	if second != "var2" {
		t.Errorf("NextVarName() = %q, want var2", second)
	}
}
