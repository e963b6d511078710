package emitter

import (
	"testing"

	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/ctype"
	"github.com/dshills/llvm2c/internal/program"
)

var i32 = &ctype.Type{Kind: ctype.KindInteger, Bits: 32}

func newProg() *program.Program { return program.New(nil) }

func TestEmitBinaryOpParenthesizesNonSimpleOperands(t *testing.T) {
	prog := newProg()
	left := cir.NewAddExpr(cir.NewValue("a", i32), cir.NewValue("b", i32), i32)
	right := cir.NewValue("c", i32)
	mul := cir.NewMulExpr(left, right, i32)

	e := New(prog, Options{})
	mul.Accept(e)
	got := e.sb.String()
	want := "(a + b) * c"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitLshrWrapsOnlyLeftOperandCast(t *testing.T) {
	prog := newProg()
	unsigned := i32.AsUnsigned()
	left := cir.NewCastExpr(cir.NewValue("a", i32), unsigned)
	right := cir.NewValue("b", i32)
	shr := cir.NewLshrExpr(left, right, i32)

	e := New(prog, Options{})
	shr.Accept(e)
	got := e.sb.String()
	want := "((unsigned int)a) >> (b)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitPointerShiftZeroOffsetCollapses(t *testing.T) {
	prog := newProg()
	ptrTy := &ctype.Type{Kind: ctype.KindPointer, Elem: i32, Levels: 1}
	base := cir.NewValue("p", ptrTy)
	shift := cir.NewPointerShiftExpr(base, cir.NewValue("0", i32), ptrTy)

	e := New(prog, Options{})
	shift.Accept(e)
	got := e.sb.String()
	if got != "p" {
		t.Errorf("zero-offset PointerShiftExpr should print as the bare base, got %q", got)
	}
}

func TestEmitPointerShiftNonZeroOffset(t *testing.T) {
	prog := newProg()
	ptrTy := &ctype.Type{Kind: ctype.KindPointer, Elem: i32, Levels: 1}
	base := cir.NewValue("p", ptrTy)
	shift := cir.NewPointerShiftExpr(base, cir.NewValue("4", i32), ptrTy)

	e := New(prog, Options{})
	shift.Accept(e)
	got := e.sb.String()
	want := "*(((int*)(p)) + 4)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitCallExprVaStartWrapsFirstArgOnly(t *testing.T) {
	prog := newProg()
	list := cir.NewValue("list", &ctype.Type{Kind: ctype.KindPointer, Elem: i32, Levels: 1})
	last := cir.NewValue("fmt", i32)
	call := cir.NewCallExpr(nil, "va_start", []cir.Expr{list, last}, ctype.Void)

	e := New(prog, Options{})
	call.Accept(e)
	got := e.sb.String()
	want := "va_start((void*)(list), fmt)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitCallExprNoFuncCastsStripsCalleeCasts(t *testing.T) {
	prog := newProg()
	fnPtrTy := &ctype.Type{Kind: ctype.KindPointer, Elem: &ctype.Type{Kind: ctype.KindFunction, Ret: i32}, Levels: 1}
	fnVar := cir.NewValue("fp", fnPtrTy)
	callee := cir.NewCastExpr(fnVar, fnPtrTy)
	call := cir.NewCallExpr(callee, "", nil, i32)

	e := New(prog, Options{NoFuncCasts: true})
	call.Accept(e)
	got := e.sb.String()
	want := "fp()"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitIfExprAlwaysPrintsElse(t *testing.T) {
	prog := newProg()
	cond := cir.NewValue("c", i32)
	trueList := cir.NewExprList([]cir.Expr{cir.NewRetExpr(cir.NewValue("1", i32))})
	falseList := cir.NewExprList(nil)
	ifExpr := cir.NewIfExpr(cond, trueList, falseList)

	e := New(prog, Options{})
	e.emitStatement(ifExpr)
	got := e.sb.String()
	want := "if (c) {\n    return 1;\n} else {\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitGotoInlinesSinglePredecessorBlock(t *testing.T) {
	prog := newProg()
	target := cir.NewBlock("bb1")
	target.Append(cir.NewRetExpr(nil))
	target.DoInline = true

	goToStmt := cir.NewGotoExpr(target)

	e := New(prog, Options{})
	e.emitStatement(goToStmt)
	got := e.sb.String()
	want := "return;\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitGotoPrintsLabelWhenNotInlined(t *testing.T) {
	prog := newProg()
	target := cir.NewBlock("bb1")
	goToStmt := cir.NewGotoExpr(target)

	e := New(prog, Options{})
	e.emitStatement(goToStmt)
	got := e.sb.String()
	want := "goto bb1;\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitStructDefOrdersByValueMembersFirst(t *testing.T) {
	// Outer is discovered (and so would be appended to structOrder) before
	// its by-value member Inner is fully translated, mirroring
	// Translator.getStruct's append-before-recurse order; emitStructDef must
	// still print Inner first (SPEC_FULL.md §7 pre-order dependency emission).
	prog := newProg()
	inner := &ctype.Type{Kind: ctype.KindStruct, Name: "Inner", Items: []ctype.Field{
		{Type: i32, Name: "structVar0"},
	}}
	outer := &ctype.Type{Kind: ctype.KindStruct, Name: "Outer", Items: []ctype.Field{
		{Type: inner, Name: "structVar1"},
	}}

	e := New(prog, Options{})
	emitted := make(map[*ctype.Type]bool)
	e.emitStructDef(outer, emitted)
	got := e.sb.String()
	want := "struct Inner {\n    int structVar0;\n};\n\nstruct Outer {\n    struct Inner structVar1;\n};\n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
