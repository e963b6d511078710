package translate

import (
	"strings"
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

// newIdentityModule builds a minimal module for "int identity(int x) { return x; }".
func newIdentityModule() *ir.Module {
	module := ir.NewModule()
	param := ir.NewParam("x", types.I32)
	fn := module.NewFunc("identity", types.I32, param)
	entry := fn.NewBlock("entry")
	entry.NewRet(param)
	return module
}

func TestRunIdentityFunction(t *testing.T) {
	module := newIdentityModule()
	src, err := Run(module, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(src, "int identity(int") {
		t.Errorf("expected a function header for identity, got:\n%s", src)
	}
	if !strings.Contains(src, "return var0;") {
		t.Errorf("expected the single parameter to be returned by its synthesized name, got:\n%s", src)
	}
}

// newGlobalCounterModule builds a module declaring "int counter = 0;" and a
// function that loads and returns it.
func newGlobalCounterModule() *ir.Module {
	module := ir.NewModule()
	zero := constant.NewInt(types.I32, 0)
	counter := module.NewGlobalDef("counter", zero)

	fn := module.NewFunc("readCounter", types.I32)
	entry := fn.NewBlock("entry")
	loaded := entry.NewLoad(types.I32, counter)
	entry.NewRet(loaded)
	return module
}

func TestRunGlobalCounter(t *testing.T) {
	module := newGlobalCounterModule()
	src, err := Run(module, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(src, "int counter = 0;") {
		t.Errorf("expected a global definition for counter, got:\n%s", src)
	}
	if !strings.Contains(src, "readCounter(void)") {
		t.Errorf("expected a void-parameter declarator for a zero-argument function, got:\n%s", src)
	}
}

// newAllocaOnlyModule builds a function whose single local is written once
// and read back immediately, with no other use: DeleteUnusedVariables should
// still keep it, since the value does escape through the return.
func newAllocaOnlyModule() *ir.Module {
	module := ir.NewModule()
	param := ir.NewParam("v", types.I32)
	fn := module.NewFunc("storeThenLoad", types.I32, param)
	entry := fn.NewBlock("entry")
	slot := entry.NewAlloca(types.I32)
	entry.NewStore(param, slot)
	loaded := entry.NewLoad(types.I32, slot)
	entry.NewRet(loaded)
	return module
}

func TestRunAllocaStoreLoad(t *testing.T) {
	module := newAllocaOnlyModule()
	src, err := Run(module, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(src, "storeThenLoad(int") {
		t.Errorf("expected a function header for storeThenLoad, got:\n%s", src)
	}
	if !strings.Contains(src, "return ") {
		t.Errorf("expected a return statement, got:\n%s", src)
	}
}

// newExtractSecondFieldModule builds "int second(struct Pair p) { return p.b; }"
// where Pair is { int a; int b; }, exercising extractvalue on a pass-by-value
// aggregate parameter.
func newExtractSecondFieldModule() *ir.Module {
	module := ir.NewModule()
	pairType := types.NewStruct(types.I32, types.I32)
	pairType.TypeName = "struct.Pair"

	param := ir.NewParam("p", pairType)
	fn := module.NewFunc("second", types.I32, param)
	entry := fn.NewBlock("entry")
	field := entry.NewExtractValue(param, 1)
	entry.NewRet(field)
	return module
}

func TestRunExtractValueEmitsFieldAccessNotIndexLiteral(t *testing.T) {
	module := newExtractSecondFieldModule()
	src, err := Run(module, Options{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(src, "second(struct Pair") {
		t.Errorf("expected a function header for second, got:\n%s", src)
	}
	if strings.Contains(src, "return 1;") {
		t.Errorf("extractvalue must not degrade to its raw index literal, got:\n%s", src)
	}
	if !strings.Contains(src, ".structVar1;") {
		t.Errorf("expected a real field access (base.structVar1) in the return statement, got:\n%s", src)
	}
}
