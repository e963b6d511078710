// Package program implements the Program Container: the single owner of
// every translated Type and Expression node, the LLVM-value to Expression
// index, and the Pass Pipeline's completion ledger. The index runs one way
// only: there is no lookup from an Expression back to its LLVM value.
package program

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/ctype"
)

// PassType enumerates the mandatory, ordered Pass Pipeline stages
// (spec.md §4.4).
type PassType int

const (
	PassCreateFunctions PassType = iota
	PassCreateExpressions
	PassFindMetadataFunctionNames
	PassBlockLayout
	PassSimplifyExpressions
	PassDeleteUnusedVariables
	PassRefDeref
	PassEmitPrepass
)

func (p PassType) String() string {
	switch p {
	case PassCreateFunctions:
		return "CreateFunctions"
	case PassCreateExpressions:
		return "CreateExpressions"
	case PassFindMetadataFunctionNames:
		return "FindMetadataFunctionNames"
	case PassBlockLayout:
		return "BlockLayout"
	case PassSimplifyExpressions:
		return "SimplifyExpressions"
	case PassDeleteUnusedVariables:
		return "DeleteUnusedVariables"
	case PassRefDeref:
		return "RefDeref"
	case PassEmitPrepass:
		return "EmitPrepass"
	default:
		return "unknown pass"
	}
}

// Program owns every allocated Type and Expression node produced while
// translating one LLVM module, and indexes functions, globals, structs, and
// the LLVM-value → Expression map (spec.md §4.3; no reverse map is kept).
type Program struct {
	Module *ir.Module
	Types  *ctype.Translator

	// HasVarArg guides emission of "#include <stdarg.h>" (spec.md §6).
	HasVarArg bool
	// StackSaveElided records that an llvm.stacksave/llvm.stackrestore pair
	// was dropped during CreateExpressions (spec.md §4.4 item 2).
	StackSaveElided bool

	ownership []cir.Expr

	exprByValue map[value.Value]cir.Expr

	functions     map[*ir.Func]*cir.Function
	functionOrder []*ir.Func
	blockByLLVM   map[*ir.Block]*cir.Block

	globals     map[*ir.Global]*cir.GlobalVar
	globalRefs  map[*ir.Global]*cir.GlobalValue
	globalOrder []*ir.Global

	passes map[PassType]bool
}

// New creates an empty Program bound to module. Construction never walks the
// module itself; that is the job of the CreateFunctions pass.
func New(module *ir.Module) *Program {
	return &Program{
		Module:      module,
		Types:       ctype.NewTranslator(),
		exprByValue: make(map[value.Value]cir.Expr),
		functions:   make(map[*ir.Func]*cir.Function),
		blockByLLVM: make(map[*ir.Block]*cir.Block),
		globals:     make(map[*ir.Global]*cir.GlobalVar),
		globalRefs:  make(map[*ir.Global]*cir.GlobalValue),
		passes:      make(map[PassType]bool),
	}
}

// AddOwnership transfers ownership of expr into the Program's pool and
// returns the same, now-pool-owned handle. The pool holds only the nodes
// passed to it: the passes route most nodes through here, but not all
// (operand trees built inline for assignResult, parameter Values, and the
// literal leaves inside initializers and extractvalue indices are never
// added).
func (p *Program) AddOwnership(expr cir.Expr) cir.Expr {
	p.ownership = append(p.ownership, expr)
	return expr
}

// OwnedCount reports how many Expression nodes the Program owns.
func (p *Program) OwnedCount() int { return len(p.ownership) }

// GetExpr looks up the Expression translated from an LLVM value.
func (p *Program) GetExpr(v value.Value) (cir.Expr, bool) {
	e, ok := p.exprByValue[v]
	return e, ok
}

// AddExpr registers the Expression translated from an LLVM value. Per
// spec.md §3 invariant 2, this map is injective after CreateExpressions: two
// distinct LLVM values never register the same Expr pointer.
func (p *Program) AddExpr(v value.Value, e cir.Expr) {
	p.exprByValue[v] = e
}

// GetFunction returns the translated Function for an LLVM function.
func (p *Program) GetFunction(f *ir.Func) (*cir.Function, bool) {
	fn, ok := p.functions[f]
	return fn, ok
}

// AddFunction registers a translated Function, preserving module iteration
// order for deterministic pass execution (spec.md §5 "Ordering guarantees").
func (p *Program) AddFunction(llvmFunc *ir.Func, fn *cir.Function) {
	if _, exists := p.functions[llvmFunc]; !exists {
		p.functionOrder = append(p.functionOrder, llvmFunc)
	}
	p.functions[llvmFunc] = fn
}

// FunctionsInOrder returns every registered LLVM function in the order it
// was added (module source order).
func (p *Program) FunctionsInOrder() []*ir.Func {
	return p.functionOrder
}

// AddBlock registers the translated Block for an LLVM basic block, so later
// terminators (br/switch) can resolve their targets.
func (p *Program) AddBlock(llvmBlock *ir.Block, block *cir.Block) {
	p.blockByLLVM[llvmBlock] = block
}

// GetBlock returns the translated Block for an LLVM basic block, or nil if
// it has not been created yet.
func (p *Program) GetBlock(llvmBlock *ir.Block) *cir.Block {
	return p.blockByLLVM[llvmBlock]
}

// GetStructByType returns the interned Struct/Union Type for an LLVM struct
// type, translating it (and registering it) on first use.
func (p *Program) GetStructByType(t *types.StructType) *ctype.Type {
	return p.Types.GetType(t)
}

// GetStructByName returns a previously translated struct or union by its C
// name, or nil if none has been translated yet.
func (p *Program) GetStructByName(name string) *ctype.Type {
	return p.Types.GetStructByName(name)
}

// AddUnion synthesizes a fresh union Type aliasing subtypes (spec.md §4.3
// add_union).
func (p *Program) AddUnion(subtypes []*ctype.Type) *ctype.Type {
	return p.Types.NewUnion(subtypes)
}

// GetGlobal returns the translated GlobalVar for an LLVM global, or nil if it
// has not been translated yet.
func (p *Program) GetGlobal(g *ir.Global) *cir.GlobalVar { return p.globals[g] }

// GetGlobalVar returns the canonical reference Expression for an LLVM global,
// or nil if the global has not been translated yet.
func (p *Program) GetGlobalVar(g *ir.Global) *cir.GlobalValue {
	return p.globalRefs[g]
}

// AddGlobal registers a translated global variable together with the
// GlobalValue leaf other expressions reference it through.
func (p *Program) AddGlobal(llvmGlobal *ir.Global, gv *cir.GlobalVar, ref *cir.GlobalValue) {
	if _, exists := p.globals[llvmGlobal]; !exists {
		p.globalOrder = append(p.globalOrder, llvmGlobal)
	}
	p.globals[llvmGlobal] = gv
	p.globalRefs[llvmGlobal] = ref
}

// GlobalsInOrder returns every registered global variable in module source
// order.
func (p *Program) GlobalsInOrder() []*cir.GlobalVar {
	out := make([]*cir.GlobalVar, 0, len(p.globalOrder))
	for _, g := range p.globalOrder {
		out = append(out, p.globals[g])
	}
	return out
}

// IsPassCompleted reports whether pass has already run to completion.
func (p *Program) IsPassCompleted(pass PassType) bool { return p.passes[pass] }

// AddPass records pass as complete. Once recorded, a pass is never
// un-recorded (spec.md §3 invariant 6).
func (p *Program) AddPass(pass PassType) { p.passes[pass] = true }

// RequirePass panics (an internal invariant violation, not user input — see
// spec.md §7) if prereq has not completed. Every pass calls this for each of
// its declared prerequisites before doing any work.
func (p *Program) RequirePass(pass, prereq PassType) {
	if !p.IsPassCompleted(prereq) {
		panic(fmt.Sprintf("program: pass %s requires %s to have completed first", pass, prereq))
	}
}
