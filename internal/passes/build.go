package passes

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"

	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/ctype"
	"github.com/dshills/llvm2c/internal/program"
)

// exprBuilder carries the per-function context CreateExpressions threads
// through instruction translation.
type exprBuilder struct {
	prog     *program.Program
	llvmFunc *ir.Func
	fn       *cir.Function
}

func (b *exprBuilder) own(e cir.Expr) cir.Expr { return b.prog.AddOwnership(e) }

// resolve maps an LLVM value (instruction result, parameter, constant, or
// global) to its Expr, translating constants on demand.
func (b *exprBuilder) resolve(v value.Value) cir.Expr {
	if e, ok := b.prog.GetExpr(v); ok {
		return e
	}
	if c, ok := v.(constant.Constant); ok {
		return constExpr(b.prog, c)
	}
	unsupported(b.llvmFunc.GlobalName, "reference to an untranslated value "+v.Ident())
	return nil
}

// asPointer returns an Expr of pointer type for v, taking the address of a
// plain (alloca-declared) local when v's own C type is not already a
// pointer.
func (b *exprBuilder) asPointer(v value.Value) cir.Expr {
	e := b.resolve(v)
	if e.Type().Kind == ctype.KindPointer {
		return e
	}
	ptrType := &ctype.Type{Kind: ctype.KindPointer, Elem: e.Type(), Levels: 1}
	return b.own(cir.NewRefExpr(e, ptrType))
}

// derefLvalue turns a pointer Expr into the lvalue it points to, collapsing
// the common "&x" immediately followed by "*" pattern instead of emitting
// "*&x" (spec.md §4.4 item 7, RefDeref pass formalizes the remaining cases).
func (b *exprBuilder) derefLvalue(ptr cir.Expr) cir.Expr {
	if ref, ok := ptr.(*cir.RefExpr); ok {
		return ref.Expr
	}
	return b.own(cir.NewDerefExpr(ptr, ptr.Type().Elem))
}

// declare mints a fresh local variable of typ, appends its StackAlloc
// declaration to block, and returns the Value leaf other expressions
// reference.
func (b *exprBuilder) declare(block *cir.Block, typ *ctype.Type) *cir.Value {
	v := cir.NewValue(b.fn.NextVarName(), typ)
	b.own(v)
	decl := b.own(cir.NewStackAlloc(v)).(*cir.StackAlloc)
	block.Append(decl)
	return v
}

// assignResult declares a local for inst's result, appends the
// declaration and the "var = rhs;" initializer to block, and registers the
// declared Value as inst's Expr. Every SSA register, not only genuine
// llvm.alloca locals, is materialized as a declared local: this guarantees
// each instruction with side effects (calls, loads) is evaluated exactly
// once regardless of how many later instructions reference its result,
// where pure tree-sharing would otherwise risk re-emitting it at every use
// site.
func (b *exprBuilder) assignResult(block *cir.Block, inst value.Value, rhs cir.Expr) cir.Expr {
	v := b.declare(block, rhs.Type())
	block.Append(b.own(cir.NewAssignExpr(v, rhs)))
	b.prog.AddExpr(inst, v)
	return v
}

// CreateExpressions walks every defined function's instructions in program
// order, constructing the matching Expression for each and registering it in
// the LLVM→Expression map (spec.md §4.4 item 2).
func CreateExpressions(prog *program.Program) {
	prog.RequirePass(program.PassCreateExpressions, program.PassCreateFunctions)

	createGlobals(prog)

	for _, llvmFunc := range prog.Module.Funcs {
		if len(llvmFunc.Blocks) == 0 {
			continue // declaration only, no body to translate
		}
		fn, _ := prog.GetFunction(llvmFunc)
		b := &exprBuilder{prog: prog, llvmFunc: llvmFunc, fn: fn}
		b.translateFunction()
	}

	prog.AddPass(program.PassCreateExpressions)
}

// translateFunction runs the three-phase body translation described in
// passes/phi.go: (1) one walk over the blocks in order, declaring each
// block's phis at its top and then translating its non-phi, non-terminator
// instructions, (2) phi predecessor assignments, (3) terminators.
func (b *exprBuilder) translateFunction() {
	phis := b.collectPhis()

	for _, llvmBlock := range b.llvmFunc.Blocks {
		block := blockOf(b.prog, llvmBlock)
		b.declarePhisIn(block, llvmBlock, phis)
		for _, inst := range llvmBlock.Insts {
			if _, isPhi := inst.(*ir.InstPhi); isPhi {
				continue
			}
			b.translateInst(block, inst)
		}
	}

	b.propagatePhiAssignments(phis)

	for _, llvmBlock := range b.llvmFunc.Blocks {
		block := blockOf(b.prog, llvmBlock)
		b.translateTerminator(block, llvmBlock)
	}
}

// createGlobals translates every module-level global variable and its
// initializer. Program construction (spec.md §2 overview) bundles this with
// function/struct discovery; it is performed here, before any function body
// is translated, so global references resolve immediately.
func createGlobals(prog *program.Program) {
	for _, g := range prog.Module.Globals {
		typ := prog.Types.GetType(g.ContentType)
		gv := cir.NewGlobalVar(g.GlobalName, typ)
		gv.IsExternal = g.Init == nil
		ref := cir.NewGlobalValue(g.GlobalName, typ)
		prog.AddOwnership(ref)
		prog.AddGlobal(g, gv, ref)
	}
	// Initializers are translated in a second pass so forward references
	// between globals (one global's initializer naming another) resolve.
	for _, g := range prog.Module.Globals {
		if g.Init == nil {
			continue
		}
		gv := prog.GetGlobal(g)
		gv.Initializer = constExpr(prog, g.Init)
	}
}
