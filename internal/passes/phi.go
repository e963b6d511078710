package passes

import (
	"github.com/llir/llvm/ir"

	"github.com/dshills/llvm2c/internal/cir"
)

// phiInfo pairs a phi instruction with its home (defining) block, so the
// three-phase translation in build.go can declare it while walking blocks in
// order and propagate its incoming assignments afterward.
type phiInfo struct {
	inst  *ir.InstPhi
	block *ir.Block
}

// collectPhis gathers every phi in the function before any instruction is
// translated, so propagatePhiAssignments can run only after every
// instruction's Expr (including every phi's own declared Value) is already
// registered in the Program's LLVM-value map.
func (b *exprBuilder) collectPhis() []*phiInfo {
	var out []*phiInfo
	for _, blk := range b.llvmFunc.Blocks {
		for _, inst := range blk.Insts {
			if phi, ok := inst.(*ir.InstPhi); ok {
				out = append(out, &phiInfo{inst: phi, block: blk})
			}
		}
	}
	return out
}

// declarePhisIn appends the StackAlloc declaration for every phi whose home
// block is llvmBlock, at the top of the translated block, before any of that
// block's own instructions.
func (b *exprBuilder) declarePhisIn(block *cir.Block, llvmBlock *ir.Block, phis []*phiInfo) {
	for _, p := range phis {
		if p.block != llvmBlock {
			continue
		}
		typ := b.prog.Types.GetType(p.inst.Typ)
		v := b.declare(block, typ)
		b.prog.AddExpr(p.inst, v)
	}
}

// propagatePhiAssignments lowers every phi into an explicit assignment
// inserted at the end of each predecessor block, before that predecessor's
// terminator (translateTerminator runs after this, completing the required
// statement order: body, then phi assignments, then the terminator-derived
// control node).
func (b *exprBuilder) propagatePhiAssignments(phis []*phiInfo) {
	for _, p := range phis {
		dest, _ := b.prog.GetExpr(p.inst)
		for _, inc := range p.inst.Incs {
			val := b.resolve(inc.X)
			pred := blockOf(b.prog, inc.Pred)
			pred.Append(b.own(cir.NewAssignExpr(dest, val)))
		}
	}
}
