package passes

import "github.com/dshills/llvm2c/internal/program"

// EmitPrepass resets every global variable's InitEmitted flag, so a second
// print/saveFile call on the same Program re-emits each global definition
// instead of silently omitting it (spec.md §4.4 item 8). It is
// idempotent and safe to run before every emission, not only the first.
func EmitPrepass(prog *program.Program) {
	prog.RequirePass(program.PassEmitPrepass, program.PassRefDeref)

	for _, gv := range prog.GlobalsInOrder() {
		gv.InitEmitted = false
	}

	prog.AddPass(program.PassEmitPrepass)
}
