// Package translate wires the Pass Pipeline and Emitter into the single
// entry point the CLI (and tests) drive: Run takes a parsed LLVM module and
// Options and returns translated C source text or an error.
package translate

import (
	"fmt"

	"github.com/llir/llvm/ir"

	"github.com/dshills/llvm2c/internal/emitter"
	"github.com/dshills/llvm2c/internal/passes"
	"github.com/dshills/llvm2c/internal/program"
)

// Options controls optional behavior that changes emitted text or
// debuggability without changing translated semantics (spec.md §6).
type Options struct {
	// NoFuncCasts strips cast wrappers from an indirect call's callee.
	NoFuncCasts bool
	// ForceBlockLabels keeps every block's own label instead of inlining
	// single-predecessor blocks at their goto site.
	ForceBlockLabels bool
}

// Run executes the full Translation Pass Pipeline against module and
// prints the resulting Program with the C Emitter, returning the translated
// C source text.
//
// Pass-precondition violations and unsupported-IR-feature errors are raised
// as panics inside the pipeline (spec.md §7: both are internal invariants or
// abort conditions, not recoverable errors); Run recovers them at this
// boundary and reports them as a plain error, matching the exit-code policy
// the CLI applies (spec.md §6 "Exit codes").
func Run(module *ir.Module, opts Options) (src string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ufe, ok := r.(*passes.UnsupportedFeatureError); ok {
				err = ufe
				return
			}
			err = fmt.Errorf("llvm2c: %v", r)
		}
	}()

	prog := program.New(module)
	passes.Run(prog, passes.Options{ForceBlockLabels: opts.ForceBlockLabels})

	em := emitter.New(prog, emitter.Options{
		NoFuncCasts:      opts.NoFuncCasts,
		ForceBlockLabels: opts.ForceBlockLabels,
	})
	return em.Print(), nil
}
