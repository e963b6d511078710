package cir

import (
	"fmt"
	"os"

	"github.com/dshills/llvm2c/internal/ctype"
)

// Block is a translated C-level basic block: an ordered list of Expression
// statements, either emitted inline at its single predecessor or reachable
// by a labeled goto (spec.md §3, invariant 5).
type Block struct {
	Name     string
	Exprs    []Expr
	DoInline bool

	// predecessorRefs counts static GotoExpr references that target this
	// block; BlockLayout uses it to decide DoInline (exactly one reference,
	// spec.md invariant 5 / testable property 3).
	predecessorRefs int
}

// NewBlock creates an empty Block with the given label.
func NewBlock(name string) *Block { return &Block{Name: name} }

// Append adds an expression statement to the end of the block.
func (b *Block) Append(e Expr) { b.Exprs = append(b.Exprs, e) }

// AddPredecessorRef records one more static reference to this block (called
// whenever a GotoExpr or fallthrough targets it).
func (b *Block) AddPredecessorRef() { b.predecessorRefs++ }

// PredecessorRefs reports how many static references target this block.
func (b *Block) PredecessorRefs() int { return b.predecessorRefs }

// Function is a translated C function: its signature, parameter leaves, and
// ordered basic blocks, plus the metadata-recovered variable names that must
// never be reused by a synthesized name (spec.md §4.4 item 3).
type Function struct {
	Name          string
	Sig           *ctype.Type // Kind == ctype.KindFunction
	Params        []*Value
	Blocks        []*Block
	IsDeclaration bool

	metadataNames map[string]bool
	varCounter    int
	blockCounter  int
}

// NewFunction creates a Function with the given name and signature.
func NewFunction(name string, sig *ctype.Type, params []*Value) *Function {
	return &Function{Name: name, Sig: sig, Params: params, metadataNames: make(map[string]bool)}
}

// BlockByName returns the block with the given label, or nil.
func (f *Function) BlockByName(name string) *Block {
	for _, b := range f.Blocks {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// AddMetadataVarName registers a user-level variable name recovered from
// debug metadata, so later synthesized var<N> names avoid colliding with it.
func (f *Function) AddMetadataVarName(name string) { f.metadataNames[name] = true }

// HasMetadataVarName reports whether name was recovered from debug metadata.
func (f *Function) HasMetadataVarName(name string) bool { return f.metadataNames[name] }

// NextVarName mints the next "var<N>" SSA-register name for this function,
// skipping any number a debug-metadata-recovered name already claims
// (spec.md §4.4 item 3, §7 "Name collision" policy: regenerate with next
// counter).
func (f *Function) NextVarName() string {
	for {
		name := fmt.Sprintf("var%d", f.varCounter)
		f.varCounter++
		if !f.metadataNames[name] {
			return name
		}
		fmt.Fprintf(os.Stderr, "%s: %s collides with a metadata-recovered variable name, regenerating\n", f.Name, name)
	}
}

// NextBlockName mints the next "bb<N>" block label for this function.
func (f *Function) NextBlockName() string {
	name := fmt.Sprintf("bb%d", f.blockCounter)
	f.blockCounter++
	return name
}

// GlobalVar is a translated global variable: its name, type, optional
// initializer, and the init_emitted flag EmitPrepass resets between
// invocations of print/saveFile.
type GlobalVar struct {
	Name        string
	Typ         *ctype.Type
	Initializer Expr
	InitEmitted bool
	IsExternal  bool
}

// NewGlobalVar creates an uninitialized, not-yet-emitted global.
func NewGlobalVar(name string, typ *ctype.Type) *GlobalVar {
	return &GlobalVar{Name: name, Typ: typ}
}
