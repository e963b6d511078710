package ctype

import (
	"fmt"
	"strings"

	"github.com/llir/llvm/ir/types"
)

// Translator maps LLVM types to interned C-surface Type nodes. One Translator
// is owned per Program; its counters are never process-global (spec.md §9,
// "Global state").
type Translator struct {
	// interned caches primitive/pointer/array/function translations keyed by
	// the LLVM type's canonical textual form, so structurally equal LLVM
	// types always resolve to the same Type node (invariant 3 / testable
	// property 1).
	interned map[string]*Type

	// structsByIdentity caches literal (unnamed) and identified struct
	// translations keyed by LLVM type identity, mirroring the way LLVM's own
	// type system uniques struct types within a module/context.
	structsByIdentity map[types.Type]*Type
	structsByName     map[string]*Type
	structOrder       []*Type

	anonStructCount int
	structVarCount  int
	unionCount      int
}

// NewTranslator creates an empty Translator.
func NewTranslator() *Translator {
	return &Translator{
		interned:          make(map[string]*Type),
		structsByIdentity: make(map[types.Type]*Type),
		structsByName:     make(map[string]*Type),
	}
}

// NextStructVarName returns a fresh "structVar<N>" name; used both for
// synthesized struct fields and for the Program's temporary-variable
// allocator (spec.md invariant 4).
func (tr *Translator) NextStructVarName() string {
	n := fmt.Sprintf("structVar%d", tr.structVarCount)
	tr.structVarCount++
	return n
}

// NextUnionName returns a fresh "u<N>" name.
func (tr *Translator) NextUnionName() string {
	n := fmt.Sprintf("u%d", tr.unionCount)
	tr.unionCount++
	return n
}

func (tr *Translator) nextAnonStructName() string {
	n := fmt.Sprintf("anonymous_struct%d", tr.anonStructCount)
	tr.anonStructCount++
	return n
}

// GetStructByName looks up an already-translated struct by its C name
// (named or synthesized-anonymous).
func (tr *Translator) GetStructByName(name string) *Type {
	return tr.structsByName[name]
}

// StructsInOrder returns every struct and union type translated so far, in
// first-use order, for deterministic emission of their definitions.
func (tr *Translator) StructsInOrder() []*Type {
	return tr.structOrder
}

// GetType translates an LLVM type into its interned C Type node. GetType is
// total over the documented supported subset; it panics (an internal
// invariant violation, not user input) on integer widths of zero, mirroring
// spec.md §8's "Zero-width integer rejected" boundary behavior.
func (tr *Translator) GetType(llvmType types.Type) *Type {
	switch lt := llvmType.(type) {
	case *types.VoidType:
		return Void
	case *types.IntType:
		return tr.getInt(lt)
	case *types.FloatType:
		return tr.getFloat(lt)
	case *types.PointerType:
		return tr.getPointer(lt)
	case *types.ArrayType:
		return tr.getArray(lt)
	case *types.StructType:
		return tr.getStruct(lt)
	case *types.FuncType:
		return tr.getFunc(lt)
	default:
		panic(fmt.Sprintf("ctype: unsupported LLVM type %T (%s)", llvmType, llvmType.String()))
	}
}

func (tr *Translator) getInt(lt *types.IntType) *Type {
	if lt.BitSize == 0 {
		panic("ctype: zero-width integer is not representable in C")
	}
	key := lt.String()
	if cached, ok := tr.interned[key]; ok {
		return cached
	}
	_, bits := intBase(int(lt.BitSize))
	t := &Type{Kind: KindInteger, Bits: bits}
	tr.interned[key] = t
	return t
}

func (tr *Translator) getFloat(lt *types.FloatType) *Type {
	key := lt.String()
	if cached, ok := tr.interned[key]; ok {
		return cached
	}
	var fk FloatKind
	switch lt.Kind {
	case types.FloatKindFloat:
		fk = FloatKindFloat
	case types.FloatKindDouble:
		fk = FloatKindDouble
	case types.FloatKindX86_FP80:
		fk = FloatKindLongDouble
	case types.FloatKindFP128, types.FloatKindPPC_FP128:
		fk = FloatKindFP128
	default:
		panic(fmt.Sprintf("ctype: unsupported floating kind %v", lt.Kind))
	}
	t := &Type{Kind: KindFloating, FloatKind: fk}
	tr.interned[key] = t
	return t
}

// getPointer implements the collapse rule for pointer-to-array-of-pointers
// (spec.md §4.1): if the pointee is (possibly nested) arrays whose innermost
// element is itself a pointer chain, the whole thing collapses into one
// Pointer node with IsArrayPointer set, Levels counting the outer pointer
// plus the element's pointer-chain depth, and Sizes the concatenated bracket
// dimensions in source order.
func (tr *Translator) getPointer(lt *types.PointerType) *Type {
	key := lt.String()
	if cached, ok := tr.interned[key]; ok {
		return cached
	}

	if arr, ok := lt.ElemType.(*types.ArrayType); ok {
		sizes, levels, finalElem, isArrPtr := unwrapArrayOfPointers(arr)
		if isArrPtr {
			t := &Type{
				Kind:           KindPointer,
				Elem:           tr.GetType(finalElem),
				Levels:         levels + 1,
				IsArrayPointer: true,
				Sizes:          sizes,
			}
			tr.interned[key] = t
			return t
		}
	}

	t := &Type{Kind: KindPointer, Elem: tr.GetType(lt.ElemType), Levels: 1}
	tr.interned[key] = t
	return t
}

// unwrapArrayOfPointers walks a (possibly multidimensional) array type and
// reports whether its ultimate element is a chain of pointer wrappers.
func unwrapArrayOfPointers(arr *types.ArrayType) (sizes string, levels int, finalElem types.Type, ok bool) {
	var dims []int64
	var cur types.Type = arr
	for {
		a, isArr := cur.(*types.ArrayType)
		if !isArr {
			break
		}
		dims = append(dims, int64(a.Len))
		cur = a.ElemType
	}

	for {
		p, isPtr := cur.(*types.PointerType)
		if !isPtr {
			break
		}
		levels++
		cur = p.ElemType
	}
	if levels == 0 {
		return "", 0, nil, false
	}

	var sb strings.Builder
	for _, d := range dims {
		fmt.Fprintf(&sb, "[%d]", d)
	}
	return sb.String(), levels, cur, true
}

func (tr *Translator) getArray(lt *types.ArrayType) *Type {
	key := lt.String()
	if cached, ok := tr.interned[key]; ok {
		return cached
	}
	elem := tr.GetType(lt.ElemType)
	t := &Type{Kind: KindArray, Elem: elem, ArraySize: int64(lt.Len)}
	if elem.Kind == KindPointer {
		t.IsPointerArray = true
		t.Pointer = elem
	}
	tr.interned[key] = t
	return t
}

func (tr *Translator) getFunc(lt *types.FuncType) *Type {
	key := lt.String()
	if cached, ok := tr.interned[key]; ok {
		return cached
	}
	params := make([]*Type, 0, len(lt.Params))
	for _, p := range lt.Params {
		params = append(params, tr.GetType(p))
	}
	t := &Type{Kind: KindFunction, Ret: tr.GetType(lt.RetType), Params: params, Variadic: lt.Variadic}
	tr.interned[key] = t
	return t
}

// structName strips the C-identifier-unsafe prefix clang/LLVM front ends
// conventionally attach to identified struct types ("struct.", "union.",
// "class.") and any leading '%' left over from textual IR.
func structName(raw string) string {
	name := strings.TrimPrefix(raw, "%")
	for _, prefix := range []string{"struct.", "union.", "class."} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}

func (tr *Translator) getStruct(lt *types.StructType) *Type {
	if cached, ok := tr.structsByIdentity[lt]; ok {
		return cached
	}

	if lt.TypeName == "" {
		return tr.createNewUnnamedStruct(lt)
	}

	name := structName(lt.TypeName)
	if cached, ok := tr.structsByName[name]; ok {
		tr.structsByIdentity[lt] = cached
		return cached
	}

	t := &Type{Kind: KindStruct, Name: name}
	tr.structsByIdentity[lt] = t
	tr.structsByName[name] = t
	tr.structOrder = append(tr.structOrder, t)
	// Populate fields after registering the (possibly self-referential)
	// struct, so a recursive field (pointer to the same struct) resolves.
	items := make([]Field, 0, len(lt.Fields))
	for _, f := range lt.Fields {
		items = append(items, Field{Type: tr.GetType(f), Name: tr.NextStructVarName()})
	}
	t.Items = items
	return t
}

// createNewUnnamedStruct allocates a fresh anonymous_struct<N> name for a
// literal LLVM struct type and registers every field under a fresh
// structVar<N> name (spec.md §4.1, invariant 4).
func (tr *Translator) createNewUnnamedStruct(lt *types.StructType) *Type {
	name := tr.nextAnonStructName()
	t := &Type{Kind: KindStruct, Name: name}
	tr.structsByIdentity[lt] = t
	tr.structsByName[name] = t
	tr.structOrder = append(tr.structOrder, t)
	items := make([]Field, 0, len(lt.Fields))
	for _, f := range lt.Fields {
		items = append(items, Field{Type: tr.GetType(f), Name: tr.NextStructVarName()})
	}
	t.Items = items
	return t
}

// NewUnion synthesizes a fresh union Type from a set of aliasing subtypes
// (bitcast chains that alias the same storage), with fields named ty0, ty1, …
// (original_source/core/Program.cpp addUnion).
func (tr *Translator) NewUnion(subtypes []*Type) *Type {
	name := tr.NextUnionName()
	items := make([]Field, 0, len(subtypes))
	for i, st := range subtypes {
		items = append(items, Field{Type: st, Name: fmt.Sprintf("ty%d", i)})
	}
	u := &Type{Kind: KindUnion, Name: name, Items: items}
	tr.structsByName[name] = u
	tr.structOrder = append(tr.structOrder, u)
	return u
}
