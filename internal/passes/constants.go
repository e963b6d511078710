package passes

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"

	"github.com/dshills/llvm2c/internal/cir"
	"github.com/dshills/llvm2c/internal/ctype"
	"github.com/dshills/llvm2c/internal/program"
)

// constExpr translates an LLVM constant into a (non owning) Expr, caching
// every result, scalar literals and aggregates alike, in the Program's
// LLVM-value map so repeated references to the same LLVM constant value
// resolve to the same node.
func constExpr(prog *program.Program, c constant.Constant) cir.Expr {
	if e, ok := prog.GetExpr(c); ok {
		return e
	}

	var e cir.Expr
	switch v := c.(type) {
	case *constant.Int:
		typ := prog.Types.GetType(v.Typ)
		e = prog.AddOwnership(cir.NewValue(v.X.String(), typ))
	case *constant.Float:
		typ := prog.Types.GetType(v.Typ)
		e = prog.AddOwnership(cir.NewValue(ctype.FormatFloatLiteral(v.X, typ.FloatKind), typ))
	case *constant.Null:
		typ := prog.Types.GetType(v.Typ)
		e = prog.AddOwnership(cir.NewValue("0", typ))
	case *constant.ZeroInitializer:
		typ := prog.Types.GetType(v.Typ)
		e = zeroInitializer(prog, typ)
	case *constant.CharArray:
		typ := prog.Types.GetType(v.Typ)
		vals := make([]cir.Expr, 0, len(v.X))
		for _, b := range v.X {
			vals = append(vals, cir.NewValue(fmt.Sprintf("%d", b), typ.Elem))
		}
		e = prog.AddOwnership(cir.NewAggregateInitializer(typ, vals))
	case *constant.Array:
		typ := prog.Types.GetType(v.Typ)
		vals := make([]cir.Expr, 0, len(v.Elems))
		for _, elem := range v.Elems {
			vals = append(vals, constExpr(prog, elem))
		}
		e = prog.AddOwnership(cir.NewAggregateInitializer(typ, vals))
	case *constant.Struct:
		typ := prog.Types.GetType(v.Typ)
		vals := make([]cir.Expr, 0, len(v.Fields))
		for _, f := range v.Fields {
			vals = append(vals, constExpr(prog, f))
		}
		e = prog.AddOwnership(cir.NewAggregateInitializer(typ, vals))
	case *constant.BitCast:
		typ := prog.Types.GetType(v.To)
		inner := constExpr(prog, v.From)
		e = prog.AddOwnership(cir.NewCastExpr(inner, typ))
	case *ir.Global:
		if ref := prog.GetGlobalVar(v); ref != nil {
			e = ref
		} else {
			e = prog.AddOwnership(cir.NewGlobalValue(v.GlobalName, prog.Types.GetType(v.ContentType)))
		}
	case *ir.Func:
		sig := prog.Types.GetType(v.Sig)
		e = prog.AddOwnership(cir.NewGlobalValue(v.GlobalName, sig))
	default:
		unsupported("<global init>", fmt.Sprintf("unsupported constant kind %T", c))
	}

	prog.AddExpr(c, e)
	return e
}

// zeroInitializer expands a zeroinitializer constant into the C-equivalent
// zero value or brace initializer for typ.
func zeroInitializer(prog *program.Program, typ *ctype.Type) cir.Expr {
	switch typ.Kind {
	case ctype.KindInteger:
		return cir.NewValue("0", typ)
	case ctype.KindFloating:
		return cir.NewValue("0", typ)
	case ctype.KindPointer:
		return cir.NewValue("0", typ)
	case ctype.KindArray:
		vals := make([]cir.Expr, typ.ArraySize)
		for i := range vals {
			vals[i] = zeroInitializer(prog, typ.Elem)
		}
		return prog.AddOwnership(cir.NewAggregateInitializer(typ, vals))
	case ctype.KindStruct, ctype.KindUnion:
		vals := make([]cir.Expr, len(typ.Items))
		for i, f := range typ.Items {
			vals[i] = zeroInitializer(prog, f.Type)
		}
		return prog.AddOwnership(cir.NewAggregateInitializer(typ, vals))
	default:
		return cir.NewValue("0", typ)
	}
}
