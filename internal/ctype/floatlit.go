package ctype

import (
	"math/big"
	"strings"
)

// FormatFloatLiteral renders an exact floating-point value (as parsed by
// llir/llvm's IR reader into a *big.Float, which is already exact for every
// LLVM hex-float encoding) as a C floating-point literal suffixed for the
// destination type: "f" for float, nothing for double, "L" for long double
// and __float128.
//
// big.Float.Text('g', -1) prints the shortest decimal representation that
// round-trips to the same value at the float's precision, which is what a C
// compiler needs to reproduce the bit pattern LLVM committed to the IR.
func FormatFloatLiteral(v *big.Float, kind FloatKind) string {
	text := v.Text('g', -1)
	// An integral value prints without a point or exponent ("1"); add ".0"
	// so the suffixed text stays a floating literal ("1.0f", not "1f").
	if !strings.ContainsAny(text, ".eI") {
		text += ".0"
	}
	switch kind {
	case FloatKindFloat:
		return text + "f"
	case FloatKindLongDouble, FloatKindFP128:
		return text + "L"
	default:
		return text
	}
}
