// Package oracle evaluates complex elementary functions with the C library's
// <complex.h> routines. It is the reference the gcomplex implementations are
// measured against and is never imported by gcomplex itself.
//
// Three precisions are bound: single (cexpf, ...), double (cexp, ...) and
// extended (cexpl, ...). Extended takes and returns float64 but computes in
// long double, which on amd64 is x87 80-bit, on linux/arm64 IEEE quad and
// elsewhere possibly just double; see LongDoubleBits.
//
// Minimal usage:
//
//	z := gcomplex.New(0.5, 1.0)
//	want := oracle.Exp(z)
//	ref := oracle.ExtendedTable().Exp(z)
package oracle

import "github.com/lukaszgryglicki/gcomplex"

// Routines is the set of native routines for one precision.
type Routines[F gcomplex.Float] struct {
	Name string

	Exp         func(gcomplex.Complex[F]) gcomplex.Complex[F]
	ExpMinusOne func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Log         func(gcomplex.Complex[F]) gcomplex.Complex[F]
	LogOnePlus  func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Sqrt        func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Pow         func(z, w gcomplex.Complex[F]) gcomplex.Complex[F]
	Cos         func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Sin         func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Tan         func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Cosh        func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Sinh        func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Tanh        func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Acos        func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Asin        func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Atan        func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Acosh       func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Asinh       func(gcomplex.Complex[F]) gcomplex.Complex[F]
	Atanh       func(gcomplex.Complex[F]) gcomplex.Complex[F]
}

// PowInt is cpow(z, n+0i).
func (r Routines[F]) PowInt(z gcomplex.Complex[F], n int) gcomplex.Complex[F] {
	return r.Pow(z, gcomplex.FromReal(F(n)))
}

// Root is cpow(z, 1/n+0i).
func (r Routines[F]) Root(z gcomplex.Complex[F], n int) gcomplex.Complex[F] {
	return r.Pow(z, gcomplex.FromReal(1/F(n)))
}

// Unary returns the one-argument routines keyed by function name.
func (r Routines[F]) Unary() map[string]func(gcomplex.Complex[F]) gcomplex.Complex[F] {
	return map[string]func(gcomplex.Complex[F]) gcomplex.Complex[F]{
		"exp":   r.Exp,
		"expm1": r.ExpMinusOne,
		"log":   r.Log,
		"log1p": r.LogOnePlus,
		"sqrt":  r.Sqrt,
		"cos":   r.Cos,
		"sin":   r.Sin,
		"tan":   r.Tan,
		"cosh":  r.Cosh,
		"sinh":  r.Sinh,
		"tanh":  r.Tanh,
		"acos":  r.Acos,
		"asin":  r.Asin,
		"atan":  r.Atan,
		"acosh": r.Acosh,
		"asinh": r.Asinh,
		"atanh": r.Atanh,
	}
}

// Table returns the routines matching F: single for float32, double for
// float64.
func Table[F gcomplex.Float]() Routines[F] {
	var t any
	var zero F
	switch any(zero).(type) {
	case float32:
		t = single
	default:
		t = double
	}
	return t.(Routines[F])
}

// ExtendedTable returns the long double routines.
func ExtendedTable() Routines[float64] { return extended }

func Exp[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F] { return Table[F]().Exp(z) }
func ExpMinusOne[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F] {
	return Table[F]().ExpMinusOne(z)
}
func Log[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F] { return Table[F]().Log(z) }
func LogOnePlus[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F] {
	return Table[F]().LogOnePlus(z)
}
func Sqrt[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F] { return Table[F]().Sqrt(z) }
func Pow[F gcomplex.Float](z, w gcomplex.Complex[F]) gcomplex.Complex[F] {
	return Table[F]().Pow(z, w)
}
func PowInt[F gcomplex.Float](z gcomplex.Complex[F], n int) gcomplex.Complex[F] {
	return Table[F]().PowInt(z, n)
}
func Root[F gcomplex.Float](z gcomplex.Complex[F], n int) gcomplex.Complex[F] {
	return Table[F]().Root(z, n)
}
func Cos[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F]   { return Table[F]().Cos(z) }
func Sin[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F]   { return Table[F]().Sin(z) }
func Tan[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F]   { return Table[F]().Tan(z) }
func Cosh[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F]  { return Table[F]().Cosh(z) }
func Sinh[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F]  { return Table[F]().Sinh(z) }
func Tanh[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F]  { return Table[F]().Tanh(z) }
func Acos[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F]  { return Table[F]().Acos(z) }
func Asin[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F]  { return Table[F]().Asin(z) }
func Atan[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F]  { return Table[F]().Atan(z) }
func Acosh[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F] { return Table[F]().Acosh(z) }
func Asinh[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F] { return Table[F]().Asinh(z) }
func Atanh[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[F] { return Table[F]().Atanh(z) }
