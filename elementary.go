// Package gcomplex provides the complex elementary functions (exponential,
// logarithm, power/root, trigonometric, hyperbolic and their inverses) for
// complex numbers built on float32 or float64.
//
// Every function is derived from a small basis (exp, log, sqrt and the real
// trigonometric and hyperbolic functions) through closed-form identities.
// Near branch points, where those identities cancel, truncated power series
// take over. All functions are total: out-of-domain arguments and overflow
// propagate as infinities and NaNs following IEEE-754.
//
// Minimal usage:
//
//	z := gcomplex.MustParse[float64]("0.75+0.5i")
//	w := gcomplex.Exp(gcomplex.Log(z)) // ≈ z
//	fmt.Println(w.StringFixed(15))
//
// A custom real capability can be plugged in with With:
//
//	f := gcomplex.With[float64](myReal{})
//	fmt.Println(f.Acos(z))
//
// SPDX-License-Identifier: MIT
package gcomplex

// Funcs evaluates the complex elementary functions on top of one real
// capability. It holds no state besides the capability and is safe for
// concurrent use.
type Funcs[F Float] struct {
	r Real[F]
}

// With binds the elementary functions to the real capability r.
func With[F Float](r Real[F]) Funcs[F] { return Funcs[F]{r: r} }

func std[F Float]() Funcs[F] { return Funcs[F]{r: Default[F]()} }

// Real returns the capability f is bound to.
func (f Funcs[F]) Real() Real[F] { return f.r }

func (f Funcs[F]) length(z Complex[F]) F { return f.r.Hypot(z.Re, z.Im) }

// bigArg is the magnitude beyond which 1 is negligible next to z².
func (f Funcs[F]) bigArg() F { return 1 / f.r.Sqrt(f.r.Epsilon()) }

// Exp returns e^z = e^a·(cos b + i·sin b).
func (f Funcs[F]) Exp(z Complex[F]) Complex[F] {
	if z.Im == 0 {
		return Complex[F]{f.r.Exp(z.Re), z.Im}
	}
	return Complex[F]{f.r.Cos(z.Im), f.r.Sin(z.Im)}.Scale(f.r.Exp(z.Re))
}

// ExpMinusOne returns e^z - 1 without the cancellation of the naive form
// for small z: Re = expm1(a)·cos b - 2·sin²(b/2), Im = e^a·sin b.
func (f Funcs[F]) ExpMinusOne(z Complex[F]) Complex[F] {
	if z.Im == 0 {
		return Complex[F]{f.r.Expm1(z.Re), z.Im}
	}
	h := f.r.Sin(z.Im / 2)
	return Complex[F]{
		f.r.Expm1(z.Re)*f.r.Cos(z.Im) - 2*h*h,
		f.r.Exp(z.Re) * f.r.Sin(z.Im),
	}
}

// Log returns the principal logarithm ln|z| + i·arg(z), arg in (-π, π].
func (f Funcs[F]) Log(z Complex[F]) Complex[F] {
	return Complex[F]{f.logLength(z), f.r.Atan2(z.Im, z.Re)}
}

func (f Funcs[F]) logLength(z Complex[F]) F {
	m := f.length(z)
	switch {
	case isInf(m) && z.IsFinite():
		// |z| overflows although both parts are finite
		return f.r.Log(f.r.Hypot(z.Re/2, z.Im/2)) + f.r.Log(2)
	case m >= 0.5 && m <= 2:
		// ln|z| = log1p(x²+y²-1)/2; the larger part is factored so its
		// cancellation against 1 is exact
		a, b := abs(z.Re), abs(z.Im)
		if a < b {
			a, b = b, a
		}
		return f.r.Log1p((a-1)*(a+1)+b*b) / 2
	}
	return f.r.Log(m)
}

// LogOnePlus returns log(1 + z), accurate for small |z|.
func (f Funcs[F]) LogOnePlus(z Complex[F]) Complex[F] {
	if f.length(z) <= 0.5 {
		v, _ := f.log1pSeries(z)
		return v
	}
	return f.Log(z.addReal(1))
}

// Sqrt returns the principal square root in magnitude/phase form,
// √|z|·(cos(arg z/2) + i·sin(arg z/2)).
func (f Funcs[F]) Sqrt(z Complex[F]) Complex[F] {
	half := f.r.Atan2(z.Im, z.Re) / 2
	m := f.length(z)
	var r F
	if isInf(m) && z.IsFinite() {
		r = 2 * f.r.Sqrt(f.r.Hypot(z.Re/4, z.Im/4))
	} else {
		r = f.r.Sqrt(m)
	}
	if half == 0 {
		return Complex[F]{r, half}
	}
	return Complex[F]{f.r.Cos(half), f.r.Sin(half)}.Scale(r)
}

// Pow returns z^w = exp(w·log z).
func (f Funcs[F]) Pow(z, w Complex[F]) Complex[F] {
	return f.Exp(w.Mul(f.Log(z)))
}

// PowInt returns z^n = exp(n·log z).
func (f Funcs[F]) PowInt(z Complex[F], n int) Complex[F] {
	return f.Exp(f.Log(z).Scale(F(n)))
}

// Root returns the principal n-th root exp(log(z)/n).
func (f Funcs[F]) Root(z Complex[F], n int) Complex[F] {
	return f.Exp(f.Log(z).Divide(F(n)))
}

// Cos returns cos z = cosh(i·z).
func (f Funcs[F]) Cos(z Complex[F]) Complex[F] {
	return f.Cosh(z.Rotate())
}

// Sin returns sin z = -i·sinh(i·z).
func (f Funcs[F]) Sin(z Complex[F]) Complex[F] {
	return f.Sinh(z.Rotate()).RotateBack()
}

// Tan returns tan z = -i·tanh(i·z). For large |Im z| tanh saturates to ±1,
// which makes tan z approach ±i with the sign of Im z.
func (f Funcs[F]) Tan(z Complex[F]) Complex[F] {
	return f.Tanh(z.Rotate()).RotateBack()
}

// Cosh returns cosh x·cos y + i·sinh x·sin y for z = x+iy.
func (f Funcs[F]) Cosh(z Complex[F]) Complex[F] {
	return Complex[F]{
		f.r.Cosh(z.Re) * f.r.Cos(z.Im),
		f.r.Sinh(z.Re) * f.r.Sin(z.Im),
	}
}

// Sinh returns sinh x·cos y + i·cosh x·sin y for z = x+iy.
func (f Funcs[F]) Sinh(z Complex[F]) Complex[F] {
	return Complex[F]{
		f.r.Sinh(z.Re) * f.r.Cos(z.Im),
		f.r.Cosh(z.Re) * f.r.Sin(z.Im),
	}
}

// Tanh returns sinh z / cosh z.
//
// Once cosh(Re z) overflows, the quotient degenerates to ∞/∞ or to a finite
// value over infinity, which rounds to zero. tanh has long since saturated,
// so ±1 (the sign of Re z) is returned instead.
func (f Funcs[F]) Tanh(z Complex[F]) Complex[F] {
	s := f.Sinh(z)
	q := s.Div(f.Cosh(z))
	if (q.IsZero() && !s.IsZero()) || isInf(f.r.Cosh(z.Re)) {
		return Complex[F]{f.r.Copysign(1, z.Re), f.r.Copysign(0, z.Im)}
	}
	return q
}

// Acos returns the principal arc cosine, Re in [0, π].
//
// acos z = ∓i·log(z + √(z²-1)), the sign picked by comparing the signs of
// Re z and Im z. z+s and z-s are reciprocal, so log(z+s) is taken as
// -log(z-s) when Re z < 0, where the sum would cancel.
func (f Funcs[F]) Acos(z Complex[F]) Complex[F] {
	var l Complex[F]
	if f.length(z) > f.bigArg() {
		// z²-1 rounds to z², so z ± s collapses to 2z
		l = f.Log(z).addReal(f.r.Log(2))
		if signbit(z.Re) {
			l = l.Neg()
		}
	} else {
		// z²-1, with the real part factored to stay exact near ±1
		zz1 := Complex[F]{(z.Re-1)*(z.Re+1) - z.Im*z.Im, 2 * z.Re * z.Im}
		s := f.Sqrt(zz1)
		// z±s is 1+δ near ±1 and rounding it drops the low bits of δ, so
		// ln|z±s| is taken as log1p of δ, with z∓1 exact there
		if signbit(z.Re) {
			l = f.Log(z.Sub(s)).Neg()
			l.Re = -f.LogOnePlus(s.Sub(z.addReal(1))).Re
		} else {
			l = f.Log(z.Add(s))
			l.Re = f.LogOnePlus(z.addReal(-1).Add(s)).Re
		}
	}
	a := l.RotateBack()
	if signbit(z.Re) != signbit(z.Im) {
		return a.Neg()
	}
	return a
}

// Asin returns the principal arc sine. For |z| ≤ 1/2 it sums the power
// series; above that it is π/2 - acos z.
func (f Funcs[F]) Asin(z Complex[F]) Complex[F] {
	if f.length(z) <= 0.5 {
		v, _ := f.asinSeries(z)
		return v
	}
	a := Complex[F]{f.r.Pi() / 2, 0}.Sub(f.Acos(z))
	if a.IsZero() {
		return z
	}
	return a
}

// Atan returns the principal arc tangent. For |z| ≤ 1/2 it sums the power
// series; above that it is -(i/2)·log((i-z)/(i+z)), evaluated with Re z ≥ 0
// and reflected, since atan(-conj z) = -conj(atan z).
func (f Funcs[F]) Atan(z Complex[F]) Complex[F] {
	if f.length(z) <= 0.5 {
		v, _ := f.atanSeries(z)
		return v
	}
	x := abs(z.Re)
	ratio := Complex[F]{-x, 1 - z.Im}.Div(Complex[F]{x, 1 + z.Im})
	a := f.Log(ratio).RotateBack().Divide(2)
	return Complex[F]{f.r.Copysign(a.Re, z.Re), a.Im}
}

// Acosh returns i·acos z with the sign of Im z, which keeps Re in [0, ∞).
// A +0 imaginary part takes the positive branch.
func (f Funcs[F]) Acosh(z Complex[F]) Complex[F] {
	a := f.Acos(z)
	if signbit(z.Im) {
		return a.RotateBack()
	}
	return a.Rotate()
}

// Asinh returns -i·asin(i·z).
func (f Funcs[F]) Asinh(z Complex[F]) Complex[F] {
	return f.Asin(z.Rotate()).RotateBack()
}

// Atanh returns -i·atan(i·z).
func (f Funcs[F]) Atanh(z Complex[F]) Complex[F] {
	return f.Atan(z.Rotate()).RotateBack()
}

// Package-level functions use the built-in capability for F.

func Exp[F Float](z Complex[F]) Complex[F]         { return std[F]().Exp(z) }
func ExpMinusOne[F Float](z Complex[F]) Complex[F] { return std[F]().ExpMinusOne(z) }
func Log[F Float](z Complex[F]) Complex[F]         { return std[F]().Log(z) }
func LogOnePlus[F Float](z Complex[F]) Complex[F]  { return std[F]().LogOnePlus(z) }
func Sqrt[F Float](z Complex[F]) Complex[F]        { return std[F]().Sqrt(z) }
func Pow[F Float](z, w Complex[F]) Complex[F]      { return std[F]().Pow(z, w) }
func PowInt[F Float](z Complex[F], n int) Complex[F] {
	return std[F]().PowInt(z, n)
}
func Root[F Float](z Complex[F], n int) Complex[F] { return std[F]().Root(z, n) }
func Cos[F Float](z Complex[F]) Complex[F]         { return std[F]().Cos(z) }
func Sin[F Float](z Complex[F]) Complex[F]         { return std[F]().Sin(z) }
func Tan[F Float](z Complex[F]) Complex[F]         { return std[F]().Tan(z) }
func Cosh[F Float](z Complex[F]) Complex[F]        { return std[F]().Cosh(z) }
func Sinh[F Float](z Complex[F]) Complex[F]        { return std[F]().Sinh(z) }
func Tanh[F Float](z Complex[F]) Complex[F]        { return std[F]().Tanh(z) }
func Acos[F Float](z Complex[F]) Complex[F]        { return std[F]().Acos(z) }
func Asin[F Float](z Complex[F]) Complex[F]        { return std[F]().Asin(z) }
func Atan[F Float](z Complex[F]) Complex[F]        { return std[F]().Atan(z) }
func Acosh[F Float](z Complex[F]) Complex[F]       { return std[F]().Acosh(z) }
func Asinh[F Float](z Complex[F]) Complex[F]       { return std[F]().Asinh(z) }
func Atanh[F Float](z Complex[F]) Complex[F]       { return std[F]().Atanh(z) }
