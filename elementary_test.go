package gcomplex

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// closeRel reports |a-b| <= tol·(1+|b|).
func closeRel[F Float](a, b Complex[F], tol float64) bool {
	d := a.Sub(b)
	return math.Hypot(float64(d.Re), float64(d.Im)) <= tol*(1+math.Hypot(float64(b.Re), float64(b.Im)))
}

// unary lists every single-argument function for one precision.
func unary[F Float]() map[string]func(Complex[F]) Complex[F] {
	return map[string]func(Complex[F]) Complex[F]{
		"exp":   Exp[F],
		"expm1": ExpMinusOne[F],
		"log":   Log[F],
		"log1p": LogOnePlus[F],
		"sqrt":  Sqrt[F],
		"cos":   Cos[F],
		"sin":   Sin[F],
		"tan":   Tan[F],
		"cosh":  Cosh[F],
		"sinh":  Sinh[F],
		"tanh":  Tanh[F],
		"acos":  Acos[F],
		"asin":  Asin[F],
		"atan":  Atan[F],
		"acosh": Acosh[F],
		"asinh": Asinh[F],
		"atanh": Atanh[F],
	}
}

// randomBox draws n points with both components uniform in [-h, h].
func randomBox(seed uint64, n int, h float64) []Complex[float64] {
	rng := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
	out := make([]Complex[float64], n)
	for i := range out {
		out[i] = New((2*rng.Float64()-1)*h, (2*rng.Float64()-1)*h)
	}
	return out
}

func TestFixedPoints(t *testing.T) {
	assert.Equal(t, One[float64](), Exp(Zero[float64]()))
	assert.Equal(t, Zero[float64](), Log(One[float64]()))
	assert.Equal(t, New(0, math.Pi), Log(tp("-1")))
	assert.Equal(t, New(2.0, 0), Sqrt(tp("4")))
	assert.True(t, Asin(Zero[float64]()).IsZero())
	assert.True(t, Atan(Zero[float64]()).IsZero())
	assert.True(t, Acos(One[float64]()).IsZero())
	assert.True(t, Tanh(Zero[float64]()).IsZero())
	assert.True(t, ExpMinusOne(Zero[float64]()).IsZero())
	assert.True(t, LogOnePlus(Zero[float64]()).IsZero())

	assert.True(t, equalApprox(Sqrt(tp("-1")), I[float64](), 1e-15))
	assert.True(t, equalApprox(Exp(New(0, math.Pi)), tp("-1"), 1e-15))
	assert.True(t, equalApprox(Acos(Zero[float64]()), New(math.Pi/2, 0), 1e-15))
	assert.True(t, equalApprox(Atan(One[float64]()), New(math.Pi/4, 0), 1e-15))
	assert.True(t, equalApprox(Tan(New(math.Pi/4, 0)), One[float64](), 1e-15))
	assert.True(t, equalApprox(Tan(New[float32](math.Pi/4, 0)), One[float32](), 1e-6))
	assert.True(t, equalApprox(Pow(tp("2"), tp("3")), tp("8"), 1e-14))
	assert.True(t, equalApprox(PowInt(I[float64](), 2), tp("-1"), 1e-15))
	assert.True(t, equalApprox(PowInt(tp("2"), -1), tp("0.5"), 1e-15))
	assert.True(t, equalApprox(Root(tp("-8"), 3), New(1, math.Sqrt(3)), 1e-14))
}

func TestExpLog(t *testing.T) {
	// avoid branch cut issues: pick a generic complex not on negative real axis
	z := tp("0.75+0.5i")
	require.True(t, equalApprox(Exp(Log(z)), z, 1e-15))

	w := tp("1e100+1e100i")
	require.True(t, closeRel(Exp(Log(w)), w, 1e-13), "got %v", Exp(Log(w)))
}

func TestIdentities(t *testing.T) {
	one := One[float64]()
	for _, z := range randomBox(1, 200, 0.7) {
		s, c := Sin(z), Cos(z)
		require.True(t, closeRel(s.Mul(s).Add(c.Mul(c)), one, 1e-13), "sin²+cos² at %v", z)
		sh, ch := Sinh(z), Cosh(z)
		require.True(t, closeRel(ch.Mul(ch).Sub(sh.Mul(sh)), one, 1e-13), "cosh²-sinh² at %v", z)
		require.True(t, closeRel(Tan(z), s.Div(c), 1e-13), "tan at %v", z)

		require.True(t, closeRel(Exp(Log(z)), z, 1e-13), "exp(log) at %v", z)
		require.True(t, closeRel(Sqrt(z).Mul(Sqrt(z)), z, 1e-13), "sqrt² at %v", z)
		require.True(t, closeRel(PowInt(z, 2), z.Mul(z), 1e-13), "z^2 at %v", z)
		require.True(t, closeRel(Pow(z, tp("2")), z.Mul(z), 1e-13), "pow at %v", z)
		require.True(t, closeRel(PowInt(Root(z, 3), 3), z, 1e-13), "cube root at %v", z)
		require.True(t, closeRel(ExpMinusOne(z).Add(one), Exp(z), 1e-13), "expm1 at %v", z)
		require.True(t, closeRel(LogOnePlus(z), Log(z.Add(one)), 1e-13), "log1p at %v", z)

		require.True(t, closeRel(Cos(Acos(z)), z, 1e-12), "cos(acos) at %v", z)
		require.True(t, closeRel(Sin(Asin(z)), z, 1e-12), "sin(asin) at %v", z)
		require.True(t, closeRel(Tan(Atan(z)), z, 1e-12), "tan(atan) at %v", z)
		require.True(t, closeRel(Cosh(Acosh(z)), z, 1e-12), "cosh(acosh) at %v", z)
		require.True(t, closeRel(Sinh(Asinh(z)), z, 1e-12), "sinh(asinh) at %v", z)
		require.True(t, closeRel(Tanh(Atanh(z)), z, 1e-12), "tanh(atanh) at %v", z)
	}
}

func TestIdentitiesFloat32(t *testing.T) {
	one := One[float32]()
	for _, z64 := range randomBox(2, 100, 0.7) {
		z := New(float32(z64.Re), float32(z64.Im))
		s, c := Sin(z), Cos(z)
		require.True(t, closeRel(s.Mul(s).Add(c.Mul(c)), one, 1e-5), "sin²+cos² at %v", z)
		require.True(t, closeRel(Exp(Log(z)), z, 1e-5), "exp(log) at %v", z)
		require.True(t, closeRel(Cos(Acos(z)), z, 1e-4), "cos(acos) at %v", z)
		require.True(t, closeRel(Tan(Atan(z)), z, 1e-4), "tan(atan) at %v", z)
		require.True(t, closeRel(Sinh(Asinh(z)), z, 1e-4), "sinh(asinh) at %v", z)

		// single precision tracks double precision
		for name, f := range unary[float32]() {
			w32 := f(z)
			w64 := unary[float64]()[name](New(float64(z.Re), float64(z.Im)))
			require.True(t, closeRel(New(float64(w32.Re), float64(w32.Im)), w64, 1e-5), "%s at %v", name, z)
		}
	}
}

func TestAgainstRealFunctions(t *testing.T) {
	for _, x := range []float64{-0.9, -0.5, -0.25, 0.1, 0.5, 0.75} {
		z := FromReal(x)
		assert.InDelta(t, math.Exp(x), Exp(z).Re, 1e-15)
		assert.InDelta(t, math.Cos(x), Cos(z).Re, 1e-15)
		assert.InDelta(t, math.Sin(x), Sin(z).Re, 1e-15)
		assert.InDelta(t, math.Tan(x), Tan(z).Re, 1e-15)
		assert.InDelta(t, math.Tanh(x), Tanh(z).Re, 1e-15)
		assert.InDelta(t, math.Acos(x), Acos(z).Re, 1e-15)
		assert.InDelta(t, math.Asin(x), Asin(z).Re, 1e-15)
		assert.InDelta(t, math.Atan(x), Atan(z).Re, 1e-15)
		assert.InDelta(t, math.Asinh(x), Asinh(z).Re, 1e-15)
		assert.InDelta(t, math.Atanh(x), Atanh(z).Re, 1e-15)
		assert.InDelta(t, math.Log1p(x), LogOnePlus(z).Re, 1e-15)
		assert.InDelta(t, math.Expm1(x), ExpMinusOne(z).Re, 1e-15)
	}
	assert.InDelta(t, math.Acosh(2), Acosh(tp("2")).Re, 1e-15)
}

func TestTanhSaturates(t *testing.T) {
	assert.Equal(t, New(1.0, 0), Tanh(tp("50")))
	assert.Equal(t, New(1.0, 0), Tanh(tp("800")))
	assert.Equal(t, New(-1.0, 0), Tanh(tp("-800+0.5i")))
	assert.Equal(t, New(1.0, math.Copysign(0, -1)), Tanh(tp("1e300-2i")))

	// tan approaches ±i with the sign of Im z
	assert.Equal(t, New(0, 1.0), Tan(tp("0.5+800i")))
	assert.Equal(t, New(0, -1.0), Tan(tp("0.5-800i")))

	assert.True(t, Tanh(New(math.NaN(), 1)).IsNaN())
}

func TestLargeArguments(t *testing.T) {
	z := tp("1.5e308+1.5e308i")

	l := Log(z)
	require.True(t, l.IsFinite())
	assert.InDelta(t, math.Log(1.5e308)+0.5*math.Ln2, l.Re, 1e-12)
	assert.InDelta(t, math.Pi/4, l.Im, 1e-15)

	s := Sqrt(z)
	require.True(t, s.IsFinite())
	assert.InEpsilon(t, math.Sqrt(1.5e308)*math.Pow(2, 0.25), s.Length(), 1e-14)

	// acos for |z| past 1/√ε uses log(2z)
	a := Acos(tp("1e10+1e10i"))
	require.True(t, a.IsFinite())
	assert.True(t, closeRel(Cos(a), tp("1e10+1e10i"), 1e-13), "cos(acos) = %v", Cos(a))
}

func TestSpecialValues(t *testing.T) {
	inf := math.Inf(1)
	l := Log(Zero[float64]())
	assert.True(t, math.IsInf(l.Re, -1))
	assert.Equal(t, 0.0, l.Im)

	assert.Equal(t, New(inf, 0), Sqrt(New(inf, 0)))
	assert.Equal(t, New(inf, 0), Exp(New(inf, 0)))
	assert.True(t, Exp(New(math.NaN(), 0)).IsNaN())

	// every function is total
	for name, f := range unary[float64]() {
		for _, z := range []Complex[float64]{New(inf, 0), New(0, -inf), New(math.NaN(), 1), New(-inf, inf)} {
			assert.NotPanics(t, func() { f(z) }, "%s(%v)", name, z)
		}
	}
}

func TestExpMinusOneSmall(t *testing.T) {
	w := ExpMinusOne(tp("1e-10+1e-10i"))
	assert.InEpsilon(t, 1e-10, w.Re, 1e-9)
	assert.InEpsilon(t, 1e-10+1e-20, w.Im, 1e-9)

	// the naive form loses everything
	naive := Exp(tp("1e-20")).Sub(One[float64]())
	assert.Equal(t, 0.0, naive.Re)
	assert.Equal(t, 1e-20, ExpMinusOne(tp("1e-20")).Re)
}

func TestLogOnePlusSmall(t *testing.T) {
	assert.InEpsilon(t, 1e-20, LogOnePlus(tp("1e-20")).Re, 1e-15)
	assert.Equal(t, 0.0, Log(tp("1e-20").Add(One[float64]())).Re)
	assert.InDelta(t, math.Log(0.5), LogOnePlus(tp("-0.5")).Re, 1e-14)
	assert.InDelta(t, math.Log(2.5), LogOnePlus(tp("1.5")).Re, 1e-15)
}

func TestBranchCuts(t *testing.T) {
	neg0 := math.Copysign(0, -1)

	assert.Equal(t, math.Pi, Log(New(-2, 0.0)).Im)
	assert.Equal(t, -math.Pi, Log(New(-2, neg0)).Im)

	up, down := Sqrt(New(-4, 0.0)), Sqrt(New(-4, neg0))
	assert.InDelta(t, 2, up.Im, 1e-15)
	assert.InDelta(t, -2, down.Im, 1e-15)

	acosh2 := math.Acosh(2)
	tests := []struct {
		z    Complex[float64]
		want Complex[float64]
	}{
		{New(2, 0.0), New(0, -acosh2)},
		{New(2, neg0), New(0, acosh2)},
		{New(-2, 0.0), New(math.Pi, -acosh2)},
		{New(-2, neg0), New(math.Pi, acosh2)},
		{New(0.0, 3), New(math.Pi/2, -math.Asinh(3))},
		{New(neg0, 3), New(math.Pi/2, -math.Asinh(3))},
		{New(0.0, -3), New(math.Pi/2, math.Asinh(3))},
		{New(0.5, neg0), New(math.Acos(0.5), 0)},
		{New(-0.5, 0.0), New(math.Acos(-0.5), 0)},
	}
	for _, tc := range tests {
		got := Acos(tc.z)
		assert.True(t, equalApprox(got, tc.want, 1e-15), "acos(%v) = %v, want %v", tc.z, got, tc.want)
	}

	// continuous from the side the zero sign names
	for _, x := range []float64{-3, -1.5, 1.5, 3} {
		assert.True(t, equalApprox(Acos(New(x, 0.0)), Acos(New(x, 1e-12)), 1e-11), "acos above %v", x)
		assert.True(t, equalApprox(Acos(New(x, neg0)), Acos(New(x, -1e-12)), 1e-11), "acos below %v", x)
		assert.True(t, equalApprox(Asin(New(x, 0.0)), Asin(New(x, 1e-12)), 1e-11), "asin above %v", x)
		assert.True(t, equalApprox(Acosh(New(x, 0.0)), Acosh(New(x, 1e-12)), 1e-11), "acosh above %v", x)
	}

	// atan cut on the imaginary axis beyond ±i
	assert.InDelta(t, math.Pi/2, Atan(New(0.0, 2)).Re, 1e-15)
	assert.InDelta(t, -math.Pi/2, Atan(New(neg0, 2)).Re, 1e-15)
	assert.InDelta(t, math.Pi/2, Atan(New(0.0, -2)).Re, 1e-15)

	// acos keeps Re in [0, π] all the way around the unit circle
	for k := 0; k < 720; k++ {
		th := 2 * math.Pi * float64(k) / 720
		z := New(math.Cos(th), math.Sin(th))
		a := Acos(z)
		assert.True(t, a.Re >= 0 && a.Re <= math.Pi, "acos(%v) = %v", z, a)
	}
}

func TestAcosNearOne(t *testing.T) {
	// acos(1-d) = √(2d)·(1 + d/12 + 3d²/160 + …); the dropped terms are far
	// below double precision for these d
	tol := 16 * 0x1p-52
	for _, z := range []Complex[float64]{
		tp("0.9999999999+1e-8i"),
		tp("0.9999999999-1e-8i"),
		tp("0.999999999+1e-12i"),
		tp("0.99999999999999+1e-10i"),
	} {
		d := complex(1-z.Re, -z.Im)
		want := cmplx.Sqrt(2*d) * (1 + d/12 + 3*d*d/160)
		got := ToComplex128(Acos(z))
		assert.LessOrEqual(t, cmplx.Abs(got-want)/cmplx.Abs(want), tol, "acos(%v) = %v, want %v", z, got, want)

		// acos(-z) = π - acos(z); the imaginary part carries all the precision
		neg := Acos(z.Neg())
		assert.InEpsilon(t, -imag(want), neg.Im, tol, "acos(%v)", z.Neg())
		assert.InDelta(t, math.Pi-real(want), neg.Re, 2e-15)

		h := Acosh(z)
		assert.InEpsilon(t, cmplx.Abs(want), h.Length(), tol, "acosh(%v)", z)
	}
}

func TestSeriesThreshold(t *testing.T) {
	// asin and atan switch evaluation method at |z| = 1/2
	for _, x := range []float64{0.5, -0.5} {
		below, above := FromReal(x), FromReal(math.Nextafter(x, 2*x))
		assert.InDelta(t, math.Asin(x), Asin(below).Re, 1e-15)
		assert.InDelta(t, math.Asin(above.Re), Asin(above).Re, 1e-15)
		assert.InDelta(t, math.Atan(x), Atan(below).Re, 1e-15)
		assert.InDelta(t, math.Atan(above.Re), Atan(above).Re, 1e-15)
		assert.InDelta(t, math.Log1p(x), LogOnePlus(below).Re, 1e-15)
		assert.InDelta(t, math.Log1p(above.Re), LogOnePlus(above).Re, 1e-15)
	}
	z := tp("0.3+0.4i")
	zz := z.Scale(1 + 1e-15)
	assert.True(t, equalApprox(Asin(z), Asin(zz), 1e-14))
	assert.True(t, equalApprox(Atan(z), Atan(zz), 1e-14))
}

// countingReal counts the transcendental calls a function makes.
type countingReal struct {
	Float64
	exp, log *atomic.Int64
}

func (c countingReal) Exp(x float64) float64 {
	c.exp.Add(1)
	return c.Float64.Exp(x)
}

func (c countingReal) Log(x float64) float64 {
	c.log.Add(1)
	return c.Float64.Log(x)
}

func TestSqrtAvoidsExpLog(t *testing.T) {
	c := countingReal{exp: new(atomic.Int64), log: new(atomic.Int64)}
	f := With[float64](c)
	for _, z := range randomBox(3, 50, 10) {
		assert.True(t, closeRel(f.Sqrt(z), Sqrt(z), 0))
	}
	assert.Zero(t, c.exp.Load())
	assert.Zero(t, c.log.Load())

	// the capability is the only source of real functions
	f.Exp(tp("1+1i"))
	assert.Equal(t, int64(1), c.exp.Load())
	assert.Equal(t, Real[float64](c), f.Real())
}

func BenchmarkExp(b *testing.B) {
	z := tp("0.75+0.5i")
	for i := 0; i < b.N; i++ {
		_ = Exp(z)
	}
}

func BenchmarkPow(b *testing.B) {
	z, w := tp("0.75+0.5i"), tp("1.25-0.5i")
	for i := 0; i < b.N; i++ {
		_ = Pow(z, w)
	}
}

func BenchmarkSqrt(b *testing.B) {
	z := tp("0.75+0.5i")
	for i := 0; i < b.N; i++ {
		_ = Sqrt(z)
	}
}

func BenchmarkAcos(b *testing.B) {
	z := tp("0.75+0.5i")
	for i := 0; i < b.N; i++ {
		_ = Acos(z)
	}
}
