package gcomplex

import "math"

// Float is the set of real scalar types the package is generic over.
type Float interface {
	float32 | float64
}

// Real supplies the real-valued elementary functions for one precision.
// Every method is expected to be correctly rounded (or within an ulp) for F.
type Real[F Float] interface {
	Exp(x F) F
	Expm1(x F) F
	Log(x F) F
	Log1p(x F) F
	Sqrt(x F) F
	Pow(x, y F) F

	Cos(x F) F
	Sin(x F) F
	Tan(x F) F
	Cosh(x F) F
	Sinh(x F) F
	Tanh(x F) F

	Acos(x F) F
	Asin(x F) F
	Atan(x F) F
	Acosh(x F) F
	Asinh(x F) F
	Atanh(x F) F

	Atan2(y, x F) F
	Hypot(p, q F) F
	Copysign(x, sign F) F

	Pi() F
	// Epsilon is the distance from 1 to the next larger value of F.
	Epsilon() F
	// MantissaBits counts the significand bits including the implicit one.
	MantissaBits() int
}

// Float64 is the double precision capability backed by package math.
type Float64 struct{}

func (Float64) Exp(x float64) float64         { return math.Exp(x) }
func (Float64) Expm1(x float64) float64       { return math.Expm1(x) }
func (Float64) Log(x float64) float64         { return math.Log(x) }
func (Float64) Log1p(x float64) float64       { return math.Log1p(x) }
func (Float64) Sqrt(x float64) float64        { return math.Sqrt(x) }
func (Float64) Pow(x, y float64) float64      { return math.Pow(x, y) }
func (Float64) Cos(x float64) float64         { return math.Cos(x) }
func (Float64) Sin(x float64) float64         { return math.Sin(x) }
func (Float64) Tan(x float64) float64         { return math.Tan(x) }
func (Float64) Cosh(x float64) float64        { return math.Cosh(x) }
func (Float64) Sinh(x float64) float64        { return math.Sinh(x) }
func (Float64) Tanh(x float64) float64        { return math.Tanh(x) }
func (Float64) Acos(x float64) float64        { return math.Acos(x) }
func (Float64) Asin(x float64) float64        { return math.Asin(x) }
func (Float64) Atan(x float64) float64        { return math.Atan(x) }
func (Float64) Acosh(x float64) float64       { return math.Acosh(x) }
func (Float64) Asinh(x float64) float64       { return math.Asinh(x) }
func (Float64) Atanh(x float64) float64       { return math.Atanh(x) }
func (Float64) Atan2(y, x float64) float64    { return math.Atan2(y, x) }
func (Float64) Hypot(p, q float64) float64    { return math.Hypot(p, q) }
func (Float64) Copysign(x, s float64) float64 { return math.Copysign(x, s) }
func (Float64) Pi() float64                   { return math.Pi }
func (Float64) Epsilon() float64              { return 0x1p-52 }
func (Float64) MantissaBits() int             { return 53 }

// Float32 is the single precision capability. Each function is evaluated in
// double precision and rounded once, which is correctly rounded for float32
// in all but a vanishing number of cases.
type Float32 struct{}

func (Float32) Exp(x float32) float32   { return float32(math.Exp(float64(x))) }
func (Float32) Expm1(x float32) float32 { return float32(math.Expm1(float64(x))) }
func (Float32) Log(x float32) float32   { return float32(math.Log(float64(x))) }
func (Float32) Log1p(x float32) float32 { return float32(math.Log1p(float64(x))) }
func (Float32) Sqrt(x float32) float32  { return float32(math.Sqrt(float64(x))) }
func (Float32) Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
func (Float32) Cos(x float32) float32   { return float32(math.Cos(float64(x))) }
func (Float32) Sin(x float32) float32   { return float32(math.Sin(float64(x))) }
func (Float32) Tan(x float32) float32   { return float32(math.Tan(float64(x))) }
func (Float32) Cosh(x float32) float32  { return float32(math.Cosh(float64(x))) }
func (Float32) Sinh(x float32) float32  { return float32(math.Sinh(float64(x))) }
func (Float32) Tanh(x float32) float32  { return float32(math.Tanh(float64(x))) }
func (Float32) Acos(x float32) float32  { return float32(math.Acos(float64(x))) }
func (Float32) Asin(x float32) float32  { return float32(math.Asin(float64(x))) }
func (Float32) Atan(x float32) float32  { return float32(math.Atan(float64(x))) }
func (Float32) Acosh(x float32) float32 { return float32(math.Acosh(float64(x))) }
func (Float32) Asinh(x float32) float32 { return float32(math.Asinh(float64(x))) }
func (Float32) Atanh(x float32) float32 { return float32(math.Atanh(float64(x))) }
func (Float32) Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
func (Float32) Hypot(p, q float32) float32 {
	return float32(math.Hypot(float64(p), float64(q)))
}
func (Float32) Copysign(x, s float32) float32 {
	return float32(math.Copysign(float64(x), float64(s)))
}
func (Float32) Pi() float32       { return math.Pi }
func (Float32) Epsilon() float32  { return 0x1p-23 }
func (Float32) MantissaBits() int { return 24 }

var (
	real32 Real[float32] = Float32{}
	real64 Real[float64] = Float64{}
)

// Default returns the built-in capability for F.
func Default[F Float]() Real[F] {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return any(real32).(Real[F])
	}
	return any(real64).(Real[F])
}

func isInf[F Float](x F) bool { return math.IsInf(float64(x), 0) }

func isNaN[F Float](x F) bool { return x != x }

func signbit[F Float](x F) bool { return math.Signbit(float64(x)) }

func inf[F Float](sign int) F { return F(math.Inf(sign)) }

// huge is a quarter of the largest finite F.
func huge[F Float]() F {
	if Default[F]().MantissaBits() <= 24 {
		return F(float32(math.MaxFloat32 / 4))
	}
	x := math.MaxFloat64 / 4
	return F(x)
}
