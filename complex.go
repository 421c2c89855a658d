package gcomplex

import (
	"fmt"
	"strconv"
	"strings"
)

// Complex is an immutable complex value with components of type F.
// The zero value is 0+0i. Every operation returns a new value.
type Complex[F Float] struct {
	Re F
	Im F
}

// New returns re + im·i.
func New[F Float](re, im F) Complex[F] { return Complex[F]{Re: re, Im: im} }

// FromReal returns x + 0i.
func FromReal[F Float](x F) Complex[F] { return Complex[F]{Re: x} }

func Zero[F Float]() Complex[F] { return Complex[F]{} }
func One[F Float]() Complex[F]  { return Complex[F]{Re: 1} }
func I[F Float]() Complex[F]    { return Complex[F]{Im: 1} }

func FromComplex128(z complex128) Complex[float64] { return Complex[float64]{real(z), imag(z)} }
func FromComplex64(z complex64) Complex[float32]   { return Complex[float32]{real(z), imag(z)} }
func ToComplex128(z Complex[float64]) complex128   { return complex(z.Re, z.Im) }
func ToComplex64(z Complex[float32]) complex64     { return complex(z.Re, z.Im) }

// Algebraic ops (non-mutating)
func (z Complex[F]) Add(w Complex[F]) Complex[F] { return Complex[F]{z.Re + w.Re, z.Im + w.Im} }
func (z Complex[F]) Sub(w Complex[F]) Complex[F] { return Complex[F]{z.Re - w.Re, z.Im - w.Im} }
func (z Complex[F]) Neg() Complex[F]             { return Complex[F]{-z.Re, -z.Im} }
func (z Complex[F]) Conj() Complex[F]            { return Complex[F]{z.Re, -z.Im} }
func (z Complex[F]) Scale(x F) Complex[F]        { return Complex[F]{z.Re * x, z.Im * x} }
func (z Complex[F]) Divide(x F) Complex[F]       { return Complex[F]{z.Re / x, z.Im / x} }

// Rotate returns i·z. The rotation is exact, and unlike a multiplication by
// 0+1i it never manufactures a NaN from an infinite component.
func (z Complex[F]) Rotate() Complex[F] { return Complex[F]{-z.Im, z.Re} }

// RotateBack returns -i·z exactly.
func (z Complex[F]) RotateBack() Complex[F] { return Complex[F]{z.Im, -z.Re} }

// addReal returns x + z keeping the sign of a zero imaginary part.
func (z Complex[F]) addReal(x F) Complex[F] { return Complex[F]{x + z.Re, z.Im} }

// Mul returns z·w. When the naive product is NaN in both components the
// infinities are recovered as in C99 Annex G.
func (z Complex[F]) Mul(w Complex[F]) Complex[F] {
	a, b, c, d := z.Re, z.Im, w.Re, w.Im
	re := a*c - b*d
	im := a*d + b*c
	if isNaN(re) && isNaN(im) {
		return mulRecover(a, b, c, d)
	}
	return Complex[F]{re, im}
}

func mulRecover[F Float](a, b, c, d F) Complex[F] {
	recalc := false
	box := func(x F) F {
		if isInf(x) {
			return copysign(1, x)
		}
		return copysign(0, x)
	}
	clearNaN := func(x F) F {
		if isNaN(x) {
			return copysign(0, x)
		}
		return x
	}
	if isInf(a) || isInf(b) {
		a, b = box(a), box(b)
		c, d = clearNaN(c), clearNaN(d)
		recalc = true
	}
	if isInf(c) || isInf(d) {
		c, d = box(c), box(d)
		a, b = clearNaN(a), clearNaN(b)
		recalc = true
	}
	if !recalc {
		return Complex[F]{a*c - b*d, a*d + b*c}
	}
	pinf := inf[F](1)
	return Complex[F]{pinf * (a*c - b*d), pinf * (a*d + b*c)}
}

// Div returns z/w using Smith's algorithm, with the C99 Annex G recovery of
// infinities and zeros when the quotient comes out as NaN+NaN·i.
func (z Complex[F]) Div(w Complex[F]) Complex[F] {
	a, b, c, d := z.Re, z.Im, w.Re, w.Im
	// keep a+b·r and c+r·d below overflow
	h, scale := huge[F](), F(1)
	if abs(a) > h || abs(b) > h {
		a, b, scale = a/4, b/4, 4
	}
	if abs(c) > h || abs(d) > h {
		c, d, scale = c/4, d/4, scale/4
	}
	var e, f F
	if abs(c) >= abs(d) {
		ratio := d / c
		denom := c + ratio*d
		e = (a + b*ratio) / denom
		f = (b - a*ratio) / denom
	} else {
		ratio := c / d
		denom := d + ratio*c
		e = (a*ratio + b) / denom
		f = (b*ratio - a) / denom
	}
	if isNaN(e) && isNaN(f) {
		switch {
		case c == 0 && d == 0 && (!isNaN(a) || !isNaN(b)):
			e = copysign(inf[F](1), c) * a
			f = copysign(inf[F](1), c) * b
		case (isInf(a) || isInf(b)) && isFinite(c) && isFinite(d):
			a, b = boxInf(a), boxInf(b)
			pinf := inf[F](1)
			e = pinf * (a*c + b*d)
			f = pinf * (b*c - a*d)
		case (isInf(c) || isInf(d)) && isFinite(a) && isFinite(b):
			c, d = boxInf(c), boxInf(d)
			e = 0 * (a*c + b*d)
			f = 0 * (b*c - a*d)
		}
	}
	return Complex[F]{e * scale, f * scale}
}

func boxInf[F Float](x F) F {
	if isInf(x) {
		return copysign(1, x)
	}
	return copysign(0, x)
}

// Length returns |z| without intermediate overflow or underflow.
func (z Complex[F]) Length() F { return Default[F]().Hypot(z.Re, z.Im) }

// Phase returns arg(z) in (-π, π].
func (z Complex[F]) Phase() F { return Default[F]().Atan2(z.Im, z.Re) }

func (z Complex[F]) IsFinite() bool { return isFinite(z.Re) && isFinite(z.Im) }
func (z Complex[F]) IsInf() bool    { return isInf(z.Re) || isInf(z.Im) }
func (z Complex[F]) IsNaN() bool    { return !z.IsInf() && (isNaN(z.Re) || isNaN(z.Im)) }
func (z Complex[F]) IsZero() bool   { return z.Re == 0 && z.Im == 0 }

// Equal compares component-wise; ±0 are equal and NaN equals nothing.
func (z Complex[F]) Equal(w Complex[F]) bool { return z.Re == w.Re && z.Im == w.Im }

func isFinite[F Float](x F) bool { return !isNaN(x) && !isInf(x) }

func abs[F Float](x F) F {
	if x < 0 || (x == 0 && signbit(x)) {
		return -x
	}
	return x
}

func copysign[F Float](x, sign F) F {
	if signbit(x) != signbit(sign) {
		return -x
	}
	return x
}

// Parse parses a complex literal. Accepts:
//
//	"a+bi", "a-bi", "i", "-i", plain real "a", or pair form "(a b)" / "(a, b)".
func Parse[F Float](s string) (Complex[F], error) {
	re, im, ok := normalizeToPair(s)
	if !ok {
		return Complex[F]{}, fmt.Errorf("gcomplex: invalid complex literal %q", s)
	}
	bits := Default[F]().MantissaBits()
	size := 64
	if bits <= 24 {
		size = 32
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(re), size)
	if err != nil {
		return Complex[F]{}, fmt.Errorf("gcomplex: invalid real part %q", re)
	}
	i, err := strconv.ParseFloat(strings.TrimSpace(im), size)
	if err != nil {
		return Complex[F]{}, fmt.Errorf("gcomplex: invalid imaginary part %q", im)
	}
	return Complex[F]{F(r), F(i)}, nil
}

// MustParse panics on error.
func MustParse[F Float](s string) Complex[F] {
	z, err := Parse[F](s)
	if err != nil {
		panic(err)
	}
	return z
}

// normalizeToPair converts common forms into separate real/imag strings.
func normalizeToPair(in string) (string, string, bool) {
	s := strings.TrimSpace(in)
	if s == "" {
		return "0", "0", true
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		mid := strings.TrimSpace(s[1 : len(s)-1])
		mid = strings.ReplaceAll(mid, ",", " ")
		f := strings.Fields(mid)
		switch len(f) {
		case 1:
			return f[0], "0", true
		case 2:
			return f[0], f[1], true
		}
		return "", "", false
	}
	s = strings.ReplaceAll(s, "I", "i")
	switch s {
	case "i", "+i":
		return "0", "1", true
	case "-i":
		return "0", "-1", true
	}
	if strings.HasSuffix(s, "i") {
		core := strings.TrimSpace(s[:len(s)-1])
		idx := lastSignNotInExponent(core)
		if idx > 0 {
			re := strings.TrimSpace(core[:idx])
			im := strings.TrimSpace(core[idx:])
			if im == "+" || im == "-" {
				im += "1"
			}
			return re, im, true
		}
		if core == "" || core == "+" || core == "-" {
			return "0", core + "1", true
		}
		return "0", core, true
	}
	return s, "0", true
}

// lastSignNotInExponent finds last '+'/'-' not part of an exponent and not at position 0.
func lastSignNotInExponent(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] == '+' || s[i] == '-' {
			if s[i-1] != 'e' && s[i-1] != 'E' {
				return i
			}
		}
	}
	return -1
}

// String formats z as "a+bi" with the shortest representation of each part.
func (z Complex[F]) String() string { return z.format('g', -1) }

// StringFixed formats z as "a+bi" with digits fractional digits.
func (z Complex[F]) StringFixed(digits int) string {
	if digits < 0 {
		digits = 0
	}
	return z.format('f', digits)
}

// StringScientific formats z as "a+bi" with digits significant fractional digits.
func (z Complex[F]) StringScientific(digits int) string {
	if digits < 1 {
		digits = 1
	}
	return z.format('e', digits)
}

func (z Complex[F]) format(verb byte, digits int) string {
	size := 64
	if Default[F]().MantissaBits() <= 24 {
		size = 32
	}
	rs := strconv.FormatFloat(float64(z.Re), verb, digits, size)
	is := strconv.FormatFloat(float64(z.Im), verb, digits, size)
	sign := "+"
	if strings.HasPrefix(is, "-") {
		sign, is = "-", is[1:]
	} else if strings.HasPrefix(is, "+") {
		is = is[1:]
	}
	return rs + sign + is + "i"
}
