package oracle

/*
#cgo CFLAGS: -O2
#cgo LDFLAGS: -lm
#include <complex.h>
#include <float.h>

typedef struct { float re, im; } gc_cfloat;
typedef struct { double re, im; } gc_cdouble;

// One shim per routine and precision. Arguments and results cross the
// boundary as plain structs; "l" shims compute in long double and round to
// double on the way out.
#define GC_UNARY(S, T, CT, name, expr)                  \
	static S gc_##name(S z) {                           \
		CT complex a;                                   \
		__real__ a = z.re;                              \
		__imag__ a = z.im;                              \
		CT complex b = expr;                            \
		return (S){ (T)__real__ b, (T)__imag__ b };     \
	}

#define GC_BINARY(S, T, CT, name, fn)                   \
	static S gc_##name(S z, S w) {                      \
		CT complex a, b;                                \
		__real__ a = z.re;                              \
		__imag__ a = z.im;                              \
		__real__ b = w.re;                              \
		__imag__ b = w.im;                              \
		CT complex c = fn(a, b);                        \
		return (S){ (T)__real__ c, (T)__imag__ c };     \
	}

#define GC_ALL(name, fn)                                                \
	GC_UNARY(gc_cfloat, float, float, name##f, fn##f(a))               \
	GC_UNARY(gc_cdouble, double, double, name, fn(a))                  \
	GC_UNARY(gc_cdouble, double, long double, name##l, fn##l(a))

GC_ALL(exp, cexp)
GC_ALL(log, clog)
GC_ALL(sqrt, csqrt)
GC_ALL(cos, ccos)
GC_ALL(sin, csin)
GC_ALL(tan, ctan)
GC_ALL(cosh, ccosh)
GC_ALL(sinh, csinh)
GC_ALL(tanh, ctanh)
GC_ALL(acos, cacos)
GC_ALL(asin, casin)
GC_ALL(atan, catan)
GC_ALL(acosh, cacosh)
GC_ALL(asinh, casinh)
GC_ALL(atanh, catanh)

// e^z - 1 = 2·e^(z/2)·sinh(z/2) keeps full relative accuracy near zero,
// where cexp(z)-1 does not. log(1+z) = 2·atanh(z/(2+z)) does the same for
// small z but loses it next to z = -1, where 1+z is exact and clog is used.
GC_UNARY(gc_cfloat, float, float, expm1f, 2 * cexpf(a / 2) * csinhf(a / 2))
GC_UNARY(gc_cdouble, double, double, expm1, 2 * cexp(a / 2) * csinh(a / 2))
GC_UNARY(gc_cdouble, double, long double, expm1l, 2 * cexpl(a / 2) * csinhl(a / 2))
GC_UNARY(gc_cfloat, float, float, log1pf,
	cabsf(a) < 0.5f ? 2 * catanhf(a / (2 + a)) : clogf(1 + a))
GC_UNARY(gc_cdouble, double, double, log1p,
	cabs(a) < 0.5 ? 2 * catanh(a / (2 + a)) : clog(1 + a))
GC_UNARY(gc_cdouble, double, long double, log1pl,
	cabsl(a) < 0.5L ? 2 * catanhl(a / (2 + a)) : clogl(1 + a))

GC_BINARY(gc_cfloat, float, float, powf, cpowf)
GC_BINARY(gc_cdouble, double, double, pow, cpow)
GC_BINARY(gc_cdouble, double, long double, powl, cpowl)
*/
import "C"

import "github.com/lukaszgryglicki/gcomplex"

type (
	c64  = gcomplex.Complex[float32]
	c128 = gcomplex.Complex[float64]
)

func toF(z c64) C.gc_cfloat     { return C.gc_cfloat{re: C.float(z.Re), im: C.float(z.Im)} }
func fromF(z C.gc_cfloat) c64   { return gcomplex.New(float32(z.re), float32(z.im)) }
func toD(z c128) C.gc_cdouble   { return C.gc_cdouble{re: C.double(z.Re), im: C.double(z.Im)} }
func fromD(z C.gc_cdouble) c128 { return gcomplex.New(float64(z.re), float64(z.im)) }

// C functions are not Go values, so every table entry is a small closure.

var single = Routines[float32]{
	Name:        "single",
	Exp:         func(z c64) c64 { return fromF(C.gc_expf(toF(z))) },
	ExpMinusOne: func(z c64) c64 { return fromF(C.gc_expm1f(toF(z))) },
	Log:         func(z c64) c64 { return fromF(C.gc_logf(toF(z))) },
	LogOnePlus:  func(z c64) c64 { return fromF(C.gc_log1pf(toF(z))) },
	Sqrt:        func(z c64) c64 { return fromF(C.gc_sqrtf(toF(z))) },
	Pow:         func(z, w c64) c64 { return fromF(C.gc_powf(toF(z), toF(w))) },
	Cos:         func(z c64) c64 { return fromF(C.gc_cosf(toF(z))) },
	Sin:         func(z c64) c64 { return fromF(C.gc_sinf(toF(z))) },
	Tan:         func(z c64) c64 { return fromF(C.gc_tanf(toF(z))) },
	Cosh:        func(z c64) c64 { return fromF(C.gc_coshf(toF(z))) },
	Sinh:        func(z c64) c64 { return fromF(C.gc_sinhf(toF(z))) },
	Tanh:        func(z c64) c64 { return fromF(C.gc_tanhf(toF(z))) },
	Acos:        func(z c64) c64 { return fromF(C.gc_acosf(toF(z))) },
	Asin:        func(z c64) c64 { return fromF(C.gc_asinf(toF(z))) },
	Atan:        func(z c64) c64 { return fromF(C.gc_atanf(toF(z))) },
	Acosh:       func(z c64) c64 { return fromF(C.gc_acoshf(toF(z))) },
	Asinh:       func(z c64) c64 { return fromF(C.gc_asinhf(toF(z))) },
	Atanh:       func(z c64) c64 { return fromF(C.gc_atanhf(toF(z))) },
}

var double = Routines[float64]{
	Name:        "double",
	Exp:         func(z c128) c128 { return fromD(C.gc_exp(toD(z))) },
	ExpMinusOne: func(z c128) c128 { return fromD(C.gc_expm1(toD(z))) },
	Log:         func(z c128) c128 { return fromD(C.gc_log(toD(z))) },
	LogOnePlus:  func(z c128) c128 { return fromD(C.gc_log1p(toD(z))) },
	Sqrt:        func(z c128) c128 { return fromD(C.gc_sqrt(toD(z))) },
	Pow:         func(z, w c128) c128 { return fromD(C.gc_pow(toD(z), toD(w))) },
	Cos:         func(z c128) c128 { return fromD(C.gc_cos(toD(z))) },
	Sin:         func(z c128) c128 { return fromD(C.gc_sin(toD(z))) },
	Tan:         func(z c128) c128 { return fromD(C.gc_tan(toD(z))) },
	Cosh:        func(z c128) c128 { return fromD(C.gc_cosh(toD(z))) },
	Sinh:        func(z c128) c128 { return fromD(C.gc_sinh(toD(z))) },
	Tanh:        func(z c128) c128 { return fromD(C.gc_tanh(toD(z))) },
	Acos:        func(z c128) c128 { return fromD(C.gc_acos(toD(z))) },
	Asin:        func(z c128) c128 { return fromD(C.gc_asin(toD(z))) },
	Atan:        func(z c128) c128 { return fromD(C.gc_atan(toD(z))) },
	Acosh:       func(z c128) c128 { return fromD(C.gc_acosh(toD(z))) },
	Asinh:       func(z c128) c128 { return fromD(C.gc_asinh(toD(z))) },
	Atanh:       func(z c128) c128 { return fromD(C.gc_atanh(toD(z))) },
}

var extended = Routines[float64]{
	Name:        "extended",
	Exp:         func(z c128) c128 { return fromD(C.gc_expl(toD(z))) },
	ExpMinusOne: func(z c128) c128 { return fromD(C.gc_expm1l(toD(z))) },
	Log:         func(z c128) c128 { return fromD(C.gc_logl(toD(z))) },
	LogOnePlus:  func(z c128) c128 { return fromD(C.gc_log1pl(toD(z))) },
	Sqrt:        func(z c128) c128 { return fromD(C.gc_sqrtl(toD(z))) },
	Pow:         func(z, w c128) c128 { return fromD(C.gc_powl(toD(z), toD(w))) },
	Cos:         func(z c128) c128 { return fromD(C.gc_cosl(toD(z))) },
	Sin:         func(z c128) c128 { return fromD(C.gc_sinl(toD(z))) },
	Tan:         func(z c128) c128 { return fromD(C.gc_tanl(toD(z))) },
	Cosh:        func(z c128) c128 { return fromD(C.gc_coshl(toD(z))) },
	Sinh:        func(z c128) c128 { return fromD(C.gc_sinhl(toD(z))) },
	Tanh:        func(z c128) c128 { return fromD(C.gc_tanhl(toD(z))) },
	Acos:        func(z c128) c128 { return fromD(C.gc_acosl(toD(z))) },
	Asin:        func(z c128) c128 { return fromD(C.gc_asinl(toD(z))) },
	Atan:        func(z c128) c128 { return fromD(C.gc_atanl(toD(z))) },
	Acosh:       func(z c128) c128 { return fromD(C.gc_acoshl(toD(z))) },
	Asinh:       func(z c128) c128 { return fromD(C.gc_asinhl(toD(z))) },
	Atanh:       func(z c128) c128 { return fromD(C.gc_atanhl(toD(z))) },
}

// LongDoubleBits reports the significand width of C's long double on this
// platform: 64 for x87 extended, 113 for IEEE quad, 53 where it aliases
// double.
func LongDoubleBits() int { return int(C.LDBL_MANT_DIG) }
