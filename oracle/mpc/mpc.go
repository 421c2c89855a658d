//go:build mpc

// Package mpc evaluates the complex elementary functions with GNU MPC at a
// caller-chosen precision. It is the arbitrary-precision reference that the
// native oracle itself can be checked against.
//
// Build requirements:
//   - libmpc, libmpfr, libgmp (headers + libs)
//     Debian/Ubuntu: sudo apt-get install -y libmpc-dev libmpfr-dev libgmp-dev build-essential
//     macOS/Homebrew: brew install mpc mpfr gmp
//   - the "mpc" build tag: go test -tags mpc ./oracle/mpc
//
// Minimal usage:
//
//	e := mpc.NewEvaluator(256)
//	v, _ := e.Eval("exp", gcomplex.New(0.5, 1.0))
//	fmt.Println(v.StringScientific(40), v.Complex())
//
// SPDX-License-Identifier: MIT
package mpc

/*
#cgo CFLAGS: -O2
#cgo LDFLAGS: -lmpc -lmpfr -lgmp
#include <stdlib.h>
#include <mpc.h>
#include <mpfr.h>

typedef int (*gc_unary)(mpc_ptr, mpc_srcptr, mpc_rnd_t);

static int gc_call(gc_unary f, mpc_ptr rop, mpc_srcptr op) {
    return f(rop, op, MPC_RNDNN);
}

// mpc_realref/mpc_imagref are macros, cgo can't see them.
static double gc_get_re(mpc_srcptr z) { return mpfr_get_d(mpc_realref(z), MPFR_RNDN); }
static double gc_get_im(mpc_srcptr z) { return mpfr_get_d(mpc_imagref(z), MPFR_RNDN); }

// MPC has no expm1 or log1p. At the working precision the naive forms are
// exact enough as long as it covers the exponent of z.
static int gc_expm1(mpc_ptr rop, mpc_srcptr op, mpc_rnd_t rnd) {
    int r = mpc_exp(rop, op, rnd);
    mpc_sub_ui(rop, rop, 1, rnd);
    return r;
}

static int gc_log1p(mpc_ptr rop, mpc_srcptr op, mpc_rnd_t rnd) {
    mpc_add_ui(rop, op, 1, rnd);
    return mpc_log(rop, rop, rnd);
}

static char* gc_mpfr_to_str_sci(mpfr_srcptr x, int digits) {
    if (digits < 1) digits = 1;
    int n = mpfr_snprintf(NULL, 0, "%.*Re", digits, x);
    if (n < 0) return NULL;
    char *buf = (char*)malloc((size_t)n + 1);
    if (!buf) return NULL;
    if (mpfr_snprintf(buf, (size_t)n + 1, "%.*Re", digits, x) < 0) {
        free(buf);
        return NULL;
    }
    return buf;
}

static char* gc_re_sci(mpc_srcptr z, int digits) { return gc_mpfr_to_str_sci(mpc_realref(z), digits); }
static char* gc_im_sci(mpc_srcptr z, int digits) { return gc_mpfr_to_str_sci(mpc_imagref(z), digits); }
*/
import "C"

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
	"unsafe"

	"github.com/lukaszgryglicki/gcomplex"
)

// default rounding mode (nearest, nearest)
var defaultRnd = C.mpc_rnd_t(C.MPC_RNDNN)

// Value is an arbitrary-precision complex backed by GNU MPC/MPFR.
// Use New; zero value is not usable.
type Value struct {
	z    C.mpc_t
	prec uint
	init bool
}

// New allocates a value with the given precision in bits. If bits==0, 53 is used.
func New(bits uint) *Value {
	if bits == 0 {
		bits = 53
	}
	v := &Value{prec: bits}
	C.mpc_init2(&v.z[0], C.mpfr_prec_t(bits))
	v.init = true
	runtime.SetFinalizer(v, func(vv *Value) {
		if vv.init {
			C.mpc_clear(&vv.z[0])
			vv.init = false
		}
	})
	return v
}

// Close frees C resources.
func (v *Value) Close() {
	if v != nil && v.init {
		C.mpc_clear(&v.z[0])
		v.init = false
	}
}

// Prec returns precision in bits.
func (v *Value) Prec() uint { return v.prec }

// SetComplex sets v to z exactly.
func (v *Value) SetComplex(z gcomplex.Complex[float64]) *Value {
	C.mpc_set_d_d(&v.z[0], C.double(z.Re), C.double(z.Im), defaultRnd)
	return v
}

// Complex rounds v to the nearest float64 parts.
func (v *Value) Complex() gcomplex.Complex[float64] {
	return gcomplex.New(float64(C.gc_get_re(&v.z[0])), float64(C.gc_get_im(&v.z[0])))
}

// StringScientific renders v as "a+bi" with digits digits after the point.
func (v *Value) StringScientific(digits int) string {
	re := C.gc_re_sci(&v.z[0], C.int(digits))
	im := C.gc_im_sci(&v.z[0], C.int(digits))
	if re == nil || im == nil {
		C.free(unsafe.Pointer(re))
		C.free(unsafe.Pointer(im))
		return "NaN+NaNi"
	}
	defer C.free(unsafe.Pointer(re))
	defer C.free(unsafe.Pointer(im))
	rs, is := C.GoString(re), C.GoString(im)
	if !strings.HasPrefix(is, "-") {
		is = "+" + is
	}
	return rs + is + "i"
}

var unary = map[string]C.gc_unary{
	"exp":   C.gc_unary(C.mpc_exp),
	"expm1": C.gc_unary(C.gc_expm1),
	"log":   C.gc_unary(C.mpc_log),
	"log1p": C.gc_unary(C.gc_log1p),
	"sqrt":  C.gc_unary(C.mpc_sqrt),
	"cos":   C.gc_unary(C.mpc_cos),
	"sin":   C.gc_unary(C.mpc_sin),
	"tan":   C.gc_unary(C.mpc_tan),
	"cosh":  C.gc_unary(C.mpc_cosh),
	"sinh":  C.gc_unary(C.mpc_sinh),
	"tanh":  C.gc_unary(C.mpc_tanh),
	"acos":  C.gc_unary(C.mpc_acos),
	"asin":  C.gc_unary(C.mpc_asin),
	"atan":  C.gc_unary(C.mpc_atan),
	"acosh": C.gc_unary(C.mpc_acosh),
	"asinh": C.gc_unary(C.mpc_asinh),
	"atanh": C.gc_unary(C.mpc_atanh),
}

// Names returns the sorted names Eval accepts.
func Names() []string {
	out := make([]string, 0, len(unary))
	for name := range unary {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Evaluator computes at a fixed working precision. The result is only as
// good as the precision: log1p and expm1 of tiny z need bits well beyond
// the exponent of z.
type Evaluator struct {
	bits uint
}

// NewEvaluator returns an evaluator working with bits of precision.
func NewEvaluator(bits uint) Evaluator { return Evaluator{bits: bits} }

// Bits returns the working precision.
func (e Evaluator) Bits() uint { return e.bits }

func (e Evaluator) value(z gcomplex.Complex[float64]) *Value {
	return New(e.bits).SetComplex(z)
}

// Eval applies the named one-argument function to z.
func (e Evaluator) Eval(name string, z gcomplex.Complex[float64]) (*Value, error) {
	f, ok := unary[name]
	if !ok {
		return nil, fmt.Errorf("mpc: unknown function %q", name)
	}
	v := e.value(z)
	C.gc_call(f, &v.z[0], &v.z[0])
	return v, nil
}

// Pow returns z^w.
func (e Evaluator) Pow(z, w gcomplex.Complex[float64]) *Value {
	v, x := e.value(z), e.value(w)
	defer x.Close()
	C.mpc_pow(&v.z[0], &v.z[0], &x.z[0], defaultRnd)
	return v
}

// PowInt returns z^n.
func (e Evaluator) PowInt(z gcomplex.Complex[float64], n int) *Value {
	v := e.value(z)
	C.mpc_pow_si(&v.z[0], &v.z[0], C.long(n), defaultRnd)
	return v
}

// Root returns the principal n-th root, z^(1/n) with 1/n at full precision.
func (e Evaluator) Root(z gcomplex.Complex[float64], n int) *Value {
	v, x := e.value(z), New(e.bits)
	defer x.Close()
	C.mpc_set_ui(&x.z[0], 1, defaultRnd)
	if n < 0 {
		C.mpc_neg(&x.z[0], &x.z[0], defaultRnd)
		n = -n
	}
	C.mpc_div_ui(&x.z[0], &x.z[0], C.ulong(n), defaultRnd)
	C.mpc_pow(&v.z[0], &v.z[0], &x.z[0], defaultRnd)
	return v
}
