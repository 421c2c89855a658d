package sweep

import (
	"math"
	"sort"

	"github.com/lukaszgryglicki/gcomplex"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RelativeError returns |got - want| / |want| measured in float64. Equal
// values, zeros included, have error 0; any difference from a zero want is
// +Inf.
func RelativeError[F gcomplex.Float](got, want gcomplex.Complex[F]) float64 {
	dr := float64(got.Re) - float64(want.Re)
	di := float64(got.Im) - float64(want.Im)
	num := math.Hypot(dr, di)
	if num == 0 {
		return 0
	}
	return num / math.Hypot(float64(want.Re), float64(want.Im))
}

// Tolerance converts ulps at the given significand width into a relative
// error bound: 16 ulps of a 53-bit significand is 2^-49.
func Tolerance(ulps float64, bits int) float64 { return math.Ldexp(ulps, -bits) }

// ULPs expresses a relative error in units of 2^-bits.
func ULPs(rel float64, bits int) float64 { return math.Ldexp(rel, bits) }

// Agree reports whether got matches want: both non-finite, or within tol
// relative error.
func Agree[F gcomplex.Float](got, want gcomplex.Complex[F], tol float64) bool {
	if !got.IsFinite() && !want.IsFinite() {
		return true
	}
	return RelativeError(got, want) <= tol
}

// Stats summarises the errors of the agreeing, finite samples in ulps.
type Stats struct {
	Max  float64
	Mean float64
	P99  float64
}

func summarize(ulps []float64) Stats {
	if len(ulps) == 0 {
		return Stats{}
	}
	sorted := append([]float64(nil), ulps...)
	sort.Float64s(sorted)
	return Stats{
		Max:  floats.Max(sorted),
		Mean: stat.Mean(sorted, nil),
		P99:  stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
}
