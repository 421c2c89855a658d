package sweep

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lukaszgryglicki/gcomplex"
)

// Domain names a distribution of sample arguments.
type Domain string

const (
	// Quadrant draws both components positive, with a uniformly chosen
	// binary exponent between the smallest normal exponent plus the
	// significand width and the largest exponent, and a significand in
	// [1, 2). It covers the whole finite range except subnormals.
	Quadrant Domain = "quadrant"
	// Unit draws uniformly from the closed unit disk.
	Unit Domain = "unit"
	// Moderate draws both components uniformly from [-8, 8].
	Moderate Domain = "moderate"
)

// Domains lists every known domain.
var Domains = []Domain{Quadrant, Unit, Moderate}

// ParseDomain validates a domain name.
func ParseDomain(s string) (Domain, error) {
	for _, d := range Domains {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown domain %q", s)
}

type format struct {
	bits           int
	minExp, maxExp int
}

func formatOf[F gcomplex.Float]() format {
	if gcomplex.Default[F]().MantissaBits() <= 24 {
		return format{bits: 24, minExp: -126, maxExp: 127}
	}
	return format{bits: 53, minExp: -1022, maxExp: 1023}
}

// Sample draws one argument from d.
func Sample[F gcomplex.Float](d Domain, rng *rand.Rand) gcomplex.Complex[F] {
	switch d {
	case Unit:
		r := math.Sqrt(rng.Float64())
		t := 2 * math.Pi * rng.Float64()
		return gcomplex.New(F(r*math.Cos(t)), F(r*math.Sin(t)))
	case Moderate:
		return gcomplex.New(F(16*rng.Float64()-8), F(16*rng.Float64()-8))
	}
	return gcomplex.New(quadrant[F](rng), quadrant[F](rng))
}

// powerBase draws |z| in [1/2, 2] with arg z in [-a, a]. Powers take their
// base from here whatever the domain: the error of exp(w·log z) grows with
// |w·log z|, so no fixed ulp tolerance holds over the full range.
func powerBase[F gcomplex.Float](rng *rand.Rand, a float64) gcomplex.Complex[F] {
	r := 0.5 + 1.5*rng.Float64()
	t := a * (2*rng.Float64() - 1)
	return gcomplex.New(F(r*math.Cos(t)), F(r*math.Sin(t)))
}

func quadrant[F gcomplex.Float](rng *rand.Rand) F {
	f := formatOf[F]()
	lo := f.minExp + f.bits
	e := lo + rng.IntN(f.maxExp-lo+1)
	// significand with exactly f.bits bits, so scaling never rounds
	frac := f.bits - 1
	m := 1 + math.Ldexp(float64(rng.Uint64()>>(64-frac)), -frac)
	return F(math.Ldexp(m, e))
}
