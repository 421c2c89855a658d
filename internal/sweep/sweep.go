// Package sweep measures the gcomplex functions against the native oracle
// over random arguments and reports the error distribution per function.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/lukaszgryglicki/gcomplex"
	"github.com/lukaszgryglicki/gcomplex/oracle"
	"golang.org/x/sync/errgroup"
)

// Precision selects the float type and the oracle routines it is compared
// with.
type Precision string

const (
	Single   Precision = "single"   // float32 against cexpf, ...
	Double   Precision = "double"   // float64 against cexp, ...
	Extended Precision = "extended" // float64 against cexpl, ...
)

// Precisions lists every known precision.
var Precisions = []Precision{Single, Double, Extended}

// ParsePrecision validates a precision name.
func ParsePrecision(s string) (Precision, error) {
	for _, p := range Precisions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown precision %q", s)
}

// Bits is the significand width the tolerance is expressed in.
func (p Precision) Bits() int {
	if p == Single {
		return 24
	}
	return 53
}

// Options configures one sweep.
type Options struct {
	Seed          uint64
	Samples       int
	ToleranceULPs float64
	Precisions    []Precision
	Functions     []string // empty means all
	Domain        Domain
	Workers       int // <= 0 means GOMAXPROCS
	Timeout       time.Duration
}

// probe evaluates one function and its reference on a fresh argument.
type probe[F gcomplex.Float] func(rng *rand.Rand, d Domain) (arg string, got, want gcomplex.Complex[F])

func unaryProbe[F gcomplex.Float](f, ref func(gcomplex.Complex[F]) gcomplex.Complex[F]) probe[F] {
	return func(rng *rand.Rand, d Domain) (string, gcomplex.Complex[F], gcomplex.Complex[F]) {
		z := Sample[F](d, rng)
		return z.String(), f(z), ref(z)
	}
}

// Library returns the one-argument gcomplex functions keyed by the names the
// oracle uses.
func Library[F gcomplex.Float]() map[string]func(gcomplex.Complex[F]) gcomplex.Complex[F] {
	return map[string]func(gcomplex.Complex[F]) gcomplex.Complex[F]{
		"exp":   gcomplex.Exp[F],
		"expm1": gcomplex.ExpMinusOne[F],
		"log":   gcomplex.Log[F],
		"log1p": gcomplex.LogOnePlus[F],
		"sqrt":  gcomplex.Sqrt[F],
		"cos":   gcomplex.Cos[F],
		"sin":   gcomplex.Sin[F],
		"tan":   gcomplex.Tan[F],
		"cosh":  gcomplex.Cosh[F],
		"sinh":  gcomplex.Sinh[F],
		"tanh":  gcomplex.Tanh[F],
		"acos":  gcomplex.Acos[F],
		"asin":  gcomplex.Asin[F],
		"atan":  gcomplex.Atan[F],
		"acosh": gcomplex.Acosh[F],
		"asinh": gcomplex.Asinh[F],
		"atanh": gcomplex.Atanh[F],
	}
}

func catalog[F gcomplex.Float](ref oracle.Routines[F]) map[string]probe[F] {
	ours := Library[F]()
	probes := make(map[string]probe[F], len(ours)+3)
	for name, r := range ref.Unary() {
		probes[name] = unaryProbe(ours[name], r)
	}
	// bases come from powerBase, exponents from the unit disk and small
	// integers, whatever the domain
	probes["pow"] = func(rng *rand.Rand, _ Domain) (string, gcomplex.Complex[F], gcomplex.Complex[F]) {
		z, w := powerBase[F](rng, math.Pi), Sample[F](Unit, rng)
		return z.String() + " " + w.String(), gcomplex.Pow(z, w), ref.Pow(z, w)
	}
	probes["powint"] = func(rng *rand.Rand, _ Domain) (string, gcomplex.Complex[F], gcomplex.Complex[F]) {
		z, n := powerBase[F](rng, math.Pi/2), rng.IntN(5)-2
		return fmt.Sprintf("%v %d", z, n), gcomplex.PowInt(z, n), ref.PowInt(z, n)
	}
	probes["root"] = func(rng *rand.Rand, _ Domain) (string, gcomplex.Complex[F], gcomplex.Complex[F]) {
		z, n := powerBase[F](rng, math.Pi), 1+rng.IntN(16)
		return fmt.Sprintf("%v %d", z, n), gcomplex.Root(z, n), ref.Root(z, n)
	}
	return probes
}

// Functions returns the sorted names of every function a sweep can measure.
func Functions() []string {
	names := make([]string, 0, 20)
	for name := range catalog(oracle.Table[float64]()) {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Result is the outcome for one function at one precision.
type Result struct {
	Function  string
	Precision Precision
	Samples   int
	Failures  int
	// Stats covers ulps over agreeing finite samples.
	Stats
	// Worst is the argument with the largest error, failures first.
	Worst     string
	WorstULPs float64
}

// Run executes the sweep. Functions are measured concurrently, at most
// opts.Workers at a time; cancelling ctx or exceeding opts.Timeout aborts the
// remaining work with an error.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Samples <= 0 {
		return nil, errors.New("sweep: samples must be positive")
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	names := opts.Functions
	if len(names) == 0 {
		names = Functions()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(opts.Precisions)*len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range opts.Precisions {
		for j, name := range names {
			slot := &results[i*len(names)+j]
			g.Go(func() error {
				r, err := measureAt(ctx, p, name, opts)
				if err != nil {
					return fmt.Errorf("%s %s: %w", p, name, err)
				}
				*slot = r
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	return &Report{Domain: opts.Domain, ToleranceULPs: opts.ToleranceULPs, Results: results}, nil
}

func measureAt(ctx context.Context, p Precision, name string, opts Options) (Result, error) {
	rng := rand.New(rand.NewPCG(opts.Seed, streamID(p, name)))
	switch p {
	case Single:
		return measure(ctx, catalog(oracle.Table[float32]()), p, name, rng, opts)
	case Double:
		return measure(ctx, catalog(oracle.Table[float64]()), p, name, rng, opts)
	case Extended:
		return measure(ctx, catalog(oracle.ExtendedTable()), p, name, rng, opts)
	}
	return Result{}, fmt.Errorf("unknown precision %q", p)
}

// streamID gives every (precision, function) pair its own random stream, so
// results do not depend on scheduling or on which functions are selected.
func streamID(p Precision, name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(p))
	h.Write([]byte{'/'})
	h.Write([]byte(name))
	return h.Sum64()
}

func measure[F gcomplex.Float](ctx context.Context, probes map[string]probe[F], p Precision, name string, rng *rand.Rand, opts Options) (Result, error) {
	pr, ok := probes[name]
	if !ok {
		return Result{}, fmt.Errorf("unknown function %q", name)
	}
	tol := Tolerance(opts.ToleranceULPs, p.Bits())
	res := Result{Function: name, Precision: p, Samples: opts.Samples, WorstULPs: -1}
	ulps := make([]float64, 0, min(opts.Samples, 1<<16))
	worstFailed := false
	for i := 0; i < opts.Samples; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		arg, got, want := pr(rng, opts.Domain)
		ok := Agree(got, want, tol)
		e := 0.0
		if !ok {
			res.Failures++
			e = ULPs(RelativeError(got, want), p.Bits())
			if math.IsNaN(e) {
				e = math.Inf(1)
			}
		} else if got.IsFinite() {
			e = ULPs(RelativeError(got, want), p.Bits())
			ulps = append(ulps, e)
		}
		// a failure always outranks an agreeing sample
		if (!ok && (!worstFailed || e > res.WorstULPs)) || (!worstFailed && e > res.WorstULPs) {
			res.Worst, res.WorstULPs, worstFailed = arg, e, !ok
		}
	}
	res.Stats = summarize(ulps)
	return res, nil
}
