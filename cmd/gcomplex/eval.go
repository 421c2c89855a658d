package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lukaszgryglicki/gcomplex"
	"github.com/lukaszgryglicki/gcomplex/internal/sweep"
	"github.com/lukaszgryglicki/gcomplex/oracle"
	"github.com/spf13/cobra"
)

type evalFlags struct {
	precision string
	mpcPrec   uint
	digits    int
}

// evalArgs is the parsed command line of eval: w is set for pow, n for
// powint and root.
type evalArgs struct {
	fn string
	z  string
	w  string
	n  int
}

func parseEvalArgs(args []string) (evalArgs, error) {
	e := evalArgs{fn: args[0], z: args[1]}
	switch e.fn {
	case "pow":
		if len(args) != 3 {
			return e, fmt.Errorf("pow needs an exponent: eval pow <z> <w>")
		}
		e.w = args[2]
	case "powint", "root":
		if len(args) != 3 {
			return e, fmt.Errorf("%s needs an integer: eval %s <z> <n>", e.fn, e.fn)
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return e, fmt.Errorf("parse n: %w", err)
		}
		if e.fn == "root" && n == 0 {
			return e, fmt.Errorf("root: n must not be zero")
		}
		e.n = n
	default:
		if _, ok := sweep.Library[float64]()[e.fn]; !ok {
			return e, fmt.Errorf("unknown function %q", e.fn)
		}
		if len(args) != 2 {
			return e, fmt.Errorf("%s takes one argument", e.fn)
		}
	}
	return e, nil
}

// evaluate returns the library value, the oracle value and the argument
// actually used after rounding to F.
func evaluate[F gcomplex.Float](ref oracle.Routines[F], e evalArgs) (got, want, z, w gcomplex.Complex[F], err error) {
	if z, err = gcomplex.Parse[F](e.z); err != nil {
		return
	}
	switch e.fn {
	case "pow":
		if w, err = gcomplex.Parse[F](e.w); err != nil {
			return
		}
		return gcomplex.Pow(z, w), ref.Pow(z, w), z, w, nil
	case "powint":
		return gcomplex.PowInt(z, e.n), ref.PowInt(z, e.n), z, w, nil
	case "root":
		return gcomplex.Root(z, e.n), ref.Root(z, e.n), z, w, nil
	}
	return sweep.Library[F]()[e.fn](z), ref.Unary()[e.fn](z), z, w, nil
}

func widen[F gcomplex.Float](z gcomplex.Complex[F]) gcomplex.Complex[float64] {
	return gcomplex.New(float64(z.Re), float64(z.Im))
}

func newEvalCmd(a *app) *cobra.Command {
	f := &evalFlags{}
	cmd := &cobra.Command{
		Use:   "eval <fn> <z> [w|n]",
		Short: "Evaluate one function with gcomplex and with the C library",
		Example: `  gcomplex eval exp 1+2i
  gcomplex eval pow "(2 0.5)" 0.5-i --precision single
  gcomplex eval root -- -8 3`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEvalArgs(args)
			if err != nil {
				return err
			}
			p, err := sweep.ParsePrecision(f.precision)
			if err != nil {
				return err
			}
			a.log.Debug("evaluating", "fn", e.fn, "z", e.z, "precision", p)

			var got, want, z, w gcomplex.Complex[float64]
			switch p {
			case sweep.Single:
				g, r, z32, w32, err := evaluate(oracle.Table[float32](), e)
				if err != nil {
					return err
				}
				got, want, z, w = widen(g), widen(r), widen(z32), widen(w32)
			case sweep.Double:
				got, want, z, w, err = evaluate(oracle.Table[float64](), e)
			default:
				got, want, z, w, err = evaluate(oracle.ExtendedTable(), e)
			}
			if err != nil {
				return err
			}
			return printEval(cmd.OutOrStdout(), f, p, e, z, w, got, want)
		},
	}
	cmd.Flags().StringVarP(&f.precision, "precision", "p", "double", "single, double or extended")
	cmd.Flags().UintVar(&f.mpcPrec, "mpc-prec", 256, "GNU MPC working precision in bits (mpc builds only)")
	cmd.Flags().IntVar(&f.digits, "digits", 17, "significant digits to print")
	return cmd
}

func printEval(out io.Writer, f *evalFlags, p sweep.Precision, e evalArgs, z, w, got, want gcomplex.Complex[float64]) error {
	d := f.digits - 1
	if d < 0 {
		d = 0
	}
	rel := sweep.RelativeError(got, want)
	fmt.Fprintf(out, "%s(%s) at %s precision\n", e.fn, z.StringScientific(d), p)
	fmt.Fprintf(out, "  gcomplex  %s\n", got.StringScientific(d))
	fmt.Fprintf(out, "  libm      %s\n", want.StringScientific(d))
	fmt.Fprintf(out, "  error     %.2f ulps\n", sweep.ULPs(rel, p.Bits()))
	if !haveMPC {
		return nil
	}
	ref, err := mpcEval(f.mpcPrec, e, z, w)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  mpc       %s (%d bits)\n", ref, f.mpcPrec)
	return nil
}
