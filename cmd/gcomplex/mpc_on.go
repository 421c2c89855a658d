//go:build mpc

package main

import (
	"github.com/lukaszgryglicki/gcomplex"
	"github.com/lukaszgryglicki/gcomplex/oracle/mpc"
)

const haveMPC = true

func mpcEval(bits uint, e evalArgs, z, w gcomplex.Complex[float64]) (string, error) {
	ev := mpc.NewEvaluator(bits)
	var v *mpc.Value
	switch e.fn {
	case "pow":
		v = ev.Pow(z, w)
	case "powint":
		v = ev.PowInt(z, e.n)
	case "root":
		v = ev.Root(z, e.n)
	default:
		var err error
		if v, err = ev.Eval(e.fn, z); err != nil {
			return "", err
		}
	}
	defer v.Close()
	// digits that the working precision supports, less a small margin
	digits := max(int(float64(bits)*0.30103)-5, 1)
	return v.StringScientific(digits), nil
}
