//go:build !mpc

package main

import (
	"errors"

	"github.com/lukaszgryglicki/gcomplex"
)

const haveMPC = false

func mpcEval(uint, evalArgs, gcomplex.Complex[float64], gcomplex.Complex[float64]) (string, error) {
	return "", errors.New("built without GNU MPC, rebuild with -tags mpc")
}
