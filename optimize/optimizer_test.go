// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optimize

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_gd_minimizes_quadratic(tst *testing.T) {

	chk.PrintTitle("gradient descent minimizes a quadratic bowl")

	opt := New(2, GD)
	x := []float64{5, -3}
	grad := func(x, dfdx []float64) {
		dfdx[0] = 2 * x[0]
		dfdx[1] = 2 * x[1]
	}
	gnorm := opt.Solve(x, grad, 200, 0.1, nil)

	chk.Float64(tst, "x0", 1e-3, x[0], 0)
	chk.Float64(tst, "x1", 1e-3, x[1], 0)
	if gnorm > 1e-2 {
		tst.Fatalf("expected residual norm to shrink, got %v", gnorm)
	}
}

func Test_gd_momentum_minimizes_quadratic(tst *testing.T) {

	chk.PrintTitle("momentum gradient descent minimizes a quadratic bowl")

	opt := New(1, GDMomentum)
	x := []float64{10}
	grad := func(x, dfdx []float64) {
		dfdx[0] = 2 * x[0]
	}
	opt.Solve(x, grad, 300, 0.05, nil)

	chk.Float64(tst, "x0", 1e-2, x[0], 0)
}
