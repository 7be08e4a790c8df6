// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package optimize implements the first-order solver driving the
// variational implicit integrator: gradient descent, with an optional
// momentum variant, over a caller-supplied residual/gradient callback.
package optimize

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Mode selects the update rule used by Solve.
type Mode int

const (
	GD         Mode = iota // plain gradient descent: x -= alpha*dfdx
	GDMomentum             // Nesterov-like momentum accumulation
)

// momentumBeta is the fixed momentum decay used by GDMomentum.
const momentumBeta = 0.9

// Optimizer drives the implicit integrator's inner solve loop over an
// n-dimensional decision variable; n sizes the momentum buffer up
// front.
type Optimizer struct {
	n        int
	mode     Mode
	velocity []float64
}

// New allocates an Optimizer for an n-dimensional decision variable.
func New(n int, mode Mode) *Optimizer {
	o := &Optimizer{n: n, mode: mode}
	if mode == GDMomentum {
		o.velocity = make([]float64, n)
	}
	return o
}

// GradFunc fills dfdx with the residual/gradient at the current x.
type GradFunc func(x, dfdx []float64)

// ReportFunc is called after every iteration with the updated iterate
// and the gradient that produced the update (evaluated at the iterate
// before it), for diagnostics; it may be nil.
type ReportFunc func(iter int, x, dfdx []float64)

// Solve runs up to maxIters steps of the configured update rule
// in-place on x, calling gradFunc to refresh dfdx each iteration.
// x must have length n; the dfdx buffer handed to gradFunc is
// allocated here with length n. Returns the 2-norm of the
// residual at the last evaluated iterate.
func (o *Optimizer) Solve(x []float64, gradFunc GradFunc, maxIters int, alpha float64, report ReportFunc) (gradNorm float64) {
	chk.IntAssert(len(x), o.n)
	dfdx := make([]float64, o.n)
	for iter := 0; iter < maxIters; iter++ {
		gradFunc(x, dfdx)
		gradNorm = floats.Norm(dfdx, 2)
		switch o.mode {
		case GDMomentum:
			floats.Scale(momentumBeta, o.velocity)
			floats.AddScaled(o.velocity, -alpha, dfdx)
			floats.Add(x, o.velocity)
		default:
			floats.AddScaled(x, -alpha, dfdx)
		}
		if report != nil {
			report(iter, x, dfdx)
		}
	}
	return
}
