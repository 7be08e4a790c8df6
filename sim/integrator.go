// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the two integrator strategies over a model
// and state: an explicit semi-implicit Euler step and a variational
// implicit step solved by an iterative optimizer.
package sim

import "github.com/cpmech/dynafem/model"

// Integrator advances stateIn by dt into stateOut.
type Integrator interface {
	Simulate(m *model.Model, stateIn, stateOut *model.State, dt float64) error
}
