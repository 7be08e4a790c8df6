// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/dynafem/integrate"
	"github.com/cpmech/dynafem/kernels"
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
)

// SemiImplicit is the explicit integrator: zero the transient
// accumulators, run every enabled force kernel into them, then
// integrate bodies and particles forward by dt. The persistent
// user-applied external force/wrench (State.ParticleF/BodyF) is never
// zeroed: it is summed with the transient accumulator at integration
// time and carried forward unchanged into stateOut.
type SemiImplicit struct{}

// Simulate implements Integrator.
func (SemiImplicit) Simulate(m *model.Model, stateIn, stateOut *model.State, dt float64) error {
	particleFAcc := make([]spatial.Vec3, m.ParticleCount)
	bodyFAcc := make([]spatial.Wrench, m.BodyCount)
	kernels.ComputeForces(m, stateIn.ParticleQ, stateIn.ParticleQd, stateIn.BodyQ, stateIn.BodyQd, particleFAcc, bodyFAcc)

	if m.BodyCount > 0 {
		integrate.Bodies(m, stateIn.BodyQ, stateIn.BodyQd, stateIn.BodyF, bodyFAcc, dt, stateOut.BodyQ, stateOut.BodyQd)
	}
	if m.ParticleCount > 0 {
		integrate.Particles(m, stateIn.ParticleQ, stateIn.ParticleQd, stateIn.ParticleF, particleFAcc, dt, stateOut.ParticleQ, stateOut.ParticleQd)
	}
	copy(stateOut.ParticleF, stateIn.ParticleF)
	copy(stateOut.BodyF, stateIn.BodyF)
	return nil
}
