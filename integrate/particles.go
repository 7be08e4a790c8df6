// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrate advances particle and rigid-body state one
// timestep via semi-implicit Euler, given the force accumulators
// already filled in by kernels.ComputeForces.
package integrate

import (
	"github.com/cpmech/dynafem/dispatch"
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
)

// Particles advances every particle's velocity and position by dt.
// fExt is the persistent user-applied external force (State.ParticleF),
// fInt is the transient per-step accumulator the force kernels wrote
// into; the two stay separate so the external field survives across
// steps. Gravity is gated by step(-invMass) so pinned particles
// (invMass=0) receive neither gravity nor any force contribution.
func Particles(m *model.Model, q0, qd0 []spatial.Vec3, fExt, fInt []spatial.Vec3, dt float64, q1, qd1 []spatial.Vec3) {
	dispatch.ParallelFor(m.ParticleCount, func(i int) {
		w := m.ParticleInvMass[i]
		g := m.Gravity.Scale(spatial.Step(-w))
		v1 := qd0[i].Add(fExt[i].Add(fInt[i]).Scale(w).Add(g).Scale(dt))
		x1 := q0[i].Add(v1.Scale(dt))
		qd1[i] = v1
		q1[i] = x1
	})
}
