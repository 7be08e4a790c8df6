// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/dynafem/kernels"
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/optimize"
	"github.com/cpmech/dynafem/spatial"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// VariationalImplicit solves the per-step residual
// r(v) = m(v-v0) - f(x0+v*dt, v)*dt - m*g*dt for particle velocities
// via an iterative first-order optimizer. Rigid bodies are not
// handled by this path and are left untouched in stateOut; callers
// that also have bodies should run SemiImplicit for the body arrays
// separately.
type VariationalImplicit struct {
	Mode     optimize.Mode
	Alpha    float64
	MaxIters int
	Report   optimize.ReportFunc
}

// Simulate implements Integrator. stateIn and stateOut must be
// distinct buffers.
func (vi VariationalImplicit) Simulate(m *model.Model, stateIn, stateOut *model.State, dt float64) error {
	if model.SameBuffers(stateIn, stateOut) {
		chk.Panic("VariationalImplicit.Simulate: state_in and state_out must not alias")
	}
	n := m.ParticleCount
	if n == 0 {
		return nil
	}

	// init_state: predicted (x_out, v_out) using external forces only
	fExt := stateIn.ParticleF
	vOut := make([]spatial.Vec3, n)
	for i := 0; i < n; i++ {
		w := m.ParticleInvMass[i]
		g := m.Gravity.Scale(spatial.Step(-w))
		vOut[i] = stateIn.ParticleQd[i].Add(fExt[i].Scale(w).Add(g).Scale(dt))
		stateOut.ParticleQ[i] = stateIn.ParticleQ[i].Add(vOut[i].Scale(dt))
	}

	x := packVec3(vOut)
	opt := optimize.New(3*n, vi.Mode)

	// fAcc is the transient per-iteration force accumulator, distinct
	// from stateIn.ParticleF (the persistent external force, read-only
	// input): the residual's f(x,v) term is the internal-force-only
	// sum, not fExt+fInt.
	fAcc := make([]spatial.Vec3, n)
	gradFunc := func(xv, dfdx []float64) {
		v := unpackVec3(xv)
		xOut := make([]spatial.Vec3, n)
		for i := 0; i < n; i++ {
			xOut[i] = stateIn.ParticleQ[i].Add(v[i].Scale(dt))
		}
		for i := range fAcc {
			fAcc[i] = spatial.Vec3{}
		}
		particleForcesOnly(m, xOut, v, fAcc)

		r := make([]spatial.Vec3, n)
		for i := 0; i < n; i++ {
			mass := m.ParticleMass[i]
			r[i] = v[i].Sub(stateIn.ParticleQd[i]).Scale(mass).
				Sub(fAcc[i].Scale(dt)).
				Sub(m.Gravity.Scale(mass * dt))
		}
		la.VecCopy(dfdx, 1, packVec3(r))
	}

	opt.Solve(x, gradFunc, vi.MaxIters, vi.Alpha, vi.Report)

	// update_state: commit (x_in + x*dt, x)
	v := unpackVec3(x)
	for i := 0; i < n; i++ {
		stateOut.ParticleQ[i] = stateIn.ParticleQ[i].Add(v[i].Scale(dt))
		stateOut.ParticleQd[i] = v[i]
	}
	copy(stateOut.ParticleF, stateIn.ParticleF)
	return nil
}

// particleForcesOnly runs the subset of force kernels that act purely
// on particles, gated the same way kernels.ComputeForces gates them;
// body-coupled kernels (joints, muscles, body contacts) are excluded
// since the implicit path never touches rigid bodies.
func particleForcesOnly(m *model.Model, q, qd, particleF []spatial.Vec3) {
	if m.SpringCount > 0 {
		kernels.Springs(m, q, qd, particleF)
	}
	if m.TriCount > 0 && m.TriKe > 0.0 {
		kernels.Triangles(m, q, qd, particleF)
	}
	if m.EnableTriCollisions && m.TriCount > 0 && m.TriKe > 0.0 {
		kernels.TrianglesContact(m, q, particleF)
	}
	if m.EdgeCount > 0 {
		kernels.Bending(m, q, qd, particleF)
	}
	if m.Ground && m.ParticleCount > 0 {
		kernels.GroundContact(m, q, qd, particleF)
	}
	if m.TetCount > 0 {
		kernels.Tetrahedra(m, q, qd, particleF)
	}
}

func packVec3(v []spatial.Vec3) []float64 {
	out := make([]float64, 3*len(v))
	for i, p := range v {
		out[3*i], out[3*i+1], out[3*i+2] = p.X, p.Y, p.Z
	}
	return out
}

func unpackVec3(x []float64) []spatial.Vec3 {
	n := len(x) / 3
	out := make([]spatial.Vec3, n)
	for i := 0; i < n; i++ {
		out[i] = spatial.NewVec3(x[3*i], x[3*i+1], x[3*i+2])
	}
	return out
}
