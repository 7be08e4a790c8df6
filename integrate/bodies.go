// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"github.com/cpmech/dynafem/dispatch"
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
)

// Bodies advances every rigid body's transform and twist by dt via
// spatial semi-implicit Euler: linear motion about the world center of
// mass, angular motion integrated in the body frame with a Coriolis
// correction, then a quaternion update and the angular damping term.
// fExt is the persistent user-applied external wrench (State.BodyF),
// fInt is the transient per-step accumulator; the two are summed here.
func Bodies(m *model.Model, q0 []spatial.Transform, qd0 []spatial.Twist, fExt, fInt []spatial.Wrench, dt float64, q1 []spatial.Transform, qd1 []spatial.Twist) {
	dispatch.ParallelFor(m.BodyCount, func(b int) {
		x0, r0 := q0[b].P, q0[b].Q
		w0, v0 := qd0[b].W, qd0[b].V
		f := fExt[b].Add(fInt[b])
		tau0, lin0 := f.T, f.F

		c := m.BodyCom[b]
		invMass := m.BodyInvMass[b]
		invInertia := m.BodyInvInertia[b]
		inertia := m.BodyInertia[b]

		xCom := x0.Add(r0.Rotate(c))

		g := m.Gravity.Scale(spatial.Step(-invMass))
		v1 := v0.Add(lin0.Scale(invMass).Add(g).Scale(dt))
		xCom1 := xCom.Add(v1.Scale(dt))

		rInv := r0.Inverse()
		wb := rInv.Rotate(w0)
		taub := rInv.Rotate(tau0).Sub(wb.Cross(inertia.MulVec(wb)))
		w1 := r0.Rotate(wb.Add(invInertia.MulVec(taub).Scale(dt)))

		dq := spatial.Quat{X: w1.X, Y: w1.Y, Z: w1.Z, W: 0}.Mul(r0).Scale(0.5 * dt)
		r1 := r0.Add(dq).Normalize()

		w1 = w1.Scale(1.0 - m.AngularDamping*dt)

		q1[b] = spatial.Transform{P: xCom1.Sub(r1.Rotate(c)), Q: r1}
		qd1[b] = spatial.Twist{W: w1, V: v1}
	})
}
