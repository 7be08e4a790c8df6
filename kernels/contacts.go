// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"github.com/cpmech/dynafem/dispatch"
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
)

// GroundContact evaluates particle-ground contact with box Coulomb
// friction. The soft-contact material constants double as the ground
// material (ke/kd/kf/mu and the surface offset).
func GroundContact(m *model.Model, q, qd []spatial.Vec3, particleF []spatial.Vec3) {
	if !m.Ground || m.ParticleCount == 0 {
		return
	}
	ke, kd, kf, mu := m.SoftContactKe, m.SoftContactKd, m.SoftContactKf, m.SoftContactMu
	offset := m.SoftContactDistance
	n := spatial.NewVec3(m.GroundPlane[0], m.GroundPlane[1], m.GroundPlane[2])
	d := m.GroundPlane[3]
	dispatch.ParallelFor(m.ParticleCount, func(i int) {
		x0, v0 := q[i], qd[i]
		c := n.Dot(x0) + d - offset
		if c > 0 {
			c = 0
		}

		vn := n.Dot(v0)
		vt := v0.Sub(n.Scale(vn))

		fn := n.Scale(c * ke)
		fd := n.Scale(min64(vn, 0) * kd)

		lower := mu * c * ke
		upper := -lower
		vx := spatial.Clamp(spatial.NewVec3(kf, 0, 0).Dot(vt), lower, upper)
		vz := spatial.Clamp(spatial.NewVec3(0, 0, kf).Dot(vt), lower, upper)
		ft := spatial.NewVec3(vx, 0, vz)

		fTotal := fn.Add(fd.Add(ft).Scale(spatial.Step(c)))
		dispatch.SubVec3FromSlice(particleF, i, fTotal)
	})
}

// BodyGroundContact evaluates body-ground contact via per-shape contact
// points: transforms each contact point to world, adds shape thickness,
// and accumulates an equal-and-opposite wrench about the body's center
// of mass.
func BodyGroundContact(m *model.Model, bodyQ []spatial.Transform, bodyQd []spatial.Twist, bodyF []spatial.Wrench) {
	if m.BodyCount == 0 || m.ContactCount == 0 || !m.Ground {
		return
	}
	n := spatial.NewVec3(0, 1, 0)
	dispatch.ParallelFor(m.ContactCount, func(tid int) {
		cBody := m.ContactBody0[tid]
		cPoint := m.ContactPoint0[tid]
		cDist := m.ContactDist[tid]
		cMat := m.ContactMaterial[tid]

		mat := m.ShapeMaterials[cMat]
		ke, kd, kf, mu := mat[0], mat[1], mat[2], mat[3]

		xWb := bodyQ[cBody]
		vWc := bodyQd[cBody]

		cp := spatial.TransformPoint(xWb, cPoint).Sub(n.Scale(cDist))
		r := cp.Sub(spatial.TransformPoint(xWb, m.BodyCom[cBody]))

		dpdt := vWc.V.Add(vWc.W.Cross(r))

		c := min64(n.Dot(cp), 0)
		vn := n.Dot(dpdt)
		vt := dpdt.Sub(n.Scale(vn))

		fn := c * ke
		fd := min64(vn, 0) * kd * spatial.Step(c)

		lower := mu * (fn + fd)
		upper := -lower
		vx := spatial.Clamp(spatial.NewVec3(kf, 0, 0).Dot(vt), lower, upper)
		vz := spatial.Clamp(spatial.NewVec3(0, 0, kf).Dot(vt), lower, upper)
		ft := spatial.NewVec3(vx, 0, vz).Scale(spatial.Step(c))

		fTotal := n.Scale(fn + fd).Add(ft)
		tTotal := r.Cross(fTotal)

		dispatch.SubWrenchFromSlice(bodyF, cBody, spatial.Wrench{T: tTotal, F: fTotal})
	})
}

// SoftContact evaluates particle<->body soft contact using the smooth
// Coulomb friction law. The ground kernels use box friction; the two
// laws must not be merged (gradients through the smooth law behave
// differently near |vt| = 0).
func SoftContact(m *model.Model, particleQ, particleQd []spatial.Vec3, bodyQ []spatial.Transform, bodyQd []spatial.Twist, particleF []spatial.Vec3, bodyF []spatial.Wrench) {
	ke, kd, kf, mu := m.SoftContactKe, m.SoftContactKd, m.SoftContactKf, m.SoftContactMu
	dispatch.ParallelFor(m.SoftContactCount, func(tid int) {
		bodyIndex := m.SoftContactBody[tid]
		particleIndex := m.SoftContactParticle[tid]

		px := particleQ[particleIndex]
		pv := particleQd[particleIndex]

		xWb := spatial.TransformIdentity()
		if bodyIndex >= 0 {
			xWb = bodyQ[bodyIndex]
		}

		bx := spatial.TransformPoint(xWb, m.SoftContactBodyPos[tid])
		com := spatial.Vec3{}
		if bodyIndex >= 0 {
			com = m.BodyCom[bodyIndex]
		}
		r := bx.Sub(spatial.TransformPoint(xWb, com))

		n := m.SoftContactNormal[tid]
		c := n.Dot(px.Sub(bx)) - m.SoftContactDistance
		if c > 0 {
			return
		}

		var bodyV spatial.Twist
		if bodyIndex >= 0 {
			bodyV = bodyQd[bodyIndex]
		}
		bv := bodyV.V.Add(bodyV.W.Cross(r)).Add(spatial.TransformVector(xWb, m.SoftContactBodyVel[tid]))

		v := pv.Sub(bv)
		vn := n.Dot(v)
		vt := v.Sub(n.Scale(vn))

		fn := n.Scale(c * ke)
		fd := n.Scale(min64(vn, 0) * kd)

		// smooth Coulomb friction, not the box clamp
		vtLen := vt.Length()
		var ft spatial.Vec3
		if vtLen > 1e-12 {
			ft = vt.Normalize().Scale(min64(kf*vtLen, -mu*c*ke))
		}

		fTotal := fn.Add(fd.Add(ft).Scale(spatial.Step(c)))
		tTotal := r.Cross(fTotal)

		dispatch.SubVec3FromSlice(particleF, particleIndex, fTotal)
		if bodyIndex >= 0 {
			dispatch.AddWrenchToSlice(bodyF, bodyIndex, spatial.Wrench{T: tTotal, F: fTotal})
		}
	})
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
