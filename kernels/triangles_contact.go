// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"github.com/cpmech/dynafem/dispatch"
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
)

// contactStiffness is the fixed penalty stiffness for triangle-particle
// self-contact.
const contactStiffness = 1e5

// contactMargin is the distance-squared threshold below which a
// particle is considered to be touching a triangle face.
const contactMargin = 0.01

// TrianglesContact evaluates triangle-vs-particle self-contact: every
// (triangle, particle) pair not sharing a vertex is tested against the
// triangle's closest point and pushed apart by a soft penalty force,
// gated by Model.EnableTriCollisions.
func TrianglesContact(m *model.Model, q []spatial.Vec3, particleF []spatial.Vec3) {
	if !m.EnableTriCollisions {
		return
	}
	n := m.TriCount * m.ParticleCount
	dispatch.ParallelFor(n, func(tid int) {
		faceNo := tid / m.ParticleCount
		particleNo := tid % m.ParticleCount

		idx := m.TriIndices[faceNo]
		i, j, k := idx[0], idx[1], idx[2]
		if i == particleNo || j == particleNo || k == particleNo {
			return
		}

		pos := q[particleNo]
		p, qq, r := q[i], q[j], q[k]

		u, v, w := spatial.TriangleClosestPointBarycentric(p, qq, r, pos)
		closest := p.Scale(u).Add(qq.Scale(v)).Add(r.Scale(w))

		diff := pos.Sub(closest)
		dist := diff.Dot(diff)
		nrm := diff.Normalize()
		c := dist - contactMargin
		if c > 0 {
			c = 0
		}
		fn := nrm.Scale(c * contactStiffness)

		dispatch.SubVec3FromSlice(particleF, particleNo, fn)
		dispatch.AddVec3ToSlice(particleF, i, fn.Scale(u))
		dispatch.AddVec3ToSlice(particleF, j, fn.Scale(v))
		dispatch.AddVec3ToSlice(particleF, k, fn.Scale(w))
	})
}
