// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"math"

	"github.com/cpmech/dynafem/dispatch"
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
)

// Bending evaluates the dihedral bending force over every edge.
// indices are ordered (opposite-i, opposite-j, shared-k, shared-l).
func Bending(m *model.Model, q, qd []spatial.Vec3, particleF []spatial.Vec3) {
	dispatch.ParallelFor(m.EdgeCount, func(e int) {
		idx := m.EdgeIndices[e]
		i, j, k, l := idx[0], idx[1], idx[2], idx[3]
		restAngle := m.EdgeRestAngle[e]

		x1, x2, x3, x4 := q[i], q[j], q[k], q[l]
		v1, v2, v3, v4 := qd[i], qd[j], qd[k], qd[l]

		n1 := x3.Sub(x1).Cross(x4.Sub(x1))
		n2 := x4.Sub(x2).Cross(x3.Sub(x2))

		n1Length := n1.Length()
		n2Length := n2.Length()
		if n1Length < 1e-6 || n2Length < 1e-6 {
			return // degenerate quad: no contribution
		}

		rcpN1 := 1.0 / n1Length
		rcpN2 := 1.0 / n2Length

		cosTheta := spatial.Clamp(n1.Dot(n2)*rcpN1*rcpN2, -1, 1)

		n1s := n1.Scale(rcpN1 * rcpN1)
		n2s := n2.Scale(rcpN2 * rcpN2)

		edge := x4.Sub(x3)
		eHat := edge.Normalize()
		eLength := edge.Length()

		s := spatial.Sign(n2s.Cross(n1s).Dot(eHat))
		angle := math.Acos(cosTheta) * s

		d1 := n1s.Scale(eLength)
		d2 := n2s.Scale(eLength)
		d3 := n1s.Scale(x1.Sub(x4).Dot(eHat)).Add(n2s.Scale(x2.Sub(x4).Dot(eHat)))
		d4 := n1s.Scale(x3.Sub(x1).Dot(eHat)).Add(n2s.Scale(x3.Sub(x2).Dot(eHat)))

		fElastic := m.EdgeKe * (angle - restAngle)
		fDamp := m.EdgeKd * (d1.Dot(v1) + d2.Dot(v2) + d3.Dot(v3) + d4.Dot(v4))

		fTotal := -eLength * (fElastic + fDamp)

		dispatch.AddVec3ToSlice(particleF, i, d1.Scale(fTotal))
		dispatch.AddVec3ToSlice(particleF, j, d2.Scale(fTotal))
		dispatch.AddVec3ToSlice(particleF, k, d3.Scale(fTotal))
		dispatch.AddVec3ToSlice(particleF, l, d4.Scale(fTotal))
	})
}
