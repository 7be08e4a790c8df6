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

// Triangles evaluates the triangle membrane (rest-stable Neo-Hookean),
// area-preservation and lift/drag forces over every triangle.
func Triangles(m *model.Model, q, qd []spatial.Vec3, particleF []spatial.Vec3) {
	dispatch.ParallelFor(m.TriCount, func(t int) {
		idx := m.TriIndices[t]
		i, j, k := idx[0], idx[1], idx[2]
		x0, x1, x2 := q[i], q[j], q[k]
		v0, v1, v2 := qd[i], qd[j], qd[k]

		x10 := x1.Sub(x0)
		x20 := x2.Sub(x0)
		v10 := v1.Sub(v0)
		v20 := v2.Sub(v0)

		dm := m.TriPoses[t]
		det := dm.Det()
		if math.Abs(det) < 1e-12 {
			return // zero-area rest triangle: no contribution
		}
		invRestArea := det * 2.0
		restArea := 1.0 / invRestArea

		kMu := m.TriKe * restArea
		kLambda := m.TriKa * restArea
		kDamp := m.TriKd * restArea

		// deformation gradient columns F = Xs * Dm
		f1 := x10.Scale(dm.M[0][0]).Add(x20.Scale(dm.M[1][0]))
		f2 := x10.Scale(dm.M[0][1]).Add(x20.Scale(dm.M[1][1]))
		dFdt1 := v10.Scale(dm.M[0][0]).Add(v20.Scale(dm.M[1][0]))
		dFdt2 := v10.Scale(dm.M[0][1]).Add(v20.Scale(dm.M[1][1]))

		// deviatoric PK1 + damping
		p1 := f1.Scale(kMu).Add(dFdt1.Scale(kDamp))
		p2 := f2.Scale(kMu).Add(dFdt2.Scale(kDamp))

		// force = P * Dmᵀ, rest-stable Neo-Hookean
		force1 := p1.Scale(dm.M[0][0]).Add(p2.Scale(dm.M[0][1]))
		force2 := p1.Scale(dm.M[1][0]).Add(p2.Scale(dm.M[1][1]))
		alpha := 1.0 + m.TriKe/m.TriKa

		// area preservation
		n := x10.Cross(x20)
		area := n.Length() * 0.5
		act := m.TriActivations[t]
		c := area*invRestArea - alpha + act

		nHat := n.Normalize()
		dcdq := x20.Cross(nHat).Scale(invRestArea * 0.5)
		dcdr := nHat.Cross(x10).Scale(invRestArea * 0.5)

		fArea := kLambda * c
		dcdt := dcdq.Dot(v1) + dcdr.Dot(v2) - dcdq.Add(dcdr).Dot(v0)
		fDamp := kDamp * dcdt

		force1 = force1.Add(dcdq.Scale(fArea + fDamp))
		force2 = force2.Add(dcdr.Scale(fArea + fDamp))
		force0 := force1.Add(force2)

		// lift + drag (non-conservative)
		vmid := v0.Add(v1).Add(v2).Scale(1.0 / 3.0)
		vdir := vmid.Normalize()
		fDrag := vmid.Scale(m.TriDrag * area * math.Abs(nHat.Dot(vmid)))
		cosA := spatial.Clamp(nHat.Dot(vdir), -1, 1)
		fLift := nHat.Scale(m.TriLift * area * (math.Pi/2 - math.Acos(cosA)) * vmid.Dot(vmid))

		force0 = force0.Sub(fDrag).Sub(fLift)
		force1 = force1.Add(fDrag).Add(fLift)
		force2 = force2.Add(fDrag).Add(fLift)

		dispatch.AddVec3ToSlice(particleF, i, force0)
		dispatch.SubVec3FromSlice(particleF, j, force1)
		dispatch.SubVec3FromSlice(particleF, k, force2)
	})
}
