// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"github.com/cpmech/dynafem/dispatch"
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
)

// Tetrahedra evaluates the rest-stable Neo-Hookean FEM force over
// every tet, deviatoric and hydrostatic parts.
func Tetrahedra(m *model.Model, q, qd []spatial.Vec3, particleF []spatial.Vec3) {
	dispatch.ParallelFor(m.TetCount, func(t int) {
		idx := m.TetIndices[t]
		i, j, k, l := idx[0], idx[1], idx[2], idx[3]

		act := m.TetActivations[t]
		mat := m.TetMaterials[t]
		kMu0, kLambda0, kDamp0 := mat[0], mat[1], mat[2]

		x0, x1, x2, x3 := q[i], q[j], q[k], q[l]
		v0, v1, v2, v3 := qd[i], qd[j], qd[k], qd[l]

		x10 := x1.Sub(x0)
		x20 := x2.Sub(x0)
		x30 := x3.Sub(x0)
		v10 := v1.Sub(v0)
		v20 := v2.Sub(v0)
		v30 := v3.Sub(v0)

		ds := spatial.Mat33FromCols(x10, x20, x30)
		dvs := spatial.Mat33FromCols(v10, v20, v30)
		dm := m.TetPoses[t]

		detDm := dm.Det()
		if detDm == 0 {
			return // zero-volume rest tet: no contribution
		}
		invRestVolume := detDm * 6.0
		restVolume := 1.0 / invRestVolume

		alpha := 1.0 + kMu0/kLambda0 - kMu0/(4.0*kLambda0)

		kMu := kMu0 * restVolume
		kLambda := kLambda0 * restVolume
		kDamp := kDamp0 * restVolume

		f := ds.Mul(dm)
		dFdt := dvs.Mul(dm)

		col1 := f.Col(0)
		col2 := f.Col(1)
		col3 := f.Col(2)
		ic := col1.Dot(col1) + col2.Dot(col2) + col3.Dot(col3)

		// deviatoric PK1, rest-stable Neo-Hookean (Smith et al. 2018)
		p := f.Scale(kMu * (1.0 - 1.0/(ic+1.0))).Add(dFdt.Scale(kDamp))
		h := p.Mul(dm.Transpose())

		force1 := h.Col(0)
		force2 := h.Col(1)
		force3 := h.Col(2)

		// hydrostatic part
		j_ := f.Det()
		s := invRestVolume / 6.0
		dJdx1 := x20.Cross(x30).Scale(s)
		dJdx2 := x30.Cross(x10).Scale(s)
		dJdx3 := x10.Cross(x20).Scale(s)

		fVolume := (j_ - alpha + act) * kLambda
		fDamp := (dJdx1.Dot(v1) + dJdx2.Dot(v2) + dJdx3.Dot(v3)) * kDamp
		fTotal := fVolume + fDamp

		force1 = force1.Add(dJdx1.Scale(fTotal))
		force2 = force2.Add(dJdx2.Scale(fTotal))
		force3 = force3.Add(dJdx3.Scale(fTotal))
		force0 := force1.Add(force2).Add(force3).Neg()

		dispatch.SubVec3FromSlice(particleF, i, force0)
		dispatch.SubVec3FromSlice(particleF, j, force1)
		dispatch.SubVec3FromSlice(particleF, k, force2)
		dispatch.SubVec3FromSlice(particleF, l, force3)
	})
}
