// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernels implements the element force kernels: one function
// per element class, each a parallel-for over its element count that
// reads Model+State and atomically accumulates into the per-node force
// buffers. Degenerate geometry (zero-length spring, zero-area
// triangle, ...) is absorbed silently: the element simply contributes
// nothing.
package kernels

import (
	"github.com/cpmech/dynafem/dispatch"
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
)

// Springs evaluates the damped spring force over every spring,
// accumulating into particleF.
func Springs(m *model.Model, q, qd []spatial.Vec3, particleF []spatial.Vec3) {
	dispatch.ParallelFor(m.SpringCount, func(s int) {
		i, j := m.SpringIndices[s][0], m.SpringIndices[s][1]
		d := q[i].Sub(q[j])
		l := d.Length()
		if l < 1e-12 {
			return // coincident endpoints: no contribution
		}
		n := d.Scale(1.0 / l)
		c := l - m.SpringRestLen[s]
		cdot := n.Dot(qd[i].Sub(qd[j]))
		fs := n.Scale(m.SpringStiffness[s]*c + m.SpringDamping[s]*cdot)
		dispatch.SubVec3FromSlice(particleF, i, fs)
		dispatch.AddVec3ToSlice(particleF, j, fs)
	})
}
