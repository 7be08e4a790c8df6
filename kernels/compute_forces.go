// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
)

// ComputeForces runs every element kernel against the given model and
// state, in a fixed order and under fixed gating conditions: each
// component is skipped entirely when its element count is zero or a
// feature flag disables it, rather than launched on an empty range.
// particleF and bodyF must already be zeroed by the caller and are
// accumulated into in place.
func ComputeForces(m *model.Model, particleQ, particleQd []spatial.Vec3, bodyQ []spatial.Transform, bodyQd []spatial.Twist, particleF []spatial.Vec3, bodyF []spatial.Wrench) {
	if m.SpringCount > 0 {
		Springs(m, particleQ, particleQd, particleF)
	}
	if m.TriCount > 0 && m.TriKe > 0.0 {
		Triangles(m, particleQ, particleQd, particleF)
	}
	if m.EnableTriCollisions && m.TriCount > 0 && m.TriKe > 0.0 {
		TrianglesContact(m, particleQ, particleF)
	}
	if m.EdgeCount > 0 {
		Bending(m, particleQ, particleQd, particleF)
	}
	if m.Ground && m.ParticleCount > 0 {
		GroundContact(m, particleQ, particleQd, particleF)
	}
	if m.TetCount > 0 {
		Tetrahedra(m, particleQ, particleQd, particleF)
	}
	if m.BodyCount > 0 && m.ContactCount > 0 && m.Ground {
		BodyGroundContact(m, bodyQ, bodyQd, bodyF)
	}
	if m.BodyCount > 0 {
		Joints(m, bodyQ, bodyQd, bodyF)
	}
	if m.ParticleCount > 0 && m.ShapeCount > 0 {
		SoftContact(m, particleQ, particleQd, bodyQ, bodyQd, particleF, bodyF)
	}
	if m.MuscleCount > 0 {
		Muscles(m, bodyQ, bodyF)
	}
}
