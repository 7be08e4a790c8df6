// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"github.com/cpmech/dynafem/dispatch"
	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
)

// Muscles walks every muscle's segment chain, applying an
// equal-and-opposite wrench between the two bodies each segment
// connects, scaled by the muscle's activation.
func Muscles(m *model.Model, bodyQ []spatial.Transform, bodyF []spatial.Wrench) {
	dispatch.ParallelFor(m.MuscleCount, func(tid int) {
		mStart := m.MuscleStart[tid]
		mEnd := m.MuscleStart[tid+1] - 1
		activation := m.MuscleActivation[tid]

		for i := mStart; i < mEnd; i++ {
			link0 := m.MuscleLinks[i]
			link1 := m.MuscleLinks[i+1]
			if link0 == link1 {
				continue
			}

			r0 := m.MusclePoints[i]
			r1 := m.MusclePoints[i+1]

			pos0 := spatial.TransformPoint(bodyQ[link0], r0)
			pos1 := spatial.TransformPoint(bodyQ[link1], r1)

			n := pos1.Sub(pos0).Normalize()
			f := n.Scale(activation)

			dispatch.SubWrenchFromSlice(bodyF, link0, spatial.Wrench{T: pos0.Cross(f), F: f})
			dispatch.AddWrenchToSlice(bodyF, link1, spatial.Wrench{T: pos1.Cross(f), F: f})
		}
	})
}
