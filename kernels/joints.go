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

// attachKe and attachKd are the fixed penalty gains holding joint anchor
// frames coincident.
const (
	attachKe = 1.0e3
	attachKd = 1.0e2
)

// Joints evaluates penalty joint-constraint wrenches over every joint:
// a drive/limit force along the joint's free coordinate plus a stiff
// attachment penalty on the remaining degrees of freedom.
func Joints(m *model.Model, bodyQ []spatial.Transform, bodyQd []spatial.Twist, bodyF []spatial.Wrench) {
	dispatch.ParallelFor(m.JointCount, func(tid int) {
		cChild := tid
		cParent := m.JointParent[tid]

		xPj := m.JointXp[tid]
		xCj := m.JointXc[tid]

		xWp := xPj
		var rP, wP, vP spatial.Vec3
		if cParent >= 0 {
			xWp = bodyQ[cParent].Multiply(xPj)
			rWp := xWp.P.Sub(spatial.TransformPoint(bodyQ[cParent], m.BodyCom[cParent]))
			twistP := bodyQd[cParent]
			wP = twistP.W
			vP = twistP.V.Add(wP.Cross(rWp))
			rP = rWp
		}

		xWc := bodyQ[cChild].Multiply(xCj)
		rC := xWc.P.Sub(spatial.TransformPoint(bodyQ[cChild], m.BodyCom[cChild]))
		twistC := bodyQd[cChild]
		wC := twistC.W
		vC := twistC.V.Add(wC.Cross(rC))

		axis := m.JointAxis[tid]
		target := m.JointTarget[tid]
		targetKe := m.JointTargetKe[tid]
		targetKd := m.JointTargetKd[tid]
		limitKe := m.JointLimitKe[tid]
		limitKd := m.JointLimitKd[tid]
		limitLower := m.JointLimitLower[tid]
		limitUpper := m.JointLimitUpper[tid]
		act := m.JointAct[tid]

		xP := xWp.P
		xC := xWc.P
		qP := xWp.Q
		qC := xWc.Q

		xErr := xC.Sub(xP)
		vErr := vC.Sub(vP)
		wErr := wC.Sub(wP)

		var tTotal, fTotal spatial.Vec3

		switch m.JointType[tid] {

		case model.JointPrismatic:
			axisW := spatial.TransformVector(xWp, axis)
			q := xErr.Dot(axisW)
			qd := vErr.Dot(axisW)

			limitF := 0.0
			if q < limitLower {
				limitF = limitKe*(limitLower-q) - limitKd*math.Min(qd, 0)
			} else if q > limitUpper {
				limitF = limitKe*(limitUpper-q) - limitKd*math.Max(qd, 0)
			}

			fTotal = fTotal.Add(axisW.Scale(targetKe*(q-target) - targetKd*qd + act + limitF))

			qPC := qP.Inverse().Mul(qC)
			angErr := qPC.Imag().Normalize().Scale(math.Acos(spatial.Clamp(qPC.W, -1, 1)) * 2)

			fTotal = fTotal.Add(xErr.Sub(axisW.Scale(q)).Scale(attachKe)).Add(vErr.Sub(axisW.Scale(qd)).Scale(attachKd))
			tTotal = tTotal.Add(angErr.Scale(attachKe)).Add(wErr.Scale(attachKd))

		case model.JointRevolute:
			axisW := spatial.TransformVector(xWp, axis)

			qPC := qP.Inverse().Mul(qC)
			qTwist := spatial.QuatTwist(axis, qPC)

			q := math.Acos(spatial.Clamp(qTwist.W, -1, 1)) * 2
			qd := wErr.Dot(axisW)

			limitF := 0.0
			if q < limitLower {
				limitF = limitKe*(limitLower-q) - limitKd*math.Min(qd, 0)
			} else if q > limitUpper {
				limitF = limitKe*(limitUpper-q) - limitKd*math.Max(qd, 0)
			}

			tTotal = tTotal.Add(axisW.Scale(targetKe*(q-target) - targetKd*qd + act + limitF))

			swing := qPC.Mul(qTwist.Inverse())
			swingErr := swing.Imag().Normalize().Scale(math.Acos(spatial.Clamp(swing.W, -1, 1)) * 2)

			fTotal = fTotal.Add(xErr.Scale(attachKe)).Add(vErr.Scale(attachKd))
			tTotal = tTotal.Add(swingErr.Scale(attachKe)).Add(wErr.Sub(axisW.Scale(qd)).Scale(attachKd))

		case model.JointBall:
			// positional point constraint, rotation left free
			fTotal = fTotal.Add(xErr.Scale(attachKe)).Add(vErr.Scale(attachKd))

		case model.JointFixed:
			// pure attachment: anchor frames held fully coincident
			qPC := qP.Inverse().Mul(qC)
			angErr := qPC.Imag().Normalize().Scale(math.Acos(spatial.Clamp(qPC.W, -1, 1)) * 2)
			fTotal = fTotal.Add(xErr.Scale(attachKe)).Add(vErr.Scale(attachKd))
			tTotal = tTotal.Add(angErr.Scale(attachKe)).Add(wErr.Scale(attachKd))

		case model.JointFree:
			// unconstrained: no penalty forces at all
		}

		if cParent >= 0 {
			dispatch.AddWrenchToSlice(bodyF, cParent, spatial.Wrench{T: tTotal.Add(rP.Cross(fTotal)), F: fTotal})
		}
		dispatch.SubWrenchFromSlice(bodyF, cChild, spatial.Wrench{T: tTotal.Add(rC.Cross(fTotal)), F: fTotal})
	})
}
