// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"testing"

	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
	"github.com/cpmech/gosl/chk"
)

func Test_particles_scenario2_free_fall(tst *testing.T) {

	chk.PrintTitle("particle free fall, one step")

	m := model.New()
	m.ParticleCount = 1
	m.ParticleMass = []float64{1}
	m.ParticleInvMass = []float64{1}
	m.Gravity = spatial.NewVec3(0, -9.81, 0)

	q0 := []spatial.Vec3{spatial.NewVec3(0, 10, 0)}
	qd0 := []spatial.Vec3{{}}
	f := []spatial.Vec3{{}}
	q1 := make([]spatial.Vec3, 1)
	qd1 := make([]spatial.Vec3, 1)

	Particles(m, q0, qd0, f, f, 0.01, q1, qd1)

	chk.Float64(tst, "v.y", 1e-9, qd1[0].Y, -0.0981)
	chk.Float64(tst, "x.y", 1e-6, q1[0].Y, 9.999019)
}

func Test_particles_scenario3_pinned(tst *testing.T) {

	chk.PrintTitle("pinned particle unaffected by gravity")

	m := model.New()
	m.ParticleCount = 1
	m.ParticleMass = []float64{1}
	m.ParticleInvMass = []float64{0}
	m.Gravity = spatial.NewVec3(0, -9.81, 0)

	q0 := []spatial.Vec3{spatial.NewVec3(0, 10, 0)}
	qd0 := []spatial.Vec3{{}}
	f := []spatial.Vec3{{}}
	q1 := make([]spatial.Vec3, 1)
	qd1 := make([]spatial.Vec3, 1)

	Particles(m, q0, qd0, f, f, 0.01, q1, qd1)

	chk.Float64(tst, "v.y", 1e-15, qd1[0].Y, 0)
	chk.Float64(tst, "x.y", 1e-15, q1[0].Y, 10)
}

func Test_bodies_scenario4(tst *testing.T) {

	chk.PrintTitle("single rigid body, pure force, one step")

	m := model.New()
	m.BodyCount = 1
	m.BodyCom = []spatial.Vec3{{}}
	m.BodyMass = []float64{1}
	m.BodyInvMass = []float64{1}
	m.BodyInertia = []spatial.Mat33{spatial.Mat33{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}}
	m.BodyInvInertia = m.BodyInertia
	m.Gravity = spatial.Vec3{}
	m.AngularDamping = 0

	q0 := []spatial.Transform{spatial.TransformIdentity()}
	qd0 := []spatial.Twist{{}}
	fExt := []spatial.Wrench{{T: spatial.Vec3{}, F: spatial.NewVec3(0, -1, 0)}}
	fInt := []spatial.Wrench{{}}
	q1 := make([]spatial.Transform, 1)
	qd1 := make([]spatial.Twist, 1)

	Bodies(m, q0, qd0, fExt, fInt, 0.1, q1, qd1)

	chk.Float64(tst, "v.y", 1e-12, qd1[0].V.Y, -0.1)
	chk.Float64(tst, "x.y", 1e-12, q1[0].P.Y, -0.01)
	chk.Float64(tst, "q.len", 1e-9, q1[0].Q.Length(), 1)
}
