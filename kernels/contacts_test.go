// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"math"
	"testing"

	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
	"github.com/cpmech/gosl/chk"
)

func groundModel() *model.Model {
	m := model.New()
	m.ParticleCount = 1
	m.ParticleMass = []float64{1}
	m.ParticleInvMass = []float64{1}
	m.Ground = true
	m.GroundPlane = [4]float64{0, 1, 0, 0}
	m.SoftContactKe = 1000
	m.SoftContactKd = 10
	m.SoftContactKf = 100
	m.SoftContactMu = 0.5
	return m
}

func Test_ground_contact_normal_and_friction(tst *testing.T) {

	chk.PrintTitle("penetrating particle: normal along +n, friction bounded")

	m := groundModel()
	q := []spatial.Vec3{spatial.NewVec3(0, -0.1, 0)}
	qd := []spatial.Vec3{spatial.NewVec3(1, 0, 0)} // sliding in +x
	f := make([]spatial.Vec3, 1)

	GroundContact(m, q, qd, f)

	// fn = mu-independent: |c|*ke = 100 directed along +y
	chk.Float64(tst, "fn.y", 1e-10, f[0].Y, 100)

	// friction opposes sliding and is clamped to mu*|fn|
	chk.Float64(tst, "ft.x", 1e-10, f[0].X, -50)
	if math.Abs(f[0].X) > m.SoftContactMu*math.Abs(f[0].Y)+1e-12 {
		tst.Fatalf("friction exceeds Coulomb bound: |ft|=%v mu*|fn|=%v", math.Abs(f[0].X), m.SoftContactMu*math.Abs(f[0].Y))
	}
}

func Test_ground_contact_above_plane_no_force(tst *testing.T) {

	chk.PrintTitle("particle above ground: no contact force")

	m := groundModel()
	q := []spatial.Vec3{spatial.NewVec3(0, 1, 0)}
	qd := []spatial.Vec3{spatial.NewVec3(2, -1, 0)}
	f := make([]spatial.Vec3, 1)

	GroundContact(m, q, qd, f)

	chk.Float64(tst, "f", 1e-15, f[0].Length(), 0)
}

func Test_soft_contact_equal_and_opposite(tst *testing.T) {

	chk.PrintTitle("soft contact: particle force mirrors body wrench")

	m := model.New()
	m.ParticleCount = 1
	m.BodyCount = 1
	m.BodyCom = []spatial.Vec3{{}}
	m.SoftContactCount = 1
	m.SoftContactParticle = []int{0}
	m.SoftContactBody = []int{0}
	m.SoftContactBodyPos = []spatial.Vec3{{}}
	m.SoftContactBodyVel = []spatial.Vec3{{}}
	m.SoftContactNormal = []spatial.Vec3{spatial.NewVec3(0, 1, 0)}
	m.SoftContactKe = 1000
	m.SoftContactKd = 0
	m.SoftContactKf = 10
	m.SoftContactMu = 0.5

	particleQ := []spatial.Vec3{spatial.NewVec3(0, -0.05, 0)}
	particleQd := []spatial.Vec3{spatial.NewVec3(0.3, 0, 0)}
	bodyQ := []spatial.Transform{spatial.TransformIdentity()}
	bodyQd := []spatial.Twist{{}}
	particleF := make([]spatial.Vec3, 1)
	bodyF := make([]spatial.Wrench, 1)

	SoftContact(m, particleQ, particleQd, bodyQ, bodyQd, particleF, bodyF)

	// particle pushed along +n
	if particleF[0].Y <= 0 {
		tst.Fatalf("expected particle pushed out along +n, got fy=%v", particleF[0].Y)
	}

	chk.Float64(tst, "fx pair", 1e-10, particleF[0].X+bodyF[0].F.X, 0)
	chk.Float64(tst, "fy pair", 1e-10, particleF[0].Y+bodyF[0].F.Y, 0)
	chk.Float64(tst, "fz pair", 1e-10, particleF[0].Z+bodyF[0].F.Z, 0)
}

func Test_soft_contact_separated_no_force(tst *testing.T) {

	chk.PrintTitle("separated soft contact: no force")

	m := model.New()
	m.ParticleCount = 1
	m.BodyCount = 1
	m.BodyCom = []spatial.Vec3{{}}
	m.SoftContactCount = 1
	m.SoftContactParticle = []int{0}
	m.SoftContactBody = []int{0}
	m.SoftContactBodyPos = []spatial.Vec3{{}}
	m.SoftContactBodyVel = []spatial.Vec3{{}}
	m.SoftContactNormal = []spatial.Vec3{spatial.NewVec3(0, 1, 0)}
	m.SoftContactKe = 1000

	particleQ := []spatial.Vec3{spatial.NewVec3(0, 0.5, 0)}
	particleQd := []spatial.Vec3{{}}
	bodyQ := []spatial.Transform{spatial.TransformIdentity()}
	bodyQd := []spatial.Twist{{}}
	particleF := make([]spatial.Vec3, 1)
	bodyF := make([]spatial.Wrench, 1)

	SoftContact(m, particleQ, particleQd, bodyQ, bodyQd, particleF, bodyF)

	chk.Float64(tst, "fp", 1e-15, particleF[0].Length(), 0)
	chk.Float64(tst, "fb", 1e-15, bodyF[0].F.Length(), 0)
}

func Test_body_ground_contact_resting_box_corner(tst *testing.T) {

	chk.PrintTitle("body-ground contact: penetrating corner pushed up")

	m := model.New()
	m.BodyCount = 1
	m.Ground = true
	m.ContactCount = 1
	m.ContactBody0 = []int{0}
	m.ContactPoint0 = []spatial.Vec3{spatial.NewVec3(0.5, -0.5, 0.5)}
	m.ContactDist = []float64{0}
	m.ContactMaterial = []int{0}
	m.ShapeCount = 1
	m.ShapeMaterials = [][4]float64{{1000, 10, 100, 0.5}}
	m.BodyCom = []spatial.Vec3{{}}

	bodyQ := []spatial.Transform{spatial.NewTransform(spatial.NewVec3(0, 0.4, 0), spatial.QuatIdentity())}
	bodyQd := []spatial.Twist{{}}
	bodyF := make([]spatial.Wrench, 1)

	BodyGroundContact(m, bodyQ, bodyQd, bodyF)

	// corner at y=-0.1: upward force and a torque about the com
	if bodyF[0].F.Y <= 0 {
		tst.Fatalf("expected upward contact force, got fy=%v", bodyF[0].F.Y)
	}
	chk.Float64(tst, "fy", 1e-10, bodyF[0].F.Y, 100)
	if bodyF[0].T.Length() == 0 {
		tst.Fatalf("expected nonzero contact torque for off-com corner")
	}
}
