// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"testing"

	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/spatial"
	"github.com/cpmech/gosl/chk"
)

// unit right triangle at rest: material basis is the identity, so the
// inverse pose is too
func restTriangleModel() *model.Model {
	m := model.New()
	m.ParticleCount = 3
	m.TriCount = 1
	m.TriIndices = [][3]int{{0, 1, 2}}
	m.TriPoses = []spatial.Mat22{{M: [2][2]float64{{1, 0}, {0, 1}}}}
	m.TriActivations = []float64{0}
	m.TriKe = 100
	m.TriKa = 1000
	return m
}

func Test_triangles_rest_state_zero_force(tst *testing.T) {

	chk.PrintTitle("triangle at rest: deviatoric and area terms cancel")

	m := restTriangleModel()
	q := []spatial.Vec3{{}, spatial.NewVec3(1, 0, 0), spatial.NewVec3(0, 1, 0)}
	qd := make([]spatial.Vec3, 3)
	f := make([]spatial.Vec3, 3)

	Triangles(m, q, qd, f)

	for i := 0; i < 3; i++ {
		chk.Float64(tst, "fx", 1e-10, f[i].X, 0)
		chk.Float64(tst, "fy", 1e-10, f[i].Y, 0)
		chk.Float64(tst, "fz", 1e-10, f[i].Z, 0)
	}
}

func Test_triangles_momentum_conservation(tst *testing.T) {

	chk.PrintTitle("stretched triangle: membrane forces sum to zero")

	m := restTriangleModel()
	q := []spatial.Vec3{{}, spatial.NewVec3(1.3, 0.1, 0), spatial.NewVec3(-0.2, 1.1, 0.05)}
	qd := []spatial.Vec3{spatial.NewVec3(0.1, 0, 0), {}, spatial.NewVec3(0, -0.2, 0)}
	m.TriKd = 1
	f := make([]spatial.Vec3, 3)

	Triangles(m, q, qd, f)

	sum := f[0].Add(f[1]).Add(f[2])
	chk.Float64(tst, "sum.x", 1e-10, sum.X, 0)
	chk.Float64(tst, "sum.y", 1e-10, sum.Y, 0)
	chk.Float64(tst, "sum.z", 1e-10, sum.Z, 0)
}
