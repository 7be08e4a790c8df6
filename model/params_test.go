// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_params_triangle_ingestion(tst *testing.T) {

	chk.PrintTitle("triangle material parameters from a prms list")

	m := New()
	m.ApplyTriangleParams(fun.Prms{
		&fun.Prm{N: "ke", V: 500},
		&fun.Prm{N: "ka", V: 800},
		&fun.Prm{N: "kd", V: 2},
		&fun.Prm{N: "drag", V: 0.1},
		&fun.Prm{N: "lift", V: 0.2},
	})

	chk.Float64(tst, "ke", 1e-15, m.TriKe, 500)
	chk.Float64(tst, "ka", 1e-15, m.TriKa, 800)
	chk.Float64(tst, "kd", 1e-15, m.TriKd, 2)
	chk.Float64(tst, "drag", 1e-15, m.TriDrag, 0.1)
	chk.Float64(tst, "lift", 1e-15, m.TriLift, 0.2)
}

func Test_params_defaults_round_trip(tst *testing.T) {

	chk.PrintTitle("default triangle parameters apply cleanly")

	m := New()
	m.ApplyTriangleParams(DefaultTriangleParams())
	chk.Float64(tst, "ke", 1e-15, m.TriKe, 1e4)
	chk.Float64(tst, "ka", 1e-15, m.TriKa, 1e4)
}

func Test_state_aliasing_detection(tst *testing.T) {

	chk.PrintTitle("SameBuffers detects shared state arrays")

	a := NewState(3, 1)
	b := NewState(3, 1)
	if SameBuffers(a, b) {
		tst.Fatalf("distinct states must not be reported as aliased")
	}
	if !SameBuffers(a, a) {
		tst.Fatalf("a state must alias itself")
	}
	c := &State{ParticleQ: a.ParticleQ, ParticleQd: a.ParticleQd, ParticleF: a.ParticleF}
	if !SameBuffers(a, c) {
		tst.Fatalf("states sharing particle arrays must be reported as aliased")
	}
}

func Test_joint_type_names(tst *testing.T) {

	chk.PrintTitle("joint type enum names")

	if JointRevolute.String() != "revolute" || JointFree.String() != "free" {
		tst.Fatalf("unexpected joint names: %v %v", JointRevolute, JointFree)
	}
	if !JointBall.Valid() || JointType(99).Valid() {
		tst.Fatalf("validity check broken")
	}
}
