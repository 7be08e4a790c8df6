// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dynafem-step is a small command-line driver that advances a model
// by a fixed number of timesteps and prints the resulting particle
// state. Scene construction belongs to an external model builder;
// this driver builds a single free-falling particle as a smoke-test
// scene.
package main

import (
	"flag"

	"github.com/cpmech/dynafem/model"
	"github.com/cpmech/dynafem/sim"
	"github.com/cpmech/dynafem/spatial"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	steps := flag.Int("steps", 100, "number of timesteps to advance")
	dt := flag.Float64("dt", 0.01, "timestep size")
	implicit := flag.Bool("implicit", false, "use the variational implicit integrator instead of semi-implicit Euler")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	m := model.New()
	m.ParticleCount = 1
	m.ParticleMass = []float64{1}
	m.ParticleInvMass = []float64{1}
	m.Gravity = spatial.NewVec3(0, -9.81, 0)

	state := model.NewState(m.ParticleCount, m.BodyCount)
	state.ParticleQ[0] = spatial.NewVec3(0, 10, 0)

	var integrator sim.Integrator = sim.SemiImplicit{}
	if *implicit {
		integrator = sim.VariationalImplicit{Alpha: 0.01, MaxIters: 20}
	}

	io.Pf("dynafem-step: %d steps, dt=%v\n", *steps, *dt)
	for i := 0; i < *steps; i++ {
		next := model.NewState(m.ParticleCount, m.BodyCount)
		if err := integrator.Simulate(m, state, next, *dt); err != nil {
			chk.Panic("step %d failed: %v", i, err)
		}
		state = next
	}
	io.Pf("final: x=%v v=%v\n", state.ParticleQ[0], state.ParticleQd[0])
}
