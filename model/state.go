// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/cpmech/dynafem/spatial"

// State holds the per-step mutable arrays: positions/velocities for
// particles and bodies, plus the persistent external force/wrench the
// user applies. The transient per-step accumulator the force kernels
// write into is a separate, driver-owned buffer that is zeroed before
// each accumulation phase. SemiImplicit sums the two at integration
// time; VariationalImplicit uses the external field only in its initial
// velocity prediction. Both carry the external field forward unchanged
// into state_out.
// A step reads one State (input) and writes another (output); they
// must not alias in the implicit integrator.
type State struct {
	ParticleQ  []spatial.Vec3 // positions
	ParticleQd []spatial.Vec3 // velocities
	ParticleF  []spatial.Vec3 // persistent external forces (user-applied)

	BodyQ  []spatial.Transform
	BodyQd []spatial.Twist
	BodyF  []spatial.Wrench // persistent external wrench (user-applied)
}

// NewState allocates a State sized for the given particle/body counts,
// with the external force/wrench fields zeroed.
func NewState(particleCount, bodyCount int) *State {
	return &State{
		ParticleQ:  make([]spatial.Vec3, particleCount),
		ParticleQd: make([]spatial.Vec3, particleCount),
		ParticleF:  make([]spatial.Vec3, particleCount),
		BodyQ:      make([]spatial.Transform, bodyCount),
		BodyQd:     make([]spatial.Twist, bodyCount),
		BodyF:      make([]spatial.Wrench, bodyCount),
	}
}

// Clone returns a deep copy of s, suitable for use as a distinct
// state_out buffer (the implicit integrator requires state_in != state_out).
func (s *State) Clone() *State {
	o := &State{
		ParticleQ:  append([]spatial.Vec3(nil), s.ParticleQ...),
		ParticleQd: append([]spatial.Vec3(nil), s.ParticleQd...),
		ParticleF:  append([]spatial.Vec3(nil), s.ParticleF...),
		BodyQ:      append([]spatial.Transform(nil), s.BodyQ...),
		BodyQd:     append([]spatial.Twist(nil), s.BodyQd...),
		BodyF:      append([]spatial.Wrench(nil), s.BodyF...),
	}
	return o
}

// ZeroExternalForces clears the persistent user-applied force/wrench,
// for callers that want a one-shot external force rather than one
// that persists across steps.
func (s *State) ZeroExternalForces() {
	for i := range s.ParticleF {
		s.ParticleF[i] = spatial.Vec3{}
	}
	for i := range s.BodyF {
		s.BodyF[i] = spatial.Wrench{}
	}
}

// SameBuffers reports whether a and b share any underlying array,
// used to enforce the implicit integrator's non-aliasing precondition.
func SameBuffers(a, b *State) bool {
	if a == b {
		return true
	}
	if len(a.ParticleQ) > 0 && len(b.ParticleQ) > 0 && &a.ParticleQ[0] == &b.ParticleQ[0] {
		return true
	}
	if len(a.ParticleQd) > 0 && len(b.ParticleQd) > 0 && &a.ParticleQd[0] == &b.ParticleQd[0] {
		return true
	}
	if len(a.ParticleF) > 0 && len(b.ParticleF) > 0 && &a.ParticleF[0] == &b.ParticleF[0] {
		return true
	}
	if len(a.BodyQ) > 0 && len(b.BodyQ) > 0 && &a.BodyQ[0] == &b.BodyQ[0] {
		return true
	}
	if len(a.BodyQd) > 0 && len(b.BodyQd) > 0 && &a.BodyQd[0] == &b.BodyQd[0] {
		return true
	}
	if len(a.BodyF) > 0 && len(b.BodyF) > 0 && &a.BodyF[0] == &b.BodyF[0] {
		return true
	}
	return false
}
