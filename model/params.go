// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/cpmech/gosl/fun"

// ApplyTriangleParams reads the triangle-membrane material constants
// from a named-parameter list.
func (m *Model) ApplyTriangleParams(prms fun.Prms) {
	for _, p := range prms {
		switch p.N {
		case "ke":
			m.TriKe = p.V
		case "ka":
			m.TriKa = p.V
		case "kd":
			m.TriKd = p.V
		case "drag":
			m.TriDrag = p.V
		case "lift":
			m.TriLift = p.V
		}
	}
}

// ApplyEdgeParams reads the bending material constants.
func (m *Model) ApplyEdgeParams(prms fun.Prms) {
	for _, p := range prms {
		switch p.N {
		case "ke":
			m.EdgeKe = p.V
		case "kd":
			m.EdgeKd = p.V
		}
	}
}

// ApplySoftContactParams reads the soft-contact material constants.
func (m *Model) ApplySoftContactParams(prms fun.Prms) {
	for _, p := range prms {
		switch p.N {
		case "ke":
			m.SoftContactKe = p.V
		case "kd":
			m.SoftContactKd = p.V
		case "kf":
			m.SoftContactKf = p.V
		case "mu":
			m.SoftContactMu = p.V
		case "distance":
			m.SoftContactDistance = p.V
		}
	}
}

// DefaultTriangleParams returns example triangle material parameters.
func DefaultTriangleParams() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "ke", V: 1.0e4},
		&fun.Prm{N: "ka", V: 1.0e4},
		&fun.Prm{N: "kd", V: 0.0},
		&fun.Prm{N: "drag", V: 0.0},
		&fun.Prm{N: "lift", V: 0.0},
	}
}
