// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spatial implements the spatial-algebra primitives used by the
// integration core: vec3, quat, mat33, spatial transforms, twists and
// wrenches, and the closest-point geometry routines the contact and
// bending kernels depend on.
package spatial

import "math"

// Vec3 is a 3-component vector.
type Vec3 struct{ X, Y, Z float64 }

// NewVec3 returns a new vector.
func NewVec3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Add returns a+b
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns a*s
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

// Neg returns -a
func (a Vec3) Neg() Vec3 { return Vec3{-a.X, -a.Y, -a.Z} }

// Dot returns a.b
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns a×b
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns |a|
func (a Vec3) Length() float64 { return math.Sqrt(a.Dot(a)) }

// LengthSq returns |a|²
func (a Vec3) LengthSq() float64 { return a.Dot(a) }

// Normalize returns a/|a|; returns the zero vector when |a| is (near)
// zero instead of dividing by it, so degenerate geometry falls through
// the element kernels without contributing.
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l < 1e-12 {
		return Vec3{}
	}
	return a.Scale(1.0 / l)
}

// Lerp linearly interpolates between a and b
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Step implements the step(x) gate the kernels use to switch behavior
// on without branching: 1 when x is negative, else 0. NOT the
// Heaviside function: gravity is gated by step(-invMass) and friction
// by step(c) with c a non-positive penetration depth, and both need
// the negative-side convention.
func Step(x float64) float64 {
	if x < 0 {
		return 1
	}
	return 0
}

// Sign returns -1 when x is negative, else +1.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Clamp restricts x to [lo,hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
