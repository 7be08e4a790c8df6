// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import "math"

// Quat is a unit quaternion (X,Y,Z,W) with the imaginary part first,
// matching the convention the body-integration kernel commits to State.
type Quat struct{ X, Y, Z, W float64 }

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat { return Quat{0, 0, 0, 1} }

// QuatFromAxisAngle builds a rotation of angle radians about axis (which
// need not be normalized).
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	a := axis.Normalize()
	s := math.Sin(angle / 2)
	return Quat{a.X * s, a.Y * s, a.Z * s, math.Cos(angle / 2)}
}

// Imag returns the imaginary (vector) part of q.
func (q Quat) Imag() Vec3 { return Vec3{q.X, q.Y, q.Z} }

// Mul composes rotations: (a*b) rotates by b then by a.
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Conjugate returns q*, the inverse of a unit quaternion.
func (q Quat) Conjugate() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// Inverse returns q⁻¹ (equals the conjugate for unit quaternions).
func (q Quat) Inverse() Quat { return q.Conjugate() }

// Length returns the quaternion's 4-norm.
func (q Quat) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q/|q|; falls back to identity when |q| is
// degenerate (quaternion drift mitigation per the body integrator).
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l < 1e-12 {
		return QuatIdentity()
	}
	inv := 1.0 / l
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Add is componentwise addition, used by the linearized quaternion
// integration update r + ½ω·r·Δt.
func (a Quat) Add(b Quat) Quat { return Quat{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }

// Scale multiplies all four components by s.
func (q Quat) Scale(s float64) Quat { return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s} }

// Rotate applies q to vector v: R(q)v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := q.Imag()
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// RotateInv applies the inverse rotation q⁻¹ to v.
func (q Quat) RotateInv(v Vec3) Vec3 { return q.Conjugate().Rotate(v) }

// FromVec4W builds a quaternion from an imaginary 3-vector and scalar part.
func FromVec4W(imag Vec3, w float64) Quat { return Quat{imag.X, imag.Y, imag.Z, w} }

// QuatTwist projects the imaginary part of q onto axis and renormalizes,
// extracting the rotation-about-axis component used for revolute joint
// coordinates.
func QuatTwist(axis Vec3, q Quat) Quat {
	a := axis.Normalize()
	proj := a.Scale(a.Dot(q.Imag()))
	return Quat{proj.X, proj.Y, proj.Z, q.W}.Normalize()
}
