// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// Transform is a rigid motion (p,q): rotation q then translation p.
type Transform struct {
	P Vec3
	Q Quat
}

// TransformIdentity returns the identity transform.
func TransformIdentity() Transform { return Transform{Vec3{}, QuatIdentity()} }

// NewTransform composes a rigid motion from a position and orientation.
func NewTransform(p Vec3, q Quat) Transform { return Transform{p, q} }

// Multiply composes two transforms: applying (a*b) to a point first
// applies b, then a, consistent with rotate-then-translate semantics.
func (a Transform) Multiply(b Transform) Transform {
	return Transform{
		P: a.P.Add(a.Q.Rotate(b.P)),
		Q: a.Q.Mul(b.Q),
	}
}

// TransformPoint returns T.p + rotate(T.q, x).
func TransformPoint(t Transform, x Vec3) Vec3 {
	return t.P.Add(t.Q.Rotate(x))
}

// TransformVector returns rotate(T.q, v).
func TransformVector(t Transform, v Vec3) Vec3 {
	return t.Q.Rotate(v)
}

// Inverse returns (−R⁻¹p, q⁻¹).
func (t Transform) Inverse() Transform {
	qi := t.Q.Inverse()
	return Transform{P: qi.Rotate(t.P).Neg(), Q: qi}
}

// Twist is a spatial velocity: angular (top) over linear (bottom).
type Twist struct {
	W Vec3 // angular
	V Vec3 // linear
}

// Wrench is a spatial force: torque (top) over force (bottom).
type Wrench struct {
	T Vec3 // torque
	F Vec3 // force
}

// TransformTwist returns the adjoint action of t on twist s: (Rω, Rv + p×Rω).
func TransformTwist(t Transform, s Twist) Twist {
	rw := t.Q.Rotate(s.W)
	rv := t.Q.Rotate(s.V)
	return Twist{W: rw, V: rv.Add(t.P.Cross(rw))}
}

// TransformWrench returns the adjoint action of t on wrench w: (Rτ + p×Rf, Rf).
func TransformWrench(t Transform, w Wrench) Wrench {
	rf := t.Q.Rotate(w.F)
	rt := t.Q.Rotate(w.T)
	return Wrench{T: rt.Add(t.P.Cross(rf)), F: rf}
}

// Add is componentwise twist addition.
func (a Twist) Add(b Twist) Twist { return Twist{a.W.Add(b.W), a.V.Add(b.V)} }

// Scale multiplies both halves of a twist by s.
func (a Twist) Scale(s float64) Twist { return Twist{a.W.Scale(s), a.V.Scale(s)} }

// Add is componentwise wrench addition.
func (a Wrench) Add(b Wrench) Wrench { return Wrench{a.T.Add(b.T), a.F.Add(b.F)} }

// Neg negates both halves of a wrench.
func (a Wrench) Neg() Wrench { return Wrench{a.T.Neg(), a.F.Neg()} }

// SpatialMatrix is a 6x6 operator over (angular;linear) spatial vectors,
// used to change the basis of a body's inertia tensor between frames.
type SpatialMatrix struct {
	M [6][6]float64
}

// InertiaChangeOfBasis returns R·I·Rᵀ, the inertia tensor I expressed in
// body frame re-expressed after rotation by R.
func InertiaChangeOfBasis(i Mat33, r Mat33) Mat33 {
	return r.Mul(i).Mul(r.Transpose())
}
