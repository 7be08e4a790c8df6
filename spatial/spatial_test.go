// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vec3_basic(tst *testing.T) {

	chk.PrintTitle("vec3 basic")

	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)
	chk.Float64(tst, "a.b", 1e-15, a.Dot(b), 0)
	c := a.Cross(b)
	chk.Float64(tst, "cx", 1e-15, c.X, 0)
	chk.Float64(tst, "cy", 1e-15, c.Y, 0)
	chk.Float64(tst, "cz", 1e-15, c.Z, 1)
}

func Test_quat_rotate_identity(tst *testing.T) {

	chk.PrintTitle("quat identity")

	q := QuatIdentity()
	v := NewVec3(1, 2, 3)
	r := q.Rotate(v)
	chk.Float64(tst, "x", 1e-15, r.X, v.X)
	chk.Float64(tst, "y", 1e-15, r.Y, v.Y)
	chk.Float64(tst, "z", 1e-15, r.Z, v.Z)
}

func Test_quat_axis_angle_90z(tst *testing.T) {

	chk.PrintTitle("quat 90deg about z")

	q := QuatFromAxisAngle(NewVec3(0, 0, 1), math.Pi/2)
	r := q.Rotate(NewVec3(1, 0, 0))
	chk.Float64(tst, "x", 1e-8, r.X, 0)
	chk.Float64(tst, "y", 1e-8, r.Y, 1)
}

func Test_transform_point_and_inverse(tst *testing.T) {

	chk.PrintTitle("transform point+inverse")

	t := NewTransform(NewVec3(1, 2, 3), QuatFromAxisAngle(NewVec3(0, 0, 1), math.Pi/2))
	x := NewVec3(1, 0, 0)
	y := TransformPoint(t, x)
	inv := t.Inverse()
	back := TransformPoint(inv, y)
	chk.Float64(tst, "x", 1e-8, back.X, x.X)
	chk.Float64(tst, "y", 1e-8, back.Y, x.Y)
	chk.Float64(tst, "z", 1e-8, back.Z, x.Z)
}

func Test_transform_twist_adjoint(tst *testing.T) {

	chk.PrintTitle("transform twist adjoint")

	t := NewTransform(NewVec3(0, 0, 0), QuatIdentity())
	s := Twist{W: NewVec3(0, 0, 1), V: NewVec3(1, 0, 0)}
	out := TransformTwist(t, s)
	chk.Float64(tst, "wz", 1e-15, out.W.Z, 1)
	chk.Float64(tst, "vx", 1e-15, out.V.X, 1)
}

func Test_edge_edge_middle_crossing(tst *testing.T) {

	chk.PrintTitle("edge-edge crossing")

	p1 := NewVec3(0, 0, 0)
	q1 := NewVec3(1, 1, 0)
	p2 := NewVec3(0, 1, 0)
	q2 := NewVec3(1, 0, 0)
	s, t := ClosestPointEdgeEdge(p1, q1, p2, q2, 1e-5)
	chk.Float64(tst, "s", 1e-8, s, 0.5)
	chk.Float64(tst, "t", 1e-8, t, 0.5)
}

func Test_edge_edge_parallel(tst *testing.T) {

	chk.PrintTitle("edge-edge parallel")

	p1 := NewVec3(0, 0, 0)
	q1 := NewVec3(1, 1, 0)
	p2 := NewVec3(2, 2, 0)
	q2 := NewVec3(3, 3, 0)
	s, t := ClosestPointEdgeEdge(p1, q1, p2, q2, 1e-5)
	chk.Float64(tst, "s", 1e-8, s, 1.0)
	chk.Float64(tst, "t", 1e-8, t, 0.0)
}

func Test_triangle_barycentric_vertex(tst *testing.T) {

	chk.PrintTitle("triangle barycentric at vertex a")

	a := NewVec3(0, 0, 0)
	b := NewVec3(1, 0, 0)
	c := NewVec3(0, 1, 0)
	u, v, w := TriangleClosestPointBarycentric(a, b, c, a)
	chk.Float64(tst, "u", 1e-15, u, 1)
	chk.Float64(tst, "v", 1e-15, v, 0)
	chk.Float64(tst, "w", 1e-15, w, 0)
}

func Test_signed_dihedral_angle(tst *testing.T) {

	chk.PrintTitle("signed dihedral angle about an edge")

	// two faces folded 90 degrees about the x axis
	n1 := NewVec3(0, 0, 1)
	n2 := NewVec3(0, 1, 0)
	e := NewVec3(1, 0, 0)

	theta := SignedDihedralAngle(n1, n2, e)
	chk.Float64(tst, "|theta|", 1e-12, math.Abs(theta), math.Pi/2)

	// flipping the edge direction flips the sign
	chk.Float64(tst, "antisym", 1e-12, theta+SignedDihedralAngle(n1, n2, e.Neg()), 0)
}

func Test_quat_twist_extraction(tst *testing.T) {

	chk.PrintTitle("quat twist about an axis")

	axis := NewVec3(0, 0, 1)
	q := QuatFromAxisAngle(axis, math.Pi/3)
	tw := QuatTwist(axis, q)
	chk.Float64(tst, "w", 1e-12, tw.W, math.Cos(math.Pi/6))
	chk.Float64(tst, "z", 1e-12, tw.Z, math.Sin(math.Pi/6))

	// a rotation purely about a perpendicular axis has no twist
	// component: projection is zero and the result renormalizes to
	// the identity-like (0,0,0,w)/|.| form
	qPerp := QuatFromAxisAngle(NewVec3(1, 0, 0), math.Pi/3)
	twPerp := QuatTwist(axis, qPerp)
	chk.Float64(tst, "perp x", 1e-12, twPerp.X, 0)
	chk.Float64(tst, "perp y", 1e-12, twPerp.Y, 0)
	chk.Float64(tst, "perp z", 1e-12, twPerp.Z, 0)
	chk.Float64(tst, "perp |q|", 1e-12, twPerp.Length(), 1)
}

func Test_triangle_barycentric_sums_to_one(tst *testing.T) {

	chk.PrintTitle("triangle barycentric sums to one")

	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 0, 0)
	c := NewVec3(0, 2, 0)
	p := NewVec3(1, 1, 5)
	u, v, w := TriangleClosestPointBarycentric(a, b, c, p)
	chk.Float64(tst, "sum", 1e-12, u+v+w, 1)
	if u < -1e-12 || v < -1e-12 || w < -1e-12 {
		tst.Fatalf("barycentric coordinates must be nonnegative: %v %v %v", u, v, w)
	}
}
