// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import "math"

// ClosestPointEdgeEdge returns the (s,t) parameters of the closest points
// on segments p1-q1 and p2-q2: c1 = p1+(q1-p1)s, c2 = p2+(q2-p2)t.
// epsilon is the squared-length threshold below which a segment is
// treated as a point; parallel segments (zero denominator) start from
// s = 0 before clamping.
func ClosestPointEdgeEdge(p1, q1, p2, q2 Vec3, epsilon float64) (s, t float64) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	if a <= epsilon && e <= epsilon {
		return 0, 0
	}
	if a <= epsilon {
		s = 0
		t = Clamp(f/e, 0, 1)
		return s, t
	}
	c := d1.Dot(r)
	if e <= epsilon {
		t = 0
		s = Clamp(-c/a, 0, 1)
		return s, t
	}

	b := d1.Dot(d2)
	denom := a*e - b*b

	if denom != 0 {
		s = Clamp((b*f-c*e)/denom, 0, 1)
	} else {
		s = 0
	}

	t = (b*s + f) / e

	if t < 0 {
		t = 0
		s = Clamp(-c/a, 0, 1)
	} else if t > 1 {
		t = 1
		s = Clamp((b-c)/a, 0, 1)
	}
	return s, t
}

// TriangleClosestPointBarycentric returns the barycentric coordinates
// (u,v,w) of the point on triangle (a,b,c) closest to p, with u+v+w=1
// and all components nonnegative.
func TriangleClosestPointBarycentric(a, b, c, p Vec3) (u, v, w float64) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return 1, 0, 0
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return 0, 1, 0
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		vv := d1 / (d1 - d3)
		return 1 - vv, vv, 0
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return 0, 0, 1
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		ww := d2 / (d2 - d6)
		return 1 - ww, 0, ww
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		ww := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return 0, 1 - ww, ww
	}

	denom := 1.0 / (va + vb + vc)
	vv := vb * denom
	ww := vc * denom
	return 1 - vv - ww, vv, ww
}

// ClosestPointOnTriangle evaluates TriangleClosestPointBarycentric and
// returns the actual closest point.
func ClosestPointOnTriangle(a, b, c, p Vec3) Vec3 {
	u, v, w := TriangleClosestPointBarycentric(a, b, c, p)
	return a.Scale(u).Add(b.Scale(v)).Add(c.Scale(w))
}

// SignedDihedralAngle computes the angle between normals n1 and n2
// about axis e, clamped before acos to absorb floating-point drift at
// the ±1 boundary.
func SignedDihedralAngle(n1, n2, e Vec3) float64 {
	n1h := n1.Normalize()
	n2h := n2.Normalize()
	cosTheta := Clamp(n1h.Dot(n2h), -1, 1)
	theta := math.Acos(cosTheta)
	return theta * Sign(n2h.Cross(n1h).Dot(e))
}
