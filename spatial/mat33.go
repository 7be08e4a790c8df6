// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// Mat33 is a 3x3 matrix stored row-major, used for body inertia tensors
// and tetrahedron deformation gradients.
type Mat33 struct {
	M [3][3]float64
}

// Mat33FromCols builds a matrix from three column vectors.
func Mat33FromCols(c0, c1, c2 Vec3) Mat33 {
	var m Mat33
	m.M[0][0], m.M[1][0], m.M[2][0] = c0.X, c0.Y, c0.Z
	m.M[0][1], m.M[1][1], m.M[2][1] = c1.X, c1.Y, c1.Z
	m.M[0][2], m.M[1][2], m.M[2][2] = c2.X, c2.Y, c2.Z
	return m
}

// Col returns column j (0-based).
func (m Mat33) Col(j int) Vec3 { return Vec3{m.M[0][j], m.M[1][j], m.M[2][j]} }

// MulVec returns m*v.
func (m Mat33) MulVec(v Vec3) Vec3 {
	return Vec3{
		m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Mul returns a*b.
func (a Mat33) Mul(b Mat33) Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0.0
			for k := 0; k < 3; k++ {
				s += a.M[i][k] * b.M[k][j]
			}
			r.M[i][j] = s
		}
	}
	return r
}

// Transpose returns mᵀ.
func (m Mat33) Transpose() Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

// Add returns a+b.
func (a Mat33) Add(b Mat33) Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = a.M[i][j] + b.M[i][j]
		}
	}
	return r
}

// Scale returns m*s.
func (m Mat33) Scale(s float64) Mat33 {
	var r Mat33
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][j] * s
		}
	}
	return r
}

// Det returns the determinant of m.
func (m Mat33) Det() float64 {
	return m.M[0][0]*(m.M[1][1]*m.M[2][2]-m.M[1][2]*m.M[2][1]) -
		m.M[0][1]*(m.M[1][0]*m.M[2][2]-m.M[1][2]*m.M[2][0]) +
		m.M[0][2]*(m.M[1][0]*m.M[2][1]-m.M[1][1]*m.M[2][0])
}

// RotationMatrix returns the 3x3 rotation matrix R(q).
func RotationMatrix(q Quat) Mat33 {
	return Mat33FromCols(
		q.Rotate(Vec3{1, 0, 0}),
		q.Rotate(Vec3{0, 1, 0}),
		q.Rotate(Vec3{0, 0, 1}),
	)
}

// Mat22 is a 2x2 matrix used for the triangle material-space inverse basis.
type Mat22 struct {
	M [2][2]float64
}

// Det returns the determinant of m.
func (m Mat22) Det() float64 { return m.M[0][0]*m.M[1][1] - m.M[0][1]*m.M[1][0] }
