// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package densela implements dense linear-algebra helpers (GEMM,
// Cholesky factor/substitute, general solve, plus batched variants
// driven by per-block start-offset arrays), backed by gonum/mat.
// Inputs and outputs are flat row-major float64 slices with explicit
// m,n,p dimensions rather than gonum's native matrix types, so
// callers can batch over shared backing arrays.
package densela

import (
	"github.com/cpmech/dynafem/dispatch"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Gemm computes c = alpha*a*b + beta*c, where a is m x p, b is p x n,
// and c is m x n, all flat row-major.
func Gemm(m, n, p int, alpha float64, a []float64, b []float64, beta float64, c []float64) {
	chk.IntAssert(len(a), m*p)
	chk.IntAssert(len(b), p*n)
	chk.IntAssert(len(c), m*n)
	ma := mat.NewDense(m, p, a)
	mb := mat.NewDense(p, n, b)
	mc := mat.NewDense(m, n, nil)
	mc.Mul(ma, mb)
	mc.Scale(alpha, mc)
	for i, v := range mc.RawMatrix().Data {
		c[i] = beta*c[i] + v
	}
}

// Chol computes the lower Cholesky factor l (n x n, flat row-major) of
// the symmetric positive-definite matrix a (n x n, flat row-major).
// reg is added to the diagonal before factoring, so nearly-singular
// systems arising from soft constraints still factor.
func Chol(n int, a []float64, reg float64, l []float64) error {
	chk.IntAssert(len(a), n*n)
	chk.IntAssert(len(l), n*n)
	ar := a
	if reg != 0 {
		ar = append([]float64(nil), a...)
		for i := 0; i < n; i++ {
			ar[i*n+i] += reg
		}
	}
	sym := mat.NewSymDense(n, ar)
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return chk.Err("dense_chol: matrix is not positive definite")
	}
	var lo mat.TriDense
	chol.LTo(&lo)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			l[i*n+j] = lo.At(i, j)
		}
	}
	return nil
}

// Subs solves l*l^T*x = b by forward/back substitution given the
// lower Cholesky factor l (n x n, flat row-major).
func Subs(n int, l []float64, b []float64, x []float64) {
	chk.IntAssert(len(l), n*n)
	chk.IntAssert(len(b), n)
	chk.IntAssert(len(x), n)
	lo := mat.NewTriDense(n, mat.Lower, l)
	var y, xv mat.VecDense
	bv := mat.NewVecDense(n, b)
	if err := y.SolveVec(lo, bv); err != nil {
		chk.Panic("dense_subs: forward solve failed: %v", err)
	}
	if err := xv.SolveVec(lo.T(), &y); err != nil {
		chk.Panic("dense_subs: back solve failed: %v", err)
	}
	copy(x, xv.RawVector().Data)
}

// Solve solves the general linear system a*x = b (a is n x n, flat
// row-major) without requiring a is SPD.
func Solve(n int, a []float64, b []float64, x []float64) error {
	chk.IntAssert(len(a), n*n)
	chk.IntAssert(len(b), n)
	chk.IntAssert(len(x), n)
	ma := mat.NewDense(n, n, a)
	bv := mat.NewVecDense(n, b)
	var xv mat.VecDense
	if err := xv.SolveVec(ma, bv); err != nil {
		return chk.Err("dense_solve: %v", err)
	}
	copy(x, xv.RawVector().Data)
	return nil
}

// GemmBatched runs one Gemm per batch entry over flat a/b/c arrays,
// with per-batch dimensions m[i] x p[i] and p[i] x n[i] and start
// offsets into each array. Batches are independent and run through
// the same parallel-for grid the force kernels use.
func GemmBatched(m, n, p []int, alpha float64, aStart []int, a []float64, bStart []int, b []float64, beta float64, cStart []int, c []float64) {
	chk.IntAssert(len(n), len(m))
	chk.IntAssert(len(p), len(m))
	chk.IntAssert(len(aStart), len(m))
	chk.IntAssert(len(bStart), len(m))
	chk.IntAssert(len(cStart), len(m))
	dispatch.ParallelFor(len(m), func(i int) {
		mi, ni, pi := m[i], n[i], p[i]
		Gemm(mi, ni, pi, alpha,
			a[aStart[i]:aStart[i]+mi*pi],
			b[bStart[i]:bStart[i]+pi*ni],
			beta,
			c[cStart[i]:cStart[i]+mi*ni])
	})
}

// CholBatched factors each aDim[i] x aDim[i] block of a starting at
// aStart[i] into the matching block of l, applying the same diagonal
// regularization to every block. The first failing block's error is
// reported; remaining blocks still factor.
func CholBatched(aStart, aDim []int, a []float64, reg float64, l []float64) error {
	chk.IntAssert(len(aDim), len(aStart))
	errs := make([]error, len(aStart))
	dispatch.ParallelFor(len(aStart), func(i int) {
		n := aDim[i]
		errs[i] = Chol(n, a[aStart[i]:aStart[i]+n*n], reg, l[aStart[i]:aStart[i]+n*n])
	})
	for i, err := range errs {
		if err != nil {
			return chk.Err("dense_chol_batched: block %d: %v", i, err)
		}
	}
	return nil
}

// SolveBatched solves one aDim[i] x aDim[i] system per batch entry:
// the matrix block starts at aStart[i] in a, the right-hand side and
// solution blocks start at bStart[i] in b and x.
func SolveBatched(bStart, aStart, aDim []int, a, b, x []float64) error {
	chk.IntAssert(len(aStart), len(bStart))
	chk.IntAssert(len(aDim), len(bStart))
	errs := make([]error, len(bStart))
	dispatch.ParallelFor(len(bStart), func(i int) {
		n := aDim[i]
		errs[i] = Solve(n, a[aStart[i]:aStart[i]+n*n], b[bStart[i]:bStart[i]+n], x[bStart[i]:bStart[i]+n])
	})
	for i, err := range errs {
		if err != nil {
			return chk.Err("dense_solve_batched: block %d: %v", i, err)
		}
	}
	return nil
}
