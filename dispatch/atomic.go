// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dispatch implements the grid-dispatch and atomic-reduction
// layer: launching a kernel is a parallel-for over its element count,
// and concurrent kernels reduce into shared per-vertex/per-body
// accumulators via atomic add/subtract. Go has no native atomic float,
// so AddFloat64 below implements the standard compare-and-swap-on-bits
// loop; summation order across goroutines is unspecified, so results
// agree only up to floating-point reordering.
package dispatch

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/cpmech/dynafem/spatial"
)

// AddFloat64 atomically adds delta to *addr and returns the new value.
func AddFloat64(addr *float64, delta float64) float64 {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(bits)
		newV := math.Float64frombits(old) + delta
		newBits := math.Float64bits(newV)
		if atomic.CompareAndSwapUint64(bits, old, newBits) {
			return newV
		}
	}
}

// AddVec3 atomically adds delta into *addr, one component at a time.
func AddVec3(addr *spatial.Vec3, delta spatial.Vec3) {
	AddFloat64(&addr.X, delta.X)
	AddFloat64(&addr.Y, delta.Y)
	AddFloat64(&addr.Z, delta.Z)
}

// SubVec3 atomically subtracts delta from *addr.
func SubVec3(addr *spatial.Vec3, delta spatial.Vec3) {
	AddVec3(addr, delta.Neg())
}

// AddVec3ToSlice atomically adds delta to f[i].
func AddVec3ToSlice(f []spatial.Vec3, i int, delta spatial.Vec3) {
	AddVec3(&f[i], delta)
}

// SubVec3FromSlice atomically subtracts delta from f[i].
func SubVec3FromSlice(f []spatial.Vec3, i int, delta spatial.Vec3) {
	SubVec3(&f[i], delta)
}

// AddWrenchToSlice atomically adds w to f[i] (torque and force halves).
func AddWrenchToSlice(f []spatial.Wrench, i int, w spatial.Wrench) {
	AddFloat64(&f[i].T.X, w.T.X)
	AddFloat64(&f[i].T.Y, w.T.Y)
	AddFloat64(&f[i].T.Z, w.T.Z)
	AddFloat64(&f[i].F.X, w.F.X)
	AddFloat64(&f[i].F.Y, w.F.Y)
	AddFloat64(&f[i].F.Z, w.F.Z)
}

// SubWrenchFromSlice atomically subtracts w from f[i].
func SubWrenchFromSlice(f []spatial.Wrench, i int, w spatial.Wrench) {
	AddWrenchToSlice(f, i, spatial.Wrench{T: w.T.Neg(), F: w.F.Neg()})
}
