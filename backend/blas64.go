// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/pbnjay/memory"
	"gonum.org/v1/gonum/blas/blas64"
)

type blas struct {
}

func (impl blas) Name() string {
	return "blas64"
}

func (impl blas) Space() uint64 {
	return memory.TotalMemory()
}

// vec adapts a (slice, first, inc) window to the BLAS base-offset convention:
// Data[0] must be the lowest-addressed element of the window, so for a
// negative increment the base shifts back by (n-1)*inc.
func vec(n int, data []float64, first, inc int) blas64.Vector {
	base := first
	if inc < 0 {
		base += (n - 1) * inc
	}

	return blas64.Vector{N: n, Inc: inc, Data: data[base:]}
}

func (impl blas) Scale(n int, alpha float64, x []float64, firstX, incX int) {
	if n == 0 {
		return
	}
	// Scaling is order-independent; blas64.Scal rejects negative increments,
	// so walk a descending window from its lowest element instead.
	if incX < 0 {
		firstX += (n - 1) * incX
		incX = -incX
	}
	blas64.Scal(alpha, blas64.Vector{N: n, Inc: incX, Data: x[firstX:]})
}

func (impl blas) Axpy(n int, alpha float64, x []float64, firstX, incX int, y []float64, firstY, incY int) {
	if n == 0 {
		return
	}
	blas64.Axpy(alpha, vec(n, x, firstX, incX), vec(n, y, firstY, incY))
}

func (impl blas) Dot(n int, x []float64, firstX, incX int, y []float64, firstY, incY int) float64 {
	if n == 0 {
		return 0
	}

	return blas64.Dot(vec(n, x, firstX, incX), vec(n, y, firstY, incY))
}

func (impl blas) Copy(n int, x []float64, firstX, incX int, y []float64, firstY, incY int) {
	if n == 0 {
		return
	}
	blas64.Copy(vec(n, x, firstX, incX), vec(n, y, firstY, incY))
}
