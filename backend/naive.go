// SPDX-License-Identifier: MIT

package backend

import (
	"runtime"

	"github.com/pbnjay/memory"
)

type naive struct {
}

func (impl naive) Name() string {
	return "naive"
}

func (impl naive) Space() uint64 {
	return memory.TotalMemory()
}

func (impl naive) Used() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Sys
}

func (impl naive) Scale(n int, alpha float64, x []float64, firstX, incX int) {
	ix := firstX
	for i := 0; i < n; i++ {
		x[ix] *= alpha
		ix += incX
	}
}

func (impl naive) Axpy(n int, alpha float64, x []float64, firstX, incX int, y []float64, firstY, incY int) {
	ix, iy := firstX, firstY
	for i := 0; i < n; i++ {
		y[iy] += alpha * x[ix]
		ix += incX
		iy += incY
	}
}

func (impl naive) Dot(n int, x []float64, firstX, incX int, y []float64, firstY, incY int) float64 {
	dot := 0.0
	ix, iy := firstX, firstY
	for i := 0; i < n; i++ {
		dot += x[ix] * y[iy]
		ix += incX
		iy += incY
	}

	return dot
}

func (impl naive) Copy(n int, x []float64, firstX, incX int, y []float64, firstY, incY int) {
	ix, iy := firstX, firstY
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		ix += incX
		iy += incY
	}
}
