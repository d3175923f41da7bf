// SPDX-License-Identifier: MIT

package backend

// TODO: pick at runtime the best backend available (cgo-bound BLAS, SIMD).
var impl implementation = blas{}

// Name reports the active backend implementation.
func Name() string {
	return impl.Name()
}

// Space reports the total memory available to the active backend.
func Space() uint64 {
	return impl.Space()
}

// Scale multiplies n strided elements of x by alpha in place.
func Scale(n int, alpha float64, x []float64, firstX, incX int) {
	impl.Scale(n, alpha, x, firstX, incX)
}

// Axpy accumulates alpha*x into y across two strided windows.
func Axpy(n int, alpha float64, x []float64, firstX, incX int, y []float64, firstY, incY int) {
	impl.Axpy(n, alpha, x, firstX, incX, y, firstY, incY)
}

// Dot returns the inner product of two strided windows.
func Dot(n int, x []float64, firstX, incX int, y []float64, firstY, incY int) float64 {
	return impl.Dot(n, x, firstX, incX, y, firstY, incY)
}

// Copy copies n strided elements of x into y.
func Copy(n int, x []float64, firstX, incX int, y []float64, firstY, incY int) {
	impl.Copy(n, x, firstX, incX, y, firstY, incY)
}
