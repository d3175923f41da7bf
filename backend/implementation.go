// SPDX-License-Identifier: MIT

package backend

// each backend must implement these kernels.
type implementation interface {
	Name() string
	Space() uint64

	// Scale: x[i] *= alpha over the strided window.
	Scale(n int, alpha float64, x []float64, firstX, incX int)

	// Axpy: y[i] += alpha * x[i] over two strided windows of equal length.
	Axpy(n int, alpha float64, x []float64, firstX, incX int, y []float64, firstY, incY int)

	// Dot: sum of x[i]*y[i] over two strided windows of equal length.
	Dot(n int, x []float64, firstX, incX int, y []float64, firstY, incY int) float64

	// Copy: y[i] = x[i] over two strided windows of equal length.
	Copy(n int, x []float64, firstX, incX int, y []float64, firstY, incY int)
}
