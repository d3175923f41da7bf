// SPDX-License-Identifier: MIT
// Package matrix — Dense storage (row-major) over the view substrate.
//
// Purpose:
//   - Show the storage layer the way its consumers use it: one shared buffer,
//     many strided windows.
//   - Keep the explicit index formula i*cols + j in exactly one place (indexOf).
//   - Guarantee safety at the public surface: At/Set return errors, never panic.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvarray/buffer"
	"github.com/katalvlaran/lvarray/view"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values backed by a buffer.Ref.
// r and c are the PHYSICAL dimensions; trans flips the logical orientation
// without moving any data.
type Dense struct {
	ref   buffer.Ref // shared flat storage, length == r*c, row-major
	r, c  int        // physical rows and columns
	trans bool       // logical transpose flag
}

// New creates an r×c Dense matrix initialized to zeros.
// Fails with ErrBadShape unless rows > 0 and cols > 0.
// Complexity: O(r*c).
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	ref, err := buffer.New(rows * cols)
	if err != nil {
		return nil, err
	}

	return &Dense{ref: ref, r: rows, c: cols}, nil
}

// FromRows builds a Dense from row data. The input must be non-empty and
// rectangular (ErrBadShape otherwise); elements are copied.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	c := len(rows[0])
	flat := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrBadShape
		}
		flat = append(flat, row...)
	}

	return &Dense{ref: buffer.Of(flat...), r: len(rows), c: c}, nil
}

// Rows returns the logical row count. Complexity: O(1).
func (d *Dense) Rows() int {
	if d.trans {
		return d.c
	}

	return d.r
}

// Cols returns the logical column count. Complexity: O(1).
func (d *Dense) Cols() int {
	if d.trans {
		return d.r
	}

	return d.c
}

// T returns the logical transpose: the same storage with row and column
// roles swapped. The buffer gains a share; no element moves.
// Complexity: O(1).
func (d *Dense) T() *Dense {
	return &Dense{ref: d.ref.Share(), r: d.r, c: d.c, trans: !d.trans}
}

// indexOf computes the flat physical offset for logical (row, col) or
// returns ErrOutOfRange.
// Complexity: O(1).
func (d *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= d.Rows() || col < 0 || col >= d.Cols() {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if d.trans {
		row, col = col, row
	}

	return row*d.c + col, nil
}

// At retrieves the element at logical (row, col).
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	idx, err := d.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return d.ref.CData()[idx], nil
}

// Set assigns v at logical (row, col); the write goes through the buffer's
// copy-on-write contract.
// Complexity: O(1).
func (d *Dense) Set(row, col int, v float64) error {
	idx, err := d.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	d.ref.Data()[idx] = v

	return nil
}

// Row returns the i-th logical row as a view: contiguous for a plain matrix,
// strided (stride = physical cols) for a transposed one. Writes through the
// view land in the matrix.
// Complexity: O(1).
func (d *Dense) Row(i int) (view.Vector, error) {
	if i < 0 || i >= d.Rows() {
		return view.Vector{}, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	if d.trans {
		return view.NewStrided(d.ref, i, d.r, d.c) // physical column i
	}

	return view.New(d.ref, i*d.c, d.c)
}

// Col returns the j-th logical column as a view; the mirror of Row.
// Complexity: O(1).
func (d *Dense) Col(j int) (view.Vector, error) {
	if j < 0 || j >= d.Cols() {
		return view.Vector{}, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	if d.trans {
		return view.New(d.ref, j*d.c, d.c) // physical row j
	}

	return view.NewStrided(d.ref, j, d.r, d.c)
}

// Diag returns the main diagonal as a strided view (stride = cols+1);
// the diagonal is transpose-invariant.
// Complexity: O(1).
func (d *Dense) Diag() (view.Vector, error) {
	n := d.r
	if d.c < n {
		n = d.c
	}

	return view.NewStrided(d.ref, 0, n, d.c+1)
}

// Scale multiplies every element by alpha in place, through a full-extent
// contiguous view and the bulk backend.
// Complexity: O(r*c).
func (d *Dense) Scale(alpha float64) error {
	all, err := view.New(d.ref, 0, d.r*d.c)
	if err != nil {
		return err
	}
	defer all.Release()

	return all.Scale(alpha)
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (d *Dense) String() string {
	var s string
	for i := 0; i < d.Rows(); i++ {
		s += "["
		for j := 0; j < d.Cols(); j++ {
			x, _ := d.At(i, j)
			s += fmt.Sprintf("%g", x)
			if j < d.Cols()-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}

// MulVec computes y = d · x as a fresh contiguous vector, one strided dot
// product per logical row.
// Fails with ErrNilVector for a nil x and ErrDimensionMismatch when
// x.Len() != Cols().
// Complexity: O(r*c).
func (d *Dense) MulVec(x *view.Vector) (view.Vector, error) {
	if x == nil {
		return view.Vector{}, ErrNilVector
	}
	if x.Len() != d.Cols() {
		return view.Vector{}, ErrDimensionMismatch
	}
	y, err := view.Zeros(d.Rows())
	if err != nil {
		return view.Vector{}, err
	}
	for i := 0; i < d.Rows(); i++ {
		row, err := d.Row(i)
		if err != nil {
			return view.Vector{}, err
		}
		dot, err := row.Dot(x)
		row.Release()
		if err != nil {
			return view.Vector{}, err
		}
		if err = y.Set(i, dot); err != nil {
			return view.Vector{}, err
		}
	}

	return y, nil
}
