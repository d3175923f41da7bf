// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on caller-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid: non-positive
	// dimensions, or ragged/empty row data in FromRows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulVec where x.Len() != Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilVector indicates that a nil *view.Vector operand was passed.
	ErrNilVector = errors.New("matrix: nil vector operand")
)
