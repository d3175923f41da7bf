// SPDX-License-Identifier: MIT
// Package view — bulk numeric delegation.
//
// This is the deliberate boundary where raw-memory/stride knowledge crosses
// into the optimized numeric backend: every operation below hands a
// (length, factor, slice, first, stride) tuple to package backend instead of
// looping element-by-element in this layer. The glue is shared by contiguous
// and strided views alike — it only ever speaks in triples.

package view

import "github.com/katalvlaran/lvarray/backend"

// Scale multiplies every visible element by alpha in place.
// Complexity: O(Len()).
func (v *Vector) Scale(alpha float64) error {
	if v.length == 0 {
		return nil
	}
	data := v.ref.Data()
	if data == nil {
		return stateErrorf(opScale, ErrUninitialized)
	}
	backend.Scale(v.length, alpha, data, v.first, v.stride)

	return nil
}

// AddScaled accumulates alpha*x into the view (axpy): v[i] += alpha * x[i].
// Fails with ErrNilView for a nil operand and ErrLengthMismatch when the
// operand's length differs; the view is untouched on failure.
// Complexity: O(Len()).
func (v *Vector) AddScaled(alpha float64, x *Vector) error {
	if x == nil {
		return stateErrorf(opAddScaled, ErrNilView)
	}
	if x.length != v.length {
		return stateErrorf(opAddScaled, ErrLengthMismatch)
	}
	if v.length == 0 {
		return nil
	}
	src := x.ref.CData()
	dst := v.ref.Data()
	if src == nil || dst == nil {
		return stateErrorf(opAddScaled, ErrUninitialized)
	}
	backend.Axpy(v.length, alpha, src, x.first, x.stride, dst, v.first, v.stride)

	return nil
}

// Dot returns the inner product of the view with x.
// Fails with ErrNilView / ErrLengthMismatch / ErrUninitialized; a dot of two
// empty views is 0.
// Complexity: O(Len()).
func (v *Vector) Dot(x *Vector) (float64, error) {
	if x == nil {
		return 0, stateErrorf(opDot, ErrNilView)
	}
	if x.length != v.length {
		return 0, stateErrorf(opDot, ErrLengthMismatch)
	}
	if v.length == 0 {
		return 0, nil
	}
	a := v.ref.CData()
	b := x.ref.CData()
	if a == nil || b == nil {
		return 0, stateErrorf(opDot, ErrUninitialized)
	}

	return backend.Dot(v.length, a, v.first, v.stride, b, x.first, x.stride), nil
}

// CopyFrom copies src's visible elements into the view through the shared
// strided-copy kernel. With transpose set, the source is traversed in its
// logically transposed (reversed) element order — the 1-D analogue of
// copying out of a transposed operand.
//
// When src aliases the view's own buffer, a copy-on-write fork triggered by
// the mutable access still reads the pre-fork source bytes; overlapping
// same-buffer windows without a fork follow the backend's (BLAS) overlap
// rules and should be avoided.
// Complexity: O(Len()).
func (v *Vector) CopyFrom(src *Vector, transpose bool) error {
	if src == nil {
		return stateErrorf(opCopyFrom, ErrNilView)
	}
	if src.length != v.length {
		return stateErrorf(opCopyFrom, ErrLengthMismatch)
	}
	if v.length == 0 {
		return nil
	}
	s := src.ref.CData()
	d := v.ref.Data()
	if s == nil || d == nil {
		return stateErrorf(opCopyFrom, ErrUninitialized)
	}
	firstX, incX := src.first, src.stride
	if transpose {
		firstX = src.mapIndex(src.length - 1)
		incX = -src.stride
	}
	backend.Copy(v.length, s, firstX, incX, d, v.first, v.stride)

	return nil
}
