// SPDX-License-Identifier: MIT
// Package view — sub-viewing (half-open logical ranges).
//
// The crux of view-of-view correctness lives here: a stepped sub-view of a
// strided view composes strides MULTIPLICATIVELY. Failing to multiply would
// silently read the wrong elements, so both the implementation and the tests
// pin the rule down exactly.

package view

// View returns a sub-view of the same kind over the half-open logical range
// [start, end): a contiguous view stays contiguous, a strided view keeps its
// stride; only the window moves. The buffer gains a share.
// Precondition: 0 <= start <= end <= Len(), else ErrBadRange.
// Complexity: O(1).
func (v *Vector) View(start, end int) (Vector, error) {
	if start < 0 || start > end || end > v.length {
		return Vector{}, rangeErrorf(opView, start, end, ErrBadRange)
	}

	return Vector{
		ref:    v.ref.Share(),
		first:  v.first + start*v.stride,
		length: end - start,
		stride: v.stride,
	}, nil
}

// ViewStrided returns a strided sub-view selecting every step-th element of
// the half-open logical range [start, end), regardless of the source kind.
//
// The result's length is the ceiling division of (end-start) by step, and
// its stride composes multiplicatively with the source stride:
//
//	length' = ⌈(end-start)/step⌉
//	stride' = Stride() * step
//
// Preconditions: 0 <= start <= end <= Len() and step >= 1, else ErrBadRange;
// step == 0 is ErrZeroStride.
// Complexity: O(1).
func (v *Vector) ViewStrided(start, end, step int) (Vector, error) {
	if step == 0 {
		return Vector{}, rangeErrorf(opViewStrided, start, end, ErrZeroStride)
	}
	if step < 0 || start < 0 || start > end || end > v.length {
		return Vector{}, rangeErrorf(opViewStrided, start, end, ErrBadRange)
	}
	span := end - start
	length := span / step
	if span%step != 0 {
		length++
	}

	return Vector{
		ref:    v.ref.Share(),
		first:  v.first + start*v.stride,
		length: length,
		stride: v.stride * step,
	}, nil
}

// Slice is an alias for View — identical contract, different name for
// call-site readability.
func (v *Vector) Slice(start, end int) (Vector, error) {
	return v.View(start, end)
}

// SliceStrided is an alias for ViewStrided.
func (v *Vector) SliceStrided(start, end, step int) (Vector, error) {
	return v.ViewStrided(start, end, step)
}
