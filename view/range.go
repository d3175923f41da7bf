// SPDX-License-Identifier: MIT
// Package view — range-style shrinking & Resize.
//
// Shrinking moves only the window; underlying data is never touched. Resize
// has no authority to reallocate shared storage, so the only legal call is a
// same-length "resize", which re-seeds the window with zeros.

package view

import "github.com/katalvlaran/lvarray/backend"

// PopFront excludes the first visible element: the window's first offset
// advances by one stride and the length drops by one.
// Fails with ErrEmptyView on an empty view; no field changes on failure.
// Complexity: O(1).
func (v *Vector) PopFront() error {
	if v.length == 0 {
		return stateErrorf(opPopFront, ErrEmptyView)
	}
	v.first += v.stride
	v.length--

	return nil
}

// PopBack excludes the last visible element: only the length drops; the
// first offset stays put, since the highest mapped index is simply cut off.
// Fails with ErrEmptyView on an empty view; no field changes on failure.
// Complexity: O(1).
func (v *Vector) PopBack() error {
	if v.length == 0 {
		return stateErrorf(opPopBack, ErrEmptyView)
	}
	v.length--

	return nil
}

// Resize re-seeds the view against an externally validated size: n must
// equal Len() exactly (a view cannot grow or shrink its backing storage),
// otherwise ErrLengthMismatch and the view is left unchanged. On success
// the entire window is zero-filled through the backend's scale-by-zero
// kernel at the view's data pointer and stride.
// Complexity: O(n).
func (v *Vector) Resize(n int) error {
	if n != v.length {
		return vectorErrorf(opResize, n, ErrLengthMismatch)
	}
	if n == 0 {
		return nil
	}
	data := v.ref.Data()
	if data == nil {
		return vectorErrorf(opResize, n, ErrUninitialized)
	}
	backend.Scale(n, 0, data, v.first, v.stride)

	return nil
}
