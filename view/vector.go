// SPDX-License-Identifier: MIT
// Package view — Vector type, constructors & window geometry.
//
// Purpose:
//   - Hold the (buffer reference, first, length, stride) quadruple that maps a
//     logical window onto physical storage.
//   - Validate geometry once, at construction: after that the hot-path index
//     mapper stays branch-free and bounds checks reduce to a length compare.
//
// Invariants (established here, preserved by every method):
//   - stride != 0.
//   - length >= 0, and every mapped offset first + i*stride for i in
//     [0, length) lies inside the live buffer.

package view

import (
	"fmt"

	"github.com/katalvlaran/lvarray/buffer"
)

// operation name constants for unified error wrapping (no magic strings).
const (
	opNew         = "New"
	opNewStrided  = "NewStrided"
	opZeros       = "Zeros"
	opAt          = "At"
	opSet         = "Set"
	opApply       = "Apply"
	opFront       = "Front"
	opBack        = "Back"
	opSetFront    = "SetFront"
	opSetBack     = "SetBack"
	opView        = "View"
	opViewStrided = "ViewStrided"
	opPopFront    = "PopFront"
	opPopBack     = "PopBack"
	opResize      = "Resize"
	opScale       = "Scale"
	opAddScaled   = "AddScaled"
	opDot         = "Dot"
	opCopyFrom    = "CopyFrom"
	opForceShare  = "ForceRefSharing"
)

// vectorErrorf wraps a sentinel with method context and the offending index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// rangeErrorf wraps a sentinel with method context and the offending range.
func rangeErrorf(method string, start, end int, err error) error {
	return fmt.Errorf("Vector.%s(%d,%d): %w", method, start, end, err)
}

// stateErrorf wraps a sentinel with method context only; used for empty-view
// and similar invalid-state failures so diagnostics name the failing call.
func stateErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// Vector is a non-owning, reference-sharing window over a buffer.Ref.
//
// A Vector never forks, grows or reallocates storage on its own; it reads and
// writes strictly through the buffer's established copy-on-write contract.
// Sub-viewing and Clone register their alias via buffer.Ref.Share so the
// buffer's share count stays honest; plain struct assignment of a Vector
// creates an untracked alias and is discouraged outside this module.
type Vector struct {
	ref    buffer.Ref // shared backing storage handle
	first  int        // physical offset of logical element 0
	length int        // visible logical elements; shrinks, never grows
	stride int        // physical delta between logical neighbors; never 0
}

// New wraps an existing buffer as a contiguous window of the given geometry.
// The buffer's share count is incremented. Fails with ErrBadRange on a
// negative length and ErrOutOfRange when the window exceeds the buffer.
// Complexity: O(1).
func New(ref buffer.Ref, first, length int) (Vector, error) {
	return NewStrided(ref, first, length, 1)
}

// NewStrided wraps an existing buffer as a strided window.
// Preconditions: stride != 0 (ErrZeroStride), length >= 0 (ErrBadRange), and
// every mapped offset first + i*stride inside the buffer (ErrOutOfRange).
// An empty window only requires 0 <= first <= buffer length.
// Complexity: O(1).
func NewStrided(ref buffer.Ref, first, length, stride int) (Vector, error) {
	if stride == 0 {
		return Vector{}, stateErrorf(opNewStrided, ErrZeroStride)
	}
	if length < 0 {
		return Vector{}, vectorErrorf(opNewStrided, length, ErrBadRange)
	}
	n := ref.Len()
	if length == 0 {
		if first < 0 || first > n {
			return Vector{}, vectorErrorf(opNewStrided, first, ErrOutOfRange)
		}
	} else {
		// First and last mapped offsets bound every intermediate one.
		last := first + (length-1)*stride
		if first < 0 || first >= n || last < 0 || last >= n {
			return Vector{}, vectorErrorf(opNewStrided, first, ErrOutOfRange)
		}
	}

	return Vector{ref: ref.Share(), first: first, length: length, stride: stride}, nil
}

// Of builds a standalone contiguous vector by forwarding the arguments into a
// fresh buffer and auto-deriving the full-range window over it.
// Complexity: O(len(values)).
func Of(values ...float64) Vector {
	ref := buffer.Of(values...)

	return Vector{ref: ref, first: 0, length: ref.Len(), stride: 1}
}

// Zeros builds a standalone zero-filled vector of n elements.
// Fails with buffer.ErrNegativeSize for n < 0.
// Complexity: O(n).
func Zeros(n int) (Vector, error) {
	ref, err := buffer.New(n)
	if err != nil {
		return Vector{}, stateErrorf(opZeros, err)
	}

	return Vector{ref: ref, first: 0, length: n, stride: 1}, nil
}

// mapIndex converts logical index i into a physical buffer offset.
// No bounds check is performed here: callers validate i < length first,
// keeping the hot-path mapping branch-free.
func (v *Vector) mapIndex(i int) int {
	return v.first + i*v.stride
}

// Len returns the number of logical elements currently visible.
func (v *Vector) Len() int { return v.length }

// Empty reports whether the view currently exposes no elements.
func (v *Vector) Empty() bool { return v.length == 0 }

// Stride returns the physical delta between consecutive logical elements.
func (v *Vector) Stride() int { return v.stride }

// First returns the physical offset of logical element 0.
func (v *Vector) First() int { return v.first }

// Contiguous reports whether logical neighbors are physically adjacent.
func (v *Vector) Contiguous() bool { return v.stride == 1 }

// Clone returns an explicit alias of the view: same geometry, same buffer,
// share count incremented. Writes through either remain mutually visible.
// Complexity: O(1).
func (v *Vector) Clone() Vector {
	return Vector{ref: v.ref.Share(), first: v.first, length: v.length, stride: v.stride}
}

// ForceRefSharing re-seats the view onto src's buffer and geometry,
// reference-semantically: src's buffer gains a share, the previously held
// share is released, and no element data moves. This is an explicit aliasing
// escape hatch for proxy objects; prefer View/Slice/Clone elsewhere.
// Complexity: O(1).
func (v *Vector) ForceRefSharing(src *Vector) error {
	if src == nil {
		return stateErrorf(opForceShare, ErrNilView)
	}
	adopted := src.ref.Share()
	v.ref.Release()
	v.ref = adopted
	v.first, v.length, v.stride = src.first, src.length, src.stride

	return nil
}

// Release drops the view's share of its buffer and empties the window.
// Releasing again is a no-op. Optional under GC,
// but keeps the buffer's share count meaningful for copy-on-write tests.
// Complexity: O(1).
func (v *Vector) Release() {
	v.ref.Release()
	v.first, v.length = 0, 0
	v.stride = 1
}

// Data returns the mutable backing slice starting at the view's first
// element; requesting it counts as write intent and runs the buffer's
// copy-on-write check first. Returns nil when the buffer is uninitialized.
// Complexity: O(1), O(n) if a fork fires.
func (v *Vector) Data() []float64 {
	d := v.ref.Data()
	if d == nil {
		return nil
	}

	return d[v.first:]
}

// CData returns the read-only backing slice starting at the view's first
// element, or nil when the buffer is uninitialized (null-safe read path:
// no offset is computed into absent storage).
// Complexity: O(1).
func (v *Vector) CData() []float64 {
	d := v.ref.CData()
	if d == nil {
		return nil
	}

	return d[v.first:]
}
