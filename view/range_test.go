// Package view_test: range-style shrinking and the same-length Resize.
package view_test

import (
	"testing"

	"github.com/katalvlaran/lvarray/buffer"
	"github.com/katalvlaran/lvarray/view"
	"github.com/stretchr/testify/require"
)

// TestPopFrontShiftsWindow verifies the shift property: after k PopFronts,
// logical index i maps to what was previously logical index i+k.
func TestPopFrontShiftsWindow(t *testing.T) {
	v := view.Of(0, 1, 2, 3, 4, 5)
	k := 3

	for j := 0; j < k; j++ {
		require.NoError(t, v.PopFront())
	}
	require.Equal(t, 6-k, v.Len()) // length dropped by exactly k

	for i := 0; i < v.Len(); i++ {
		x, err := v.At(i)
		require.NoError(t, err)
		require.Equal(t, float64(i+k), x) // old logical i+k
	}
}

// TestPopsOnStridedView walks the spec'd strided scenario over [1..6]:
// stride 2 window [1 3 5], PopBack → [1 3], PopFront → [3] at offset 2.
func TestPopsOnStridedView(t *testing.T) {
	ref := buffer.Of(1, 2, 3, 4, 5, 6)
	v, err := view.NewStrided(ref, 0, 3, 2) // logical [1 3 5]
	require.NoError(t, err)

	require.NoError(t, v.PopBack()) // drop the 5
	require.Equal(t, 2, v.Len())
	require.Equal(t, 0, v.First()) // back-shrink never moves the start
	require.Equal(t, []float64{1, 3}, values(t, &v))

	require.NoError(t, v.PopFront()) // drop the 1
	require.Equal(t, 1, v.Len())
	require.Equal(t, 2, v.First()) // front advanced by one stride
	require.Equal(t, []float64{3}, values(t, &v))
}

// TestPopsOnEmptyView ensures both pops fail on an empty view without
// touching any field.
func TestPopsOnEmptyView(t *testing.T) {
	base := view.Of(7, 8, 9)
	v, err := base.ViewStrided(1, 1, 2) // empty strided window
	require.NoError(t, err)

	require.ErrorIs(t, v.PopFront(), view.ErrEmptyView)
	require.ErrorIs(t, v.PopBack(), view.ErrEmptyView)

	require.Equal(t, 0, v.Len()) // untouched
	require.Equal(t, 1, v.First())
	require.Equal(t, 2, v.Stride())
}

// TestPopErrorsNameOperation ensures diagnostics carry the failing call.
func TestPopErrorsNameOperation(t *testing.T) {
	var v view.Vector

	require.ErrorContains(t, v.PopFront(), "PopFront")
	require.ErrorContains(t, v.PopBack(), "PopBack")
	require.ErrorContains(t, v.SetFront(0), "SetFront")
}

// TestResizeSameLengthZeroFills verifies the only legal resize: same length,
// full zero-fill through the backend's scale-by-zero kernel.
func TestResizeSameLengthZeroFills(t *testing.T) {
	v := view.Of(1, 2, 3, 4)

	require.NoError(t, v.Resize(4))
	require.Equal(t, []float64{0, 0, 0, 0}, values(t, &v))
}

// TestResizeZeroFillsOnlyTheWindow ensures a strided window zero-fills its
// own elements and nothing in between.
func TestResizeZeroFillsOnlyTheWindow(t *testing.T) {
	base := view.Of(1, 2, 3, 4, 5, 6)
	v, err := base.ViewStrided(0, 6, 2) // logical [1 3 5]
	require.NoError(t, err)

	require.NoError(t, v.Resize(3))
	require.Equal(t, []float64{0, 2, 0, 4, 0, 6}, values(t, &base))
}

// TestResizeLengthMismatch ensures any other length is rejected and the view
// is left unchanged — a view has no authority over shared storage.
func TestResizeLengthMismatch(t *testing.T) {
	v := view.Of(1, 2, 3)

	require.ErrorIs(t, v.Resize(2), view.ErrLengthMismatch)
	require.ErrorIs(t, v.Resize(4), view.ErrLengthMismatch)
	require.Equal(t, []float64{1, 2, 3}, values(t, &v)) // untouched
}

// TestResizeEmptyView allows the degenerate 0 → 0 resize.
func TestResizeEmptyView(t *testing.T) {
	base := view.Of(1)
	v, err := base.View(0, 0)
	require.NoError(t, err)

	require.NoError(t, v.Resize(0))
	require.ErrorIs(t, v.Resize(1), view.ErrLengthMismatch)
}
