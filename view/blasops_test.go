// Package view_test: bulk numeric delegation — Scale/AddScaled/Dot/CopyFrom
// forwarded as (length, factor, pointer, stride) triples to package backend.
package view_test

import (
	"testing"

	"github.com/katalvlaran/lvarray/view"
	"github.com/stretchr/testify/require"
)

// TestScale verifies in-place scaling of contiguous and strided windows.
func TestScale(t *testing.T) {
	v := view.Of(1, 2, 3)
	require.NoError(t, v.Scale(10))
	require.Equal(t, []float64{10, 20, 30}, values(t, &v))

	base := view.Of(1, 2, 3, 4, 5, 6)
	s, err := base.ViewStrided(0, 6, 2) // logical [1 3 5]
	require.NoError(t, err)
	require.NoError(t, s.Scale(2))
	require.Equal(t, []float64{2, 2, 6, 4, 10, 6}, values(t, &base)) // in-between elements untouched
}

// TestAddScaled verifies axpy across windows of different strides.
func TestAddScaled(t *testing.T) {
	dst := view.Of(10, 20, 30)
	base := view.Of(1, 9, 2, 9, 3, 9)
	src, err := base.ViewStrided(0, 6, 2) // logical [1 2 3]
	require.NoError(t, err)

	require.NoError(t, dst.AddScaled(2, &src)) // dst += 2*src
	require.Equal(t, []float64{12, 24, 36}, values(t, &dst))
	require.Equal(t, []float64{1, 2, 3}, values(t, &src)) // source untouched
}

// TestAddScaledPreconditions covers nil and mismatched operands.
func TestAddScaledPreconditions(t *testing.T) {
	v := view.Of(1, 2)
	w := view.Of(1, 2, 3)

	require.ErrorIs(t, v.AddScaled(1, nil), view.ErrNilView)
	require.ErrorIs(t, v.AddScaled(1, &w), view.ErrLengthMismatch)
	require.Equal(t, []float64{1, 2}, values(t, &v)) // untouched on failure
}

// TestDot verifies the inner product incl. the strided and empty cases.
func TestDot(t *testing.T) {
	x := view.Of(1, 2, 3)
	y := view.Of(4, 5, 6)

	dot, err := x.Dot(&y)
	require.NoError(t, err)
	require.Equal(t, 32.0, dot)

	base := view.Of(4, 0, 5, 0, 6, 0)
	s, err := base.ViewStrided(0, 6, 2) // logical [4 5 6]
	require.NoError(t, err)
	dot, err = x.Dot(&s)
	require.NoError(t, err)
	require.Equal(t, 32.0, dot)

	a := view.Of()
	b := view.Of()
	dot, err = a.Dot(&b) // empty dot is the additive identity
	require.NoError(t, err)
	require.Zero(t, dot)

	_, err = x.Dot(nil)
	require.ErrorIs(t, err, view.ErrNilView)
	_, err = x.Dot(&a)
	require.ErrorIs(t, err, view.ErrLengthMismatch)
}

// TestCopyFrom verifies the shared strided-copy delegation.
func TestCopyFrom(t *testing.T) {
	src := view.Of(1, 2, 3)
	dst, err := view.Zeros(3)
	require.NoError(t, err)

	require.NoError(t, dst.CopyFrom(&src, false))
	require.Equal(t, []float64{1, 2, 3}, values(t, &dst))
}

// TestCopyFromStridedIntoStrided copies between two strided windows.
func TestCopyFromStridedIntoStrided(t *testing.T) {
	sbase := view.Of(1, 0, 2, 0, 3, 0)
	src, err := sbase.ViewStrided(0, 6, 2) // logical [1 2 3]
	require.NoError(t, err)

	dbase, err := view.Zeros(9)
	require.NoError(t, err)
	dst, err := dbase.ViewStrided(0, 9, 3) // logical slots at 0,3,6
	require.NoError(t, err)

	require.NoError(t, dst.CopyFrom(&src, false))
	require.Equal(t, []float64{1, 0, 0, 2, 0, 0, 3, 0, 0}, values(t, &dbase))
}

// TestCopyFromTransposed verifies the transposed-traversal flag: the source
// is read in reversed logical order.
func TestCopyFromTransposed(t *testing.T) {
	src := view.Of(1, 2, 3)
	dst, err := view.Zeros(3)
	require.NoError(t, err)

	require.NoError(t, dst.CopyFrom(&src, true))
	require.Equal(t, []float64{3, 2, 1}, values(t, &dst))
}

// TestCopyFromPreconditions covers nil and mismatched operands.
func TestCopyFromPreconditions(t *testing.T) {
	v := view.Of(1, 2)
	w := view.Of(1, 2, 3)

	require.ErrorIs(t, v.CopyFrom(nil, false), view.ErrNilView)
	require.ErrorIs(t, v.CopyFrom(&w, false), view.ErrLengthMismatch)
	require.Equal(t, []float64{1, 2}, values(t, &v))
}

// TestBulkOpsOnUninitialized ensures bulk paths report ErrUninitialized for
// zero views of non-zero claimed length (constructed only via the zero value,
// so exercised through Scale's empty fast path here).
func TestBulkOpsOnUninitialized(t *testing.T) {
	var v view.Vector
	require.NoError(t, v.Scale(2)) // empty window: nothing to do, no error
}
