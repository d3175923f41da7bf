// SPDX-License-Identifier: MIT
// Package buffer — Ref handle & copy-on-write payload.
//
// Purpose:
//   - Keep ownership bookkeeping (share count, fork-pending flag) in one place.
//   - Guarantee safety at the public surface: constructors return errors, never panic.
//   - Make the copy-on-write fork an explicit method (EnsureUnique) so it can be
//     unit-tested instead of being an invisible side effect of pointer access.

package buffer

// payload is the shared heap allocation behind one or more Ref handles.
// refs counts live handles regardless of how they were duplicated.
type payload struct {
	data []float64 // element storage, len == logical length
	refs int       // live handle count; payload is abandoned when it hits 0
}

// Ref is a handle to a shared, resizable buffer of float64 elements.
//
// The zero Ref is valid and uninitialized: Len reports 0, CData and Data
// report nil, IsInitialized reports false.
//
// Plain struct assignment of a Ref creates an untracked alias and is
// discouraged outside this module; use Share (aliasing) or Copy
// (value-semantic, fork-on-write) so the share count stays honest.
type Ref struct {
	p       *payload
	pending bool // set by Copy: first mutable access must fork while shared
}

// New returns an initialized, zero-filled buffer of n elements.
// n must be >= 0, otherwise ErrNegativeSize.
// Complexity: O(n) zero-init.
func New(n int) (Ref, error) {
	if n < 0 {
		return Ref{}, ErrNegativeSize
	}

	return Ref{p: &payload{data: make([]float64, n), refs: 1}}, nil
}

// Of builds a buffer in place from the given elements (the arguments are
// copied; the caller's slice is never retained).
// Complexity: O(len(values)).
func Of(values ...float64) Ref {
	data := make([]float64, len(values))
	copy(data, values)

	return Ref{p: &payload{data: data, refs: 1}}
}

// Share returns an aliasing handle to the same payload and increments the
// share count. Writes through either handle remain visible through the
// other; Share never arms copy-on-write. Sharing an uninitialized Ref
// yields another uninitialized Ref.
// Complexity: O(1).
func (r Ref) Share() Ref {
	if r.p == nil {
		return Ref{}
	}
	r.p.refs++

	// An alias of a fork-pending handle inherits the pending flag: whichever
	// side writes first must still fork away from the value-semantic sibling.
	return Ref{p: r.p, pending: r.pending}
}

// Copy returns a value-semantic duplicate. Both the receiver and the result
// become fork-pending: the first of them to request mutable access clones
// the payload (see EnsureUnique), leaving the other untouched.
// Complexity: O(1); the actual clone is deferred to first write.
func (r *Ref) Copy() Ref {
	if r.p == nil {
		return Ref{}
	}
	r.p.refs++
	r.pending = true

	return Ref{p: r.p, pending: true}
}

// Release drops this handle's share of the payload. The last release
// abandons the data (the garbage collector reclaims it). Releasing an
// uninitialized Ref is a no-op. The handle is uninitialized afterwards.
// Complexity: O(1).
func (r *Ref) Release() {
	if r.p == nil {
		return
	}
	r.p.refs--
	if r.p.refs <= 0 {
		r.p.data = nil
	}
	r.p = nil
	r.pending = false
}

// Len returns the element count of the payload (0 when uninitialized).
// Complexity: O(1).
func (r Ref) Len() int {
	if r.p == nil {
		return 0
	}

	return len(r.p.data)
}

// IsInitialized reports whether the handle points at live storage.
// Complexity: O(1).
func (r Ref) IsInitialized() bool {
	return r.p != nil
}

// Shared reports whether more than one live handle points at the payload.
// Complexity: O(1).
func (r Ref) Shared() bool {
	return r.p != nil && r.p.refs > 1
}

// CData returns the read-only element slice, or nil when the handle is
// uninitialized. Callers must not write through the result.
// Complexity: O(1).
func (r Ref) CData() []float64 {
	if r.p == nil {
		return nil
	}

	return r.p.data
}

// Data returns the mutable element slice, forking the payload first when a
// copy-on-write fork is due (see EnsureUnique). Returns nil when the handle
// is uninitialized: requesting mutable access does not conjure storage.
// Complexity: O(1), O(n) when a fork fires.
func (r *Ref) Data() []float64 {
	if r.p == nil {
		return nil
	}
	r.EnsureUnique()

	return r.p.data
}

// EnsureUnique performs the copy-on-write fork when one is due and reports
// whether it fired.
//
// A fork is due only when this handle is fork-pending (created by Copy, or
// aliasing a Copy) AND the payload is still shared. Pure aliases created by
// Share never fork — mutual visibility of writes is their contract.
//
// After a fork the handle privately owns a clone with share count 1; the
// remaining handles keep the original payload unchanged.
// Complexity: O(1) when no fork is due, O(n) to clone otherwise.
func (r *Ref) EnsureUnique() bool {
	if r.p == nil || !r.pending {
		return false
	}
	if r.p.refs <= 1 {
		// Sole survivor: nothing to diverge from, disarm and write in place.
		r.pending = false
		return false
	}

	clone := make([]float64, len(r.p.data))
	copy(clone, r.p.data)
	r.p.refs--
	r.p = &payload{data: clone, refs: 1}
	r.pending = false

	return true
}

// Resize reallocates the payload to n elements. When preserve is true the
// first min(n, Len()) elements are carried over; otherwise the result is
// zero-filled. A shared, fork-pending handle forks before resizing so
// siblings keep their old extent. Resizing an uninitialized handle
// initializes it. n must be >= 0, otherwise ErrNegativeSize.
// Complexity: O(n).
func (r *Ref) Resize(n int, preserve bool) error {
	if n < 0 {
		return ErrNegativeSize
	}
	if r.p == nil {
		r.p = &payload{data: make([]float64, n), refs: 1}
		return nil
	}
	r.EnsureUnique()

	data := make([]float64, n)
	if preserve {
		copy(data, r.p.data)
	}
	r.p.data = data

	return nil
}
