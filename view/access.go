// SPDX-License-Identifier: MIT
// Package view — checked element access.
//
// All checks are preconditions evaluated before the corresponding effect: a
// violated precondition prevents the effect entirely, including the buffer's
// copy-on-write check (a failed Set/Apply never forks storage).

package view

// Op enumerates the compound-assignment operators accepted by Apply.
type Op uint8

const (
	// OpAdd applies current += value.
	OpAdd Op = iota + 1
	// OpSub applies current -= value.
	OpSub
	// OpMul applies current *= value.
	OpMul
	// OpDiv applies current /= value.
	OpDiv
)

// At returns the element at logical index i.
// Fails with ErrOutOfRange for i outside [0, Len()) and ErrUninitialized
// when the buffer holds no storage.
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.length {
		return 0, vectorErrorf(opAt, i, ErrOutOfRange)
	}
	data := v.ref.CData()
	if data == nil {
		return 0, vectorErrorf(opAt, i, ErrUninitialized)
	}

	return data[v.mapIndex(i)], nil
}

// Set overwrites the element at logical index i. Obtaining the mutable
// pointer may trigger the buffer's copy-on-write fork, after which this
// view privately owns the forked storage.
// Complexity: O(1), O(n) if a fork fires.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= v.length {
		return vectorErrorf(opSet, i, ErrOutOfRange)
	}
	if !v.ref.IsInitialized() {
		return vectorErrorf(opSet, i, ErrUninitialized)
	}
	v.ref.Data()[v.mapIndex(i)] = x

	return nil
}

// Apply performs compound assignment at logical index i: current op= x.
// The supported operators are OpAdd, OpSub, OpMul and OpDiv; anything else
// fails with ErrUnknownOp before any storage is touched. Plain overwrite
// stays with Set — the two share one checked call path into the buffer.
// Complexity: O(1), O(n) if a fork fires.
func (v *Vector) Apply(i int, op Op, x float64) error {
	if op < OpAdd || op > OpDiv {
		return vectorErrorf(opApply, i, ErrUnknownOp)
	}
	if i < 0 || i >= v.length {
		return vectorErrorf(opApply, i, ErrOutOfRange)
	}
	if !v.ref.IsInitialized() {
		return vectorErrorf(opApply, i, ErrUninitialized)
	}
	k := v.mapIndex(i)
	data := v.ref.Data()
	switch op {
	case OpAdd:
		data[k] += x
	case OpSub:
		data[k] -= x
	case OpMul:
		data[k] *= x
	case OpDiv:
		data[k] /= x
	}

	return nil
}

// Front returns the first visible element; ErrEmptyView when Len() == 0.
// Complexity: O(1).
func (v *Vector) Front() (float64, error) {
	if v.length == 0 {
		return 0, stateErrorf(opFront, ErrEmptyView)
	}

	return v.At(0)
}

// Back returns the last visible element; ErrEmptyView when Len() == 0.
// Complexity: O(1).
func (v *Vector) Back() (float64, error) {
	if v.length == 0 {
		return 0, stateErrorf(opBack, ErrEmptyView)
	}

	return v.At(v.length - 1)
}

// SetFront overwrites the first visible element; ErrEmptyView when empty.
// Complexity: O(1), O(n) if a fork fires.
func (v *Vector) SetFront(x float64) error {
	if v.length == 0 {
		return stateErrorf(opSetFront, ErrEmptyView)
	}

	return v.Set(0, x)
}

// SetBack overwrites the last visible element; ErrEmptyView when empty.
// Complexity: O(1), O(n) if a fork fires.
func (v *Vector) SetBack(x float64) error {
	if v.length == 0 {
		return stateErrorf(opSetBack, ErrEmptyView)
	}

	return v.Set(v.length-1, x)
}
