// SPDX-License-Identifier: MIT
// Package view: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the view
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on caller-triggered conditions.

package view

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "view: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with the vectorErrorf/stateErrorf
// helpers — callers will still use errors.Is to match.
//
// The set is split between invalid-argument conditions (bad index, bad range,
// zero stride, nil operand) and invalid-state conditions (empty view, length
// mismatch, uninitialized buffer) so tests can assert the distinction.

var (
	// ErrZeroStride is returned when a strided view would be constructed with
	// stride 0, including view-of-view composition.
	ErrZeroStride = errors.New("view: zero stride")

	// ErrOutOfRange indicates that a logical index is outside [0, Len()).
	ErrOutOfRange = errors.New("view: index out of range")

	// ErrBadRange indicates an invalid half-open slice range, i.e. a call
	// violating 0 <= start <= end <= Len(), or a non-positive sub-view step.
	ErrBadRange = errors.New("view: invalid slice range")

	// ErrEmptyView is returned by Front/Back accessors and PopFront/PopBack
	// when the view has length 0.
	ErrEmptyView = errors.New("view: empty view")

	// ErrLengthMismatch is returned when an operation requires two equal
	// lengths and they differ: Resize to a different length, or a bulk
	// operation over operands of different lengths.
	ErrLengthMismatch = errors.New("view: length mismatch in vector operation")

	// ErrUninitialized indicates element or bulk access through a view whose
	// buffer reference holds no storage.
	ErrUninitialized = errors.New("view: uninitialized buffer")

	// ErrUnknownOp is returned by Apply for an operator outside the supported
	// set (OpAdd, OpSub, OpMul, OpDiv).
	ErrUnknownOp = errors.New("view: unknown compound operator")

	// ErrNilView indicates that a nil *Vector operand was passed to a binary
	// operation.
	ErrNilView = errors.New("view: nil view operand")
)
