// SPDX-License-Identifier: MIT
// Package buffer: sentinel error set.
// All constructors and mutators MUST return these sentinels and tests MUST
// check them via errors.Is. No method panics on caller-triggered conditions.

package buffer

import "errors"

var (
	// ErrNegativeSize is returned when a constructor or Resize receives a
	// negative element count.
	ErrNegativeSize = errors.New("buffer: negative size")
)
