// Package view implements contiguous and strided windows over the
// copy-on-write buffers of package buffer.
//
// The view package provides:
//
//   - Vector, a non-owning window described by a first offset, a length and a
//     non-zero stride (stride 1 ⇔ contiguous). Many Vectors may alias one
//     buffer simultaneously; sub-viewing shares storage, never copies it.
//   - Checked element access (At/Set/Apply) and range-style shrinking
//     (PopFront/PopBack) that move only the window, never the data.
//   - Half-open sub-views with exact multiplicative stride composition:
//     a step-s window of a stride-k view has stride k*s.
//   - Bulk arithmetic (Scale, AddScaled, Dot, CopyFrom) delegated to package
//     backend as raw (slice, first, stride) triples.
//
// Every precondition violation — zero stride, out-of-range index or slice,
// operating on an empty view, length mismatch on Resize — is reported as a
// sentinel error before any effect takes place; a failed call never leaves a
// partially-mutated view.
//
// Views are single-threaded by the buffer package's contract: concurrent
// reads of one buffer are fine, mutation requires external synchronization.
package view
