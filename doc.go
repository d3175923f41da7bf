// Package lvarray is the storage substrate for numeric vector/matrix code:
// a reference-counted, copy-on-write array container plus lightweight
// contiguous and strided views that alias slices of it without copying.
//
// 🚀 What is lvarray?
//
//	A small, deterministic library that brings together:
//		• buffer/  — ref-counted, copy-on-write backing storage (explicit Share/Copy/EnsureUnique)
//		• view/    — contiguous & strided windows: index, slice, shrink, zero-fill
//		• backend/ — bulk numeric kernels (scale, axpy, dot, strided copy) over gonum BLAS
//		• matrix/  — a thin dense row-major consumer whose rows/cols/diagonal are views
//
// ✨ Why choose lvarray?
//
//   - Honest aliasing — any number of views may window one buffer; writes are
//     mutually visible until a value-semantic copy forks the storage
//   - Rock-solid contracts — every precondition is a sentinel error, never a panic
//   - Pure Go hot path — BLAS-shaped kernels via gonum, no cgo required
//
// Quick ASCII example:
//
//	buffer:  [10 20 30 40 50]
//	view(1,4)      → window [20 30 40]
//	 └ view(0,2,2) → strided window [20], stride 2
//
// Views never own or reallocate storage; shrinking (PopFront/PopBack) only
// moves the window. Copy-on-write belongs to the buffer, not the views.
//
// Dive into the examples/ directory for runnable walkthroughs.
//
//	go get github.com/katalvlaran/lvarray
package lvarray
