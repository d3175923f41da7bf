/*
Package backend provides an abstraction layer to the available bulk numeric
kernels, currently implemented:

  - naive (plain Go loops, reference semantics and benchmark baseline)
  - blas64 (gonum blas64 interface)

Every kernel operates directly on a raw (slice, first, stride) triple: n
elements located at first, first+inc, ..., first+(n-1)*inc. Strides may be
negative; they must never be zero. Bounds are the caller's responsibility —
the view layer validates windows at construction time, so kernels stay
branch-free.
*/
package backend
