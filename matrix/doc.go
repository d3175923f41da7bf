// Package matrix offers a thin dense, row-major matrix built directly on the
// lvarray storage substrate.
//
// The matrix package provides:
//
//   - Dense, whose storage is one buffer.Ref and whose rows, columns and
//     diagonal are view.Vector windows — no copies, writes through a row or
//     column view land in the matrix.
//   - T(), a zero-cost logical transpose: the same buffer with the row and
//     column view roles swapped (the runtime form of the "transposed type"
//     association the view layer promises to higher layers).
//   - Scale and MulVec, both routed through the strided views and therefore
//     through the bulk numeric backend.
//
// Matrices are best for dense or small shapes where O(r*c) memory is
// acceptable. See the examples in this package and in view for usage.
package matrix
