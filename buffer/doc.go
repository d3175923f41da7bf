// Package buffer provides the reference-counted, copy-on-write backing
// storage used by the view layer.
//
// The package exposes a single handle type, Ref, pointing at a shared heap
// payload of float64 elements. Two duplication modes exist and they are NOT
// interchangeable:
//
//   - Share — aliasing duplication. The new handle windows the same payload;
//     writes through either handle are visible through the other. This is how
//     views over one buffer relate to each other.
//   - Copy — value-semantic duplication. Both handles become fork-pending:
//     the first one to request mutable access clones the payload and keeps
//     the clone privately, while the other handle retains the original bytes.
//     This preserves the value-semantics illusion for owning containers.
//
// The fork itself is an explicit, testable method (EnsureUnique), not a
// hidden side effect: Data calls it before handing out a mutable slice.
//
// Single-threaded by contract: the share count is a plain int and no method
// locks. Handles that share one payload must not be used from multiple
// goroutines without external synchronization.
package buffer
