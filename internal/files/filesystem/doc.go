// Package filesystem provides the immutable virtual filesystem the shell
// reads from, and the syntactic path resolver used to address it.
//
// Key types:
//   - Tree: built once from an ordered list of Entry values, never mutated
//   - Node: a file (name, content) or a directory (name, ordered children)
//   - Path: a normalized, root-relative list of segments
//
// Resolution and lookup are separate steps. Resolve never checks existence;
// callers look the result up with Tree.Lookup or Tree.List and report
// termfolio.ErrNotFound or termfolio.ErrWrongType themselves.
package filesystem
