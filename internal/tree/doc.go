// Package tree provides the in-memory directory tree the shell operates on.
//
// A Node owns its children through an ordered slice; the parent link is a
// plain back-reference. Structural mutation happens only through
// AttachChild and DetachChild, which keep both links consistent.
// Walks toward the root are iterative.
//
// Nodes are not safe for concurrent use. A tree belongs to a single session.
package tree
