// Package engine interprets shell command lines against a directory tree.
//
// An Engine holds the session's working directory and nothing else: the root
// is always recovered by walking up from it, so replacing the tree on
// "session clear" needs no extra bookkeeping.
//
// Supported keywords (case-insensitive): pwd, ls, mkdir, cd, rm, session.
// Path arguments come in three forms:
//   - root-anchored: starts with "/" ("/a/b")
//   - deep relative: contains "/" but does not start with it ("a/b")
//   - simple: a single name ("a")
//
// Empty segments produced by repeated, leading or trailing separators are
// discarded before resolution.
//
// Execute never panics on user input and never writes output; every outcome
// is returned as a vfsh.Result.
package engine
