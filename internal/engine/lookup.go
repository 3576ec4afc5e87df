package engine

import (
	"github.com/vvka-141/vfsh/internal/tree"
)

// Lookup resolves a path expression without changing any state.
// An empty path or one made only of separators names the working directory
// or the root respectively. Returns nil when the path does not resolve.
func (e *Engine) Lookup(path string) *tree.Node {
	switch {
	case path == "":
		return e.current
	case isOnlySeparators(path):
		return e.Root()
	}

	form := ClassifyPath(path)
	if form == FormSimple {
		return e.current.Child(path)
	}
	return resolve(e.anchor(form), SplitPath(path))
}

// List returns the child names of the directory a path expression names.
// The boolean is false when the path does not resolve.
func (e *Engine) List(path string) ([]string, bool) {
	node := e.Lookup(path)
	if node == nil {
		return nil, false
	}
	return node.Names(), true
}
