package engine

import (
	"strings"

	"github.com/vvka-141/vfsh/internal/tree"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// PathForm classifies a path argument.
type PathForm int

const (
	// FormSimple is a single name relative to the working directory.
	FormSimple PathForm = iota
	// FormRootAnchored starts at the tree root.
	FormRootAnchored
	// FormDeepRelative has several segments starting at the working directory.
	FormDeepRelative
)

func (f PathForm) String() string {
	switch f {
	case FormRootAnchored:
		return "root-anchored"
	case FormDeepRelative:
		return "deep-relative"
	default:
		return "simple"
	}
}

// ClassifyPath determines the form of a raw path token.
func ClassifyPath(raw string) PathForm {
	switch {
	case strings.HasPrefix(raw, vfsh.PathSeparator):
		return FormRootAnchored
	case strings.Contains(raw, vfsh.PathSeparator):
		return FormDeepRelative
	default:
		return FormSimple
	}
}

// SplitPath splits a path on the separator and drops empty segments.
func SplitPath(raw string) []string {
	parts := strings.Split(strings.TrimSpace(raw), vfsh.PathSeparator)
	segments := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// isOnlySeparators reports whether raw is one or more separators and nothing else.
func isOnlySeparators(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw != "" && strings.Trim(raw, vfsh.PathSeparator) == ""
}

// anchor returns the node a path of the given form starts from.
func (e *Engine) anchor(form PathForm) *tree.Node {
	if form == FormRootAnchored {
		return e.Root()
	}
	return e.current
}

// resolve walks segments from start. It returns nil unless every segment
// names an existing child of the previous node. An empty segment list never
// resolves.
func resolve(start *tree.Node, segments []string) *tree.Node {
	if len(segments) == 0 {
		return nil
	}
	node := start
	for _, name := range segments {
		node = node.Child(name)
		if node == nil {
			return nil
		}
	}
	return node
}
