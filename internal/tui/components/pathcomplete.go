package components

import (
	"strings"
)

// DirLister lists the directory names under a path expression of the shell.
type DirLister interface {
	List(path string) ([]string, bool)
}

// PathCompleter provides tab-completion and cycling for the last word of a
// command line, matching directory names in the shell's tree.
// It tracks state across Tab presses to cycle through matches.
//
// Usage:
//
//	completer := NewPathCompleter(eng)
//
//	// On Tab press:
//	completed := completer.Next(input.Value())
//	input.SetValue(completed)
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	lister     DirLister
	matches    []string
	cycleIndex int
	lastInput  string
}

// NewPathCompleter creates a new path completer backed by lister.
func NewPathCompleter(lister DirLister) *PathCompleter {
	return &PathCompleter{lister: lister}
}

// Next returns the next completion for the given command line.
// On first call (or after input changes), it computes matches.
// On subsequent calls with the same base input, it cycles through matches.
func (c *PathCompleter) Next(line string) string {
	head, word := splitLastWord(line)
	parent, prefix := splitPath(word)
	base := head + parent

	// The keyword itself is never completed
	if strings.TrimSpace(head) == "" {
		return line
	}

	if base != c.lastInput || c.matches == nil {
		c.matches = c.findMatches(parent, prefix)
		c.cycleIndex = 0
		c.lastInput = base

		if len(c.matches) == 0 {
			return line
		}

		// First Tab: if there's a unique common prefix longer than input, complete it
		if len(c.matches) > 1 {
			common := longestCommonPrefix(c.matches)
			if len(common) > len(prefix) {
				return base + common
			}
		}

		return base + formatMatch(c.matches[c.cycleIndex])
	}

	if len(c.matches) == 0 {
		return line
	}

	c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
	return base + formatMatch(c.matches[c.cycleIndex])
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastInput = ""
}

func (c *PathCompleter) findMatches(parent, prefix string) []string {
	names, ok := c.lister.List(parent)
	if !ok {
		return []string{}
	}

	matches := []string{}
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// formatMatch appends a trailing separator so the next Tab descends.
func formatMatch(name string) string {
	return name + "/"
}

// splitLastWord splits a command line before its last word.
//
//	"cd /a/b"  → ("cd ", "/a/b")
//	"mkdir "   → ("mkdir ", "")
//	"cd"       → ("", "cd")
func splitLastWord(line string) (head, word string) {
	i := strings.LastIndexAny(line, " \t")
	if i < 0 {
		return "", line
	}
	return line[:i+1], line[i+1:]
}

// splitPath splits a path word into its parent (with trailing separator) and
// the name prefix being typed.
//
//	"/a/b" → ("/a/", "b")
//	"/a/"  → ("/a/", "")
//	"a"    → ("", "a")
//	"/"    → ("/", "")
func splitPath(word string) (parent, prefix string) {
	i := strings.LastIndex(word, "/")
	if i < 0 {
		return "", word
	}
	return word[:i+1], word[i+1:]
}

// longestCommonPrefix finds the longest common prefix among strings.
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	first := strs[0]
	for i := 0; i < len(first); i++ {
		ch := first[i]
		for _, s := range strs[1:] {
			if i >= len(s) || s[i] != ch {
				return first[:i]
			}
		}
	}
	return first
}
