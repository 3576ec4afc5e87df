package components

import (
	"testing"
)

type fakeLister map[string][]string

func (f fakeLister) List(path string) ([]string, bool) {
	names, ok := f[path]
	return names, ok
}

func TestPathCompleter_SingleMatch(t *testing.T) {
	c := NewPathCompleter(fakeLister{"": {"migrations", "scripts"}})

	result := c.Next("cd mig")
	if result != "cd migrations/" {
		t.Errorf("expected %q, got %q", "cd migrations/", result)
	}
}

func TestPathCompleter_NestedPath(t *testing.T) {
	c := NewPathCompleter(fakeLister{"/usr/": {"local", "share"}})

	result := c.Next("cd /usr/lo")
	if result != "cd /usr/local/" {
		t.Errorf("expected %q, got %q", "cd /usr/local/", result)
	}
}

func TestPathCompleter_CommonPrefixFirst(t *testing.T) {
	c := NewPathCompleter(fakeLister{"": {"project-a", "project-b"}})

	result := c.Next("rm pro")
	if result != "rm project-" {
		t.Errorf("expected common prefix completion, got %q", result)
	}
}

func TestPathCompleter_CyclesThroughMatches(t *testing.T) {
	c := NewPathCompleter(fakeLister{"/": {"alpha", "beta", "gamma"}})

	r1 := c.Next("cd /")
	r2 := c.Next("cd /")
	r3 := c.Next("cd /")
	r4 := c.Next("cd /")

	want := []string{"cd /alpha/", "cd /beta/", "cd /gamma/", "cd /alpha/"}
	for i, got := range []string{r1, r2, r3, r4} {
		if got != want[i] {
			t.Errorf("tab %d: expected %q, got %q", i+1, want[i], got)
		}
	}
}

func TestPathCompleter_ResetStopsCycling(t *testing.T) {
	c := NewPathCompleter(fakeLister{"/": {"alpha", "beta"}})

	r1 := c.Next("cd /")
	c.Reset()
	r2 := c.Next("cd /")

	if r1 != r2 {
		t.Errorf("expected same result after reset, got: %s vs %s", r1, r2)
	}
}

func TestPathCompleter_NoMatchesLeavesInput(t *testing.T) {
	c := NewPathCompleter(fakeLister{"": {"alpha"}})

	for _, line := range []string{"cd zzz", "cd /missing/x", "cd"} {
		if result := c.Next(line); result != line {
			t.Errorf("expected unchanged input %q, got %q", line, result)
		}
		c.Reset()
	}
}

func TestPathCompleter_CaseSensitive(t *testing.T) {
	c := NewPathCompleter(fakeLister{"": {"Docs"}})

	if result := c.Next("cd do"); result != "cd do" {
		t.Errorf("expected no completion for different case, got %q", result)
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		input          string
		expectedParent string
		expectedPrefix string
	}{
		{"", "", ""},
		{"my", "", "my"},
		{"/", "/", ""},
		{"/a/b", "/a/", "b"},
		{"a/", "a/", ""},
	}

	for _, tt := range tests {
		parent, prefix := splitPath(tt.input)
		if parent != tt.expectedParent || prefix != tt.expectedPrefix {
			t.Errorf("splitPath(%q) = (%q, %q), want (%q, %q)",
				tt.input, parent, prefix, tt.expectedParent, tt.expectedPrefix)
		}
	}
}

func TestSplitLastWord(t *testing.T) {
	tests := []struct {
		input string
		head  string
		word  string
	}{
		{"cd /a/b", "cd ", "/a/b"},
		{"mkdir a ", "mkdir a ", ""},
		{"cd", "", "cd"},
	}

	for _, tt := range tests {
		head, word := splitLastWord(tt.input)
		if head != tt.head || word != tt.word {
			t.Errorf("splitLastWord(%q) = (%q, %q), want (%q, %q)", tt.input, head, word, tt.head, tt.word)
		}
	}
}
