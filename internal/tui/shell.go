package tui

import "github.com/vvka-141/vfsh/pkg/vfsh"

// Shell is the session the front-ends drive.
type Shell interface {
	vfsh.Executor

	// Pwd returns the working directory for the prompt.
	Pwd() string

	// List returns child names under a path expression, for completion.
	List(path string) ([]string, bool)
}

// Options controls presentation of both front-ends.
type Options struct {
	PromptSuffix string
	Banner       bool
	Color        bool
	HistorySize  int
}
