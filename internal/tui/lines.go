package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/vfsh/internal/engine"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// LineOptions controls the line-oriented front-end used for pipes and scripts.
type LineOptions struct {
	Options

	// ShowPrompt writes the working directory prompt before every read.
	ShowPrompt bool

	// SkipComments ignores lines whose first non-blank character is '#'.
	SkipComments bool

	// Strict stops at the first command that reports an error-level message.
	Strict bool
}

// RunLines reads command lines from r until EOF or "exit", executing each
// against sh and writing rendered results to w.
// In strict mode the first failing command ends the run with an error
// wrapping vfsh.ErrCommandFailed.
func RunLines(r io.Reader, w io.Writer, sh Shell, opts LineOptions) error {
	renderer := NewRenderer(opts.Color)
	if opts.Banner {
		fmt.Fprintln(w, renderer.Banner(engine.Keywords()))
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for {
		if opts.ShowPrompt {
			fmt.Fprintf(w, "%s %s", sh.Pwd(), opts.PromptSuffix)
		}
		if !scanner.Scan() {
			break
		}
		lineNum++
		line := scanner.Text()

		if engine.IsExit(line) {
			return nil
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || (opts.SkipComments && strings.HasPrefix(trimmed, "#")) {
			continue
		}

		res := sh.Execute(line)
		if !res.Empty() {
			fmt.Fprintln(w, renderer.Result(res))
		}
		if opts.Strict && res.HasError() {
			return fmt.Errorf("line %d %q: %w", lineNum, trimmed, vfsh.ErrCommandFailed)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading commands: %w", err)
	}
	return nil
}
