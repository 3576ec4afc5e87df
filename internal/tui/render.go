package tui

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Renderer turns command results into console text.
type Renderer struct {
	color bool
}

// NewRenderer creates a renderer. With color disabled the output is exactly
// the message texts, one per line.
func NewRenderer(color bool) Renderer {
	return Renderer{color: color}
}

// Message renders a single message.
func (r Renderer) Message(m vfsh.Message) string {
	if !r.color {
		return m.Text
	}
	switch {
	case m.Level == vfsh.LevelError:
		return ErrorStyle.Render(SymbolCross + " " + m.Text)
	case m.Err != nil:
		return NoticeStyle.Render(SymbolNotice + " " + m.Text)
	default:
		return SuccessStyle.Render(SymbolCheck + " " + m.Text)
	}
}

// Result renders all messages of a result, newline-separated.
func (r Renderer) Result(res vfsh.Result) string {
	lines := make([]string, 0, len(res.Messages))
	for _, m := range res.Messages {
		lines = append(lines, r.Message(m))
	}
	return strings.Join(lines, "\n")
}

// Banner renders the welcome message listing the supported commands.
func (r Renderer) Banner(keywords []string) string {
	var b strings.Builder
	b.WriteString("*********  Welcome to the virtual filesystem shell  *********\n\n")
	b.WriteString("Below commands are supported till now:\n\n")
	for i, k := range keywords {
		line := fmt.Sprintf("%d. %s", i+1, k)
		if r.color {
			line = ItemStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(fmt.Sprintf("%d. %s", len(keywords)+1, vfsh.ExitKeyword))

	if !r.color {
		return b.String()
	}
	return BannerStyle.Render(TitleStyle.Render(b.String()))
}
