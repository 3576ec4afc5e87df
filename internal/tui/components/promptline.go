package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptLine is the editable command line of the shell: a prompt showing the
// working directory followed by a text input.
type PromptLine struct {
	input  textinput.Model
	path   string
	suffix string
	styles promptStyles
}

type promptStyles struct {
	Path   lipgloss.Style
	Suffix lipgloss.Style
	Input  lipgloss.Style
}

func defaultPromptStyles() promptStyles {
	return promptStyles{
		Path:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Suffix: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Input:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// NewPromptLine creates a focused prompt line.
func NewPromptLine(suffix string) PromptLine {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 1024
	ti.Focus()

	return PromptLine{
		input:  ti,
		suffix: suffix,
		styles: defaultPromptStyles(),
	}
}

// WithPlainStyle disables colors.
func (p PromptLine) WithPlainStyle() PromptLine {
	p.styles = promptStyles{
		Path:   lipgloss.NewStyle(),
		Suffix: lipgloss.NewStyle(),
		Input:  lipgloss.NewStyle(),
	}
	return p
}

// SetPath updates the working directory shown in the prompt.
func (p *PromptLine) SetPath(path string) {
	p.path = path
}

// Prompt renders the prompt text without the input.
func (p PromptLine) Prompt() string {
	return p.styles.Path.Render(p.path) + p.styles.Suffix.Render(" "+p.suffix)
}

// Init implements tea.Model.
func (p PromptLine) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p PromptLine) Update(msg tea.Msg) (PromptLine, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p PromptLine) View() string {
	return p.Prompt() + p.styles.Input.Render(p.input.View())
}

// Value returns the current line.
func (p PromptLine) Value() string {
	return p.input.Value()
}

// SetValue replaces the line and moves the cursor to its end.
func (p *PromptLine) SetValue(v string) {
	p.input.SetValue(v)
	p.input.CursorEnd()
}

// Reset clears the line.
func (p *PromptLine) Reset() {
	p.input.Reset()
}
