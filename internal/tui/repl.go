package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/vfsh/internal/engine"
	"github.com/vvka-141/vfsh/internal/tui/components"
)

// Model is the interactive shell: a prompt line above which every submitted
// command and its output scroll away.
type Model struct {
	shell     Shell
	prompt    components.PromptLine
	history   *components.History
	completer *components.PathCompleter
	renderer  Renderer
	keys      KeyMap
	banner    string

	lastOutput string
	quitting   bool
}

// NewModel creates the interactive shell model.
func NewModel(sh Shell, opts Options) Model {
	prompt := components.NewPromptLine(opts.PromptSuffix)
	if !opts.Color {
		prompt = prompt.WithPlainStyle()
	}
	prompt.SetPath(sh.Pwd())

	renderer := NewRenderer(opts.Color)
	m := Model{
		shell:     sh,
		prompt:    prompt,
		history:   components.NewHistory(opts.HistorySize),
		completer: components.NewPathCompleter(sh),
		renderer:  renderer,
		keys:      DefaultKeyMap(),
	}
	if opts.Banner {
		m.banner = renderer.Banner(engine.Keywords())
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.banner == "" {
		return m.prompt.Init()
	}
	return tea.Batch(tea.Println(m.banner), m.prompt.Init())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	if !key.Matches(keyMsg, m.keys.Complete) {
		m.completer.Reset()
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Submit):
		return m.submit()

	case key.Matches(keyMsg, m.keys.Prev):
		if line, ok := m.history.Prev(m.prompt.Value()); ok {
			m.prompt.SetValue(line)
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Next):
		if line, ok := m.history.Next(); ok {
			m.prompt.SetValue(line)
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Complete):
		m.prompt.SetValue(m.completer.Next(m.prompt.Value()))
		return m, nil

	case key.Matches(keyMsg, m.keys.Clear):
		m.prompt.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.prompt.Value()
	echo := m.prompt.Prompt() + line
	m.prompt.Reset()
	m.history.Add(strings.TrimSpace(line))

	if engine.IsExit(line) {
		m.quitting = true
		return m, tea.Sequence(tea.Println(echo), tea.Quit)
	}

	res := m.shell.Execute(line)
	m.prompt.SetPath(m.shell.Pwd())
	m.lastOutput = m.renderer.Result(res)

	if res.Empty() {
		return m, tea.Println(echo)
	}
	return m, tea.Sequence(tea.Println(echo), tea.Println(m.lastOutput))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.prompt.View() + "\n" + HelpStyle.Render(m.keys.HelpText())
}

// Quitting reports whether the shell asked to terminate.
func (m Model) Quitting() bool { return m.quitting }

// LastOutput returns the rendered output of the most recent command.
func (m Model) LastOutput() string { return m.lastOutput }
