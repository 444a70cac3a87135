// Package ui renders the interactive calculator session as a Bubble Tea
// program when stdout is a terminal.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// EvalResult is one evaluated line of the session.
type EvalResult struct {
	Output string
	IsErr  bool
}

// EvalFunc evaluates a typed expression. It must never panic; failures are
// returned as an error-flagged result and the session continues.
type EvalFunc func(line string) EvalResult

// maxScrollback bounds the number of past lines the view keeps.
const maxScrollback = 200

type replLine struct {
	expr   string
	output string
	isErr  bool
}

type replModel struct {
	input    textinput.Model
	eval     EvalFunc
	prompt   string
	lines    []replLine
	width    int
	quitting bool
}

// NewReplModel returns a Bubble Tea model for the interactive session.
func NewReplModel(prompt string, eval EvalFunc) tea.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "expression, e.g. (3 + 4) * 0x2"
	ti.Focus()
	return &replModel{
		input:  ti,
		eval:   eval,
		prompt: prompt,
		width:  80,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			res := m.eval(line)
			m.lines = append(m.lines, replLine{expr: line, output: res.Output, isErr: res.IsErr})
			if len(m.lines) > maxScrollback {
				m.lines = m.lines[len(m.lines)-maxScrollback:]
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - runewidth.StringWidth(m.prompt) - 2
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	exprStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func (m *replModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("radix multi-base calculator (ctrl+d to exit)"))
	b.WriteString("\n\n")

	for _, ln := range m.lines {
		b.WriteString(exprStyle.Render(truncate(m.prompt+ln.expr, m.width)))
		b.WriteString("\n")
		style := resultStyle
		if ln.isErr {
			style = errStyle
		}
		b.WriteString(style.Render(truncate(ln.output, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.quitting {
		b.WriteString("bye\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
