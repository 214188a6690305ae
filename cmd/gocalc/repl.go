package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandrolain/gocalc"
	"github.com/sandrolain/gocalc/pkg/evaluator"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// replModel is the interactive read-eval-print loop. Each Enter evaluates
// the current line and appends the input and its result (or error) to the
// scrollback.
type replModel struct {
	input    textinput.Model
	history  []string
	opts     []evaluator.EvalOption
	quitting bool
}

func newReplModel(opts []evaluator.EvalOption) replModel {
	ti := textinput.New()
	ti.Placeholder = "2 + 3 * (4 - 1)"
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Focus()

	return replModel{
		input: ti,
		opts:  opts,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			m.history = append(m.history, promptStyle.Render("> ")+line)
			result, err := gocalc.Eval(line, m.opts...)
			if err != nil {
				m.history = append(m.history, errorStyle.Render(err.Error()))
			} else {
				m.history = append(m.history, resultStyle.Render(result.String()))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, line := range m.history {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(hintStyle.Render("Enter to evaluate, Esc to quit"))
	b.WriteByte('\n')
	return b.String()
}
