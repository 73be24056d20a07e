package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tally/internal/driver"
	"tally/internal/history"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type entry struct {
	input  string
	output string
	isErr  bool
}

// Model is the Bubble Tea model for the interactive calculator session.
type Model struct {
	input   textinput.Model
	entries []entry
	opts    driver.Options
	store   *history.Store // nil disables persistence
}

// New builds a REPL model. store may be nil.
func New(opts driver.Options, store *history.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "2 + 3 * 4"
	ti.Prompt = promptStyle.Render("tally> ")
	ti.Focus()

	return Model{
		input: ti,
		opts:  opts,
		store: store,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlL:
			m.entries = nil
			return m, nil
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "exit" || line == "quit" {
				return m, tea.Quit
			}
			m.entries = append(m.entries, m.evaluate(line))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder

	width := 0
	for _, e := range m.entries {
		if w := runewidth.StringWidth(e.input); w > width {
			width = w
		}
	}

	for _, e := range m.entries {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(e.input))
		out := resultStyle.Render(e.output)
		if e.isErr {
			out = errorStyle.Render(e.output)
		}
		fmt.Fprintf(&sb, "  %s%s  %s %s\n", e.input, pad, faintStyle.Render("="), out)
	}

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(faintStyle.Render("enter: evaluate · ctrl+l: clear · esc: quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) evaluate(line string) entry {
	res := driver.Evaluate(line, m.opts)
	if d, failed := res.Bag.First(); failed {
		return entry{input: line, output: d.Message, isErr: true}
	}

	if m.store != nil {
		// History failures must not break the session.
		_ = m.store.Append(history.Entry{
			Expression:  line,
			Value:       res.Value,
			EvaluatedAt: time.Now(),
		})
	}
	return entry{input: line, output: driver.FormatValue(res.Value, -1)}
}

// Run starts the interactive session and blocks until it exits.
func Run(opts driver.Options, store *history.Store) error {
	_, err := tea.NewProgram(New(opts, store)).Run()
	return err
}
