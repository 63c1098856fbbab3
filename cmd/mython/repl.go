package main

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dvshapkin/mython/mython"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

// replModel keeps a single Closure alive across Enter presses, so a name
// bound on one line is visible on the next — the REPL's entire notion of
// session state, since mython itself has no module or namespace system.
type replModel struct {
	textInput textinput.Model
	closure   mython.Closure
	ctx       *mython.Context
	out       *bytes.Buffer

	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	quitting    bool
	initialized bool
}

var keys = struct {
	Up, Down, Enter, CtrlC, CtrlD, CtrlL key.Binding
}{
	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous command")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next command")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "execute")),
	CtrlC: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	CtrlD: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "quit")),
	CtrlL: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "type a statement..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "mython> "

	out := &bytes.Buffer{}

	return replModel{
		textInput:  ti,
		closure:    mython.NewClosure(),
		ctx:        mython.NewContext(out),
		out:        out,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			if input == ":quit" || input == ":q" {
				m.quitting = true
				return m, tea.Quit
			}
			if input == ":reset" || input == ":r" {
				m.closure = mython.NewClosure()
				m.history = append(m.history, historyEntry{input: input, output: "environment reset"})
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, nil
			}

			output, isErr := m.evaluate(input)
			m.history = append(m.history, historyEntry{input: input, output: output, isErr: isErr})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// evaluate parses input as one or more statements and runs them against the
// REPL's persistent closure, returning whatever was printed (if anything)
// or, failing that, the value the last statement evaluated to. mython.Parse
// always wraps its result in a Compound, whose own Execute discards every
// statement's value and yields None — so echoing "what you just typed" is a
// REPL convenience, not a core language behavior, and is reconstructed here
// by running the top-level statements one at a time instead of delegating
// to Compound.Execute.
func (m *replModel) evaluate(input string) (string, bool) {
	node, err := mython.Parse(strings.NewReader(input + "\n"))
	if err != nil {
		return err.Error(), true
	}
	block, ok := node.(*mython.Compound)
	if !ok {
		return "unexpected parse result", true
	}

	m.out.Reset()
	result := mython.NewNone()
	for _, stmt := range block.Stmts {
		result, err = stmt.Execute(m.closure, m.ctx)
		if err != nil {
			return err.Error(), true
		}
	}

	printed := m.out.String()
	text, err := mython.Render(result, m.ctx)
	if err != nil {
		return err.Error(), true
	}
	if printed == "" {
		return text, false
	}
	return strings.TrimSuffix(printed, "\n"), false
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}
	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("mython REPL") + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", minInt(m.width-2, 60))) + "\n\n")

	reservedLines := 6
	availableHeight := m.height - reservedLines
	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		if entry.isErr {
			b.WriteString("  " + errorStyle.Render("✗ "+entry.output) + "\n")
		} else {
			b.WriteString("  " + resultStyle.Render("→ "+entry.output) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")
	b.WriteString(mutedStyle.Render("ctrl+l clear  :reset  ctrl+c quit"))
	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
