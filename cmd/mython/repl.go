package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mgomes/mython/mython"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	interp      *mython.Interpreter
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	lastResult  string
	width       int
	height      int
	quitting    bool
	initialized bool
	notice      string
}

var keys = struct {
	Up, Down, Enter, CtrlC, CtrlD, CtrlL, CtrlY key.Binding
}{
	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous command")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next command")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "execute")),
	CtrlC: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	CtrlD: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "quit")),
	CtrlL: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	CtrlY: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy last result")),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "x = 1 + 2"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "mython> "

	return replModel{
		textInput:  ti,
		interp:     mython.NewInterpreter(),
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

		case key.Matches(msg, keys.CtrlY):
			m.notice = ""
			if m.lastResult == "" {
				m.notice = "nothing to copy yet"
			} else if err := clipboard.WriteAll(m.lastResult); err != nil {
				m.notice = "copy failed: " + err.Error()
			} else {
				m.notice = "copied last result to clipboard"
			}
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
			output, isErr := m.evaluate(input)
			if !isErr {
				m.lastResult = output
			}
			m.history = append(m.history, historyEntry{input: input, output: output, isErr: isErr})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			m.notice = ""
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// evaluate runs one line of input against the REPL's persistent
// interpreter. A bare expression (no assignment, and not one of the
// statement keywords) is wrapped in a return so its value surfaces as
// the displayed result, mirroring how a function body would expose it.
func (m *replModel) evaluate(input string) (string, bool) {
	var out strings.Builder
	source := input
	if looksLikeBareExpression(input) {
		source = "return " + input
	}

	value, err := m.interp.EvalExpression(source, &out)
	if err != nil {
		return mython.FormatError(err, source), true
	}

	text, err := mython.Stringified(value, mython.NewContext(&out))
	if err != nil {
		return err.Error(), true
	}
	if out.Len() > 0 {
		return out.String() + text, false
	}
	return text, false
}

func looksLikeBareExpression(input string) bool {
	for _, kw := range []string{"print", "if", "class", "return", "def"} {
		if strings.HasPrefix(input, kw) {
			return false
		}
	}
	if idx := strings.IndexByte(input, '='); idx >= 0 {
		if idx == 0 || input[idx-1] != '=' && input[idx-1] != '!' && input[idx-1] != '<' && input[idx-1] != '>' {
			if idx+1 >= len(input) || input[idx+1] != '=' {
				return false
			}
		}
	}
	return true
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
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

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
			b.WriteString("  " + errorStyle.Render(entry.output) + "\n")
		} else {
			b.WriteString("  " + resultStyle.Render("→ "+entry.output) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n")
	if m.notice != "" {
		b.WriteString(mutedStyle.Render(m.notice) + "\n")
	}
	b.WriteString("\n")

	footer := fmt.Sprintf("%s  %s  %s  %s",
		mutedStyle.Render("ctrl+y copy"),
		mutedStyle.Render("ctrl+l clear"),
		mutedStyle.Render("ctrl+c quit"),
		mutedStyle.Render("↑/↓ history"))
	b.WriteString(footer)

	return b.String()
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
