package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/basecalc"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

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

	baseStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type historyEntry struct {
	input   string
	in, out int
	output  string
	isErr   bool
}

type calcModel struct {
	textInput  textinput.Model
	calc       *basecalc.Calculator
	in, out    int
	last       string
	history    []historyEntry
	cmdHistory []string
	historyIdx int
	width      int
	height     int
	showHelp   bool
	showVars   bool
	quitting   bool
	ready      bool
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Quit     key.Binding
	Clear    key.Binding
	InUp     key.Binding
	InDown   key.Binding
	OutUp    key.Binding
	OutDown  key.Binding
	ShowVars key.Binding
	ShowHelp key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous expression"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next expression"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "evaluate"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+d"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	InUp: key.NewBinding(
		key.WithKeys("shift+up"),
		key.WithHelp("shift+↑", "input base +1"),
	),
	InDown: key.NewBinding(
		key.WithKeys("shift+down"),
		key.WithHelp("shift+↓", "input base -1"),
	),
	OutUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "output base +1"),
	),
	OutDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdown", "output base -1"),
	),
	ShowVars: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "toggle vars"),
	),
	ShowHelp: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newCalcModel(calc *basecalc.Calculator, in, out int) calcModel {
	ti := textinput.New()
	ti.Placeholder = "type an expression..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "> "

	return calcModel{
		textInput:  ti,
		calc:       calc,
		in:         in,
		out:        out,
		historyIdx: -1,
	}
}

func (m calcModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m calcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Clear):
			m.history = nil
			return m, nil

		case key.Matches(msg, keys.ShowVars):
			m.showVars = !m.showVars
			return m, nil

		case key.Matches(msg, keys.ShowHelp):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.InUp):
			return m.rebase(m.in+1, m.out), nil

		case key.Matches(msg, keys.InDown):
			return m.rebase(m.in-1, m.out), nil

		case key.Matches(msg, keys.OutUp):
			return m.rebase(m.in, m.out+1), nil

		case key.Matches(msg, keys.OutDown):
			return m.rebase(m.in, m.out-1), nil

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
			m.textInput.SetValue("")
			m.historyIdx = -1
			if strings.HasPrefix(input, ":") {
				return m.handleCommand(input)
			}
			m.cmdHistory = append(m.cmdHistory, input)
			// A submission always runs, even if it repeats the last one.
			m.calc.Forget()
			m.last = input
			m.history = append(m.history, m.evaluate())
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// evaluate runs the last submitted expression in the current bases. Only the
// stages affected by a change since the previous call do any work.
func (m calcModel) evaluate() historyEntry {
	r := historyEntry{input: m.last, in: m.in, out: m.out}
	s, err := m.calc.Calc(m.last, m.in, m.out)
	if err != nil {
		r.output, r.isErr = err.Error(), true
		return r
	}
	r.output = s
	return r
}

// rebase changes the bases and shows the last expression in them. Bases outside
// the valid range are ignored.
func (m calcModel) rebase(in, out int) calcModel {
	if basecalc.CheckBase(in) != nil || basecalc.CheckBase(out) != nil {
		return m
	}
	m.in, m.out = in, out
	if m.last == "" {
		return m
	}
	r := m.evaluate()
	if n := len(m.history); n > 0 && m.history[n-1].input == m.last {
		m.history[n-1] = r
	} else {
		m.history = append(m.history, r)
	}
	return m
}

func (m calcModel) handleCommand(input string) (calcModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = nil
	case ":vars", ":v":
		m.showVars = !m.showVars
	case ":reset", ":r":
		m.calc.Reset()
		m.last = ""
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "variables reset",
		})
	case ":in", ":out":
		if len(parts) != 2 {
			m.history = append(m.history, historyEntry{
				input:  input,
				output: fmt.Sprintf("usage: %s base", cmd),
				isErr:  true,
			})
			break
		}
		b, err := strconv.Atoi(parts[1])
		if err == nil {
			err = basecalc.CheckBase(b)
		}
		if err != nil {
			m.history = append(m.history, historyEntry{
				input:  input,
				output: err.Error(),
				isErr:  true,
			})
			break
		}
		if cmd == ":in" {
			m = m.rebase(b, m.out)
		} else {
			m = m.rebase(m.in, b)
		}
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

func (m calcModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("basecalc")
	bases := mutedStyle.Render("in ") + baseStyle.Render(strconv.Itoa(m.in)) +
		mutedStyle.Render("  out ") + baseStyle.Render(strconv.Itoa(m.out))
	b.WriteString(header + " " + bases + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 12
	}
	if m.showVars {
		reservedLines += m.calc.Vars().Len() + 3
	}
	availableHeight := max(m.height-reservedLines, 0) / 3

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for _, entry := range m.history[historyStart:] {
		if entry.input != "" {
			tag := ""
			if entry.out != 0 {
				tag = mutedStyle.Render(fmt.Sprintf(" (%d → %d)", entry.in, entry.out))
			}
			b.WriteString(mutedStyle.Render("  › ") + entry.input + tag + "\n")
		}
		if entry.isErr {
			b.WriteString("  " + errorStyle.Render("✗ "+entry.output) + "\n")
		} else {
			b.WriteString("  " + resultStyle.Render("→ "+entry.output) + "\n")
		}
		b.WriteString("\n")
	}

	if m.showVars {
		b.WriteString(renderVarsPanel(m.calc.Vars(), m.out))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("shift+↑↓") + helpDescStyle.Render(" in base  ") +
		helpKeyStyle.Render("pgup/pgdn") + helpDescStyle.Render(" out base  ") +
		helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

// renderVarsPanel lists variables with their values in the output base.
func renderVarsPanel(vars *basecalc.Vars, base int) string {
	names := vars.Names()
	if len(names) == 0 {
		return borderStyle.Render(mutedStyle.Render("No variables defined"))
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Variables"))
	varNameStyle := lipgloss.NewStyle().Foreground(highlightColor)
	for _, name := range names {
		x, _ := vars.Lookup(name)
		s, err := basecalc.FromBase10(x, base)
		if err != nil {
			s = err.Error()
		}
		lines = append(lines, fmt.Sprintf("  %s = %s", varNameStyle.Render(name), s))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate expression history"},
		{"shift+↑/↓", "Change input base"},
		{"pgup/pgdn", "Change output base"},
		{"Enter", "Evaluate expression"},
		{":in N", "Set input base"},
		{":out N", "Set output base"},
		{":help", "Toggle this help"},
		{":vars", "Toggle variables panel"},
		{":clear", "Clear history"},
		{":reset", "Reset variables"},
		{":quit", "Exit"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-10s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runTUI(calc *basecalc.Calculator, in, out int) error {
	p := tea.NewProgram(newCalcModel(calc, in, out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
