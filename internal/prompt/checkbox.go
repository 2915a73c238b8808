package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Checkbox styles
var (
	cbQuestionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ecdc4"))

	cbTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f1faee"))

	cbCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	cbCheckedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf"))

	cbItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	cbHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:    key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
	ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
	Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel:    key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "skip")),
}

// Checkbox asks questions on a terminal
type Checkbox struct {
	in  io.Reader
	out io.Writer
}

// NewCheckbox creates a terminal prompter reading keys from in and
// drawing on out
func NewCheckbox(in io.Reader, out io.Writer) *Checkbox {
	return &Checkbox{in: in, out: out}
}

// Select runs an interactive checklist until the user confirms or cancels
func (c *Checkbox) Select(title string, choices []string) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	program := tea.NewProgram(newChecklist(title, choices),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}

	m, ok := final.(checklist)
	if !ok || m.cancelled {
		return nil, ErrCancelled
	}
	return m.chosen(), nil
}

// checklist is the bubbletea model behind Checkbox
type checklist struct {
	title   string
	choices []string
	checked []bool
	cursor  int

	done      bool
	cancelled bool
}

func newChecklist(title string, choices []string) checklist {
	return checklist{
		title:   title,
		choices: choices,
		checked: make([]bool, len(choices)),
	}
}

func (m checklist) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m checklist) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.choices) - 1
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case key.Matches(keyMsg, keys.Toggle):
		m.checked = toggled(m.checked, m.cursor)
	case key.Matches(keyMsg, keys.ToggleAll):
		m.checked = toggledAll(m.checked)
	case key.Matches(keyMsg, keys.Confirm):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the question and the choices
func (m checklist) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder

	b.WriteString(cbQuestionStyle.Render("?") + " " + cbTitleStyle.Render(m.title))
	b.WriteString("\n")

	for i, choice := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = cbCursorStyle.Render("» ")
		}

		box := cbItemStyle.Render("○ ")
		if m.checked[i] {
			box = cbCheckedStyle.Render("● ")
		}

		b.WriteString(cursor + box + cbItemStyle.Render(choice) + "\n")
	}

	help := []string{}
	for _, binding := range []key.Binding{keys.Up, keys.Down, keys.Toggle, keys.ToggleAll, keys.Confirm, keys.Cancel} {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(cbHelpStyle.Render(strings.Join(help, " • ")))
	b.WriteString("\n")

	return b.String()
}

// chosen returns the checked choices in their original order
func (m checklist) chosen() []string {
	var result []string
	for i, choice := range m.choices {
		if m.checked[i] {
			result = append(result, choice)
		}
	}
	return result
}

// toggled returns a copy of checked with position i flipped. Models are
// passed by value, so the slice is never shared between states.
func toggled(checked []bool, i int) []bool {
	next := make([]bool, len(checked))
	copy(next, checked)
	next[i] = !next[i]
	return next
}

// toggledAll checks everything, or clears everything when all are checked
func toggledAll(checked []bool) []bool {
	all := true
	for _, c := range checked {
		if !c {
			all = false
			break
		}
	}

	next := make([]bool, len(checked))
	for i := range next {
		next[i] = !all
	}
	return next
}
