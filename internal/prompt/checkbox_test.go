package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m checklist, msgs ...tea.Msg) checklist {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(checklist)
		require.True(t, ok)
	}
	return m
}

func TestChecklist_ToggleAndConfirm(t *testing.T) {
	m := newChecklist("SELECT", []string{"a", "b", "c"})

	m = press(t, m,
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyDown},
		runeKey('j'),
		runeKey('x'),
	)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(checklist)

	assert.True(t, m.done)
	assert.False(t, m.cancelled)
	assert.NotNil(t, cmd)
	assert.Equal(t, []string{"a", "c"}, m.chosen())
}

func TestChecklist_ChosenKeepsOriginalOrder(t *testing.T) {
	m := newChecklist("SELECT", []string{"a", "b", "c"})

	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeySpace},
		runeKey('k'),
		runeKey('k'),
		tea.KeyMsg{Type: tea.KeySpace},
	)

	assert.Equal(t, []string{"a", "c"}, m.chosen())
}

func TestChecklist_ToggleAll(t *testing.T) {
	m := newChecklist("SELECT", []string{"a", "b"})

	m = press(t, m, runeKey('a'))
	assert.Equal(t, []string{"a", "b"}, m.chosen())

	m = press(t, m, runeKey('a'))
	assert.Empty(t, m.chosen())

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, runeKey('a'))
	assert.Equal(t, []string{"a", "b"}, m.chosen())
}

func TestChecklist_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}, runeKey('q')} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newChecklist("SELECT", []string{"a"})
			m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, msg)
			assert.True(t, m.cancelled)
			assert.Empty(t, m.View())
		})
	}
}

func TestChecklist_StatesAreIndependent(t *testing.T) {
	before := newChecklist("SELECT", []string{"a", "b"})
	after := press(t, before, tea.KeyMsg{Type: tea.KeySpace})

	assert.Empty(t, before.chosen())
	assert.Equal(t, []string{"a"}, after.chosen())
}

func TestChecklist_View(t *testing.T) {
	m := newChecklist("SELECT DEFINITIONS FOR 'RUN'", []string{"to move quickly", "to operate"})
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	view := m.View()
	assert.Contains(t, view, "SELECT DEFINITIONS FOR 'RUN'")
	assert.Contains(t, view, "to move quickly")
	assert.Contains(t, view, "to operate")
	assert.Contains(t, view, "●")
	assert.Contains(t, view, "○")
	assert.Contains(t, view, "enter confirm")
}

func TestCheckbox_EmptyChoicesSkipPrompt(t *testing.T) {
	c := NewCheckbox(nil, nil)
	chosen, err := c.Select("nothing", nil)
	assert.NoError(t, err)
	assert.Empty(t, chosen)
}

func TestPrompterFunc(t *testing.T) {
	var p Prompter = PrompterFunc(func(title string, choices []string) ([]string, error) {
		return choices[:1], nil
	})
	chosen, err := p.Select("t", []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, chosen)
}
