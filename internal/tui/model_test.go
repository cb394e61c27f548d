package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gophersatwork/abacus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs to m and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

// typeKeys sends one rune message per character of s.
func typeKeys(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, runes(string(r)))
	}
	return m
}

func TestUpdate_Typing(t *testing.T) {
	s := abacus.New()
	m := New(s, PanelHistory, nil)

	m = typeKeys(t, m, "12+3*4")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "24", s.Display())
	assert.Equal(t, []string{"12 + 3 × 4 = 24"}, s.History())
}

func TestUpdate_Bindings(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		display  string
		memory   []string
		withKeys []tea.KeyMsg
	}{
		{name: "square root", keys: "16r", display: "4"},
		{name: "square", keys: "3s", display: "9"},
		{name: "reciprocal", keys: "4i", display: "0.25"},
		{name: "negate", keys: "5n", display: "-5"},
		{name: "pi", keys: "p", display: "3.1415926536"},
		{name: "percent", keys: "50%", display: "50%"},
		{name: "clear", keys: "12c", display: "0"},
		{name: "memory save and recall", keys: "7mcM", display: "7", memory: []string{"7"}},
		{
			name:     "memory add",
			keys:     "7m3",
			display:  "3",
			memory:   []string{"10"},
			withKeys: []tea.KeyMsg{{Type: tea.KeyCtrlA}},
		},
		{
			name:     "backspace",
			keys:     "123",
			display:  "12",
			withKeys: []tea.KeyMsg{{Type: tea.KeyBackspace}},
		},
		{
			name:     "clear entry",
			keys:     "5+3",
			display:  "0",
			withKeys: []tea.KeyMsg{{Type: tea.KeyDelete}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := abacus.New()
			m := typeKeys(t, New(s, PanelHistory, nil), tt.keys)
			for _, k := range tt.withKeys {
				m = send(t, m, k)
			}

			assert.Equal(t, tt.display, s.Display())
			if tt.memory != nil {
				assert.Equal(t, tt.memory, s.Memory())
			}
		})
	}
}

func TestUpdate_SwitchPanel(t *testing.T) {
	m := New(abacus.New(), PanelHistory, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, PanelMemory, m.Panel())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, PanelHistory, m.Panel())
}

func TestUpdate_ClearHistory(t *testing.T) {
	s := abacus.New()
	m := typeKeys(t, New(s, PanelHistory, nil), "1+1=")
	require.Len(t, s.History(), 1)

	typeKeys(t, m, "H")
	assert.Empty(t, s.History())
}

func TestUpdate_Quit(t *testing.T) {
	m := New(abacus.New(), PanelHistory, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_UnknownRuneIsIgnored(t *testing.T) {
	s := abacus.New()
	m := typeKeys(t, New(s, PanelHistory, nil), "4z")

	send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, "4", s.Display())
}

func TestView(t *testing.T) {
	s := abacus.New()
	m := typeKeys(t, New(s, PanelHistory, nil), "2+3=")

	view := m.View()
	assert.Contains(t, view, "2 + 3 =")
	assert.Contains(t, view, "2 + 3 = 5")
	assert.Contains(t, view, "History")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "There's nothing saved in memory")
}

func TestView_Fault(t *testing.T) {
	s := abacus.New()
	m := typeKeys(t, New(s, PanelMemory, nil), "5/0=")

	assert.Contains(t, m.View(), "Cannot divide by zero")
}

func TestView_PanelOverflow(t *testing.T) {
	s := abacus.New()
	m := New(s, PanelHistory, nil)
	for i := 0; i < panelRows+3; i++ {
		m = typeKeys(t, m, "1+1=")
	}

	view := m.View()
	assert.Contains(t, view, "… 3 more")
	assert.Equal(t, panelRows, strings.Count(view, "1 + 1 = 2"))
}

func TestParsePanel(t *testing.T) {
	assert.Equal(t, PanelMemory, ParsePanel("memory"))
	assert.Equal(t, PanelMemory, ParsePanel("Memory"))
	assert.Equal(t, PanelHistory, ParsePanel("history"))
	assert.Equal(t, PanelHistory, ParsePanel(""))
}
