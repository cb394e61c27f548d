// Package tui is a terminal front-end for an abacus session. It maps key
// presses onto session actions and renders the session's outputs; all
// calculator logic stays in the session.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gophersatwork/abacus"
	"go.uber.org/zap"
)

// Panel selects which list is shown beside the calculator.
type Panel int

const (
	PanelHistory Panel = iota
	PanelMemory
)

// ParsePanel maps "history" and "memory" to a Panel. Anything else is
// history.
func ParsePanel(s string) Panel {
	if strings.EqualFold(s, "memory") {
		return PanelMemory
	}
	return PanelHistory
}

func (p Panel) String() string {
	if p == PanelMemory {
		return "Memory"
	}
	return "History"
}

const (
	defaultWidth = 40
	panelRows    = 8
)

// Model is the bubbletea model wrapping a session.
type Model struct {
	session *abacus.Session
	logger  *zap.Logger
	keys    keyMap
	styles  styles
	panel   Panel
	width   int
}

// New creates a model for s showing the given panel.
func New(s *abacus.Session, panel Panel, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		session: s,
		logger:  logger,
		keys:    defaultKeyMap(),
		styles:  defaultStyles(),
		panel:   panel,
		width:   defaultWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Panel returns the selected side panel.
func (m Model) Panel() Panel {
	return m.panel
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, defaultWidth)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.SwitchPanel):
			if m.panel == PanelHistory {
				m.panel = PanelMemory
			} else {
				m.panel = PanelHistory
			}
			return m, nil
		case key.Matches(msg, m.keys.ClearHistory):
			m.session.ClearHistory()
			return m, nil
		}

		for _, b := range m.keys.labels() {
			if key.Matches(msg, b.binding) {
				m.dispatch(b.label)
				return m, nil
			}
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			m.dispatch(string(msg.Runes))
		}
	}
	return m, nil
}

func (m Model) dispatch(label string) {
	if err := m.session.Dispatch(label); err != nil {
		m.logger.Debug("unmapped key", zap.String("key", label), zap.Error(err))
	}
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.session.Snapshot()
	inner := m.width - 4

	var sb strings.Builder
	sb.WriteString(m.styles.Trail.Width(inner).Render(snap.Trail))
	sb.WriteString("\n")

	displayStyle := m.styles.Display
	if snap.Fault != nil {
		displayStyle = m.styles.Fault
	}
	sb.WriteString(displayStyle.Width(inner).Render(snap.Display))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Mode.Width(inner).Render(string(snap.Mode)))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderPanel(snap))
	sb.WriteString("\n")
	sb.WriteString(m.renderHelp())

	return m.styles.App.Width(m.width).Render(sb.String())
}

func (m Model) renderPanel(snap abacus.Snapshot) string {
	items := snap.History
	empty := "There's no history yet"
	if m.panel == PanelMemory {
		items = snap.Memory
		empty = "There's nothing saved in memory"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(m.panel.String()))
	sb.WriteString("\n")
	if len(items) == 0 {
		sb.WriteString(m.styles.Muted.Render(empty))
		sb.WriteString("\n")
		return sb.String()
	}
	for i, item := range items {
		if i == panelRows {
			sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("… %d more", len(items)-panelRows)))
			sb.WriteString("\n")
			break
		}
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Muted.Width(m.width - 4).Render(strings.Join(parts, " • "))
}

type styles struct {
	App     lipgloss.Style
	Header  lipgloss.Style
	Trail   lipgloss.Style
	Display lipgloss.Style
	Fault   lipgloss.Style
	Mode    lipgloss.Style
	Muted   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#27c0c5")),
		Trail: lipgloss.NewStyle().
			Align(lipgloss.Right).
			Foreground(lipgloss.Color("#808080")),
		Display: lipgloss.NewStyle().
			Align(lipgloss.Right).
			Bold(true),
		Fault: lipgloss.NewStyle().
			Align(lipgloss.Right).
			Bold(true).
			Foreground(lipgloss.Color("#e06c75")),
		Mode: lipgloss.NewStyle().
			Align(lipgloss.Right).
			Faint(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bdbdbd")),
	}
}
