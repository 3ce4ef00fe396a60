// Package toast shows a transient message that hides itself.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDuration is how long a message stays visible
const DefaultDuration = 2000 * time.Millisecond

// HideMsg hides the toast shown with the same generation
type HideMsg struct {
	gen int
}

// Model holds the visible message. Each Show starts a new generation so
// the timer of a replaced message cannot hide its successor.
type Model struct {
	message  string
	visible  bool
	gen      int
	duration time.Duration
}

func New() Model {
	return Model{duration: DefaultDuration}
}

// WithDuration returns a copy using d as display time
func (m Model) WithDuration(d time.Duration) Model {
	m.duration = d
	return m
}

// Show displays message and schedules its dismissal
func (m Model) Show(message string) (Model, tea.Cmd) {
	m.gen++
	m.message = message
	m.visible = true

	gen := m.gen
	return m, tea.Tick(m.duration, func(time.Time) tea.Msg {
		return HideMsg{gen: gen}
	})
}

// Update handles HideMsg
func (m Model) Update(msg tea.Msg) Model {
	if hide, ok := msg.(HideMsg); ok && hide.gen == m.gen {
		m.visible = false
	}
	return m
}

// Hide dismisses the message immediately
func (m Model) Hide() Model {
	m.visible = false
	return m
}

func (m Model) Visible() bool   { return m.visible }
func (m Model) Message() string { return m.message }
