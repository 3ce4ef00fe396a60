package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"recipick/internal/domain"
)

// Action represents a command the pane should execute
type Action interface {
	Type() string
}

// Context provides read-only access to pane state needed for input handling
type Context interface {
	Section() domain.Section
	ResultCount() int
	Cursor() int
	ButtonEnabled() bool
}

// ModeHandler handles input while one section owns the keyboard
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// TextEntry reports whether unconsumed keys go to the query input
	TextEntry() bool

	// Name returns the mode name for display
	Name() string
}
