package navigation

import "recipick/internal/domain"

// State holds the focus of one pane
type State struct {
	Section        domain.Section
	Cursor         int // -1 when there are no results
	ViewportOffset int
	ViewportHeight int
	Identities     []string // identity sequence the cursor refers to
}

// Direction represents movement directions inside the result list
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)
