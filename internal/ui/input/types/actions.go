package types

import "recipick/internal/domain"

// Text input actions
type UpdateDraftAction struct {
	Text string
}

func (a UpdateDraftAction) Type() string { return "update_draft" }

// ExecuteSearchAction commits the draft query
type ExecuteSearchAction struct {
	FocusResults bool // move to the first result afterwards
}

func (a ExecuteSearchAction) Type() string { return "execute_search" }

// Focus actions
type FocusSectionAction struct {
	Section domain.Section
}

func (a FocusSectionAction) Type() string { return "focus_section" }

type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleCheckAction struct{}

func (a ToggleCheckAction) Type() string { return "toggle_check" }

type CopyItemAction struct{}

func (a CopyItemAction) Type() string { return "copy_item" }

type CopySelectionAction struct{}

func (a CopySelectionAction) Type() string { return "copy_selection" }

// Global actions, handled above the pane
type SwitchPaneAction struct {
	Side domain.PaneSide
}

func (a SwitchPaneAction) Type() string { return "switch_pane" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }
