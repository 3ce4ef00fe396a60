package input

import (
	"recipick/internal/domain"
	"recipick/internal/ui/services/navigation"
	"recipick/internal/ui/services/selection"
)

// PaneContext implements the Context interface over one pane's services
type PaneContext struct {
	Selection *selection.Service
	Focus     *navigation.Service
}

// Section returns the section owning the keyboard
func (c *PaneContext) Section() domain.Section {
	return c.Focus.Section()
}

// ResultCount returns the number of current results
func (c *PaneContext) ResultCount() int {
	return c.Selection.ResultCount()
}

// Cursor returns the list cursor
func (c *PaneContext) Cursor() int {
	return c.Focus.Cursor()
}

// ButtonEnabled reports whether the copy button can run: a search has been
// executed and at least one result is checked.
func (c *PaneContext) ButtonEnabled() bool {
	return !c.Selection.IsInitial() && c.Selection.CheckedCount() > 0
}
