package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"recipick/internal/ui/input/types"
)

// ListMode is active while the cursor is on a result row
type ListMode struct{}

func NewListMode() *ListMode {
	return &ListMode{}
}

func (m *ListMode) Name() string {
	return "list"
}

func (m *ListMode) TextEntry() bool {
	return false
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	if ctx.Cursor() < 0 {
		return globalKey(msg)
	}

	switch msg.String() {
	case "enter":
		return []types.Action{types.CopyItemAction{}}, true
	case "alt+enter", "shift+enter", "ctrl+j", " ": // shift+enter only on terminals that report it
		return []types.Action{types.ToggleCheckAction{}}, true
	}
	return globalKey(msg)
}
