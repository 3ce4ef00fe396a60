package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"recipick/internal/domain"
	"recipick/internal/ui/input/types"
)

// globalKey handles keys shared by every section outside text entry
func globalKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "left":
		return []types.Action{types.SwitchPaneAction{Side: domain.PaneLeft}}, true
	case "right":
		return []types.Action{types.SwitchPaneAction{Side: domain.PaneRight}}, true
	}
	return nil, false
}
