package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"recipick/internal/domain"
	"recipick/internal/ui/input/types"
)

// ActionMode is active while the copy button is focused
type ActionMode struct{}

func NewActionMode() *ActionMode {
	return &ActionMode{}
}

func (m *ActionMode) Name() string {
	return "action"
}

func (m *ActionMode) TextEntry() bool {
	return false
}

func (m *ActionMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "up":
		return []types.Action{types.FocusSectionAction{Section: domain.SectionQuery}}, true
	case "down":
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.FocusSectionAction{Section: domain.SectionList}}, true
	case "enter", " ":
		if !ctx.ButtonEnabled() {
			return nil, true
		}
		return []types.Action{types.CopySelectionAction{}}, true
	}
	return globalKey(msg)
}
