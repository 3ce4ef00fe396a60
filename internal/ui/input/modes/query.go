package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"recipick/internal/domain"
	"recipick/internal/ui/input/types"
)

// QueryMode is active while the query input owns the keyboard
type QueryMode struct{}

func NewQueryMode() *QueryMode {
	return &QueryMode{}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) TextEntry() bool {
	return true
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "enter":
		return []types.Action{types.ExecuteSearchAction{}}, true
	case "alt+enter", "shift+enter": // shift+enter only on terminals that report it
		return []types.Action{types.ExecuteSearchAction{FocusResults: true}}, true
	case "down", "esc":
		return []types.Action{types.FocusSectionAction{Section: domain.SectionAction}}, true
	default:
		// Everything else edits the query
		return nil, false
	}
}
