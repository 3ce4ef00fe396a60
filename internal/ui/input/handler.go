package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recipick/internal/domain"
	"recipick/internal/ui/input/modes"
	"recipick/internal/ui/input/types"
)

// DefaultPlaceholder is shown in an empty query input
const DefaultPlaceholder = "Type keywords and press Enter"

// Handler turns key presses into actions for one pane.
// The mode is chosen by the section that currently owns the keyboard.
type Handler struct {
	modes     map[domain.Section]types.ModeHandler
	textInput *textinput.Model
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = DefaultPlaceholder
	ti.CharLimit = 256

	h := &Handler{
		textInput: &ti,
		modes:     make(map[domain.Section]types.ModeHandler),
	}

	h.modes[domain.SectionQuery] = modes.NewQueryMode()
	h.modes[domain.SectionAction] = modes.NewActionMode()
	h.modes[domain.SectionList] = modes.NewListMode()

	return h
}

// HandleKey routes msg to the mode of the focused section. Keys a text
// entry mode does not consume edit the query and yield an UpdateDraftAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[ctx.Section()]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed || !handler.TextEntry() {
		return actions, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if h.textInput.Value() != before {
		actions = append(actions, types.UpdateDraftAction{Text: h.textInput.Value()})
	}
	return actions, cmd
}

// SyncFocus focuses the query input only when the pane is active and the
// query section owns the keyboard.
func (h *Handler) SyncFocus(section domain.Section, active bool) tea.Cmd {
	if active && section == domain.SectionQuery {
		if h.textInput.Focused() {
			return nil
		}
		return h.textInput.Focus()
	}
	h.textInput.Blur()
	return nil
}

// IsTextEntry reports whether section captures plain keys
func (h *Handler) IsTextEntry(section domain.Section) bool {
	handler := h.modes[section]
	return handler != nil && handler.TextEntry()
}

// ModeName returns the name of the mode serving section
func (h *Handler) ModeName(section domain.Section) string {
	if handler := h.modes[section]; handler != nil {
		return handler.Name()
	}
	return ""
}

// Update handles non-keyboard messages for the text input, such as cursor blink
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if !h.textInput.Focused() {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// SetValue replaces the query text
func (h *Handler) SetValue(text string) {
	h.textInput.SetValue(text)
}

// Value returns the query text
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// SetWidth sets the visible width of the query input
func (h *Handler) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	h.textInput.Width = width
}

// TextInput returns the query input model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// View renders the query input
func (h *Handler) View() string {
	return h.textInput.View()
}
