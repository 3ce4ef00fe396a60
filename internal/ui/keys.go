package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"recipick/internal/domain"
)

// KeyMap lists the bindings shown in the footer and the help pager
type KeyMap struct {
	Search      key.Binding
	SearchFocus key.Binding
	Leave       key.Binding
	Up          key.Binding
	Down        key.Binding
	Page        key.Binding
	SwitchPane  key.Binding
	Copy        key.Binding
	CopyName    key.Binding
	Toggle      key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the bindings the input modes implement
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		SearchFocus: key.NewBinding(key.WithKeys("alt+enter", "shift+enter"), key.WithHelp("alt+enter", "search & jump to results")),
		Leave:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave query")),
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Page:        key.NewBinding(key.WithKeys("pgup", "pgdown", "home", "end"), key.WithHelp("pgup/pgdn", "page")),
		SwitchPane:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "switch pane")),
		Copy:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "copy checked")),
		CopyName:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy name")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "alt+enter", "ctrl+j", "shift+enter"), key.WithHelp("space", "toggle")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// sectionKeys adapts a KeyMap to help.KeyMap for one focused section
type sectionKeys struct {
	keys    KeyMap
	section domain.Section
}

func (k KeyMap) forSection(section domain.Section) sectionKeys {
	return sectionKeys{keys: k, section: section}
}

func (s sectionKeys) ShortHelp() []key.Binding {
	k := s.keys
	switch s.section {
	case domain.SectionQuery:
		return []key.Binding{k.Search, k.SearchFocus, k.Down, k.Leave, k.ForceQuit}
	case domain.SectionAction:
		return []key.Binding{k.Copy, k.Up, k.Down, k.SwitchPane, k.Help, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Toggle, k.CopyName, k.SwitchPane, k.Help, k.Quit}
	}
}

func (s sectionKeys) FullHelp() [][]key.Binding {
	k := s.keys
	return [][]key.Binding{
		{k.Search, k.SearchFocus, k.Leave},
		{k.Up, k.Down, k.Page, k.SwitchPane},
		{k.Copy, k.CopyName, k.Toggle},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// Markdown renders the bindings as a help document
func (k KeyMap) Markdown() string {
	var b strings.Builder
	b.WriteString("# recipick\n\n")
	b.WriteString("Pick recipients for **To** and **CC** from the ranked contact list and copy them, ")
	b.WriteString("joined with `;`, to the clipboard.\n\n")

	section := func(title string, rows ...key.Binding) {
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n|---|---|\n", title)
		for _, r := range rows {
			h := r.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	section("Query input", k.Search, k.SearchFocus, k.Down, k.Leave)
	section("Copy button", k.Copy, k.Up, k.Down)
	section("Result list", k.Up, k.Down, k.Page, k.Toggle, k.CopyName)
	section("Anywhere outside the query", k.SwitchPane, k.Help, k.Quit)

	b.WriteString("## Mouse\n\n")
	b.WriteString("- Click a pane to focus it, the query box to type, the button to copy.\n")
	b.WriteString("- Click a checkbox to toggle it, a name to copy that single name.\n")
	b.WriteString("- Scroll to move the result list.\n\n")
	b.WriteString("Every new search starts with all results checked.\n")
	return b.String()
}
