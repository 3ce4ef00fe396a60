package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Help           lipgloss.Style
	Pane           lipgloss.Style
	PaneActive     lipgloss.Style
	PaneTitle      lipgloss.Style
	PaneTitleDim   lipgloss.Style
	Prompt         lipgloss.Style
	PromptFocused  lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Warning        lipgloss.Style
	Suggestion     lipgloss.Style
	Separator      lipgloss.Style
	Checked        lipgloss.Style
	Weight         lipgloss.Style
	CursorRow      lipgloss.Style
	Toast          lipgloss.Style
	StatusError    lipgloss.Style
	Scroll         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		PaneTitle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		PaneTitleDim:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		Prompt:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PromptFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		ButtonFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		ButtonDisabled: lipgloss.NewStyle().Faint(true),
		Warning:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Suggestion:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Separator:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Checked:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Weight:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		CursorRow:      lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Toast:          lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Scroll:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
