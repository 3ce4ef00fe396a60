package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Loading        bool
	Source         string
	LoadErr        error
	SourceWarning  string
	CandidateCount int
	Panes          [2]PaneView
	Toast          string
	ToastVisible   bool
	HelpLine       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.LoadErr != nil {
		return r.renderLoadError(state)
	}
	if state.Loading || state.Width == 0 {
		return r.styles.Dim.Render(fmt.Sprintf("Loading candidates from %s...", state.Source))
	}

	layout := Layout{Width: state.Width, Height: state.Height}

	var b strings.Builder
	b.WriteString(r.renderHeader(state))
	b.WriteString("\n")

	left := r.renderPane(state.Panes[0], layout)
	right := r.renderPane(state.Panes[1], layout)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	if state.ToastVisible {
		b.WriteString(r.styles.Toast.Render(truncate(state.Toast, state.Width)))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render(state.HelpLine))

	return b.String()
}

func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Title.Render("recipick")

	var right string
	if state.SourceWarning != "" {
		right = r.styles.StatusError.Render(truncate(state.SourceWarning, state.Width/2))
	} else {
		right = r.styles.Dim.Render(truncate(fmt.Sprintf("%d candidates · %s", state.CandidateCount, state.Source), state.Width/2))
	}

	padding := state.Width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderLoadError(state ViewState) string {
	msg := fmt.Sprintf("Failed to load candidates\n\n%v\n\nFix the file and restart. Press q to quit.", state.LoadErr)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("203")).
		Padding(1, 2).
		Render(r.styles.StatusError.Render(msg))

	if state.Width == 0 || state.Height == 0 {
		return box
	}
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, box)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
