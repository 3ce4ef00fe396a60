package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"recipick/internal/domain"
)

// PaneView is the render snapshot of one pane
type PaneView struct {
	Title         string
	ButtonLabel   string
	Input         string
	Active        bool
	Section       domain.Section
	ButtonEnabled bool
	Initial       bool
	NoResults     bool
	Unmatched     []string
	Suggestions   map[string]string
	Results       []domain.ResultItem
	Start, End    int // visible rows
	Cursor        int
	Checked       int
}

func (r *Renderer) renderPane(p PaneView, layout Layout) string {
	inner := layout.InnerWidth()
	lines := make([]string, 0, PaneHeadLines+layout.ListHeight())

	lines = append(lines,
		r.renderPaneTitle(p, inner),
		r.renderQuery(p),
		r.renderButton(p),
		r.renderBanner(p, inner),
		r.styles.Separator.Render(strings.Repeat("─", inner)),
	)

	for i := p.Start; i < p.End && i < len(p.Results); i++ {
		lines = append(lines, r.renderRow(p, i, inner))
	}
	for len(lines) < PaneHeadLines+layout.ListHeight() {
		lines = append(lines, "")
	}

	style := r.styles.Pane
	if p.Active {
		style = r.styles.PaneActive
	}
	return style.
		Width(inner).
		MaxWidth(inner + PaneBorder*2).
		Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderPaneTitle(p PaneView, width int) string {
	titleStyle := r.styles.PaneTitleDim
	if p.Active {
		titleStyle = r.styles.PaneTitle
	}
	title := titleStyle.Render(truncate(p.Title, width/2))

	var count string
	if !p.Initial {
		count = r.styles.Dim.Render(fmt.Sprintf("%d/%d checked", p.Checked, len(p.Results)))
	}

	pad := width - lipgloss.Width(title) - lipgloss.Width(count)
	if pad < 1 {
		pad = 1
	}
	return title + strings.Repeat(" ", pad) + count
}

func (r *Renderer) renderQuery(p PaneView) string {
	prompt := r.styles.Prompt
	if p.Active && p.Section == domain.SectionQuery {
		prompt = r.styles.PromptFocused
	}
	return prompt.Render("> ") + p.Input
}

func (r *Renderer) renderButton(p PaneView) string {
	label := fmt.Sprintf("[ %s ]", p.ButtonLabel)
	switch {
	case p.Active && p.Section == domain.SectionAction:
		if !p.ButtonEnabled {
			return r.styles.ButtonFocused.Faint(true).Render(label)
		}
		return r.styles.ButtonFocused.Render(label)
	case !p.ButtonEnabled:
		return r.styles.ButtonDisabled.Render(label)
	default:
		return r.styles.Button.Render(label)
	}
}

// renderBanner shows the placeholder, unmatched keywords or the result count
func (r *Renderer) renderBanner(p PaneView, width int) string {
	if p.Initial {
		return r.styles.Dim.Render(truncate("Type keywords and press Enter", width))
	}

	var notFound string
	if len(p.Unmatched) > 0 {
		notFound = "Not found: " + strings.Join(p.Unmatched, ", ")
		if hint := suggestionText(p.Unmatched, p.Suggestions); hint != "" {
			notFound += " " + hint
		}
	}

	if p.NoResults {
		text := "No results"
		if notFound != "" {
			text += " · " + notFound
		}
		return r.styles.Warning.Render(truncate(text, width))
	}
	if notFound != "" {
		return r.styles.Warning.Render(truncate(notFound, width))
	}

	text := fmt.Sprintf("%d results", len(p.Results))
	if p.End < len(p.Results) || p.Start > 0 {
		text += fmt.Sprintf("  (%d-%d)", p.Start+1, p.End)
	}
	return r.styles.Dim.Render(truncate(text, width))
}

func suggestionText(unmatched []string, suggestions map[string]string) string {
	var hints []string
	for _, kw := range unmatched {
		if s, ok := suggestions[kw]; ok {
			hints = append(hints, s)
		}
	}
	if len(hints) == 0 {
		return ""
	}
	sort.Strings(hints)
	return "(did you mean " + strings.Join(hints, ", ") + "?)"
}

func (r *Renderer) renderRow(p PaneView, index, width int) string {
	item := p.Results[index]

	box := "[ ] "
	if item.Checked {
		box = "[x] "
	}

	nameWidth := width - CheckboxWidth - WeightWidth - 1
	if nameWidth < 1 {
		nameWidth = 1
	}
	name := runewidth.FillRight(runewidth.Truncate(item.Identity, nameWidth, "…"), nameWidth)
	weight := fmt.Sprintf("%*d", WeightWidth, item.Weight)

	if p.Active && p.Section == domain.SectionList && index == p.Cursor {
		return r.styles.CursorRow.Render(box + name + " " + weight)
	}

	if item.Checked {
		box = r.styles.Checked.Render(box)
	}
	return box + name + " " + r.styles.Weight.Render(weight)
}
