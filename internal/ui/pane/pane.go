// Package pane wires the matcher, selection store and focus controller to the
// affordances of one recipient pane.
package pane

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"recipick/internal/clipboard"
	"recipick/internal/domain"
	"recipick/internal/eventbus"
	"recipick/internal/ui/input"
	"recipick/internal/ui/input/types"
	"recipick/internal/ui/logic"
	"recipick/internal/ui/services/navigation"
	"recipick/internal/ui/services/selection"
)

// Options configures a pane
type Options struct {
	Side        domain.PaneSide
	Title       string
	ButtonLabel string
	Delimiter   string
	Sink        clipboard.Sink
	Bus         eventbus.EventBus // optional

	// OnCopySuccess runs after the checked names were written
	OnCopySuccess func(title string, names []string) tea.Cmd
	// OnNameCopy runs after a single name was written
	OnNameCopy func(name string) tea.Cmd

	Debug bool
}

// CopyResultMsg reports the outcome of a clipboard write
type CopyResultMsg struct {
	Side   domain.PaneSide
	Names  []string
	Single bool
	Err    error
}

// Pane is one independent recipient picker
type Pane struct {
	opts      Options
	selection *selection.Service
	focus     *navigation.Service
	input     *input.Handler
	ctx       *input.PaneContext
	active    bool
}

// New creates a pane over candidates
func New(opts Options, candidates []domain.Candidate) *Pane {
	if opts.Delimiter == "" {
		opts.Delimiter = clipboard.DefaultDelimiter
	}

	sel := selection.NewService(candidates)
	focus := navigation.NewService()

	return &Pane{
		opts:      opts,
		selection: sel,
		focus:     focus,
		input:     input.New(),
		ctx:       &input.PaneContext{Selection: sel, Focus: focus},
	}
}

func (p *Pane) Side() domain.PaneSide { return p.opts.Side }
func (p *Pane) Title() string         { return p.opts.Title }
func (p *Pane) ButtonLabel() string   { return p.opts.ButtonLabel }
func (p *Pane) Active() bool          { return p.active }

// SetActive gives or takes the keyboard. The section the pane last had is kept.
func (p *Pane) SetActive(active bool) tea.Cmd {
	p.active = active
	return p.input.SyncFocus(p.focus.Section(), active)
}

// SetCandidates replaces the candidate set and re-derives the results
func (p *Pane) SetCandidates(candidates []domain.Candidate) tea.Cmd {
	p.selection.SetCandidates(candidates)
	return p.sync()
}

// SetSize sets the query input width and the number of visible rows
func (p *Pane) SetSize(width, listHeight int) {
	p.input.SetWidth(width - 4)
	p.focus.SetViewportHeight(listHeight)
}

// HandleKey processes a key for this pane. Actions the pane cannot serve
// (pane switch, quit, help) are returned to the caller.
func (p *Pane) HandleKey(msg tea.KeyMsg) (tea.Cmd, []types.Action) {
	actions, cmd := p.input.HandleKey(msg, p.ctx)

	cmds := []tea.Cmd{cmd}
	var outer []types.Action
	for _, action := range actions {
		if p.opts.Debug {
			log.Printf("processAction[%s]: %T", p.opts.Title, action)
		}
		switch action.(type) {
		case types.SwitchPaneAction, types.QuitAction, types.ToggleHelpAction:
			outer = append(outer, action)
		default:
			cmds = append(cmds, p.processAction(action))
		}
	}
	return tea.Batch(cmds...), outer
}

func (p *Pane) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.UpdateDraftAction:
		p.selection.SetDraft(a.Text)

	case types.ExecuteSearchAction:
		return p.ExecuteSearch(a.FocusResults)

	case types.FocusSectionAction:
		return p.FocusSection(a.Section)

	case types.NavigateAction:
		p.focus.Navigate(navigation.Direction(a.Direction))
		return p.input.SyncFocus(p.focus.Section(), p.active)

	case types.ToggleCheckAction:
		p.ToggleAt(p.focus.Cursor())

	case types.CopyItemAction:
		if name, ok := p.identityAt(p.focus.Cursor()); ok {
			return p.CopyName(name)
		}

	case types.CopySelectionAction:
		return p.CopySelection()
	}
	return nil
}

// ExecuteSearch commits the draft query. With focusResults the first
// result receives focus when there is one.
func (p *Pane) ExecuteSearch(focusResults bool) tea.Cmd {
	ev := p.selection.Commit()
	if p.opts.Debug {
		log.Printf("pane %s: search %q -> %d results, unmatched %v", p.opts.Title, ev.Query, ev.Results, ev.Unmatched)
	}

	p.focus.Sync(p.selection.Identities())
	if focusResults {
		p.focus.EnterList()
	}
	return p.input.SyncFocus(p.focus.Section(), p.active)
}

// FocusSection moves keyboard focus inside the pane. The list can only
// be focused when it has rows.
func (p *Pane) FocusSection(section domain.Section) tea.Cmd {
	switch section {
	case domain.SectionQuery:
		p.focus.FocusQuery()
	case domain.SectionAction:
		p.focus.FocusAction()
	case domain.SectionList:
		p.focus.EnterList()
	}
	return p.input.SyncFocus(p.focus.Section(), p.active)
}

// ToggleAt flips the checked state of the result at index
func (p *Pane) ToggleAt(index int) {
	if name, ok := p.identityAt(index); ok {
		p.selection.Toggle(name)
	}
}

// CopySelection writes the checked names to the clipboard. Each call is
// independent; a copy in flight does not block another.
func (p *Pane) CopySelection() tea.Cmd {
	if !p.ButtonEnabled() {
		return nil
	}
	return p.copyCmd(p.selection.CheckedNames(), false)
}

// CopyName writes a single identity, ignoring the checked set
func (p *Pane) CopyName(name string) tea.Cmd {
	return p.copyCmd([]string{name}, true)
}

func (p *Pane) copyCmd(names []string, single bool) tea.Cmd {
	sink, delim, side := p.opts.Sink, p.opts.Delimiter, p.opts.Side
	return func() tea.Msg {
		err := clipboard.Copy(sink, names, delim)
		return CopyResultMsg{Side: side, Names: names, Single: single, Err: err}
	}
}

// Update handles messages addressed to the pane
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case CopyResultMsg:
		if msg.Side != p.opts.Side {
			return nil
		}
		return p.handleCopyResult(msg)
	}
	return p.input.Update(msg)
}

func (p *Pane) handleCopyResult(msg CopyResultMsg) tea.Cmd {
	if p.opts.Bus != nil {
		p.opts.Bus.Publish(eventbus.CopyCompletedEvent{
			Pane:   p.opts.Title,
			Names:  msg.Names,
			Single: msg.Single,
			Err:    msg.Err,
		})
	}

	// Failures stay silent in the UI
	if msg.Err != nil {
		log.Printf("pane %s: copy failed: %v", p.opts.Title, msg.Err)
		return nil
	}

	if msg.Single {
		if p.opts.OnNameCopy != nil && len(msg.Names) == 1 {
			return p.opts.OnNameCopy(msg.Names[0])
		}
		return nil
	}
	if p.opts.OnCopySuccess != nil {
		return p.opts.OnCopySuccess(p.opts.Title, msg.Names)
	}
	return nil
}

// Mouse

// ClickQuery focuses the query input
func (p *Pane) ClickQuery() tea.Cmd {
	return p.FocusSection(domain.SectionQuery)
}

// ClickButton focuses the button and copies when it is enabled
func (p *Pane) ClickButton() tea.Cmd {
	focus := p.FocusSection(domain.SectionAction)
	return tea.Batch(focus, p.CopySelection())
}

// ClickRow handles a click on a visible list line. The checkbox column
// toggles the row, the name copies it.
func (p *Pane) ClickRow(line int, onCheckbox bool) tea.Cmd {
	index := p.focus.RowAt(line)
	if index < 0 {
		return nil
	}
	p.focus.FocusRow(index)
	focus := p.input.SyncFocus(p.focus.Section(), p.active)

	if onCheckbox {
		p.ToggleAt(index)
		return focus
	}
	name, _ := p.identityAt(index)
	return tea.Batch(focus, p.CopyName(name))
}

// Scroll moves the list viewport by delta rows
func (p *Pane) Scroll(delta int) {
	p.focus.ScrollBy(delta)
}

// View data

func (p *Pane) Draft() string                { return p.selection.Draft() }
func (p *Pane) Results() []domain.ResultItem { return p.selection.Results() }
func (p *Pane) CheckedNames() []string       { return p.selection.CheckedNames() }
func (p *Pane) UnmatchedKeywords() []string  { return p.selection.UnmatchedKeywords() }
func (p *Pane) IsInitial() bool              { return p.selection.IsInitial() }
func (p *Pane) NoResults() bool              { return p.selection.NoResults() }
func (p *Pane) ButtonEnabled() bool          { return p.ctx.ButtonEnabled() }
func (p *Pane) Section() domain.Section      { return p.focus.Section() }
func (p *Pane) Cursor() int                  { return p.focus.Cursor() }
func (p *Pane) VisibleRange() (int, int)     { return p.focus.VisibleRange() }
func (p *Pane) InputView() string            { return p.input.View() }
func (p *Pane) IsTextEntry() bool            { return p.input.IsTextEntry(p.focus.Section()) }
func (p *Pane) ModeName() string             { return p.input.ModeName(p.focus.Section()) }

// Suggestions maps each unmatched keyword to its closest identity
func (p *Pane) Suggestions() map[string]string {
	out := make(map[string]string)
	for _, kw := range p.selection.UnmatchedKeywords() {
		if s, ok := logic.Suggest(p.selection.Candidates(), kw); ok {
			out[kw] = s
		}
	}
	return out
}

func (p *Pane) sync() tea.Cmd {
	p.focus.Sync(p.selection.Identities())
	return p.input.SyncFocus(p.focus.Section(), p.active)
}

func (p *Pane) identityAt(index int) (string, bool) {
	results := p.selection.Results()
	if index < 0 || index >= len(results) {
		return "", false
	}
	return results[index].Identity, true
}
