package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"recipick/internal/clipboard"
	"recipick/internal/config"
	"recipick/internal/domain"
	"recipick/internal/eventbus"
	"recipick/internal/roster"
	"recipick/internal/ui/coordinator"
	inputtypes "recipick/internal/ui/input/types"
	"recipick/internal/ui/pane"
	"recipick/internal/ui/toast"
	"recipick/internal/ui/views"
)

// LoaderFunc reads the candidate set
type LoaderFunc func() ([]domain.Candidate, error)

// Options configures the UI model
type Options struct {
	Config *config.Config
	Bus    eventbus.EventBus
	Sink   clipboard.Sink
	Loader LoaderFunc // defaults to roster.Load on Config.CSVPath
	Debug  bool
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	loader LoaderFunc
	debug  bool

	width  int
	height int

	loading       bool
	loadErr       error
	sourceWarning string
	candidates    []domain.Candidate

	coord    *coordinator.Coordinator
	toast    toast.Model
	keys     KeyMap
	help     help.Model
	renderer *views.Renderer
	helpOps  *HelpOps

	inPagerMode bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		bus:      opts.Bus,
		config:   cfg,
		loader:   opts.Loader,
		debug:    opts.Debug,
		loading:  true,
		toast:    toast.New(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		renderer: views.NewRenderer(),
		helpOps:  NewHelpOps(),
	}
	if m.loader == nil {
		m.loader = func() ([]domain.Candidate, error) {
			return roster.Load(cfg.CSVPath, cfg.Encoding)
		}
	}

	paneOptions := func(pc config.PaneConfig) pane.Options {
		return pane.Options{
			Title:         pc.Title,
			ButtonLabel:   pc.ButtonLabel,
			Delimiter:     cfg.Delimiter,
			Sink:          opts.Sink,
			Bus:           opts.Bus,
			OnCopySuccess: m.copySucceeded,
			OnNameCopy:    m.nameCopied,
			Debug:         opts.Debug,
		}
	}
	m.coord = coordinator.NewCoordinator(paneOptions(cfg.To), paneOptions(cfg.CC), nil)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init starts loading the candidate source
func (m *Model) Init() tea.Cmd {
	loader := m.loader
	return tea.Batch(
		func() tea.Msg {
			candidates, err := loader()
			return candidatesLoadedMsg{candidates: candidates, err: err}
		},
		m.coord.Init(),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case candidatesLoadedMsg:
		return m, m.handleLoaded(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleLoaded(msg candidatesLoadedMsg) tea.Cmd {
	m.loading = false
	if msg.err != nil {
		log.Printf("load failed: %v", msg.err)
		m.loadErr = msg.err
		return nil
	}

	log.Printf("loaded %d candidates from %s", len(msg.candidates), m.config.CSVPath)
	m.candidates = msg.candidates
	if m.bus != nil {
		m.bus.Publish(eventbus.CandidatesLoadedEvent{Path: m.config.CSVPath, Count: len(msg.candidates)})
	}
	return m.coord.SetCandidates(msg.candidates)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	// Loading and error screens only know how to quit
	if m.loading || m.loadErr != nil {
		if key.Matches(msg, m.keys.Quit) || msg.Type == tea.KeyEsc {
			return tea.Quit
		}
		return nil
	}

	cmd, actions := m.coord.HandleKey(msg)
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

// processAction handles actions no pane can serve
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	if m.debug {
		log.Printf("processAction: %T", action)
	}

	switch action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			return nil
		}
		return m.fetchHelpPager(RenderHelp(m.keys.Markdown()))
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.loading || m.loadErr != nil {
		return nil
	}

	layout := views.Layout{Width: m.width, Height: m.height}
	hit, ok := layout.HitTest(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		target := m.coord.Active()
		if ok {
			target = m.coord.Pane(hit.Side)
		}
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		target.Scroll(delta)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || !ok {
		return nil
	}

	claim := m.coord.Claim(hit.Side)
	p := m.coord.Pane(hit.Side)

	var cmd tea.Cmd
	switch hit.Region {
	case views.RegionQuery:
		cmd = p.ClickQuery()
	case views.RegionButton:
		cmd = p.ClickButton()
	case views.RegionList:
		cmd = p.ClickRow(hit.Line, hit.OnCheckbox)
	}
	return tea.Batch(claim, cmd)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case showToastMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Show(msg.text)
		return m, cmd

	case toast.HideMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case pane.CopyResultMsg:
		return m, m.coord.Update(msg)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Cursor blink and other input messages
		return m, m.coord.Update(msg)
	}
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch ev := event.(type) {
	case eventbus.CandidatesReloadedEvent:
		if m.loading || m.loadErr != nil {
			return nil
		}
		log.Printf("candidates reloaded: %d", len(ev.Candidates))
		m.candidates = ev.Candidates
		m.sourceWarning = ""
		return m.coord.SetCandidates(ev.Candidates)

	case eventbus.SourceErrorEvent:
		m.sourceWarning = fmt.Sprintf("reload failed: %v", ev.Err)
	}
	return nil
}

func (m *Model) copySucceeded(title string, names []string) tea.Cmd {
	return func() tea.Msg {
		return showToastMsg{text: fmt.Sprintf("%s recipients copied", title)}
	}
}

func (m *Model) nameCopied(name string) tea.Cmd {
	return func() tea.Msg {
		return showToastMsg{text: fmt.Sprintf("%s copied", name)}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) updateViewportHeight() {
	layout := views.Layout{Width: m.width, Height: m.height}
	m.coord.SetSize(layout.InnerWidth(), layout.ListHeight())
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Loading:        m.loading,
		Source:         m.config.CSVPath,
		LoadErr:        m.loadErr,
		SourceWarning:  m.sourceWarning,
		CandidateCount: len(m.candidates),
		Toast:          m.toast.Message(),
		ToastVisible:   m.toast.Visible(),
	}

	for _, side := range []domain.PaneSide{domain.PaneLeft, domain.PaneRight} {
		p := m.coord.Pane(side)
		start, end := p.VisibleRange()
		results := p.Results()
		state.Panes[side] = views.PaneView{
			Title:         p.Title(),
			ButtonLabel:   p.ButtonLabel(),
			Input:         p.InputView(),
			Active:        p.Active(),
			Section:       p.Section(),
			ButtonEnabled: p.ButtonEnabled(),
			Initial:       p.IsInitial(),
			NoResults:     p.NoResults(),
			Unmatched:     p.UnmatchedKeywords(),
			Suggestions:   p.Suggestions(),
			Results:       results,
			Start:         start,
			End:           end,
			Cursor:        p.Cursor(),
			Checked:       len(p.CheckedNames()),
		}
	}

	state.HelpLine = m.help.View(m.keys.forSection(m.coord.Active().Section()))
	return state
}
