// Package coordinator owns the two recipient panes and the pane focus switch.
package coordinator

import (
	tea "github.com/charmbracelet/bubbletea"

	"recipick/internal/domain"
	"recipick/internal/ui/input/types"
	"recipick/internal/ui/pane"
)

// Coordinator manages the To and CC panes and routes input to the active one
type Coordinator struct {
	panes  [2]*pane.Pane
	active domain.PaneSide
}

// NewCoordinator creates the coordinator. Both panes share candidates but
// keep their own selection and focus state. The left pane starts active.
func NewCoordinator(left, right pane.Options, candidates []domain.Candidate) *Coordinator {
	left.Side = domain.PaneLeft
	right.Side = domain.PaneRight

	c := &Coordinator{
		panes: [2]*pane.Pane{
			pane.New(left, candidates),
			pane.New(right, candidates),
		},
		active: domain.PaneLeft,
	}
	return c
}

// Init focuses the active pane
func (c *Coordinator) Init() tea.Cmd {
	return c.Switch(c.active)
}

// Pane returns the pane on side
func (c *Coordinator) Pane(side domain.PaneSide) *pane.Pane {
	return c.panes[side]
}

// Active returns the pane owning the keyboard
func (c *Coordinator) Active() *pane.Pane {
	return c.panes[c.active]
}

// ActiveSide returns the side owning the keyboard
func (c *Coordinator) ActiveSide() domain.PaneSide {
	return c.active
}

// Switch gives the keyboard to side. The destination pane regains focus
// on whichever section it last had.
func (c *Coordinator) Switch(side domain.PaneSide) tea.Cmd {
	if side != domain.PaneLeft && side != domain.PaneRight {
		return nil
	}
	c.active = side
	return tea.Batch(
		c.panes[side].SetActive(true),
		c.panes[side.Other()].SetActive(false),
	)
}

// SetCandidates hands a new candidate set to both panes
func (c *Coordinator) SetCandidates(candidates []domain.Candidate) tea.Cmd {
	return tea.Batch(
		c.panes[domain.PaneLeft].SetCandidates(candidates),
		c.panes[domain.PaneRight].SetCandidates(candidates),
	)
}

// SetSize sizes both panes
func (c *Coordinator) SetSize(paneWidth, listHeight int) {
	for _, p := range c.panes {
		p.SetSize(paneWidth, listHeight)
	}
}

// HandleKey routes a key to the active pane. Pane switches are applied here;
// other global actions are returned to the caller.
func (c *Coordinator) HandleKey(msg tea.KeyMsg) (tea.Cmd, []types.Action) {
	cmd, actions := c.Active().HandleKey(msg)

	cmds := []tea.Cmd{cmd}
	var outer []types.Action
	for _, action := range actions {
		if sw, ok := action.(types.SwitchPaneAction); ok {
			cmds = append(cmds, c.Switch(sw.Side))
			continue
		}
		outer = append(outer, action)
	}
	return tea.Batch(cmds...), outer
}

// Update forwards non-key messages. Copy results go to their own pane,
// everything else to the active pane.
func (c *Coordinator) Update(msg tea.Msg) tea.Cmd {
	if res, ok := msg.(pane.CopyResultMsg); ok {
		if res.Side != domain.PaneLeft && res.Side != domain.PaneRight {
			return nil
		}
		return c.panes[res.Side].Update(res)
	}
	return c.Active().Update(msg)
}

// Claim makes the pane on side active, as a click inside it does
func (c *Coordinator) Claim(side domain.PaneSide) tea.Cmd {
	if side == c.active {
		return nil
	}
	return c.Switch(side)
}
