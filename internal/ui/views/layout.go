package views

import "recipick/internal/domain"

// Screen geometry shared by rendering and mouse hit-testing
const (
	HeaderHeight  = 1
	FooterHeight  = 2 // toast line and key help
	PaneBorder    = 1
	PaneHeadLines = 5 // title, query, button, banner, separator
	CheckboxWidth = 4 // "[x] "
	WeightWidth   = 6

	lineTitle  = 0
	lineQuery  = 1
	lineButton = 2
	lineBanner = 3
)

// Region is the part of a pane under the pointer
type Region int

const (
	RegionNone Region = iota
	RegionTitle
	RegionQuery
	RegionButton
	RegionBanner
	RegionList
)

// Hit describes what lies under a screen cell
type Hit struct {
	Side       domain.PaneSide
	Region     Region
	Line       int  // visible list line for RegionList
	OnCheckbox bool // pointer is on the checkbox column
}

// Layout maps the terminal size to pane geometry
type Layout struct {
	Width  int
	Height int
}

// PaneWidth returns the outer width of one pane
func (l Layout) PaneWidth() int {
	w := l.Width / 2
	if w < PaneBorder*2+CheckboxWidth+WeightWidth+4 {
		w = PaneBorder*2 + CheckboxWidth + WeightWidth + 4
	}
	return w
}

// InnerWidth returns the content width of one pane
func (l Layout) InnerWidth() int {
	return l.PaneWidth() - PaneBorder*2
}

// ListHeight returns the number of visible result rows per pane
func (l Layout) ListHeight() int {
	h := l.Height - HeaderHeight - FooterHeight - PaneBorder*2 - PaneHeadLines
	if h < 1 {
		h = 1
	}
	return h
}

// HitTest resolves the pane and region at screen cell (x, y)
func (l Layout) HitTest(x, y int) (Hit, bool) {
	if x < 0 || y < HeaderHeight {
		return Hit{}, false
	}

	paneW := l.PaneWidth()
	side := domain.PaneLeft
	if x >= paneW {
		side = domain.PaneRight
		x -= paneW
	}
	if x >= paneW {
		return Hit{}, false
	}

	hit := Hit{Side: side}
	row := y - HeaderHeight - PaneBorder
	col := x - PaneBorder
	if row < 0 || col < 0 || col >= l.InnerWidth() {
		return hit, true
	}

	switch {
	case row == lineTitle:
		hit.Region = RegionTitle
	case row == lineQuery:
		hit.Region = RegionQuery
	case row == lineButton:
		hit.Region = RegionButton
	case row == lineBanner:
		hit.Region = RegionBanner
	case row >= PaneHeadLines && row < PaneHeadLines+l.ListHeight():
		hit.Region = RegionList
		hit.Line = row - PaneHeadLines
		hit.OnCheckbox = col < CheckboxWidth
	}
	return hit, true
}
