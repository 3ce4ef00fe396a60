package navigation

import (
	"slices"

	"recipick/internal/domain"
)

const defaultViewportHeight = 10

// Service is the per-pane focus controller: which section owns the keyboard,
// where the list cursor is and which rows are scrolled into view.
type Service struct {
	state *State
}

// NewService creates a focus controller focused on the query input
func NewService() *Service {
	return &Service{
		state: &State{
			Section:        domain.SectionQuery,
			Cursor:         -1,
			ViewportHeight: defaultViewportHeight,
		},
	}
}

// Section returns the focused section
func (s *Service) Section() domain.Section {
	return s.state.Section
}

// Cursor returns the list cursor
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns the first visible row
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns the number of visible rows
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// Count returns the number of rows the cursor can address
func (s *Service) Count() int {
	return len(s.state.Identities)
}

// SetViewportHeight updates the number of visible rows
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.clampOffset()
	s.ensureVisible()
}

// Sync records the current identity sequence. When it differs from the
// previous one the cursor resets to the first row (or -1 when empty) and
// a focused list with no rows falls back to the action section.
// It reports whether a reset happened.
func (s *Service) Sync(identities []string) bool {
	if slices.Equal(s.state.Identities, identities) {
		return false
	}

	s.state.Identities = slices.Clone(identities)
	s.state.ViewportOffset = 0
	if len(identities) > 0 {
		s.state.Cursor = 0
	} else {
		s.state.Cursor = -1
		if s.state.Section == domain.SectionList {
			s.state.Section = domain.SectionAction
		}
	}
	return true
}

// FocusQuery moves focus to the query input
func (s *Service) FocusQuery() {
	s.state.Section = domain.SectionQuery
}

// FocusAction moves focus to the action button
func (s *Service) FocusAction() {
	s.state.Section = domain.SectionAction
}

// EnterList focuses the first row. It does nothing without rows.
func (s *Service) EnterList() bool {
	return s.FocusRow(0)
}

// FocusRow focuses the list at index
func (s *Service) FocusRow(index int) bool {
	if s.Count() == 0 || index < 0 || index >= s.Count() {
		return false
	}
	s.state.Section = domain.SectionList
	s.state.Cursor = index
	s.ensureVisible()
	return true
}

// Navigate moves the cursor inside the list. Moving up from the first row
// leaves the list for the action section.
func (s *Service) Navigate(direction Direction) {
	if s.state.Section != domain.SectionList || s.Count() == 0 {
		return
	}

	switch direction {
	case DirectionUp:
		s.moveUp()
	case DirectionDown:
		s.moveTo(s.state.Cursor + 1)
	case DirectionPageUp:
		s.moveTo(s.state.Cursor - s.pageSize())
	case DirectionPageDown:
		s.moveTo(s.state.Cursor + s.pageSize())
	case DirectionHome:
		s.moveTo(0)
	case DirectionEnd:
		s.moveTo(s.Count() - 1)
	}
}

// ScrollBy moves the viewport without moving the cursor
func (s *Service) ScrollBy(delta int) {
	s.state.ViewportOffset += delta
	s.clampOffset()
}

// RowAt maps a visible line to a row index, or -1
func (s *Service) RowAt(line int) int {
	if line < 0 || line >= s.state.ViewportHeight {
		return -1
	}
	index := s.state.ViewportOffset + line
	if index >= s.Count() {
		return -1
	}
	return index
}

// VisibleRange returns the half-open range of rows in view
func (s *Service) VisibleRange() (int, int) {
	start := s.state.ViewportOffset
	end := start + s.state.ViewportHeight
	if end > s.Count() {
		end = s.Count()
	}
	if start > end {
		start = end
	}
	return start, end
}

func (s *Service) moveUp() {
	if s.state.Cursor <= 0 {
		s.state.Section = domain.SectionAction
		return
	}
	s.moveTo(s.state.Cursor - 1)
}

func (s *Service) moveTo(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

func (s *Service) pageSize() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if last := s.Count() - 1; index > last {
		return last
	}
	return index
}

func (s *Service) clampOffset() {
	maxOffset := s.Count() - s.state.ViewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.state.ViewportOffset > maxOffset {
		s.state.ViewportOffset = maxOffset
	}
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < 0 {
		return
	}
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
