package selection

import (
	"recipick/internal/domain"
	"recipick/internal/ui/logic"
)

// Service owns the draft and committed queries and the checked set of one pane.
// Results are derived from the committed query on every read.
type Service struct {
	state      *State
	candidates []domain.Candidate
}

// NewService creates a selection service in the initial state
func NewService(candidates []domain.Candidate) *Service {
	return &Service{
		state: &State{
			Checked: make(map[string]bool),
		},
		candidates: candidates,
	}
}

// SetCandidates replaces the candidate set. Checked identities are kept.
func (s *Service) SetCandidates(candidates []domain.Candidate) {
	s.candidates = candidates
}

// Candidates returns the current candidate set
func (s *Service) Candidates() []domain.Candidate {
	return s.candidates
}

// SetDraft updates the live query without touching results
func (s *Service) SetDraft(text string) {
	s.state.Draft = text
}

// Draft returns the live query
func (s *Service) Draft() string {
	return s.state.Draft
}

// CommittedQuery returns the last executed query
func (s *Service) CommittedQuery() string {
	return s.state.Committed
}

// IsInitial reports whether no search has been executed yet
func (s *Service) IsInitial() bool {
	return !s.state.Executed
}

// Commit freezes the draft and checks every match, discarding prior checks
func (s *Service) Commit() CommittedEvent {
	s.state.Committed = s.state.Draft
	s.state.Executed = true

	matched := logic.Match(s.candidates, s.state.Committed)
	s.state.Checked = make(map[string]bool, len(matched))
	for _, c := range matched {
		s.state.Checked[c.Identity] = true
	}

	return CommittedEvent{
		Query:     s.state.Committed,
		Results:   len(matched),
		Unmatched: s.UnmatchedKeywords(),
	}
}

// Toggle flips identity when it is part of the current results
func (s *Service) Toggle(identity string) bool {
	if !s.inResults(identity) {
		return false
	}
	if s.state.Checked[identity] {
		delete(s.state.Checked, identity)
	} else {
		s.state.Checked[identity] = true
	}
	return true
}

// IsChecked reports checked-set membership
func (s *Service) IsChecked(identity string) bool {
	return s.state.Checked[identity]
}

// Results returns the committed matches annotated with their checked flag.
// It is nil before the first commit.
func (s *Service) Results() []domain.ResultItem {
	if !s.state.Executed {
		return nil
	}

	matched := logic.Match(s.candidates, s.state.Committed)
	items := make([]domain.ResultItem, len(matched))
	for i, c := range matched {
		items[i] = domain.ResultItem{Candidate: c, Checked: s.state.Checked[c.Identity]}
	}
	return items
}

// Identities returns the identity sequence of the current results
func (s *Service) Identities() []string {
	return domain.Identities(s.Results())
}

// ResultCount returns the number of current results
func (s *Service) ResultCount() int {
	if !s.state.Executed {
		return 0
	}
	return len(logic.Match(s.candidates, s.state.Committed))
}

// NoResults reports an executed search that matched nothing
func (s *Service) NoResults() bool {
	return s.state.Executed && s.ResultCount() == 0
}

// CheckedNames returns the checked identities present in the results, in result order
func (s *Service) CheckedNames() []string {
	var names []string
	for _, item := range s.Results() {
		if item.Checked {
			names = append(names, item.Identity)
		}
	}
	return names
}

// CheckedCount returns len(CheckedNames())
func (s *Service) CheckedCount() int {
	return len(s.CheckedNames())
}

// UnmatchedKeywords lists committed keywords matching no candidate
func (s *Service) UnmatchedKeywords() []string {
	if !s.state.Executed {
		return nil
	}
	return logic.UnmatchedKeywords(s.candidates, s.state.Committed)
}

func (s *Service) inResults(identity string) bool {
	for _, item := range s.Results() {
		if item.Identity == identity {
			return true
		}
	}
	return false
}
