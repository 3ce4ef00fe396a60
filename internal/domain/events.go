package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCandidatesLoaded   EventType = "CandidatesLoaded"
	EventCandidatesReloaded EventType = "CandidatesReloaded"
	EventSourceError        EventType = "SourceError"
	EventCopyCompleted      EventType = "CopyCompleted"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CandidatesLoadedEvent is emitted once the candidate source has been read at startup
type CandidatesLoadedEvent struct {
	Path  string
	Count int
}

func (e CandidatesLoadedEvent) Type() EventType { return EventCandidatesLoaded }

// CandidatesReloadedEvent is emitted when the candidate source changed on disk and was re-read
type CandidatesReloadedEvent struct {
	Path       string
	Candidates []Candidate
}

func (e CandidatesReloadedEvent) Type() EventType { return EventCandidatesReloaded }

// SourceErrorEvent is emitted when re-reading the candidate source fails
type SourceErrorEvent struct {
	Path string
	Err  error
}

func (e SourceErrorEvent) Type() EventType { return EventSourceError }

// CopyCompletedEvent is emitted after every clipboard write attempt
type CopyCompletedEvent struct {
	Pane   string   // pane title
	Names  []string // identities written
	Single bool     // true for a direct name copy
	Err    error
}

func (e CopyCompletedEvent) Type() EventType { return EventCopyCompleted }
