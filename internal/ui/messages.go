package ui

import (
	"recipick/internal/domain"
	"recipick/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// candidatesLoadedMsg carries the result of the initial load
type candidatesLoadedMsg struct {
	candidates []domain.Candidate
	err        error
}

// showToastMsg asks the model to display a transient message
type showToastMsg struct {
	text string
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
