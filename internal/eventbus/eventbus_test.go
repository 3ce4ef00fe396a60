package eventbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"recipick/internal/domain"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventCandidatesReloaded, func(e DomainEvent) { got <- e })

	b.Publish(CandidatesReloadedEvent{Path: "list.csv", Candidates: []domain.Candidate{{Identity: "a", Weight: 1}}})

	select {
	case e := <-got:
		ev, ok := e.(CandidatesReloadedEvent)
		require.True(t, ok)
		require.Equal(t, "list.csv", ev.Path)
		require.Len(t, ev.Candidates, 1)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscribersOnlyReceiveTheirType(t *testing.T) {
	b := New()
	defer b.Close()

	reloaded := make(chan DomainEvent, 1)
	failed := make(chan DomainEvent, 1)
	b.Subscribe(EventCandidatesReloaded, func(e DomainEvent) { reloaded <- e })
	b.Subscribe(EventSourceError, func(e DomainEvent) { failed <- e })

	b.Publish(SourceErrorEvent{Path: "x.csv", Err: errors.New("boom")})

	select {
	case <-failed:
	case <-time.After(time.Second):
		t.Fatal("error event was not delivered")
	}
	select {
	case e := <-reloaded:
		t.Fatalf("unexpected delivery: %v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	first := make(chan struct{}, 4)
	second := make(chan struct{}, 4)
	unsubscribe := b.Subscribe(EventCopyCompleted, func(DomainEvent) { first <- struct{}{} })
	b.Subscribe(EventCopyCompleted, func(DomainEvent) { second <- struct{}{} })

	unsubscribe()
	b.Publish(CopyCompletedEvent{Pane: "To", Names: []string{"a"}})

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber was not called")
	}
	select {
	case <-first:
		t.Fatal("unsubscribed handler was called")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan struct{}, 1)
	b.Subscribe(EventCandidatesLoaded, func(DomainEvent) { panic("bad handler") })
	b.Subscribe(EventCandidatesLoaded, func(DomainEvent) { got <- struct{}{} })

	b.Publish(CandidatesLoadedEvent{Path: "a.csv", Count: 3})

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("dispatch stopped after panic")
	}
}

func TestPublishAfterCloseDoesNotBlock(t *testing.T) {
	b := New()
	b.Close()

	done := make(chan struct{})
	go func() {
		b.Publish(CandidatesLoadedEvent{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked after Close")
	}
}
