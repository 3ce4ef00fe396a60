// Package notify reports finished clipboard copies outside the TUI.
package notify

import (
	"fmt"
	"log"
	"strings"

	"github.com/gen2brain/beeep"

	"recipick/internal/eventbus"
)

const appName = "recipick"

// SendFunc delivers a desktop notification
type SendFunc func(title, message string, icon any) error

// Notifier listens for copy results on the bus.
// Failures are logged. Successes raise a desktop notification when enabled.
type Notifier struct {
	desktop     bool
	send        SendFunc
	unsubscribe func()
}

// New subscribes a notifier to bus
func New(bus eventbus.EventBus, desktop bool) *Notifier {
	n := &Notifier{
		desktop: desktop,
		send:    beeep.Notify,
	}
	n.unsubscribe = bus.Subscribe(eventbus.EventCopyCompleted, n.handle)
	return n
}

// SetSendFunc replaces the notification backend
func (n *Notifier) SetSendFunc(fn SendFunc) {
	n.send = fn
}

// Close stops listening
func (n *Notifier) Close() {
	if n.unsubscribe != nil {
		n.unsubscribe()
		n.unsubscribe = nil
	}
}

func (n *Notifier) handle(event eventbus.DomainEvent) {
	ev, ok := event.(eventbus.CopyCompletedEvent)
	if !ok {
		return
	}

	if ev.Err != nil {
		log.Printf("notify: copy from %s failed: %v", ev.Pane, ev.Err)
		return
	}
	log.Printf("notify: copied %d names from %s", len(ev.Names), ev.Pane)

	if !n.desktop {
		return
	}
	if err := n.send(appName, Message(ev), ""); err != nil {
		log.Printf("notify: desktop notification failed: %v", err)
	}
}

// Message is the notification body for a successful copy
func Message(ev eventbus.CopyCompletedEvent) string {
	if ev.Single && len(ev.Names) == 1 {
		return fmt.Sprintf("%s copied", ev.Names[0])
	}
	return fmt.Sprintf("%s: %d recipients copied (%s)", ev.Pane, len(ev.Names), summarize(ev.Names, 3))
}

func summarize(names []string, limit int) string {
	if len(names) <= limit {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:limit], ", ") + fmt.Sprintf(" +%d", len(names)-limit)
}
