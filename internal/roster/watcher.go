package roster

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"recipick/internal/eventbus"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher reloads the candidate source when it changes on disk
type Watcher struct {
	path     string
	encoding string
	bus      eventbus.EventBus
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	pending  bool
	lastSeen time.Time

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for the CSV at path.
// The parent directory is watched so editors that replace the file are seen.
func NewWatcher(path, encoding string, bus eventbus.EventBus) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		path:     filepath.Clean(abs),
		encoding: encoding,
		bus:      bus,
		watcher:  fsw,
		debounce: defaultDebounce,
		stop:     make(chan struct{}),
	}, nil
}

// SetDebounce changes the quiet period before a reload
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start begins watching and returns immediately
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.wg.Add(2)
	go w.processEvents(ctx)
	go w.processPending(ctx)

	log.Printf("roster: watching %s", w.path)
	return nil
}

// Stop ends watching and waits for the goroutines to exit
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
		w.watcher.Close()
	})
	w.wg.Wait()
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("roster: watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	w.pending = true
	w.lastSeen = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processPending(ctx context.Context) {
	defer w.wg.Done()

	interval := w.debounce / 3
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-ticker.C:
			if w.due() {
				w.reload()
			}
		}
	}
}

func (w *Watcher) due() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.pending || time.Since(w.lastSeen) < w.debounce {
		return false
	}
	w.pending = false
	return true
}

func (w *Watcher) reload() {
	candidates, err := Load(w.path, w.encoding)
	if err != nil {
		log.Printf("roster: reload failed: %v", err)
		w.bus.Publish(eventbus.SourceErrorEvent{Path: w.path, Err: err})
		return
	}

	log.Printf("roster: reloaded %d candidates", len(candidates))
	w.bus.Publish(eventbus.CandidatesReloadedEvent{Path: w.path, Candidates: candidates})
}
