// Package scheduler owns the content-item lifecycle: it queues generated
// items with randomized due times, posts the ones that are due, retries
// failures with a fixed backoff and persists every mutation to the queue
// store.
package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/dronepost/internal/models"
	"github.com/maheshrc27/dronepost/internal/service"
	"github.com/maheshrc27/dronepost/internal/store"
)

// Config names every collaborator the engine depends on. There are no
// package-level singletons: construct once, pass in.
type Config struct {
	Generator service.ContentGenerator
	Publisher service.TiktokService
	Video     service.VideoProcessor
	Store     *store.QueueStore

	// Triggers defaults to DefaultTriggers when empty.
	Triggers []Trigger
	// Now defaults to time.Now; tests inject a fixed clock.
	Now func() time.Time
}

// Engine is the posting queue. All state mutation happens inside a method
// holding mu, so processing cycles never overlap even though the HTTP
// surface and the run loop share the engine.
type Engine struct {
	gen      service.ContentGenerator
	pub      service.TiktokService
	vid      service.VideoProcessor
	store    *store.QueueStore
	triggers []Trigger
	now      func() time.Time

	mu     sync.Mutex
	queue  []*models.ContentItem
	posted []*models.ContentItem
}

func New(cfg Config) *Engine {
	e := &Engine{
		gen:      cfg.Generator,
		pub:      cfg.Publisher,
		vid:      cfg.Video,
		store:    cfg.Store,
		triggers: cfg.Triggers,
		now:      cfg.Now,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if len(e.triggers) == 0 {
		e.triggers = DefaultTriggers()
	}

	e.queue, e.posted = e.store.Load()
	return e
}

// persist flushes in-memory state. Failures are logged, never fatal: the
// in-memory collections stay authoritative until the next successful save.
// Callers must hold mu.
func (e *Engine) persist() {
	if err := e.store.Save(e.queue, e.posted); err != nil {
		slog.Info(err.Error())
	}
}

// Flush persists current state, used for the final save on shutdown.
func (e *Engine) Flush() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.persist()
}

// Items returns a deep-copied snapshot of the pending queue. Callers marshal
// snapshots outside the lock, so they must not alias live queue state.
func (e *Engine) Items() []*models.ContentItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]*models.ContentItem, len(e.queue))
	for i, item := range e.queue {
		items[i] = item.Clone()
	}
	return items
}

// Posted returns a deep-copied snapshot of the posted archive.
func (e *Engine) Posted() []*models.ContentItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]*models.ContentItem, len(e.posted))
	for i, item := range e.posted {
		items[i] = item.Clone()
	}
	return items
}

// RemovePost drops a pending item by id. Posted items are never removed.
func (e *Engine) RemovePost(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, item := range e.queue {
		if item.ID == id {
			e.queue = append(e.queue[:i], e.queue[i+1:]...)
			e.persist()
			return true
		}
	}
	return false
}
