// Package store is the in-memory section cache: sections are loaded
// lazily by slug, callers subscribe to change notifications, and
// incremental deltas mutate sections copy-on-write.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sectiond/internal/section"
)

// Loader fetches the serialized form of one section. Returning an
// error (or nil) marks the slug as confirmed absent; the store never
// exposes a partial section.
type Loader func(ctx context.Context, slug string) (*section.Section, error)

const loadTimeout = 30 * time.Second

type listenerEntry struct {
	id int
	fn func()
}

// Store owns the slug -> section mapping, the per-slug in-flight load
// state, and the per-slug listener sets. It is created once per
// process and torn down with it.
type Store struct {
	loader Loader
	log    *slog.Logger

	mu        sync.Mutex
	sections  map[string]*section.Section
	loading   map[string]bool
	attempted map[string]bool
	listeners map[string][]listenerEntry
	nextID    int
}

// New creates an empty store backed by loader.
func New(loader Loader, log *slog.Logger) *Store {
	return &Store{
		loader:    loader,
		log:       log,
		sections:  make(map[string]*section.Section),
		loading:   make(map[string]bool),
		attempted: make(map[string]bool),
		listeners: make(map[string][]listenerEntry),
	}
}

// Get returns the current section for slug. The result must be treated
// as read-only: deltas replace sections rather than mutating them, so
// a returned pointer is a stable snapshot. Get does not trigger a
// load.
func (s *Store) Get(slug string) (*section.Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec, ok := s.sections[slug]
	return sec, ok
}

// Loading reports whether a load for slug is in flight.
func (s *Store) Loading(slug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading[slug]
}

// Attempted reports whether a load for slug has completed at least
// once. Absent + not loading + attempted means confirmed absent.
func (s *Store) Attempted(slug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempted[slug]
}

// Ensure kicks off an asynchronous load for slug unless the section is
// already present or a load is in flight. Concurrent callers observe
// the same pending load; exactly one loader call results.
func (s *Store) Ensure(slug string) {
	s.mu.Lock()
	s.ensureLocked(slug)
	s.mu.Unlock()
}

func (s *Store) ensureLocked(slug string) {
	if slug == "" || s.sections[slug] != nil || s.loading[slug] {
		return
	}
	s.loading[slug] = true
	go s.load(slug)
}

func (s *Store) load(slug string) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	sec, err := s.loader(ctx, slug)

	s.mu.Lock()
	delete(s.loading, slug)
	s.attempted[slug] = true
	if err == nil && sec != nil {
		s.sections[slug] = sec
	} else if err != nil {
		// A failed load leaves the slug absent; listeners are still
		// notified so dependents can re-check.
		s.log.Warn("section load failed", "slug", slug, "error", err)
	}
	fns := s.listenerFnsLocked(slug)
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Subscribe registers a change listener for slug and triggers a lazy
// load if the section is not yet present. The returned function
// removes the listener. Listeners are invoked synchronously in
// subscription order and must not mutate the store from within the
// callback.
func (s *Store) Subscribe(slug string, fn func()) (unsubscribe func()) {
	s.mu.Lock()
	s.ensureLocked(slug)
	s.nextID++
	id := s.nextID
	s.listeners[slug] = append(s.listeners[slug], listenerEntry{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		entries := s.listeners[slug]
		for i, e := range entries {
			if e.id == id {
				s.listeners[slug] = append(entries[:i:i], entries[i+1:]...)
				break
			}
		}
		if len(s.listeners[slug]) == 0 {
			delete(s.listeners, slug)
		}
	}
}

func (s *Store) listenerFnsLocked(slug string) []func() {
	entries := s.listeners[slug]
	if len(entries) == 0 {
		return nil
	}
	fns := make([]func(), len(entries))
	for i, e := range entries {
		fns[i] = e.fn
	}
	return fns
}

// Apply mutates the store with one delta and synchronously notifies
// every listener subscribed to the affected slug. An invalid delta is
// rejected with no mutation. Deltas addressing a slug that is not in
// the store (other than whole-section upserts) are silently dropped.
func (s *Store) Apply(d section.Delta) error {
	if err := d.Validate(); err != nil {
		return err
	}
	slug := d.TargetSlug()

	s.mu.Lock()
	switch d.Kind {
	case section.DeltaSectionUpsert:
		s.sections[slug] = d.Section.Clone()
		s.attempted[slug] = true
	case section.DeltaSectionRemove:
		delete(s.sections, slug)
	default:
		sec, ok := s.sections[slug]
		if !ok {
			s.mu.Unlock()
			return nil
		}
		switch d.Kind {
		case section.DeltaTabUpsert:
			s.sections[slug] = sec.WithTab(*d.Tab)
		case section.DeltaTabRemove:
			s.sections[slug] = sec.WithoutTab(d.TabID)
		case section.DeltaGroupPatch:
			s.sections[slug] = sec.WithGroupPatch(d.TabID, d.GroupIndex, *d.Group)
		}
	}
	fns := s.listenerFnsLocked(slug)
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return nil
}

// Slugs returns the slugs currently resident in the store.
func (s *Store) Slugs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.sections))
	for slug := range s.sections {
		out = append(out, slug)
	}
	return out
}
