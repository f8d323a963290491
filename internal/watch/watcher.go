// Package watch regenerates sections when their source documents
// change and feeds the results into the store as deltas.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"sectiond/internal/pipeline"
	"sectiond/internal/section"
	"sectiond/internal/store"
)

// Watcher maps filesystem events on the source directory to
// section_upsert/section_remove deltas.
type Watcher struct {
	fsw      *fsnotify.Watcher
	runner   *pipeline.Runner
	store    *store.Store
	log      *slog.Logger
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a watcher over dir. Events for the same file within the
// debounce window coalesce into a single regeneration.
func New(runner *pipeline.Runner, st *store.Store, dir string, debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	return &Watcher{
		fsw:      fsw,
		runner:   runner,
		store:    st,
		log:      log,
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Run consumes filesystem events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	defer w.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			name := filepath.Base(ev.Name)
			if !pipeline.IsSource(name) {
				continue
			}
			switch {
			case ev.Op&(fsnotify.Write|fsnotify.Create) != 0:
				w.schedule(name)
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				w.remove(name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() {
	w.fsw.Close()
}

func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[name]; ok {
		t.Stop()
	}
	w.timers[name] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, name)
		w.mu.Unlock()
		w.regenerate(name)
	})
}

func (w *Watcher) regenerate(name string) {
	src := pipeline.Source{Slug: pipeline.SlugFor(name), File: name}
	sec, err := w.runner.Process(src)
	if err != nil {
		w.log.Error("regenerate failed", "file", name, "error", err)
		return
	}
	if err := w.store.Apply(section.Delta{Kind: section.DeltaSectionUpsert, Section: sec}); err != nil {
		w.log.Error("apply upsert failed", "slug", src.Slug, "error", err)
		return
	}
	w.log.Info("section regenerated", "slug", src.Slug, "tabs", len(sec.Tabs))
}

func (w *Watcher) remove(name string) {
	slug := pipeline.SlugFor(name)
	if err := w.store.Apply(section.Delta{Kind: section.DeltaSectionRemove, Slug: slug}); err != nil {
		w.log.Error("apply remove failed", "slug", slug, "error", err)
		return
	}
	w.log.Info("section removed", "slug", slug)
}
