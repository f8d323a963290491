// Package pipeline runs the extraction pipeline over a directory of
// source documents and writes the serialized sections. Extraction is
// pure per document, so documents are processed concurrently with no
// coordination beyond a semaphore.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"

	"sectiond/internal/enrich"
	"sectiond/internal/extract"
	"sectiond/internal/section"
)

// Source names one document to extract.
type Source struct {
	Slug string
	File string // filename within the source dir
}

// Result is the outcome for one source document.
type Result struct {
	Source  Source
	Section *section.Section
	Err     error
}

// Runner extracts sections from a source directory.
type Runner struct {
	dir     string
	workers int
	log     *slog.Logger
	md      goldmark.Markdown
}

// NewRunner creates a runner over dir with the given worker count.
func NewRunner(dir string, workers int, log *slog.Logger) *Runner {
	if workers <= 0 {
		workers = 4
	}
	return &Runner{dir: dir, workers: workers, log: log, md: goldmark.New()}
}

var slugPrefixRe = regexp.MustCompile(`^\d{1,2}-`)

// SlugFor derives the section slug from a source filename: the
// extension and any leading "NN-" ordering prefix are dropped.
func SlugFor(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return slugPrefixRe.ReplaceAllString(base, "")
}

// IsSource reports whether a filename is an extractable document.
func IsSource(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".md", ".markdown":
		return true
	}
	return false
}

// Discover lists the extractable documents in the source directory in
// name order.
func (r *Runner) Discover() ([]Source, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read source dir: %w", err)
	}
	var sources []Source
	for _, e := range entries {
		if e.IsDir() || !IsSource(e.Name()) {
			continue
		}
		sources = append(sources, Source{Slug: SlugFor(e.Name()), File: e.Name()})
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].File < sources[j].File })
	return sources, nil
}

// Run extracts every source with bounded concurrency. Individual
// failures are recorded per result; the batch never aborts.
func (r *Runner) Run(ctx context.Context, sources []Source) []Result {
	results := make([]Result, len(sources))
	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, src Source) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := ctx.Err(); err != nil {
				results[i] = Result{Source: src, Err: err}
				return
			}
			sec, err := r.Process(src)
			results[i] = Result{Source: src, Section: sec, Err: err}
		}(i, src)
	}
	wg.Wait()
	return results
}

// Process extracts and enriches a single document. Markdown sources
// are rendered to HTML first; extraction itself never fails, so the
// only errors here are read and render failures.
func (r *Runner) Process(src Source) (*section.Section, error) {
	raw, err := os.ReadFile(filepath.Join(r.dir, src.File))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.File, err)
	}

	doc := string(raw)
	switch strings.ToLower(filepath.Ext(src.File)) {
	case ".md", ".markdown":
		var buf bytes.Buffer
		if err := r.md.Convert(raw, &buf); err != nil {
			return nil, fmt.Errorf("render markdown %s: %w", src.File, err)
		}
		doc = buf.String()
	}

	sec := extract.Extract(src.Slug, src.File, doc)
	for ti := range sec.Tabs {
		tab := &sec.Tabs[ti]
		for gi := range tab.Groups {
			enrich.Enrich(tab.ID, gi, &tab.Groups[gi])
		}
	}
	return sec, nil
}

// WriteAll writes one JSON file per successfully extracted section.
func WriteAll(outDir string, results []Result) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, res := range results {
		if res.Err != nil || res.Section == nil {
			continue
		}
		data, err := res.Section.Encode()
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, res.Source.Slug+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
