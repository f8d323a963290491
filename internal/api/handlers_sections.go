package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sectiond/internal/section"
)

// handleGetSection returns one section, a loading marker while its
// load is in flight, or 404 once a completed load attempt has
// confirmed absence.
func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if sec, ok := s.store.Get(slug); ok {
		writeJSON(w, http.StatusOK, sec)
		return
	}
	if s.store.Loading(slug) {
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "loading", "slug": slug})
		return
	}
	if s.store.Attempted(slug) {
		jsonError(w, "section not found: "+slug, http.StatusNotFound)
		return
	}

	// First access: kick off the lazy load and report it.
	s.store.Ensure(slug)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "loading", "slug": slug})
}

// handleApplyDelta decodes one delta message and applies it to the
// store. Invalid deltas are rejected without mutation.
func (s *Server) handleApplyDelta(w http.ResponseWriter, r *http.Request) {
	var delta section.Delta
	if err := json.NewDecoder(r.Body).Decode(&delta); err != nil {
		jsonError(w, "invalid delta payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.store.Apply(delta); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "applied",
		"slug":   delta.TargetSlug(),
	})
}
