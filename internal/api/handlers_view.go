package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sectiond/internal/policy"
)

type viewRequest struct {
	Profile struct {
		Role     string `json:"role"`
		Mode     string `json:"mode"`
		Maturity string `json:"maturity"`
	} `json:"profile"`
	TabID string `json:"tabId"`
}

type viewResponse struct {
	Slug    string               `json:"slug"`
	TabID   string               `json:"tabId"`
	Profile policy.Profile       `json:"profile"`
	Groups  []policy.RankedGroup `json:"groups"`
}

// handleView evaluates the policy engine for one tab under a viewer
// profile and returns the visible groups in ranked order. Omitted
// profile dimensions fall back to defaults; an omitted tabId selects
// the first tab.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req viewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid view payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := policy.ParseProfile(req.Profile.Role, req.Profile.Mode, req.Profile.Maturity)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sec, ok := s.store.Get(slug)
	if !ok {
		if s.store.Loading(slug) {
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "loading", "slug": slug})
			return
		}
		if s.store.Attempted(slug) {
			jsonError(w, "section not found: "+slug, http.StatusNotFound)
			return
		}
		s.store.Ensure(slug)
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "loading", "slug": slug})
		return
	}

	tabID := req.TabID
	if tabID == "" && len(sec.Tabs) > 0 {
		tabID = sec.Tabs[0].ID
	}
	tab, ok := sec.Tab(tabID)
	if !ok {
		jsonError(w, "tab not found: "+tabID, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, viewResponse{
		Slug:    slug,
		TabID:   tab.ID,
		Profile: profile,
		Groups:  s.engine.Rank(profile, tab),
	})
}

// handleProfiles lists the named presets and per-section default
// profiles.
func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"presets":         policy.Presets,
		"sectionDefaults": policy.SectionDefaults,
	})
}
