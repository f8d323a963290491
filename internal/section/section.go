// Package section defines the extracted content model: one Section per
// source document, holding ordered Tabs, each holding ordered Groups.
package section

import (
	"encoding/json"
	"fmt"
)

// Group is the smallest addressable content block within a tab and the
// unit the policy engine filters and ranks. The derived fields are
// tag-free normalized text and are omitted from the wire form when no
// matches were found.
type Group struct {
	ID      string   `json:"id,omitempty"`
	Label   string   `json:"label"`
	HTML    string   `json:"html"`
	Purpose string   `json:"purpose,omitempty"`
	Inputs  []string `json:"inputs,omitempty"`
	Outputs []string `json:"outputs,omitempty"`
	Steps   []string `json:"steps,omitempty"`
	Metrics []string `json:"metrics,omitempty"`
	Callout string   `json:"callout,omitempty"`
}

// Tab is one navigable division within a section. Label is always in
// the canonical "NN - Title" form.
type Tab struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	PanelID string  `json:"panelId"`
	Groups  []Group `json:"groups"`
}

// Section is the full extracted content of one source document.
type Section struct {
	Slug  string `json:"slug"`
	File  string `json:"file"`
	Title string `json:"title"`
	Tabs  []Tab  `json:"tabs"`
}

// Tab returns the tab with the given id.
func (s *Section) Tab(id string) (*Tab, bool) {
	for i := range s.Tabs {
		if s.Tabs[i].ID == id {
			return &s.Tabs[i], true
		}
	}
	return nil, false
}

// Encode serializes the section in the wire format: two-space indented
// JSON with a trailing newline.
func (s *Section) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode section %s: %w", s.Slug, err)
	}
	return append(data, '\n'), nil
}

// Decode parses a serialized section. A body that does not decode, has
// no slug, or carries zero tabs is malformed: callers treat that as
// "not available" rather than exposing a partial section.
func Decode(data []byte) (*Section, error) {
	var s Section
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode section: %w", err)
	}
	if s.Slug == "" {
		return nil, fmt.Errorf("decode section: missing slug")
	}
	if len(s.Tabs) == 0 {
		return nil, fmt.Errorf("decode section %s: no tabs", s.Slug)
	}
	return &s, nil
}

// Clone returns a deep copy of the section.
func (s *Section) Clone() *Section {
	out := *s
	out.Tabs = make([]Tab, len(s.Tabs))
	for i, tab := range s.Tabs {
		out.Tabs[i] = tab
		out.Tabs[i].Groups = make([]Group, len(tab.Groups))
		for j, g := range tab.Groups {
			out.Tabs[i].Groups[j] = cloneGroup(g)
		}
	}
	return &out
}

func cloneGroup(g Group) Group {
	g.Inputs = cloneStrings(g.Inputs)
	g.Outputs = cloneStrings(g.Outputs)
	g.Steps = cloneStrings(g.Steps)
	g.Metrics = cloneStrings(g.Metrics)
	return g
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// WithTab returns a copy of the section with tab replaced in place when
// a tab with the same id exists, or appended otherwise. The receiver is
// left untouched.
func (s *Section) WithTab(tab Tab) *Section {
	out := *s
	out.Tabs = make([]Tab, len(s.Tabs))
	copy(out.Tabs, s.Tabs)
	for i := range out.Tabs {
		if out.Tabs[i].ID == tab.ID {
			out.Tabs[i] = tab
			return &out
		}
	}
	out.Tabs = append(out.Tabs, tab)
	return &out
}

// WithoutTab returns a copy of the section with the identified tab
// removed. Removing an unknown tab id is a no-op copy.
func (s *Section) WithoutTab(tabID string) *Section {
	out := *s
	out.Tabs = make([]Tab, 0, len(s.Tabs))
	for _, tab := range s.Tabs {
		if tab.ID != tabID {
			out.Tabs = append(out.Tabs, tab)
		}
	}
	return &out
}

// WithGroupPatch returns a copy of the section with the patch merged
// into one group, addressed by tab id and group index. Everything else
// is structurally shared and untouched; an unknown tab or out-of-range
// index yields a plain copy.
func (s *Section) WithGroupPatch(tabID string, groupIndex int, patch GroupPatch) *Section {
	out := *s
	out.Tabs = make([]Tab, len(s.Tabs))
	copy(out.Tabs, s.Tabs)
	for i := range out.Tabs {
		if out.Tabs[i].ID != tabID {
			continue
		}
		if groupIndex < 0 || groupIndex >= len(out.Tabs[i].Groups) {
			break
		}
		groups := make([]Group, len(out.Tabs[i].Groups))
		copy(groups, out.Tabs[i].Groups)
		groups[groupIndex] = patch.Apply(groups[groupIndex])
		out.Tabs[i].Groups = groups
		break
	}
	return &out
}
