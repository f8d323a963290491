package section

import "fmt"

// DeltaKind tags the five incremental mutation shapes the store
// accepts.
type DeltaKind string

const (
	DeltaSectionUpsert DeltaKind = "section_upsert"
	DeltaSectionRemove DeltaKind = "section_remove"
	DeltaTabUpsert     DeltaKind = "tab_upsert"
	DeltaTabRemove     DeltaKind = "tab_remove"
	DeltaGroupPatch    DeltaKind = "group_patch"
)

// Delta is one targeted mutation of the in-memory section store. Only
// the fields its kind requires are set.
type Delta struct {
	Kind       DeltaKind   `json:"type"`
	Section    *Section    `json:"section,omitempty"`
	Slug       string      `json:"slug,omitempty"`
	Tab        *Tab        `json:"tab,omitempty"`
	TabID      string      `json:"tabId,omitempty"`
	GroupIndex int         `json:"groupIndex,omitempty"`
	Group      *GroupPatch `json:"group,omitempty"`
}

// TargetSlug returns the slug the delta addresses.
func (d Delta) TargetSlug() string {
	if d.Kind == DeltaSectionUpsert && d.Section != nil {
		return d.Section.Slug
	}
	return d.Slug
}

// Validate checks that the delta carries the fields its kind requires.
// An invalid delta must not mutate the store.
func (d Delta) Validate() error {
	switch d.Kind {
	case DeltaSectionUpsert:
		if d.Section == nil || d.Section.Slug == "" {
			return fmt.Errorf("%s delta requires a section with a slug", d.Kind)
		}
		// Decode rejects tab-less sections; the delta path applies
		// the same rule.
		if len(d.Section.Tabs) == 0 {
			return fmt.Errorf("%s delta requires a section with tabs", d.Kind)
		}
	case DeltaSectionRemove:
		if d.Slug == "" {
			return fmt.Errorf("%s delta requires a slug", d.Kind)
		}
	case DeltaTabUpsert:
		if d.Slug == "" || d.Tab == nil || d.Tab.ID == "" {
			return fmt.Errorf("%s delta requires a slug and a tab with an id", d.Kind)
		}
	case DeltaTabRemove:
		if d.Slug == "" || d.TabID == "" {
			return fmt.Errorf("%s delta requires a slug and a tabId", d.Kind)
		}
	case DeltaGroupPatch:
		if d.Slug == "" || d.TabID == "" || d.Group == nil {
			return fmt.Errorf("%s delta requires a slug, a tabId and a group patch", d.Kind)
		}
		if d.GroupIndex < 0 {
			return fmt.Errorf("%s delta requires a non-negative groupIndex", d.Kind)
		}
	default:
		return fmt.Errorf("unknown delta type %q", d.Kind)
	}
	return nil
}
