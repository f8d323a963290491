package section

import "testing"

func TestDeltaValidate(t *testing.T) {
	sec := sampleSection()
	label := "x"

	tests := []struct {
		name    string
		delta   Delta
		wantErr bool
	}{
		{"section upsert ok", Delta{Kind: DeltaSectionUpsert, Section: sec}, false},
		{"section upsert missing section", Delta{Kind: DeltaSectionUpsert}, true},
		{"section upsert missing slug", Delta{Kind: DeltaSectionUpsert, Section: &Section{}}, true},
		{"section upsert without tabs", Delta{Kind: DeltaSectionUpsert, Section: &Section{Slug: "delivery"}}, true},
		{"section remove ok", Delta{Kind: DeltaSectionRemove, Slug: "delivery"}, false},
		{"section remove missing slug", Delta{Kind: DeltaSectionRemove}, true},
		{"tab upsert ok", Delta{Kind: DeltaTabUpsert, Slug: "delivery", Tab: &Tab{ID: "tab-1"}}, false},
		{"tab upsert missing tab", Delta{Kind: DeltaTabUpsert, Slug: "delivery"}, true},
		{"tab upsert anonymous tab", Delta{Kind: DeltaTabUpsert, Slug: "delivery", Tab: &Tab{}}, true},
		{"tab remove ok", Delta{Kind: DeltaTabRemove, Slug: "delivery", TabID: "tab-1"}, false},
		{"tab remove missing tab id", Delta{Kind: DeltaTabRemove, Slug: "delivery"}, true},
		{"group patch ok", Delta{Kind: DeltaGroupPatch, Slug: "delivery", TabID: "tab-1", Group: &GroupPatch{Label: &label}}, false},
		{"group patch missing patch", Delta{Kind: DeltaGroupPatch, Slug: "delivery", TabID: "tab-1"}, true},
		{"group patch negative index", Delta{Kind: DeltaGroupPatch, Slug: "delivery", TabID: "tab-1", GroupIndex: -1, Group: &GroupPatch{}}, true},
		{"unknown kind", Delta{Kind: "section_rename", Slug: "delivery"}, true},
		{"empty kind", Delta{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.delta.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeltaTargetSlug(t *testing.T) {
	sec := sampleSection()
	if got := (Delta{Kind: DeltaSectionUpsert, Section: sec}).TargetSlug(); got != "delivery" {
		t.Errorf("upsert TargetSlug = %q, want delivery", got)
	}
	if got := (Delta{Kind: DeltaTabRemove, Slug: "qms", TabID: "tab-1"}).TargetSlug(); got != "qms" {
		t.Errorf("tab remove TargetSlug = %q, want qms", got)
	}
}
