package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRuleTable(t *testing.T) {
	rules := Default()
	if len(rules) != 37 {
		t.Fatalf("built-in table has %d rules, want 37", len(rules))
	}
	// Order carries meaning; the edges pin it down.
	if rules[0].ID != "core-overview" {
		t.Errorf("first rule = %q, want core-overview", rules[0].ID)
	}
	if rules[len(rules)-1].ID != "all-boost-roadmap" {
		t.Errorf("last rule = %q, want all-boost-roadmap", rules[len(rules)-1].ID)
	}

	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if seen[r.ID] {
			t.Errorf("duplicate rule id %q", r.ID)
		}
		seen[r.ID] = true
		if r.Action != ActionHide && r.Value <= 0 {
			t.Errorf("rule %q: %s with value %d", r.ID, r.Action, r.Value)
		}
	}
}

func TestParseRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", ":\n  - ::"},
		{"empty table", "[]"},
		{"missing id", "- target: label\n  pattern: x\n  action: boost\n  value: 10"},
		{"unknown action", "- id: r1\n  pattern: x\n  action: promote\n  value: 10"},
		{"unknown target", "- id: r1\n  target: slug\n  pattern: x\n  action: boost\n  value: 10"},
		{"boost without value", "- id: r1\n  pattern: x\n  action: boost"},
		{"penalty without value", "- id: r1\n  pattern: x\n  action: penalty"},
		{"bad pattern", "- id: r1\n  pattern: '('\n  action: boost\n  value: 5"},
		{"unknown role", "- id: r1\n  pattern: x\n  action: boost\n  value: 5\n  roles: [wizard]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Errorf("Parse succeeded, want error")
			}
		})
	}
}

func TestParseDefaultsTargetToLabel(t *testing.T) {
	rules, err := Parse([]byte("- id: r1\n  pattern: x\n  action: hide\n  reason: gone"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rules[0].Target != TargetLabel {
		t.Errorf("target = %q, want label default", rules[0].Target)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	body := "- id: custom\n  pattern: foo\n  action: boost\n  value: 9\n  reason: custom\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(rules) != 1 || rules[0].ID != "custom" {
		t.Errorf("loaded %+v, want the single custom rule", rules)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile on a missing path succeeded, want error")
	}
}
