package extract

import "testing"

func TestNormalizeTabLabel(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		index int
		want  string
	}{
		{"single digit zero-padded", "1 - Overview", 0, "01 - Overview"},
		{"dot separator", "3. Architecture", 2, "03 - Architecture"},
		{"no separator", "7 Delivery", 6, "07 - Delivery"},
		{"two digits pass through", "12 - Delivery", 11, "12 - Delivery"},
		{"already canonical unchanged", "02 - Growth", 1, "02 - Growth"},
		{"typographic dash normalized", "4 — Metrics", 3, "04 - Metrics"},
		{"markup stripped first", "<span>04 · Metrics</span>", 3, "04 - Metrics"},
		{"no ordinal synthesized from position", "Strategy", 4, "05 - Strategy"},
		{"placeholder collapses to content", "Tab 2", 1, "02 - Content"},
		{"placeholder prefix stripped", "Tab 3: Planning", 2, "03 - Planning"},
		{"empty label", "", 0, "01 - Content"},
		{"whitespace only", "   ", 7, "08 - Content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTabLabel(tt.raw, tt.index); got != tt.want {
				t.Errorf("NormalizeTabLabel(%q, %d) = %q, want %q", tt.raw, tt.index, got, tt.want)
			}
		})
	}
}
