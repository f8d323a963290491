package extract

import (
	"strings"
	"testing"
)

const sampleDoc = `<!doctype html>
<html><head><title>Delivery &amp; Operations</title></head>
<body>
<nav>
<button class="tab active" data-tab="p1">1 - Overview</button>
<button class="tab" data-tab="p2">Tab 2</button>
</nav>
<section class="panel active" id="p1">
<div class="pw">
<h1>Delivery</h1>
<p>How work moves through the studio.</p>
</div>
</section>
<section class="panel" id="p2">
<div class="pw">
<p>Intro paragraph.</p>
<div class="sec-head"><span class="sec-label">Risks</span><div class="sec-line"></div></div>
<p>Risk register lives here.</p>
</div>
</section>
<script>initTabs();</script>
</body></html>`

func TestExtract(t *testing.T) {
	sec := Extract("delivery", "04-delivery.html", sampleDoc)

	if sec.Slug != "delivery" {
		t.Errorf("slug = %q, want %q", sec.Slug, "delivery")
	}
	if sec.Title != "Delivery & Operations" {
		t.Errorf("title = %q, want %q", sec.Title, "Delivery & Operations")
	}
	if len(sec.Tabs) != 2 {
		t.Fatalf("got %d tabs, want 2", len(sec.Tabs))
	}

	tab1, tab2 := sec.Tabs[0], sec.Tabs[1]
	if tab1.Label != "01 - Overview" {
		t.Errorf("tab 1 label = %q, want %q", tab1.Label, "01 - Overview")
	}
	if tab2.Label != "02 - Content" {
		t.Errorf("tab 2 label = %q, want %q", tab2.Label, "02 - Content")
	}
	if tab1.ID != "tab-1" || tab2.ID != "tab-2" {
		t.Errorf("tab ids = %q, %q, want tab-1, tab-2", tab1.ID, tab2.ID)
	}
	if tab1.PanelID != "p1" || tab2.PanelID != "p2" {
		t.Errorf("panel ids = %q, %q, want p1, p2", tab1.PanelID, tab2.PanelID)
	}

	if len(tab1.Groups) != 1 {
		t.Fatalf("tab 1 has %d groups, want 1", len(tab1.Groups))
	}
	if tab1.Groups[0].Label != "Content" {
		t.Errorf("tab 1 group label = %q, want %q", tab1.Groups[0].Label, "Content")
	}
	if !strings.Contains(tab1.Groups[0].HTML, "How work moves") {
		t.Errorf("tab 1 group lost its body: %q", tab1.Groups[0].HTML)
	}

	if len(tab2.Groups) != 2 {
		t.Fatalf("tab 2 has %d groups, want 2", len(tab2.Groups))
	}
	if tab2.Groups[0].Label != "Overview" {
		t.Errorf("tab 2 group 0 label = %q, want %q", tab2.Groups[0].Label, "Overview")
	}
	if !strings.Contains(tab2.Groups[0].HTML, "Intro paragraph") {
		t.Errorf("overview group lost its body: %q", tab2.Groups[0].HTML)
	}
	if tab2.Groups[1].Label != "Risks" {
		t.Errorf("tab 2 group 1 label = %q, want %q", tab2.Groups[1].Label, "Risks")
	}
	if !strings.Contains(tab2.Groups[1].HTML, "Risk register") {
		t.Errorf("risks group lost its body: %q", tab2.Groups[1].HTML)
	}

	// The trailing script block must not leak into any group.
	for _, tab := range sec.Tabs {
		for _, g := range tab.Groups {
			if strings.Contains(g.HTML, "initTabs") {
				t.Errorf("script leaked into group %q: %q", g.Label, g.HTML)
			}
		}
	}
}

func TestExtractNoMarkers(t *testing.T) {
	doc := `<html><body><p>Just a page.</p></body></html>`
	sec := Extract("plain", "plain.html", doc)

	if len(sec.Tabs) != 1 {
		t.Fatalf("got %d tabs, want 1", len(sec.Tabs))
	}
	tab := sec.Tabs[0]
	if tab.ID != "tab-1" {
		t.Errorf("tab id = %q, want tab-1", tab.ID)
	}
	if tab.Label != "01 - Content" {
		t.Errorf("tab label = %q, want %q", tab.Label, "01 - Content")
	}
	if len(tab.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(tab.Groups))
	}
	if tab.Groups[0].Label != "Content" {
		t.Errorf("group label = %q, want Content", tab.Groups[0].Label)
	}
	if !strings.Contains(tab.Groups[0].HTML, "Just a page") {
		t.Errorf("group lost document body: %q", tab.Groups[0].HTML)
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	sec := Extract("empty", "empty.html", "")
	if sec.Title != "empty.html" {
		t.Errorf("title = %q, want filename fallback", sec.Title)
	}
	if len(sec.Tabs) != 1 || len(sec.Tabs[0].Groups) != 1 {
		t.Fatalf("want one tab with one group, got %+v", sec.Tabs)
	}
}

func TestExtractMoreTabsThanPanels(t *testing.T) {
	doc := `<html><head><title>T</title></head><body>
<button class="tab">1 - First</button>
<button class="tab">2 - Second</button>
<div class="panel" id="only"><p>Shared body.</p></div>
</body></html>`
	sec := Extract("t", "t.html", doc)

	if len(sec.Tabs) != 2 {
		t.Fatalf("got %d tabs, want 2", len(sec.Tabs))
	}
	// The orphan tab falls back to the first panel's content.
	if sec.Tabs[1].PanelID != "only" {
		t.Errorf("orphan tab panel = %q, want %q", sec.Tabs[1].PanelID, "only")
	}
	if len(sec.Tabs[1].Groups) == 0 || !strings.Contains(sec.Tabs[1].Groups[0].HTML, "Shared body") {
		t.Errorf("orphan tab did not reuse first panel: %+v", sec.Tabs[1].Groups)
	}
}

func TestSplitGroupsDropsEmptyBodies(t *testing.T) {
	panel := `<div class="sec-head"><span class="sec-label">Empty</span><div class="sec-line"></div></div>
<div class="sec-head"><span class="sec-label">Full</span><div class="sec-line"></div></div>
<p>Real content.</p>`
	groups := splitGroups(panel)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1: %+v", len(groups), groups)
	}
	if groups[0].Label != "Full" {
		t.Errorf("group label = %q, want Full", groups[0].Label)
	}
}

func TestSplitGroupsUnlabeledHead(t *testing.T) {
	panel := `<div class="sec-head"><span class="sec-label"></span><div class="sec-line"></div></div>
<p>Body.</p>`
	groups := splitGroups(panel)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1: %+v", len(groups), groups)
	}
	if groups[0].Label != "Group 1" {
		t.Errorf("group label = %q, want %q", groups[0].Label, "Group 1")
	}
}
