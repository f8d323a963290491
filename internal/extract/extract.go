// Package extract turns one raw section document into the ordered
// Section -> Tabs -> Groups model. This is not a general markup
// parser: it scans for a small fixed vocabulary of structural markers
// (tab headers, panel openers, sub-heading blocks) and pairs the
// findings by position. Extraction never fails; documents matching no
// markers degrade to a single tab with a single group.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"sectiond/internal/section"
	"sectiond/internal/textnorm"
)

var (
	titleRe = regexp.MustCompile(`(?is)<title>(.*?)</title>`)

	// Tab headers: a button or div whose class list carries the tab
	// or ntab token.
	tabRe = regexp.MustCompile(`(?is)<(?:button|div)\s+class="[^"]*\b(?:tab|ntab)\b[^"]*"[^>]*>(.*?)</(?:button|div)>`)

	// Panel openers: a section or div with class "panel", optionally
	// carrying the active modifier and an explicit id.
	panelRe   = regexp.MustCompile(`(?i)<(?:section|div)\s+class="panel(?:\s+active)?"[^>]*>`)
	panelIDRe = regexp.MustCompile(`(?i)\bid="([^"]+)"`)
)

type panel struct {
	id   string
	html string
}

// Extract builds the Section for one source document.
func Extract(slug, file, doc string) *section.Section {
	title := textnorm.StripTags(firstGroup(titleRe, doc))
	if title == "" {
		title = file
	}

	tabs := extractTabs(doc)
	panels := extractPanels(doc)

	if len(tabs) == 0 {
		tabs = []section.Tab{{ID: "tab-1", Label: "Content"}}
	}

	for i := range tabs {
		p := panelFor(panels, i, doc)
		tabs[i].Label = NormalizeTabLabel(tabs[i].Label, i)
		tabs[i].PanelID = p.id
		tabs[i].Groups = splitGroups(p.html)
	}

	return &section.Section{Slug: slug, File: file, Title: title, Tabs: tabs}
}

func extractTabs(doc string) []section.Tab {
	matches := tabRe.FindAllStringSubmatch(doc, -1)
	tabs := make([]section.Tab, 0, len(matches))
	for i, m := range matches {
		tabs = append(tabs, section.Tab{
			ID:    fmt.Sprintf("tab-%d", i+1),
			Label: NormalizeTabLabel(m[1], i),
		})
	}
	return tabs
}

// extractPanels captures the byte range from each panel opener to the
// start of the next one. A trailing script block caps the last panel;
// otherwise it runs to end of document.
func extractPanels(doc string) []panel {
	locs := panelRe.FindAllStringIndex(doc, -1)
	if len(locs) == 0 {
		return nil
	}

	end := len(doc)
	if idx := strings.LastIndex(doc, "<script"); idx > 0 {
		end = idx
	}

	panels := make([]panel, 0, len(locs))
	for i, loc := range locs {
		stop := end
		if i+1 < len(locs) {
			stop = locs[i+1][0]
		}
		chunk := ""
		if stop > loc[0] {
			chunk = strings.TrimSpace(doc[loc[0]:stop])
		}
		id := firstGroup(panelIDRe, doc[loc[0]:loc[1]])
		if id == "" {
			id = fmt.Sprintf("panel-%d", i+1)
		}
		panels = append(panels, panel{id: id, html: chunk})
	}
	return panels
}

// panelFor pairs tab i with panel i. A tab beyond the last panel
// reuses the first panel's content; with no panels at all, the whole
// document is the panel.
func panelFor(panels []panel, i int, doc string) panel {
	if i < len(panels) {
		return panels[i]
	}
	if len(panels) > 0 {
		return panels[0]
	}
	return panel{id: fmt.Sprintf("panel-%d", i+1), html: doc}
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
