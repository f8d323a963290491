// Package enrich derives the structured side-channel fields of a group
// (purpose, inputs/outputs, steps, callout, metrics) by matching the
// well-known markup idioms the source documents use. Fields with no
// matches stay absent; the group's markup body is never altered.
package enrich

import (
	"fmt"
	"regexp"
	"strings"

	"sectiond/internal/section"
	"sectiond/internal/textnorm"
)

var (
	h1Re = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	h2Re = regexp.MustCompile(`(?is)<h2[^>]*>(.*?)</h2>`)
	pRe  = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)

	olRe = regexp.MustCompile(`(?is)<ol[^>]*>(.*?)</ol>`)
	liRe = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)

	calloutRe = regexp.MustCompile(`(?is)<div[^>]*class="[^"]*callout-body[^"]*"[^>]*>(.*?)</div>`)

	inputLabelRe  = regexp.MustCompile(`(?is)<strong>\s*Input\s*:\s*</strong>\s*`)
	outputLabelRe = regexp.MustCompile(`(?is)<strong>\s*Output\s*:\s*</strong>\s*`)

	// A labeled field value runs to the next paragraph, bold-label,
	// list-item or block boundary.
	fieldEndRe = regexp.MustCompile(`(?i)</p>|<strong>|</li>|</div>`)

	percentRe = regexp.MustCompile(`\b\d+(?:\.\d+)?%`)
	mrrRe     = regexp.MustCompile(`(?i)\bMRR\b`)
)

// Enrich fills the derived fields of one group in place. Fields the
// group already carries are left alone, so re-enriching is a no-op.
func Enrich(tabID string, index int, g *section.Group) {
	if g.Label == "" {
		g.Label = fmt.Sprintf("Group %d", index+1)
	}
	if g.ID == "" {
		g.ID = fmt.Sprintf("%s-group-%02d", tabID, index+1)
	}
	if g.Purpose == "" {
		g.Purpose = purpose(g.HTML)
	}
	if g.Inputs == nil {
		g.Inputs = fieldValues(g.HTML, inputLabelRe)
	}
	if g.Outputs == nil {
		g.Outputs = fieldValues(g.HTML, outputLabelRe)
	}
	if g.Steps == nil {
		g.Steps = orderedSteps(g.HTML)
	}
	if g.Callout == "" {
		g.Callout = callout(g.HTML)
	}
	if g.Metrics == nil {
		g.Metrics = metrics(g.HTML)
	}
}

// purpose is the first level-1 or level-2 heading, falling back to the
// first paragraph.
func purpose(html string) string {
	for _, re := range []*regexp.Regexp{h1Re, h2Re, pRe} {
		if m := re.FindStringSubmatch(html); m != nil {
			return textnorm.StripTags(m[1])
		}
	}
	return ""
}

// fieldValues collects every "<strong>Name:</strong> value" occurrence
// in document order, not just the first.
func fieldValues(html string, labelRe *regexp.Regexp) []string {
	var values []string
	for _, loc := range labelRe.FindAllStringIndex(html, -1) {
		rest := html[loc[1]:]
		end := len(rest)
		if t := fieldEndRe.FindStringIndex(rest); t != nil {
			end = t[0]
		}
		if v := textnorm.StripTags(rest[:end]); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// orderedSteps flattens every list item of every ordered list, in
// document order.
func orderedSteps(html string) []string {
	var steps []string
	for _, ol := range olRe.FindAllStringSubmatch(html, -1) {
		for _, li := range liRe.FindAllStringSubmatch(ol[1], -1) {
			if t := textnorm.StripTags(li[1]); t != "" {
				steps = append(steps, t)
			}
		}
	}
	return steps
}

func callout(html string) string {
	if m := calloutRe.FindStringSubmatch(html); m != nil {
		return textnorm.StripTags(m[1])
	}
	return ""
}

// metrics reports percentage figures found in the tag-stripped text
// (deduplicated, in order of first appearance) and a fixed note when
// the MRR acronym appears.
func metrics(html string) []string {
	text := textnorm.StripTags(html)
	var notes []string
	if pcts := percentRe.FindAllString(text, -1); len(pcts) > 0 {
		seen := make(map[string]bool, len(pcts))
		uniq := make([]string, 0, len(pcts))
		for _, p := range pcts {
			if !seen[p] {
				seen[p] = true
				uniq = append(uniq, p)
			}
		}
		notes = append(notes, "Contains percentage targets: "+strings.Join(uniq, ", "))
	}
	if mrrRe.MatchString(text) {
		notes = append(notes, "Contains MRR references")
	}
	return notes
}
