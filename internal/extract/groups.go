package extract

import (
	"fmt"
	"regexp"
	"strings"

	"sectiond/internal/sanitize"
	"sectiond/internal/section"
	"sectiond/internal/textnorm"
)

var (
	// Trailing tab-divider comments only; in-panel section comments
	// must survive.
	tabDividerRe = regexp.MustCompile(`(?is)\s*<!--\s*--\s*TAB.*?-->\s*$`)

	panelPwDivRe  = regexp.MustCompile(`(?i)^<div\s+class="panel(?:\s+active)?"[^>]*>\s*<div\s+class="pw">\s*`)
	panelPwSectRe = regexp.MustCompile(`(?i)^<section\s+class="panel(?:\s+active)?"[^>]*>\s*<div\s+class="pw">\s*`)
	panelOpenRe   = regexp.MustCompile(`(?i)^<(?:div|section)\s+class="panel(?:\s+active)?"[^>]*>\s*`)
	pwOpenRe      = regexp.MustCompile(`(?i)^<div\s+class="pw">\s*`)

	doubleCloseRe  = regexp.MustCompile(`(?i)\s*</div>\s*</div>\s*$`)
	sectionCloseRe = regexp.MustCompile(`(?i)\s*</section>\s*$`)
	leadCloserRe   = regexp.MustCompile(`^(?:</div>\s*)+`)

	// Sub-heading marker: a heading container with a label span
	// followed by a divider element.
	secHeadRe = regexp.MustCompile(`(?is)<div class="sec-head[^"]*">.*?<span class="sec-label">(.*?)</span>.*?<div class="sec-(?:head-line|line)"></div>\s*</div>`)
)

// stripOuterLayers peels one layer of known panel wrappers off a
// chunk. It is deliberately non-recursive: repeated trimming of
// generic closing tags has truncated legitimate content-heavy panels.
func stripOuterLayers(raw string) string {
	out := strings.TrimSpace(raw)
	out = tabDividerRe.ReplaceAllString(out, "")
	out = panelPwDivRe.ReplaceAllString(out, "")
	out = panelPwSectRe.ReplaceAllString(out, "")
	out = panelOpenRe.ReplaceAllString(out, "")
	out = pwOpenRe.ReplaceAllString(out, "")
	out = doubleCloseRe.ReplaceAllString(out, "")
	out = sectionCloseRe.ReplaceAllString(out, "")
	out = leadCloserRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// splitGroups carves one panel chunk into labeled groups on
// sub-heading markers. Content before the first marker becomes an
// "Overview" group; a panel with no markers at all becomes a single
// "Content" group. Marker-delimited bodies with no remaining text are
// dropped.
func splitGroups(panelHTML string) []section.Group {
	clean := stripOuterLayers(panelHTML)

	heads := secHeadRe.FindAllStringSubmatchIndex(clean, -1)
	if len(heads) == 0 {
		return []section.Group{{Label: "Content", HTML: sanitize.Sanitize(clean)}}
	}

	var groups []section.Group
	pre := strings.TrimSpace(clean[:heads[0][0]])
	if textnorm.StripTags(pre) != "" {
		groups = append(groups, section.Group{
			Label: "Overview",
			HTML:  sanitize.Sanitize(stripOuterLayers(pre)),
		})
	}

	for i, head := range heads {
		end := len(clean)
		if i+1 < len(heads) {
			end = heads[i+1][0]
		}
		body := stripOuterLayers(strings.TrimSpace(clean[head[1]:end]))
		if textnorm.StripTags(body) == "" {
			continue
		}
		label := textnorm.StripTags(clean[head[2]:head[3]])
		if label == "" {
			label = fmt.Sprintf("Group %d", i+1)
		}
		groups = append(groups, section.Group{Label: label, HTML: sanitize.Sanitize(body)})
	}
	return groups
}
