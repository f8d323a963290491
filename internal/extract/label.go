package extract

import (
	"fmt"
	"regexp"
	"strings"

	"sectiond/internal/textnorm"
)

var (
	// A leading one-to-two-digit ordinal, separator punctuation,
	// then the title text.
	ordinalRe = regexp.MustCompile(`^(\d{1,2})\s*[^A-Za-z0-9]*\s*(.+)$`)

	// "Tab N" style placeholder prefixes are stripped before a label
	// is synthesized.
	placeholderRe = regexp.MustCompile(`(?i)^tab\s*\d+\s*[-:.]*\s*`)
)

// NormalizeTabLabel produces the canonical "NN - Title" label form.
// The ordinal is zero-padded to two digits; when the raw label has no
// parsable leading ordinal, one is synthesized from the tab's 1-based
// position. Already-canonical labels pass through unchanged.
func NormalizeTabLabel(raw string, index int) string {
	cleaned := textnorm.StripTags(raw)
	m := ordinalRe.FindStringSubmatch(cleaned)
	if m == nil {
		title := strings.TrimSpace(placeholderRe.ReplaceAllString(cleaned, ""))
		if title == "" {
			title = "Content"
		}
		return fmt.Sprintf("%02d - %s", index+1, title)
	}
	num := m[1]
	if len(num) == 1 {
		num = "0" + num
	}
	return fmt.Sprintf("%s - %s", num, strings.TrimSpace(m[2]))
}
