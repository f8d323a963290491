// Package textnorm canonicalizes text pulled out of hand-authored
// markup: typographic punctuation, entity leftovers, double-encoding
// artifacts, and whitespace all collapse to a plain ASCII-leaning form.
package textnorm

import "strings"

// asciiMap rewrites the known typographic characters to ASCII
// equivalents. Any other character outside printable ASCII is dropped.
var asciiMap = map[rune]string{
	'·': " - ", // middle dot
	'–': "-",   // en dash
	'—': "-",   // em dash
	'‘': "'",   // left single quote
	'’': "'",   // right single quote
	'“': `"`,   // left double quote
	'”': `"`,   // right double quote
	'…': "...", // ellipsis
	'→': "->",  // right arrow
}

// artifactReplacer repairs known double-encoded UTF-8 sequences. It
// runs before the non-ASCII sweep, which would otherwise delete the
// sequences character by character instead of restoring the intended
// glyph. Longer sequences are listed before their prefixes.
var artifactReplacer = strings.NewReplacer(
	"Ã¢â‚¬â€œ", "-", // en dash
	"Ã¢â‚¬â€", "-", // em dash
	"Ã¢â€ â€™", "->", // arrow, space-joined halves
	"Ã¢â€˜", "'",
	"Ã¢â€™", "'",
	"Ã¢â€œ", `"`,
	"Ã¢â€¦", "...",
	"Ã¢â€", `"`,
	"Ã‚", "",
)

// Normalize returns the canonical form of raw: non-breaking spaces
// become spaces, typographic characters map to ASCII, encoding
// artifacts are repaired or dropped, literal &nbsp;/&middot; entities
// are resolved, and whitespace runs collapse to single spaces. It is
// total and idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ReplaceAll(raw, "\u00a0", " ")
	s = artifactReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x20 && r < 0x7F:
			b.WriteRune(r)
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		default:
			// Control characters, the C1 range, replacement
			// characters and unmapped non-ASCII are dropped.
			if repl, ok := asciiMap[r]; ok {
				b.WriteString(repl)
			}
		}
	}

	s = b.String()
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&middot;", " - ")
	return collapseSpaces(s)
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteByte(c)
	}
	return b.String()
}
