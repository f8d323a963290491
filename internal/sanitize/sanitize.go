// Package sanitize strips executable content out of raw markup
// fragments and rewrites legacy structural class names. It is a
// filtering pass over the fragment text, not a re-parse: tag nesting
// in the remaining markup is untouched.
package sanitize

import (
	"regexp"

	"sectiond/internal/textnorm"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style.*?</style>`)

	// Inline event handlers in double-quoted, single-quoted and
	// unquoted attribute-value form.
	onAttrDouble = regexp.MustCompile(`(?i)\son[a-z]+\s*=\s*"[^"]*"`)
	onAttrSingle = regexp.MustCompile(`(?i)\son[a-z]+\s*=\s*'[^']*'`)
	onAttrBare   = regexp.MustCompile(`(?i)\son[a-z]+\s*=\s*[^\s>]+`)

	jsScheme = regexp.MustCompile(`(?i)javascript:`)
)

// classRenames maps legacy structural class tokens to their current
// names, matched on word boundaries. Order matters: the longer
// vault-frame-wrap token must rewrite before the vault-frame token
// sees it.
var classRenames = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\bvault-frame-wrap\b`), "vault-frame-block"},
	{regexp.MustCompile(`\bvault-frame\b`), "vault-view"},
	{regexp.MustCompile(`\bbp-shell\b`), "bp-grid"},
}

// Sanitize removes script and style blocks, inline event-handler
// attributes and javascript: URI schemes from a markup fragment,
// rewrites legacy class names, and normalizes the remaining text.
// Idempotent: sanitizing sanitized markup is a no-op.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	out := scriptRe.ReplaceAllString(raw, "")
	out = styleRe.ReplaceAllString(out, "")
	out = onAttrDouble.ReplaceAllString(out, "")
	out = onAttrSingle.ReplaceAllString(out, "")
	out = onAttrBare.ReplaceAllString(out, "")
	out = jsScheme.ReplaceAllString(out, "")
	for _, r := range classRenames {
		out = r.re.ReplaceAllString(out, r.repl)
	}
	return textnorm.Normalize(out)
}
