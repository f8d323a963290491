package textnorm

import (
	"strings"

	"golang.org/x/net/html"
)

// blockEnders are elements whose closing tag marks a text break when
// markup is flattened to plain text.
var blockEnders = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// StripTags flattens a markup fragment to its normalized text content.
// This is a token scan over the fragment, not a document parse: tags
// become separators (line breaks after <br> and closing block
// elements), entity references are decoded by the tokenizer, and the
// result passes through Normalize.
func StripTags(fragment string) string {
	if fragment == "" {
		return ""
	}
	if !strings.ContainsAny(fragment, "<&") {
		return Normalize(fragment)
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	b.Grow(len(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return Normalize(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "br" {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if blockEnders[string(name)] {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		default:
			b.WriteByte(' ')
		}
	}
}
