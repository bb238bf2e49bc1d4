// Package seo generates the machine-readable page metadata for the site:
// sanitized descriptions, Open Graph / Twitter Card tag sets, canonical URLs
// and schema.org JSON-LD documents.
package seo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultDescriptionLength is the truncation bound for meta descriptions.
	DefaultDescriptionLength = 160
	// DefaultFeedDescriptionLength is the larger bound used for RSS item
	// descriptions.
	DefaultFeedDescriptionLength = 300
)

// StripMarkup removes HTML tags from a fragment and collapses whitespace runs
// to single spaces. Malformed or unclosed markup never produces an error;
// stripping is best-effort.
func StripMarkup(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapseWhitespace(stripTags(html))
	}
	return collapseWhitespace(doc.Text())
}

// stripTags is the fallback pass: drop everything between < and >.
func stripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts text to at most maxLength runes. Longer input is cut at
// maxLength-3 runes, right-trimmed and suffixed with "...", so the result
// never exceeds maxLength. The cut is by rune count, not word boundary.
// Truncate is idempotent for any maxLength > 3.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	head := strings.TrimRight(string(runes[:maxLength-3]), " \t\n\r")
	return head + "..."
}

// Describe produces a plain-text description from an HTML fragment:
// StripMarkup followed by Truncate.
func Describe(html string, maxLength int) string {
	return Truncate(StripMarkup(html), maxLength)
}
