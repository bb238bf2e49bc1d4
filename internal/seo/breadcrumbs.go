package seo

import (
	"strings"
	"unicode"

	"folio/internal/models"
)

// titleize capitalizes the first letter of each word.
func titleize(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// BreadcrumbTrail derives a breadcrumb trail from a site-relative path.
// Segment slugs become labels with dashes replaced and words capitalized;
// known segments can be overridden via labels (e.g. a record slug mapped to
// its title). The last crumb is the current page and carries no link. The
// trail excludes Home, which NewBreadcrumbList prepends.
func BreadcrumbTrail(path string, labels map[string]string) []models.Breadcrumb {
	clean := strings.Trim(path, "/")
	if clean == "" {
		return nil
	}

	segments := strings.Split(clean, "/")
	crumbs := make([]models.Breadcrumb, 0, len(segments))
	var current string

	for i, segment := range segments {
		current += "/" + segment

		label, ok := labels[segment]
		if !ok {
			label = titleize(strings.ReplaceAll(segment, "-", " "))
		}

		crumb := models.Breadcrumb{Label: label}
		if i < len(segments)-1 {
			crumb.Link = current
		}
		crumbs = append(crumbs, crumb)
	}

	return crumbs
}
