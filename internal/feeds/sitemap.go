package feeds

import (
	"strconv"
	"strings"

	"folio/internal/models"
	"folio/internal/seo"
)

// Valid changefreq values per sitemaps.org.
const (
	FreqAlways  = "always"
	FreqHourly  = "hourly"
	FreqDaily   = "daily"
	FreqWeekly  = "weekly"
	FreqMonthly = "monthly"
	FreqYearly  = "yearly"
	FreqNever   = "never"
)

// URLEntry is one sitemap <url> block. Priority is emitted only when
// HasPriority is set, so a genuine 0.0 survives. Loc may be site-relative;
// BuildSitemap absolutizes it.
type URLEntry struct {
	Loc         string
	LastMod     string
	ChangeFreq  string
	Priority    float64
	HasPriority bool
}

// BuildSitemap renders the entries as a sitemaps.org document. Relative locs
// are prefixed with baseURL; optional fields appear in lastmod, changefreq,
// priority order and are omitted when absent.
func BuildSitemap(entries []URLEntry, baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range entries {
		loc := entry.Loc
		if !strings.HasPrefix(loc, "http") {
			loc = baseURL + loc
		}
		b.WriteString("  <url>\n")
		b.WriteString("    <loc>" + seo.EscapeXML(loc) + "</loc>\n")
		if entry.LastMod != "" {
			b.WriteString("    <lastmod>" + entry.LastMod + "</lastmod>\n")
		}
		if entry.ChangeFreq != "" {
			b.WriteString("    <changefreq>" + entry.ChangeFreq + "</changefreq>\n")
		}
		if entry.HasPriority {
			b.WriteString("    <priority>" + formatPriority(entry.Priority) + "</priority>\n")
		}
		b.WriteString("  </url>\n")
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

// formatPriority renders a crawl priority with a single decimal, the form
// the sitemap protocol examples use.
func formatPriority(p float64) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return strconv.FormatFloat(p, 'f', 1, 64)
}

// DefaultURLSet is the fixed URL policy for the portfolio site: the three
// index pages, then one entry per project and per diary entry. Diary entries
// are not filtered by visibility here; the feed endpoint filters, this does
// not, matching the site's long-standing behavior.
func DefaultURLSet(projects []models.Project, diaries []models.DiaryEntry) []URLEntry {
	entries := []URLEntry{
		{Loc: "/", ChangeFreq: FreqWeekly, Priority: 1.0, HasPriority: true},
		{Loc: "/portfolio", ChangeFreq: FreqWeekly, Priority: 0.9, HasPriority: true},
		{Loc: "/diaries", ChangeFreq: FreqWeekly, Priority: 0.8, HasPriority: true},
	}

	for _, p := range projects {
		entry := URLEntry{
			Loc:         "/project/" + p.Slug,
			ChangeFreq:  FreqMonthly,
			Priority:    0.7,
			HasPriority: true,
		}
		if !p.UpdatedAt.IsZero() {
			entry.LastMod = seo.FormatISODate(p.UpdatedAt)
		}
		entries = append(entries, entry)
	}

	for _, d := range diaries {
		entry := URLEntry{
			Loc:         "/diary/" + d.Slug,
			ChangeFreq:  FreqMonthly,
			Priority:    0.6,
			HasPriority: true,
		}
		if !d.Date.IsZero() {
			entry.LastMod = seo.FormatISODate(d.Date)
		}
		entries = append(entries, entry)
	}

	return entries
}
