// Package content supplies the records the syndication engine consumes: a
// Source abstraction with a local sqlite store and an upstream HTTP API
// client behind it.
package content

import (
	"context"
	"sort"

	"folio/internal/models"
)

// Source is the read boundary the feed, sitemap and SEO handlers depend on.
// Implementations must be safe for concurrent use.
type Source interface {
	Projects(ctx context.Context) ([]models.Project, error)
	Diaries(ctx context.Context) ([]models.DiaryEntry, error)
	Project(ctx context.Context, slug string) (*models.Project, error)
	Diary(ctx context.Context, slug string) (*models.DiaryEntry, error)
	SiteInfo(ctx context.Context) (models.SiteInfo, error)
}

// SortDiaries orders entries newest-first by date, title descending on ties.
func SortDiaries(diaries []models.DiaryEntry) {
	sort.Slice(diaries, func(i, j int) bool {
		if diaries[i].Date.Equal(diaries[j].Date) {
			return diaries[i].Title > diaries[j].Title
		}
		return diaries[i].Date.After(diaries[j].Date)
	})
}

// PublicDiaries filters to entries whose visibility permits syndication.
func PublicDiaries(diaries []models.DiaryEntry) []models.DiaryEntry {
	public := make([]models.DiaryEntry, 0, len(diaries))
	for _, d := range diaries {
		if d.Public() {
			public = append(public, d)
		}
	}
	return public
}
