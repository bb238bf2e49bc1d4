// Package testutil provides shared fixtures for tests.
package testutil

import (
	"time"

	"folio/internal/config"
	"folio/internal/models"
)

// SampleProject returns a valid project record.
func SampleProject() models.Project {
	return models.Project{
		ID:           "p-1",
		Slug:         "orbit-tracker",
		Title:        "Orbit Tracker",
		Description:  "Realtime satellite pass predictions",
		ImgSrc:       "/images/orbit.png",
		Role:         "Author",
		Technologies: []string{"Go", "PostgreSQL"},
		Overview:     "<p>Tracks satellite passes with <b>live</b> updates.</p>",
		CreatedAt:    time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	}
}

// SampleDiary returns a valid public diary entry.
func SampleDiary() models.DiaryEntry {
	return models.DiaryEntry{
		ID:         "d-1",
		Slug:       "first-post",
		Title:      "First Post",
		Excerpt:    "A short excerpt",
		Content:    "<p>Hello <b>world</b>, this is the first entry.</p>",
		Date:       time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
		Visibility: models.VisibilityPublic,
		CreatedAt:  time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
	}
}

// SamplePrivateDiary returns a private entry dated before SampleDiary.
func SamplePrivateDiary() models.DiaryEntry {
	d := SampleDiary()
	d.ID = "d-2"
	d.Slug = "private-notes"
	d.Title = "Private Notes"
	d.Date = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	d.Visibility = models.VisibilityPrivate
	return d
}

// SampleConfig returns a config suitable for handler tests.
func SampleConfig() *config.Config {
	cfg := config.Default()
	cfg.Title = "Test Site"
	cfg.Description = "A test portfolio"
	cfg.BaseURL = "https://test.example.com"
	cfg.Author = config.AuthorConfig{
		Name:     "Test Author",
		URL:      "https://test.example.com",
		JobTitle: "Engineer",
	}
	cfg.Twitter = config.TwitterConfig{Site: "@testsite", Creator: "@testauthor"}
	return cfg
}
