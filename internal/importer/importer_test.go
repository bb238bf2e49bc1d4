package importer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"folio/internal/models"
)

// recorderStore captures upserted entries.
type recorderStore struct {
	entries []models.DiaryEntry
}

func (r *recorderStore) UpsertDiary(ctx context.Context, d models.DiaryEntry) (models.DiaryEntry, error) {
	r.entries = append(r.entries, d)
	return d, nil
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestImportMarkdown(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "content/hello.md", `---
title: "Hello World"
date: 2024-02-01
description: "Greetings"
---

# Heading

Some **bold** text.
`)

	store := &recorderStore{}
	n, err := New(fs, store).Run(context.Background(), "content")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n != 1 || len(store.entries) != 1 {
		t.Fatalf("imported %d entries, want 1", n)
	}

	entry := store.entries[0]
	if entry.Title != "Hello World" {
		t.Errorf("title = %q", entry.Title)
	}
	if entry.Excerpt != "Greetings" {
		t.Errorf("excerpt = %q", entry.Excerpt)
	}
	if entry.Visibility != models.VisibilityPublic {
		t.Errorf("visibility = %q", entry.Visibility)
	}
	if !entry.Date.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", entry.Date)
	}
	if !strings.Contains(entry.Content, "<strong>bold</strong>") {
		t.Errorf("markdown not converted: %q", entry.Content)
	}
}

func TestImportDraftBecomesPrivate(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "content/wip.md", `---
title: "Work In Progress"
draft: true
---

Not ready yet.
`)

	store := &recorderStore{}
	if _, err := New(fs, store).Run(context.Background(), "content"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if store.entries[0].Visibility != models.VisibilityPrivate {
		t.Errorf("draft visibility = %q, want private", store.entries[0].Visibility)
	}
}

func TestImportDerivesExcerptFromBody(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "content/noexcerpt.md", `---
title: "No Excerpt"
---

Plain paragraph used for the description.
`)

	store := &recorderStore{}
	if _, err := New(fs, store).Run(context.Background(), "content"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := store.entries[0].Excerpt; !strings.Contains(got, "Plain paragraph") {
		t.Errorf("derived excerpt = %q", got)
	}
}

func TestImportSkipsNonMarkdownAndBadDates(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "content/notes.txt", "ignore me")
	writeFile(t, fs, "content/bad.md", `---
title: "Bad Date"
date: "sometime last week"
---

Body.
`)
	writeFile(t, fs, "content/good.md", `---
title: "Good"
---

Body.
`)

	store := &recorderStore{}
	n, err := New(fs, store).Run(context.Background(), "content")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("imported %d entries, want 1 (bad date skipped, txt ignored)", n)
	}
	if store.entries[0].Title != "Good" {
		t.Errorf("wrong entry imported: %+v", store.entries[0])
	}
}
