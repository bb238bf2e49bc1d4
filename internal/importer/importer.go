// Package importer ingests markdown files with YAML frontmatter into the
// content store as diary entries, converting the body to HTML.
package importer

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"folio/internal/models"
	"folio/internal/seo"
)

// DiaryWriter is the store surface the importer needs.
type DiaryWriter interface {
	UpsertDiary(ctx context.Context, d models.DiaryEntry) (models.DiaryEntry, error)
}

// Importer converts markdown posts to diary entries.
type Importer struct {
	fs    afero.Fs
	store DiaryWriter
	md    goldmark.Markdown
}

// New builds an importer reading from fs and writing to store.
func New(fs afero.Fs, store DiaryWriter) *Importer {
	return &Importer{
		fs:    fs,
		store: store,
		md: goldmark.New(
			goldmark.WithExtensions(meta.Meta, extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Run imports every .md file under dir. Files that fail to convert are
// skipped with a warning; the first storage error aborts the run.
func (i *Importer) Run(ctx context.Context, dir string) (int, error) {
	var imported int
	err := afero.Walk(i.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		entry, cerr := i.convert(path)
		if cerr != nil {
			log.Printf("⚠️ Skipping %s: %v", path, cerr)
			return nil
		}
		if _, serr := i.store.UpsertDiary(ctx, entry); serr != nil {
			return fmt.Errorf("failed to store %s: %w", path, serr)
		}
		imported++
		return nil
	})
	return imported, err
}

// convert parses one markdown file into a diary entry.
func (i *Importer) convert(path string) (models.DiaryEntry, error) {
	var entry models.DiaryEntry

	src, err := afero.ReadFile(i.fs, path)
	if err != nil {
		return entry, err
	}

	var buf bytes.Buffer
	pc := parser.NewContext()
	if err := i.md.Convert(src, &buf, parser.WithContext(pc)); err != nil {
		return entry, fmt.Errorf("markdown conversion failed: %w", err)
	}
	front := meta.Get(pc)

	title := getString(front, "title")
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), ".md")
	}

	entry.Title = title
	entry.Slug = getString(front, "slug")
	entry.Content = buf.String()

	entry.Excerpt = getString(front, "description")
	if entry.Excerpt == "" {
		entry.Excerpt = seo.Describe(entry.Content, seo.DefaultDescriptionLength)
	}

	entry.Visibility = models.VisibilityPublic
	if getBool(front, "draft") {
		entry.Visibility = models.VisibilityPrivate
	}

	date, err := getDate(front)
	if err != nil {
		return entry, err
	}
	entry.Date = date

	return entry, nil
}

// getDate reads the date field. The YAML decoder resolves unquoted dates to
// time.Time already; quoted ones arrive as strings.
func getDate(m map[string]interface{}) (time.Time, error) {
	v, ok := m["date"]
	if !ok {
		return time.Now().UTC(), nil
	}
	switch d := v.(type) {
	case time.Time:
		return d.UTC(), nil
	case string:
		return seo.ParseDate(d)
	default:
		return time.Time{}, fmt.Errorf("unsupported date value %v", v)
	}
}

func getString(m map[string]interface{}, k string) string {
	if v, ok := m[k]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func getBool(m map[string]interface{}, k string) bool {
	if v, ok := m[k]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
