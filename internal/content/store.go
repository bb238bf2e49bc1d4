package content

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/mattn/go-sqlite3"

	"folio/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    description TEXT,
    img_src TEXT,
    role TEXT,
    technologies TEXT,
    overview TEXT,
    outcomes TEXT,
    gallery TEXT,
    links TEXT,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS diary_entries (
    id TEXT PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    excerpt TEXT,
    content TEXT,
    date DATETIME NOT NULL,
    visibility TEXT NOT NULL DEFAULT 'public',
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS site_config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_diary_date ON diary_entries(date);
`

// Store is the sqlite-backed content repository. It implements Source and
// the write operations used by the importer and the content API.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the sqlite database at path and
// applies the schema. Use ":memory:" for an ephemeral store.
func OpenStore(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Projects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, title, description, img_src, role, technologies,
		       overview, outcomes, gallery, links, created_at, updated_at
		FROM projects
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *Store) Project(ctx context.Context, slugStr string) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, slug, title, description, img_src, role, technologies,
		       overview, outcomes, gallery, links, created_at, updated_at
		FROM projects WHERE slug = ?
	`, slugStr)
	p, err := scanProject(row)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) Diaries(ctx context.Context) ([]models.DiaryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, title, excerpt, content, date, visibility, created_at, updated_at
		FROM diary_entries
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diaries []models.DiaryEntry
	for rows.Next() {
		var d models.DiaryEntry
		var excerpt, content sql.NullString
		if err := rows.Scan(&d.ID, &d.Slug, &d.Title, &excerpt, &content,
			&d.Date, &d.Visibility, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		d.Excerpt = excerpt.String
		d.Content = content.String
		diaries = append(diaries, d)
	}
	return diaries, rows.Err()
}

func (s *Store) Diary(ctx context.Context, slugStr string) (*models.DiaryEntry, error) {
	var d models.DiaryEntry
	var excerpt, content sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, title, excerpt, content, date, visibility, created_at, updated_at
		FROM diary_entries WHERE slug = ?
	`, slugStr).Scan(&d.ID, &d.Slug, &d.Title, &excerpt, &content,
		&d.Date, &d.Visibility, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.Excerpt = excerpt.String
	d.Content = content.String
	return &d, nil
}

func (s *Store) SiteInfo(ctx context.Context) (models.SiteInfo, error) {
	info := models.SiteInfo{}
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM site_config WHERE key = 'site_name'`).Scan(&info.SiteName)
	switch err {
	case nil:
		info.Initialized = true
	case sql.ErrNoRows:
		// Not initialized yet; callers fall back to configured defaults.
	default:
		return info, err
	}
	return info, nil
}

// SetSiteName records the site name, marking the site initialized.
func (s *Store) SetSiteName(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO site_config (key, value) VALUES ('site_name', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, name)
	return err
}

// UpsertProject inserts or updates a project keyed by slug. The slug is
// normalized to URL-safe form; a missing slug is derived from the title.
func (s *Store) UpsertProject(ctx context.Context, p models.Project) (models.Project, error) {
	if p.Slug == "" {
		p.Slug = p.Title
	}
	p.Slug = slug.Make(p.Slug)
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	technologies, gallery, links, err := marshalLists(p)
	if err != nil {
		return p, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, slug, title, description, img_src, role,
			technologies, overview, outcomes, gallery, links, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			img_src = excluded.img_src,
			role = excluded.role,
			technologies = excluded.technologies,
			overview = excluded.overview,
			outcomes = excluded.outcomes,
			gallery = excluded.gallery,
			links = excluded.links,
			updated_at = excluded.updated_at
	`, p.ID, p.Slug, p.Title, p.Description, p.ImgSrc, p.Role,
		technologies, p.Overview, p.Outcomes, gallery, links, p.CreatedAt, p.UpdatedAt)
	return p, err
}

// UpsertDiary inserts or updates a diary entry keyed by slug. Visibility
// defaults to public.
func (s *Store) UpsertDiary(ctx context.Context, d models.DiaryEntry) (models.DiaryEntry, error) {
	if d.Slug == "" {
		d.Slug = d.Title
	}
	d.Slug = slug.Make(d.Slug)
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Visibility == "" {
		d.Visibility = models.VisibilityPublic
	}
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	if d.Date.IsZero() {
		d.Date = now
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO diary_entries (id, slug, title, excerpt, content, date,
			visibility, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			title = excluded.title,
			excerpt = excluded.excerpt,
			content = excluded.content,
			date = excluded.date,
			visibility = excluded.visibility,
			updated_at = excluded.updated_at
	`, d.ID, d.Slug, d.Title, d.Excerpt, d.Content, d.Date,
		d.Visibility, d.CreatedAt, d.UpdatedAt)
	return d, err
}

func marshalLists(p models.Project) (technologies, gallery, links string, err error) {
	for _, pair := range []struct {
		dst *string
		src []string
	}{
		{&technologies, p.Technologies},
		{&gallery, p.Gallery},
		{&links, p.Links},
	} {
		if pair.src == nil {
			pair.src = []string{}
		}
		out, merr := json.MarshalToString(pair.src)
		if merr != nil {
			return "", "", "", merr
		}
		*pair.dst = out
	}
	return technologies, gallery, links, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row scanner) (models.Project, error) {
	var p models.Project
	var description, imgSrc, role, overview, outcomes sql.NullString
	var technologies, gallery, links sql.NullString
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &description, &imgSrc, &role,
		&technologies, &overview, &outcomes, &gallery, &links,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, err
	}
	p.Description = description.String
	p.ImgSrc = imgSrc.String
	p.Role = role.String
	p.Overview = overview.String
	p.Outcomes = outcomes.String
	for _, pair := range []struct {
		dst *[]string
		src sql.NullString
	}{
		{&p.Technologies, technologies},
		{&p.Gallery, gallery},
		{&p.Links, links},
	} {
		if pair.src.String == "" {
			continue
		}
		if err := json.UnmarshalFromString(pair.src.String, pair.dst); err != nil {
			return p, fmt.Errorf("corrupt list column for project %s: %w", p.Slug, err)
		}
	}
	return p, nil
}
