// defines the content records and site data shared across the service
package models

import "time"

// Visibility values for diary entries.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Project is a portfolio entry. Records are created and edited by the CMS;
// the syndication engine only reads them.
type Project struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImgSrc       string    `json:"img_src,omitempty"`
	Role         string    `json:"role,omitempty"`
	Technologies []string  `json:"technologies,omitempty"`
	Overview     string    `json:"overview,omitempty"`
	Outcomes     string    `json:"outcomes,omitempty"`
	Gallery      []string  `json:"gallery,omitempty"`
	Links        []string  `json:"links,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DiaryEntry is a blog/diary record. Content holds raw HTML produced by the
// CMS editor or the markdown importer.
type DiaryEntry struct {
	ID         string    `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Content    string    `json:"content,omitempty"`
	Date       time.Time `json:"date"`
	Visibility string    `json:"visibility"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Public reports whether the entry may appear in externally syndicated
// artifacts such as the RSS feed.
func (d DiaryEntry) Public() bool {
	return d.Visibility == VisibilityPublic
}

// SiteInfo is the site-level metadata supplied by the system collaborator.
type SiteInfo struct {
	SiteName    string `json:"site_name"`
	Initialized bool   `json:"initialized"`
}

// Breadcrumb is one element of a navigation trail. Link is empty for the
// current page.
type Breadcrumb struct {
	Label string `json:"label"`
	Link  string `json:"link,omitempty"`
}
