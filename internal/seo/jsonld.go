package seo

import (
	"strings"

	"folio/internal/models"
)

const schemaContext = "https://schema.org"

// StructuredData is the closed set of JSON-LD documents the site emits. Each
// schema kind is its own variant with one constructor; optional source fields
// that are absent stay absent in the marshaled output (omitempty), never null.
type StructuredData interface {
	schemaType() string
}

// PersonLD is a schema.org Person document.
type PersonLD struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	JobTitle    string   `json:"jobTitle,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	SameAs      []string `json:"sameAs,omitempty"`
}

func (PersonLD) schemaType() string { return "Person" }

// PersonData is the input for NewPerson.
type PersonData struct {
	Name        string
	URL         string
	JobTitle    string
	Description string
	Image       string
	SameAs      []string
}

// NewPerson builds the Person document for the site owner.
func NewPerson(data PersonData) PersonLD {
	return PersonLD{
		Context:     schemaContext,
		Type:        "Person",
		Name:        data.Name,
		URL:         data.URL,
		JobTitle:    data.JobTitle,
		Description: data.Description,
		Image:       data.Image,
		SameAs:      data.SameAs,
	}
}

// AuthorLD is the nested author sub-object of an Article.
type AuthorLD struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// ImageLD is a nested schema.org ImageObject.
type ImageLD struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// ArticleLD is a schema.org Article document for a diary entry.
type ArticleLD struct {
	Context       string   `json:"@context"`
	Type          string   `json:"@type"`
	Headline      string   `json:"headline"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	DatePublished string   `json:"datePublished"`
	DateModified  string   `json:"dateModified,omitempty"`
	Author        AuthorLD `json:"author"`
	Image         *ImageLD `json:"image,omitempty"`
}

func (ArticleLD) schemaType() string { return "Article" }

// ArticleData is the input for NewArticle.
type ArticleData struct {
	Title         string
	Description   string
	URL           string
	DatePublished string
	DateModified  string
	AuthorName    string
	AuthorURL     string
	Image         string
}

// NewArticle builds the Article document for a diary entry page.
func NewArticle(data ArticleData) ArticleLD {
	art := ArticleLD{
		Context:       schemaContext,
		Type:          "Article",
		Headline:      data.Title,
		Description:   data.Description,
		URL:           data.URL,
		DatePublished: data.DatePublished,
		DateModified:  data.DateModified,
		Author: AuthorLD{
			Type: "Person",
			Name: data.AuthorName,
			URL:  data.AuthorURL,
		},
	}
	if data.Image != "" {
		art.Image = &ImageLD{Type: "ImageObject", URL: data.Image}
	}
	return art
}

// SoftwareApplicationLD is a schema.org SoftwareApplication document for a
// project page.
type SoftwareApplicationLD struct {
	Context             string `json:"@context"`
	Type                string `json:"@type"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	URL                 string `json:"url"`
	Image               string `json:"image,omitempty"`
	ApplicationCategory string `json:"applicationCategory,omitempty"`
	OperatingSystem     string `json:"operatingSystem,omitempty"`
}

func (SoftwareApplicationLD) schemaType() string { return "SoftwareApplication" }

// ProjectData is the input for NewSoftwareApplication.
type ProjectData struct {
	Name         string
	Description  string
	URL          string
	Image        string
	Technologies []string
}

// NewSoftwareApplication builds the SoftwareApplication document for a
// project. The technology list is carried in the operatingSystem field, the
// closest schema.org slot for a stack description.
func NewSoftwareApplication(data ProjectData) SoftwareApplicationLD {
	app := SoftwareApplicationLD{
		Context:     schemaContext,
		Type:        "SoftwareApplication",
		Name:        data.Name,
		Description: data.Description,
		URL:         data.URL,
		Image:       data.Image,
	}
	if len(data.Technologies) > 0 {
		app.ApplicationCategory = "DeveloperApplication"
		app.OperatingSystem = strings.Join(data.Technologies, ", ")
	}
	return app
}

// WebsiteLD is a schema.org WebSite document.
type WebsiteLD struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

func (WebsiteLD) schemaType() string { return "WebSite" }

// WebsiteData is the input for NewWebsite.
type WebsiteData struct {
	Name        string
	URL         string
	Description string
}

// NewWebsite builds the WebSite document for the home page.
func NewWebsite(data WebsiteData) WebsiteLD {
	return WebsiteLD{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        data.Name,
		URL:         data.URL,
		Description: data.Description,
	}
}

// ListItemLD is one element of a BreadcrumbList.
type ListItemLD struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

// BreadcrumbListLD is a schema.org BreadcrumbList document.
type BreadcrumbListLD struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	ItemListElement []ListItemLD `json:"itemListElement"`
}

func (BreadcrumbListLD) schemaType() string { return "BreadcrumbList" }

// NewBreadcrumbList builds the BreadcrumbList document for a trail. A Home
// entry is prepended to the caller-supplied crumbs and positions count from
// 1. Crumb links are resolved to absolute form; a crumb without a link (the
// current page) omits the item field.
func NewBreadcrumbList(crumbs []models.Breadcrumb, r *Resolver) BreadcrumbListLD {
	all := append([]models.Breadcrumb{{Label: "Home", Link: "/"}}, crumbs...)
	items := make([]ListItemLD, 0, len(all))
	for i, crumb := range all {
		item := ListItemLD{
			Type:     "ListItem",
			Position: i + 1,
			Name:     crumb.Label,
		}
		if crumb.Link != "" {
			item.Item = r.Resolve(crumb.Link)
		}
		items = append(items, item)
	}
	return BreadcrumbListLD{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}
