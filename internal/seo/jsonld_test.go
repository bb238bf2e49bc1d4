package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"folio/internal/models"
)

func marshalLD(t *testing.T, v StructuredData) string {
	t.Helper()
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return string(out)
}

func TestNewPersonOmitsAbsentFields(t *testing.T) {
	out := marshalLD(t, NewPerson(PersonData{Name: "Ada", URL: "https://example.com"}))

	for _, key := range []string{"jobTitle", "description", "image", "sameAs"} {
		if strings.Contains(out, key) {
			t.Errorf("absent field %q emitted: %s", key, out)
		}
	}
	if strings.Contains(out, "null") {
		t.Errorf("null leaked into document: %s", out)
	}
	if !strings.Contains(out, `"@context":"https://schema.org"`) {
		t.Errorf("missing @context: %s", out)
	}
	if !strings.Contains(out, `"@type":"Person"`) {
		t.Errorf("missing @type: %s", out)
	}
}

func TestNewPersonFull(t *testing.T) {
	p := NewPerson(PersonData{
		Name:     "Ada",
		URL:      "https://example.com",
		JobTitle: "Engineer",
		SameAs:   []string{"https://github.com/ada"},
	})
	out := marshalLD(t, p)

	if !strings.Contains(out, `"jobTitle":"Engineer"`) {
		t.Errorf("jobTitle missing: %s", out)
	}
	if !strings.Contains(out, `"sameAs":["https://github.com/ada"]`) {
		t.Errorf("sameAs missing: %s", out)
	}
}

func TestNewArticle(t *testing.T) {
	art := NewArticle(ArticleData{
		Title:         "Post",
		Description:   "Desc",
		URL:           "https://example.com/diary/post",
		DatePublished: "2024-02-01T10:30:00Z",
		AuthorName:    "Ada",
		Image:         "https://example.com/i.png",
	})

	if art.Author.Type != "Person" || art.Author.Name != "Ada" {
		t.Errorf("author sub-object = %+v", art.Author)
	}
	if art.Image == nil || art.Image.Type != "ImageObject" {
		t.Errorf("image sub-object = %+v", art.Image)
	}

	out := marshalLD(t, art)
	if strings.Contains(out, "dateModified") {
		t.Errorf("absent dateModified emitted: %s", out)
	}
	// Author URL was not supplied; its key must be absent inside the nested object.
	if strings.Contains(out, `"url":""`) {
		t.Errorf("empty url emitted: %s", out)
	}
}

func TestNewArticleWithoutImage(t *testing.T) {
	art := NewArticle(ArticleData{
		Title:         "Post",
		Description:   "Desc",
		URL:           "https://example.com/diary/post",
		DatePublished: "2024-02-01T10:30:00Z",
		AuthorName:    "Ada",
	})
	out := marshalLD(t, art)
	if strings.Contains(out, "image") {
		t.Errorf("absent image emitted: %s", out)
	}
}

func TestNewSoftwareApplication(t *testing.T) {
	app := NewSoftwareApplication(ProjectData{
		Name:         "Tool",
		Description:  "Desc",
		URL:          "https://example.com/project/tool",
		Technologies: []string{"Go", "Redis"},
	})

	if app.ApplicationCategory != "DeveloperApplication" {
		t.Errorf("ApplicationCategory = %q", app.ApplicationCategory)
	}
	if app.OperatingSystem != "Go, Redis" {
		t.Errorf("OperatingSystem = %q", app.OperatingSystem)
	}

	bare := NewSoftwareApplication(ProjectData{Name: "Tool", Description: "D", URL: "u"})
	out := marshalLD(t, bare)
	for _, key := range []string{"applicationCategory", "operatingSystem", "image"} {
		if strings.Contains(out, key) {
			t.Errorf("absent field %q emitted: %s", key, out)
		}
	}
}

func TestNewWebsite(t *testing.T) {
	out := marshalLD(t, NewWebsite(WebsiteData{Name: "Site", URL: "https://example.com"}))
	if !strings.Contains(out, `"@type":"WebSite"`) {
		t.Errorf("missing WebSite type: %s", out)
	}
	if strings.Contains(out, "description") {
		t.Errorf("absent description emitted: %s", out)
	}
}

func TestNewBreadcrumbList(t *testing.T) {
	crumbs := []models.Breadcrumb{
		{Label: "Portfolio", Link: "/portfolio"},
		{Label: "Current Page"},
	}
	list := NewBreadcrumbList(crumbs, testResolver())

	if len(list.ItemListElement) != 3 {
		t.Fatalf("got %d items, want 3 (Home prepended)", len(list.ItemListElement))
	}

	home := list.ItemListElement[0]
	if home.Name != "Home" || home.Position != 1 || home.Item != "https://example.com/" {
		t.Errorf("home item = %+v", home)
	}

	mid := list.ItemListElement[1]
	if mid.Position != 2 || mid.Item != "https://example.com/portfolio" {
		t.Errorf("middle item = %+v", mid)
	}

	last := list.ItemListElement[2]
	if last.Position != 3 || last.Name != "Current Page" {
		t.Errorf("last item = %+v", last)
	}
	out := marshalLD(t, list)
	if strings.Contains(out, `"item":""`) {
		t.Errorf("current page must omit item: %s", out)
	}
}
