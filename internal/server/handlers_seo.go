package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"folio/internal/models"
	"folio/internal/seo"
)

// pageMetadata is the head-metadata payload the frontend renders into the
// document head: title, description, canonical link, meta tags in render
// order and JSON-LD documents.
type pageMetadata struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Canonical      string               `json:"canonical"`
	MetaTags       []seo.MetaTag        `json:"metaTags"`
	StructuredData []seo.StructuredData `json:"structuredData"`
}

// handleSEOPage computes head metadata for one page:
// /api/seo/page?type=home|project|diary|page with slug= or path=.
func (s *Server) handleSEOPage(c *fiber.Ctx) error {
	resolver := seo.NewResolver(seo.StaticBase(s.requestBase(c)))

	switch c.Query("type", "home") {
	case "home":
		return c.JSON(s.homeMetadata(resolver))
	case "project":
		return s.projectMetadata(c, resolver)
	case "diary":
		return s.diaryMetadata(c, resolver)
	case "page":
		return c.JSON(s.plainPageMetadata(c.Query("path", "/"), resolver))
	default:
		return fiber.ErrBadRequest
	}
}

func (s *Server) siteName(c *fiber.Ctx) string {
	if info, err := s.source.SiteInfo(c.UserContext()); err == nil && info.SiteName != "" {
		return info.SiteName
	}
	return s.cfg.Title
}

func (s *Server) tagSets(title, description, url, ogType, image string, r *seo.Resolver) []seo.MetaTag {
	tags := seo.OpenGraphTags(seo.OpenGraphData{
		Title:       title,
		Description: description,
		URL:         url,
		Type:        ogType,
		Image:       image,
		SiteName:    s.cfg.Title,
	}, r)
	return append(tags, seo.TwitterCardTags(seo.TwitterCardData{
		Site:        s.cfg.Twitter.Site,
		Creator:     s.cfg.Twitter.Creator,
		Title:       title,
		Description: description,
		Image:       image,
	}, r)...)
}

func (s *Server) homeMetadata(r *seo.Resolver) pageMetadata {
	title := s.cfg.Title
	description := seo.Truncate(s.cfg.Description, seo.DefaultDescriptionLength)

	structured := []seo.StructuredData{
		seo.NewWebsite(seo.WebsiteData{
			Name:        title,
			URL:         r.BaseURL(),
			Description: description,
		}),
	}
	if s.cfg.Author.Name != "" {
		structured = append(structured, seo.NewPerson(seo.PersonData{
			Name:        s.cfg.Author.Name,
			URL:         s.cfg.Author.URL,
			JobTitle:    s.cfg.Author.JobTitle,
			Description: description,
			Image:       s.cfg.Author.Image,
			SameAs:      s.cfg.Author.SameAs,
		}))
	}

	return pageMetadata{
		Title:          title,
		Description:    description,
		Canonical:      r.Resolve("/"),
		MetaTags:       s.tagSets(title, description, "/", "website", "", r),
		StructuredData: structured,
	}
}

func (s *Server) projectMetadata(c *fiber.Ctx, r *seo.Resolver) error {
	p, err := s.source.Project(c.UserContext(), c.Query("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}

	source := p.Overview
	if source == "" {
		source = p.Description
	}
	description := seo.Describe(source, seo.DefaultDescriptionLength)
	path := "/project/" + p.Slug
	canonical := r.Resolve(path)

	crumbs := []models.Breadcrumb{
		{Label: "Portfolio", Link: "/portfolio"},
		{Label: p.Title},
	}

	var image string
	if p.ImgSrc != "" {
		image = r.Resolve(p.ImgSrc)
	}

	return c.JSON(pageMetadata{
		Title:       p.Title,
		Description: description,
		Canonical:   canonical,
		MetaTags:    s.tagSets(p.Title, description, path, "website", p.ImgSrc, r),
		StructuredData: []seo.StructuredData{
			seo.NewSoftwareApplication(seo.ProjectData{
				Name:         p.Title,
				Description:  description,
				URL:          canonical,
				Image:        image,
				Technologies: p.Technologies,
			}),
			seo.NewBreadcrumbList(crumbs, r),
		},
	})
}

func (s *Server) diaryMetadata(c *fiber.Ctx, r *seo.Resolver) error {
	d, err := s.source.Diary(c.UserContext(), c.Query("slug"))
	if err != nil || !d.Public() {
		return fiber.ErrNotFound
	}

	source := d.Content
	if source == "" {
		source = d.Excerpt
	}
	description := seo.Describe(source, seo.DefaultDescriptionLength)
	path := "/diary/" + d.Slug
	canonical := r.Resolve(path)

	article := seo.ArticleData{
		Title:         d.Title,
		Description:   description,
		URL:           canonical,
		DatePublished: d.Date.UTC().Format(time.RFC3339),
		AuthorName:    s.siteName(c),
		AuthorURL:     r.BaseURL(),
	}
	if !d.UpdatedAt.IsZero() && d.UpdatedAt.After(d.Date) {
		article.DateModified = d.UpdatedAt.UTC().Format(time.RFC3339)
	}

	crumbs := []models.Breadcrumb{
		{Label: "Diaries", Link: "/diaries"},
		{Label: d.Title},
	}

	return c.JSON(pageMetadata{
		Title:       d.Title,
		Description: description,
		Canonical:   canonical,
		MetaTags:    s.tagSets(d.Title, description, path, "article", "", r),
		StructuredData: []seo.StructuredData{
			seo.NewArticle(article),
			seo.NewBreadcrumbList(crumbs, r),
		},
	})
}

// plainPageMetadata covers static pages with no backing record; breadcrumbs
// are derived from the path segments.
func (s *Server) plainPageMetadata(path string, r *seo.Resolver) pageMetadata {
	title := s.cfg.Title
	description := seo.Truncate(s.cfg.Description, seo.DefaultDescriptionLength)
	crumbs := seo.BreadcrumbTrail(path, nil)

	return pageMetadata{
		Title:       title,
		Description: description,
		Canonical:   r.Resolve(path),
		MetaTags:    s.tagSets(title, description, path, "website", "", r),
		StructuredData: []seo.StructuredData{
			seo.NewBreadcrumbList(crumbs, r),
		},
	}
}
