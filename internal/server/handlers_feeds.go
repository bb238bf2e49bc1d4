package server

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-multierror"

	"folio/internal/content"
	"folio/internal/feeds"
	"folio/internal/models"
	"folio/internal/seo"
)

// handleFeed serves the RSS 2.0 feed over the most recent public diary
// entries. A broken feed is worse than an empty one: upstream failures
// degrade to an empty channel with status 200.
func (s *Server) handleFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	base := s.requestBase(c)

	siteName := s.cfg.Title
	if info, err := s.source.SiteInfo(ctx); err == nil && info.SiteName != "" {
		siteName = info.SiteName
	}

	diaries, err := s.source.Diaries(ctx)
	if err != nil {
		log.Printf("⚠️ Feed content fetch failed, serving empty feed: %v", err)
		diaries = nil
	}

	public := content.PublicDiaries(diaries)
	content.SortDiaries(public)
	if len(public) > s.cfg.Feed.Limit {
		public = public[:s.cfg.Feed.Limit]
	}

	items := make([]feeds.Item, 0, len(public))
	for _, d := range public {
		link := base + "/diary/" + d.Slug
		items = append(items, feeds.Item{
			Title:       d.Title,
			Description: itemDescription(d, s.cfg.Feed.DescriptionLength),
			Link:        link,
			PubDate:     seo.FormatRSSDate(d.Date),
			Guid:        link,
			Author:      siteName,
		})
	}

	body := feeds.BuildRSS(feeds.Channel{
		Title:          siteName + " - Engineering Diaries",
		Description:    s.cfg.Description,
		Link:           base,
		Language:       "en-US",
		Copyright:      fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), siteName),
		ManagingEditor: siteName,
		LastBuildDate:  seo.FormatRSSDate(time.Now()),
		Items:          items,
	})

	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, s.cacheControl())
	return c.SendString(s.minifyXML(body))
}

// itemDescription picks the richest available text for a feed item.
func itemDescription(d models.DiaryEntry, maxLength int) string {
	switch {
	case d.Content != "":
		return seo.Describe(d.Content, maxLength)
	case d.Excerpt != "":
		return seo.Describe(d.Excerpt, maxLength)
	default:
		return seo.Describe(d.Title, maxLength)
	}
}

// handleSitemap serves the sitemaps.org document over the default URL set.
// Partial fetch failures degrade to whatever lists were retrieved; total
// failure leaves the static index pages, still status 200.
func (s *Server) handleSitemap(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var errs *multierror.Error

	projects, err := s.source.Projects(ctx)
	if err != nil {
		errs = multierror.Append(errs, err)
		projects = nil
	}
	diaries, err := s.source.Diaries(ctx)
	if err != nil {
		errs = multierror.Append(errs, err)
		diaries = nil
	}
	if err := errs.ErrorOrNil(); err != nil {
		log.Printf("⚠️ Sitemap content fetch degraded: %v", err)
	}

	body := feeds.BuildSitemap(feeds.DefaultURLSet(projects, diaries), s.requestBase(c))

	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderCacheControl, s.cacheControl())
	return c.SendString(s.minifyXML(body))
}
