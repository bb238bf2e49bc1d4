package server

import (
	"github.com/gofiber/fiber/v2"

	"folio/internal/content"
	"folio/internal/models"
)

func (s *Server) handleStatus(c *fiber.Ctx) error {
	info, err := s.source.SiteInfo(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content source unavailable")
	}
	if info.SiteName == "" {
		info.SiteName = s.cfg.Title
	}
	return c.JSON(info)
}

func (s *Server) handleProjects(c *fiber.Ctx) error {
	projects, err := s.source.Projects(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content source unavailable")
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return c.JSON(projects)
}

func (s *Server) handleProject(c *fiber.Ctx) error {
	p, err := s.source.Project(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(p)
}

// handleDiaries lists public entries newest-first. Private entries never
// leave the service; the CMS edits them through the upstream backend.
func (s *Server) handleDiaries(c *fiber.Ctx) error {
	diaries, err := s.source.Diaries(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content source unavailable")
	}
	public := content.PublicDiaries(diaries)
	content.SortDiaries(public)
	return c.JSON(public)
}

func (s *Server) handleDiary(c *fiber.Ctx) error {
	d, err := s.source.Diary(c.UserContext(), c.Params("slug"))
	if err != nil || !d.Public() {
		return fiber.ErrNotFound
	}
	return c.JSON(d)
}
