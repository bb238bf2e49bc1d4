// Package server exposes the syndication endpoints (feed.xml, sitemap.xml)
// and the JSON content/SEO API over fiber.
package server

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/tdewolff/minify/v2"
	minifyxml "github.com/tdewolff/minify/v2/xml"

	"folio/internal/config"
	"folio/internal/content"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Server wires the content source to the HTTP surface.
type Server struct {
	cfg      *config.Config
	source   content.Source
	app      *fiber.App
	minifier *minify.M
}

// New builds the fiber app and registers all routes.
func New(cfg *config.Config, source content.Source) *Server {
	s := &Server{
		cfg:    cfg,
		source: source,
	}

	if cfg.Server.MinifyXML {
		s.minifier = minify.New()
		s.minifier.AddFunc("text/xml", minifyxml.Minify)
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "folio",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})
	s.app.Use(recoverer.New())
	s.app.Use(logger.New())

	s.app.Get("/feed.xml", s.handleFeed)
	s.app.Get("/sitemap.xml", s.handleSitemap)

	api := s.app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/projects", s.handleProjects)
	api.Get("/projects/:slug", s.handleProject)
	api.Get("/diaries", s.handleDiaries)
	api.Get("/diaries/:slug", s.handleDiary)
	api.Get("/seo/page", s.handleSEOPage)

	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.cfg.Server.Addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("Received %s, shutting down...", sig)
		return s.app.ShutdownWithTimeout(5 * time.Second)
	}
}

// requestBase resolves the origin used to absolutize generated URLs. Behind
// a trusted proxy the forwarded headers win; otherwise the configured base
// URL is authoritative.
func (s *Server) requestBase(c *fiber.Ctx) string {
	if s.cfg.Server.TrustProxy {
		proto := c.Get("X-Forwarded-Proto")
		if proto == "" {
			proto = c.Protocol()
		}
		host := c.Get("X-Forwarded-Host")
		if host == "" {
			host = c.Hostname()
		}
		if host != "" {
			return proto + "://" + host
		}
	}
	return s.cfg.BaseURL
}

func (s *Server) cacheControl() string {
	age := s.cfg.Server.CacheMaxAge
	return fmt.Sprintf("public, max-age=%d, s-maxage=%d", age, age)
}

// minifyXML compresses the document when minification is enabled; on any
// minifier error the original document is served.
func (s *Server) minifyXML(doc string) string {
	if s.minifier == nil {
		return doc
	}
	out, err := s.minifier.String("text/xml", doc)
	if err != nil {
		log.Printf("⚠️ XML minification failed: %v", err)
		return doc
	}
	return out
}
