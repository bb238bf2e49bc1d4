// handles folio.yaml and command-line flag overrides
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AuthorConfig identifies the site owner for feeds and structured data.
type AuthorConfig struct {
	Name     string   `yaml:"name"`
	URL      string   `yaml:"url"`
	JobTitle string   `yaml:"jobTitle"`
	Image    string   `yaml:"image"`
	SameAs   []string `yaml:"sameAs"`
}

// TwitterConfig holds the Twitter Card account handles.
type TwitterConfig struct {
	Site    string `yaml:"site"`
	Creator string `yaml:"creator"`
}

// ServerConfig holds HTTP serving parameters.
type ServerConfig struct {
	Addr        string `yaml:"addr"`
	CacheMaxAge int    `yaml:"cacheMaxAge"` // seconds, for feed/sitemap responses
	TrustProxy  bool   `yaml:"trustProxy"`  // derive base URL from X-Forwarded headers
	MinifyXML   bool   `yaml:"minifyXML"`
}

// ContentConfig selects the content source: a local sqlite store, or the
// upstream backend API when APIBaseURL is set.
type ContentConfig struct {
	DBPath     string        `yaml:"dbPath"`
	APIBaseURL string        `yaml:"apiBaseURL"`
	APITimeout time.Duration `yaml:"apiTimeout"`
}

// FeedConfig holds feed generation parameters.
type FeedConfig struct {
	Limit             int `yaml:"limit"`
	DescriptionLength int `yaml:"descriptionLength"`
}

// Config is the full service configuration, loaded from folio.yaml with
// flag overrides.
type Config struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	BaseURL     string        `yaml:"baseURL"`
	Author      AuthorConfig  `yaml:"author"`
	Twitter     TwitterConfig `yaml:"twitter"`
	Server      ServerConfig  `yaml:"server"`
	Content     ContentConfig `yaml:"content"`
	Feed        FeedConfig    `yaml:"feed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Title:       "Portfolio",
		Description: "Technical articles, thoughts, and lessons learned along the journey.",
		BaseURL:     "https://example.com",
		Server: ServerConfig{
			Addr:        ":8080",
			CacheMaxAge: 3600,
		},
		Content: ContentConfig{
			DBPath:     "data/folio.db",
			APITimeout: 10 * time.Second,
		},
		Feed: FeedConfig{
			Limit:             20,
			DescriptionLength: 300,
		},
	}
}

// Load reads folio.yaml from the working directory (when present), applies
// flag overrides from args and validates the result.
func Load(args []string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile("folio.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse folio.yaml: %w", err)
		}
	}

	fs := flag.NewFlagSet("folio", flag.ContinueOnError)
	addr := fs.String("addr", "", "Listen address (overrides folio.yaml)")
	baseURL := fs.String("baseurl", "", "Site base URL (overrides folio.yaml)")
	dbPath := fs.String("db", "", "Path to the sqlite content database")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *dbPath != "" {
		cfg.Content.DBPath = *dbPath
	}

	cfg.validate()
	return cfg, nil
}

// validate clamps values to sane bounds.
func (c *Config) validate() {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.CacheMaxAge < 0 {
		c.Server.CacheMaxAge = 0
	}
	if c.Server.CacheMaxAge > 86400 {
		c.Server.CacheMaxAge = 86400
	}

	if c.Feed.Limit < 1 {
		c.Feed.Limit = 1
	}
	if c.Feed.Limit > 100 {
		c.Feed.Limit = 100
	}
	if c.Feed.DescriptionLength < 50 {
		c.Feed.DescriptionLength = 50
	}
	if c.Feed.DescriptionLength > 1000 {
		c.Feed.DescriptionLength = 1000
	}

	if c.Content.APITimeout < time.Second {
		c.Content.APITimeout = time.Second
	}
	if c.Content.APITimeout > time.Minute {
		c.Content.APITimeout = time.Minute
	}
}
