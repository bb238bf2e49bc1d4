package config

import (
	"os"
	"testing"
	"time"
)

// changeToTempDir changes to a temp directory and returns a cleanup function
func changeToTempDir(t *testing.T) func() {
	t.Helper()
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	return func() {
		if err := os.Chdir(originalDir); err != nil {
			t.Errorf("Failed to restore original directory: %v", err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cleanup := changeToTempDir(t)
	defer cleanup()

	cfg, err := Load([]string{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Title != "Portfolio" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Portfolio")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Server.CacheMaxAge != 3600 {
		t.Errorf("CacheMaxAge = %d, want 3600", cfg.Server.CacheMaxAge)
	}
	if cfg.Feed.Limit != 20 {
		t.Errorf("Feed.Limit = %d, want 20", cfg.Feed.Limit)
	}
	if cfg.Feed.DescriptionLength != 300 {
		t.Errorf("Feed.DescriptionLength = %d, want 300", cfg.Feed.DescriptionLength)
	}
	if cfg.Content.DBPath == "" {
		t.Error("Content.DBPath should not be empty")
	}
	if cfg.Content.APITimeout != 10*time.Second {
		t.Errorf("Content.APITimeout = %v, want 10s", cfg.Content.APITimeout)
	}
}

func TestLoad_FromYAML(t *testing.T) {
	cleanup := changeToTempDir(t)
	defer cleanup()

	yamlContent := `
title: "Test Site"
description: "A test site"
baseURL: "https://test.example.com/"
author:
  name: "Test Author"
  url: "https://author.example.com"
twitter:
  site: "@tester"
server:
  addr: ":9999"
  minifyXML: true
feed:
  limit: 5
`
	if err := os.WriteFile("folio.yaml", []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write folio.yaml: %v", err)
	}

	cfg, err := Load([]string{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Title != "Test Site" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.BaseURL != "https://test.example.com" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.BaseURL)
	}
	if cfg.Author.Name != "Test Author" {
		t.Errorf("Author.Name = %q", cfg.Author.Name)
	}
	if cfg.Twitter.Site != "@tester" {
		t.Errorf("Twitter.Site = %q", cfg.Twitter.Site)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if !cfg.Server.MinifyXML {
		t.Error("MinifyXML should be true")
	}
	if cfg.Feed.Limit != 5 {
		t.Errorf("Feed.Limit = %d", cfg.Feed.Limit)
	}
}

func TestLoad_FlagOverrides(t *testing.T) {
	cleanup := changeToTempDir(t)
	defer cleanup()

	cfg, err := Load([]string{"-addr", ":7070", "-baseurl", "https://cli.example.com", "-db", "alt.db"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.BaseURL != "https://cli.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Content.DBPath != "alt.db" {
		t.Errorf("DBPath = %q", cfg.Content.DBPath)
	}
}

func TestValidateClamps(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Config)
		check func(*testing.T, *Config)
	}{
		{
			name:  "feed limit floor",
			setup: func(c *Config) { c.Feed.Limit = 0 },
			check: func(t *testing.T, c *Config) {
				if c.Feed.Limit != 1 {
					t.Errorf("Feed.Limit = %d, want 1", c.Feed.Limit)
				}
			},
		},
		{
			name:  "feed limit ceiling",
			setup: func(c *Config) { c.Feed.Limit = 9000 },
			check: func(t *testing.T, c *Config) {
				if c.Feed.Limit != 100 {
					t.Errorf("Feed.Limit = %d, want 100", c.Feed.Limit)
				}
			},
		},
		{
			name:  "negative cache age",
			setup: func(c *Config) { c.Server.CacheMaxAge = -5 },
			check: func(t *testing.T, c *Config) {
				if c.Server.CacheMaxAge != 0 {
					t.Errorf("CacheMaxAge = %d, want 0", c.Server.CacheMaxAge)
				}
			},
		},
		{
			name:  "description length floor",
			setup: func(c *Config) { c.Feed.DescriptionLength = 2 },
			check: func(t *testing.T, c *Config) {
				if c.Feed.DescriptionLength != 50 {
					t.Errorf("DescriptionLength = %d, want 50", c.Feed.DescriptionLength)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.setup(cfg)
			cfg.validate()
			tt.check(t, cfg)
		})
	}
}
