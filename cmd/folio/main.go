package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/afero"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/importer"
	"folio/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "serve":
		runServe(args)
	case "import":
		runImport(args)
	case "init":
		runInit()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServe(args []string) {
	cfg, err := config.Load(args)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	source, closeSource, err := openSource(cfg)
	if err != nil {
		log.Fatalf("Failed to open content source: %v", err)
	}
	defer closeSource()

	fmt.Printf("🚀 Serving %s on %s\n", cfg.Title, cfg.Server.Addr)
	if err := server.New(cfg, source).Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func runImport(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: folio import <dir>")
		os.Exit(1)
	}

	cfg, err := config.Load(args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	store, err := content.OpenStore(cfg.Content.DBPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	imp := importer.New(afero.NewOsFs(), store)
	n, err := imp.Run(context.Background(), args[0])
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	fmt.Printf("✅ Imported %d entries\n", n)
}

const starterConfig = `title: "Portfolio"
description: "Technical articles, thoughts, and lessons learned along the journey."
baseURL: "https://example.com"

author:
  name: ""
  url: ""

twitter:
  site: ""
  creator: ""

server:
  addr: ":8080"
  cacheMaxAge: 3600
  trustProxy: false
  minifyXML: false

content:
  dbPath: "data/folio.db"

feed:
  limit: 20
  descriptionLength: 300
`

func runInit() {
	if _, err := os.Stat("folio.yaml"); err == nil {
		fmt.Println("folio.yaml already exists, nothing to do")
		return
	}
	if err := os.WriteFile("folio.yaml", []byte(starterConfig), 0644); err != nil {
		log.Fatalf("Failed to write folio.yaml: %v", err)
	}

	cfg, err := config.Load(nil)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	store, err := content.OpenStore(cfg.Content.DBPath)
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()
	if err := store.SetSiteName(context.Background(), cfg.Title); err != nil {
		log.Fatalf("Failed to initialize site: %v", err)
	}

	fmt.Println("✅ Wrote starter folio.yaml and initialized the content store")
}

// openSource picks the content backend: the upstream API when configured,
// else the local sqlite store.
func openSource(cfg *config.Config) (content.Source, func(), error) {
	if cfg.Content.APIBaseURL != "" {
		return content.NewAPISource(cfg.Content.APIBaseURL, cfg.Content.APITimeout), func() {}, nil
	}
	store, err := content.OpenStore(cfg.Content.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

func printUsage() {
	fmt.Println("Usage: folio <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  serve          Start the site server")
	fmt.Println("  import <dir>   Import markdown posts as diary entries")
	fmt.Println("  init           Write a starter folio.yaml")
	fmt.Println("  help           Show this help message")
	fmt.Println("\nFlags for serve:")
	fmt.Println("  -addr          Listen address")
	fmt.Println("  -baseurl       Site base URL")
	fmt.Println("  -db            Path to the sqlite content database")
}
