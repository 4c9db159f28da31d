package main

import (
	"flag"
	"log"
	"os"

	"alfredoptarigan/resume-analyser/internal/config"
	"alfredoptarigan/resume-analyser/internal/repositories"
	"alfredoptarigan/resume-analyser/internal/services"
)

func main() {
	catalogPath := flag.String("file", "", "catalog JSON to load instead of the bundled defaults")
	flag.Parse()

	log.Println("🚀 Starting catalog seeding...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	var catalog *services.Catalog
	if *catalogPath != "" {
		log.Printf("📄 Reading catalog from %s", *catalogPath)
		data, err := os.ReadFile(*catalogPath)
		if err != nil {
			log.Fatalf("❌ Failed to read catalog file: %v", err)
		}
		catalog, err = services.ParseCatalog(data)
		if err != nil {
			log.Fatalf("❌ Invalid catalog file: %v", err)
		}
	} else {
		catalog, err = services.DefaultCatalog()
		if err != nil {
			log.Fatalf("❌ Invalid bundled catalog: %v", err)
		}
	}

	repo := repositories.NewCatalogRepository(db)
	if err := repo.ReplaceAll(catalog.Rules(), catalog.Videos()); err != nil {
		log.Fatalf("❌ Failed to seed catalog: %v", err)
	}

	log.Printf("✅ Seeded %d keyword rules and %d videos", len(catalog.Rules()), len(catalog.Videos()))
}
