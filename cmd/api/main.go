package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"alfredoptarigan/resume-analyser/internal/config"
	"alfredoptarigan/resume-analyser/internal/metrics"
	"alfredoptarigan/resume-analyser/internal/repositories"
	"alfredoptarigan/resume-analyser/internal/server"
	"alfredoptarigan/resume-analyser/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}
	log.Printf("✅ Catalog loaded from %s: %d rules, %d videos\n",
		cfg.Catalog.Source, len(catalog.Rules()), len(catalog.Videos()))

	// Optional semantic similarity
	var embedder services.EmbeddingService
	if cfg.Gemini.APIKey != "" {
		embedder, err = services.NewGeminiService(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.EmbedModel, 2)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("ℹ️  GEMINI_API_KEY not set, semantic score disabled")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	analyzer := services.NewAnalyzerService(
		services.NewPDFParserService(),
		services.NewSimilarityScorer(),
		services.NewSuggestionMatcher(catalog),
		embedder,
		m,
		cfg.Analysis.VideoCap,
	)
	log.Println("✅ Analyzer service initialized")

	app := server.New(cfg, server.Dependencies{
		Analyzer: analyzer,
		Storage:  services.NewStorageService(cfg.Upload.MaxFileSize),
		Catalog:  catalog,
		Gatherer: prometheus.DefaultGatherer,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Open http://localhost%s to analyse a resume\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func loadCatalog(cfg *config.Config) (*services.Catalog, error) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		return services.DefaultCatalog()
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	// The catalog is read once; the connection is not needed afterwards.
	defer sqlDB.Close()

	return services.LoadCatalog(repositories.NewCatalogRepository(db))
}
