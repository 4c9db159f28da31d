package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alfredoptarigan/resume-analyser/internal/config"
	"alfredoptarigan/resume-analyser/internal/handlers"
	"alfredoptarigan/resume-analyser/internal/services"
	"alfredoptarigan/resume-analyser/internal/views"
)

// formOverhead leaves room for the job description and multipart framing
// on top of the resume itself.
const formOverhead = 1 << 20

type Dependencies struct {
	Analyzer services.AnalyzerService
	Storage  services.StorageService
	Catalog  *services.Catalog
	Gatherer prometheus.Gatherer
}

// New builds the Fiber app with middleware and every route registered.
func New(cfg *config.Config, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Smart Resume Analyser",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + formOverhead,
		Views:        views.NewEngine(cfg.IsDev()),
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	pageHandler := handlers.NewPageHandler(deps.Analyzer, deps.Storage)
	analyzeHandler := handlers.NewAnalyzeHandler(deps.Analyzer, deps.Storage)
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)

	app.Get("/", pageHandler.HandleIndex)
	app.Post("/", pageHandler.HandleSubmit)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/analyze/text", analyzeHandler.HandleAnalyzeText)
	api.Post("/analyze/export", analyzeHandler.HandleExport)
	api.Get("/catalog", catalogHandler.HandleGetCatalog)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
