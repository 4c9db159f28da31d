package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyser/internal/services"
)

const pageTitle = "Smart Resume Analyser"

// PageHandler serves the single-page form. An incomplete submission simply
// re-renders the form; it is not reported as an error.
type PageHandler struct {
	analyzer       services.AnalyzerService
	storageService services.StorageService
}

func NewPageHandler(
	analyzer services.AnalyzerService,
	storageService services.StorageService,
) *PageHandler {
	return &PageHandler{
		analyzer:       analyzer,
		storageService: storageService,
	}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": pageTitle,
	})
}

// HandleSubmit handles POST /
func (h *PageHandler) HandleSubmit(c *fiber.Ctx) error {
	form := readAnalysisForm(c)
	bind := fiber.Map{
		"Title":          pageTitle,
		"JobDescription": form.JobDescription,
	}

	if !form.complete() {
		return c.Render("index", bind)
	}

	data, err := h.storageService.ReadUpload(form.Resume)
	if err != nil {
		return h.renderError(c, bind, err)
	}

	result, err := h.analyzer.Analyze(c.UserContext(), services.AnalyzeInput{
		JobDescription: form.JobDescription,
		ResumePDF:      data,
		ResumeFilename: form.Resume.Filename,
	})
	if err != nil {
		return h.renderError(c, bind, err)
	}

	bind["Result"] = result
	return c.Render("index", bind)
}

func (h *PageHandler) renderError(c *fiber.Ctx, bind fiber.Map, err error) error {
	status, message := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("❌ Analysis failed: %v\n", err)
	}

	bind["Error"] = message
	return c.Status(status).Render("index", bind)
}
