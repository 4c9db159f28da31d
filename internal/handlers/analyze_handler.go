package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyser/internal/export"
	"alfredoptarigan/resume-analyser/internal/models"
	"alfredoptarigan/resume-analyser/internal/services"
)

type AnalyzeHandler struct {
	analyzer       services.AnalyzerService
	storageService services.StorageService
}

type analyzeTextRequest struct {
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	storageService services.StorageService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		storageService: storageService,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	result, _, err := h.analyzeForm(c)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(models.AnalyzeResponse{
		Status: "completed",
		Result: result,
	})
}

// HandleAnalyzeText handles POST /analyze/text
func (h *AnalyzeHandler) HandleAnalyzeText(c *fiber.Ctx) error {
	var req analyzeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	result, err := h.analyzer.AnalyzeText(c.UserContext(), req.JobDescription, req.ResumeText)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(models.AnalyzeResponse{
		Status: "completed",
		Result: result,
	})
}

// HandleExport handles POST /analyze/export
func (h *AnalyzeHandler) HandleExport(c *fiber.Ctx) error {
	result, jobDescription, err := h.analyzeForm(c)
	if err != nil {
		return h.fail(c, err)
	}

	buf, err := export.WriteAnalysisReport(result, jobDescription)
	if err != nil {
		log.Printf("❌ Failed to build report for %s: %v\n", result.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build report",
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resume-analysis-%s.xlsx"`, result.ID))
	return c.Send(buf.Bytes())
}

func (h *AnalyzeHandler) analyzeForm(c *fiber.Ctx) (*models.AnalysisResult, string, error) {
	form := readAnalysisForm(c)
	if !form.complete() {
		return nil, "", services.ErrIncompleteInput
	}

	data, err := h.storageService.ReadUpload(form.Resume)
	if err != nil {
		return nil, "", err
	}

	result, err := h.analyzer.Analyze(c.UserContext(), services.AnalyzeInput{
		JobDescription: form.JobDescription,
		ResumePDF:      data,
		ResumeFilename: form.Resume.Filename,
	})
	if err != nil {
		return nil, "", err
	}

	return result, form.JobDescription, nil
}

func (h *AnalyzeHandler) fail(c *fiber.Ctx, err error) error {
	status, message := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("❌ Analysis failed: %v\n", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error":  message,
		"detail": err.Error(),
	})
}
