package handlers

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyser/internal/services"
)

const (
	fieldJobDescription = "job_description"
	fieldResume         = "resume"
)

// analysisForm is the job description + resume pair submitted by a user.
type analysisForm struct {
	JobDescription string
	Resume         *multipart.FileHeader
}

func (f analysisForm) complete() bool {
	return f.JobDescription != "" && f.Resume != nil
}

func readAnalysisForm(c *fiber.Ctx) analysisForm {
	form := analysisForm{
		JobDescription: strings.TrimSpace(c.FormValue(fieldJobDescription)),
	}
	if file, err := c.FormFile(fieldResume); err == nil && file.Size > 0 {
		form.Resume = file
	}
	return form
}

// errorStatus maps pipeline errors to an HTTP status and a user-facing message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrIncompleteInput):
		return fiber.StatusBadRequest, "job_description and resume are required"
	case errors.Is(err, services.ErrInvalidExtension):
		return fiber.StatusBadRequest, "Only PDF resumes are supported"
	case errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge, "Resume file is too large"
	case errors.Is(err, services.ErrInvalidPDF):
		return fiber.StatusUnprocessableEntity, "The uploaded file could not be read as a PDF"
	case errors.Is(err, services.ErrEmptyVocabulary), errors.Is(err, services.ErrEmptyDocument):
		return fiber.StatusUnprocessableEntity, "Could not score the resume: the job description or resume has no readable words"
	default:
		return fiber.StatusInternalServerError, "Failed to analyse resume"
	}
}
