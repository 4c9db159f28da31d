package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-analyser/internal/services"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrIncompleteInput, fiber.StatusBadRequest},
		{fmt.Errorf("wrap: %w", services.ErrInvalidExtension), fiber.StatusBadRequest},
		{fmt.Errorf("wrap: %w", services.ErrFileTooLarge), fiber.StatusRequestEntityTooLarge},
		{fmt.Errorf("extract: %w", services.ErrInvalidPDF), fiber.StatusUnprocessableEntity},
		{fmt.Errorf("score: %w", services.ErrEmptyVocabulary), fiber.StatusUnprocessableEntity},
		{fmt.Errorf("score: %w", services.ErrEmptyDocument), fiber.StatusUnprocessableEntity},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, message := errorStatus(tt.err)
			assert.Equal(t, tt.want, status)
			assert.NotEmpty(t, message)
		})
	}
}
