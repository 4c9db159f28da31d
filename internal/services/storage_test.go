package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyser/internal/testutil"
)

func TestStorage_ReadPDF(t *testing.T) {
	storage := NewStorageService(1 << 20)
	pdf := testutil.BuildPDF("hello world")

	data, err := storage.ReadPDF("Resume.PDF", bytes.NewReader(pdf))
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestStorage_ReadPDF_Rejections(t *testing.T) {
	storage := NewStorageService(64)

	tests := []struct {
		name     string
		filename string
		body     string
		wantErr  error
	}{
		{name: "wrong extension", filename: "resume.docx", body: "%PDF-1.4", wantErr: ErrInvalidExtension},
		{name: "no extension", filename: "resume", body: "%PDF-1.4", wantErr: ErrInvalidExtension},
		{name: "not a pdf", filename: "resume.pdf", body: "just text", wantErr: ErrInvalidPDF},
		{name: "too large", filename: "resume.pdf", body: "%PDF-" + strings.Repeat("x", 100), wantErr: ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storage.ReadPDF(tt.filename, strings.NewReader(tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
