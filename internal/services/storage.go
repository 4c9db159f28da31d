package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidExtension = errors.New("invalid file extension")
)

var pdfMagic = []byte("%PDF-")

// StorageService reads uploaded resumes into memory. Uploads are never
// written to disk; each request works on its own copy of the bytes.
type StorageService interface {
	ReadUpload(file *multipart.FileHeader) ([]byte, error)
	ReadPDF(filename string, r io.Reader) ([]byte, error)
	MaxFileSize() int64
}

type storageService struct {
	maxFileSize int64
}

func NewStorageService(maxFileSize int64) StorageService {
	return &storageService{
		maxFileSize: maxFileSize,
	}
}

func (s *storageService) MaxFileSize() int64 {
	return s.maxFileSize
}

func (s *storageService) ReadUpload(file *multipart.FileHeader) ([]byte, error) {
	if file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: max size %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.ReadPDF(file.Filename, src)
}

func (s *storageService) ReadPDF(filename string, r io.Reader) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	if int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("%w: max size %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, fmt.Errorf("%w: missing PDF header", ErrInvalidPDF)
	}

	return data, nil
}
