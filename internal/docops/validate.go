package docops

import (
	"bytes"
	"errors"
	"fmt"
)

// pdfSignature is the magic prefix every PDF file starts with.
var pdfSignature = []byte("%PDF-")

// Upload validation errors. The HTTP boundary rejects violations before any
// document is opened, so they never reach the parser or executor.
var (
	ErrEmptyFile    = errors.New("uploaded file is empty")
	ErrNotPDF       = errors.New("file is not a valid PDF (missing PDF header)")
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
	ErrTooManyFiles = errors.New("too many files")
)

// ValidateUpload checks that data looks like a PDF and fits within maxBytes.
func ValidateUpload(data []byte, maxBytes int64) error {
	if len(data) == 0 {
		return ErrEmptyFile
	}
	if int64(len(data)) > maxBytes {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, len(data), maxBytes)
	}
	if len(data) < len(pdfSignature) || !bytes.HasPrefix(data, pdfSignature) {
		return ErrNotPDF
	}
	return nil
}

// ValidateMergeCount checks the merge input count against [min, max].
func ValidateMergeCount(n, min, max int) error {
	if n < min {
		return fmt.Errorf("%w: at least %d PDF files are required for merging, got %d",
			ErrInsufficientInputs, min, n)
	}
	if n > max {
		return fmt.Errorf("%w: maximum %d files allowed for merging, got %d",
			ErrTooManyFiles, max, n)
	}
	return nil
}
