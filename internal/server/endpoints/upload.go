package endpoints

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdftoolbox/pdftoolbox/internal/config"
	"github.com/pdftoolbox/pdftoolbox/internal/docops"
	"github.com/pdftoolbox/pdftoolbox/internal/pagespec"
	"github.com/pdftoolbox/pdftoolbox/internal/svcctx"
)

// maxFormMemory is the in-memory threshold for multipart parsing; larger
// uploads spill to disk and are removed when the request completes.
const maxFormMemory = 32 << 20

// limits returns the active request limits, falling back to defaults when
// no config manager is in context.
func limits(r *http.Request) config.LimitsCfg {
	if mgr := svcctx.ConfigFrom(r.Context()); mgr != nil {
		return mgr.Get().Limits
	}
	return config.DefaultConfig().Limits
}

// readUpload reads one uploaded file and runs the validation boundary:
// non-empty, within the size ceiling, and carrying the PDF signature.
func readUpload(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Read one byte past the ceiling so oversize files are detected
	// without buffering them whole.
	data, err := io.ReadAll(io.LimitReader(src, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	if err := docops.ValidateUpload(data, maxBytes); err != nil {
		return nil, fmt.Errorf("%s: %w", fh.Filename, err)
	}
	return data, nil
}

// statusFor maps core error kinds to HTTP status codes. Parser and selector
// failures are client input errors; structural failures mean the upload
// could not be processed as a PDF.
func statusFor(err error) int {
	var perr *pagespec.Error
	var serr *docops.StructuralError

	switch {
	case errors.As(err, &perr):
		return http.StatusBadRequest
	case errors.Is(err, docops.ErrInsufficientInputs),
		errors.Is(err, docops.ErrEmptyResult),
		errors.Is(err, docops.ErrTooManyFiles),
		errors.Is(err, docops.ErrEmptyFile),
		errors.Is(err, docops.ErrNotPDF):
		return http.StatusBadRequest
	case errors.Is(err, docops.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &serr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// sendPDF delivers the result as a file download.
func sendPDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

var unsafeFilenameChars = regexp.MustCompile(`[^\w\s\-.]`)

// sanitizeFilename strips path components and unsafe characters from a
// client-supplied filename and guarantees a .pdf suffix.
func sanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, ". ")

	if name == "" {
		name = "document.pdf"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}

// outputFilename derives the download name from an input filename plus an
// operation suffix: report.pdf + "-merged" -> report-merged.pdf.
func outputFilename(input, suffix string) string {
	base := sanitizeFilename(input)
	return base[:len(base)-len(".pdf")] + suffix + ".pdf"
}
