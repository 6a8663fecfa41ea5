package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdftoolbox/pdftoolbox/internal/config"
	"github.com/pdftoolbox/pdftoolbox/internal/docops"
	"github.com/pdftoolbox/pdftoolbox/internal/pagespec"
	"github.com/pdftoolbox/pdftoolbox/internal/svcctx"
	"github.com/pdftoolbox/pdftoolbox/internal/testutil"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "report.pdf", "report.pdf"},
		{"unix path stripped", "/tmp/uploads/report.pdf", "report.pdf"},
		{"windows path stripped", `C:\Users\me\report.pdf`, "report.pdf"},
		{"unsafe characters replaced", "my:rep*ort?.pdf", "my_rep_ort_.pdf"},
		{"spaces kept", "annual report 2024.pdf", "annual report 2024.pdf"},
		{"missing extension added", "report", "report.pdf"},
		{"uppercase extension kept", "REPORT.PDF", "REPORT.PDF"},
		{"empty name", "", "document.pdf"},
		{"only dots and spaces", " .. . ", "document.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.in); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		in     string
		suffix string
		want   string
	}{
		{"report.pdf", "-merged", "report-merged.pdf"},
		{"scan", "-extracted", "scan-extracted.pdf"},
		{"/path/to/doc.pdf", "-pages-deleted", "doc-pages-deleted.pdf"},
	}

	for _, tt := range tests {
		if got := outputFilename(tt.in, tt.suffix); got != tt.want {
			t.Errorf("outputFilename(%q, %q) = %q, want %q", tt.in, tt.suffix, got, tt.want)
		}
	}
}

// TestUploadLimitHotReload verifies that a reloaded size ceiling is enforced
// on the very next request, without a server restart.
func TestUploadLimitHotReload(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte("limits:\n  max_upload_bytes: 1048576\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := config.NewManager(configFile)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	eng := &testutil.FakeEngine{}
	ep := &ExtractPagesEndpoint{}

	send := func() *httptest.ResponseRecorder {
		body, ct := multipartBody(t, map[string][][2]any{
			"file": {{"report.pdf", testutil.FakePDF("a", 3)}},
		}, map[string]string{"pages_spec": "1"})

		req := httptest.NewRequest("POST", "/api/extract-pages", body)
		req.Header.Set("Content-Type", ct)
		req = req.WithContext(svcctx.WithServices(req.Context(), &svcctx.Services{
			Engine: eng,
			Config: mgr,
		}))

		rec := httptest.NewRecorder()
		ep.handler(rec, req)
		return rec
	}

	if rec := send(); rec.Code != http.StatusOK {
		t.Fatalf("status before reload = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	// Shrink the ceiling below the upload size and reload.
	if err := os.WriteFile(configFile, []byte("limits:\n  max_upload_bytes: 8\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config file: %v", err)
	}
	if err := mgr.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if rec := send(); rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status after reload = %d, want 413", rec.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"parse error", &pagespec.Error{Kind: pagespec.MalformedItem, Item: "x"}, http.StatusBadRequest},
		{"wrapped parse error", fmt.Errorf("context: %w", &pagespec.Error{Kind: pagespec.EmptySpec}), http.StatusBadRequest},
		{"insufficient inputs", docops.ErrInsufficientInputs, http.StatusBadRequest},
		{"empty result", docops.ErrEmptyResult, http.StatusBadRequest},
		{"too many files", docops.ErrTooManyFiles, http.StatusBadRequest},
		{"not a pdf", docops.ErrNotPDF, http.StatusBadRequest},
		{"empty file", docops.ErrEmptyFile, http.StatusBadRequest},
		{"too large", fmt.Errorf("big.pdf: %w", docops.ErrFileTooLarge), http.StatusRequestEntityTooLarge},
		{"structural", &docops.StructuralError{Err: errors.New("bad xref")}, http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
