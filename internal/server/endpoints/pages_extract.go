package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/api"
	"github.com/pdftoolbox/pdftoolbox/internal/docops"
)

// ExtractPagesEndpoint handles POST /api/extract-pages.
type ExtractPagesEndpoint struct{}

var _ api.Endpoint = (*ExtractPagesEndpoint)(nil)

func (e *ExtractPagesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/extract-pages", e.handler
}

func (e *ExtractPagesEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Extract pages
//	@Description	Extract the specified pages into a new PDF; output order follows the specification, duplicates allowed
//	@Tags			operations
//	@Accept			mpfd
//	@Produce		application/pdf
//	@Param			file		formData	file	true	"PDF file"
//	@Param			pages_spec	formData	string	true	"Page specification, e.g. 1,3,5-7"
//	@Success		200	{file}		binary
//	@Failure		400	{object}	ErrorResponse
//	@Failure		413	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/api/extract-pages [post]
func (e *ExtractPagesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	servePageOp(w, r, docops.OpExtract, "-extracted")
}

func (e *ExtractPagesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return pageOpCommand(getServerURL,
		"extract-pages <pdf>",
		"Extract pages from a PDF into a new file",
		"/api/extract-pages",
		"extracted.pdf",
	)
}
