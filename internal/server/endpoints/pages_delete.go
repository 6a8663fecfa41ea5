package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/api"
	"github.com/pdftoolbox/pdftoolbox/internal/docops"
)

// DeletePagesEndpoint handles POST /api/delete-pages.
type DeletePagesEndpoint struct{}

var _ api.Endpoint = (*DeletePagesEndpoint)(nil)

func (e *DeletePagesEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/delete-pages", e.handler
}

func (e *DeletePagesEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Delete pages
//	@Description	Delete the specified pages from a PDF; remaining pages keep their original order
//	@Tags			operations
//	@Accept			mpfd
//	@Produce		application/pdf
//	@Param			file		formData	file	true	"PDF file"
//	@Param			pages_spec	formData	string	true	"Page specification, e.g. 1,3,5-7"
//	@Success		200	{file}		binary
//	@Failure		400	{object}	ErrorResponse
//	@Failure		413	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/api/delete-pages [post]
func (e *DeletePagesEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	servePageOp(w, r, docops.OpDelete, "-pages-deleted")
}

func (e *DeletePagesEndpoint) Command(getServerURL func() string) *cobra.Command {
	return pageOpCommand(getServerURL,
		"delete-pages <pdf>",
		"Delete pages from a PDF",
		"/api/delete-pages",
		"pages-deleted.pdf",
	)
}
