package endpoints

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/api"
	"github.com/pdftoolbox/pdftoolbox/internal/config"
	"github.com/pdftoolbox/pdftoolbox/internal/docops"
	"github.com/pdftoolbox/pdftoolbox/internal/svcctx"
)

// MergeEndpoint handles POST /api/merge with multipart file upload.
type MergeEndpoint struct{}

var _ api.Endpoint = (*MergeEndpoint)(nil)

func (e *MergeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/merge", e.handler
}

func (e *MergeEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Merge PDFs
//	@Description	Merge multiple PDF files into one, in upload order
//	@Tags			operations
//	@Accept			mpfd
//	@Produce		application/pdf
//	@Param			files	formData	file	true	"PDF files to merge (2-20)"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/merge [post]
func (e *MergeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	lim := limits(r)

	if err := docops.ValidateMergeCount(len(files), config.MinMergeFiles, lim.MaxMergeFiles); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	inputs := make([][]byte, 0, len(files))
	for _, fh := range files {
		if fh.Filename == "" {
			writeError(w, http.StatusBadRequest, "all files must have a filename")
			return
		}
		data, err := readUpload(fh, lim.MaxUploadBytes)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		inputs = append(inputs, data)
	}

	logger := svcctx.LoggerFrom(r.Context())
	if logger != nil {
		logger.Info("merging PDFs", "files", len(inputs))
	}

	out, err := docops.Merge(svcctx.EngineFrom(r.Context()), inputs)
	if err != nil {
		if logger != nil {
			logger.Warn("merge failed", "error", err)
		}
		writeError(w, statusFor(err), err.Error())
		return
	}

	sendPDF(w, outputFilename(files[0].Filename, "-merged"), out)
}

func (e *MergeEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "merge <pdf> <pdf> [pdf...]",
		Short: "Merge PDF files into one",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make([]api.UploadFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				files = append(files, api.UploadFile{
					Field: "files",
					Name:  filepath.Base(path),
					Data:  data,
				})
			}

			client := api.NewClient(getServerURL())
			out, suggested, err := client.PostFiles(context.Background(), "/api/merge", files, nil)
			if err != nil {
				return err
			}

			dest := outputPath
			if dest == "" {
				dest = suggested
			}
			if dest == "" {
				dest = "merged.pdf"
			}
			if err := os.WriteFile(dest, out, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes)\n", dest, len(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: server-suggested name)")
	return cmd
}
