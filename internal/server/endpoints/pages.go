package endpoints

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdftoolbox/pdftoolbox/internal/api"
	"github.com/pdftoolbox/pdftoolbox/internal/docops"
	"github.com/pdftoolbox/pdftoolbox/internal/pdf"
	"github.com/pdftoolbox/pdftoolbox/internal/svcctx"
)

// servePageOp is the shared handler body for the delete-pages and
// extract-pages endpoints: one uploaded file, one page specification.
func servePageOp(w http.ResponseWriter, r *http.Request, op docops.Operation, suffix string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["file"]
	if len(files) != 1 {
		writeError(w, http.StatusBadRequest, "exactly one file must be uploaded")
		return
	}
	fh := files[0]

	spec := r.FormValue("pages_spec")
	if spec == "" {
		writeError(w, http.StatusBadRequest, "pages_spec is required")
		return
	}

	data, err := readUpload(fh, limits(r).MaxUploadBytes)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	logger := svcctx.LoggerFrom(r.Context())
	if logger != nil {
		logger.Info("processing pages", "operation", string(op), "spec", spec)
	}

	out, err := runPageOp(svcctx.EngineFrom(r.Context()), op, data, spec)
	if err != nil {
		if logger != nil {
			logger.Warn("page operation failed", "operation", string(op), "error", err)
		}
		writeError(w, statusFor(err), err.Error())
		return
	}

	sendPDF(w, outputFilename(fh.Filename, suffix), out)
}

func runPageOp(eng pdf.Engine, op docops.Operation, data []byte, spec string) ([]byte, error) {
	switch op {
	case docops.OpDelete:
		return docops.DeletePages(eng, data, spec)
	case docops.OpExtract:
		return docops.ExtractPages(eng, data, spec)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

// pageOpCommand builds the CLI command shared by delete-pages and
// extract-pages: upload one file with a page spec, save the result.
func pageOpCommand(getServerURL func() string, use, short, apiPath, defaultOut string) *cobra.Command {
	var pagesSpec string
	var outputPath string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			client := api.NewClient(getServerURL())
			out, suggested, err := client.PostFiles(context.Background(), apiPath,
				[]api.UploadFile{{Field: "file", Name: filepath.Base(args[0]), Data: data}},
				map[string]string{"pages_spec": pagesSpec},
			)
			if err != nil {
				return err
			}

			dest := outputPath
			if dest == "" {
				dest = suggested
			}
			if dest == "" {
				dest = defaultOut
			}
			if err := os.WriteFile(dest, out, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes)\n", dest, len(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pagesSpec, "pages", "p", "", `page specification, e.g. "1,3,5-7"`)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: server-suggested name)")
	cmd.MarkFlagRequired("pages")
	return cmd
}
