package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// cpuEngine implements Engine on top of pdfcpu.
type cpuEngine struct {
	conf *model.Configuration
}

// NewEngine returns the pdfcpu-backed engine.
func NewEngine() Engine {
	conf := model.NewDefaultConfiguration()
	// Structural validation happens explicitly in Open.
	conf.ValidationMode = model.ValidationRelaxed
	return &cpuEngine{conf: conf}
}

func (e *cpuEngine) Open(data []byte) (Document, error) {
	ctx, err := api.ReadContext(bytes.NewReader(data), e.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to validate PDF: %w", err)
	}
	return &cpuDocument{ctx: ctx}, nil
}

func (e *cpuEngine) NewBuilder() Builder {
	return &cpuBuilder{conf: e.conf}
}

// cpuDocument wraps a validated pdfcpu context.
type cpuDocument struct {
	ctx *model.Context
}

func (d *cpuDocument) PageCount() int { return d.ctx.PageCount }

func (d *cpuDocument) Close() error {
	d.ctx = nil
	return nil
}

// cpuBuilder copies each appended page into a single-page PDF part and merges
// the parts on finalize. Going through serialized parts keeps cross-document
// page ordering and duplicate appends uniform.
type cpuBuilder struct {
	conf  *model.Configuration
	parts []*bytes.Buffer
}

func (b *cpuBuilder) AppendPage(doc Document, page int) error {
	d, ok := doc.(*cpuDocument)
	if !ok {
		return fmt.Errorf("unexpected document type %T", doc)
	}
	if d.ctx == nil {
		return errors.New("document is closed")
	}

	single, err := pdfcpu.ExtractPages(d.ctx, []int{page}, false)
	if err != nil {
		return fmt.Errorf("failed to copy page %d: %w", page, err)
	}

	var buf bytes.Buffer
	if err := api.WriteContext(single, &buf); err != nil {
		return fmt.Errorf("failed to write page %d: %w", page, err)
	}
	b.parts = append(b.parts, &buf)
	return nil
}

func (b *cpuBuilder) Finalize(w io.Writer) error {
	switch len(b.parts) {
	case 0:
		return errors.New("no pages appended")
	case 1:
		_, err := w.Write(b.parts[0].Bytes())
		return err
	}

	readers := make([]io.ReadSeeker, len(b.parts))
	for i, p := range b.parts {
		readers[i] = bytes.NewReader(p.Bytes())
	}
	if err := api.MergeRaw(readers, w, false, b.conf); err != nil {
		return fmt.Errorf("failed to assemble output: %w", err)
	}
	return nil
}
