package docops

import (
	"bytes"
	"fmt"

	"github.com/pdftoolbox/pdftoolbox/internal/pagespec"
	"github.com/pdftoolbox/pdftoolbox/internal/pdf"
)

// Execute applies a plan against the opened sources and returns the
// serialized output document.
//
// Pages are appended in plan order; each append copies the page, so a page
// referenced more than once is copied more than once. Any failure aborts the
// whole operation with a StructuralError and no partial output. There are no
// retries: PDF structural failures are not transient.
func Execute(eng pdf.Engine, plan Plan, sources []pdf.Document) ([]byte, error) {
	if len(plan) == 0 {
		return nil, ErrEmptyResult
	}

	builder := eng.NewBuilder()
	for _, ref := range plan {
		if ref.Source < 0 || ref.Source >= len(sources) {
			return nil, fmt.Errorf("plan references unknown source %d", ref.Source)
		}
		if err := builder.AppendPage(sources[ref.Source], ref.Page); err != nil {
			return nil, &StructuralError{Err: err}
		}
	}

	var out bytes.Buffer
	if err := builder.Finalize(&out); err != nil {
		return nil, &StructuralError{Err: err}
	}
	return out.Bytes(), nil
}

// Merge concatenates the inputs into one document, each input's pages in
// original order, inputs in input order.
func Merge(eng pdf.Engine, inputs [][]byte) ([]byte, error) {
	if len(inputs) < 2 {
		return nil, fmt.Errorf("%w: merge requires at least 2 documents, got %d",
			ErrInsufficientInputs, len(inputs))
	}

	sources, counts, closeAll, err := openAll(eng, inputs)
	if err != nil {
		return nil, err
	}
	defer closeAll()

	plan, err := BuildPlan(OpMerge, nil, counts)
	if err != nil {
		return nil, err
	}
	return Execute(eng, plan, sources)
}

// DeletePages removes the pages selected by spec from input and returns the
// remaining pages in original order.
func DeletePages(eng pdf.Engine, input []byte, spec string) ([]byte, error) {
	return runSingleSource(eng, OpDelete, input, spec)
}

// ExtractPages builds a new document from the pages selected by spec, in
// exactly the order the spec lists them.
func ExtractPages(eng pdf.Engine, input []byte, spec string) ([]byte, error) {
	return runSingleSource(eng, OpExtract, input, spec)
}

func runSingleSource(eng pdf.Engine, op Operation, input []byte, spec string) ([]byte, error) {
	sources, counts, closeAll, err := openAll(eng, [][]byte{input})
	if err != nil {
		return nil, err
	}
	defer closeAll()

	pages, err := pagespec.Parse(spec, counts[0])
	if err != nil {
		return nil, err
	}

	plan, err := BuildPlan(op, pages, counts)
	if err != nil {
		return nil, err
	}
	return Execute(eng, plan, sources)
}

// openAll opens every input, failing fast on the first structural error.
// The returned closer releases all documents opened so far and is safe to
// call on every exit path.
func openAll(eng pdf.Engine, inputs [][]byte) ([]pdf.Document, []int, func(), error) {
	sources := make([]pdf.Document, 0, len(inputs))
	counts := make([]int, 0, len(inputs))

	closeAll := func() {
		for _, doc := range sources {
			doc.Close()
		}
	}

	for i, data := range inputs {
		doc, err := eng.Open(data)
		if err != nil {
			closeAll()
			return nil, nil, nil, &StructuralError{
				Err: fmt.Errorf("document %d: %w", i+1, err),
			}
		}
		sources = append(sources, doc)
		counts = append(counts, doc.PageCount())
	}

	return sources, counts, closeAll, nil
}
