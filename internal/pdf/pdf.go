// Package pdf abstracts the PDF document capability used by the operation
// executor: open a document from bytes, read its page count, copy pages into
// an output builder, and finalize the builder into a byte stream.
//
// The indirection keeps the parser and plan logic testable without a real
// PDF engine; the production implementation is backed by pdfcpu.
package pdf

import "io"

// Document is an opened, read-only PDF. It is created per request and must
// be closed when the request completes, on every exit path.
type Document interface {
	// PageCount returns the total number of pages.
	PageCount() int
	// Close releases any resources backing the document.
	Close() error
}

// Builder accumulates pages for an output document. Pages are copied, not
// moved, so a source page may be appended more than once.
type Builder interface {
	// AppendPage copies 1-based page from doc into the output.
	AppendPage(doc Document, page int) error
	// Finalize serializes the accumulated pages. It must be called once,
	// after all pages have been appended.
	Finalize(w io.Writer) error
}

// Engine opens documents and creates builders.
type Engine interface {
	Open(data []byte) (Document, error)
	NewBuilder() Builder
}
