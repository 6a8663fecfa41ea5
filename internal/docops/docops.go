// Package docops holds the document operation core: building page plans from
// parsed page specifications and executing them against opened PDF documents.
//
// Everything here is stateless and per-request; nothing is shared between
// concurrent requests.
package docops

import (
	"errors"
	"fmt"
)

// Operation is the kind of document operation to perform.
type Operation string

const (
	OpMerge   Operation = "merge"
	OpDelete  Operation = "delete"
	OpExtract Operation = "extract"
)

// PageRef identifies one page of one source document. Source indexes into
// the ordered list of sources supplied with the operation; Page is 1-based.
type PageRef struct {
	Source int
	Page   int
}

// Plan is the resolved, ordered list of pages that make up the output
// document. A finalized plan is never empty.
type Plan []PageRef

// Selection errors. These are client-input failures: the request was
// well-formed but asked for something impossible.
var (
	// ErrInsufficientInputs means the operation got the wrong number of
	// source documents (merge needs at least two, delete/extract exactly one).
	ErrInsufficientInputs = errors.New("insufficient input documents")

	// ErrEmptyResult means the operation would produce a document with no
	// pages, which is not a valid PDF.
	ErrEmptyResult = errors.New("operation would produce an empty document")
)

// StructuralError signals that a source file could not be processed as a
// valid PDF. It is unprocessable input, not a server fault.
type StructuralError struct {
	Err error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("failed to process PDF: %v", e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }
