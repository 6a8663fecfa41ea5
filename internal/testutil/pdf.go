package testutil

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdftoolbox/pdftoolbox/internal/pdf"
)

// fakeHeader keeps fake PDFs recognizable by the %PDF- signature check.
const fakeHeader = "%PDF-FAKE"

// FakePDF returns bytes the FakeEngine can open: a document named id with
// the given page count.
func FakePDF(id string, pages int) []byte {
	return []byte(fmt.Sprintf("%s %s %d", fakeHeader, id, pages))
}

// FakeEngine is an in-memory pdf.Engine for tests. Documents are created
// with FakePDF; finalized output records which source pages were appended,
// decodable with ParseFakeOutput.
type FakeEngine struct {
	// OpenErr, AppendErr and FinalizeErr inject failures.
	OpenErr     error
	AppendErr   error
	FinalizeErr error

	// Opened collects every document handed out, so tests can check that
	// all of them were closed.
	Opened []*FakeDocument
}

var _ pdf.Engine = (*FakeEngine)(nil)

func (e *FakeEngine) Open(data []byte) (pdf.Document, error) {
	if e.OpenErr != nil {
		return nil, e.OpenErr
	}
	fields := strings.Fields(string(data))
	if len(fields) != 3 || fields[0] != fakeHeader {
		return nil, fmt.Errorf("not a fake PDF: %q", string(data))
	}
	pages, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("bad fake page count: %w", err)
	}
	doc := &FakeDocument{ID: fields[1], Pages: pages}
	e.Opened = append(e.Opened, doc)
	return doc, nil
}

func (e *FakeEngine) NewBuilder() pdf.Builder {
	return &fakeBuilder{engine: e}
}

// AllClosed reports whether every opened document was closed.
func (e *FakeEngine) AllClosed() bool {
	for _, doc := range e.Opened {
		if !doc.Closed {
			return false
		}
	}
	return true
}

// FakeDocument is an opened fake PDF.
type FakeDocument struct {
	ID     string
	Pages  int
	Closed bool
}

func (d *FakeDocument) PageCount() int { return d.Pages }

func (d *FakeDocument) Close() error {
	d.Closed = true
	return nil
}

type fakeBuilder struct {
	engine  *FakeEngine
	entries []string
}

func (b *fakeBuilder) AppendPage(doc pdf.Document, page int) error {
	if b.engine.AppendErr != nil {
		return b.engine.AppendErr
	}
	d, ok := doc.(*FakeDocument)
	if !ok {
		return fmt.Errorf("unexpected document type %T", doc)
	}
	if d.Closed {
		return errors.New("document is closed")
	}
	if page < 1 || page > d.Pages {
		return fmt.Errorf("page %d out of range for %s", page, d.ID)
	}
	b.entries = append(b.entries, fmt.Sprintf("%s:%d", d.ID, page))
	return nil
}

func (b *fakeBuilder) Finalize(w io.Writer) error {
	if b.engine.FinalizeErr != nil {
		return b.engine.FinalizeErr
	}
	_, err := io.WriteString(w, fakeHeader+"OUT "+strings.Join(b.entries, ","))
	return err
}

// ParseFakeOutput decodes a finalized fake document into its page entries,
// each formatted as "id:page" in append order.
func ParseFakeOutput(data []byte) []string {
	s := strings.TrimPrefix(string(data), fakeHeader+"OUT ")
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
