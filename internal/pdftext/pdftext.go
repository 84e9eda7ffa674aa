// Package pdftext extracts positioned words from a PDF so citations can be
// matched against page text and highlighted at the right coordinates. All
// coordinates are PDF user space (origin bottom-left).
package pdftext

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/readmark/readmark/models"
)

// Document is an open PDF exposing per-page words in reading order. It
// implements the page source the citation scanner consumes. Word extraction
// is memoized per page; pages are immutable while the document is open.
type Document struct {
	f     *os.File
	r     *pdf.Reader
	words map[int][]models.Word
}

// Open opens the PDF at path.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	return &Document{
		f:     f,
		r:     r,
		words: make(map[int][]models.Word),
	}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.f.Close()
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.r.NumPage()
}

// Words returns the words of the page at index (0-based) with their
// bounding rectangles. An out-of-range index is a caller bug and panics.
func (d *Document) Words(index int) []models.Word {
	if w, ok := d.words[index]; ok {
		return w
	}
	page := d.r.Page(index + 1)
	var words []models.Word
	if !page.V.IsNull() {
		words = groupWords(page.Content().Text)
	}
	d.words[index] = words
	return words
}

// PageText returns the page's words joined by single spaces, used for
// debug dumps of what was actually extracted.
func (d *Document) PageText(index int) string {
	words := d.Words(index)
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}
