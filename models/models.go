package models

import "sort"

// Citation is a quoted excerpt saved by the reader. The text may contain
// embedded line breaks; matching splits it into independent parts on those.
type Citation struct {
	Text     string `json:"text" yaml:"text"`
	OrderKey int    `json:"order_key" yaml:"order_key"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
}

// CitationSet deduplicates citations on (text, order key, note).
type CitationSet map[Citation]struct{}

// Add inserts a citation; duplicates collapse silently.
func (s CitationSet) Add(c Citation) {
	s[c] = struct{}{}
}

// Contains reports whether the set holds c.
func (s CitationSet) Contains(c Citation) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the citations in ascending order-key order.
// Ties are broken on text so the order is deterministic.
func (s CitationSet) Sorted() []Citation {
	out := make([]Citation, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderKey != out[j].OrderKey {
			return out[i].OrderKey < out[j].OrderKey
		}
		return out[i].Text < out[j].Text
	})
	return out
}

// BookInfo describes one book in a reading-app backup.
type BookInfo struct {
	Title     string      `json:"title"`
	Filename  string      `json:"filename,omitempty"`
	Citations CitationSet `json:"-"`
}

// Rect is an axis-aligned rectangle in PDF user space (origin bottom-left).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Point is a position in PDF user space.
type Point struct {
	X, Y float64
}

// Word is a single word of page text with its bounding rectangle.
type Word struct {
	Text string
	Rect Rect
}

// MatchSpan is a located region of a citation part on one page. Start is the
// lower-left corner of the first matched character's word box, End the
// upper-right corner of the last one's.
type MatchSpan struct {
	PageIndex int
	Start     Point
	End       Point
}

// PartResult is the outcome of matching one citation part.
type PartResult struct {
	Text  string
	Note  string
	Found bool
	Spans []MatchSpan
}

// ScanReport aggregates a whole run over one document's citations.
// Counts are per citation part, not per citation.
type ScanReport struct {
	Parts    []PartResult
	Found    int
	NotFound int
}

// OK reports whether every citation part was located.
func (r *ScanReport) OK() bool {
	return r.NotFound == 0
}

// Missing returns the texts of the parts that were not located.
func (r *ScanReport) Missing() []string {
	var out []string
	for _, p := range r.Parts {
		if !p.Found {
			out = append(out, p.Text)
		}
	}
	return out
}
