package match

import "github.com/readmark/readmark/models"

// PageSource supplies the words of a paginated document in reading order.
// Pages are assumed immutable for the lifetime of a scan; an out-of-range
// index is a caller bug.
type PageSource interface {
	// PageCount returns the number of pages.
	PageCount() int
	// Words returns the words of the page at index (0-based), in reading
	// order, each with its bounding rectangle.
	Words(index int) []models.Word
}

// pageStream is the normalized text of one page plus a rectangle per
// normalized character: text[i] came from the word whose box is rects[i].
type pageStream struct {
	text  string
	rects []models.Rect
}

// pageIndex lazily builds and memoizes pageStreams. Pages never change
// during a run, so entries are computed once and kept for the scan's
// lifetime.
type pageIndex struct {
	src     PageSource
	streams map[int]*pageStream
}

func newPageIndex(src PageSource) *pageIndex {
	return &pageIndex{
		src:     src,
		streams: make(map[int]*pageStream),
	}
}

func (x *pageIndex) stream(page int) *pageStream {
	if s, ok := x.streams[page]; ok {
		return s
	}
	s := buildStream(x.src.Words(page))
	x.streams[page] = s
	return s
}

func buildStream(words []models.Word) *pageStream {
	s := &pageStream{}
	var text []byte
	for _, w := range words {
		tok := Tokenize(w.Text)
		text = append(text, tok...)
		for range tok {
			s.rects = append(s.rects, w.Rect)
		}
	}
	s.text = string(text)
	return s
}
