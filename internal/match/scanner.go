package match

import (
	"sort"
	"strings"

	"github.com/readmark/readmark/internal/logger"
	"github.com/readmark/readmark/models"
)

// Scanner locates citations in a paginated document and keeps the scan
// cursor across citations. Citations are matched in ascending order-key
// order against a forward-moving page cursor; on a miss the cursor falls
// back to the page of the last success, never further. Strictly sequential:
// one Scanner serves one document scan.
type Scanner struct {
	idx       *pageIndex
	pageCount int
	log       logger.Logger

	pageIndex int
	lastFound int
}

// NewScanner creates a Scanner over src. The page source must stay
// immutable until the scan completes.
func NewScanner(src PageSource, log logger.Logger) *Scanner {
	return &Scanner{
		idx:       newPageIndex(src),
		pageCount: src.PageCount(),
		log:       log,
	}
}

// Scan matches every citation part against the document and returns the
// per-part spans plus aggregate found/not-found counts. Unmatched parts are
// reported, never fatal.
func (s *Scanner) Scan(citations []models.Citation) *models.ScanReport {
	ordered := make([]models.Citation, len(citations))
	copy(ordered, citations)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderKey < ordered[j].OrderKey
	})

	report := &models.ScanReport{}
	for _, c := range ordered {
		for _, part := range strings.Split(c.Text, "\n") {
			res := s.scanPart(part, c.Note)
			if res.Found {
				report.Found++
			} else {
				report.NotFound++
				s.log.Warn("citation part not found: %q", part)
			}
			report.Parts = append(report.Parts, res)
		}
	}
	return report
}

// scanPart runs the page-advance state machine for a single citation part.
func (s *Scanner) scanPart(part, note string) models.PartResult {
	res := models.PartResult{Text: part, Note: note}

	query := Tokenize(part)
	if query == "" {
		// Nothing matchable; behaves like exhausting all pages.
		s.pageIndex = s.lastFound
		return res
	}

	remainder := query
	var spans []models.MatchSpan

	for s.pageIndex < s.pageCount {
		ps := s.idx.stream(s.pageIndex)

		start, end, rem, found := findIn(ps.text, remainder)
		remainder = rem
		if !found {
			// Total miss on this page: start the part over on the next one.
			remainder = query
			spans = nil
		} else {
			if len(spans) > 0 && start > 0 {
				// The carried-over remainder matched, but not at the top of
				// the page, so the previous page's partial match was a
				// coincidence. Drop it and retry this page for the full part.
				remainder = query
				spans = nil
				continue
			}
			spans = append(spans, models.MatchSpan{
				PageIndex: s.pageIndex,
				Start:     models.Point{X: ps.rects[start].X0, Y: ps.rects[start].Y0},
				End:       models.Point{X: ps.rects[end].X1, Y: ps.rects[end].Y1},
			})
		}

		if remainder != "" {
			s.pageIndex++
			continue
		}

		s.lastFound = s.pageIndex
		res.Found = true
		res.Spans = spans
		return res
	}

	// Pages exhausted. Do not forfeit forward progress already made: resume
	// the next part at the last page a part was found on.
	s.pageIndex = s.lastFound
	return res
}
