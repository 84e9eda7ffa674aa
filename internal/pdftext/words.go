package pdftext

import (
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/readmark/readmark/models"
)

// baselineTol absorbs sub-point jitter in fragment baselines that would
// otherwise split words rendered with kerning adjustments.
const baselineTol = 0.5

// groupWords assembles a page's text fragments (often single glyphs) into
// words. A word ends at a whitespace fragment, a baseline change, or a
// horizontal gap wider than the inter-glyph spacing of the current font.
func groupWords(frags []pdf.Text) []models.Word {
	var words []models.Word

	var cur strings.Builder
	var rect models.Rect
	var baseline, lastEnd float64

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		words = append(words, models.Word{Text: cur.String(), Rect: rect})
		cur.Reset()
	}

	for _, t := range frags {
		if strings.TrimSpace(t.S) == "" {
			flush()
			continue
		}
		if cur.Len() > 0 {
			sameLine := t.Y > baseline-baselineTol && t.Y < baseline+baselineTol
			if !sameLine || t.X-lastEnd > wordGap(t.FontSize) || t.X < lastEnd-baselineTol {
				flush()
			}
		}
		if cur.Len() == 0 {
			baseline = t.Y
			rect = models.Rect{X0: t.X, Y0: t.Y, X1: t.X + t.W, Y1: t.Y + t.FontSize}
		} else {
			rect.X1 = t.X + t.W
			if top := t.Y + t.FontSize; top > rect.Y1 {
				rect.Y1 = top
			}
		}
		cur.WriteString(t.S)
		lastEnd = t.X + t.W
	}
	flush()

	return words
}

// wordGap is the horizontal distance beyond which two fragments belong to
// different words even without an explicit space glyph between them.
func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1
	}
	return fontSize * 0.3
}
