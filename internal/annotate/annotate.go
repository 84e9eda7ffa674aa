// Package annotate writes citation match results into a PDF as highlight
// annotations, with an optional sticky-note annotation carrying the
// citation's note text.
package annotate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/color"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/readmark/readmark/internal/logger"
	"github.com/readmark/readmark/models"
)

// The note annotation sits up and to the left of the first highlighted
// character by this fixed visual offset.
const (
	noteOffsetX = 8
	noteOffsetY = 16
	noteBoxSize = 20
)

var highlightColor = color.NewSimpleColor(0xffff00)

// WritePDF adds one highlight annotation per matched span of every found
// part, plus a note annotation near the first span when the citation
// carries one. The file is updated in place with an incremental save.
func WritePDF(path string, parts []models.PartResult, log logger.Logger) error {
	anns := make(map[int][]model.AnnotationRenderer)
	modDate := types.DateString(time.Now())

	count := 0
	for _, part := range parts {
		if !part.Found {
			continue
		}
		for i, span := range part.Spans {
			pageNr := span.PageIndex + 1

			rect := spanRect(span)
			hl := model.NewHighlightAnnotation(
				rect,
				0,
				"", uuid.NewString(), modDate,
				0,
				&highlightColor,
				0, 0, 0,
				"", nil, nil, "", "",
				spanQuad(rect),
			)
			anns[pageNr] = append(anns[pageNr], hl)
			count++

			if i == 0 && part.Note != "" {
				note := model.NewTextAnnotation(
					noteRect(span.Start),
					0,
					part.Note, uuid.NewString(), modDate,
					0,
					&highlightColor,
					"", nil, nil, "", "",
					0, 0, 0,
					false, "Comment",
				)
				anns[pageNr] = append(anns[pageNr], note)
			}
		}
	}

	if count == 0 {
		log.Warn("No matched citations, %s left unchanged", path)
		return nil
	}

	log.Info("Writing %d highlight annotations to %s", count, path)
	conf := model.NewDefaultConfiguration()
	if err := api.AddAnnotationsMapFile(path, "", anns, conf, true); err != nil {
		return fmt.Errorf("failed to write annotations to %s: %w", path, err)
	}
	return nil
}

// spanRect converts a match span into a normalized annotation rectangle.
func spanRect(span models.MatchSpan) types.Rectangle {
	llx, urx := span.Start.X, span.End.X
	if llx > urx {
		llx, urx = urx, llx
	}
	lly, ury := span.Start.Y, span.End.Y
	if lly > ury {
		lly, ury = ury, lly
	}
	return *types.NewRectangle(llx, lly, urx, ury)
}

// spanQuad builds the quad covering the span rectangle. Viewers mark the
// highlighted region from the quad points, not from the annotation Rect.
func spanQuad(r types.Rectangle) types.QuadPoints {
	return types.QuadPoints{*types.NewQuadLiteralForRect(&r)}
}

// noteRect places the note box offset up-left from the span start. Up is
// positive y in PDF user space.
func noteRect(start models.Point) types.Rectangle {
	x := start.X - noteOffsetX
	y := start.Y + noteOffsetY
	return *types.NewRectangle(x, y, x+noteBoxSize, y+noteBoxSize)
}
