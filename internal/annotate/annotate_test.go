package annotate

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/readmark/readmark/models"
)

func TestSpanRect(t *testing.T) {
	span := models.MatchSpan{
		Start: models.Point{X: 10, Y: 700},
		End:   models.Point{X: 120, Y: 712},
	}
	r := spanRect(span)
	if r.LL.X != 10 || r.LL.Y != 700 || r.UR.X != 120 || r.UR.Y != 712 {
		t.Errorf("spanRect() = %v, want (10,700)-(120,712)", r)
	}
}

func TestSpanRectNormalizesInvertedCorners(t *testing.T) {
	// A span wrapping to an earlier x or lower baseline still yields a
	// well-formed rectangle.
	span := models.MatchSpan{
		Start: models.Point{X: 200, Y: 712},
		End:   models.Point{X: 15, Y: 700},
	}
	r := spanRect(span)
	if r.LL.X != 15 || r.LL.Y != 700 || r.UR.X != 200 || r.UR.Y != 712 {
		t.Errorf("spanRect() = %v, want (15,700)-(200,712)", r)
	}
}

func TestSpanQuadCoversRect(t *testing.T) {
	span := models.MatchSpan{
		Start: models.Point{X: 10, Y: 700},
		End:   models.Point{X: 120, Y: 712},
	}
	r := spanRect(span)
	quad := spanQuad(r)
	if len(quad) != 1 {
		t.Fatalf("spanQuad() has %d quads, want 1", len(quad))
	}

	// Corner order inside the quad is a viewer convention; the four points
	// together must cover exactly the rectangle.
	q := quad[0]
	minX, minY := q.P1.X, q.P1.Y
	maxX, maxY := q.P1.X, q.P1.Y
	for _, p := range []types.Point{q.P2, q.P3, q.P4} {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minX != r.LL.X || minY != r.LL.Y || maxX != r.UR.X || maxY != r.UR.Y {
		t.Errorf("spanQuad() covers (%v,%v)-(%v,%v), want (%v,%v)-(%v,%v)",
			minX, minY, maxX, maxY, r.LL.X, r.LL.Y, r.UR.X, r.UR.Y)
	}
}

func TestNoteRect(t *testing.T) {
	r := noteRect(models.Point{X: 50, Y: 600})
	if r.LL.X != 42 || r.LL.Y != 616 {
		t.Errorf("noteRect() origin = (%v, %v), want (42, 616)", r.LL.X, r.LL.Y)
	}
	if r.UR.X-r.LL.X != noteBoxSize || r.UR.Y-r.LL.Y != noteBoxSize {
		t.Errorf("noteRect() size = %vx%v, want %vx%v", r.UR.X-r.LL.X, r.UR.Y-r.LL.Y, noteBoxSize, noteBoxSize)
	}
}
