package render

import (
	"image/color"

	"github.com/hailam/chessgui/internal/board"
)

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

func squareRect(sq board.Square, width, height float64) Rect {
	x, y, w, h := sq.Rect(width, height)
	return Rect{X: x, Y: y, W: w, H: h}
}

// HighlightKind tells whether a destination would capture.
type HighlightKind int

const (
	Quiet HighlightKind = iota
	Capture
)

// String returns the highlight kind name.
func (k HighlightKind) String() string {
	if k == Capture {
		return "capture"
	}
	return "quiet"
}

// Cell is the base layer for one square.
type Cell struct {
	Square     board.Square
	Rect       Rect
	Background color.NRGBA
}

// Highlight marks a legal destination of the selected piece.
type Highlight struct {
	Square board.Square
	Kind   HighlightKind
	Rect   Rect
	Color  color.NRGBA
}

// Glyph is a piece drawn at the top-left of its square.
type Glyph struct {
	Square board.Square
	Text   string
	X, Y   float64
	Size   float64
	Color  color.NRGBA
}

// Banner is the terminal-state overlay.
type Banner struct {
	Text  string
	X, Y  float64
	Size  float64
	Color color.NRGBA
}

// Model is everything a surface needs to draw one frame.
type Model struct {
	Width, Height float64
	Clear         color.NRGBA
	Cells         []Cell
	Highlights    []Highlight
	Glyphs        []Glyph
	Banner        *Banner
}

// CellAt returns the base layer of sq.
func (m *Model) CellAt(sq board.Square) (Cell, bool) {
	i := sq.Row*board.Size + sq.Col
	if !sq.IsValid() || i >= len(m.Cells) || m.Cells[i].Square != sq {
		return Cell{}, false
	}
	return m.Cells[i], true
}

// HighlightAt returns the highlight on sq, if any.
func (m *Model) HighlightAt(sq board.Square) (Highlight, bool) {
	for _, h := range m.Highlights {
		if h.Square == sq {
			return h, true
		}
	}
	return Highlight{}, false
}

// GlyphAt returns the piece glyph on sq, if any.
func (m *Model) GlyphAt(sq board.Square) (Glyph, bool) {
	for _, g := range m.Glyphs {
		if g.Square == sq {
			return g, true
		}
	}
	return Glyph{}, false
}
