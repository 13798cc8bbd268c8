package render

import (
	"math"

	"github.com/hailam/chessgui/internal/board"
	"github.com/hailam/chessgui/internal/game"
	"github.com/hailam/chessgui/internal/rules"
)

// BannerText is shown once the game ends in checkmate.
const BannerText = "Checkmate :O"

// Presenter turns session state into a frame model. It decides what to draw
// but never draws.
type Presenter struct {
	theme  *Theme
	glyphs GlyphSet
}

// NewPresenter creates a presenter. Nil arguments select the defaults.
func NewPresenter(theme *Theme, glyphs GlyphSet) *Presenter {
	if theme == nil {
		theme = DefaultTheme()
	}
	if glyphs == nil {
		glyphs = UnicodeGlyphs
	}
	return &Presenter{theme: theme, glyphs: glyphs}
}

// Theme returns the presenter's theme.
func (p *Presenter) Theme() *Theme {
	return p.theme
}

// Present builds the model for a board of width x height pixels.
// While the game is in progress it also checks for checkmate and ends the
// session when the engine reports it.
func (p *Presenter) Present(s *game.Session, width, height float64) Model {
	m := Model{
		Width:  width,
		Height: height,
		Clear:  p.theme.Background,
		Cells:  make([]Cell, 0, board.Size*board.Size),
	}

	snap := s.Board()
	glyphSize := math.Min(width, height) / board.Size

	for _, sq := range board.Squares() {
		rect := squareRect(sq, width, height)
		m.Cells = append(m.Cells, Cell{Square: sq, Rect: rect, Background: p.theme.SquareColor(sq)})

		piece := snap.At(sq)
		if piece.IsEmpty() {
			continue
		}
		side, ok := s.ColorAt(sq)
		if !ok {
			continue
		}
		m.Glyphs = append(m.Glyphs, Glyph{
			Square: sq,
			Text:   p.glyphs.Glyph(piece.Kind),
			X:      rect.X,
			Y:      rect.Y,
			Size:   glyphSize,
			Color:  p.theme.PieceColor(side),
		})
	}

	if sel, ok := s.Selection().(game.Selected); ok {
		m.Highlights = p.highlights(s, &snap, sel.Origin, width, height)
	}

	if s.Phase() == game.InProgress && s.State() == rules.Checkmate {
		s.End()
	}
	if s.Phase() == game.Ended {
		m.Banner = &Banner{
			Text:  BannerText,
			Size:  p.theme.BannerSize,
			Color: p.theme.BannerColor,
		}
	}

	return m
}

func (p *Presenter) highlights(s *game.Session, snap *board.Snapshot, origin board.Square, width, height float64) []Highlight {
	dests, ok := s.LegalMoves(origin)
	if !ok {
		return nil
	}

	hs := make([]Highlight, 0, len(dests))
	for _, d := range dests {
		h := Highlight{Square: d, Kind: Quiet, Rect: squareRect(d, width, height), Color: p.theme.QuietColor}
		if snap.Occupied(d) {
			h.Kind = Capture
			h.Color = p.theme.CaptureColor
		}
		hs = append(hs, h)
	}
	return hs
}
