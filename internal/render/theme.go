// Package render derives what a board frame should show and hands it to a
// drawing surface.
package render

import (
	"image/color"

	"github.com/hailam/chessgui/internal/board"
)

// Theme defines the colors and text sizes used for a frame.
// Colors are non-premultiplied so translucent highlights keep their hue.
type Theme struct {
	LightSquare  color.NRGBA
	DarkSquare   color.NRGBA
	LightPiece   color.NRGBA
	DarkPiece    color.NRGBA
	CaptureColor color.NRGBA
	QuietColor   color.NRGBA
	Background   color.NRGBA
	BannerColor  color.NRGBA
	BannerSize   float64
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:  color.NRGBA{255, 161, 161, 255}, // Pink
		DarkSquare:   color.NRGBA{180, 112, 80, 255},  // Brown
		LightPiece:   color.NRGBA{255, 255, 255, 255},
		DarkPiece:    color.NRGBA{0, 0, 0, 255},
		CaptureColor: color.NRGBA{100, 69, 200, 200},  // Violet
		QuietColor:   color.NRGBA{182, 212, 119, 200}, // Green
		Background:   color.NRGBA{0, 0, 0, 255},
		BannerColor:  color.NRGBA{255, 255, 255, 255},
		BannerSize:   100,
	}
}

// SquareColor returns the background for sq. A8 (0,0) is light.
func (t *Theme) SquareColor(sq board.Square) color.NRGBA {
	if (sq.Row+sq.Col)%2 == 0 {
		return t.LightSquare
	}
	return t.DarkSquare
}

// PieceColor returns the glyph color for a side.
func (t *Theme) PieceColor(s board.Side) color.NRGBA {
	if s == board.Light {
		return t.LightPiece
	}
	return t.DarkPiece
}

// GlyphSet maps piece kinds to the text drawn for them.
type GlyphSet map[board.PieceKind]string

// UnicodeGlyphs uses the solid chess symbols for both sides; side is shown by color.
var UnicodeGlyphs = GlyphSet{
	board.King:   "♚",
	board.Queen:  "♛",
	board.Rook:   "♜",
	board.Bishop: "♝",
	board.Knight: "♞",
	board.Pawn:   "♟",
}

// LetterGlyphs is for fonts without chess symbols.
var LetterGlyphs = GlyphSet{
	board.King:   "K",
	board.Queen:  "Q",
	board.Rook:   "R",
	board.Bishop: "B",
	board.Knight: "N",
	board.Pawn:   "P",
}

// Glyph returns the text for kind, or "" when the set has none.
func (g GlyphSet) Glyph(kind board.PieceKind) string {
	return g[kind]
}
