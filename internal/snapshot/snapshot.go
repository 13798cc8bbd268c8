// Package snapshot rasterizes board frames to PNG without opening a window.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/hailam/chessgui/internal/fonts"
	"github.com/hailam/chessgui/internal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Surface is a render.Surface drawing into an in-memory image with gg.
type Surface struct {
	dc    *gg.Context
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewSurface creates a width x height surface that draws text with f.
func NewSurface(width, height int, f *fonts.Font) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", width, height)
	}
	otf, err := opentype.Parse(f.Data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", f.Name, err)
	}
	return &Surface{
		dc:    gg.NewContext(width, height),
		font:  otf,
		faces: make(map[float64]font.Face),
	}, nil
}

// BeginFrame fills the whole image with clear.
func (s *Surface) BeginFrame(clear color.NRGBA) {
	s.dc.SetColor(clear)
	s.dc.Clear()
}

// FillRect draws a filled rectangle.
func (s *Surface) FillRect(r render.Rect, c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	s.dc.Fill()
}

// DrawText draws str with its top-left corner at (x, y).
func (s *Surface) DrawText(str string, x, y, size float64, c color.NRGBA) {
	face := s.face(size)
	if face == nil {
		return
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	// Anchor (0, 1) puts the line box's top-left at (x, y).
	s.dc.DrawStringAnchored(str, x, y, 0, 1)
}

// EndFrame is a no-op; the image is complete once painting returns.
func (s *Surface) EndFrame() {}

// Image returns the rendered frame.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the rendered frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *Surface) face(size float64) font.Face {
	size = math.Round(size)
	if size <= 0 {
		return nil
	}
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	s.faces[size] = f
	return f
}

// Render paints m and writes it to w as PNG.
func Render(w io.Writer, m render.Model, f *fonts.Font) error {
	s, err := NewSurface(int(m.Width), int(m.Height), f)
	if err != nil {
		return err
	}
	render.Paint(s, m)
	if err := s.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
