package ui

import (
	"image/color"

	"github.com/hailam/chessgui/internal/fonts"
	"github.com/hailam/chessgui/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws frames onto the Ebitengine screen.
type Renderer struct {
	screen *ebiten.Image
	faces  *faceCache
}

// NewRenderer creates a renderer that draws text with f.
func NewRenderer(f *fonts.Font) (*Renderer, error) {
	faces, err := newFaceCache(f)
	if err != nil {
		return nil, err
	}
	return &Renderer{faces: faces}, nil
}

// SetTarget sets the image the next frame is drawn on.
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
}

// BeginFrame clears the screen.
func (r *Renderer) BeginFrame(clear color.NRGBA) {
	if r.screen == nil {
		return
	}
	r.screen.Fill(clear)
}

// FillRect draws a filled rectangle.
func (r *Renderer) FillRect(rect render.Rect, c color.NRGBA) {
	if r.screen == nil {
		return
	}
	vector.DrawFilledRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
}

// DrawText draws s with its top-left corner at (x, y).
func (r *Renderer) DrawText(s string, x, y, size float64, c color.NRGBA) {
	face := r.faces.Face(size)
	if r.screen == nil || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.screen, s, face, op)
}

// EndFrame releases the screen; Ebitengine presents it after Draw returns.
func (r *Renderer) EndFrame() {
	r.screen = nil
}
