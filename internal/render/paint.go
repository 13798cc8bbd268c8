package render

import "image/color"

// Surface is a drawing target for one frame.
type Surface interface {
	BeginFrame(clear color.NRGBA)
	FillRect(r Rect, c color.NRGBA)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y, size float64, c color.NRGBA)
	EndFrame()
}

// Paint issues the draw calls for m in layer order: backgrounds, highlights,
// piece glyphs, then the banner.
func Paint(dst Surface, m Model) {
	dst.BeginFrame(m.Clear)

	for _, c := range m.Cells {
		dst.FillRect(c.Rect, c.Background)
	}
	for _, h := range m.Highlights {
		dst.FillRect(h.Rect, h.Color)
	}
	for _, g := range m.Glyphs {
		if g.Text == "" {
			continue
		}
		dst.DrawText(g.Text, g.X, g.Y, g.Size, g.Color)
	}
	if m.Banner != nil {
		dst.DrawText(m.Banner.Text, m.Banner.X, m.Banner.Y, m.Banner.Size, m.Banner.Color)
	}

	dst.EndFrame()
}
