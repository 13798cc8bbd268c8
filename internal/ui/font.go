package ui

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hailam/chessgui/internal/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// faceCache hands out text faces of one font source by size.
type faceCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newFaceCache(f *fonts.Font) (*faceCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(f.Data))
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", f.Name, err)
	}
	return &faceCache{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face returns a face of the given pixel size, or nil for a non-positive size.
func (fc *faceCache) Face(size float64) *text.GoTextFace {
	size = math.Round(size)
	if size <= 0 {
		return nil
	}
	if face, ok := fc.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fc.source,
		Size:   size,
	}
	fc.faces[size] = face
	return face
}
