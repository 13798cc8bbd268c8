// Package fonts locates a TrueType font able to draw the piece glyphs.
package fonts

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// chessSymbols are the runes drawn for pieces.
const chessSymbols = "♚♛♜♝♞♟"

// SystemCandidates are common locations of fonts that carry chess symbols.
var SystemCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSerif.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	`C:\Windows\Fonts\seguisym.ttf`,
}

// Font is a parsed font file.
type Font struct {
	Name string
	Data []byte

	// ChessGlyphs reports whether every piece symbol is present.
	ChessGlyphs bool
}

// Parse reads font data and checks it for chess symbols.
func Parse(name string, data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	return &Font{Name: name, Data: data, ChessGlyphs: hasRunes(f, chessSymbols)}, nil
}

// Load reads and parses the font at path.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(path, data)
}

// Fallback returns the embedded Go Regular font. It has no chess symbols.
func Fallback() *Font {
	f, err := Parse("goregular", goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}

// Resolve picks a font for the board. An explicit path is used if it loads,
// even without chess symbols. Otherwise the first candidate with chess
// symbols wins, and the embedded Go font is the last resort.
func Resolve(path string, candidates []string, log *zap.SugaredLogger) *Font {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if path != "" {
		f, err := Load(path)
		if err == nil {
			if !f.ChessGlyphs {
				log.Warnw("font has no chess symbols, pieces will be drawn as letters", "font", path)
			}
			return f
		}
		log.Warnw("font not usable", "font", path, "err", err)
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err != nil {
			continue
		}
		f, err := Load(c)
		if err != nil {
			log.Debugw("skipping font", "font", c, "err", err)
			continue
		}
		if f.ChessGlyphs {
			log.Debugw("using system font", "font", c)
			return f
		}
	}

	log.Infow("no font with chess symbols found, using embedded font")
	return Fallback()
}

func hasRunes(f *sfnt.Font, s string) bool {
	var buf sfnt.Buffer
	for _, r := range s {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			return false
		}
	}
	return true
}
