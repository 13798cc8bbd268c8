// Package termview prints a board frame to a terminal.
package termview

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/hailam/chessgui/internal/board"
	"github.com/hailam/chessgui/internal/render"
	"golang.org/x/term"
)

// wideCells is the column count needed for three-character cells plus labels.
const wideCells = 3*board.Size + 4

// Printer writes board frames as text, one line per rank.
type Printer struct {
	w       io.Writer
	color   bool
	compact bool
}

// NewPrinter creates a printer for w. Colors are used only when w is a
// terminal; narrow terminals get one-character cells.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{w: w}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.color = !color.NoColor
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width < wideCells {
			p.compact = true
		}
	}
	return p
}

// SetColor forces colors on or off.
func (p *Printer) SetColor(on bool) {
	p.color = on
}

// Print writes m. Highlighted squares are bracketed: () for quiet
// destinations, [] for captures.
func (p *Printer) Print(m render.Model) error {
	bw := bufio.NewWriter(p.w)

	p.writeFiles(bw)
	for row := 0; row < board.Size; row++ {
		rank := strconv.Itoa(board.Square{Row: row}.Rank())
		bw.WriteString(rank + " ")
		for col := 0; col < board.Size; col++ {
			bw.WriteString(p.cell(&m, board.Square{Col: col, Row: row}))
		}
		bw.WriteString(" " + rank + "\n")
	}
	p.writeFiles(bw)

	if m.Banner != nil {
		bw.WriteString("\n" + m.Banner.Text + "\n")
	}
	return bw.Flush()
}

func (p *Printer) writeFiles(bw *bufio.Writer) {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < board.Size; col++ {
		f := string(board.Square{Col: col}.File())
		if p.compact {
			sb.WriteString(f)
		} else {
			sb.WriteString(" " + f + " ")
		}
	}
	bw.WriteString(sb.String() + "\n")
}

func (p *Printer) cell(m *render.Model, sq board.Square) string {
	cell, _ := m.CellAt(sq)
	bg := cell.Background

	text := " "
	fg := bg
	if g, ok := m.GlyphAt(sq); ok && g.Text != "" {
		text = g.Text
		fg = g.Color
	}

	left, right := " ", " "
	if h, ok := m.HighlightAt(sq); ok {
		bg = h.Color
		if h.Kind == render.Capture {
			left, right = "[", "]"
		} else {
			left, right = "(", ")"
		}
		if p.compact && text == " " {
			text = left
		}
	}

	s := left + text + right
	if p.compact {
		s = text
	}
	if !p.color {
		return s
	}

	c := color.RGB(int(fg.R), int(fg.G), int(fg.B)).AddBgRGB(int(bg.R), int(bg.G), int(bg.B))
	c.EnableColor()
	return c.Sprint(s)
}
