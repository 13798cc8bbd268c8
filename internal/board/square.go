// Package board holds the board data model and the mapping between window
// pixels, grid squares and square notation.
package board

import (
	"errors"
	"fmt"
	"math"
)

// Size is the number of files and ranks on the board.
const Size = 8

// ErrInvalidNotation is returned when a square name is not a file A-H
// followed by a rank 1-8.
var ErrInvalidNotation = errors.New("invalid square notation")

// Square identifies one board cell by grid position.
// Col 0..7 maps to files A..H; Row 0 is the topmost rendered rank (rank 8).
type Square struct {
	Col int
	Row int
}

// NewSquare returns the square at the given column and row, clamped onto the board.
func NewSquare(col, row int) Square {
	return Square{Col: clampIndex(col), Row: clampIndex(row)}
}

// IsValid reports whether both indices are within 0..7.
func (sq Square) IsValid() bool {
	return sq.Col >= 0 && sq.Col < Size && sq.Row >= 0 && sq.Row < Size
}

// File returns the file letter (A-H).
func (sq Square) File() byte {
	return 'A' + byte(sq.Col)
}

// Rank returns the rank number (1-8). Row 0 is rank 8.
func (sq Square) Rank() int {
	return Size - sq.Row
}

// Notation returns the square name, e.g. "E2".
func (sq Square) Notation() string {
	return fmt.Sprintf("%c%d", sq.File(), sq.Rank())
}

// String implements fmt.Stringer.
func (sq Square) String() string {
	return sq.Notation()
}

// ParseNotation parses a square name such as "e2" or "E2".
func ParseNotation(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	file := s[0]
	if file >= 'a' && file <= 'z' {
		file -= 'a' - 'A'
	}
	rank := int(s[1]) - '0'

	if file < 'A' || file > 'H' || rank < 1 || rank > Size {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return Square{Col: int(file - 'A'), Row: Size - rank}, nil
}

// MustParseNotation is like ParseNotation but panics on malformed input.
// Use it only for names produced by Notation.
func MustParseNotation(s string) Square {
	sq, err := ParseNotation(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// PixelToSquare maps a pixel position on a board of the given size to a square.
// Cells are size/8 wide and high. Positions on or beyond the far edge, or
// slightly outside the canvas, are clamped onto the board.
func PixelToSquare(x, y, width, height float64) Square {
	return Square{
		Col: cellIndex(x, width),
		Row: cellIndex(y, height),
	}
}

// PixelOrigin returns the top-left corner of the square's cell.
func (sq Square) PixelOrigin(width, height float64) (float64, float64) {
	return float64(sq.Col) * width / Size, float64(sq.Row) * height / Size
}

// Rect returns the square's cell as origin plus cell dimensions.
func (sq Square) Rect(width, height float64) (x, y, w, h float64) {
	x, y = sq.PixelOrigin(width, height)
	return x, y, width / Size, height / Size
}

// Squares returns all 64 squares in row-major order starting at A8.
func Squares() []Square {
	squares := make([]Square, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			squares = append(squares, Square{Col: col, Row: row})
		}
	}
	return squares
}

func cellIndex(pos, extent float64) int {
	if extent <= 0 || math.IsNaN(pos) {
		return 0
	}
	cell := extent / Size
	idx := math.Floor(pos / cell)
	if idx < 0 {
		return 0
	}
	if idx > Size-1 {
		return Size - 1
	}
	return int(idx)
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > Size-1 {
		return Size - 1
	}
	return i
}
