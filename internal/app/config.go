// Package app wires the board session to its surfaces, storage and fonts.
package app

import (
	"fmt"
	"strings"

	"github.com/hailam/chessgui/internal/board"
)

// Config is the resolved command-line configuration. Zero width or height
// and a nil Mute mean "use the stored preference".
type Config struct {
	Width    int
	Height   int
	FontPath string
	Letters  bool
	FEN      string
	Moves    []string
	Select   string
	DataDir  string
	NoStore  bool
	Mute     *bool
}

// ParseMove splits a move such as "e2e4", "E2-E4" or "e2 e4" into its
// origin and destination squares.
func ParseMove(s string) (from, to board.Square, err error) {
	clean := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(s))
	if len(clean) != 4 {
		return from, to, fmt.Errorf("invalid move %q", s)
	}
	if from, err = board.ParseNotation(clean[:2]); err != nil {
		return from, to, fmt.Errorf("invalid move %q: %w", s, err)
	}
	if to, err = board.ParseNotation(clean[2:]); err != nil {
		return from, to, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return from, to, nil
}
