// Package game holds the interaction state of a board session: which square
// is selected, whether the game has ended, and the click handling that moves
// between those states.
package game

import "github.com/hailam/chessgui/internal/board"

// Selection is either Idle or Selected. No other implementations exist.
type Selection interface {
	isSelection()
}

// Idle means no square is selected.
type Idle struct{}

// Selected records the origin square chosen by the first click.
type Selected struct {
	Origin board.Square
}

func (Idle) isSelection()     {}
func (Selected) isSelection() {}

// Phase is the one-way game lifecycle.
type Phase int

const (
	InProgress Phase = iota
	Ended
)

// String returns the phase name.
func (p Phase) String() string {
	if p == Ended {
		return "Ended"
	}
	return "InProgress"
}
