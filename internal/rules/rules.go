// Package rules defines the chess rules collaborator the board front end
// consults, and an implementation backed by github.com/notnil/chess.
package rules

import (
	"errors"

	"github.com/hailam/chessgui/internal/board"
)

// ErrIllegalMove is returned by MakeMove when the engine rejects a move.
var ErrIllegalMove = errors.New("illegal move")

// State is the engine's view of whether the game continues.
type State int

const (
	InProgress State = iota
	Checkmate
	Stalemate
	Draw
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Engine is everything the front end needs from a rules engine.
// Squares cross this boundary as notation ("E2") where moves are concerned.
type Engine interface {
	// Board returns a fresh copy of the current occupancy.
	Board() board.Snapshot

	// ColorAt returns the side of the piece on sq, if any.
	ColorAt(sq board.Square) (board.Side, bool)

	// LegalMoves returns the destinations reachable from origin.
	// ok is false when origin is empty or its piece has no legal move.
	LegalMoves(origin string) (dests []string, ok bool)

	// MakeMove plays origin to dest if legal and returns ErrIllegalMove otherwise.
	MakeMove(origin, dest string) error

	// State reports whether the game has ended and how.
	State() State

	// Turn returns the side to move.
	Turn() board.Side

	// InCheck reports whether the last move played gave check.
	InCheck() bool
}
