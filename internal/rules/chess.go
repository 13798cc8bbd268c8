package rules

import (
	"fmt"
	"strings"

	"github.com/hailam/chessgui/internal/board"
	"github.com/notnil/chess"
)

// Game is an Engine backed by a notnil/chess game.
type Game struct {
	game *chess.Game
}

// Option configures a new Game.
type Option func(*options)

type options struct {
	fen string
}

// WithFEN starts the game from the given FEN position instead of the
// standard starting position.
func WithFEN(fen string) Option {
	return func(o *options) {
		o.fen = strings.TrimSpace(fen)
	}
}

// NewGame creates a game in the standard starting position with light to move,
// or in the position given by WithFEN.
func NewGame(opts ...Option) (*Game, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.fen == "" {
		return &Game{game: chess.NewGame()}, nil
	}

	fen, err := chess.FEN(o.fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen: %w", err)
	}
	return &Game{game: chess.NewGame(fen)}, nil
}

// Board returns the current occupancy as a row-major snapshot.
func (g *Game) Board() board.Snapshot {
	var snap board.Snapshot
	b := g.game.Position().Board()
	for _, sq := range board.Squares() {
		p := b.Piece(toChessSquare(sq))
		if p == chess.NoPiece {
			continue
		}
		snap[sq.Row][sq.Col] = board.Piece{Kind: fromChessKind(p.Type()), Side: fromChessColor(p.Color())}
	}
	return snap
}

// ColorAt returns the side of the piece on sq.
func (g *Game) ColorAt(sq board.Square) (board.Side, bool) {
	if !sq.IsValid() {
		return board.NoSide, false
	}
	p := g.game.Position().Board().Piece(toChessSquare(sq))
	if p == chess.NoPiece {
		return board.NoSide, false
	}
	return fromChessColor(p.Color()), true
}

// LegalMoves returns the de-duplicated destinations from origin.
// Promotion variants share a destination and are reported once.
func (g *Game) LegalMoves(origin string) ([]string, bool) {
	from, err := board.ParseNotation(origin)
	if err != nil {
		return nil, false
	}
	s1 := toChessSquare(from)

	var dests []string
	seen := make(map[chess.Square]bool)
	for _, m := range g.game.ValidMoves() {
		if m.S1() != s1 || seen[m.S2()] {
			continue
		}
		seen[m.S2()] = true
		dests = append(dests, fromChessSquare(m.S2()).Notation())
	}
	return dests, len(dests) > 0
}

// MakeMove plays origin to dest. Promotions always choose a queen.
func (g *Game) MakeMove(origin, dest string) error {
	from, err := board.ParseNotation(origin)
	if err != nil {
		return err
	}
	to, err := board.ParseNotation(dest)
	if err != nil {
		return err
	}
	s1, s2 := toChessSquare(from), toChessSquare(to)

	var found *chess.Move
	for _, m := range g.game.ValidMoves() {
		if m.S1() != s1 || m.S2() != s2 {
			continue
		}
		if found == nil || m.Promo() == chess.Queen {
			found = m
		}
	}
	if found == nil {
		return fmt.Errorf("%w: %s%s", ErrIllegalMove, origin, dest)
	}

	if err := g.game.Move(found); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	return nil
}

// State maps the game's outcome onto the front end's states.
func (g *Game) State() State {
	switch g.game.Method() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	}
	if g.game.Outcome() != chess.NoOutcome {
		return Draw
	}
	return InProgress
}

// Turn returns the side to move.
func (g *Game) Turn() board.Side {
	return fromChessColor(g.game.Position().Turn())
}

// InCheck reports whether the last move gave check.
func (g *Game) InCheck() bool {
	moves := g.game.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return g.game.FEN()
}

func toChessSquare(sq board.Square) chess.Square {
	return chess.NewSquare(chess.File(sq.Col), chess.Rank(board.Size-1-sq.Row))
}

func fromChessSquare(sq chess.Square) board.Square {
	return board.Square{Col: int(sq.File()), Row: board.Size - 1 - int(sq.Rank())}
}

func fromChessColor(c chess.Color) board.Side {
	switch c {
	case chess.White:
		return board.Light
	case chess.Black:
		return board.Dark
	default:
		return board.NoSide
	}
}

func fromChessKind(pt chess.PieceType) board.PieceKind {
	switch pt {
	case chess.King:
		return board.King
	case chess.Queen:
		return board.Queen
	case chess.Rook:
		return board.Rook
	case chess.Bishop:
		return board.Bishop
	case chess.Knight:
		return board.Knight
	case chess.Pawn:
		return board.Pawn
	default:
		return board.NoKind
	}
}
