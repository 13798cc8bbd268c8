package board

// Side is one of the two players.
type Side uint8

const (
	Light Side = iota
	Dark
	NoSide Side = 2
)

// Other returns the opposing side.
func (s Side) Other() Side {
	return s ^ 1
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return "NoSide"
	}
}

// PieceKind is the type of a chess piece.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// Piece is the occupant of a cell. The zero value is an empty cell.
type Piece struct {
	Kind PieceKind
	Side Side
}

// NoPiece is an empty cell.
var NoPiece = Piece{Kind: NoKind, Side: NoSide}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Snapshot is an 8x8 row-major grid of cells. Row 0 is rank 8.
type Snapshot [Size][Size]Piece

// At returns the occupant of sq, or NoPiece for an off-board square.
func (s *Snapshot) At(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return s[sq.Row][sq.Col]
}

// Occupied reports whether sq holds a piece.
func (s *Snapshot) Occupied(sq Square) bool {
	return !s.At(sq).IsEmpty()
}
