package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hailam/chessgui/internal/board"
	"github.com/hailam/chessgui/internal/rules"
)

const boardPx = 800.0

// fakeEngine is a scripted rules engine that records every call.
type fakeEngine struct {
	moves  map[string][]string
	state  rules.State
	turn   board.Side
	snap   board.Snapshot
	check  bool
	reject bool
	calls  []string
	played [][2]string
}

func (f *fakeEngine) Board() board.Snapshot {
	f.calls = append(f.calls, "Board")
	return f.snap
}

func (f *fakeEngine) ColorAt(sq board.Square) (board.Side, bool) {
	f.calls = append(f.calls, "ColorAt")
	return board.NoSide, false
}

func (f *fakeEngine) LegalMoves(origin string) ([]string, bool) {
	f.calls = append(f.calls, "LegalMoves")
	dests, ok := f.moves[origin]
	return dests, ok && len(dests) > 0
}

func (f *fakeEngine) MakeMove(origin, dest string) error {
	f.calls = append(f.calls, "MakeMove")
	if f.reject {
		return rules.ErrIllegalMove
	}
	f.played = append(f.played, [2]string{origin, dest})
	return nil
}

func (f *fakeEngine) State() rules.State {
	f.calls = append(f.calls, "State")
	return f.state
}

func (f *fakeEngine) Turn() board.Side {
	f.calls = append(f.calls, "Turn")
	return f.turn
}

func (f *fakeEngine) InCheck() bool {
	f.calls = append(f.calls, "InCheck")
	return f.check
}

func put(snap *board.Snapshot, name string, kind board.PieceKind, side board.Side) {
	sq := board.MustParseNotation(name)
	snap[sq.Row][sq.Col] = board.Piece{Kind: kind, Side: side}
}

// click presses the centre of the named square on an 800x800 board.
func click(s *Session, name string) {
	x, y, w, h := board.MustParseNotation(name).Rect(boardPx, boardPx)
	s.HandleClick(x+w/2, y+h/2, boardPx, boardPx)
}

func TestFirstClickSelects(t *testing.T) {
	eng := &fakeEngine{}
	s := NewSession(eng)

	if _, ok := s.Selection().(Idle); !ok {
		t.Fatalf("Expected new session to be Idle, got %T", s.Selection())
	}

	click(s, "E2")
	sel, ok := s.Selection().(Selected)
	if !ok {
		t.Fatalf("Expected Selected after first click, got %T", s.Selection())
	}
	if sel.Origin != board.MustParseNotation("E2") {
		t.Errorf("Expected origin E2, got %v", sel.Origin)
	}
	if len(eng.calls) != 0 {
		t.Errorf("First click should not consult the engine, got %v", eng.calls)
	}
}

func TestEmptySquareSelectable(t *testing.T) {
	s := NewSession(&fakeEngine{})
	click(s, "E4")

	if sel, ok := s.Selection().(Selected); !ok || sel.Origin != board.MustParseNotation("E4") {
		t.Errorf("Expected empty square E4 to be selected, got %#v", s.Selection())
	}
}

func TestSecondClickMoves(t *testing.T) {
	eng := &fakeEngine{moves: map[string][]string{"E2": {"E3", "E4"}}}
	s := NewSession(eng)

	click(s, "E2")
	click(s, "E4")

	if len(eng.played) != 1 || eng.played[0] != [2]string{"E2", "E4"} {
		t.Errorf("Expected E2-E4 to be played, got %v", eng.played)
	}
	if _, ok := s.Selection().(Idle); !ok {
		t.Errorf("Expected Idle after move, got %T", s.Selection())
	}
}

func TestSecondClickFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		engine *fakeEngine
		first  string
		second string
	}{
		{
			name:   "IllegalDestination",
			engine: &fakeEngine{moves: map[string][]string{"E2": {"E3", "E4"}}},
			first:  "E2",
			second: "E5",
		},
		{
			name:   "NoLegalMoves",
			engine: &fakeEngine{},
			first:  "A1",
			second: "A2",
		},
		{
			name:   "EngineRejects",
			engine: &fakeEngine{moves: map[string][]string{"E2": {"E4"}}, reject: true},
			first:  "E2",
			second: "E4",
		},
		{
			name:   "OwnPieceIsNotReselected",
			engine: &fakeEngine{moves: map[string][]string{"E2": {"E3", "E4"}}},
			first:  "E2",
			second: "D2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.engine)
			click(s, tt.first)
			click(s, tt.second)

			if _, ok := s.Selection().(Idle); !ok {
				t.Errorf("Expected Idle after failed attempt, got %#v", s.Selection())
			}
			if len(tt.engine.played) != 0 {
				t.Errorf("Expected no move played, got %v", tt.engine.played)
			}
		})
	}
}

func TestEndIsOneWay(t *testing.T) {
	eng := &fakeEngine{state: rules.Checkmate, turn: board.Light}
	var outcomes []Outcome
	s := NewSession(eng, OnEnd(func(o Outcome) { outcomes = append(outcomes, o) }))

	if !s.End() {
		t.Fatal("Expected first End to transition")
	}
	if s.End() {
		t.Error("Expected second End to be a no-op")
	}
	if s.Phase() != Ended {
		t.Errorf("Expected Ended, got %v", s.Phase())
	}
	if len(outcomes) != 1 {
		t.Fatalf("Expected OnEnd to fire once, fired %d times", len(outcomes))
	}
	if outcomes[0].Winner != board.Dark {
		t.Errorf("Expected dark to win when light is mated, got %v", outcomes[0].Winner)
	}
}

func TestClicksIgnoredAfterEnd(t *testing.T) {
	eng := &fakeEngine{moves: map[string][]string{"E2": {"E4"}}, state: rules.Checkmate}

	t.Run("FromIdle", func(t *testing.T) {
		s := NewSession(eng)
		s.End()
		eng.calls = nil

		click(s, "E2")
		if _, ok := s.Selection().(Idle); !ok {
			t.Errorf("Expected Idle to persist after end, got %T", s.Selection())
		}
		if len(eng.calls) != 0 {
			t.Errorf("Expected no engine calls after end, got %v", eng.calls)
		}
	})

	t.Run("FromSelected", func(t *testing.T) {
		s := NewSession(eng)
		click(s, "E2")
		s.End()
		eng.calls = nil

		click(s, "E4")
		if sel, ok := s.Selection().(Selected); !ok || sel.Origin != board.MustParseNotation("E2") {
			t.Errorf("Expected selection to be unchanged, got %#v", s.Selection())
		}
		if len(eng.calls) != 0 {
			t.Errorf("Expected no engine calls after end, got %v", eng.calls)
		}
	})
}

func TestSessionWithChessEngine(t *testing.T) {
	eng, err := rules.NewGame()
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	s := NewSession(eng)

	t.Run("IllegalDestinationLeavesBoard", func(t *testing.T) {
		before := eng.Board()
		click(s, "E2")
		click(s, "E5")
		if eng.Board() != before {
			t.Error("Board changed after illegal attempt")
		}
		if _, ok := s.Selection().(Idle); !ok {
			t.Errorf("Expected Idle, got %T", s.Selection())
		}
	})

	t.Run("LegalMove", func(t *testing.T) {
		click(s, "E2")
		click(s, "E4")
		snap := eng.Board()
		if !snap.Occupied(board.MustParseNotation("E4")) || snap.Occupied(board.MustParseNotation("E2")) {
			t.Error("Expected pawn to move from E2 to E4")
		}
		if _, ok := s.Selection().(Idle); !ok {
			t.Errorf("Expected Idle, got %T", s.Selection())
		}
	})

	t.Run("LegalMovesAsSquares", func(t *testing.T) {
		dests, ok := s.LegalMoves(board.MustParseNotation("B8"))
		if !ok || len(dests) != 2 {
			t.Errorf("Expected two knight moves from B8, got %v", dests)
		}
	})
}

func TestMoveEvents(t *testing.T) {
	var snap board.Snapshot
	put(&snap, "E1", board.King, board.Light)
	put(&snap, "E5", board.Pawn, board.Light)
	put(&snap, "D5", board.Pawn, board.Dark)
	put(&snap, "B1", board.Knight, board.Light)
	put(&snap, "C3", board.Bishop, board.Dark)
	put(&snap, "H1", board.Rook, board.Light)

	sq := board.MustParseNotation

	tests := []struct {
		name     string
		from, to string
		check    bool
		want     MoveEvent
	}{
		{"Quiet", "E1", "F1", false, MoveEvent{From: sq("E1"), To: sq("F1")}},
		{"Capture", "B1", "C3", false, MoveEvent{From: sq("B1"), To: sq("C3"), Capture: true}},
		{"EnPassant", "E5", "D6", false, MoveEvent{From: sq("E5"), To: sq("D6"), Capture: true}},
		{"PawnPush", "E5", "E6", false, MoveEvent{From: sq("E5"), To: sq("E6")}},
		{"Castle", "E1", "G1", false, MoveEvent{From: sq("E1"), To: sq("G1"), Castle: true}},
		{"Check", "H1", "H8", true, MoveEvent{From: sq("H1"), To: sq("H8"), Check: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := &fakeEngine{
				moves: map[string][]string{tt.from: {tt.to}},
				snap:  snap,
				check: tt.check,
			}
			var got []MoveEvent
			s := NewSession(eng, OnMove(func(ev MoveEvent) { got = append(got, ev) }))

			click(s, tt.from)
			click(s, tt.to)

			if diff := cmp.Diff([]MoveEvent{tt.want}, got); diff != "" {
				t.Errorf("MoveEvent mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRejectEvents(t *testing.T) {
	tests := []struct {
		name          string
		engine        *fakeEngine
		first, second string
		wantRejected  bool
	}{
		{"IllegalDestination", &fakeEngine{moves: map[string][]string{"E2": {"E4"}}}, "E2", "E5", true},
		{"NoLegalMoves", &fakeEngine{}, "A3", "A4", true},
		{"EngineRejects", &fakeEngine{moves: map[string][]string{"E2": {"E4"}}, reject: true}, "E2", "E4", true},
		{"SameSquareDeselects", &fakeEngine{moves: map[string][]string{"E2": {"E4"}}}, "E2", "E2", false},
		{"LegalMove", &fakeEngine{moves: map[string][]string{"E2": {"E4"}}}, "E2", "E4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rejected [][2]board.Square
			s := NewSession(tt.engine, OnReject(func(from, to board.Square) {
				rejected = append(rejected, [2]board.Square{from, to})
			}))

			click(s, tt.first)
			click(s, tt.second)

			if got := len(rejected) == 1; got != tt.wantRejected {
				t.Fatalf("Expected rejected=%v, got %v", tt.wantRejected, rejected)
			}
			if tt.wantRejected {
				want := [2]board.Square{board.MustParseNotation(tt.first), board.MustParseNotation(tt.second)}
				if rejected[0] != want {
					t.Errorf("Expected rejection %v, got %v", want, rejected[0])
				}
			}
		})
	}
}

func TestLegalMovesSkipsMalformedDestinations(t *testing.T) {
	tests := []struct {
		name   string
		dests  []string
		want   []board.Square
		wantOK bool
	}{
		{"Mixed", []string{"E3", "Z9", "E4", ""}, []board.Square{board.MustParseNotation("E3"), board.MustParseNotation("E4")}, true},
		{"AllMalformed", []string{"Z9", "I1"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(&fakeEngine{moves: map[string][]string{"E2": tt.dests}})

			got, ok := s.LegalMoves(board.MustParseNotation("E2"))
			if ok != tt.wantOK {
				t.Errorf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LegalMoves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTurn(t *testing.T) {
	s := NewSession(&fakeEngine{turn: board.Dark})
	if s.Turn() != board.Dark {
		t.Errorf("Expected dark to move, got %v", s.Turn())
	}
}
