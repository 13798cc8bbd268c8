package game

import (
	"slices"

	"github.com/hailam/chessgui/internal/board"
	"github.com/hailam/chessgui/internal/rules"
	"go.uber.org/zap"
)

// Outcome describes how a game ended.
type Outcome struct {
	State  rules.State
	Winner board.Side
}

// MoveEvent describes a move the engine accepted.
type MoveEvent struct {
	From, To board.Square

	// Capture is set when a piece was taken, en passant included.
	Capture bool
	// Castle is set when the king moved two files.
	Castle bool
	// Check is set when the move leaves the opponent in check.
	Check bool
}

// Session owns the rules engine together with the selection and phase.
// It is driven from a single goroutine: input handling and rendering never
// run concurrently.
type Session struct {
	engine    rules.Engine
	selection Selection
	phase     Phase
	onEnd     func(Outcome)
	onMove    func(MoveEvent)
	onReject  func(from, to board.Square)
	log       *zap.SugaredLogger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(log *zap.SugaredLogger) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

// OnEnd registers a callback run once when the game ends.
func OnEnd(fn func(Outcome)) SessionOption {
	return func(s *Session) {
		s.onEnd = fn
	}
}

// OnMove registers a callback run after every accepted move.
func OnMove(fn func(MoveEvent)) SessionOption {
	return func(s *Session) {
		s.onMove = fn
	}
}

// OnReject registers a callback run when a move attempt is absorbed:
// the destination is not legal, the origin has no moves, or the engine
// refused it. Clicking the selected square again only deselects.
func OnReject(fn func(from, to board.Square)) SessionOption {
	return func(s *Session) {
		s.onReject = fn
	}
}

// NewSession takes exclusive ownership of engine and starts Idle, InProgress.
func NewSession(engine rules.Engine, opts ...SessionOption) *Session {
	s := &Session{
		engine:    engine,
		selection: Idle{},
		phase:     InProgress,
		log:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Selection returns the current selection.
func (s *Session) Selection() Selection {
	return s.selection
}

// Phase returns the current game phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// HandleClick processes a pointer-down at (x, y) on a board of the given
// pixel size. A first click selects the square under the pointer, whether or
// not it holds a piece. A second click attempts a move from the selected
// square and always returns to Idle, legal or not. Clicks after the game has
// ended are ignored.
func (s *Session) HandleClick(x, y, width, height float64) {
	clicked := board.PixelToSquare(x, y, width, height)

	if s.phase == Ended {
		return
	}

	switch sel := s.selection.(type) {
	case Idle:
		s.selection = Selected{Origin: clicked}
		s.log.Debugw("square selected", "square", clicked.Notation())

	case Selected:
		s.attemptMove(sel.Origin, clicked)
		s.selection = Idle{}
	}
}

func (s *Session) attemptMove(origin, dest board.Square) {
	from, to := origin.Notation(), dest.Notation()

	dests, ok := s.engine.LegalMoves(from)
	if !ok || !slices.Contains(dests, to) {
		s.log.Debugw("move not available", "from", from, "to", to)
		s.reject(origin, dest)
		return
	}

	snap := s.engine.Board()
	if err := s.engine.MakeMove(from, to); err != nil {
		s.log.Debugw("engine rejected move", "from", from, "to", to, "err", err)
		s.reject(origin, dest)
		return
	}
	s.log.Infow("move played", "from", from, "to", to)

	if s.onMove != nil {
		s.onMove(moveEvent(&snap, origin, dest, s.engine.InCheck()))
	}
}

func (s *Session) reject(origin, dest board.Square) {
	if s.onReject != nil && origin != dest {
		s.onReject(origin, dest)
	}
}

// moveEvent classifies a move from the position before it was played.
func moveEvent(before *board.Snapshot, origin, dest board.Square, check bool) MoveEvent {
	piece := before.At(origin)
	dcol := dest.Col - origin.Col

	return MoveEvent{
		From:    origin,
		To:      dest,
		Capture: before.Occupied(dest) || (piece.Kind == board.Pawn && dcol != 0),
		Castle:  piece.Kind == board.King && (dcol == 2 || dcol == -2),
		Check:   check,
	}
}

// End moves the session to Ended. It reports whether this call made the
// transition; once Ended, further calls do nothing.
func (s *Session) End() bool {
	if s.phase == Ended {
		return false
	}
	s.phase = Ended

	out := Outcome{State: s.engine.State(), Winner: board.NoSide}
	if out.State == rules.Checkmate {
		out.Winner = s.engine.Turn().Other()
	}
	s.log.Infow("game ended", "state", out.State, "winner", out.Winner)

	if s.onEnd != nil {
		s.onEnd(out)
	}
	return true
}

// Board returns a fresh snapshot from the engine.
func (s *Session) Board() board.Snapshot {
	return s.engine.Board()
}

// ColorAt returns the side of the piece on sq.
func (s *Session) ColorAt(sq board.Square) (board.Side, bool) {
	return s.engine.ColorAt(sq)
}

// LegalMoves returns the destinations reachable from origin. Destinations
// the engine reports in malformed notation are skipped.
func (s *Session) LegalMoves(origin board.Square) ([]board.Square, bool) {
	names, ok := s.engine.LegalMoves(origin.Notation())
	if !ok || len(names) == 0 {
		return nil, false
	}

	dests := make([]board.Square, 0, len(names))
	for _, name := range names {
		sq, err := board.ParseNotation(name)
		if err != nil {
			s.log.Debugw("skipping engine destination", "from", origin.Notation(), "err", err)
			continue
		}
		dests = append(dests, sq)
	}
	if len(dests) == 0 {
		return nil, false
	}
	return dests, true
}

// State returns the engine's game state.
func (s *Session) State() rules.State {
	return s.engine.State()
}

// Turn returns the side to move.
func (s *Session) Turn() board.Side {
	return s.engine.Turn()
}
