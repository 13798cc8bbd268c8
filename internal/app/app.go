package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hailam/chessgui/internal/board"
	"github.com/hailam/chessgui/internal/fonts"
	"github.com/hailam/chessgui/internal/game"
	"github.com/hailam/chessgui/internal/render"
	"github.com/hailam/chessgui/internal/rules"
	"github.com/hailam/chessgui/internal/snapshot"
	"github.com/hailam/chessgui/internal/storage"
	"github.com/hailam/chessgui/internal/termview"
	"github.com/hailam/chessgui/internal/ui"
	"go.uber.org/zap"
)

// App holds what every command needs: configuration, stored preferences
// and the logger.
type App struct {
	cfg   Config
	log   *zap.SugaredLogger
	store *storage.Storage
	prefs *storage.UserPreferences
	sound bool
}

// New opens storage and merges stored preferences under cfg. Storage
// problems are logged and the app continues with defaults.
func New(cfg Config, log *zap.SugaredLogger) *App {
	a := &App{cfg: cfg, log: log, prefs: storage.DefaultPreferences()}

	if !cfg.NoStore {
		store, err := storage.NewStorage(cfg.DataDir)
		if err != nil {
			log.Warnw("failed to initialize storage", "err", err)
		} else {
			a.store = store
			if prefs, err := store.LoadPreferences(); err != nil {
				log.Warnw("failed to load preferences", "err", err)
			} else {
				a.prefs = prefs
			}
		}
	}

	if a.cfg.Width <= 0 {
		a.cfg.Width = a.prefs.WindowWidth
	}
	if a.cfg.Height <= 0 {
		a.cfg.Height = a.prefs.WindowHeight
	}
	if a.cfg.FontPath == "" {
		a.cfg.FontPath = a.prefs.FontPath
	}
	a.sound = a.prefs.SoundEnabled
	if a.cfg.Mute != nil {
		a.sound = !*a.cfg.Mute
	}
	return a
}

// Close releases storage.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// Config returns the merged configuration.
func (a *App) Config() Config {
	return a.cfg
}

// SoundEnabled reports whether effects play, after merging --mute over the
// stored preference.
func (a *App) SoundEnabled() bool {
	return a.sound
}

// Play opens the board window and blocks until it is closed or ctx is done.
func (a *App) Play(ctx context.Context) error {
	font := fonts.Resolve(a.cfg.FontPath, fonts.SystemCandidates, a.log)

	sfx := ui.NewAudioManager(a.sound)

	started := time.Now()
	opts := append(sfx.SessionOptions(), game.OnEnd(func(out game.Outcome) {
		sfx.OnEnd(out)
		a.recordGame(out, time.Since(started))
	}))
	session, err := a.newSession(opts...)
	if err != nil {
		return err
	}

	renderer, err := ui.NewRenderer(font)
	if err != nil {
		return err
	}

	g := ui.NewGame(session, render.NewPresenter(nil, a.glyphs(font)), renderer, a.log)
	g.StopOn(ctx)

	a.log.Infow("opening window", "width", a.cfg.Width, "height", a.cfg.Height, "font", font.Name, "sound", a.sound)
	if err := ui.Run(g, a.cfg.Width, a.cfg.Height); err != nil {
		return fmt.Errorf("run window: %w", err)
	}

	width, height := g.Size()
	a.savePreferences(width, height)
	return nil
}

// Snapshot renders the configured position to a PNG file, or to stdout when
// out is "-".
func (a *App) Snapshot(out string) error {
	font := fonts.Resolve(a.cfg.FontPath, fonts.SystemCandidates, a.log)

	session, err := a.newSession()
	if err != nil {
		return err
	}
	model := render.NewPresenter(nil, a.glyphs(font)).Present(session, float64(a.cfg.Width), float64(a.cfg.Height))

	write := func(w io.Writer) error {
		return snapshot.Render(w, model, font)
	}
	if out == "-" {
		return write(os.Stdout)
	}

	if err := writeFile(out, write); err != nil {
		return err
	}
	a.log.Infow("snapshot written", "path", out)
	return nil
}

// writeFile creates path and hands it to write. The file's close error is
// returned, so a short write never reports success.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Show prints the configured position to w.
func (a *App) Show(w io.Writer) error {
	session, err := a.newSession()
	if err != nil {
		return err
	}

	glyphs := render.UnicodeGlyphs
	if a.cfg.Letters {
		glyphs = render.LetterGlyphs
	}
	model := render.NewPresenter(nil, glyphs).Present(session, float64(a.cfg.Width), float64(a.cfg.Height))

	return termview.NewPrinter(w).Print(model)
}

// ErrNoStore is returned by commands that need storage when it is disabled
// or failed to open.
var ErrNoStore = errors.New("storage unavailable")

// Stats prints the finished-game counters to w.
func (a *App) Stats(w io.Writer) error {
	if a.store == nil {
		return ErrNoStore
	}
	stats, err := a.store.LoadStats()
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	_, err = fmt.Fprintf(w, "games: %d\nlight wins: %d\ndark wins: %d\ndraws: %d\ntime played: %s\n",
		stats.GamesPlayed, stats.LightWins, stats.DarkWins, stats.Draws, stats.TotalPlayTime.Round(time.Second))
	return err
}

// newSession builds the engine from the FEN and move list, then replays
// the --select square as a click.
func (a *App) newSession(opts ...game.SessionOption) (*game.Session, error) {
	var ruleOpts []rules.Option
	if a.cfg.FEN != "" {
		ruleOpts = append(ruleOpts, rules.WithFEN(a.cfg.FEN))
	}
	engine, err := rules.NewGame(ruleOpts...)
	if err != nil {
		return nil, err
	}

	for _, mv := range a.cfg.Moves {
		from, to, err := ParseMove(mv)
		if err != nil {
			return nil, err
		}
		if err := engine.MakeMove(from.Notation(), to.Notation()); err != nil {
			return nil, fmt.Errorf("apply move %q: %w", mv, err)
		}
	}

	opts = append([]game.SessionOption{game.WithLogger(a.log)}, opts...)
	session := game.NewSession(engine, opts...)

	if a.cfg.Select != "" {
		sq, err := board.ParseNotation(a.cfg.Select)
		if err != nil {
			return nil, err
		}
		x, y, w, h := sq.Rect(float64(a.cfg.Width), float64(a.cfg.Height))
		session.HandleClick(x+w/2, y+h/2, float64(a.cfg.Width), float64(a.cfg.Height))
	}

	return session, nil
}

func (a *App) glyphs(font *fonts.Font) render.GlyphSet {
	if a.cfg.Letters || !font.ChessGlyphs {
		return render.LetterGlyphs
	}
	return render.UnicodeGlyphs
}

func (a *App) recordGame(out game.Outcome, played time.Duration) {
	if a.store == nil {
		return
	}

	result := storage.GameResult{Winner: storage.WinnerNone, Duration: played}
	switch out.Winner {
	case board.Light:
		result.Winner = storage.WinnerLight
	case board.Dark:
		result.Winner = storage.WinnerDark
	}

	if err := a.store.RecordGame(result); err != nil {
		a.log.Warnw("failed to record game", "err", err)
	}
}

func (a *App) savePreferences(width, height int) {
	if a.store == nil {
		return
	}

	if width >= storage.MinWindowSize && height >= storage.MinWindowSize {
		a.prefs.WindowWidth = width
		a.prefs.WindowHeight = height
	}
	a.prefs.FontPath = a.cfg.FontPath
	a.prefs.SoundEnabled = a.sound

	if err := a.store.SavePreferences(a.prefs); err != nil {
		a.log.Warnw("failed to save preferences", "err", err)
	}
}
