// Package ui runs the board in an Ebitengine window.
package ui

import (
	"context"

	"github.com/hailam/chessgui/internal/game"
	"github.com/hailam/chessgui/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// WindowTitle is the title of the board window.
const WindowTitle = "Chess"

// Game implements ebiten.Game. The board fills the whole window.
type Game struct {
	session   *game.Session
	presenter *render.Presenter
	renderer  *Renderer
	input     *InputHandler
	log       *zap.SugaredLogger
	done      <-chan struct{}

	// Layout size, used for both click mapping and drawing.
	width, height int
}

// NewGame wires a session to the window.
func NewGame(session *game.Session, presenter *render.Presenter, renderer *Renderer, log *zap.SugaredLogger) *Game {
	return &Game{
		session:   session,
		presenter: presenter,
		renderer:  renderer,
		input:     NewInputHandler(),
		log:       log,
	}
}

// StopOn makes the game loop exit once ctx is done.
func (g *Game) StopOn(ctx context.Context) {
	g.done = ctx.Done()
}

// Update handles input.
func (g *Game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}

	g.input.Update()

	if g.input.IsLeftJustPressed() {
		mx, my := g.input.MousePosition()
		g.session.HandleClick(float64(mx), float64(my), float64(g.width), float64(g.height))
	}

	return nil
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	model := g.presenter.Present(g.session, float64(b.Dx()), float64(b.Dy()))

	g.renderer.SetTarget(screen)
	render.Paint(g.renderer, model)
}

// Layout tracks the window size so the board stretches with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.log.Debugw("layout changed", "width", outsideWidth, "height", outsideHeight)
	}
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Size returns the most recent layout size.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

// Run opens a resizable window of the given size and blocks until it closes.
func Run(g *Game, width, height int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if icons, err := WindowIcons(); err != nil {
		g.log.Warnw("window icon unavailable", "err", err)
	} else {
		ebiten.SetWindowIcon(icons)
	}

	return ebiten.RunGame(g)
}
