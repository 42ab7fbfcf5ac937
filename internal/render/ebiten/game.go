// Package ebiten shows a maze session in a desktop window using Ebitengine.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/mazerunner/internal/runner"
	"github.com/katalvlaran/mazerunner/internal/scene"
)

// Game adapts a runner.Runner to ebiten.Game.
type Game struct {
	runner        *runner.Runner
	width, height int
}

// NewGame wraps r. The logical screen matches the configured window size.
func NewGame(r *runner.Runner) *Game {
	cfg := r.Config()

	return &Game{runner: r, width: cfg.WindowWidth, height: cfg.WindowHeight}
}

// Update implements ebiten.Game. Esc quits, R carves a new maze.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.runner.Reset()
	}
	g.runner.Update(1 / float64(ebiten.TPS()))

	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	f := scene.Build(g.runner, float32(g.width), float32(g.height))
	for _, r := range f.Rects {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	for _, l := range f.Lines {
		vector.StrokeLine(screen, l.X1, l.Y1, l.X2, l.Y2, 1, l.Color, false)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(r *runner.Runner) error {
	cfg := r.Config()
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)

	return ebiten.RunGame(NewGame(r))
}
