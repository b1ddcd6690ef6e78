package starling

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run opens a window and drives the stage with ebiten's game loop: each
// tick advances the stage timeline, each frame clears the screen to
// Stage.Color. Blocks until the window closes.
//
// For full control, implement ebiten.Game yourself and call Stage.Update
// (or Stage.AdvanceTime with your own delta) directly.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = int(stage.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(stage.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{stage: stage})
}

// game adapts a Stage to ebiten.Game.
type game struct {
	stage *Stage
}

func (g *game) Update() error {
	g.stage.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.stage.Color.toRGBA())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.stage.Width), int(g.stage.Height)
}
