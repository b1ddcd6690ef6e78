package starling

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Stage is the root of a display tree and the coordination point for a
// frame: it owns the root node, the primary Juggler, and the logical size
// of the coordinate space.
//
// The stage defines the root coordinate space and therefore cannot itself
// be moved, scaled, or rotated; the transform setters exist only to reject
// the attempt loudly.
type Stage struct {
	// Width and Height are the logical size of the stage coordinate space.
	Width, Height float64
	// Color is the background clear color used by Run.
	Color Color

	root    *Node
	juggler *Juggler
}

// NewStage creates a stage of the given logical size with an empty root
// container and a fresh juggler.
func NewStage(width, height float64) *Stage {
	return &Stage{
		Width:   width,
		Height:  height,
		Color:   Color{0, 0, 0, 1},
		root:    NewNode("root"),
		juggler: NewJuggler(),
	}
}

// Root returns the stage's root container node.
func (s *Stage) Root() *Node {
	return s.root
}

// Juggler returns the stage's primary juggler. Animations added here run
// whenever the stage advances.
func (s *Stage) Juggler() *Juggler {
	return s.juggler
}

// AdvanceTime moves the stage's timeline forward by dt seconds, advancing
// the juggler and everything in it. Call once per frame with the measured
// frame delta; Update does this for ebiten-driven loops.
func (s *Stage) AdvanceTime(dt float64) {
	s.juggler.AdvanceTime(dt)
}

// Update advances the stage by one fixed ebiten tick (1 / TPS seconds).
// Call from an ebiten.Game's Update method; Run wires this up for you.
func (s *Stage) Update() {
	s.AdvanceTime(1.0 / float64(ebiten.TPS()))
}

// SetX panics: the stage defines the root coordinate space.
func (s *Stage) SetX(float64) { panic(errStageTransform) }

// SetY panics: the stage defines the root coordinate space.
func (s *Stage) SetY(float64) { panic(errStageTransform) }

// SetScaleX panics: the stage defines the root coordinate space.
func (s *Stage) SetScaleX(float64) { panic(errStageTransform) }

// SetScaleY panics: the stage defines the root coordinate space.
func (s *Stage) SetScaleY(float64) { panic(errStageTransform) }

// SetRotation panics: the stage defines the root coordinate space.
func (s *Stage) SetRotation(float64) { panic(errStageTransform) }

const errStageTransform = "starling: cannot transform the stage; transform its children instead"
