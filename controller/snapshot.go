package controller

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/buttonfx"
)

// Snapshot is the original transform and visual state of the animated
// target. The color's alpha is not recorded: Color.A is always 1, so a
// restore leaves the target fully opaque.
type Snapshot struct {
	Rotation float64
	Scale    buttonfx.Vec2
	Position buttonfx.Vec2
	Image    *ebiten.Image
	Color    buttonfx.Color
}

// Capture records n's current state.
func Capture(n *buttonfx.Node) Snapshot {
	return Snapshot{
		Rotation: n.Rotation,
		Scale:    n.Scale(),
		Position: n.Position(),
		Image:    n.Image(),
		Color:    n.Color.Opaque(),
	}
}

// Restore writes the snapshot back to n in one step.
func (s Snapshot) Restore(n *buttonfx.Node) {
	n.Rotation = s.Rotation
	n.ScaleX, n.ScaleY = s.Scale.X, s.Scale.Y
	n.SetImage(s.Image)
	n.Color = s.Color.Opaque()
	n.X, n.Y = s.Position.X, s.Position.Y
	n.MarkDirty()
}
