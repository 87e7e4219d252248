package buttonfx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Draw refreshes world transforms and draws every visible sprite in painter
// order (depth-first, children sorted by ZIndex).
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var op ebiten.DrawImageOptions
	s.drawNode(screen, s.root, &op)
	s.flushScreenshots(screen)
}

func (s *Scene) drawNode(screen *ebiten.Image, n *Node, op *ebiten.DrawImageOptions) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeSprite {
		alpha := n.Color.A * n.worldAlpha
		if alpha > 0 {
			m := n.worldTransform
			op.GeoM.Reset()
			op.GeoM.SetElement(0, 0, m[0])
			op.GeoM.SetElement(1, 0, m[1])
			op.GeoM.SetElement(0, 1, m[2])
			op.GeoM.SetElement(1, 1, m[3])
			op.GeoM.SetElement(0, 2, m[4])
			op.GeoM.SetElement(1, 2, m[5])
			op.ColorScale.Reset()
			op.ColorScale.Scale(
				float32(n.Color.R*alpha),
				float32(n.Color.G*alpha),
				float32(n.Color.B*alpha),
				float32(alpha),
			)
			screen.DrawImage(n.drawImage(), op)
		}
	}
	for _, child := range n.orderedChildren() {
		s.drawNode(screen, child, op)
	}
}
