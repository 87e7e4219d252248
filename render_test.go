package buttonfx

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDrawRefreshesTransforms(t *testing.T) {
	s := NewScene()
	n := NewSprite("n", nil)
	n.SetPosition(12, 34)
	s.Root().AddChild(n)

	screen := ebiten.NewImage(64, 64)
	s.Draw(screen)

	if n.transformDirty {
		t.Error("Draw should clear the dirty flag")
	}
	if n.worldTransform[4] != 12 || n.worldTransform[5] != 34 {
		t.Errorf("world translation = (%v, %v)", n.worldTransform[4], n.worldTransform[5])
	}
}

func TestDrawHandlesHiddenAndTransparentNodes(t *testing.T) {
	s := NewScene()
	hidden := NewContainer("hidden")
	hidden.Hide()
	hidden.AddChild(NewSprite("inside", ebiten.NewImage(4, 4)))
	s.Root().AddChild(hidden)

	faded := NewSprite("faded", nil)
	faded.Color.A = 0
	s.Root().AddChild(faded)

	s.ClearColor = Color{0, 0, 0, 1}
	s.Draw(ebiten.NewImage(16, 16))
}
