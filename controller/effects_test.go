package controller

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/buttonfx"
)

func run(a buttonfx.Animation, steps int, dt float32) {
	for range steps {
		a.Update(dt)
	}
}

func TestScaleEffectReturnsToCreationScale(t *testing.T) {
	n := buttonfx.NewSprite("s", nil)
	n.SetScale(0.5, 0.5)
	e := ScaleEffect(n, buttonfx.Vec2{X: 2, Y: 3}, 1, ease.Linear)

	run(e, 2, 0.5)
	if !approx(n.ScaleX, 2) || !approx(n.ScaleY, 3) {
		t.Errorf("peak scale = (%v, %v)", n.ScaleX, n.ScaleY)
	}
	if e.IsDone() {
		t.Error("effect done before the return phase")
	}
	run(e, 2, 0.5)
	if !approx(n.ScaleX, 0.5) || !approx(n.ScaleY, 0.5) {
		t.Errorf("final scale = (%v, %v), want (0.5, 0.5)", n.ScaleX, n.ScaleY)
	}
	if !e.IsDone() {
		t.Error("effect should be done")
	}
}

func TestJumpEffectRaisesAndReturns(t *testing.T) {
	n := buttonfx.NewSprite("s", nil)
	n.SetPosition(10, 20)
	e := JumpEffect(n, 15, 1, ease.Linear)

	run(e, 1, 0.5)
	if !approx(n.Y, 12.5) || n.X != 10 {
		t.Errorf("mid-rise position = (%v, %v)", n.X, n.Y)
	}
	run(e, 1, 0.5)
	if !approx(n.Y, 5) {
		t.Errorf("peak Y = %v, want 5", n.Y)
	}
	run(e, 2, 0.5)
	if !approx(n.Y, 20) {
		t.Errorf("final Y = %v, want 20", n.Y)
	}
}

func TestRandomSpriteEffectSwapsAfterDelay(t *testing.T) {
	n := buttonfx.NewSprite("s", nil)
	n.Color = buttonfx.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	img := ebiten.NewImage(2, 2)
	e := RandomSpriteEffect(n, img, 1)

	run(e, 3, 0.25)
	if n.Image() != nil {
		t.Error("image swapped early")
	}
	if n.Color.R != 0.5 {
		t.Errorf("color changed during delay: %+v", n.Color)
	}
	run(e, 1, 0.25)
	if n.Image() != img {
		t.Error("image not swapped")
	}
	if !e.IsDone() {
		t.Error("effect should be done")
	}
}

func TestSpinEffectIsLinear(t *testing.T) {
	n := buttonfx.NewSprite("s", nil)
	e := SpinEffect(n, 0, 1)

	run(e, 1, 0.25)
	if !approx(n.Rotation, math.Pi/2) {
		t.Errorf("quarter rotation = %v, want pi/2", n.Rotation)
	}
	run(e, 3, 0.25)
	if n.Rotation != 0 {
		t.Errorf("final rotation = %v, want restore value 0", n.Rotation)
	}
}

func TestFadeEffectRestoresOriginalColor(t *testing.T) {
	n := buttonfx.NewSprite("s", nil)
	n.Color = buttonfx.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
	e := FadeEffect(n, 1, 0.5, ease.Linear)

	run(e, 1, 1)
	if !approx(n.Color.A, 0) || !approx(n.Color.R, 0.1) {
		t.Errorf("faded color = %+v", n.Color)
	}
	run(e, 1, 0.25)
	if !approx(n.Color.A, 0.5) {
		t.Errorf("restore midpoint alpha = %v, want 0.5", n.Color.A)
	}
	run(e, 1, 0.25)
	if !approx(n.Color.A, 1) || !e.IsDone() {
		t.Errorf("restored color = %+v done=%v", n.Color, e.IsDone())
	}
}

func TestEffectNoneIsNil(t *testing.T) {
	f := newFixture()
	c := f.coordinator(t, DefaultConfig())
	if c.effect(ActionNone) != nil {
		t.Error("ActionNone should build no animation")
	}
	if h := c.Run(ActionNone); h.IsActive() {
		t.Error("Run(ActionNone) should return an inactive handle")
	}
}

func TestSnapshotRestoreIsOpaque(t *testing.T) {
	n := buttonfx.NewSprite("s", nil)
	n.Color = buttonfx.Color{R: 1, G: 0, B: 0, A: 0.25}
	s := Capture(n)

	n.Color.A = 0
	n.SetPosition(9, 9)
	s.Restore(n)
	if n.Color != (buttonfx.Color{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("color = %+v, want opaque red", n.Color)
	}
	if n.X != 0 || n.Y != 0 {
		t.Errorf("position = (%v, %v)", n.X, n.Y)
	}
}
