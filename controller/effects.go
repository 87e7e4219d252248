package controller

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/buttonfx"
)

// Each effect captures the values it returns to when it is constructed, and
// builds its tweens lazily so every phase starts from the node's live state.

// ScaleEffect scales n to `to` over d, then back to the scale n had when the
// effect was created, over d.
func ScaleEffect(n *buttonfx.Node, to buttonfx.Vec2, d float32, fn ease.TweenFunc) *buttonfx.Sequence {
	orig := n.Scale()
	return buttonfx.NewSequence(
		func() buttonfx.Animation { return buttonfx.TweenScale(n, to.X, to.Y, d, fn) },
		func() buttonfx.Animation { return buttonfx.TweenScale(n, orig.X, orig.Y, d, fn) },
	)
}

// RandomSpriteEffect waits d, by way of a color tween that keeps the current
// color, then swaps n's image for sprite.
func RandomSpriteEffect(n *buttonfx.Node, sprite *ebiten.Image, d float32) *buttonfx.Sequence {
	return buttonfx.NewSequence(
		func() buttonfx.Animation { return buttonfx.TweenColor(n, n.Color, d, ease.Linear) },
	).ThenCall(func() { n.SetImage(sprite) })
}

// JumpEffect raises n by height over d, then moves it back to where it was
// when the effect was created, over d. Screen Y grows downward, so raising
// means subtracting from Y.
func JumpEffect(n *buttonfx.Node, height float64, d float32, fn ease.TweenFunc) *buttonfx.Sequence {
	orig := n.Position()
	return buttonfx.NewSequence(
		func() buttonfx.Animation { return buttonfx.TweenPosition(n, orig.X, orig.Y-height, d, fn) },
		func() buttonfx.Animation { return buttonfx.TweenPosition(n, orig.X, orig.Y, d, fn) },
	)
}

// SpinEffect turns n one full revolution over d at constant speed, then sets
// its rotation to restore.
func SpinEffect(n *buttonfx.Node, restore float64, d float32) *buttonfx.Sequence {
	return buttonfx.NewSequence(
		func() buttonfx.Animation { return buttonfx.TweenRotation(n, n.Rotation+2*math.Pi, d, ease.Linear) },
	).ThenCall(func() { n.SetRotation(restore) })
}

// FadeEffect fades n's color alpha to zero over d at constant speed, then
// tweens back to the color n had when the effect was created, over restoreD.
func FadeEffect(n *buttonfx.Node, d, restoreD float32, fn ease.TweenFunc) *buttonfx.Sequence {
	orig := n.Color
	faded := buttonfx.Color{R: orig.R, G: orig.G, B: orig.B, A: 0}
	return buttonfx.NewSequence(
		func() buttonfx.Animation { return buttonfx.TweenColor(n, faded, d, ease.Linear) },
		func() buttonfx.Animation { return buttonfx.TweenColor(n, orig, restoreD, fn) },
	)
}

// runAllOrder is the fixed order of the RunAll effect.
var runAllOrder = [...]Action{ActionScale, ActionRandomSprite, ActionJump, ActionSpin, ActionFade}

// effect builds the animation for a, or nil for ActionNone.
func (c *Coordinator) effect(a Action) buttonfx.Animation {
	target := c.layout.Animated
	d := c.cfg.Duration
	switch a {
	case ActionScale:
		return ScaleEffect(target, c.cfg.TargetScale, d, c.ease)
	case ActionRandomSprite:
		return RandomSpriteEffect(target, c.layout.Sprites[c.randIntN(len(c.layout.Sprites))], d)
	case ActionJump:
		return JumpEffect(target, c.cfg.JumpHeight, d, c.ease)
	case ActionSpin:
		return SpinEffect(target, c.snapshot.Rotation, d)
	case ActionFade:
		return FadeEffect(target, d, c.cfg.FadeRestoreDuration, ease.OutQuad)
	case ActionRunAll:
		return c.runAll()
	}
	return nil
}

// runAll chains the five effects; each is constructed only after the
// previous one, completion phase included, has finished.
func (c *Coordinator) runAll() *buttonfx.Sequence {
	seq := buttonfx.NewSequence()
	for _, a := range runAllOrder {
		seq.Then(func() buttonfx.Animation {
			c.logger.Printf("run-all: %s", a)
			return c.effect(a)
		})
	}
	return seq
}
