// Package buttonfx is a small retained-mode 2D UI layer for [Ebitengine] with
// tween-driven button effects.
//
// It provides the scene graph, transform hierarchy, click handling and
// animation scheduling that the controller package builds its button demo on.
//
// # Quick start
//
//	scene := buttonfx.NewScene()
//	btn := buttonfx.NewSprite("play", img)
//	btn.Interactable = true
//	btn.AddClickListener(func(ctx buttonfx.ClickContext) {
//		scene.Tweens().Start(buttonfx.TweenScale(btn, 2, 2, 1, ease.OutQuad))
//	})
//	scene.Root().AddChild(btn)
//	buttonfx.Run(scene, buttonfx.RunConfig{Title: "demo", Width: 640, Height: 480})
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]. Children inherit their parent's transform and alpha. A node
// is hit-testable only if it and all its ancestors are Visible and
// Interactable.
//
// # Clicks
//
// A click is a press and release over the same node. Handlers run in this
// order: scene-level ([Scene.OnClick]), per-node listeners
// ([Node.AddClickListener]) in registration order, then [Node.OnClick].
// Listener registrations return a [CallbackHandle] used to remove exactly
// that registration.
//
// # Animation
//
// Tweens (via [gween]) animate node fields. [Sequence] chains steps, each
// constructed only when the previous one finished. A [Tweener] owns all
// running animations of a scene; [Tweener.PauseAll], [Tweener.PlayAll] and
// [Tweener.KillAll] affect every one of them.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package buttonfx
