package buttonfx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	NodeName string
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

const maxPointers = 1 // pointer 0 = mouse

// Scene is the top-level object that owns the node tree, the tweener, and
// input state.
type Scene struct {
	root   *Node
	store  EntityStore
	debug  bool
	tweens *Tweener

	// ClearColor fills the screen before the tree is drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files. Empty disables
	// screenshots.
	ScreenshotDir   string
	screenshotQueue []string
	shotSeq         int

	updateFunc func() error
	script     *ScriptRunner

	// Input state
	clicks      clickRegistry
	pointers    [maxPointers]pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent
	liveInput   bool
}

// NewScene creates a new scene with a pre-created, interactable root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:   root,
		tweens: NewTweener(),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Tweens returns the scene's tweener. Every animation driven by the scene
// loop is started here.
func (s *Scene) Tweens() *Tweener {
	return s.tweens
}

// SetUpdateFunc sets a function called once per frame after input has been
// processed and before animations advance. A non-nil error stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one tick at the current ebiten TPS.
func (s *Scene) Update() error {
	return s.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step advances the scene by dt seconds: script runner, world transforms,
// input, the update function, then animations.
func (s *Scene) Step(dt float32) error {
	if s.script != nil {
		s.script.step(s)
	}

	// Refresh world transforms first so hit testing has accurate positions
	// this frame.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput()

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.tweens.Update(dt)
	return nil
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees are reported, and clicks are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	w, h  int
}

func (g *game) Update() error              { return g.scene.Update() }
func (g *game) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
func (g *game) Layout(_, _ int) (int, int) { return g.w, g.h }

// Run opens a window and drives the scene until the window closes or the
// update function returns an error. Live mouse input is enabled.
func Run(scene *Scene, cfg RunConfig) error {
	scene.liveInput = true
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{scene: scene, w: cfg.Width, h: cfg.Height})
}
