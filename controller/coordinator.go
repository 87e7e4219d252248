package controller

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/buttonfx"
)

// Scheduler runs animations and broadcasts pause, resume and cancel to all
// of them. *buttonfx.Tweener implements it.
type Scheduler interface {
	Start(a buttonfx.Animation) buttonfx.TweenHandle
	PauseAll() int
	PlayAll() int
	KillAll() int
}

// Layout names the nodes the coordinator manages. The slot a node occupies
// decides its role. Nil slots are skipped.
type Layout struct {
	Play        *buttonfx.Node
	PauseResume *buttonfx.Node
	Reset       *buttonfx.Node

	// Actions maps each selector button to the effect it chooses.
	Actions map[Action]*buttonfx.Node

	// Dismiss nodes hide the panel when clicked. Animated is always treated
	// as a dismiss node as well.
	Dismiss []*buttonfx.Node

	// Animated is the node the effects run on.
	Animated *buttonfx.Node
	// Panel holds the playback controls and is shown on selection.
	Panel *buttonfx.Node

	// Sprites is the pool RandomSprite picks from. Must not be empty.
	Sprites []*ebiten.Image
}

// binding is what the coordinator knows about a managed node.
type binding struct {
	role    Role
	action  Action
	control Control
}

// Coordinator turns clicks on the layout's buttons into selection and
// playback state and runs the selected effect on the animated node.
// It is not safe for concurrent use; call it from the game loop only.
type Coordinator struct {
	layout Layout
	tweens Scheduler
	cfg    Config
	ease   ease.TweenFunc
	logger *log.Logger
	intN   func(n int) int

	bindings  map[*buttonfx.Node]binding
	order     []*buttonfx.Node
	listeners map[*buttonfx.Node]buttonfx.CallbackHandle

	active       bool
	selected     Action
	paused       bool
	resetAllowed bool
	state        State
	snapshot     Snapshot
}

// New validates cfg and layout and returns an inactive Coordinator. Call
// Activate to capture the snapshot and start listening for clicks.
func New(layout Layout, tweens Scheduler, cfg Config) (*Coordinator, error) {
	if layout.Animated == nil {
		return nil, fmt.Errorf("new coordinator: %w", ErrNoTarget)
	}
	if len(layout.Sprites) == 0 {
		return nil, fmt.Errorf("new coordinator: %w", ErrEmptySpritePool)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new coordinator: %w", err)
	}
	fn, _ := LookupEase(cfg.Ease)

	c := &Coordinator{
		layout:       layout,
		tweens:       tweens,
		cfg:          cfg,
		ease:         fn,
		logger:       log.New(io.Discard, "", 0),
		intN:         rand.IntN,
		bindings:     make(map[*buttonfx.Node]binding),
		listeners:    make(map[*buttonfx.Node]buttonfx.CallbackHandle),
		resetAllowed: true,
	}
	if cfg.Verbose {
		c.logger = log.New(os.Stderr, "[buttonfx] ", log.LstdFlags)
	}
	c.bind()
	return c, nil
}

// bind classifies every non-nil layout node. Registration order is
// play, pause/resume, reset, selectors in Actions order, dismiss nodes,
// then the animated node.
func (c *Coordinator) bind() {
	add := func(n *buttonfx.Node, b binding) {
		if n == nil {
			return
		}
		if _, dup := c.bindings[n]; dup {
			return
		}
		c.bindings[n] = b
		c.order = append(c.order, n)
	}
	add(c.layout.Play, binding{role: RolePlaybackControl, control: ControlPlay})
	add(c.layout.PauseResume, binding{role: RolePlaybackControl, control: ControlPauseResume})
	add(c.layout.Reset, binding{role: RolePlaybackControl, control: ControlReset})
	for _, a := range Actions {
		add(c.layout.Actions[a], binding{role: RoleActionSelector, action: a})
	}
	for _, n := range c.layout.Dismiss {
		add(n, binding{role: RoleDismiss})
	}
	add(c.layout.Animated, binding{role: RoleDismiss})
}

// SetLogger replaces the logger. Nil discards output.
func (c *Coordinator) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	c.logger = l
}

// SetRandIntN replaces the source RandomSprite uses to pick a sprite index.
// fn(n) must return a value in [0, n).
func (c *Coordinator) SetRandIntN(fn func(n int) int) {
	c.intN = fn
}

func (c *Coordinator) randIntN(n int) int {
	i := c.intN(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}

// ApplyConfig swaps the tunables. The snapshot and dispatch state are kept.
func (c *Coordinator) ApplyConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	fn, _ := LookupEase(cfg.Ease)
	c.cfg = cfg
	c.ease = fn
	c.logger.Printf("config applied: scale=%v jump=%v duration=%v ease=%s cancel_on_reset=%v",
		cfg.TargetScale, cfg.JumpHeight, cfg.Duration, cfg.Ease, cfg.CancelOnReset)
	return nil
}

// Config returns the current tunables.
func (c *Coordinator) Config() Config {
	return c.cfg
}

// --- Lifecycle ---

// Activate captures the animated node's snapshot and registers one click
// listener per managed node. Calling it while active does nothing.
func (c *Coordinator) Activate() {
	if c.active {
		return
	}
	c.active = true
	c.snapshot = Capture(c.layout.Animated)
	for _, n := range c.order {
		c.listeners[n] = n.AddClickListener(func(buttonfx.ClickContext) {
			c.dispatch(n)
		})
	}
	c.logger.Printf("activated with %d listeners", len(c.listeners))
}

// Deactivate removes every listener Activate registered, each from its own
// node only.
func (c *Coordinator) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	for _, n := range c.order {
		if h, ok := c.listeners[n]; ok {
			h.Remove()
			delete(c.listeners, n)
		}
	}
	c.logger.Printf("deactivated")
}

// Update is the per-frame tick: it pushes the reset permission to the Reset
// node's Interactable flag.
func (c *Coordinator) Update() error {
	if c.layout.Reset != nil {
		c.layout.Reset.Interactable = c.resetAllowed
	}
	return nil
}

// --- Dispatch ---

// Click dispatches a click on n as if it came from the node's listener.
// Nodes the coordinator does not manage are ignored.
func (c *Coordinator) Click(n *buttonfx.Node) {
	c.dispatch(n)
}

func (c *Coordinator) dispatch(n *buttonfx.Node) {
	b, ok := c.bindings[n]
	if !ok {
		return
	}
	c.logger.Printf("%s is clicked", n.Name)

	switch b.role {
	case RoleActionSelector:
		c.selected = b.action
		c.showPanel()
		c.resetAllowed = true
		c.state = StateActionSelected
	case RolePlaybackControl:
		switch b.control {
		case ControlPlay:
			c.play()
		case ControlPauseResume:
			c.togglePause()
		case ControlReset:
			c.reset()
		}
	case RoleDismiss:
		c.hidePanel()
	}
}

func (c *Coordinator) play() {
	c.resetAllowed = true
	c.paused = false
	if c.selected == ActionNone {
		c.logger.Printf("no action selected")
		return
	}
	c.Run(c.selected)
	c.state = StateRunning
}

func (c *Coordinator) togglePause() {
	c.paused = !c.paused
	if c.paused {
		n := c.tweens.PauseAll()
		c.state = StatePaused
		c.logger.Printf("paused %d animations", n)
		return
	}
	n := c.tweens.PlayAll()
	c.state = StateRunning
	c.logger.Printf("resumed %d animations", n)
}

func (c *Coordinator) reset() {
	c.resetAllowed = false
	if c.cfg.CancelOnReset {
		n := c.tweens.KillAll()
		c.logger.Printf("cancelled %d animations", n)
	}
	c.snapshot.Restore(c.layout.Animated)
	c.state = StateReset
}

func (c *Coordinator) showPanel() {
	if c.layout.Panel == nil {
		return
	}
	c.layout.Panel.Show()
	c.logger.Printf("%s is active", c.layout.Panel.Name)
}

func (c *Coordinator) hidePanel() {
	if c.layout.Panel == nil {
		return
	}
	c.layout.Panel.Hide()
	c.logger.Printf("%s is disabled", c.layout.Panel.Name)
}

// Run starts the effect for a on the scheduler. ActionNone starts nothing
// and returns the zero handle.
func (c *Coordinator) Run(a Action) buttonfx.TweenHandle {
	anim := c.effect(a)
	if anim == nil {
		return buttonfx.TweenHandle{}
	}
	c.logger.Printf("%s animation is playing", a)
	return c.tweens.Start(anim)
}

// --- Observation ---

// Selected returns the most recently selected action.
func (c *Coordinator) Selected() Action { return c.selected }

// Paused reports whether the last Pause/Resume click paused playback.
func (c *Coordinator) Paused() bool { return c.paused }

// ResetAllowed reports whether the Reset control is enabled.
func (c *Coordinator) ResetAllowed() bool { return c.resetAllowed }

// State returns the dispatch state.
func (c *Coordinator) State() State { return c.state }

// Snapshot returns the state captured by Activate.
func (c *Coordinator) Snapshot() Snapshot { return c.snapshot }

// Active reports whether listeners are registered.
func (c *Coordinator) Active() bool { return c.active }

// RoleOf returns the role of n and whether the coordinator manages it.
func (c *Coordinator) RoleOf(n *buttonfx.Node) (Role, bool) {
	b, ok := c.bindings[n]
	return b.role, ok
}
