package buttonfx

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	hitNode *Node
	button  MouseButton // button captured at press time
}

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

// clickRegistry is an ordered list of click handlers keyed by id. Both the
// scene and every node own one.
type clickRegistry struct {
	handlers []clickHandler
	nextID   uint32
}

func (r *clickRegistry) add(fn func(ClickContext)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.handlers = append(r.handlers, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r}
}

func (r *clickRegistry) remove(id uint32) bool {
	for i := range r.handlers {
		if r.handlers[i].id == id {
			copy(r.handlers[i:], r.handlers[i+1:])
			r.handlers[len(r.handlers)-1] = clickHandler{}
			r.handlers = r.handlers[:len(r.handlers)-1]
			return true
		}
	}
	return false
}

// fire runs the handlers registered when the click arrived. A handler removed
// by an earlier one in the same click does not run.
func (r *clickRegistry) fire(ctx ClickContext) {
	if len(r.handlers) == 0 {
		return
	}
	for _, h := range slices.Clone(r.handlers) {
		if r.has(h.id) {
			h.fn(ctx)
		}
	}
}

func (r *clickRegistry) has(id uint32) bool {
	for i := range r.handlers {
		if r.handlers[i].id == id {
			return true
		}
	}
	return false
}

// CallbackHandle allows removing a registered click callback. The zero value
// is a valid handle whose Remove is a no-op.
type CallbackHandle struct {
	id  uint32
	reg *clickRegistry
}

// Remove unregisters this callback so it no longer fires. It reports whether
// the callback was still registered.
func (h CallbackHandle) Remove() bool {
	if h.reg == nil {
		return false
	}
	return h.reg.remove(h.id)
}

// Valid reports whether the handle refers to a registration.
func (h CallbackHandle) Valid() bool {
	return h.reg != nil
}

// OnClick registers a scene-level callback for click events. Scene-level
// callbacks fire before per-node listeners.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	return s.clicks.add(fn)
}

// AddClickListener registers fn to run whenever this node is clicked.
// Listeners fire in registration order.
func (n *Node) AddClickListener(fn func(ClickContext)) CallbackHandle {
	return n.clicks.add(fn)
}

// NumClickListeners returns the number of registered click listeners.
func (n *Node) NumClickListeners() int {
	return len(n.clicks.handlers)
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise derives the box from the sprite image.
// Containers with no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending interactable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range n.orderedChildren() {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Step to handle pointer input. Injected
// events take priority; live mouse input is read only when enabled by Run.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.liveInput {
		return
	}
	s.processMousePointer()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processPointer runs the press/release state machine for a single pointer.
// A click fires when the release lands on the node that received the press.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]
	target := s.hitTest(wx, wy)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = target
		s.emitInteractionEvent(EventPointerDown, target, wx, wy, button)
	case !pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, pointerID, wx, wy, ps.button)
		}
		s.emitInteractionEvent(EventPointerUp, target, wx, wy, ps.button)
		ps.down = false
		ps.hitNode = nil
	}
}

// --- Event dispatch ---

func (s *Scene) fireClick(node *Node, pointerID int, wx, wy float64, button MouseButton) {
	var lx, ly float64
	var entityID uint32
	var userData any
	if node != nil {
		lx, ly = node.WorldToLocal(wx, wy)
		entityID = node.EntityID
		userData = node.UserData
	}
	ctx := ClickContext{
		Node: node, EntityID: entityID, UserData: userData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID,
	}
	// Scene-level handlers first.
	s.clicks.fire(ctx)
	if node != nil {
		node.clicks.fire(ctx)
		if node.OnClick != nil {
			node.OnClick(ctx)
		}
	}
	s.emitInteractionEvent(EventClick, node, wx, wy, button)
	if s.debug {
		s.debugLogClick(node)
	}
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(eventType EventType, node *Node, wx, wy float64, button MouseButton) {
	if s.store == nil || node == nil || node.EntityID == 0 {
		return
	}
	lx, ly := node.WorldToLocal(wx, wy)
	s.store.EmitEvent(InteractionEvent{
		Type:     eventType,
		EntityID: node.EntityID,
		NodeName: node.Name,
		GlobalX:  wx,
		GlobalY:  wy,
		LocalX:   lx,
		LocalY:   ly,
		Button:   button,
	})
}
