package buttonfx

// syntheticPointerEvent represents a single injected pointer event in world
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectPress queues a pointer press event at the given coordinates
// (left button). The event is consumed on the next frame's processInput call.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectClickNode queues a click at the world-space center of node's hit
// area. It reports false if the node has no hit area. World transforms are
// refreshed first so the position reflects the current frame.
func (s *Scene) InjectClickNode(node *Node) bool {
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var cx, cy float64
	switch hs := node.HitShape.(type) {
	case HitRect:
		cx, cy = hs.X+hs.Width/2, hs.Y+hs.Height/2
	case HitCircle:
		cx, cy = hs.CenterX, hs.CenterY
	case nil:
		w, h := nodeDimensions(node)
		if w == 0 && h == 0 {
			return false
		}
		cx, cy = w/2, h/2
	default:
		return false
	}
	wx, wy := node.LocalToWorld(cx, cy)
	s.InjectClick(wx, wy)
	return true
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real mouse
// input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(0, evt.x, evt.y, evt.pressed, evt.button)
	return true
}
