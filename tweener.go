package buttonfx

// tweenEntry is one animation owned by a Tweener.
type tweenEntry struct {
	id     uint32
	anim   Animation
	paused bool
	dead   bool
}

// Tweener owns every running animation of a scene and advances them each
// frame. PauseAll, PlayAll and KillAll are broadcasts: they affect every
// animation started on this Tweener regardless of who started it.
type Tweener struct {
	entries  []tweenEntry
	nextID   uint32
	updating bool
}

// NewTweener creates an empty Tweener.
func NewTweener() *Tweener {
	return &Tweener{}
}

// TweenHandle refers to an animation started on a Tweener. The zero value is
// an inactive handle.
type TweenHandle struct {
	id uint32
	t  *Tweener
}

// Start registers a and returns a handle for it. Animations started while
// the Tweener is updating (for example from a completion callback) are first
// advanced on the next Update.
func (t *Tweener) Start(a Animation) TweenHandle {
	t.nextID++
	t.entries = append(t.entries, tweenEntry{id: t.nextID, anim: a})
	return TweenHandle{id: t.nextID, t: t}
}

// Update advances every unpaused animation by dt and drops finished ones.
func (t *Tweener) Update(dt float32) {
	t.updating = true
	n := len(t.entries)
	for i := 0; i < n; i++ {
		e := &t.entries[i]
		if e.dead || e.paused {
			continue
		}
		e.anim.Update(dt)
		// The callback may have appended and reallocated entries.
		e = &t.entries[i]
		if e.anim.IsDone() {
			e.dead = true
		}
	}
	t.updating = false
	t.compact()
}

// compact removes dead entries, preserving start order.
func (t *Tweener) compact() {
	live := t.entries[:0]
	for _, e := range t.entries {
		if !e.dead {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(t.entries); i++ {
		t.entries[i] = tweenEntry{}
	}
	t.entries = live
}

// PauseAll pauses every active animation and returns how many changed state.
func (t *Tweener) PauseAll() int {
	changed := 0
	for i := range t.entries {
		if !t.entries[i].dead && !t.entries[i].paused {
			t.entries[i].paused = true
			changed++
		}
	}
	return changed
}

// PlayAll resumes every paused animation and returns how many changed state.
func (t *Tweener) PlayAll() int {
	changed := 0
	for i := range t.entries {
		if !t.entries[i].dead && t.entries[i].paused {
			t.entries[i].paused = false
			changed++
		}
	}
	return changed
}

// KillAll stops every animation without completing it and returns how many
// were stopped. Completion callbacks do not run.
func (t *Tweener) KillAll() int {
	killed := 0
	for i := range t.entries {
		if !t.entries[i].dead {
			t.entries[i].dead = true
			killed++
		}
	}
	if !t.updating {
		t.compact()
	}
	return killed
}

// Active returns the number of animations that have not finished or been killed.
func (t *Tweener) Active() int {
	n := 0
	for i := range t.entries {
		if !t.entries[i].dead {
			n++
		}
	}
	return n
}

// Paused returns the number of paused animations.
func (t *Tweener) Paused() int {
	n := 0
	for i := range t.entries {
		if !t.entries[i].dead && t.entries[i].paused {
			n++
		}
	}
	return n
}

func (t *Tweener) find(id uint32) *tweenEntry {
	for i := range t.entries {
		if t.entries[i].id == id && !t.entries[i].dead {
			return &t.entries[i]
		}
	}
	return nil
}

// IsActive reports whether the animation is still registered.
func (h TweenHandle) IsActive() bool {
	return h.t != nil && h.t.find(h.id) != nil
}

// Pause pauses this animation only.
func (h TweenHandle) Pause() {
	if h.t == nil {
		return
	}
	if e := h.t.find(h.id); e != nil {
		e.paused = true
	}
}

// Play resumes this animation only.
func (h TweenHandle) Play() {
	if h.t == nil {
		return
	}
	if e := h.t.find(h.id); e != nil {
		e.paused = false
	}
}

// Kill stops this animation without completing it.
func (h TweenHandle) Kill() {
	if h.t == nil {
		return
	}
	if e := h.t.find(h.id); e != nil {
		e.dead = true
		if !h.t.updating {
			h.t.compact()
		}
	}
}
