package buttonfx

// Step constructs the next animation of a Sequence. It is called only once
// the previous step has finished, so it observes the node state that step
// left behind.
type Step func() Animation

// Sequence runs its steps back-to-back. Each step is constructed lazily when
// the previous one reports done; a step that finishes mid-frame lets the next
// one start in the same frame with zero elapsed time.
type Sequence struct {
	steps   []Step
	index   int
	current Animation
	done    bool

	onComplete []func()
}

// NewSequence creates a Sequence from the given steps. An empty sequence
// finishes on its first update.
func NewSequence(steps ...Step) *Sequence {
	return &Sequence{steps: steps}
}

// Then appends a step. Returns s for chaining.
func (s *Sequence) Then(step Step) *Sequence {
	s.steps = append(s.steps, step)
	return s
}

// ThenCall appends an instant step running fn. Returns s for chaining.
func (s *Sequence) ThenCall(fn func()) *Sequence {
	return s.Then(func() Animation { return Call(fn) })
}

// OnComplete registers fn to run once when the last step finishes.
// Returns s for chaining.
func (s *Sequence) OnComplete(fn func()) *Sequence {
	s.onComplete = append(s.onComplete, fn)
	return s
}

// Index returns the number of steps that have finished.
func (s *Sequence) Index() int {
	return s.index
}

// Len returns the number of steps.
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Update advances the running step by dt.
func (s *Sequence) Update(dt float32) {
	for !s.done {
		if s.current == nil {
			if s.index >= len(s.steps) {
				s.done = true
				runCallbacks(s.onComplete)
				s.onComplete = nil
				return
			}
			s.current = s.steps[s.index]()
			if s.current == nil {
				s.index++
				continue
			}
		}
		s.current.Update(dt)
		dt = 0
		if !s.current.IsDone() {
			return
		}
		s.current = nil
		s.index++
	}
}

// IsDone reports whether every step has finished.
func (s *Sequence) IsDone() bool {
	return s.done
}
