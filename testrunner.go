package buttonfx

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Target string  `yaml:"target,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Label  string  `yaml:"label,omitempty"`
}

// script is the top-level YAML structure for an input script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ErrEmptyScript is returned by LoadScript when the script has no steps.
var ErrEmptyScript = errors.New("no steps")

// ScriptRunner plays back a scripted walkthrough one frame at a time, for
// automated demos and tests. Attach to a Scene via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	missed    []string
}

// LoadScript parses a YAML input script and returns a ScriptRunner ready
// to be attached to a Scene via SetScriptRunner.
//
//	steps:
//	  - action: click
//	    target: Jump Button
//	  - action: wait
//	    frames: 30
//	  - action: click
//	    x: 320
//	    y: 40
//	  - action: screenshot
//	    label: after-jump
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "click", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the scene. The runner's step
// method is called from Scene.Step before input is processed each frame.
func (s *Scene) SetScriptRunner(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Missed returns the click targets that could not be found or had no hit area.
func (r *ScriptRunner) Missed() []string {
	return r.missed
}

// step advances the runner by one frame. Called from Scene.Step.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		if st.Target == "" {
			s.InjectClick(st.X, st.Y)
			break
		}
		node := s.root.Find(st.Target)
		if node == nil || !s.InjectClickNode(node) {
			r.missed = append(r.missed, st.Target)
		}
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
