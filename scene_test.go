package buttonfx

import (
	"errors"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil || s.Root().Name != "root" {
		t.Fatal("scene should have a root container")
	}
	if !s.Root().Interactable {
		t.Error("root should be interactable")
	}
	if s.Tweens() == nil {
		t.Error("scene should own a tweener")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug mode not enabled")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug mode not disabled")
	}
}

func TestStepOrder(t *testing.T) {
	s := NewScene()
	btn := newButton(s, "btn", 0, 0)

	var order []string
	btn.AddClickListener(func(ClickContext) {
		order = append(order, "click")
		s.Tweens().Start(Call(func() { order = append(order, "tween") }))
	})
	s.SetUpdateFunc(func() error {
		order = append(order, "update")
		return nil
	})

	s.InjectClick(5, 5)
	s.Step(0)
	order = order[:0]
	s.Step(0)

	want := []string{"click", "update", "tween"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestStepAdvancesTweens(t *testing.T) {
	s := NewScene()
	n := NewSprite("n", nil)
	s.Root().AddChild(n)
	s.Tweens().Start(TweenPosition(n, 10, 0, 1, ease.Linear))

	s.Step(0.5)
	if n.X != 5 {
		t.Errorf("X = %v, want 5", n.X)
	}
}

func TestStepUpdateFuncError(t *testing.T) {
	s := NewScene()
	stop := errors.New("stop")
	s.SetUpdateFunc(func() error { return stop })

	n := NewSprite("n", nil)
	s.Tweens().Start(TweenPosition(n, 10, 0, 1, ease.Linear))

	if err := s.Step(0.5); !errors.Is(err, stop) {
		t.Errorf("err = %v, want stop", err)
	}
	if n.X != 0 {
		t.Error("tweens should not advance when the update func fails")
	}
}

func TestStepIgnoresMouseWithoutLiveInput(t *testing.T) {
	s := NewScene()
	if s.liveInput {
		t.Fatal("liveInput should be off until Run")
	}
	// With no injected events and live input off, Step must not touch
	// ebiten's input state.
	if err := s.Step(0); err != nil {
		t.Fatal(err)
	}
}
