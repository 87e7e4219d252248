package buttonfx

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestSequenceRunsStepsInOrder(t *testing.T) {
	node := NewContainer("seq")
	var log []string

	seq := NewSequence(
		func() Animation {
			log = append(log, "up")
			return TweenPosition(node, 0, -10, 1, ease.Linear)
		},
		func() Animation {
			log = append(log, "down")
			return TweenPosition(node, 0, 0, 1, ease.Linear)
		},
	).ThenCall(func() { log = append(log, "call") })

	if seq.Len() != 3 {
		t.Fatalf("Len = %d, want 3", seq.Len())
	}

	seq.Update(0.5)
	if len(log) != 1 || seq.Index() != 0 {
		t.Fatalf("after 0.5s: log=%v index=%d", log, seq.Index())
	}
	seq.Update(0.5)
	// The next step is constructed in the frame the previous one finished.
	if len(log) != 2 || node.Y != -10 {
		t.Fatalf("after 1s: log=%v Y=%v", log, node.Y)
	}
	seq.Update(1)
	if !seq.IsDone() {
		t.Fatal("sequence should be done")
	}
	if node.Y != 0 {
		t.Errorf("Y = %v, want 0", node.Y)
	}
	want := []string{"up", "down", "call"}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestSequenceStepsAreLazy(t *testing.T) {
	node := NewContainer("lazy")
	seq := NewSequence(
		func() Animation { return TweenPosition(node, 10, 0, 1, ease.Linear) },
		// Starts from wherever the node is when this step begins.
		func() Animation { return TweenPosition(node, node.X+5, 0, 1, ease.Linear) },
	)
	node.X = 100 // moved before the first step starts
	seq.Update(1)
	seq.Update(1)
	if node.X != 15 {
		t.Errorf("X = %v, want 15", node.X)
	}
}

func TestSequenceOnComplete(t *testing.T) {
	done := 0
	seq := NewSequence().OnComplete(func() { done++ })
	seq.Update(0)
	seq.Update(0)
	if !seq.IsDone() || done != 1 {
		t.Errorf("done=%v callbacks=%d", seq.IsDone(), done)
	}
}

func TestSequenceSkipsNilSteps(t *testing.T) {
	ran := false
	seq := NewSequence(
		func() Animation { return nil },
		func() Animation { return Call(func() { ran = true }) },
	)
	seq.Update(0)
	if !ran || !seq.IsDone() {
		t.Errorf("ran=%v done=%v", ran, seq.IsDone())
	}
}

func TestSequenceNested(t *testing.T) {
	node := NewContainer("nested")
	inner := func() Animation {
		return NewSequence(
			func() Animation { return TweenScale(node, 2, 2, 1, ease.Linear) },
			func() Animation { return TweenScale(node, 1, 1, 1, ease.Linear) },
		)
	}
	var afterInner float64
	outer := NewSequence(inner).ThenCall(func() { afterInner = node.ScaleX })

	outer.Update(1)
	if outer.IsDone() {
		t.Fatal("outer done before inner finished")
	}
	outer.Update(1)
	if !outer.IsDone() || afterInner != 1 {
		t.Errorf("done=%v scale at call=%v", outer.IsDone(), afterInner)
	}
}
