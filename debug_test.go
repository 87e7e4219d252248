package buttonfx

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_DisposedChildPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	child := NewSprite("child", nil)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()
	s.Root().AddChild(child)
}

func TestReleaseMode_DisposedChildNoPanic(t *testing.T) {
	s := NewScene()
	child := NewSprite("child", nil)
	child.Dispose()

	// Without debug mode the add goes through.
	s.Root().AddChild(child)
	if child.Parent != s.Root() {
		t.Error("child should be attached")
	}
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		current := s.Root()
		for i := 0; i < debugMaxTreeDepth+5; i++ {
			child := NewContainer(fmt.Sprintf("depth_%d", i))
			current.AddChild(child)
			current = child
		}
	})

	if !strings.Contains(output, "warning: tree depth") {
		t.Errorf("expected tree depth warning in stderr, got: %q", output)
	}
}

func TestDebugMode_LogsClicks(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	newButton(s, "Spin Button", 0, 0)

	output := captureStderr(t, func() {
		s.InjectClick(5, 5)
		s.Step(0)
		s.Step(0)
	})

	if !strings.Contains(output, `click: "Spin Button"`) {
		t.Errorf("expected click log, got: %q", output)
	}
	if !strings.Contains(output, "tweens active: 0 paused: 0") {
		t.Errorf("expected tweener load in log, got: %q", output)
	}
}

func TestDebugLogClickNilNode(t *testing.T) {
	s := NewScene()
	output := captureStderr(t, func() { s.debugLogClick(nil) })
	if !strings.Contains(output, "<none>") {
		t.Errorf("got %q", output)
	}
}
