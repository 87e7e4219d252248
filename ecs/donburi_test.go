package ecs

import (
	"testing"

	"github.com/phanxgames/buttonfx"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []buttonfx.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e buttonfx.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(buttonfx.InteractionEvent{
		Type:     buttonfx.EventPointerDown,
		EntityID: 42,
		GlobalX:  100,
		GlobalY:  200,
		Button:   buttonfx.MouseButtonLeft,
	})
	store.EmitEvent(buttonfx.InteractionEvent{
		Type:     buttonfx.EventClick,
		EntityID: 42,
		NodeName: "Play Button",
	})

	// Events are queued until processed.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != buttonfx.EventPointerDown || e0.EntityID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.GlobalX != 100 || e0.GlobalY != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.GlobalX, e0.GlobalY)
	}

	e1 := received[1]
	if e1.Type != buttonfx.EventClick || e1.NodeName != "Play Button" {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store buttonfx.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e buttonfx.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e buttonfx.InteractionEvent) {
		count2++
	})

	store.EmitEvent(buttonfx.InteractionEvent{Type: buttonfx.EventClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestTrackClicks(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	tally := TrackClicks(world)

	store.EmitEvent(buttonfx.InteractionEvent{Type: buttonfx.EventClick, NodeName: "Play Button"})
	store.EmitEvent(buttonfx.InteractionEvent{Type: buttonfx.EventPointerDown, NodeName: "Play Button"})
	store.EmitEvent(buttonfx.InteractionEvent{Type: buttonfx.EventClick, NodeName: "Play Button"})
	store.EmitEvent(buttonfx.InteractionEvent{Type: buttonfx.EventClick, NodeName: "Reset Button"})
	InteractionEventType.ProcessEvents(world)

	counts := ClickTally.Get(tally).Counts
	if counts["Play Button"] != 2 || counts["Reset Button"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestTrackClicksThroughScene(t *testing.T) {
	world := donburi.NewWorld()
	tally := TrackClicks(world)

	scene := buttonfx.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))
	btn := buttonfx.NewSprite("Spin Button", nil)
	btn.Interactable = true
	btn.EntityID = 7
	btn.HitShape = buttonfx.HitRect{Width: 40, Height: 20}
	scene.Root().AddChild(btn)

	scene.InjectClickNode(btn)
	for range 2 {
		if err := scene.Step(0); err != nil {
			t.Fatal(err)
		}
	}
	InteractionEventType.ProcessEvents(world)

	if got := ClickTally.Get(tally).Counts["Spin Button"]; got != 1 {
		t.Errorf("Spin Button clicks = %d, want 1", got)
	}
}
