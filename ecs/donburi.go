// Package ecs provides ECS adapters for buttonfx.
package ecs

import (
	"github.com/phanxgames/buttonfx"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for buttonfx interaction events.
// Subscribe to this in your ECS systems to receive pointer and click events.
var InteractionEventType = events.NewEventType[buttonfx.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) buttonfx.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event buttonfx.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// ClickTallyData counts clicks per node name.
type ClickTallyData struct {
	Counts map[string]int
}

// ClickTally is the component TrackClicks attaches to its tally entity.
var ClickTally = donburi.NewComponentType[ClickTallyData]()

// TrackClicks creates an entity holding a ClickTally and subscribes it to
// click events. Counts update when the world's events are processed. Removing
// the returned entry from the world stops the counting.
func TrackClicks(world donburi.World) *donburi.Entry {
	entry := world.Entry(world.Create(ClickTally))
	ClickTally.Get(entry).Counts = make(map[string]int)
	InteractionEventType.Subscribe(world, func(w donburi.World, e buttonfx.InteractionEvent) {
		if e.Type != buttonfx.EventClick || !entry.Valid() {
			return
		}
		ClickTally.Get(entry).Counts[e.NodeName]++
	})
	return entry
}
