// Package ecs provides ECS adapters for buttonfx's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges buttonfx interaction
// events (pointer down, pointer up, click) into a [Donburi] world as typed
// events. Subscribe to [InteractionEventType] in your ECS systems to receive
// them, or call [TrackClicks] for a per-node click count.
//
// Only nodes with a non-zero EntityID emit events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	tally := ecs.TrackClicks(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
