// Package engine implements the arcade runtime: a wall-clock paced update
// loop, an entity scheduler with deferred add/remove, a per-entity typed
// attribute store, and a double-buffered character grid used both for
// rendering and for one-frame-delayed occupancy queries.
//
// The package contains no terminal dependencies. The platform supplies a
// Driver; game content lives in internal/game.
package engine

// Handle identifies a live entity. Handles increase monotonically and are
// never reused, even after the entity is removed.
type Handle int64

// Entity is implemented by every behavior object driven by the World.
// Update runs once per tick and receives the measured frame delta in
// seconds; movement must be scaled by it.
type Entity interface {
	Update(delta float64, w *World, id Handle)
}

// Starter is implemented by entities that need one-time setup. Start runs
// exactly once, immediately before the entity's first Update, in the same
// tick.
type Starter interface {
	Start(w *World, id Handle)
}

// slot pairs an entity with its handle and start bookkeeping. Slots are
// owned exclusively by the World.
type slot struct {
	entity  Entity
	id      Handle
	started bool
}
