// Package game contains the concrete invaders entities built on the
// engine runtime: the player ship, bullets, the boundary wall, barriers,
// patrol invaders, and the score HUD, plus the composition root that seeds
// a world from configuration.
package game

// Faction tags an entity for occupancy-based hit tests. Attached through
// the engine attribute store and read back via occupancy queries.
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
)

// Health is hit points attached to destructible entities.
type Health struct {
	HP int
}

// Score accumulates points on the ship's handle. Bullets credit it on a
// kill; the HUD reads it back every tick.
type Score struct {
	Points int
}

// invaderPoints is the score awarded per invader destroyed.
const invaderPoints = 10
