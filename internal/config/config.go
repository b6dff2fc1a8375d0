// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for the invaders runtime.
package config

import "fmt"

// Game contains all gameplay configuration: grid dimensions, entity
// speeds, and the initial layout seeded by the composition root.
type Game struct {
	Grid       Grid       `yaml:"grid"`
	Ship       Ship       `yaml:"ship"`
	Bullet     Bullet     `yaml:"bullet"`
	Invaders   Invaders   `yaml:"invaders"`
	Barriers   []Position `yaml:"barriers"`
	Difficulty Difficulty `yaml:"difficulty"`
}

// Grid defines the playfield dimensions in characters.
type Grid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Ship defines the player ship parameters. Speed is in cells per second.
type Ship struct {
	X     int     `yaml:"x"`
	Y     int     `yaml:"y"`
	Speed float64 `yaml:"speed"`
}

// Bullet defines projectile parameters.
type Bullet struct {
	Speed float64 `yaml:"speed"`
}

// Invaders defines the enemy formation and patrol parameters.
type Invaders struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Spacing  int     `yaml:"spacing"`
	TopRow   int     `yaml:"top_row"`
	Speed    float64 `yaml:"speed"`
	StepDown int     `yaml:"step_down"`
}

// Position is a grid coordinate used for barrier placement.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Difficulty scales the enemy formation.
type Difficulty struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	ExtraRows       int     `yaml:"extra_rows"`
}

// Validate checks that the configuration can seed a playable world.
func (g Game) Validate() error {
	if g.Grid.Width < 10 || g.Grid.Height < 8 {
		return fmt.Errorf("config: grid %dx%d too small, need at least 10x8", g.Grid.Width, g.Grid.Height)
	}
	if g.Ship.Speed <= 0 || g.Bullet.Speed <= 0 {
		return fmt.Errorf("config: ship and bullet speeds must be positive")
	}
	if g.Invaders.Rows < 0 || g.Invaders.Cols < 0 {
		return fmt.Errorf("config: invader formation must not be negative")
	}
	if g.Invaders.Cols > 0 && g.Invaders.Spacing < 1 {
		return fmt.Errorf("config: invader spacing must be at least 1")
	}
	return nil
}

// Preset is a named difficulty level applied on top of the loaded config.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset. Unknown presets
// leave the config untouched.
func ApplyPreset(cfg *Game, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Difficulty.SpeedMultiplier = 0.75
		cfg.Difficulty.ExtraRows = 0
	case PresetNormal:
		cfg.Difficulty.SpeedMultiplier = 1.0
		cfg.Difficulty.ExtraRows = 0
	case PresetHard:
		cfg.Difficulty.SpeedMultiplier = 1.5
		cfg.Difficulty.ExtraRows = 1
	}
}

// InvaderSpeed returns the patrol speed with the difficulty multiplier
// applied.
func (g Game) InvaderSpeed() float64 {
	m := g.Difficulty.SpeedMultiplier
	if m <= 0 {
		m = 1.0
	}
	return g.Invaders.Speed * m
}

// InvaderRows returns the formation row count with the difficulty bonus
// applied.
func (g Game) InvaderRows() int {
	return g.Invaders.Rows + g.Difficulty.ExtraRows
}
