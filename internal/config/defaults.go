package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// Default returns the built-in gameplay configuration, matching the
// embedded defaults/invaders.yaml.
func Default() Game {
	return Game{
		Grid: Grid{Width: 25, Height: 15},
		Ship: Ship{X: 12, Y: 13, Speed: 4.5},
		Bullet: Bullet{
			Speed: 3.5,
		},
		Invaders: Invaders{
			Rows:     2,
			Cols:     6,
			Spacing:  3,
			TopRow:   2,
			Speed:    2.0,
			StepDown: 1,
		},
		Barriers: []Position{
			{X: 4, Y: 12}, {X: 5, Y: 12}, {X: 6, Y: 12},
			{X: 11, Y: 12}, {X: 12, Y: 12}, {X: 13, Y: 12},
			{X: 18, Y: 12}, {X: 19, Y: 12}, {X: 20, Y: 12},
		},
		Difficulty: Difficulty{SpeedMultiplier: 1.0},
	}
}
