package game

import (
	"github.com/velebak/tui-invaders/internal/config"
	"github.com/velebak/tui-invaders/internal/engine"
)

// Setup seeds w with the initial entities for one run and returns the
// ship's handle so the caller can read the final Score after the loop
// ends.
func Setup(w *engine.World, cfg config.Game) engine.Handle {
	w.AddEntity(&Wall{})

	for _, p := range cfg.Barriers {
		w.AddEntity(&Barrier{X: p.X, Y: p.Y})
	}

	rows := cfg.InvaderRows()
	cols := cfg.Invaders.Cols
	spacing := cfg.Invaders.Spacing
	speed := cfg.InvaderSpeed()

	// Every invader patrols the same horizontal slack, so the formation
	// marches in step.
	formationW := 1
	if cols > 0 {
		formationW = (cols-1)*spacing + 1
	}
	slack := cfg.Grid.Width - 2 - formationW
	if slack < 1 {
		slack = 1
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			baseX := 1 + col*spacing
			w.AddEntity(&Invader{
				X:        baseX,
				Y:        cfg.Invaders.TopRow + row,
				MinX:     baseX,
				MaxX:     baseX + slack,
				Speed:    speed,
				StepDown: cfg.Invaders.StepDown,
				BottomY:  cfg.Ship.Y,
			})
		}
	}

	ship := w.AddEntity(&Ship{
		X:           cfg.Ship.X,
		Y:           cfg.Ship.Y,
		Speed:       cfg.Ship.Speed,
		BulletSpeed: cfg.Bullet.Speed,
	})

	// Added after the wall so the score line overwrites the top border.
	w.AddEntity(&Hud{Ship: ship})

	return ship
}

// FinalScore reads the accumulated score off the ship after a run. Zero
// when the handle is gone or never scored.
func FinalScore(w *engine.World, ship engine.Handle) int {
	if sc, ok := engine.Attr[Score](w, ship); ok {
		return sc.Points
	}
	return 0
}
