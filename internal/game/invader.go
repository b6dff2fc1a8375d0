package game

import (
	"github.com/velebak/tui-invaders/internal/engine"
)

// Invader patrols horizontally between MinX and MaxX with the same tilt
// accumulator the ship uses, reversing and stepping down StepDown rows at
// each bound. Reaching BottomY ends the run.
type Invader struct {
	X, Y       int
	MinX, MaxX int
	Speed      float64
	StepDown   int
	BottomY    int

	dir  int
	tilt float64
}

func (v *Invader) Start(w *engine.World, id engine.Handle) {
	engine.SetAttr(w, id, FactionEnemy)
	engine.SetAttr(w, id, Health{HP: 1})
	if v.dir == 0 {
		v.dir = 1
	}
}

func (v *Invader) Update(delta float64, w *engine.World, id engine.Handle) {
	v.tilt += float64(v.dir) * v.Speed * delta
	if v.tilt > 1.0 {
		v.X++
		v.tilt -= 1.0
	} else if v.tilt < -1.0 {
		v.X--
		v.tilt += 1.0
	}

	if v.X >= v.MaxX && v.dir > 0 {
		v.X = v.MaxX
		v.dir = -1
		v.tilt = 0
		v.Y += v.StepDown
	} else if v.X <= v.MinX && v.dir < 0 {
		v.X = v.MinX
		v.dir = 1
		v.tilt = 0
		v.Y += v.StepDown
	}

	if v.Y >= v.BottomY {
		w.RequestStop()
	}

	w.Write(v.X, v.Y, 'W', engine.ColorMagenta, id)
}
