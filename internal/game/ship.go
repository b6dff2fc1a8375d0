package game

import (
	"github.com/velebak/tui-invaders/internal/engine"
)

// Ship is the player. Horizontal movement goes through a sub-cell tilt
// accumulator so delta-scaled motion stays smooth on an integer grid: the
// position moves one cell only when the accumulator crosses +-1.0.
type Ship struct {
	X, Y        int
	Speed       float64
	BulletSpeed float64

	tilt float64
}

func (s *Ship) Start(w *engine.World, id engine.Handle) {
	engine.SetAttr(w, id, FactionPlayer)
	engine.SetAttr(w, id, Health{HP: 1})
	engine.SetAttr(w, id, Score{})
}

func (s *Ship) Update(delta float64, w *engine.World, id engine.Handle) {
	width, height := w.Size()
	cur, prev := w.Input(), w.LastInput()

	switch {
	case cur != nil && cur.Key == engine.KeyLeft:
		// Reversing direction kills the accumulated tilt instead of
		// fighting it across several frames.
		if prev != nil && prev.Key == engine.KeyRight {
			s.tilt = 0
			w.ConsumeInput()
		} else {
			s.tilt -= s.Speed * delta
		}
	case cur != nil && cur.Key == engine.KeyRight:
		if prev != nil && prev.Key == engine.KeyLeft {
			s.tilt = 0
			w.ConsumeInput()
		} else {
			s.tilt += s.Speed * delta
		}
	case cur != nil && (cur.Key == engine.KeyUp || cur.Key == engine.KeySpace):
		w.AddEntity(&Bullet{
			X:     float64(s.X),
			Y:     float64(s.Y - 1),
			Speed: s.BulletSpeed,
			Owner: id,
		})
		s.tilt = 0
		w.ConsumeInput()
	}

	if s.tilt > 1.0 {
		s.X++
		s.tilt -= 1.0
	} else if s.tilt < -1.0 {
		s.X--
		s.tilt += 1.0
	}
	s.X = engine.Clamp(s.X, 1, width-2)
	s.Y = engine.Clamp(s.Y, 1, height-2)

	// An invader that reached our cell last frame ends the run.
	for _, h := range w.Occupants(s.X, s.Y) {
		if h == id {
			continue
		}
		if f, ok := engine.Attr[Faction](w, h); ok && *f == FactionEnemy {
			if hp, ok := engine.Attr[Health](w, id); ok {
				hp.HP = 0
			}
			w.RequestStop()
		}
	}

	w.Write(s.X, s.Y, '^', engine.ColorGreen, id)
}
