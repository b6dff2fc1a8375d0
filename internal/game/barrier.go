package game

import (
	"github.com/velebak/tui-invaders/internal/engine"
)

// Barrier is a static cover block. An invader grinding through its cell
// wears it down one hit point per frame of overlap.
type Barrier struct {
	X, Y int
}

func (b *Barrier) Start(w *engine.World, id engine.Handle) {
	engine.SetAttr(w, id, FactionNeutral)
	engine.SetAttr(w, id, Health{HP: 3})
}

func (b *Barrier) Update(_ float64, w *engine.World, id engine.Handle) {
	for _, h := range w.Occupants(b.X, b.Y) {
		if h == id {
			continue
		}
		f, ok := engine.Attr[Faction](w, h)
		if !ok || *f != FactionEnemy {
			continue
		}
		if hp, ok := engine.Attr[Health](w, id); ok {
			hp.HP--
			if hp.HP <= 0 {
				w.RemoveEntity(id)
				return
			}
		}
	}

	w.Write(b.X, b.Y, '#', engine.ColorYellow, id)
}
