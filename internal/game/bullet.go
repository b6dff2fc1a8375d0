package game

import (
	"math"

	"github.com/velebak/tui-invaders/internal/engine"
)

// Bullet travels straight up from the ship. It collides through the
// grid's occupancy queries, so a hit registers one frame after the target
// drew itself; that lag is the runtime's collision contract.
type Bullet struct {
	X, Y  float64
	Speed float64
	Owner engine.Handle
}

func (b *Bullet) Start(w *engine.World, id engine.Handle) {
	engine.SetAttr(w, id, FactionPlayer)
}

func (b *Bullet) Update(delta float64, w *engine.World, id engine.Handle) {
	b.Y -= b.Speed * delta
	if b.Y < 1 {
		w.RemoveEntity(id)
		return
	}

	x := int(math.Round(b.X))
	y := int(math.Round(b.Y))

	for _, h := range w.Occupants(x, y) {
		if h == id || h == b.Owner {
			continue
		}
		f, ok := engine.Attr[Faction](w, h)
		if !ok || *f != FactionEnemy {
			continue
		}
		if hp, ok := engine.Attr[Health](w, h); ok {
			hp.HP--
			if hp.HP > 0 {
				w.RemoveEntity(id)
				return
			}
		}
		w.RemoveEntity(h)
		w.RemoveEntity(id)
		if sc, ok := engine.Attr[Score](w, b.Owner); ok {
			sc.Points += invaderPoints
		}
		return
	}

	w.Write(x, y, '*', engine.ColorRed, id)
}
