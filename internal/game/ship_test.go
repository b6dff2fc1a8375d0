package game

import (
	"testing"

	"github.com/velebak/tui-invaders/internal/engine"
)

func newTestWorld() *engine.World {
	return engine.NewWorld(25, 15)
}

func holdKey(w *engine.World, k engine.Key, ticks int, delta float64) {
	for i := 0; i < ticks; i++ {
		ev := engine.KeyEvent{Key: k}
		w.SetInput(&ev)
		w.Tick(delta, nil)
	}
}

func TestShipMovesRightThroughTiltAccumulator(t *testing.T) {
	w := newTestWorld()
	s := &Ship{X: 12, Y: 13, Speed: 4.5, BulletSpeed: 3.5}
	w.AddEntity(s)

	// 4.5 cells/s at 0.1s per tick: the accumulator crosses 1.0 on the
	// third tick.
	holdKey(w, engine.KeyRight, 2, 0.1)
	if s.X != 12 {
		t.Fatalf("ship moved early, X = %d", s.X)
	}

	holdKey(w, engine.KeyRight, 1, 0.1)
	if s.X != 13 {
		t.Errorf("ship X = %d after crossing the accumulator, expected 13", s.X)
	}
}

func TestShipReversalResetsTilt(t *testing.T) {
	w := newTestWorld()
	s := &Ship{X: 12, Y: 13, Speed: 4.5, BulletSpeed: 3.5}
	w.AddEntity(s)

	holdKey(w, engine.KeyRight, 2, 0.1)
	if s.tilt == 0 {
		t.Fatal("expected accumulated tilt before the reversal")
	}

	// Left immediately after Right is an edge-detected reversal: the tilt
	// resets and the event is consumed instead of moving the ship.
	holdKey(w, engine.KeyLeft, 1, 0.1)
	if s.tilt != 0 {
		t.Errorf("tilt = %v after reversal, expected 0", s.tilt)
	}
	if s.X != 12 {
		t.Errorf("ship X = %d after reversal, expected 12", s.X)
	}
}

func TestShipStaysInsideTheWall(t *testing.T) {
	w := newTestWorld()
	s := &Ship{X: 2, Y: 13, Speed: 100, BulletSpeed: 3.5}
	w.AddEntity(s)

	holdKey(w, engine.KeyLeft, 20, 0.1)
	if s.X != 1 {
		t.Errorf("ship X = %d, expected clamp at 1", s.X)
	}

	holdKey(w, engine.KeyRight, 1, 0.1) // reversal, consumed
	holdKey(w, engine.KeyRight, 40, 0.1)
	if s.X != 23 {
		t.Errorf("ship X = %d, expected clamp at 23", s.X)
	}
}

func TestShipFiresBulletAndResetsTilt(t *testing.T) {
	w := newTestWorld()
	s := &Ship{X: 12, Y: 13, Speed: 4.5, BulletSpeed: 3.5}
	w.AddEntity(s)

	holdKey(w, engine.KeyRight, 2, 0.1)
	before := w.Len()

	holdKey(w, engine.KeyUp, 1, 0.1)
	if w.Len() != before+1 {
		t.Errorf("Len() = %d after firing, expected %d", w.Len(), before+1)
	}
	if s.tilt != 0 {
		t.Errorf("tilt = %v after firing, expected reset", s.tilt)
	}
}

// stamp writes a fixed glyph every tick, tagged with a faction.
type stamp struct {
	X, Y    int
	Faction Faction
}

func (st *stamp) Start(w *engine.World, id engine.Handle) {
	engine.SetAttr(w, id, st.Faction)
	engine.SetAttr(w, id, Health{HP: 1})
}

func (st *stamp) Update(_ float64, w *engine.World, id engine.Handle) {
	w.Write(st.X, st.Y, 'W', engine.ColorMagenta, id)
}

func TestShipDiesWhenEnemyReachesItsCell(t *testing.T) {
	w := newTestWorld()
	w.AddEntity(&stamp{X: 12, Y: 13, Faction: FactionEnemy})
	ship := w.AddEntity(&Ship{X: 12, Y: 13, Speed: 4.5, BulletSpeed: 3.5})

	// Tick 0: the enemy writes; the occupancy query still sees an empty
	// prior frame. Tick 1: the ship sees the enemy and the run ends.
	w.Tick(0.04, nil)
	if w.Stopping() {
		t.Fatal("ship died from a same-frame write; occupancy must lag one frame")
	}

	w.Tick(0.04, nil)
	if !w.Stopping() {
		t.Fatal("ship did not request a stop after an enemy reached its cell")
	}
	if hp, ok := engine.Attr[Health](w, ship); !ok || hp.HP != 0 {
		t.Error("ship health not zeroed on death")
	}
}
