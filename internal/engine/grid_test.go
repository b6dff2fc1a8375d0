package engine

import "testing"

// recorder captures draw calls for flush assertions.
type recorder struct {
	draws []drawCall
}

type drawCall struct {
	X, Y  int
	Glyph rune
	Color Color
}

func (r *recorder) Draw(x, y int, glyph rune, color Color) error {
	r.draws = append(r.draws, drawCall{x, y, glyph, color})
	return nil
}

func (r *recorder) at(x, y int) []drawCall {
	var out []drawCall
	for _, d := range r.draws {
		if d.X == x && d.Y == y {
			out = append(out, d)
		}
	}
	return out
}

func TestWriteClampsOutOfRangeCoordinates(t *testing.T) {
	g := NewGrid(25, 15)

	g.Write(-5, 1000, '*', ColorRed, 1)
	g.Clear()

	occ := g.Occupants(0, 14)
	if len(occ) != 1 || occ[0] != 1 {
		t.Errorf("Occupants(0, 14) = %v, expected the clamped write to land there", occ)
	}

	// Queries clamp identically.
	if occ := g.Occupants(-5, 1000); len(occ) != 1 || occ[0] != 1 {
		t.Errorf("Occupants(-5, 1000) = %v, expected clamp to (0, 14)", occ)
	}
}

func TestOccupancyIsOneFrameStale(t *testing.T) {
	g := NewGrid(25, 15)

	g.Write(3, 3, '*', ColorRed, 7)
	if occ := g.Occupants(3, 3); len(occ) != 0 {
		t.Errorf("write visible to queries within the same frame: %v", occ)
	}

	g.Clear()
	occ := g.Occupants(3, 3)
	if len(occ) != 1 || occ[0] != 7 {
		t.Errorf("Occupants(3, 3) = %v after clear, expected [7]", occ)
	}

	// One full frame without a rewrite and the occupant is gone.
	g.Clear()
	if occ := g.Occupants(3, 3); len(occ) != 0 {
		t.Errorf("stale occupant survived a second clear: %v", occ)
	}
}

func TestOccupantsKeepOrderAndDuplicates(t *testing.T) {
	g := NewGrid(10, 10)

	g.Write(2, 2, 'a', ColorDefault, 5)
	g.Write(2, 2, 'b', ColorDefault, 9)
	g.Write(2, 2, 'c', ColorDefault, 5)
	g.Clear()

	occ := g.Occupants(2, 2)
	want := []Handle{5, 9, 5}
	if len(occ) != len(want) {
		t.Fatalf("Occupants = %v, want %v", occ, want)
	}
	for i := range want {
		if occ[i] != want[i] {
			t.Fatalf("Occupants = %v, want %v", occ, want)
		}
	}
}

func TestLastWriterWinsVisually(t *testing.T) {
	g := NewGrid(10, 10)
	r := &recorder{}

	g.Write(4, 4, 'a', ColorGreen, 1)
	g.Write(4, 4, 'b', ColorRed, 2)
	g.Flush(r)

	draws := r.at(4, 4)
	if len(draws) != 1 {
		t.Fatalf("expected one draw per dirty cell, got %d", len(draws))
	}
	if draws[0].Glyph != 'b' || draws[0].Color != ColorRed {
		t.Errorf("drew %q/%d, expected the last writer's 'b'/red", draws[0].Glyph, draws[0].Color)
	}
}

func TestFlushSkipsUntouchedCellsAndErasesStaleOnes(t *testing.T) {
	g := NewGrid(10, 10)

	// Frame 1: one cell written.
	r1 := &recorder{}
	g.Write(5, 5, '*', ColorRed, 1)
	g.Flush(r1)
	g.Clear()
	if len(r1.draws) != 1 {
		t.Fatalf("frame 1: %d draws, expected 1", len(r1.draws))
	}

	// Frame 2: nothing written, but the cell was occupied last frame so it
	// is redrawn once with the background glyph to erase it.
	r2 := &recorder{}
	g.Flush(r2)
	g.Clear()
	if len(r2.draws) != 1 {
		t.Fatalf("frame 2: %d draws, expected the one-frame erase redraw", len(r2.draws))
	}
	if r2.draws[0].Glyph != ' ' {
		t.Errorf("erase redraw used %q, expected background glyph", r2.draws[0].Glyph)
	}

	// Frame 3: both buffers empty, the cell goes quiet.
	r3 := &recorder{}
	g.Flush(r3)
	if len(r3.draws) != 0 {
		t.Errorf("frame 3: %d draws, expected none", len(r3.draws))
	}
}

// Full cell lifecycle through the world: write, lagged visibility,
// removal, erase redraw, quiet.
func TestWorldGridLifecycle(t *testing.T) {
	w := NewWorld(25, 15)

	var seen [][]Handle
	removeAtTick := -1
	tick := 0
	p := &probe{}
	p.onUpdate = func(_ float64, w *World, id Handle) {
		seen = append(seen, append([]Handle(nil), w.Occupants(10, 10)...))
		if tick == removeAtTick {
			w.RemoveEntity(id)
		}
		w.Write(10, 10, '*', ColorWhite, id)
	}
	e1 := w.AddEntity(p)

	// Tick 0: nothing was written in any prior frame.
	r := &recorder{}
	w.Tick(0.04, r)
	if len(seen[0]) != 0 {
		t.Errorf("tick 0 saw occupants %v before any completed frame", seen[0])
	}

	// Tick 1: last frame's write is now visible; entity removes itself.
	removeAtTick = 1
	tick = 1
	r = &recorder{}
	w.Tick(0.04, r)
	if len(seen[1]) != 1 || seen[1][0] != e1 {
		t.Errorf("tick 1 saw %v, expected [%d]", seen[1], e1)
	}

	// Tick 2: zero live entities, but the cell is redrawn once more to
	// erase the tick-1 glyph.
	r = &recorder{}
	w.Tick(0.04, r)
	if w.Len() != 0 {
		t.Fatalf("entity not removed, Len() = %d", w.Len())
	}
	if got := len(r.at(10, 10)); got != 1 {
		t.Errorf("tick 2: %d draws at (10,10), expected the erase redraw", got)
	}

	// Tick 3: quiet.
	r = &recorder{}
	w.Tick(0.04, r)
	if got := len(r.at(10, 10)); got != 0 {
		t.Errorf("tick 3: %d draws at (10,10), expected none", got)
	}
}
