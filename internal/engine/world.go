package engine

import "reflect"

// World owns the ordered collection of live entities, their attribute
// bags, and the grid surface. It is the single authoritative simulation
// state, passed by reference into every entity call; exactly one entity
// runs at a time, so no locking is needed.
type World struct {
	slots    []slot
	removals []Handle
	nextID   Handle
	attrs    map[Handle]map[reflect.Type]any
	grid     *Grid

	cur  *KeyEvent
	prev *KeyEvent

	stopping bool
}

// NewWorld creates an empty world with a width x height grid.
func NewWorld(width, height int) *World {
	return &World{
		attrs: make(map[Handle]map[reflect.Type]any),
		grid:  NewGrid(width, height),
	}
}

// AddEntity registers e and returns its handle. The slot is appended
// unstarted with an empty attribute bag; an entity added mid-tick is not
// visited until the next tick. Start runs immediately before the first
// Update.
func (w *World) AddEntity(e Entity) Handle {
	id := w.nextID
	w.nextID++
	w.slots = append(w.slots, slot{entity: e, id: id})
	w.attrs[id] = make(map[reflect.Type]any)
	return id
}

// RemoveEntity enqueues h for removal at the start of the next tick. The
// entity still receives this tick's Update if it removes itself
// mid-update. Duplicate and unknown handles are harmless.
func (w *World) RemoveEntity(h Handle) {
	w.removals = append(w.removals, h)
}

// Tick runs one frame: apply queued removals, visit every entity that was
// live at frame start exactly once, flush the grid to r, then clear and
// rotate the grid buffers. A nil Renderer skips the flush (headless tick).
//
// Entities are visited by popping the front slot and pushing it back after
// its Update, which preserves insertion order and keeps entities added
// during the pass past the snapshot count until next tick.
func (w *World) Tick(delta float64, r Renderer) {
	if len(w.removals) > 0 {
		live := w.slots[:0]
		for _, s := range w.slots {
			if w.pendingRemoval(s.id) {
				delete(w.attrs, s.id)
				continue
			}
			live = append(live, s)
		}
		w.slots = live
		w.removals = w.removals[:0]
	}

	n := len(w.slots)
	for i := 0; i < n; i++ {
		s := w.slots[0]
		w.slots = w.slots[1:]
		if !s.started {
			if st, ok := s.entity.(Starter); ok {
				st.Start(w, s.id)
			}
			s.started = true
		}
		s.entity.Update(delta, w, s.id)
		w.slots = append(w.slots, s)
	}

	if r != nil {
		w.grid.Flush(r)
	}
	w.grid.Clear()

	// This tick's input becomes next tick's LastInput, consumed or not.
	w.prev = w.cur
	w.cur = nil
}

func (w *World) pendingRemoval(h Handle) bool {
	for _, r := range w.removals {
		if r == h {
			return true
		}
	}
	return false
}

// Len returns the number of live slots, pending removals included until
// the next tick applies them.
func (w *World) Len() int {
	return len(w.slots)
}

// Size returns the grid dimensions.
func (w *World) Size() (width, height int) {
	return w.grid.Width(), w.grid.Height()
}

// Write places a glyph on the grid, crediting owner as an occupant.
func (w *World) Write(x, y int, glyph rune, color Color, owner Handle) {
	w.grid.Write(x, y, glyph, color, owner)
}

// Occupants returns the handles that occupied (x, y) during the previous
// frame. See Grid.Occupants for the lag contract.
func (w *World) Occupants(x, y int) []Handle {
	return w.grid.Occupants(x, y)
}

// Grid exposes the underlying surface.
func (w *World) Grid() *Grid {
	return w.grid
}

// SetInput records the event polled at the start of the current tick.
// Called by the run loop; tests may call it directly before Tick.
func (w *World) SetInput(ev *KeyEvent) {
	w.cur = ev
}

// Input returns the event polled this tick, or nil. Entities that act on
// an event may ConsumeInput so later entities do not see it.
func (w *World) Input() *KeyEvent {
	return w.cur
}

// LastInput returns the previous tick's event, or nil. Together with
// Input it allows edge-detecting key transitions.
func (w *World) LastInput() *KeyEvent {
	return w.prev
}

// ConsumeInput clears the current tick's event.
func (w *World) ConsumeInput() {
	w.cur = nil
}

// RequestStop asks the run loop to end after the current tick.
func (w *World) RequestStop() {
	w.stopping = true
}

// Stopping reports whether a stop has been requested.
func (w *World) Stopping() bool {
	return w.stopping
}
