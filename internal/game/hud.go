package game

import (
	"fmt"

	"github.com/velebak/tui-invaders/internal/engine"
)

// Hud renders the score line into the top grid row. It is seeded after
// the wall so its glyphs win the frame's last-writer contest.
type Hud struct {
	Ship engine.Handle
}

func (h *Hud) Update(_ float64, w *engine.World, id engine.Handle) {
	points := 0
	if sc, ok := engine.Attr[Score](w, h.Ship); ok {
		points = sc.Points
	}

	label := fmt.Sprintf(" SCORE %04d ", points)
	width, _ := w.Size()
	x := (width - len(label)) / 2
	for i, r := range label {
		w.Write(x+i, 0, r, engine.ColorWhite, id)
	}
}
