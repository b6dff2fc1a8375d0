package game

import (
	"github.com/velebak/tui-invaders/internal/engine"
)

// Wall redraws the playfield border every tick.
type Wall struct{}

func (wl *Wall) Update(_ float64, w *engine.World, id engine.Handle) {
	width, height := w.Size()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				w.Write(x, y, '#', engine.ColorGray, id)
			}
		}
	}
}
