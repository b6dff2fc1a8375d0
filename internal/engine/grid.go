package engine

// Color is a foreground color for a grid cell. The engine never interprets
// it; the driver resolves it to a concrete terminal color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// Renderer receives one draw call per dirty cell during the flush phase of
// a tick. Draw errors are ignored: a dropped cell is preferable to
// stalling the loop.
type Renderer interface {
	Draw(x, y int, glyph rune, color Color) error
}

// Cell holds a display glyph and color plus the handles that wrote to it
// this frame (cur) and last frame (prev). Occupant lists keep write order
// and duplicates.
type Cell struct {
	Glyph rune
	Color Color
	cur   []Handle
	prev  []Handle
}

// Grid is a fixed-size character surface created once at startup. Writes
// land in the current frame's occupant lists while occupancy queries read
// the previous frame's, so every query within a tick sees the same
// consistent snapshot regardless of entity scheduling order.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

const (
	backgroundGlyph = ' '
	backgroundColor = ColorDefault
)

// NewGrid creates a width x height grid filled with the background glyph
// and empty occupant lists.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
		for x := range g.cells[y] {
			g.cells[y][x].Glyph = backgroundGlyph
		}
	}
	return g
}

// Width returns the grid width in characters.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in characters.
func (g *Grid) Height() int {
	return g.height
}

// Write places glyph at (x, y) and records owner as an occupant of the
// cell for this frame. Coordinates are clamped into bounds, never
// rejected. Glyph and color are overwritten unconditionally: the last
// writer within a frame wins visually.
func (g *Grid) Write(x, y int, glyph rune, color Color, owner Handle) {
	x = Clamp(x, 0, g.width-1)
	y = Clamp(y, 0, g.height-1)
	c := &g.cells[y][x]
	c.Glyph = glyph
	c.Color = color
	c.cur = append(c.cur, owner)
}

// Occupants returns the handles that wrote to (x, y) during the previous
// completed frame, in write order, duplicates included. Coordinates are
// clamped like Write. The result is one frame stale on purpose; callers
// must not mutate it.
func (g *Grid) Occupants(x, y int) []Handle {
	x = Clamp(x, 0, g.width-1)
	y = Clamp(y, 0, g.height-1)
	return g.cells[y][x].prev
}

// Flush emits a draw call for every cell touched this frame or the frame
// before. A cell occupied last frame but empty now is drawn once more,
// with the background glyph, so stale output is erased.
func (g *Grid) Flush(r Renderer) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := &g.cells[y][x]
			if len(c.cur) == 0 && len(c.prev) == 0 {
				continue
			}
			//nolint:errcheck // Best-effort draw, a dropped cell is not fatal
			r.Draw(x, y, c.Glyph, c.Color)
		}
	}
}

// Clear resets every cell to the background and rotates the occupant
// buffers: current becomes previous, current empties. It must run strictly
// after Flush within the same tick or the one-frame lag breaks.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			c := &g.cells[y][x]
			c.Glyph = backgroundGlyph
			c.Color = backgroundColor
			c.prev, c.cur = c.cur, c.prev[:0]
		}
	}
}
