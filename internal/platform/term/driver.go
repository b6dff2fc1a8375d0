// Package term implements the engine's terminal driver on tcell: raw
// input mode, hidden cursor, non-blocking key polling, and per-cell
// drawing with the game grid centered in the real terminal.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/velebak/tui-invaders/internal/engine"
)

// styles maps engine colors to tcell styles.
var styles = map[engine.Color]tcell.Style{
	engine.ColorDefault: tcell.StyleDefault,
	engine.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorRed),
	engine.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	engine.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	engine.ColorBlue:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
	engine.ColorMagenta: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	engine.ColorCyan:    tcell.StyleDefault.Foreground(tcell.ColorTeal),
	engine.ColorWhite:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	engine.ColorGray:    tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Driver drives a tcell screen as the engine's renderer and input source.
type Driver struct {
	screen tcell.Screen
	gridW  int
	gridH  int

	offsetX int
	offsetY int

	events chan tcell.Event
	quit   chan struct{}
}

// New wraps an existing tcell screen. Tests pass a simulation screen.
func New(screen tcell.Screen, gridW, gridH int) *Driver {
	return &Driver{screen: screen, gridW: gridW, gridH: gridH}
}

// NewDefault allocates a real terminal screen.
func NewDefault(gridW, gridH int) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	return New(screen, gridW, gridH), nil
}

// Enter initializes the screen (raw mode), hides the cursor, clears the
// terminal, and starts the event pump.
func (d *Driver) Enter() error {
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.HideCursor()
	d.screen.Clear()
	d.recenter()

	d.events = make(chan tcell.Event, 16)
	d.quit = make(chan struct{})
	go d.screen.ChannelEvents(d.events, d.quit)
	return nil
}

// Exit stops the event pump and restores the terminal.
func (d *Driver) Exit() error {
	if d.quit != nil {
		close(d.quit)
		d.quit = nil
	}
	d.screen.Fini()
	return nil
}

// recenter positions the grid in the middle of the terminal.
func (d *Driver) recenter() {
	w, h := d.screen.Size()
	d.offsetX = engine.Clamp((w-d.gridW)/2, 0, w)
	d.offsetY = engine.Clamp((h-d.gridH)/2, 0, h)
}

// Poll returns the next pending key event without blocking. Resize events
// are handled internally.
func (d *Driver) Poll() (engine.KeyEvent, bool) {
	for {
		select {
		case ev := <-d.events:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				return mapKey(tev), true
			case *tcell.EventResize:
				d.recenter()
				d.screen.Clear()
				d.screen.Sync()
			}
		default:
			return engine.KeyEvent{}, false
		}
	}
}

// mapKey translates a tcell key event to an engine key event.
func mapKey(ev *tcell.EventKey) engine.KeyEvent {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.KeyEvent{Key: engine.KeyLeft}
	case tcell.KeyRight:
		return engine.KeyEvent{Key: engine.KeyRight}
	case tcell.KeyUp:
		return engine.KeyEvent{Key: engine.KeyUp}
	case tcell.KeyDown:
		return engine.KeyEvent{Key: engine.KeyDown}
	case tcell.KeyEscape:
		return engine.KeyEvent{Key: engine.KeyEscape}
	case tcell.KeyCtrlC:
		return engine.KeyEvent{Key: engine.KeyCtrlC}
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return engine.KeyEvent{Key: engine.KeySpace}
		}
		return engine.KeyEvent{Key: engine.KeyRune, Rune: ev.Rune()}
	default:
		return engine.KeyEvent{Key: engine.KeyNone}
	}
}

// Draw places one glyph, offset so the grid sits centered.
func (d *Driver) Draw(x, y int, glyph rune, color engine.Color) error {
	style, ok := styles[color]
	if !ok {
		style = tcell.StyleDefault
	}
	d.screen.SetContent(x+d.offsetX, y+d.offsetY, glyph, nil, style)
	return nil
}

// Show makes the tick's draws visible.
func (d *Driver) Show() {
	d.screen.Show()
}
