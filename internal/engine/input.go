package engine

// Key identifies a logical key recognized by the runtime. Printable keys
// arrive as KeyRune with the rune set.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEscape
	KeyCtrlC
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	case KeyCtrlC:
		return "Ctrl+C"
	case KeyRune:
		return "Rune"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single polled keyboard event.
type KeyEvent struct {
	Key  Key
	Rune rune
}
