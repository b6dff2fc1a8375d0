package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/velebak/tui-invaders/internal/engine"
)

func newSimDriver(t *testing.T, gridW, gridH int) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	d := New(sim, gridW, gridH)
	if err := d.Enter(); err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}
	t.Cleanup(func() {
		//nolint:errcheck // teardown is best effort
		d.Exit()
	})
	return d, sim
}

func TestDriverDrawsCentered(t *testing.T) {
	d, sim := newSimDriver(t, 25, 15)

	if err := d.Draw(0, 0, '#', engine.ColorGreen); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	d.Show()

	cells, w, h := sim.GetContents()
	offX := (w - 25) / 2
	offY := (h - 15) / 2
	cell := cells[offY*w+offX]
	if len(cell.Runes) == 0 || cell.Runes[0] != '#' {
		t.Errorf("cell at centered origin = %v, expected '#'", cell.Runes)
	}
}

// pollEventually retries Poll until the async event pump delivers.
func pollEventually(t *testing.T, d *Driver) engine.KeyEvent {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ev, ok := d.Poll(); ok {
			return ev
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no event delivered within the deadline")
	return engine.KeyEvent{}
}

func TestDriverPollMapsKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want engine.KeyEvent
	}{
		{"left arrow", tcell.KeyLeft, 0, engine.KeyEvent{Key: engine.KeyLeft}},
		{"right arrow", tcell.KeyRight, 0, engine.KeyEvent{Key: engine.KeyRight}},
		{"up arrow", tcell.KeyUp, 0, engine.KeyEvent{Key: engine.KeyUp}},
		{"space", tcell.KeyRune, ' ', engine.KeyEvent{Key: engine.KeySpace}},
		{"quit rune", tcell.KeyRune, 'q', engine.KeyEvent{Key: engine.KeyRune, Rune: 'q'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, sim := newSimDriver(t, 10, 10)
			sim.InjectKey(tt.key, tt.r, tcell.ModNone)

			got := pollEventually(t, d)
			if got != tt.want {
				t.Errorf("Poll() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestDriverPollWithoutEventsDoesNotBlock(t *testing.T) {
	d, _ := newSimDriver(t, 10, 10)

	done := make(chan struct{})
	go func() {
		d.Poll()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Poll() blocked with no pending events")
	}
}
