package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Driver abstracts the terminal: immersive-mode bracketing, non-blocking
// input polling, and per-cell drawing. Implemented on tcell by
// platform/term and by fakes in tests.
type Driver interface {
	Renderer

	// Enter puts the terminal into immersive mode: raw input, hidden
	// cursor, cleared screen. Its error is the only driver fault surfaced
	// to the caller of Run.
	Enter() error

	// Exit restores the terminal. Best effort; failures are logged, never
	// fatal.
	Exit() error

	// Poll returns the next pending input event, if any, without blocking.
	Poll() (KeyEvent, bool)

	// Show makes the draws of the current tick visible.
	Show()
}

// DefaultMinFrameTime caps the update rate at 25 ticks per second.
// Redrawing faster than this flickers on most terminals.
const DefaultMinFrameTime = 40 * time.Millisecond

// Options tune Run. The zero value is usable.
type Options struct {
	// MinFrameTime is the pacing floor between tick starts. Defaults to
	// DefaultMinFrameTime.
	MinFrameTime time.Duration

	// QuitRune ends the loop when polled between ticks. Defaults to 'q'.
	// Ctrl+C always quits.
	QuitRune rune

	// Logger receives best-effort fault reports. Nil means discard.
	Logger *log.Logger
}

// Run drives the world until a quit key is polled or the world requests a
// stop. Each iteration measures the wall-clock time since the previous
// tick started, sleeps off any remainder below the pacing floor, and
// passes the re-measured elapsed time as the delta. The quit key is
// observed only between ticks, never mid-tick.
func Run(w *World, d Driver, opts Options) error {
	if opts.MinFrameTime <= 0 {
		opts.MinFrameTime = DefaultMinFrameTime
	}
	if opts.QuitRune == 0 {
		opts.QuitRune = 'q'
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := d.Enter(); err != nil {
		return fmt.Errorf("engine: enter immersive mode: %w", err)
	}
	defer func() {
		if err := d.Exit(); err != nil {
			logger.Warn("engine: restore terminal", "err", err)
		}
	}()

	last := time.Now()
	for {
		elapsed := time.Since(last)
		if elapsed < opts.MinFrameTime {
			time.Sleep(opts.MinFrameTime - elapsed)
			elapsed = time.Since(last)
		}
		last = time.Now()

		if ev, ok := d.Poll(); ok {
			if ev.Key == KeyCtrlC || (ev.Key == KeyRune && ev.Rune == opts.QuitRune) {
				return nil
			}
			w.SetInput(&ev)
		}

		w.Tick(elapsed.Seconds(), d)
		d.Show()

		if w.Stopping() {
			return nil
		}
	}
}
