package histsearch

import (
	"io"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Terminal abstracts controlling-terminal operations for testability and
// cross-platform compatibility.
//
// Implementations:
//   - realTerminal (via OpenTerminal): uses go-tty for actual terminal
//     interaction
//   - mockTerminal: provides deterministic behavior for testing
//
// The prompt reads key events from and renders to the controlling
// terminal itself, never stdin/stdout; those streams belong to the
// history producer and the caller protocol.
type Terminal interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Buffered() bool                       // Report whether key input is pending
	Output() io.Writer                    // Writer for rendered output
	ResizeEvents() <-chan struct{}        // Signals a terminal size change
	Close() error                         // Clean up resources and prevent fd leaks
}

// realTerminal implements Terminal on top of go-tty, with raw
// mode state managed through golang.org/x/term and a colorable output
// wrapper on Windows.
//
// The 'closed' flag prevents a double Close, which panics on Windows.
// Size falls back to 80x24 when the geometry query misbehaves so the
// renderer never divides by zero.
type realTerminal struct {
	tty           *tty.TTY
	output        io.Writer
	resize        chan struct{}
	closed        bool
	originalState *term.State // Original terminal state to restore on exit
}

// OpenTerminal opens the controlling terminal for key input and rendered
// output. Failure here is fatal to the prompt: without a terminal there is
// nothing to read keys from or render to.
func OpenTerminal() (Terminal, error) {
	return newRealTerminal()
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = t.Output()
	if runtime.GOOS == "windows" {
		// Use colorable for Windows ANSI color support
		output = colorable.NewColorable(t.Output())
	}

	rt := &realTerminal{
		tty:    t,
		output: output,
		resize: make(chan struct{}, 1),
	}

	// Collapse go-tty's size-change notifications into bare signals; the
	// prompt re-queries geometry itself when it is ready to react.
	go func() {
		for range t.SIGWINCH() {
			select {
			case rt.resize <- struct{}{}:
			default:
			}
		}
	}()

	return rt, nil
}

func (t *realTerminal) SetRaw() error {
	// Capture current terminal state before entering raw mode so it can
	// be restored regardless of how many times raw mode is entered.
	fd := int(t.tty.Input().Fd())
	if term.IsTerminal(fd) {
		state, err := term.GetState(fd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(fd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	fd := int(t.tty.Input().Fd())
	if t.originalState != nil && term.IsTerminal(fd) {
		err := term.Restore(fd, t.originalState)
		// Reset so SetRaw captures a fresh baseline next time
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 {
		// Safe fallback to prevent divide by zero in the renderer
		return 80, 24, nil
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Buffered() bool {
	return t.tty.Buffered()
}

func (t *realTerminal) Output() io.Writer {
	return t.output
}

func (t *realTerminal) ResizeEvents() <-chan struct{} {
	return t.resize
}

func (t *realTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
