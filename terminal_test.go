package histsearch

import (
	"errors"
	"io"
	"testing"
)

func TestMockTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		width  int
		height int
	}{
		{
			name:   "simple input",
			input:  "hello",
			width:  80,
			height: 24,
		},
		{
			name:   "empty input",
			input:  "",
			width:  120,
			height: 30,
		},
		{
			name:   "unicode input",
			input:  "こんにちは",
			width:  100,
			height: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockTerminal(tt.input)
			mock.terminalSize = [2]int{tt.width, tt.height}

			if err := mock.SetRaw(); err != nil {
				t.Errorf("SetRaw() error = %v", err)
			}
			if !mock.rawMode {
				t.Error("Expected rawMode to be true after SetRaw()")
			}

			w, h, err := mock.Size()
			if err != nil {
				t.Errorf("Size() error = %v", err)
			}
			if w != tt.width || h != tt.height {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.width, tt.height)
			}

			for i, expected := range []rune(tt.input) {
				if !mock.Buffered() {
					t.Errorf("Expected Buffered() true before rune %d", i)
				}
				r, size, err := mock.ReadRune()
				if err != nil {
					t.Errorf("ReadRune() at position %d error = %v", i, err)
				}
				if r != expected {
					t.Errorf("Expected rune %c, got %c at position %d", expected, r, i)
				}
				if size != 1 {
					t.Errorf("Expected size 1, got %d at position %d", size, i)
				}
			}

			if mock.Buffered() {
				t.Error("Expected Buffered() false once input is consumed")
			}
			if _, _, err := mock.ReadRune(); !errors.Is(err, io.EOF) {
				t.Errorf("Expected io.EOF past end of input, got %v", err)
			}

			if err := mock.Restore(); err != nil {
				t.Errorf("Restore() error = %v", err)
			}
			if mock.rawMode {
				t.Error("Expected rawMode to be false after Restore()")
			}
		})
	}
}

func TestMockTerminalOutput(t *testing.T) {
	t.Parallel()

	mock := newMockTerminal("")
	if _, err := mock.Output().Write([]byte("rendered")); err != nil {
		t.Fatalf("Write error = %v", err)
	}
	if got := mock.output.String(); got != "rendered" {
		t.Errorf("Expected captured output %q, got %q", "rendered", got)
	}
}

func TestMockTerminalResizeEvents(t *testing.T) {
	t.Parallel()

	mock := newMockTerminal("")

	select {
	case <-mock.ResizeEvents():
		t.Error("Expected no resize event initially")
	default:
	}

	mock.resize <- struct{}{}
	select {
	case <-mock.ResizeEvents():
	default:
		t.Error("Expected injected resize event to be delivered")
	}
}

func TestMockTerminalClose(t *testing.T) {
	t.Parallel()

	mock := newMockTerminal("x")
	if err := mock.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// Close is safe to call multiple times.
	if err := mock.Close(); err != nil {
		t.Errorf("Second Close() error = %v", err)
	}
}
