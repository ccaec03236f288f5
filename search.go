// Package histsearch implements an interactive reverse incremental search
// prompt over a stream of history entries, as used by shell line editors
// to jump to the most recent command matching a typed fragment.
package histsearch

import (
	"fmt"
	"os"
	"strings"
)

// endOfLine is the cursor position reported for the End key. The caller
// interprets any position past the entry as "end of line".
const endOfLine = 65536

// defaultLabel is the prompt label shown before the user's query.
const defaultLabel = "bck-i-search: "

// Status is the state of the prompt after handling a key event.
type Status int

// Prompt statuses. StatusSearching means the session continues; the other
// two are terminal.
const (
	StatusSearching Status = iota
	StatusSelected
	StatusCancelled
)

// Result is an accepted selection: the chosen entry, whether the caller
// should execute it immediately, and where to place the cursor within it.
type Result struct {
	Entry   string
	Execute bool
	Cursor  int
}

// Search is the incremental search prompt. It owns the accumulating query
// input, the restartable history stream, the current best match, and the
// terminal geometry, and converts key events into state transitions and
// redraws.
//
// A Search is created once per prompt session and is not safe for
// concurrent use; the event loop drives it from a single goroutine.
type Search struct {
	label        string
	input        []rune
	history      *ReplayBuffer[string]
	terminal     Terminal
	renderer     *renderer
	keyMap       *KeyMap
	colorScheme  *ColorScheme
	width        int
	height       int
	currentEntry string
	hasEntry     bool
}

// Option represents a configuration option for a Search.
type Option func(*Search)

// WithLabel sets the prompt label (default "bck-i-search: ").
func WithLabel(label string) Option {
	return func(s *Search) {
		s.label = label
	}
}

// WithColorScheme sets the color scheme.
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(s *Search) {
		s.colorScheme = colorScheme
	}
}

// WithKeyMap sets the key bindings.
func WithKeyMap(keyMap *KeyMap) Option {
	return func(s *Search) {
		s.keyMap = keyMap
	}
}

// WithInitialQuery pre-seeds the search input. The stream is searched for
// it before the first key event is read.
func WithInitialQuery(query string) Option {
	return func(s *Search) {
		s.input = []rune(query)
	}
}

// New creates a search prompt over the given history stream. It queries
// the terminal geometry once up front; a failing probe is fatal here
// because the renderer cannot lay out text without a width.
func New(terminal Terminal, history *ReplayBuffer[string], options ...Option) (*Search, error) {
	width, height, err := terminal.Size()
	if err != nil {
		return nil, fmt.Errorf("failed to query terminal size: %w", err)
	}

	s := &Search{
		label:       defaultLabel,
		history:     history,
		terminal:    terminal,
		keyMap:      NewDefaultKeyMap(),
		colorScheme: ThemeDefault,
		width:       width,
		height:      height,
	}
	for _, option := range options {
		option(s)
	}

	s.renderer = newRenderer(terminal.Output(), s.colorScheme, width)
	return s, nil
}

// Run drives the prompt to completion: it enters raw mode, redraws, and
// then blocks on key events, polling for resize notifications once per
// iteration. It returns the accepted result and true, or a zero Result
// and false when the user cancelled or key input ended.
func (s *Search) Run() (Result, bool, error) {
	if err := s.terminal.SetRaw(); err != nil {
		return Result{}, false, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := s.terminal.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
		}
	}()

	if len(s.input) > 0 {
		// Pre-seeded query: search before the first key event.
		s.update()
	} else {
		s.redraw()
	}

	for {
		select {
		case <-s.terminal.ResizeEvents():
			s.handleResize()
		default:
		}

		key, err := s.readKey()
		if err != nil {
			// End of key input behaves like cancellation.
			return Result{}, false, nil
		}

		switch status, result := s.HandleKey(key); status {
		case StatusSelected:
			return result, true, nil
		case StatusCancelled:
			return Result{}, false, nil
		}
	}
}

// HandleKey applies one key event to the search state and reports the
// resulting status. The Result is only meaningful for StatusSelected.
//
// Accept keys (Enter, Left, Right, Home, End) select the current match
// with a key-dependent cursor adjustment; without a match they cancel the
// session. Ctrl+R advances the scan from the last found position, while
// edits restart it from the beginning of the stream.
func (s *Search) HandleKey(key Key) (Status, Result) {
	switch key.Action {
	case ActionQuit:
		return StatusCancelled, Result{}

	case ActionAccept, ActionMoveLeft, ActionMoveRight, ActionMoveHome, ActionMoveEnd:
		if !s.hasEntry {
			// Accepting nothing is cancellation, not "select first entry".
			return StatusCancelled, Result{}
		}
		pos := matchEnd(s.currentEntry, string(s.input))
		return StatusSelected, Result{
			Entry:   s.currentEntry,
			Execute: key.Action == ActionAccept,
			Cursor:  adjustCursor(pos, key.Action),
		}

	case ActionSearchAgain:
		s.update()

	case ActionDeleteChar:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
		s.history.Reset()
		s.update()

	case ActionInsert:
		s.input = append(s.input, key.Rune)
		s.history.Reset()
		s.update()
	}

	return StatusSearching, Result{}
}

// Input returns the current query text.
func (s *Search) Input() string {
	return string(s.input)
}

// CurrentMatch returns the current best match, if any.
func (s *Search) CurrentMatch() (string, bool) {
	return s.currentEntry, s.hasEntry
}

// update scans the history stream forward from its current position for
// the next entry whose lowercase form contains the lowercase input, then
// redraws. An empty input matches the first entry scanned.
func (s *Search) update() {
	query := strings.ToLower(string(s.input))
	s.currentEntry = ""
	s.hasEntry = false
	for {
		entry, ok := s.history.Next()
		if !ok {
			break
		}
		if strings.Contains(strings.ToLower(entry), query) {
			s.currentEntry = entry
			s.hasEntry = true
			break
		}
	}
	s.redraw()
}

// handleResize re-queries the terminal geometry after a size-change
// notification. When the probe fails mid-session the last known geometry
// is kept; only the startup probe is fatal.
func (s *Search) handleResize() {
	width, height, err := s.terminal.Size()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: terminal size query failed: %v\r\n", err)
		return
	}
	if width != s.width {
		s.renderer.setWidth(width)
		s.renderer.recalcHeight(s.label + string(s.input))
	}
	s.width, s.height = width, height
}

func (s *Search) redraw() {
	// Write failures on a raw terminal are not actionable mid-session.
	_ = s.renderer.render(s.label, string(s.input), s.currentEntry, s.hasEntry)
}

// readKey decodes one key event from the terminal. A bare ESC with no
// buffered bytes behind it is the Escape key; otherwise the escape
// sequence is read and mapped through the key map.
func (s *Search) readKey() (Key, error) {
	r, _, err := s.terminal.ReadRune()
	if err != nil {
		return Key{}, err
	}

	if r == '\x1b' {
		if !s.terminal.Buffered() {
			return Key{Action: ActionQuit}, nil
		}
		seq, err := s.readEscapeSequence()
		if err != nil {
			// An unreadable sequence is skipped, not fatal.
			return Key{Action: ActionNone}, nil
		}
		return Key{Action: s.keyMap.GetSequenceAction(seq)}, nil
	}

	return Key{Action: s.keyMap.GetAction(r), Rune: r}, nil
}

// readEscapeSequence reads the remainder of an escape sequence after the
// initial ESC, bounded to avoid consuming unrelated input forever.
func (s *Search) readEscapeSequence() (string, error) {
	seq := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		r, _, err := s.terminal.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		str := string(seq)
		switch str {
		case "[A", "[B", "[C", "[D", "[H", "[F", "OH", "OF":
			return str, nil
		}
		if strings.HasSuffix(str, "~") && len(str) >= 3 {
			return str, nil
		}
		if len(seq) >= 3 && (seq[len(seq)-1] < '0' || seq[len(seq)-1] > '9') {
			return str, nil
		}
	}
	return string(seq), nil
}

// adjustCursor applies the accepting key's adjustment to the match-end
// position: Left one back (floored at zero), Right one forward, Home to
// the start, End to the end-of-line sentinel. Enter leaves it unchanged.
func adjustCursor(pos int, action KeyAction) int {
	switch action {
	case ActionMoveLeft:
		if pos > 0 {
			return pos - 1
		}
		return pos
	case ActionMoveRight:
		return pos + 1
	case ActionMoveHome:
		return 0
	case ActionMoveEnd:
		return endOfLine
	default:
		return pos
	}
}
