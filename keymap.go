package histsearch

// KeyAction represents the search-state transition a key triggers.
type KeyAction int

// Key action constants cover every transition the search prompt knows.
const (
	ActionNone KeyAction = iota
	ActionAccept
	ActionQuit
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionSearchAgain
	ActionDeleteChar
	ActionInsert
)

// Key is one decoded key event. Rune is only meaningful for ActionInsert.
type Key struct {
	Action KeyAction
	Rune   rune
}

// KeyMap holds the key binding configuration: single-rune bindings plus
// escape-sequence bindings (the sequence excludes the initial ESC).
type KeyMap struct {
	bindings  map[rune]KeyAction
	sequences map[string]KeyAction
}

// NewDefaultKeyMap creates the default bindings for the search prompt:
//
//   - Enter: accept the current match and execute it
//   - Escape, Ctrl+C, Ctrl+G: cancel the search
//   - Ctrl+R: advance to the next older match
//   - Backspace: delete the last input character
//   - Left/Right/Home/End: accept with cursor adjustment
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyAction),
		sequences: make(map[string]KeyAction),
	}

	km.bindings['\r'] = ActionAccept
	km.bindings['\n'] = ActionAccept
	km.bindings['\x03'] = ActionQuit        // Ctrl+C
	km.bindings['\x07'] = ActionQuit        // Ctrl+G
	km.bindings['\x12'] = ActionSearchAgain // Ctrl+R
	km.bindings['\x7f'] = ActionDeleteChar  // Backspace
	km.bindings['\b'] = ActionDeleteChar    // Backspace

	km.sequences["[C"] = ActionMoveRight
	km.sequences["[D"] = ActionMoveLeft
	km.sequences["[H"] = ActionMoveHome
	km.sequences["[F"] = ActionMoveEnd
	km.sequences["[1~"] = ActionMoveHome
	km.sequences["[4~"] = ActionMoveEnd
	km.sequences["OH"] = ActionMoveHome
	km.sequences["OF"] = ActionMoveEnd

	return km
}

// Bind adds or updates a single-rune binding.
func (km *KeyMap) Bind(key rune, action KeyAction) {
	km.bindings[key] = action
}

// BindSequence adds or updates an escape sequence binding. The sequence
// should not include the initial ESC character.
func (km *KeyMap) BindSequence(seq string, action KeyAction) {
	km.sequences[seq] = action
}

// GetAction returns the action bound to a rune. Unbound printable runes
// map to ActionInsert, unbound control runes to ActionNone.
func (km *KeyMap) GetAction(r rune) KeyAction {
	if km == nil || km.bindings == nil {
		return ActionNone
	}
	if action, exists := km.bindings[r]; exists {
		return action
	}
	if isPrintable(r) {
		return ActionInsert
	}
	return ActionNone
}

// GetSequenceAction returns the action for an escape sequence, or
// ActionNone if not bound.
func (km *KeyMap) GetSequenceAction(seq string) KeyAction {
	if km == nil || km.sequences == nil {
		return ActionNone
	}
	if action, exists := km.sequences[seq]; exists {
		return action
	}
	return ActionNone
}

func isPrintable(r rune) bool {
	return r >= 32 && r < 127 || r > 127
}
