package linenoise

// KeyAction represents the action to perform when a key is pressed
type KeyAction int

// Key action constants define the actions that can be performed when keys are pressed
const (
	ActionNone KeyAction = iota
	ActionSubmit
	ActionCancel
	ActionDeleteOrEOF
	ActionBackspace
	ActionDeleteChar
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionMoveWordLeft
	ActionMoveWordRight
	ActionHistoryPrev
	ActionHistoryNext
	ActionDeleteToEnd
	ActionDeleteLine
	ActionDeleteWordBack
	ActionSwapChars
	ActionClearScreen
	ActionComplete
)

// KeyMap holds the key binding configuration
type KeyMap struct {
	bindings  map[rune]KeyAction
	sequences map[string]KeyAction
}

// NewDefaultKeyMap creates the default, emacs-style key bindings.
//
// Default key bindings:
//   - Enter: Submit input
//   - Ctrl+C: Cancel (interrupt)
//   - Ctrl+D: Delete character under cursor, or end of input on an empty line
//   - Ctrl+A / Home: Move to beginning of line
//   - Ctrl+E / End: Move to end of line
//   - Ctrl+B / Ctrl+F / Left / Right: Move by character
//   - Ctrl+P / Ctrl+N / Up / Down: Previous / next history entry
//   - Ctrl+K: Delete from cursor to end of line
//   - Ctrl+U: Delete entire line
//   - Ctrl+W: Delete word backwards
//   - Ctrl+T: Swap the character before the cursor with the one under it
//   - Ctrl+L: Clear screen
//   - Tab: Completion
//   - Backspace / Ctrl+H: Delete character backwards
//   - Delete: Delete character forwards
//   - Ctrl+Left/Right: Move by word
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyAction),
		sequences: make(map[string]KeyAction),
	}

	km.bindings['\r'] = ActionSubmit
	km.bindings['\n'] = ActionSubmit
	km.bindings['\x03'] = ActionCancel      // Ctrl+C
	km.bindings['\x04'] = ActionDeleteOrEOF // Ctrl+D
	km.bindings['\x01'] = ActionMoveHome    // Ctrl+A
	km.bindings['\x05'] = ActionMoveEnd     // Ctrl+E
	km.bindings['\x02'] = ActionMoveLeft    // Ctrl+B
	km.bindings['\x06'] = ActionMoveRight   // Ctrl+F
	km.bindings['\x10'] = ActionHistoryPrev // Ctrl+P
	km.bindings['\x0E'] = ActionHistoryNext // Ctrl+N
	km.bindings['\x0B'] = ActionDeleteToEnd // Ctrl+K
	km.bindings['\x15'] = ActionDeleteLine  // Ctrl+U
	km.bindings['\x17'] = ActionDeleteWordBack
	km.bindings['\x14'] = ActionSwapChars   // Ctrl+T
	km.bindings['\x0C'] = ActionClearScreen // Ctrl+L
	km.bindings['\t'] = ActionComplete
	km.bindings['\x7f'] = ActionBackspace
	km.bindings['\b'] = ActionBackspace

	// Escape sequences
	km.sequences["[A"] = ActionHistoryPrev
	km.sequences["[B"] = ActionHistoryNext
	km.sequences["[C"] = ActionMoveRight
	km.sequences["[D"] = ActionMoveLeft
	km.sequences["[H"] = ActionMoveHome
	km.sequences["[F"] = ActionMoveEnd
	km.sequences["OH"] = ActionMoveHome
	km.sequences["OF"] = ActionMoveEnd
	km.sequences["[1~"] = ActionMoveHome
	km.sequences["[4~"] = ActionMoveEnd
	km.sequences["[3~"] = ActionDeleteChar
	km.sequences["[1;5C"] = ActionMoveWordRight // Ctrl+Right
	km.sequences["[1;5D"] = ActionMoveWordLeft  // Ctrl+Left

	return km
}

// Bind adds or updates a key binding for a single character.
//
// Example:
//
//	keyMap := linenoise.NewDefaultKeyMap()
//	// Ctrl+G clears the line instead of being ignored
//	keyMap.Bind('\x07', linenoise.ActionDeleteLine)
func (km *KeyMap) Bind(key rune, action KeyAction) {
	km.bindings[key] = action
}

// BindSequence adds or updates an escape sequence binding.
// The sequence should not include the initial ESC character.
//
// Example:
//
//	keyMap := linenoise.NewDefaultKeyMap()
//	// Shift+Tab (ESC [ Z) also completes
//	keyMap.BindSequence("[Z", linenoise.ActionComplete)
func (km *KeyMap) BindSequence(seq string, action KeyAction) {
	km.sequences[seq] = action
}

// GetAction returns the action for a key, or ActionNone if not bound
func (km *KeyMap) GetAction(key rune) KeyAction {
	if km == nil || km.bindings == nil {
		return ActionNone
	}
	if action, exists := km.bindings[key]; exists {
		return action
	}
	return ActionNone
}

// GetSequenceAction returns the action for an escape sequence, or ActionNone if not bound
func (km *KeyMap) GetSequenceAction(seq string) KeyAction {
	if km == nil || km.sequences == nil {
		return ActionNone
	}
	if action, exists := km.sequences[seq]; exists {
		return action
	}
	return ActionNone
}
