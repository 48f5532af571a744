package input

import "github.com/lixenwraith/pulseshitter/terminal"

// IntentType discriminates semantic form actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Focus
	IntentFocusNext // Tab, Down
	IntentFocusPrev // Shift+Tab, Up
	IntentFocusAt   // Left click; X, Y carry absolute cell coordinates

	// Form
	IntentSubmit // Enter: advance, or validate on the last field
	IntentReopen // Escape in review mode
	IntentClear  // Clear the focused field

	// Text
	IntentPaste // Ctrl+V or bracketed paste; Text set when the terminal supplied it
	IntentEdit  // Editing key forwarded to the focused field; Event carries it

	IntentResize // Terminal resize; X, Y carry the new size
)

var intentNames = [...]string{
	IntentNone:      "none",
	IntentFocusNext: "focus_next",
	IntentFocusPrev: "focus_prev",
	IntentFocusAt:   "focus_at",
	IntentSubmit:    "submit",
	IntentReopen:    "reopen",
	IntentClear:     "clear",
	IntentPaste:     "paste",
	IntentEdit:      "edit",
	IntentResize:    "resize",
}

// String returns the canonical action name
func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a parsed form action
type Intent struct {
	Type  IntentType
	X, Y  int
	Text  string
	Event terminal.Event
}
