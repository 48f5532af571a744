package input

import (
	"github.com/lixenwraith/pulseshitter/terminal"
)

// Machine is the form input parser
// Parses terminal.Event into semantic Intent
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
}

// NewMachine creates a parser with the given bindings, nil for defaults
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{
		mode:     ModeEdit,
		keyTable: kt,
	}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the current parser mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Process parses a terminal event and returns an Intent
// Returns nil for events the form ignores
func (m *Machine) Process(ev terminal.Event) *Intent {
	switch ev.Type {
	case terminal.EventResize:
		return &Intent{Type: IntentResize, X: ev.Width, Y: ev.Height, Event: ev}
	case terminal.EventKey:
		return m.processKey(ev)
	case terminal.EventMouse:
		return m.processMouse(ev)
	case terminal.EventPaste:
		if m.mode == ModeEdit {
			return &Intent{Type: IntentPaste, Text: ev.Text, Event: ev}
		}
	}
	return nil
}

func (m *Machine) processKey(ev terminal.Event) *Intent {
	switch m.mode {
	case ModeEdit:
		if it, ok := m.keyTable.EditKeys[ev.Key]; ok && ev.Key != terminal.KeyRune {
			return &Intent{Type: it, Event: ev}
		}
		return &Intent{Type: IntentEdit, Event: ev}
	case ModeReview:
		if it, ok := m.keyTable.ReviewKeys[ev.Key]; ok && ev.Key != terminal.KeyRune {
			return &Intent{Type: it, Event: ev}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev terminal.Event) *Intent {
	if m.mode != ModeEdit {
		return nil
	}
	if ev.MouseBtn == terminal.MouseBtnLeft && ev.MouseAction == terminal.MouseActionPress {
		return &Intent{Type: IntentFocusAt, X: ev.MouseX, Y: ev.MouseY, Event: ev}
	}
	return nil
}
