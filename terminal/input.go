package terminal

import (
	"fmt"
	"strings"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventResize
	EventPaste // Bracketed paste, content in Text
	EventFocus
	EventError  // Read error
	EventClosed // Input closed
)

// String returns the event category name
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventPaste:
		return "paste"
	case EventFocus:
		return "focus"
	case EventError:
		return "error"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event represents a terminal input event
// Decoded once at the platform boundary, then passed through unmodified
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int    // For EventResize
	Height    int    // For EventResize
	Text      string // For EventPaste
	Focused   bool   // For EventFocus
	Err       error  // For EventError

	// Mouse event fields
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// KeyEvent builds a key press event for a named key
func KeyEvent(key Key, mod Modifier) Event {
	return Event{Type: EventKey, Key: key, Modifiers: mod}
}

// RuneEvent builds a key press event for a printable character
func RuneEvent(r rune, mod Modifier) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r, Modifiers: mod}
}

// IsQuit reports whether the event is the global quit hotkey (Ctrl+C)
// Accepts both the control-code form and rune 'c' carrying exactly the Ctrl modifier
func (e Event) IsQuit() bool {
	if e.Type != EventKey {
		return false
	}
	if e.Key == KeyCtrlC {
		return true
	}
	return e.Key == KeyRune && e.Rune == 'c' && e.Modifiers == ModCtrl
}

// String renders a compact description for logs
func (e Event) String() string {
	switch e.Type {
	case EventKey:
		var b strings.Builder
		if mods := e.Modifiers.String(); mods != "" {
			b.WriteString(mods)
			b.WriteByte('+')
		}
		if e.Key == KeyRune {
			fmt.Fprintf(&b, "%q", e.Rune)
		} else {
			b.WriteString(e.Key.String())
		}
		return "key(" + b.String() + ")"
	case EventMouse:
		return fmt.Sprintf("mouse(%s %s @%d,%d)", e.MouseBtn, e.MouseAction, e.MouseX, e.MouseY)
	case EventResize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	case EventPaste:
		return fmt.Sprintf("paste(%d bytes)", len(e.Text))
	case EventFocus:
		return fmt.Sprintf("focus(%t)", e.Focused)
	case EventError:
		return fmt.Sprintf("error(%v)", e.Err)
	default:
		return e.Type.String()
	}
}
