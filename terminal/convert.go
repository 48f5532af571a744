package terminal

import "github.com/gdamore/tcell/v2"

// keyMap translates tcell key codes; KeyRune is handled separately
var keyMap = map[tcell.Key]Key{
	tcell.KeyBacktab: KeyBacktab,
	tcell.KeyDelete:  KeyDelete,

	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPageUp,
	tcell.KeyPgDn:   KeyPageDown,
	tcell.KeyInsert: KeyInsert,

	tcell.KeyF1:  KeyF1,
	tcell.KeyF2:  KeyF2,
	tcell.KeyF3:  KeyF3,
	tcell.KeyF4:  KeyF4,
	tcell.KeyF5:  KeyF5,
	tcell.KeyF6:  KeyF6,
	tcell.KeyF7:  KeyF7,
	tcell.KeyF8:  KeyF8,
	tcell.KeyF9:  KeyF9,
	tcell.KeyF10: KeyF10,
	tcell.KeyF11: KeyF11,
	tcell.KeyF12: KeyF12,

	tcell.KeyCtrlSpace:      KeyCtrlSpace,
	tcell.KeyCtrlBackslash:  KeyCtrlBackslash,
	tcell.KeyCtrlRightSq:    KeyCtrlBracketRight,
	tcell.KeyCtrlCarat:      KeyCtrlCaret,
	tcell.KeyCtrlUnderscore: KeyCtrlUnderscore,
}

func init() {
	for i := 0; i < 26; i++ {
		keyMap[tcell.KeyCtrlA+tcell.Key(i)] = KeyCtrlA + Key(i)
		// Raw ASCII control codes, as produced by byte-level injection
		keyMap[tcell.KeySOH+tcell.Key(i)] = KeyCtrlA + Key(i)
	}
	keyMap[tcell.KeyNUL] = KeyCtrlSpace
	keyMap[tcell.KeyCtrlLeftSq] = KeyEscape
	// Control codes shared with typeable keys take the key meaning
	keyMap[tcell.KeyBackspace] = KeyBackspace
	keyMap[tcell.KeyBackspace2] = KeyBackspace
	keyMap[tcell.KeyTab] = KeyTab
	keyMap[tcell.KeyEnter] = KeyEnter
	keyMap[tcell.KeyEsc] = KeyEscape
}

func convertMod(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	return out
}

func convertKey(ev *tcell.EventKey) Event {
	mod := convertMod(ev.Modifiers())
	if ev.Key() == tcell.KeyRune {
		return RuneEvent(ev.Rune(), mod)
	}
	if k, ok := keyMap[ev.Key()]; ok {
		return KeyEvent(k, mod)
	}
	return KeyEvent(KeyNone, mod)
}

const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3

// convertMouse derives press, release, drag and move from button state transitions
func (s *Screen) convertMouse(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	btns := ev.Buttons()
	out := Event{
		Type:      EventMouse,
		MouseX:    x,
		MouseY:    y,
		Modifiers: convertMod(ev.Modifiers()),
	}

	switch {
	case btns&tcell.WheelUp != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelUp, MouseActionPress
		return out
	case btns&tcell.WheelDown != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelDown, MouseActionPress
		return out
	case btns&tcell.WheelLeft != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelLeft, MouseActionPress
		return out
	case btns&tcell.WheelRight != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelRight, MouseActionPress
		return out
	}

	pressed := btns & buttonMask
	prev := s.lastButtons
	s.lastButtons = pressed

	switch {
	case pressed == 0 && prev == 0:
		out.MouseAction = MouseActionMove
	case pressed == 0:
		out.MouseBtn, out.MouseAction = buttonOf(prev), MouseActionRelease
	case pressed == prev:
		out.MouseBtn, out.MouseAction = buttonOf(pressed), MouseActionDrag
	default:
		newly := pressed &^ prev
		if newly == 0 {
			// A button was released while another stays held
			out.MouseBtn, out.MouseAction = buttonOf(prev&^pressed), MouseActionRelease
		} else {
			out.MouseBtn, out.MouseAction = buttonOf(newly), MouseActionPress
		}
	}
	return out
}

func buttonOf(m tcell.ButtonMask) MouseButton {
	switch {
	case m&tcell.Button1 != 0:
		return MouseBtnLeft
	case m&tcell.Button3 != 0:
		return MouseBtnMiddle
	case m&tcell.Button2 != 0:
		return MouseBtnRight
	}
	return MouseBtnNone
}
