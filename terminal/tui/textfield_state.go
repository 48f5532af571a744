package tui

import (
	"unicode"

	"github.com/lixenwraith/pulseshitter/terminal"
)

// isWordChar returns true for word-constituent characters
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextFieldState holds single-line editable text
type TextFieldState struct {
	Text   []rune
	Cursor int // Rune index the cursor sits before
	Scroll int // First visible rune index
	MaxLen int // Rune limit, 0 for unlimited
}

// NewTextFieldState creates a field with the cursor after the initial text
func NewTextFieldState(initial string) *TextFieldState {
	runes := []rune(initial)
	return &TextFieldState{
		Text:   runes,
		Cursor: len(runes),
	}
}

// Value returns current text as string
func (t *TextFieldState) Value() string {
	return string(t.Text)
}

// SetValue replaces text and moves cursor to end
func (t *TextFieldState) SetValue(s string) {
	t.Text = t.Text[:0]
	t.Cursor = 0
	t.Scroll = 0
	t.InsertString(s)
}

// Clear empties the field
func (t *TextFieldState) Clear() {
	t.Text = nil
	t.Cursor = 0
	t.Scroll = 0
}

// Empty reports whether the field has no text
func (t *TextFieldState) Empty() bool {
	return len(t.Text) == 0
}

func (t *TextFieldState) room() int {
	if t.MaxLen <= 0 {
		return int(^uint(0) >> 1)
	}
	return t.MaxLen - len(t.Text)
}

// Insert adds a printable rune at the cursor, returns false when rejected
func (t *TextFieldState) Insert(r rune) bool {
	if !unicode.IsPrint(r) || t.room() < 1 {
		return false
	}
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
	return true
}

// InsertString inserts the printable runes of s at the cursor
// Line breaks and other control characters are dropped, input beyond MaxLen is cut
func (t *TextFieldState) InsertString(s string) int {
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsPrint(r) {
			runes = append(runes, r)
		}
	}
	if n := t.room(); len(runes) > n {
		runes = runes[:n]
	}
	if len(runes) == 0 {
		return 0
	}
	t.Text = append(t.Text[:t.Cursor], append(runes, t.Text[t.Cursor:]...)...)
	t.Cursor += len(runes)
	return len(runes)
}

// DeleteBackward removes rune before cursor
func (t *TextFieldState) DeleteBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
	t.Cursor--
	return true
}

// DeleteForward removes rune at cursor
func (t *TextFieldState) DeleteForward() bool {
	if t.Cursor >= len(t.Text) {
		return false
	}
	t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
	return true
}

// DeleteWordBackward removes the word before the cursor along with trailing separators
func (t *TextFieldState) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	start := t.wordStart()
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	return true
}

// DeleteToEnd removes from cursor to end
func (t *TextFieldState) DeleteToEnd() bool {
	if t.Cursor >= len(t.Text) {
		return false
	}
	t.Text = t.Text[:t.Cursor]
	return true
}

// DeleteToStart removes from start to cursor
func (t *TextFieldState) DeleteToStart() bool {
	if t.Cursor == 0 {
		return false
	}
	t.Text = t.Text[t.Cursor:]
	t.Cursor = 0
	t.Scroll = 0
	return true
}

// wordStart finds the boundary Ctrl+W and Ctrl+Left stop at
func (t *TextFieldState) wordStart() int {
	i := t.Cursor
	for i > 0 && !isWordChar(t.Text[i-1]) {
		i--
	}
	for i > 0 && isWordChar(t.Text[i-1]) {
		i--
	}
	return i
}

func (t *TextFieldState) wordEnd() int {
	i := t.Cursor
	for i < len(t.Text) && isWordChar(t.Text[i]) {
		i++
	}
	for i < len(t.Text) && !isWordChar(t.Text[i]) {
		i++
	}
	return i
}

// AdjustScroll updates scroll to keep cursor visible within viewport width
func (t *TextFieldState) AdjustScroll(viewportW int) {
	if viewportW <= 0 {
		return
	}
	if t.Cursor < t.Scroll {
		t.Scroll = t.Cursor
	}
	if t.Cursor >= t.Scroll+viewportW {
		t.Scroll = t.Cursor - viewportW + 1
	}
	if t.Scroll < 0 {
		t.Scroll = 0
	}
}

// HandleKey applies an editing key, returns true if text or cursor changed
func (t *TextFieldState) HandleKey(key terminal.Key, r rune, mod terminal.Modifier) bool {
	prevCursor, prevLen := t.Cursor, len(t.Text)

	switch key {
	case terminal.KeyLeft:
		if mod&terminal.ModCtrl != 0 {
			t.Cursor = t.wordStart()
		} else if t.Cursor > 0 {
			t.Cursor--
		}
	case terminal.KeyRight:
		if mod&terminal.ModCtrl != 0 {
			t.Cursor = t.wordEnd()
		} else if t.Cursor < len(t.Text) {
			t.Cursor++
		}
	case terminal.KeyHome, terminal.KeyCtrlA:
		t.Cursor = 0
	case terminal.KeyEnd, terminal.KeyCtrlE:
		t.Cursor = len(t.Text)
	case terminal.KeyBackspace:
		if mod&terminal.ModCtrl != 0 {
			return t.DeleteWordBackward()
		}
		return t.DeleteBackward()
	case terminal.KeyDelete:
		return t.DeleteForward()
	case terminal.KeyCtrlK:
		return t.DeleteToEnd()
	case terminal.KeyCtrlU:
		return t.DeleteToStart()
	case terminal.KeyCtrlW:
		return t.DeleteWordBackward()
	case terminal.KeyRune:
		if mod&(terminal.ModCtrl|terminal.ModAlt) != 0 {
			return false
		}
		return t.Insert(r)
	default:
		return false
	}
	return t.Cursor != prevCursor || len(t.Text) != prevLen
}
