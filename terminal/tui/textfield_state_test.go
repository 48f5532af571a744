package tui

import (
	"testing"

	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/stretchr/testify/assert"
)

// TestTextFieldEditing verifies insertion, cursor movement and deletion keys
func TestTextFieldEditing(t *testing.T) {
	tf := NewTextFieldState("")

	for _, r := range "hello world" {
		assert.True(t, tf.HandleKey(terminal.KeyRune, r, terminal.ModNone))
	}
	assert.Equal(t, "hello world", tf.Value())
	assert.Equal(t, 11, tf.Cursor)

	assert.True(t, tf.HandleKey(terminal.KeyLeft, 0, terminal.ModCtrl))
	assert.Equal(t, 6, tf.Cursor)

	assert.True(t, tf.HandleKey(terminal.KeyBackspace, 0, terminal.ModNone))
	assert.Equal(t, "helloworld", tf.Value())

	assert.True(t, tf.HandleKey(terminal.KeyHome, 0, terminal.ModNone))
	assert.False(t, tf.HandleKey(terminal.KeyBackspace, 0, terminal.ModNone), "backspace at start is a no-op")
	assert.True(t, tf.HandleKey(terminal.KeyDelete, 0, terminal.ModNone))
	assert.Equal(t, "elloworld", tf.Value())

	assert.True(t, tf.HandleKey(terminal.KeyEnd, 0, terminal.ModNone))
	assert.True(t, tf.HandleKey(terminal.KeyCtrlW, 0, terminal.ModCtrl))
	assert.Equal(t, "", tf.Value())
	assert.False(t, tf.HandleKey(terminal.KeyCtrlU, 0, terminal.ModCtrl))
}

// TestTextFieldRejectsModifiedRunes verifies ctrl and alt chords do not insert text
func TestTextFieldRejectsModifiedRunes(t *testing.T) {
	tf := NewTextFieldState("ab")
	assert.False(t, tf.HandleKey(terminal.KeyRune, 'c', terminal.ModCtrl))
	assert.False(t, tf.HandleKey(terminal.KeyRune, 'x', terminal.ModAlt))
	assert.False(t, tf.HandleKey(terminal.KeyF1, 0, terminal.ModNone))
	assert.True(t, tf.HandleKey(terminal.KeyRune, 'C', terminal.ModShift))
	assert.Equal(t, "abC", tf.Value())
}

// TestTextFieldInsertString verifies paste filtering and the length limit
func TestTextFieldInsertString(t *testing.T) {
	tf := NewTextFieldState("")
	tf.MaxLen = 6

	n := tf.InsertString("ab\ncd\tef gh")
	assert.Equal(t, 6, n)
	assert.Equal(t, "abcdef", tf.Value())
	assert.False(t, tf.Insert('z'))

	tf.SetValue("0123456789")
	assert.Equal(t, "012345", tf.Value())
	assert.Equal(t, 6, tf.Cursor)
}

// TestTextFieldScroll verifies the viewport follows the cursor
func TestTextFieldScroll(t *testing.T) {
	tf := NewTextFieldState("abcdefghij")
	tf.AdjustScroll(4)
	assert.Equal(t, 7, tf.Scroll)

	tf.HandleKey(terminal.KeyHome, 0, terminal.ModNone)
	tf.AdjustScroll(4)
	assert.Equal(t, 0, tf.Scroll)
}
