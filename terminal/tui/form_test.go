package tui

import (
	"testing"

	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormFocusNavigation verifies Tab, Backtab and arrows cycle focus
func TestFormFocusNavigation(t *testing.T) {
	f := NewFormState("a", "b", "c")

	f.HandleKey(terminal.KeyTab, 0, terminal.ModNone)
	assert.Equal(t, 1, f.Focus)
	f.HandleKey(terminal.KeyDown, 0, terminal.ModNone)
	assert.Equal(t, 2, f.Focus)
	f.HandleKey(terminal.KeyTab, 0, terminal.ModNone)
	assert.Equal(t, 0, f.Focus)
	f.HandleKey(terminal.KeyBacktab, 0, terminal.ModShift)
	assert.Equal(t, 2, f.Focus)
	f.HandleKey(terminal.KeyUp, 0, terminal.ModNone)
	assert.Equal(t, 1, f.Focus)

	f.HandleKey(terminal.KeyRune, 'x', terminal.ModNone)
	assert.Equal(t, "x", f.Value(1))
	assert.Equal(t, 0, f.FirstEmpty())
}

// TestFormFieldAt verifies row hit testing with spacing
func TestFormFieldAt(t *testing.T) {
	f := NewFormState("a", "b", "c")

	assert.Equal(t, 0, f.FieldAt(0, 2))
	assert.Equal(t, -1, f.FieldAt(1, 2))
	assert.Equal(t, 2, f.FieldAt(4, 2))
	assert.Equal(t, -1, f.FieldAt(6, 2))
	assert.Equal(t, -1, f.FieldAt(-1, 2))
	assert.Equal(t, 1, f.FieldAt(1, 0))
}

// TestFormRenderMasksAndCursor verifies masked fields and the cursor cell
func TestFormRenderMasksAndCursor(t *testing.T) {
	f := NewFormState("id", "secret")
	f.Fields[1].Mask = '•'
	f.SetValue(0, "abc")
	f.SetValue(1, "xyz")
	f.SetFocus(1)

	r := newTestRegion(20, 4)
	r.Clear()
	style := FormStyleFrom(DefaultTheme)
	used := r.Form(f, FormOpts{Spacing: 2, Style: style})
	require.Equal(t, 4, used)

	// Label column is "secret" + 2
	assert.Equal(t, "id:", rowString(r, 0)[:3])
	assert.Equal(t, 'a', r.Get(8, 0).Rune)
	assert.Equal(t, '•', r.Get(8, 2).Rune)
	assert.Equal(t, '•', r.Get(10, 2).Rune)

	cursor := r.Get(11, 2)
	assert.Equal(t, style.CursorBg, cursor.Bg)
	assert.Equal(t, style.FocusBg, r.Get(12, 2).Bg)
	assert.Equal(t, style.FieldBg, r.Get(12, 0).Bg)
}

// TestFormPlaceholder verifies placeholders show only on unfocused empty fields
func TestFormPlaceholder(t *testing.T) {
	f := NewFormState("one", "two")
	f.Fields[0].Placeholder = "p0"
	f.Fields[1].Placeholder = "p1"

	r := newTestRegion(20, 2)
	r.Clear()
	r.Form(f, FormOpts{})

	assert.Equal(t, ' ', r.Get(5, 0).Rune)
	assert.Equal(t, 'p', r.Get(5, 1).Rune)
	assert.Equal(t, '1', r.Get(6, 1).Rune)
}
