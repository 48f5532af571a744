package tui

import "github.com/lixenwraith/pulseshitter/terminal"

// FormField pairs a label with an editable text field
type FormField struct {
	Label       string
	Placeholder string // Shown dimmed while the field is empty
	Mask        rune   // Replaces every rune on screen when non-zero
	State       *TextFieldState
}

// FormState holds state for a multi-field form with focus tracking
type FormState struct {
	Fields []FormField
	Focus  int
}

// NewFormState creates a form with labeled fields initialized to empty values
func NewFormState(labels ...string) *FormState {
	fields := make([]FormField, len(labels))
	for i, label := range labels {
		fields[i] = FormField{
			Label: label,
			State: NewTextFieldState(""),
		}
	}
	return &FormState{Fields: fields}
}

// Value returns the text value of the field at idx
func (f *FormState) Value(idx int) string {
	if idx >= 0 && idx < len(f.Fields) {
		return f.Fields[idx].State.Value()
	}
	return ""
}

// SetValue replaces the text of the field at idx
func (f *FormState) SetValue(idx int, val string) {
	if idx >= 0 && idx < len(f.Fields) {
		f.Fields[idx].State.SetValue(val)
	}
}

// FirstEmpty returns the index of the first empty field, -1 when all are filled
func (f *FormState) FirstEmpty() int {
	for i, field := range f.Fields {
		if field.State.Empty() {
			return i
		}
	}
	return -1
}

// FocusNext moves focus to the next field, wrapping around
func (f *FormState) FocusNext() {
	if len(f.Fields) > 0 {
		f.Focus = (f.Focus + 1) % len(f.Fields)
	}
}

// FocusPrev moves focus to the previous field, wrapping around
func (f *FormState) FocusPrev() {
	if len(f.Fields) > 0 {
		f.Focus = (f.Focus - 1 + len(f.Fields)) % len(f.Fields)
	}
}

// SetFocus focuses the field at idx, ignoring out-of-range values
func (f *FormState) SetFocus(idx int) bool {
	if idx < 0 || idx >= len(f.Fields) {
		return false
	}
	f.Focus = idx
	return true
}

// CurrentField returns the TextFieldState of the focused field, or nil
func (f *FormState) CurrentField() *TextFieldState {
	if f.Focus >= 0 && f.Focus < len(f.Fields) {
		return f.Fields[f.Focus].State
	}
	return nil
}

// FieldAt maps a form-relative row to a field index, -1 for gaps and rows past the end
func (f *FormState) FieldAt(row, spacing int) int {
	if spacing < 1 {
		spacing = 1
	}
	if row < 0 || row%spacing != 0 {
		return -1
	}
	idx := row / spacing
	if idx >= len(f.Fields) {
		return -1
	}
	return idx
}

// HandleKey processes keyboard input for form navigation and field editing, returns true if state changed
func (f *FormState) HandleKey(key terminal.Key, r rune, mod terminal.Modifier) bool {
	switch key {
	case terminal.KeyTab:
		if mod&terminal.ModShift != 0 {
			f.FocusPrev()
		} else {
			f.FocusNext()
		}
		return true
	case terminal.KeyBacktab, terminal.KeyUp:
		f.FocusPrev()
		return true
	case terminal.KeyDown:
		f.FocusNext()
		return true
	default:
		if field := f.CurrentField(); field != nil {
			return field.HandleKey(key, r, mod)
		}
	}
	return false
}

// FormOpts configures form rendering
type FormOpts struct {
	LabelWidth int
	Spacing    int
	Style      FormStyle
}

// FormStyle defines form colors
type FormStyle struct {
	LabelFg       terminal.RGB
	FieldFg       terminal.RGB
	FieldBg       terminal.RGB
	FocusBg       terminal.RGB
	CursorFg      terminal.RGB
	CursorBg      terminal.RGB
	PlaceholderFg terminal.RGB
}

// FormStyleFrom derives form colors from a theme
func FormStyleFrom(t Theme) FormStyle {
	return FormStyle{
		LabelFg:       t.Muted,
		FieldFg:       t.Text,
		FieldBg:       t.FieldBg,
		FocusBg:       t.FocusBg,
		CursorFg:      t.FieldBg,
		CursorBg:      t.Accent,
		PlaceholderFg: t.Muted,
	}
}

// Form renders a multi-field form with labels and editable text fields, returns height used
func (r Region) Form(state *FormState, opts FormOpts) int {
	if len(state.Fields) == 0 || r.H < 1 {
		return 0
	}

	style := opts.Style
	if style == (FormStyle{}) {
		style = FormStyleFrom(DefaultTheme)
	}

	labelW := opts.LabelWidth
	if labelW <= 0 {
		for _, f := range state.Fields {
			if w := RuneLen(f.Label); w > labelW {
				labelW = w
			}
		}
		labelW += 2
	}

	spacing := opts.Spacing
	if spacing < 1 {
		spacing = 1
	}

	y := 0
	for i, field := range state.Fields {
		if y >= r.H {
			break
		}
		r.formRow(field, i == state.Focus, y, labelW, style)
		y += spacing
	}

	return y
}

func (r Region) formRow(field FormField, focused bool, y, labelW int, style FormStyle) {
	r.Sub(0, y, labelW, 1).Text(0, 0, field.Label+":", style.LabelFg, terminal.RGBDefault, terminal.AttrNone)

	fieldW := r.W - labelW
	if fieldW < 1 {
		return
	}
	row := r.Sub(labelW, y, fieldW, 1)

	bg := style.FieldBg
	if focused {
		bg = style.FocusBg
	}
	row.Fill(bg)

	st := field.State
	if st.Empty() && field.Placeholder != "" && !focused {
		row.Text(0, 0, field.Placeholder, style.PlaceholderFg, bg, terminal.AttrItalic)
		return
	}

	st.AdjustScroll(fieldW)
	for x := 0; x < fieldW; x++ {
		idx := st.Scroll + x
		ch := ' '
		if idx < len(st.Text) {
			ch = st.Text[idx]
			if field.Mask != 0 {
				ch = field.Mask
			}
		}

		fg := style.FieldFg
		cellBg := bg
		if focused && idx == st.Cursor {
			fg, cellBg = style.CursorFg, style.CursorBg
		}
		row.Cell(x, 0, ch, fg, cellBg, terminal.AttrNone)
	}
}
