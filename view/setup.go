package view

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"

	"github.com/lixenwraith/pulseshitter/input"
	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/lixenwraith/pulseshitter/terminal/tui"
)

// Setup field indices
const (
	FieldSpotifyClientID = iota
	FieldSpotifyClientSecret
	FieldDiscordClientID
	fieldCount
)

const (
	formSpacing  = 2
	clipTimeout  = 250 * time.Millisecond
	fieldMaxLen  = 128
	secretMask   = '•'
	setupTitle   = "Setup"
	setupIntro   = "Connect your Spotify and Discord applications"
	setupHint    = "Tab/↑↓ move · Enter next · Ctrl+V paste · Ctrl+C quit"
	completeHint = "Enter or Esc to edit · Ctrl+C quit"
)

var fieldLabels = [fieldCount]string{
	FieldSpotifyClientID:     "Spotify Client ID",
	FieldSpotifyClientSecret: "Spotify Client Secret",
	FieldDiscordClientID:     "Discord Client ID",
}

var fieldPlaceholders = [fieldCount]string{
	FieldSpotifyClientID:     "from developer.spotify.com/dashboard",
	FieldSpotifyClientSecret: "shown once when the app is created",
	FieldDiscordClientID:     "from discord.com/developers/applications",
}

var errClipboardTimeout = errors.New("clipboard read timed out")

// Feedback receives form outcome notifications, typically as sounds
type Feedback interface {
	Reject()
	Confirm()
}

type nopFeedback struct{}

func (nopFeedback) Reject()  {}
func (nopFeedback) Confirm() {}

// SetupValues is the collected configuration
type SetupValues struct {
	SpotifyClientID     string
	SpotifyClientSecret string
	DiscordClientID     string
}

// SetupOption configures a SetupView
type SetupOption func(*SetupView)

// WithTheme sets the colors used for rendering
func WithTheme(t tui.Theme) SetupOption {
	return func(v *SetupView) { v.theme = t }
}

// WithFeedback sets the reject/confirm sink
func WithFeedback(f Feedback) SetupOption {
	return func(v *SetupView) {
		if f != nil {
			v.feedback = f
		}
	}
}

// WithClipboard replaces the system clipboard reader used by Ctrl+V
func WithClipboard(read func() (string, error)) SetupOption {
	return func(v *SetupView) { v.readClipboard = read }
}

// WithKeyTable replaces the default form bindings
func WithKeyTable(kt *input.KeyTable) SetupOption {
	return func(v *SetupView) { v.machine = input.NewMachine(kt) }
}

// SetupView collects the client credentials
// Completing the form stays in Setup; the Dashboard transition is not wired
type SetupView struct {
	form          *tui.FormState
	machine       *input.Machine
	theme         tui.Theme
	feedback      Feedback
	readClipboard func() (string, error)
	clipTimeout   time.Duration

	formArea  tui.Region // Where the fields were last drawn, for mouse hit testing
	errMsg    string
	completed bool
	width     int
	height    int
}

// NewSetup creates the setup form with all fields empty and the first focused
func NewSetup(opts ...SetupOption) *SetupView {
	form := tui.NewFormState(fieldLabels[:]...)
	for i := range form.Fields {
		form.Fields[i].Placeholder = fieldPlaceholders[i]
		form.Fields[i].State.MaxLen = fieldMaxLen
	}
	form.Fields[FieldSpotifyClientSecret].Mask = secretMask

	v := &SetupView{
		form:          form,
		machine:       input.NewMachine(nil),
		theme:         tui.DefaultTheme,
		feedback:      nopFeedback{},
		readClipboard: clipboard.ReadAll,
		clipTimeout:   clipTimeout,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (*SetupView) sealed() {}

// Values returns the current field contents
func (v *SetupView) Values() SetupValues {
	return SetupValues{
		SpotifyClientID:     v.form.Value(FieldSpotifyClientID),
		SpotifyClientSecret: v.form.Value(FieldSpotifyClientSecret),
		DiscordClientID:     v.form.Value(FieldDiscordClientID),
	}
}

// Value returns one field's text
func (v *SetupView) Value(field int) string {
	return v.form.Value(field)
}

// Focus returns the focused field index
func (v *SetupView) Focus() int {
	return v.form.Focus
}

// Completed reports whether every field passed validation
func (v *SetupView) Completed() bool {
	return v.completed
}

// Err returns the inline validation message, empty when none
func (v *SetupView) Err() string {
	return v.errMsg
}

// Size returns the last terminal size seen in a resize event
func (v *SetupView) Size() (int, int) {
	return v.width, v.height
}

// HandleEvent applies one input event to the form
func (v *SetupView) HandleEvent(ev terminal.Event) {
	it := v.machine.Process(ev)
	if it == nil {
		return
	}

	switch it.Type {
	case input.IntentFocusNext:
		v.form.FocusNext()
	case input.IntentFocusPrev:
		v.form.FocusPrev()
	case input.IntentFocusAt:
		v.focusAt(it.X, it.Y)
	case input.IntentSubmit:
		v.submit()
	case input.IntentReopen:
		v.completed = false
		v.machine.SetMode(input.ModeEdit)
	case input.IntentClear:
		if f := v.form.CurrentField(); f != nil {
			f.Clear()
		}
	case input.IntentPaste:
		v.paste(it.Text)
	case input.IntentEdit:
		if f := v.form.CurrentField(); f != nil && f.HandleKey(ev.Key, ev.Rune, ev.Modifiers) {
			v.errMsg = ""
		}
	case input.IntentResize:
		v.width, v.height = it.X, it.Y
	}
}

func (v *SetupView) focusAt(x, y int) {
	if !v.formArea.Contains(x, y) {
		return
	}
	v.form.SetFocus(v.form.FieldAt(y-v.formArea.Y, formSpacing))
}

// submit advances focus, validating once Enter is pressed on the last field
func (v *SetupView) submit() {
	if v.form.Focus < len(v.form.Fields)-1 {
		v.form.FocusNext()
		return
	}

	if idx := v.form.FirstEmpty(); idx >= 0 {
		v.errMsg = fieldLabels[idx] + " is required"
		v.form.SetFocus(idx)
		v.feedback.Reject()
		return
	}

	v.errMsg = ""
	v.completed = true
	v.machine.SetMode(input.ModeReview)
	v.feedback.Confirm()
	log.Printf("setup: form completed")
}

// paste inserts text into the focused field, reading the clipboard when the event carried none
func (v *SetupView) paste(text string) {
	f := v.form.CurrentField()
	if f == nil {
		return
	}
	if text == "" {
		if v.readClipboard == nil {
			return
		}
		var err error
		text, err = v.clipboardText()
		if err != nil {
			log.Printf("setup: clipboard read: %v", err)
			v.errMsg = fmt.Sprintf("clipboard unavailable: %v", err)
			v.feedback.Reject()
			return
		}
	}
	if f.InsertString(text) > 0 {
		v.errMsg = ""
	}
}

// clipboardText runs the clipboard helper with a deadline, since it may shell out while the view is held
func (v *SetupView) clipboardText() (string, error) {
	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		text, err := v.readClipboard()
		ch <- result{text, err}
	}()

	select {
	case r := <-ch:
		return r.text, r.err
	case <-time.After(v.clipTimeout):
		return "", errClipboardTimeout
	}
}

// Render draws the form, or the completion summary, inside a titled card
func (v *SetupView) Render(r tui.Region) {
	if r.Empty() {
		return
	}
	t := v.theme
	inner := r.Card(setupTitle, tui.LineRounded, t.Accent)
	inner.Text(0, 0, setupIntro, t.Muted, terminal.RGBDefault, terminal.AttrNone)

	if v.completed {
		v.formArea = tui.Region{}
		v.renderSummary(inner.Sub(0, 2, inner.W, inner.H-2))
		inner.Text(0, inner.H-1, completeHint, t.Muted, terminal.RGBDefault, terminal.AttrDim)
		return
	}

	formH := len(v.form.Fields) * formSpacing
	v.formArea = inner.Sub(0, 2, inner.W, formH)
	v.formArea.Form(v.form, tui.FormOpts{
		Spacing: formSpacing,
		Style:   tui.FormStyleFrom(t),
	})

	if v.errMsg != "" {
		inner.Text(0, 2+formH, v.errMsg, t.Error, terminal.RGBDefault, terminal.AttrBold)
	}

	progress := fmt.Sprintf("%d/%d", v.filled(), fieldCount)
	if inner.W > tui.RuneLen(setupIntro)+tui.RuneLen(progress) {
		inner.TextRight(0, progress, t.Accent, terminal.RGBDefault, terminal.AttrNone)
	}
	if inner.H > 2+formH+2 {
		inner.HLine(inner.H-2, tui.LineSingle, t.Muted)
	}
	inner.Text(0, inner.H-1, setupHint, t.Muted, terminal.RGBDefault, terminal.AttrDim)
}

func (v *SetupView) filled() int {
	n := 0
	for _, field := range v.form.Fields {
		if !field.State.Empty() {
			n++
		}
	}
	return n
}

func (v *SetupView) renderSummary(r tui.Region) {
	t := v.theme
	r.Text(0, 0, "✓ Setup complete", t.Success, terminal.RGBDefault, terminal.AttrBold)
	for i, field := range v.form.Fields {
		value := field.State.Value()
		if field.Mask != 0 {
			value = tui.RepeatRune(field.Mask, len(field.State.Text))
		}
		y := 2 + i
		n := r.Text(0, y, field.Label+": ", t.Muted, terminal.RGBDefault, terminal.AttrNone)
		r.Text(n, y, value, t.Text, terminal.RGBDefault, terminal.AttrNone)
	}
}
