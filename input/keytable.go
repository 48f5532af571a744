package input

import "github.com/lixenwraith/pulseshitter/terminal"

// KeyTable maps named keys to form actions per mode
// Keys absent from a mode's map fall through to field editing in edit mode, and are dropped in review mode
type KeyTable struct {
	EditKeys   map[terminal.Key]IntentType
	ReviewKeys map[terminal.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		EditKeys: map[terminal.Key]IntentType{
			terminal.KeyTab:     IntentFocusNext,
			terminal.KeyDown:    IntentFocusNext,
			terminal.KeyBacktab: IntentFocusPrev,
			terminal.KeyUp:      IntentFocusPrev,
			terminal.KeyEnter:   IntentSubmit,
			terminal.KeyCtrlV:   IntentPaste,
			terminal.KeyCtrlL:   IntentClear,
		},
		ReviewKeys: map[terminal.Key]IntentType{
			terminal.KeyEscape: IntentReopen,
			terminal.KeyEnter:  IntentReopen,
		},
	}
}

// Merge applies sparse overrides; IntentNone entries unbind the key
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	mergeKeys(kt.EditKeys, override.EditKeys)
	mergeKeys(kt.ReviewKeys, override.ReviewKeys)
}

func mergeKeys(dst, src map[terminal.Key]IntentType) {
	for k, v := range src {
		if v == IntentNone {
			delete(dst, k)
			continue
		}
		dst[k] = v
	}
}
