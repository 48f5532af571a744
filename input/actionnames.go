package input

import "fmt"

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry map[string]IntentType

func init() {
	actionRegistry = buildActionRegistry()
}

// buildActionRegistry lists bindable actions only; focus_at, edit and resize are event-driven
func buildActionRegistry() map[string]IntentType {
	return map[string]IntentType{
		// Unbind sentinel
		"none": IntentNone,

		"focus_next": IntentFocusNext,
		"focus_prev": IntentFocusPrev,
		"submit":     IntentSubmit,
		"reopen":     IntentReopen,
		"clear":      IntentClear,
		"paste":      IntentPaste,
	}
}

// resolveAction looks up an action name
func resolveAction(name string) (IntentType, error) {
	it, ok := actionRegistry[name]
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return it, nil
}
