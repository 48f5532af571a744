package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/pulseshitter/terminal"
)

// Section names under the [keys] config table
const (
	SectionEdit   = "edit"
	SectionReview = "review"
)

// LoadKeyConfig parses key name → action name bindings into a sparse override KeyTable
// Only sections and keys present in the input are populated
// Ctrl+C is reserved for quit and cannot be bound
func LoadKeyConfig(sections map[string]map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	for name, bindings := range sections {
		keyMap, err := parseKeySection(name, bindings)
		if err != nil {
			return nil, err
		}
		switch name {
		case SectionEdit:
			kt.EditKeys = keyMap
		case SectionReview:
			kt.ReviewKeys = keyMap
		default:
			return nil, fmt.Errorf("unknown key section: [%s]", name)
		}
	}

	return kt, nil
}

// parseKeySection parses one section of terminal.Key name → action name bindings
func parseKeySection(section string, data map[string]string) (map[terminal.Key]IntentType, error) {
	result := make(map[terminal.Key]IntentType, len(data))

	for keyStr, actionName := range data {
		k, ok := terminal.KeyByName(strings.ToLower(keyStr))
		if !ok {
			return nil, fmt.Errorf("[%s] unknown key name: %q", section, keyStr)
		}
		if k == terminal.KeyCtrlC {
			return nil, fmt.Errorf("[%s] %q is reserved for quit", section, keyStr)
		}

		it, err := resolveAction(strings.ToLower(actionName))
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[k] = it
	}

	return result, nil
}
