package config

import (
	"fmt"

	"github.com/lixenwraith/pulseshitter/input"
)

// KeyTable merges [keys] overrides onto the default form bindings
func (c Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return kt, nil
	}
	overrides, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	kt.Merge(overrides)
	return kt, nil
}
