// Package view holds the closed set of UI states the render loop dispatches to.
package view

import (
	"fmt"

	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/lixenwraith/pulseshitter/terminal/tui"
)

// View is the capability contract every UI state implements
// The set is closed: only types in this package satisfy it
type View interface {
	// Render draws the view into the body region
	Render(r tui.Region)

	// HandleEvent consumes one input event; Ctrl+C never reaches here
	HandleEvent(ev terminal.Event)

	sealed()
}

// Kind names a View variant
type Kind uint8

const (
	KindSetup Kind = iota
	KindDashboard
)

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case KindSetup:
		return "setup"
	case KindDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// KindOf reports the variant of v
func KindOf(v View) Kind {
	switch v.(type) {
	case *SetupView:
		return KindSetup
	case *DashboardView:
		return KindDashboard
	default:
		panic(fmt.Sprintf("view: unknown variant %T", v))
	}
}

// Default returns the initial view: Setup in its default state
func Default(opts ...SetupOption) View {
	return NewSetup(opts...)
}
