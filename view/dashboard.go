package view

import (
	"github.com/lixenwraith/pulseshitter/terminal"
	"github.com/lixenwraith/pulseshitter/terminal/tui"
)

// DashboardNotImplemented is the panic value raised by every DashboardView method
const DashboardNotImplemented = "dashboard view not implemented"

// DashboardView is the post-setup state
// No transition reaches it yet; every method panics
type DashboardView struct{}

func (*DashboardView) Render(tui.Region) {
	panic(DashboardNotImplemented)
}

func (*DashboardView) HandleEvent(terminal.Event) {
	panic(DashboardNotImplemented)
}

func (*DashboardView) sealed() {}
