package terminal

// Raw sequences for crash-path restoration, written without going through the surface
var (
	csiRIS  = []byte("\x1bc") // Reset to Initial State
	csiSGR0 = []byte("\x1b[0m")

	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiAutoWrapOn     = []byte("\x1b[?7h")
	csiBracketPasteOff = []byte("\x1b[?2004l")

	// Mouse reporting, disabled in reverse order of enable
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
)
