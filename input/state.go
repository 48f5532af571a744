package input

// InputMode mirrors the setup form phase for parser context
// Kept in sync by the owning view via SetMode()
type InputMode uint8

const (
	ModeEdit   InputMode = iota // Fields accept text and focus changes
	ModeReview                  // Form submitted; only reopen is accepted
)

// String returns the mode name
func (m InputMode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeReview:
		return "review"
	default:
		return "unknown"
	}
}
