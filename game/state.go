package game

// Phase is the engine's top-level state. Won and Lost look terminal but are
// transient: each runs a fixed-length effect and then the engine resets
// itself back to Playing. Resetting happens within a single Advance call and
// is never observable between frames.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns the phase name for logs and HUDs.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}
