// Package game runs the turn-based simulation: bootstrap, systems and the
// Running/Paused scheduler.
package game

// RunState is the scheduler state.
type RunState int

const (
	// StateRunning runs one world tick on the next step.
	StateRunning RunState = iota
	// StatePaused waits for a player intent on the next step.
	StatePaused
)

// String returns a human-readable state name.
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
