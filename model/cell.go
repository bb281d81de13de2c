package model

// CellState is the recorded state of a single board cell
type CellState int8

const (
	Dead CellState = iota
	Alive
	// PendingBirth marks a dead cell that comes alive when the current update commits
	PendingBirth
	// PendingDeath marks a live cell that dies when the current update commits
	PendingDeath
)

func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	case PendingBirth:
		return "pending-birth"
	case PendingDeath:
		return "pending-death"
	default:
		return "unknown"
	}
}

// countsAsLive reports whether the state was alive at the start of the current generation
func (s CellState) countsAsLive() bool {
	return s == Alive || s == PendingDeath
}
