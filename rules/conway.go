package rules

const (
	// BirthNeighbors is the exact live neighbor count that brings a dead cell to life
	BirthNeighbors = 3
	// MaxNeighbors is the size of the Moore neighborhood
	MaxNeighbors = 8
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules (B3/S23): (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return Survives(neighbors)
	}
	return Born(neighbors)
}

// Born reports whether a dead cell with the given live neighbors comes alive
func Born(neighbors int) bool {
	return neighbors == BirthNeighbors
}

// Survives reports whether a live cell with the given live neighbors stays alive
func Survives(neighbors int) bool {
	return neighbors == 2 || neighbors == 3
}
