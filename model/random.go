package model

import "math/rand/v2"

// NewRand returns a deterministic random source for the given seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// NewRandomBoard creates a board where each cell is independently alive with probability occupancy
func NewRandomBoard(width, height int, occupancy float64, rnd *rand.Rand) (*Board, error) {
	b, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	if err = ValidateOccupancy(occupancy); err != nil {
		return nil, err
	}

	b.Randomize(occupancy, rnd)
	return b, nil
}

// Randomize fills the board with random living cells
func (b *Board) Randomize(occupancy float64, rnd *rand.Rand) {
	for i := range b.cells {
		if rnd.Float64() < occupancy {
			b.cells[i] = Alive
		} else {
			b.cells[i] = Dead
		}
	}
}
