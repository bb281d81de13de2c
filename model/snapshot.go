package model

// Snapshot is a read-only copy of one completed generation
type Snapshot struct {
	width  int
	height int
	alive  []bool
}

// NewSnapshot returns a snapshot of the board's current generation
func NewSnapshot(b *Board) *Snapshot {
	s := &Snapshot{}
	b.SnapshotInto(s)
	return s
}

// Reset resizes the snapshot, killing every cell
func (s *Snapshot) Reset(width, height int) {
	s.width = width
	s.height = height
	if cap(s.alive) < width*height {
		s.alive = make([]bool, width*height)
		return
	}
	s.alive = s.alive[:width*height]
	for i := range s.alive {
		s.alive[i] = false
	}
}

// Width returns the number of cells along x
func (s *Snapshot) Width() int {
	return s.width
}

// Height returns the number of cells along y
func (s *Snapshot) Height() int {
	return s.height
}

// Alive returns whether a cell was alive, false when out of bounds
func (s *Snapshot) Alive(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.alive[y*s.width+x]
}

// CountLivingCells returns the total number of living cells
func (s *Snapshot) CountLivingCells() (count int) {
	for _, alive := range s.alive {
		if alive {
			count++
		}
	}
	return
}
