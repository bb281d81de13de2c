package model

// Pattern is a set of live cell offsets relative to its top-left corner
type Pattern [][2]int

var (
	// Block is a 2x2 still life
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	// Blinker is the horizontal phase of a period-2 oscillator
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}
	// Glider moves one cell diagonally every four generations
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
)

// Place sets the live cells of a pattern at (startX, startY), clipping at the board edge
func (b *Board) Place(startX, startY int, p Pattern) {
	for _, offset := range p {
		b.Set(startX+offset[0], startY+offset[1], true)
	}
}
