package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/go-life/rules"
)

// neighborOffsets is the Moore neighborhood of a cell
var neighborOffsets = [rules.MaxNeighbors][2]int{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{1, 1},
	{-1, 1},
	{-1, -1},
	{1, -1},
}

// Board is a bounded grid of cells stored in row-major order.
// Every coordinate in [0, width) x [0, height) has an entry; nothing outside does.
type Board struct {
	width  int
	height int
	cells  []CellState
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(width, height int) (*Board, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}, nil
}

// Width returns the number of cells along x
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of cells along y
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of stored cells, always width*height
func (b *Board) Len() int {
	return len(b.cells)
}

// Contains reports whether (x, y) lies on the board
func (b *Board) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Index translates an in-bounds coordinate to its slice position
func (b *Board) Index(x, y int) int {
	return y*b.width + x
}

// State returns the recorded state of a cell, Dead when out of bounds
func (b *Board) State(x, y int) CellState {
	if !b.Contains(x, y) {
		return Dead
	}
	return b.cells[b.Index(x, y)]
}

// Alive returns whether a cell is alive
func (b *Board) Alive(x, y int) bool {
	return b.State(x, y) == Alive
}

// Set sets a cell to alive (true) or dead (false), ignoring out-of-bounds coordinates
func (b *Board) Set(x, y int, alive bool) {
	if !b.Contains(x, y) {
		return
	}
	if alive {
		b.cells[b.Index(x, y)] = Alive
	} else {
		b.cells[b.Index(x, y)] = Dead
	}
}

// Clear kills every cell
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Dead
	}
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	cells := make([]CellState, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// CountLiveNeighbors counts the Moore neighbors that were alive at the start of the generation.
// Cells marked PendingDeath still count, cells marked PendingBirth do not.
func (b *Board) CountLiveNeighbors(x, y int) int {
	count := 0
	for _, offset := range neighborOffsets {
		nx, ny := x+offset[0], y+offset[1]
		if !b.Contains(nx, ny) {
			continue
		}
		if b.cells[b.Index(nx, ny)].countsAsLive() {
			count++
		}
	}
	return count
}

// Update advances the board one generation in place.
//
// The first pass marks cells as PendingBirth or PendingDeath from the entry
// state, the second commits the marks, so no cell's decision sees another
// cell's new state.
func (b *Board) Update() {
	b.mark()
	b.commit()
}

func (b *Board) mark() {
	for y := range b.height {
		for x := range b.width {
			i := b.Index(x, y)
			state := b.cells[i]
			next := rules.ApplyConwayRules(b.CountLiveNeighbors(x, y), state == Alive)

			switch {
			case state == Dead && next:
				b.cells[i] = PendingBirth
			case state == Alive && !next:
				b.cells[i] = PendingDeath
			}
		}
	}
}

func (b *Board) commit() {
	for i, state := range b.cells {
		switch state {
		case PendingBirth:
			b.cells[i] = Alive
		case PendingDeath:
			b.cells[i] = Dead
		}
	}
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, state := range b.cells {
		if state == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 hash of the alive/dead layout, used to compare runs
func (b *Board) Hash() string {
	h := md5.New()
	buf := make([]byte, len(b.cells))
	for i, state := range b.cells {
		if state == Alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// SnapshotInto copies the current generation into dst, resizing it as needed
func (b *Board) SnapshotInto(dst *Snapshot) {
	dst.Reset(b.width, b.height)
	for i, state := range b.cells {
		dst.alive[i] = state == Alive
	}
}
