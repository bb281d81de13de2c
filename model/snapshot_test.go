package model

import "testing"

func TestSnapshotCopiesGeneration(t *testing.T) {
	b := mustBoard(t, 5, 3)
	b.Place(1, 1, Blinker)

	s := NewSnapshot(b)
	b.Update()

	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("snapshot size %dx%d, want 5x3", s.Width(), s.Height())
	}
	for x := 1; x <= 3; x++ {
		if !s.Alive(x, 1) {
			t.Fatalf("snapshot lost cell (%d,1) after the board advanced", x)
		}
	}
	if s.Alive(2, 0) || s.Alive(-1, 1) || s.Alive(5, 1) {
		t.Fatal("unexpected live cell in snapshot")
	}
	if n := s.CountLivingCells(); n != 3 {
		t.Fatalf("CountLivingCells() = %d, want 3", n)
	}
}

func TestSnapshotPoolReuse(t *testing.T) {
	pool := NewSnapshotPool()

	big := mustBoard(t, 4, 4)
	for x := range 4 {
		big.Set(x, 0, true)
	}
	s := pool.Get(big)
	if n := s.CountLivingCells(); n != 4 {
		t.Fatalf("pooled snapshot has %d living cells, want 4", n)
	}
	SnapshotToPool(s, pool)

	small := mustBoard(t, 2, 2, [2]int{1, 1})
	s = pool.Get(small)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("reused snapshot size %dx%d, want 2x2", s.Width(), s.Height())
	}
	if n := s.CountLivingCells(); n != 1 || !s.Alive(1, 1) {
		t.Fatalf("reused snapshot kept stale cells: %d living", n)
	}

	SnapshotToPool(s, nil)
	SnapshotToPool(nil, pool)
}
