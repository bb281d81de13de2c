package model

import "sync"

// SnapshotToPool returns a snapshot to the pool for reuse
func SnapshotToPool(s *Snapshot, pool *SnapshotPool) {
	if pool == nil || s == nil {
		return
	}

	pool.Put(s)
}

// SnapshotPool recycles snapshot buffers between frames
type SnapshotPool struct {
	pool sync.Pool
}

func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Snapshot{}
			},
		},
	}
}

// Get retrieves a snapshot holding a copy of the board's current generation
func (p *SnapshotPool) Get(b *Board) *Snapshot {
	s := p.pool.Get().(*Snapshot)
	b.SnapshotInto(s)
	return s
}

// Put returns a snapshot to the pool
func (p *SnapshotPool) Put(s *Snapshot) {
	p.pool.Put(s)
}
