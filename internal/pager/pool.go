package pager

import "github.com/sisoputnfrba/tp-2025-2c-ElPager/internal/list"

// pool is the frame pool and the block pool of spec §4.1: a FIFO
// free-list over [0, n), replenished only by destroy. The same type
// serves both pools — the only difference between them is which
// exhaustion path the caller takes (replacement for frames, a failed
// extend for blocks).
type pool struct {
	free *list.Queue[int]
}

func newPool(n int) *pool {
	q := list.NewQueue[int]()
	for i := 0; i < n; i++ {
		q.Enqueue(i)
	}
	return &pool{free: q}
}

// acquire pops the next free index. ok is false iff the pool is empty.
func (p *pool) acquire() (int, bool) {
	return p.free.Dequeue()
}

// release returns an index to the pool.
func (p *pool) release(i int) {
	p.free.Enqueue(i)
}

func (p *pool) len() int {
	return p.free.Len()
}

func (p *pool) snapshot() []int {
	return p.free.Snapshot()
}
