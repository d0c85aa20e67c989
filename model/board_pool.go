package model

import "sync"

// BoardToPool hands a finished board back for reuse; a nil pool is a no-op
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles boards between restarts so their maps keep capacity
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() any {
				return NewBoard()
			},
		},
	}
}

// Get retrieves an empty board from the pool
func (p *BoardPool) Get() *Board {
	b := p.pool.Get().(*Board)
	b.Clear()
	return b
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(b *Board) {
	b.Clear()
	p.pool.Put(b)
}
