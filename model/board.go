package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/sheikhrachel/go-life/rules"
)

// historySize is how many recent board hashes are kept for cycle detection
const historySize = 5

// Board is a sparse, unbounded Game of Life board. Only live cells are stored.
//
// A Board is not safe for concurrent use; callers sharing one across
// goroutines must guard it themselves or work on clones.
type Board struct {
	cells   map[Coord]struct{}
	history []string // Store recent board hashes for cycle detection
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{cells: make(map[Coord]struct{})}
}

// init makes the zero Board usable
func (b *Board) init() {
	if b.cells == nil {
		b.cells = make(map[Coord]struct{})
	}
}

// FromSeq creates a board whose live cells are the distinct coordinates of seq
func FromSeq(seq iter.Seq[Coord]) *Board {
	b := NewBoard()
	b.Extend(seq)
	return b
}

// FromCoords creates a board from a list of coordinates, duplicates collapse
func FromCoords(coords ...Coord) *Board {
	return FromSeq(slices.Values(coords))
}

// Insert marks pt alive and reports whether it was dead before
func (b *Board) Insert(pt Coord) bool {
	b.init()
	if _, ok := b.cells[pt]; ok {
		return false
	}
	b.cells[pt] = struct{}{}
	return true
}

// Extend marks every coordinate of seq alive
func (b *Board) Extend(seq iter.Seq[Coord]) {
	b.init()
	for pt := range seq {
		b.cells[pt] = struct{}{}
	}
}

// ExtendCoords is Extend for a plain list of coordinates
func (b *Board) ExtendCoords(coords ...Coord) {
	b.Extend(slices.Values(coords))
}

// Remove marks pt dead and reports whether it was alive
func (b *Board) Remove(pt Coord) bool {
	if _, ok := b.cells[pt]; !ok {
		return false
	}
	delete(b.cells, pt)
	return true
}

// Contains reports whether pt is alive
func (b *Board) Contains(pt Coord) bool {
	_, ok := b.cells[pt]
	return ok
}

// Len returns the number of live cells
func (b *Board) Len() int {
	return len(b.cells)
}

// IsEmpty reports whether every cell is dead
func (b *Board) IsEmpty() bool {
	return len(b.cells) == 0
}

// Cells iterates the live cells in no particular order
func (b *Board) Cells() iter.Seq[Coord] {
	return maps.Keys(b.cells)
}

// Sorted returns the live cells in row-major order
func (b *Board) Sorted() []Coord {
	return slices.SortedFunc(b.Cells(), func(a, c Coord) int {
		switch {
		case a.less(c):
			return -1
		case c.less(a):
			return 1
		}
		return 0
	})
}

// Clear kills every cell and drops the history
func (b *Board) Clear() {
	b.init()
	clear(b.cells)
	b.history = nil
}

// Clone returns an independent copy of the live cells
func (b *Board) Clone() *Board {
	return &Board{cells: maps.Clone(b.cells)}
}

// Equal reports whether both boards have exactly the same live cells
func (b *Board) Equal(o *Board) bool {
	if len(b.cells) != len(o.cells) {
		return false
	}
	for pt := range b.cells {
		if _, ok := o.cells[pt]; !ok {
			return false
		}
	}
	return true
}

// Tick advances the board by one generation in place.
//
// Only the impact set of the live cells is evaluated, and every candidate is
// judged against the previous generation, so all cells change simultaneously.
func (b *Board) Tick() {
	candidates := make(map[Coord]struct{}, len(b.cells)*9)
	for pt := range b.cells {
		for _, c := range Impacts(pt) {
			candidates[c] = struct{}{}
		}
	}

	previous := b.cells
	b.cells = make(map[Coord]struct{}, len(previous))

	for pt := range candidates {
		neighbors := 0
		for _, n := range Neighbors(pt) {
			if _, ok := previous[n]; ok {
				neighbors++
			}
		}
		_, alive := previous[pt]
		if rules.ApplyConwayRules(neighbors, alive) {
			b.cells[pt] = struct{}{}
		}
	}
}

// Bounds returns the bounding box of the live cells; ok is false when empty
func (b *Board) Bounds() (r Rect, ok bool) {
	for pt := range b.cells {
		if !ok {
			r = Rect{MinX: pt.X, MaxX: pt.X, MinY: pt.Y, MaxY: pt.Y}
			ok = true
			continue
		}
		r.MinX = min(r.MinX, pt.X)
		r.MaxX = max(r.MaxX, pt.X)
		r.MinY = min(r.MinY, pt.Y)
		r.MaxY = max(r.MaxY, pt.Y)
	}
	return r, ok
}

// GetBoundingBoxSize returns the area of the live region
func (b *Board) GetBoundingBoxSize() int {
	r, ok := b.Bounds()
	if !ok {
		return 0
	}
	return r.Area()
}

// Hash returns an MD5 digest of the live set, independent of map order
func (b *Board) Hash() string {
	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, pt := range b.Sorted() {
		binary.BigEndian.PutUint64(buf[:8], uint64(pt.X))
		binary.BigEndian.PutUint64(buf[8:], uint64(pt.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state to history and maintains size
func (b *Board) UpdateHistory() {
	b.history = append(b.history, b.Hash())
	if len(b.history) > historySize {
		b.history = b.history[1:]
	}
}

// IsStagnant reports whether the current state matches one of the last three
// recorded states, i.e. the board is static or oscillating with period <= 3.
// Call it before UpdateHistory records the current state.
func (b *Board) IsStagnant() bool {
	if len(b.history) < 3 {
		return false
	}

	current := b.Hash()
	for _, prev := range b.history[len(b.history)-3:] {
		if prev == current {
			return true
		}
	}
	return false
}
