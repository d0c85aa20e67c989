package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diehard() *Board {
	return FromCoords(C(1, 0), C(1, 1), C(0, 1), C(5, 0), C(6, 0), C(7, 0), C(6, 2))
}

func TestBoardInsert(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.IsEmpty())

	assert.True(t, b.Insert(C(3, -7)))
	assert.Equal(t, 1, b.Len())
	assert.False(t, b.Insert(C(3, -7)))
	assert.Equal(t, 1, b.Len())

	assert.True(t, b.Insert(C(-7, 3)))
	assert.Equal(t, 2, b.Len())
	assert.True(t, b.Contains(C(3, -7)))
	assert.False(t, b.Contains(C(0, 0)))
	assert.False(t, b.IsEmpty())
}

func TestBoardFromCoordsCollapsesDuplicates(t *testing.T) {
	b := FromCoords(C(1, 1), C(1, 1), C(2, 2), C(1, 1))
	assert.Equal(t, 2, b.Len())

	b.ExtendCoords(C(2, 2), C(3, 3))
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []Coord{{1, 1}, {2, 2}, {3, 3}}, b.Sorted())

	assert.True(t, FromCoords().IsEmpty())
}

func TestBoardRemove(t *testing.T) {
	b := FromCoords(C(0, 0))
	assert.False(t, b.Remove(C(1, 0)))
	assert.True(t, b.Remove(C(0, 0)))
	assert.True(t, b.IsEmpty())
}

func TestTickBlock(t *testing.T) {
	b := NewBoard()
	b.Insert(C(1, 1))
	b.Insert(C(2, 1))
	b.Insert(C(2, 2))
	b.Insert(C(1, 2))
	start := b.Clone()

	for i := 0; i < 10; i++ {
		b.Tick()
		require.True(t, start.Equal(b), "block changed at generation %d", i+1)
	}
}

func TestTickBlinker(t *testing.T) {
	b := FromCoords(C(1, 1), C(2, 1), C(3, 1))
	start := b.Clone()

	b.Tick()
	assert.False(t, start.Equal(b))
	assert.Equal(t, []Coord{{2, 0}, {2, 1}, {2, 2}}, b.Sorted())

	b.Tick()
	assert.True(t, start.Equal(b))
}

func TestTickDiehard(t *testing.T) {
	b := diehard()
	for gen := 0; gen < 130; gen++ {
		require.False(t, b.IsEmpty(), "extinct early at generation %d", gen)
		b.Tick()
	}
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.IsEmpty())
}

func TestTickGliderTranslates(t *testing.T) {
	b := NewBoard()
	b.AddGlider(0, 0)
	start := b.Sorted()

	for i := 0; i < 4; i++ {
		b.Tick()
	}

	want := make([]Coord, 0, len(start))
	for _, c := range start {
		want = append(want, C(c.X+1, c.Y+1))
	}
	assert.Equal(t, want, b.Sorted())
}

func TestTickEmpty(t *testing.T) {
	b := NewBoard()
	b.Tick()
	assert.True(t, b.IsEmpty())

	lonely := FromCoords(C(100, 100))
	lonely.Tick()
	assert.True(t, lonely.IsEmpty())
}

func TestTickDeterministic(t *testing.T) {
	a := diehard()
	b := diehard()
	for i := 0; i < 40; i++ {
		a.Tick()
		b.Tick()
		require.Equal(t, a.Sorted(), b.Sorted(), "diverged at generation %d", i+1)
		require.Equal(t, a.Hash(), b.Hash())
	}
}

func TestTickStaysWithinImpactSet(t *testing.T) {
	b := diehard()
	for gen := 0; gen < 60; gen++ {
		prev := b.Clone()
		b.Tick()

		for pt := range b.Cells() {
			near := false
			for _, c := range Impacts(pt) {
				if prev.Contains(c) {
					near = true
					break
				}
			}
			require.True(t, near, "cell %v appeared away from generation %d", pt, gen)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := FromCoords(C(0, 0), C(1, 0), C(2, 0))
	b := a.Clone()
	b.Tick()
	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {2, 0}}, a.Sorted())
	assert.False(t, a.Equal(b))
}

func TestBounds(t *testing.T) {
	_, ok := NewBoard().Bounds()
	assert.False(t, ok)
	assert.Equal(t, 0, NewBoard().GetBoundingBoxSize())

	r, ok := diehard().Bounds()
	require.True(t, ok)
	assert.Equal(t, Rect{MinX: 0, MinY: 0, MaxX: 7, MaxY: 2}, r)
	assert.Equal(t, 24, diehard().GetBoundingBoxSize())
}

func TestHashIgnoresInsertionOrder(t *testing.T) {
	a := FromCoords(C(1, 2), C(-3, 4), C(5, -6))
	b := FromCoords(C(5, -6), C(1, 2), C(-3, 4))
	assert.Equal(t, a.Hash(), b.Hash())

	b.Insert(C(0, 0))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestIsStagnant(t *testing.T) {
	t.Run("still life", func(t *testing.T) {
		b := NewBoard()
		b.AddBlock(0, 0)
		for i := 0; i < 3; i++ {
			assert.False(t, b.IsStagnant())
			b.UpdateHistory()
			b.Tick()
		}
		assert.True(t, b.IsStagnant())
	})

	t.Run("oscillator", func(t *testing.T) {
		b := NewBoard()
		b.AddBlinker(0, 0)
		for i := 0; i < 3; i++ {
			b.UpdateHistory()
			b.Tick()
		}
		assert.True(t, b.IsStagnant())
	})

	t.Run("glider", func(t *testing.T) {
		b := NewBoard()
		b.AddGlider(0, 0)
		for i := 0; i < 12; i++ {
			require.False(t, b.IsStagnant(), "generation %d", i)
			b.UpdateHistory()
			b.Tick()
		}
		assert.Len(t, b.history, historySize)
	})
}

func BenchmarkTick(b *testing.B) {
	board := NewBoard()
	for x := 0; x < 200; x += 10 {
		for y := 0; y < 200; y += 10 {
			board.AddDiehard(x, y)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next := board.Clone()
		next.Tick()
	}
}
