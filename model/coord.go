package model

import (
	"fmt"
	"math"
)

// Coord identifies a cell on the unbounded plane
type Coord struct {
	X int
	Y int
}

// C is shorthand for Coord{X: x, Y: y}
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// less orders coordinates row-major: by Y, then by X
func (c Coord) less(o Coord) bool {
	return c.Y < o.Y || (c.Y == o.Y && c.X < o.X)
}

// checkedInc and checkedDec report false instead of wrapping around
func checkedInc(v int) (int, bool) {
	if v == math.MaxInt {
		return 0, false
	}
	return v + 1, true
}

func checkedDec(v int) (int, bool) {
	if v == math.MinInt {
		return 0, false
	}
	return v - 1, true
}

// Neighbors returns the up to 8 cells at Chebyshev distance 1 from c.
//
// The order is fixed: E, N, NE, SE, W, S, NW, SW. A neighbor whose X or Y
// would overflow the int range is omitted rather than wrapped.
func Neighbors(c Coord) []Coord {
	var (
		out      = make([]Coord, 0, 8)
		xp, okXp = checkedInc(c.X)
		xm, okXm = checkedDec(c.X)
		yp, okYp = checkedInc(c.Y)
		ym, okYm = checkedDec(c.Y)
	)

	if okXp {
		out = append(out, Coord{xp, c.Y})
	}
	if okYp {
		out = append(out, Coord{c.X, yp})
	}
	if okXp && okYp {
		out = append(out, Coord{xp, yp})
	}
	if okXp && okYm {
		out = append(out, Coord{xp, ym})
	}
	if okXm {
		out = append(out, Coord{xm, c.Y})
	}
	if okYm {
		out = append(out, Coord{c.X, ym})
	}
	if okXm && okYp {
		out = append(out, Coord{xm, yp})
	}
	if okXm && okYm {
		out = append(out, Coord{xm, ym})
	}
	return out
}

// Impacts returns c together with its neighbors: every cell whose next state
// can depend on c being alive now.
func Impacts(c Coord) []Coord {
	return append(Neighbors(c), c)
}

// Rect is an inclusive rectangle of cells
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the number of columns covered by r
func (r Rect) Width() int {
	return r.MaxX - r.MinX + 1
}

// Height returns the number of rows covered by r
func (r Rect) Height() int {
	return r.MaxY - r.MinY + 1
}

// Area returns the number of cells covered by r
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Contains reports whether c lies inside r
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}
