package model

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by Pattern for names it does not know
var ErrUnknownPattern = errors.New("unknown pattern")

// PatternRandom is the pattern name that asks for a randomly seeded board
const PatternRandom = "random"

var patterns = map[string][]Coord{
	"block":   {{1, 1}, {2, 1}, {2, 2}, {1, 2}},
	"blinker": {{1, 1}, {2, 1}, {3, 1}},
	"glider":  {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	"diehard": {{1, 0}, {1, 1}, {0, 1}, {5, 0}, {6, 0}, {7, 0}, {6, 2}},
}

// PatternNames lists the named patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Pattern returns a copy of the cells of a named pattern anchored at the origin
func Pattern(name string) ([]Coord, error) {
	cells, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Pattern] %q (known: %s)",
			name, strings.Join(PatternNames(), ", "))
	}
	return slices.Clone(cells), nil
}

// AddPattern inserts a named pattern with its origin moved to (startX, startY)
func (b *Board) AddPattern(name string, startX, startY int) error {
	cells, err := Pattern(name)
	if err != nil {
		return err
	}
	for _, c := range cells {
		b.Insert(Coord{startX + c.X, startY + c.Y})
	}
	return nil
}

// AddGlider adds a glider pattern at the specified position
func (b *Board) AddGlider(startX, startY int) {
	_ = b.AddPattern("glider", startX, startY)
}

// AddBlinker adds a blinker oscillator pattern
func (b *Board) AddBlinker(startX, startY int) {
	_ = b.AddPattern("blinker", startX, startY)
}

// AddBlock adds a 2x2 still life
func (b *Board) AddBlock(startX, startY int) {
	_ = b.AddPattern("block", startX, startY)
}

// AddDiehard adds the diehard methuselah, which dies out after 130 generations
func (b *Board) AddDiehard(startX, startY int) {
	_ = b.AddPattern("diehard", startX, startY)
}

// Randomize overwrites area so that each cell is alive with probability density
func (b *Board) Randomize(r *rand.Rand, area Rect, density float64) {
	for y := area.MinY; y <= area.MaxY; y++ {
		for x := area.MinX; x <= area.MaxX; x++ {
			if r.Float64() < density {
				b.Insert(Coord{x, y})
			} else {
				b.Remove(Coord{x, y})
			}
		}
	}
}

// InjectRandomLife adds count random cells inside area to break stagnation
func (b *Board) InjectRandomLife(r *rand.Rand, area Rect, count int) {
	if area.Width() <= 0 || area.Height() <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		b.Insert(Coord{area.MinX + r.Intn(area.Width()), area.MinY + r.Intn(area.Height())})
	}
}

// ResetWithInterestingPatterns clears the board and seeds area with random
// life plus a couple of gliders and blinkers on top
func (b *Board) ResetWithInterestingPatterns(r *rand.Rand, area Rect, density float64) {
	b.Clear()
	b.Randomize(r, area, density)

	w, h := area.Width(), area.Height()
	if w >= 10 && h >= 10 {
		b.AddGlider(area.MinX+5, area.MinY+5)
		if w >= 20 && h >= 15 {
			b.AddGlider(area.MaxX-7, area.MinY+5)
		}

		b.AddBlinker(area.MinX+w/4, area.MinY+h/4)
		if w >= 30 {
			b.AddBlinker(area.MinX+3*w/4, area.MinY+3*h/4)
		}
	}
}
