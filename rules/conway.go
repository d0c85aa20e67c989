package rules

const (
	// birthNeighbors brings a dead cell to life
	birthNeighbors = 3
	// survivalNeighbors keeps a live cell alive, together with birthNeighbors
	survivalNeighbors = 2
)

/*
ApplyConwayRules decides whether a cell is alive in the next generation (B3/S23).

A live cell survives with 2 or 3 live neighbors; a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == survivalNeighbors) || neighbors == birthNeighbors
}
