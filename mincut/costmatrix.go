package mincut

import "github.com/bestkurisu/screeps-room-planner/grid"

// CostMatrix is a 50×50 pathfinding cost overlay: 0xff marks a tile that
// remains exposed after ramparts are placed, 0 marks everything else, per
// spec.md §4.6.
type CostMatrix struct {
	cells [grid.Cells]byte
}

// Get returns the cost at (x,y); out-of-range reads return 0.
func (c *CostMatrix) Get(x, y int) byte {
	if !grid.InBounds(x, y) {
		return 0
	}
	return c.cells[grid.Index(x, y)]
}

func (c *CostMatrix) set(x, y int, v byte) {
	if !grid.InBounds(x, y) {
		return
	}
	c.cells[grid.Index(x, y)] = v
}
