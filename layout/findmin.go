package layout

import (
	"errors"

	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/field"
	"github.com/bestkurisu/screeps-room-planner/grid"
)

// ErrNoPlacement is returned when no tile satisfies a placement predicate.
// Per spec.md §9's REDESIGN FLAG, this replaces the source's sentinel
// (0,0) return, which the planner would otherwise build at unconditionally.
var ErrNoPlacement = errors.New("layout: no placement satisfies predicate")

// findMin linear-scans every tile in row-major order, returning the lowest-
// scoring tile for which predicate holds. Ties keep the first tile found
// (smallest y, then smallest x). ok is false if no tile qualifies.
func findMin(f *field.Field, predicate func(x, y int) bool) (p core.Point, ok bool) {
	var best float64
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			if !predicate(x, y) {
				continue
			}
			v := f.Get(x, y)
			if !ok || v < best {
				best = v
				p = core.Point{X: x, Y: y}
				ok = true
			}
		}
	}
	return p, ok
}
