package layout

import (
	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/host"
)

// CanPut reports whether every structure in c fits at anchor (x,y): each
// offset tile must be in bounds, not already built, not a wall, and not
// occupied by a host-reported structure or construction site. Grounded on
// navigation/composite.go's canOccupy footprint check.
func CanPut(x, y int, c Cluster, terrain host.TerrainQuery, built *grid.BuiltGrid, lookup host.Lookup) bool {
	for _, s := range c {
		ax, ay := x+s.DX, y+s.DY
		if !grid.InBounds(ax, ay) {
			return false
		}
		if built.IsBuilt(ax, ay) {
			return false
		}
		if terrain.IsWall(ax, ay) {
			return false
		}
		if lookup != nil && len(lookup(ax, ay)) > 0 {
			return false
		}
	}
	return true
}

// Put commits c at anchor (x,y): every offset tile is recorded under its
// structure kind and marked built.
func Put(x, y int, c Cluster, built *grid.BuiltGrid, record *LayoutRecord) {
	for _, s := range c {
		ax, ay := x+s.DX, y+s.DY
		record.Add(s.Kind, core.Point{X: ax, Y: ay})
		built.MarkBuilt(ax, ay)
	}
}
