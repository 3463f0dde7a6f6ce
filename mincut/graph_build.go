package mincut

import (
	"github.com/bestkurisu/screeps-room-planner/flow"
	"github.com/bestkurisu/screeps-room-planner/grid"
)

// infiniteCapacity stands in for ∞ in spec.md §3's edge table. It is an
// alias for flow.Infinity, not an independently chosen value: dinic.go's
// DFS bottleneck search initializes from the same constant, so the two can
// never drift out of sync with each other.
const infiniteCapacity = flow.Infinity

// buildGraph constructs the split-vertex flow graph from a classified,
// protection-annotated grid, per the edge table in spec.md §3/§4.2. Only
// tiles with 1 ≤ x,y ≤ 48 are enumerated — boundary tiles are excluded
// from the interior loop, exactly as spec.md §3 requires.
func buildGraph(g *grid.Grid) *flow.Graph {
	fg := flow.NewGraph(flow.NumVertices)

	for y := 1; y <= grid.Size-2; y++ {
		for x := 1; x <= grid.Size-2; x++ {
			switch g.At(x, y) {
			case grid.Normal:
				fg.AddEdge(flow.Top(x, y), flow.Bot(x, y), 1)
				addNeighborEdges(fg, g, x, y)
			case grid.Protected:
				fg.AddEdge(flow.Source, flow.Top(x, y), infiniteCapacity)
				// Non-cuttable: a PROTECTED tile's own TOP→BOT edge must
				// never be the bottleneck, or the min cut severs the
				// protected tile itself instead of the tiles around it.
				fg.AddEdge(flow.Top(x, y), flow.Bot(x, y), infiniteCapacity)
				addNeighborEdges(fg, g, x, y)
			case grid.ToExit:
				fg.AddEdge(flow.Top(x, y), flow.Sink, infiniteCapacity)
			case grid.Unwalkable, grid.Exit:
				// No edges per spec.md §3.
			}
		}
	}
	return fg
}

func addNeighborEdges(fg *flow.Graph, g *grid.Grid, x, y int) {
	for _, n := range grid.Neighbors8 {
		nx, ny := x+n.X, y+n.Y
		switch g.At(nx, ny) {
		case grid.Normal, grid.ToExit:
			fg.AddEdge(flow.Bot(x, y), flow.Top(nx, ny), infiniteCapacity)
		}
	}
}
