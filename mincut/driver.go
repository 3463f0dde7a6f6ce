// Package mincut reduces "minimum defensive wall set" to a maximum-flow
// problem on the split-vertex graph (package flow) and drives the full
// pipeline spec.md §4.3 describes: classify → protect → build graph → run
// Dinic → extract the cut → optionally prune dead-end cut tiles.
package mincut

import (
	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/flow"
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/host"
	"github.com/bestkurisu/screeps-room-planner/terrain"
	"github.com/pkg/errors"
)

// GetCutTiles computes the minimum rampart set separating protected from
// exits, per spec.md §4.3. bounds may be nil to mean the full room.
func GetCutTiles(query host.TerrainQuery, protected []core.Point, bounds *grid.Bounds, logger host.Logger) ([]core.Point, error) {
	logger = host.NormalizeLogger(logger)

	b := grid.FullRoom()
	if bounds != nil {
		b = *bounds
	}
	if !b.Valid() {
		logger.Printf("mincut: rejecting invalid bounds %+v", b)
		return nil, errors.Wrapf(ErrInvalidBounds, "bounds=%+v", b)
	}

	g := terrain.Classify(query, b)

	for _, p := range protected {
		if g.At(p.X, p.Y) == grid.Normal {
			g.Set(p.X, p.Y, grid.Protected)
		}
	}

	fg := buildGraph(g)
	fg.MaxFlow(flow.Source, flow.Sink)
	cutVertices := fg.CutTiles(flow.Source)

	coords := make([]core.Point, 0, len(cutVertices))
	for _, v := range cutVertices {
		x, y := grid.VertexToPos(v)
		coords = append(coords, core.Point{X: x, Y: y})
	}

	if !b.IsFullRoom() && len(coords) > 0 {
		coords = pruneDeadEnds(query, coords)
	}

	logger.Printf("mincut: cut size %d (bounds=%+v)", len(coords), b)
	return coords, nil
}
