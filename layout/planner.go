// Package layout implements the iterative building-placement search of
// spec.md §4.6: weighted distance-field score minimization for storage,
// lab, tower/extension, and observer clusters, followed by road and
// container/link routing through a host-supplied path-finder.
package layout

import (
	"fmt"

	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/field"
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/host"
	"github.com/bestkurisu/screeps-room-planner/tuning"
	"github.com/pkg/errors"
)

// Resource pairs a host-assigned identifier with a tile position. The
// planner writes containerPos/linkPos memory entries keyed by this id, per
// spec.md §6.
type Resource struct {
	ID  string
	Pos core.Point
}

// BuildLayout runs the full placement sequence described in spec.md §4.6
// and returns whatever was committed before any error — partial results
// are always returned, per spec.md §7.
func BuildLayout(
	terrain host.TerrainQuery,
	pathFinder host.PathFinder,
	lookup host.Lookup,
	memory host.MemoryBag,
	sources []Resource,
	mineral Resource,
	controller Resource,
	logger host.Logger,
) (*LayoutRecord, error) {
	logger = host.NormalizeLogger(logger)

	record := &LayoutRecord{}
	built := grid.NewBuiltGrid()

	sourcePositions := make([]core.Point, len(sources))
	for i, s := range sources {
		sourcePositions[i] = s.Pos
	}

	sF := sourceField(terrain, sourcePositions)
	mF := mineralField(terrain, mineral.Pos)
	cF := controllerField(terrain, controller.Pos)
	wF := wallField(terrain)

	storagePos, err := placeOne(
		field.Add(sF, field.Mul(mF, tuning.StorageMineralWeight), cF, field.Mul(wF, -1)),
		StorageCluster, terrain, lookup, built, record, "storage",
	)
	if err != nil {
		return record, err
	}
	stoF := storageField(terrain, storagePos)

	_, err = placeOne(
		field.Add(mF, field.Mul(stoF, tuning.LabStorageWeight), field.Mul(sF, tuning.LabSourceWeight), field.Mul(cF, tuning.LabControllerWeight)),
		LabCluster, terrain, lookup, built, record, "lab",
	)
	if err != nil {
		return record, err
	}

	var roadCenters []core.Point
	towerExtScore := func() *field.Field {
		return field.Add(field.Mul(mF, tuning.TowerMineralWeight), stoF, field.Mul(sF, tuning.TowerSourceWeight), field.Mul(cF, tuning.TowerControllerWeight))
	}
	extensionScore := func() *field.Field {
		return field.Add(field.Mul(mF, tuning.ExtensionMineralWeight), field.Mul(stoF, tuning.ExtensionStorageWeight), sF, field.Mul(cF, tuning.ExtensionControllerWeight))
	}

	for i := 0; i < tuning.TowerExtensionIterations; i++ {
		towerPos, err := placeOne(towerExtScore(), TowerCluster, terrain, lookup, built, record, fmt.Sprintf("tower[%d]", i))
		if err != nil {
			return record, err
		}
		roadCenters = append(roadCenters, towerPos)

		extPos, err := placeOne(extensionScore(), ExtensionCluster, terrain, lookup, built, record, fmt.Sprintf("extension[%d]", i))
		if err != nil {
			return record, err
		}
		roadCenters = append(roadCenters, extPos)
	}

	if _, err := placeOne(towerExtScore(), ObserverCluster, terrain, lookup, built, record, "observer"); err != nil {
		return record, err
	}

	for _, center := range roadCenters {
		path := pathFinder(center, storagePos, host.PathOptions{
			IgnoreCreeps:                 true,
			IgnoreDestructibleStructures: true,
			IgnoreRoads:                  true,
			SwampCost:                    tuning.RoadSwampCost,
			HeuristicWeight:              tuning.RoadHeuristicWeight,
			Range:                        tuning.RoadPathRange,
		})
		for _, p := range path {
			if built.IsBuilt(p.X, p.Y) {
				continue
			}
			record.Add(Road, p)
			built.MarkBuilt(p.X, p.Y)
		}
	}

	type containerJob struct {
		target    Resource
		pathRange int
		isMineral bool
	}
	jobs := make([]containerJob, 0, len(sources)+2)
	jobs = append(jobs, containerJob{controller, tuning.ControllerPathRange, false})
	for _, s := range sources {
		jobs = append(jobs, containerJob{s, tuning.ContainerPathRange, false})
	}
	jobs = append(jobs, containerJob{mineral, tuning.MineralPathRange, true})

	for _, job := range jobs {
		path := pathFinder(storagePos, job.target.Pos, host.PathOptions{Range: job.pathRange})
		if len(path) == 0 {
			logger.Printf("layout: no path to %s, skipping container/link", job.target.ID)
			continue
		}

		for i, p := range path {
			if i < len(path)-1 {
				if !built.IsBuilt(p.X, p.Y) {
					record.Add(Road, p)
					built.MarkBuilt(p.X, p.Y)
				}
				continue
			}

			record.Add(Container, p)
			built.MarkBuilt(p.X, p.Y)
			memory.Set("containerPos:"+job.target.ID, encodePos(p))

			if job.isMineral {
				continue
			}
			if linkPos, ok := placeLink(terrain, built, p); ok {
				record.Add(Link, linkPos)
				built.MarkBuilt(linkPos.X, linkPos.Y)
				memory.Set("linkPos:"+job.target.ID, encodePos(linkPos))
			}
		}
	}

	return record, nil
}

// placeOne minimizes score over CanPut-valid tiles for c, commits the
// winning placement, and returns its anchor. It wraps ErrNoPlacement with
// the caller-supplied label so a failed layout pass names which cluster
// could not be placed.
func placeOne(score *field.Field, c Cluster, terrain host.TerrainQuery, lookup host.Lookup, built *grid.BuiltGrid, record *LayoutRecord, label string) (core.Point, error) {
	predicate := func(x, y int) bool { return CanPut(x, y, c, terrain, built, lookup) }
	p, ok := findMin(score, predicate)
	if !ok {
		return core.Point{}, errors.Wrap(ErrNoPlacement, label)
	}
	Put(p.X, p.Y, c, built, record)
	return p, nil
}

func encodePos(p core.Point) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// onWallOrEdge reports whether (x,y) is itself a wall or a room-boundary
// tile.
func onWallOrEdge(terrain host.TerrainQuery, x, y int) bool {
	if !grid.InBounds(x, y) {
		return true
	}
	if x == 0 || y == 0 || x == grid.Size-1 || y == grid.Size-1 {
		return true
	}
	return terrain.IsWall(x, y)
}

// nearWallOrEdge reports whether (x,y) or any of its 8-neighbors is a wall
// or room-boundary tile.
func nearWallOrEdge(terrain host.TerrainQuery, x, y int) bool {
	if onWallOrEdge(terrain, x, y) {
		return true
	}
	for _, n := range grid.Neighbors8 {
		if onWallOrEdge(terrain, x+n.X, y+n.Y) {
			return true
		}
	}
	return false
}

// placeLink scans the container's 8 neighbors in offset order for a link
// site: first pass requires a tile not near a wall/edge, second pass
// relaxes to not directly on one. If neither pass finds a candidate, ok is
// false and the caller records the container without a link — a soft
// failure, per spec.md §9.
func placeLink(terrain host.TerrainQuery, built *grid.BuiltGrid, container core.Point) (core.Point, bool) {
	for _, n := range grid.Neighbors8 {
		nx, ny := container.X+n.X, container.Y+n.Y
		if !grid.InBounds(nx, ny) || built.IsBuilt(nx, ny) {
			continue
		}
		if !nearWallOrEdge(terrain, nx, ny) {
			return core.Point{X: nx, Y: ny}, true
		}
	}
	for _, n := range grid.Neighbors8 {
		nx, ny := container.X+n.X, container.Y+n.Y
		if !grid.InBounds(nx, ny) || built.IsBuilt(nx, ny) {
			continue
		}
		if !onWallOrEdge(terrain, nx, ny) {
			return core.Point{X: nx, Y: ny}, true
		}
	}
	return core.Point{}, false
}
