package layout

import (
	"testing"

	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/field"
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/host"
	"github.com/bestkurisu/screeps-room-planner/tuning"
)

func openTerrain(x, y int) int { return 0 }

func wallAt(walls map[[2]int]bool) host.TerrainQuery {
	return func(x, y int) int {
		if walls[[2]int{x, y}] {
			return 1
		}
		return 0
	}
}

func noLookup(x, y int) []host.Occupant { return nil }

type stubMemory struct {
	entries map[string]string
}

func newStubMemory() *stubMemory { return &stubMemory{entries: map[string]string{}} }

func (m *stubMemory) Set(key, value string) { m.entries[key] = value }

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func chebyshev(a, b core.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// straightLinePathFinder is a test double that walks diagonally toward the
// goal, stopping opts.Range tiles short of it, mirroring the shape a real
// host path-finder's result would take without needing actual A*.
func straightLinePathFinder(start, goal core.Point, opts host.PathOptions) []core.Point {
	path := []core.Point{start}
	cur := start
	for chebyshev(cur, goal) > opts.Range {
		cur = core.Point{X: cur.X + sign(goal.X-cur.X), Y: cur.Y + sign(goal.Y-cur.Y)}
		path = append(path, cur)
	}
	return path
}

func TestCanPutRejectsOutOfBounds(t *testing.T) {
	built := grid.NewBuiltGrid()
	if CanPut(0, 0, TowerCluster, openTerrain, built, noLookup) {
		t.Error("tower anchored at (0,0) should reject: offset (-1,-1) is out of bounds")
	}
}

func TestCanPutRejectsWall(t *testing.T) {
	built := grid.NewBuiltGrid()
	terrain := wallAt(map[[2]int]bool{{25, 25}: true})
	if CanPut(25, 25, ObserverCluster, terrain, built, noLookup) {
		t.Error("observer anchored on a wall tile should reject")
	}
}

func TestCanPutRejectsAlreadyBuilt(t *testing.T) {
	built := grid.NewBuiltGrid()
	built.MarkBuilt(25, 25)
	if CanPut(25, 25, ObserverCluster, openTerrain, built, noLookup) {
		t.Error("observer anchored on an already-built tile should reject")
	}
}

func TestCanPutRejectsOccupant(t *testing.T) {
	built := grid.NewBuiltGrid()
	lookup := func(x, y int) []host.Occupant {
		if x == 25 && y == 25 {
			return []host.Occupant{{Kind: "constructionSite"}}
		}
		return nil
	}
	if CanPut(25, 25, ObserverCluster, openTerrain, built, lookup) {
		t.Error("observer anchored on an occupied tile should reject")
	}
}

func TestPutMarksEveryOffsetBuilt(t *testing.T) {
	built := grid.NewBuiltGrid()
	record := &LayoutRecord{}
	Put(25, 25, TowerCluster, built, record)

	for _, s := range TowerCluster {
		if !built.IsBuilt(25+s.DX, 25+s.DY) {
			t.Errorf("offset (%d,%d) should be built", s.DX, s.DY)
		}
	}
	if got := len(record.Get(Tower)); got != 3 {
		t.Errorf("record has %d towers, want 3", got)
	}
}

func TestFindMinRowMajorTieBreak(t *testing.T) {
	f := field.NewField(5)
	p, ok := findMin(f, func(x, y int) bool { return true })
	if !ok {
		t.Fatal("expected a candidate")
	}
	if p != (core.Point{X: 0, Y: 0}) {
		t.Errorf("findMin tie-break = %+v, want (0,0)", p)
	}
}

func TestFindMinNoCandidateReturnsFalse(t *testing.T) {
	f := field.NewField(0)
	_, ok := findMin(f, func(x, y int) bool { return false })
	if ok {
		t.Error("expected no candidate to satisfy an always-false predicate")
	}
}

func TestFindMinPicksLowestValue(t *testing.T) {
	f := field.NewField(10)
	f.Set(30, 20, 1)
	p, ok := findMin(f, func(x, y int) bool { return true })
	if !ok {
		t.Fatal("expected a candidate")
	}
	if p != (core.Point{X: 30, Y: 20}) {
		t.Errorf("findMin = %+v, want (30,20)", p)
	}
}

func TestBuildLayoutOpenRoomSmoke(t *testing.T) {
	sources := []Resource{
		{ID: "source1", Pos: core.Point{X: 10, Y: 10}},
		{ID: "source2", Pos: core.Point{X: 40, Y: 40}},
	}
	mineral := Resource{ID: "mineral1", Pos: core.Point{X: 5, Y: 45}}
	controller := Resource{ID: "controller1", Pos: core.Point{X: 25, Y: 5}}

	record, err := BuildLayout(openTerrain, straightLinePathFinder, noLookup, newStubMemory(), sources, mineral, controller, nil)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}

	if len(record.Get(Storage)) != 1 {
		t.Errorf("expected exactly one storage tile, got %d", len(record.Get(Storage)))
	}
	if len(record.Get(Lab)) != 10 {
		t.Errorf("expected 10 lab tiles, got %d", len(record.Get(Lab)))
	}
	if len(record.Get(Tower)) != 3*tuning.TowerExtensionIterations {
		t.Errorf("expected %d tower tiles, got %d", 3*tuning.TowerExtensionIterations, len(record.Get(Tower)))
	}
	if len(record.Get(Observer)) != 1 {
		t.Errorf("expected exactly one observer tile, got %d", len(record.Get(Observer)))
	}
	if len(record.Get(Container)) != len(sources)+2 {
		t.Errorf("expected %d containers (sources+mineral+controller), got %d", len(sources)+2, len(record.Get(Container)))
	}
}

func TestBuildLayoutWritesMemory(t *testing.T) {
	sources := []Resource{{ID: "source1", Pos: core.Point{X: 10, Y: 10}}}
	mineral := Resource{ID: "mineral1", Pos: core.Point{X: 5, Y: 45}}
	controller := Resource{ID: "controller1", Pos: core.Point{X: 25, Y: 5}}

	mem := newStubMemory()
	_, err := BuildLayout(openTerrain, straightLinePathFinder, noLookup, mem, sources, mineral, controller, nil)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}

	if _, ok := mem.entries["containerPos:controller1"]; !ok {
		t.Error("expected a containerPos entry keyed by controller1")
	}
	if _, ok := mem.entries["containerPos:source1"]; !ok {
		t.Error("expected a containerPos entry keyed by source1")
	}
	if _, ok := mem.entries["containerPos:mineral1"]; !ok {
		t.Error("expected a containerPos entry keyed by mineral1")
	}
}
