package mincut

import (
	"sort"
	"testing"

	"github.com/bestkurisu/screeps-room-planner/core"
	"github.com/bestkurisu/screeps-room-planner/grid"
	"github.com/bestkurisu/screeps-room-planner/internal/testutil"
	"github.com/bestkurisu/screeps-room-planner/terrain"
)

var openRoom = testutil.OpenRoom()

func sortPoints(pts []core.Point) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
}

func TestGetCutTilesOpenRoomNeighborhood(t *testing.T) {
	protected := []core.Point{{X: 25, Y: 25}}
	cut, err := GetCutTiles(openRoom, protected, nil, nil)
	if err != nil {
		t.Fatalf("GetCutTiles: %v", err)
	}

	want := []core.Point{
		{X: 24, Y: 24}, {X: 25, Y: 24}, {X: 26, Y: 24},
		{X: 24, Y: 25}, {X: 26, Y: 25},
		{X: 24, Y: 26}, {X: 25, Y: 26}, {X: 26, Y: 26},
	}
	sortPoints(cut)
	sortPoints(want)
	if len(cut) != len(want) {
		t.Fatalf("cut = %v, want %v", cut, want)
	}
	for i := range want {
		if cut[i] != want[i] {
			t.Fatalf("cut = %v, want %v", cut, want)
		}
	}
}

func TestGetCutTilesCorridor(t *testing.T) {
	protected := []core.Point{{X: 10, Y: 25}}
	cut, err := GetCutTiles(testutil.Corridor(25), protected, nil, nil)
	if err != nil {
		t.Fatalf("GetCutTiles: %v", err)
	}

	want := []core.Point{{X: 9, Y: 25}, {X: 11, Y: 25}}
	sortPoints(cut)
	sortPoints(want)
	if len(cut) != len(want) {
		t.Fatalf("cut = %v, want %v", cut, want)
	}
	for i := range want {
		if cut[i] != want[i] {
			t.Fatalf("cut = %v, want %v", cut, want)
		}
	}
}

func TestGetCutTilesDeadEndPruning(t *testing.T) {
	bounds := grid.Bounds{X1: 10, Y1: 10, X2: 20, Y2: 20}
	protected := []core.Point{{X: 15, Y: 15}}

	cut, err := GetCutTiles(openRoom, protected, &bounds, nil)
	if err != nil {
		t.Fatalf("GetCutTiles: %v", err)
	}
	if len(cut) == 0 {
		t.Fatal("expected a non-empty cut")
	}

	g := terrain.Classify(openRoom, grid.FullRoom())
	for _, c := range cut {
		g.Set(c.X, c.Y, grid.Unwalkable)
	}

	queue := make([]core.Point, 0, 64)
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			if innerExitBand(x, y) && g.At(x, y) == grid.ToExit {
				queue = append(queue, core.Point{X: x, Y: y})
			}
		}
	}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, n := range grid.Neighbors8 {
			nx, ny := cur.X+n.X, cur.Y+n.Y
			if g.At(nx, ny) == grid.Normal {
				g.Set(nx, ny, grid.ToExit)
				queue = append(queue, core.Point{X: nx, Y: ny})
			}
		}
	}

	for _, c := range cut {
		if !hasToExitNeighbor(g, c.X, c.Y) {
			t.Errorf("rampart tile (%d,%d) has no reachable TO_EXIT neighbor after pruning", c.X, c.Y)
		}
	}
}

func TestGetCutTilesIsolatedPocketYieldsNoCut(t *testing.T) {
	pocket := grid.Bounds{X1: 20, Y1: 20, X2: 30, Y2: 30}
	protected := []core.Point{{X: 25, Y: 25}}

	cut, err := GetCutTiles(testutil.IsolatedPocket(pocket), protected, nil, nil)
	if err != nil {
		t.Fatalf("GetCutTiles: %v", err)
	}
	if len(cut) != 0 {
		t.Errorf("a protected tile with no path to any exit needs no rampart, got %v", cut)
	}
}

func TestGetCutTilesInvalidBounds(t *testing.T) {
	bad := grid.Bounds{X1: 5, Y1: 5, X2: 5, Y2: 10}
	_, err := GetCutTiles(openRoom, nil, &bad, nil)
	if err == nil {
		t.Fatal("expected an error for invalid bounds")
	}
}

func TestCalculateProducesRampartsAndExposureMatrix(t *testing.T) {
	controller := core.Point{X: 25, Y: 25}
	protected := []core.Point{{X: 10, Y: 10}}

	cut, cost, err := Calculate(openRoom, protected, controller, nil)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if len(cut) == 0 {
		t.Fatal("expected a non-empty rampart set")
	}

	sawExposed, sawClear := false, false
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			if cost.Get(x, y) == 0xff {
				sawExposed = true
			} else {
				sawClear = true
			}
		}
	}
	if !sawExposed {
		t.Error("expected at least one exposed tile reachable from an exit")
	}
	if !sawClear {
		t.Error("expected at least one clear (non-exposed) tile")
	}

	for _, r := range cut {
		if cost.Get(r.X, r.Y) != 0 {
			t.Errorf("rampart tile (%d,%d) should not itself be exposed", r.X, r.Y)
		}
	}
}

func TestExpandProtectedTerminatesAtDepthFour(t *testing.T) {
	result := expandProtected([]core.Point{{X: 25, Y: 25}})

	seen := make(map[core.Point]bool, len(result))
	for _, p := range result {
		seen[p] = true
	}
	if !seen[core.Point{X: 21, Y: 25}] {
		t.Error("expected depth-4 tile (21,25) to be included")
	}
	if seen[core.Point{X: 20, Y: 25}] {
		t.Error("did not expect depth-5 tile (20,25) to be included")
	}
}
