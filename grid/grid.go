// Package grid holds the fixed 50×50 room primitives shared by the
// terrain classifier, the flow graph, the dead-end pruner, and the
// layout planner: tile tags, the 8-neighbor offset table, and the
// vertex↔coordinate bijection used by the split-vertex flow graph.
package grid

import "github.com/bestkurisu/screeps-room-planner/core"

// Size is the fixed room dimension in both axes.
const Size = 50

// Cells is the total number of tiles in a room.
const Cells = Size * Size

// Neighbors8 lists the 8-neighbor offsets in a fixed, deterministic order.
// Iteration order matters: spec.md §5 requires byte-identical output across
// calls with identical inputs, and several operations (the flow graph's
// edge insertion order, layout's link-placement scan) depend on this exact
// order.
var Neighbors8 = [8]core.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// InBounds reports whether (x,y) is a valid room tile.
func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Bounds is an inclusive integer rectangle per spec.md §3: the classifier
// only tags tiles inside it; tiles outside remain UNWALKABLE regardless of
// terrain.
type Bounds struct {
	X1, Y1, X2, Y2 int
}

// FullRoom is the default bounds covering the entire room.
func FullRoom() Bounds {
	return Bounds{X1: 0, Y1: 0, X2: Size - 1, Y2: Size - 1}
}

// Valid reports whether the bounds satisfy spec.md §3's invariant:
// 0 ≤ x1 < x2 ≤ 49, 0 ≤ y1 < y2 ≤ 49.
func (b Bounds) Valid() bool {
	return b.X1 >= 0 && b.Y1 >= 0 &&
		b.X2 <= Size-1 && b.Y2 <= Size-1 &&
		b.X1 < b.X2 && b.Y1 < b.Y2
}

// Contains reports whether (x,y) is inside the inclusive rectangle.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X1 && x <= b.X2 && y >= b.Y1 && y <= b.Y2
}

// IsFullRoom reports whether b covers the entire 50×50 room.
func (b Bounds) IsFullRoom() bool {
	return b.X1 == 0 && b.Y1 == 0 && b.X2 == Size-1 && b.Y2 == Size-1
}

// Grid is a 50×50 tile-tag array stored flat, row-major.
type Grid struct {
	tags [Cells]Tag
}

// NewGrid returns a grid with every tile initialized to UNWALKABLE.
func NewGrid() *Grid {
	g := &Grid{}
	for i := range g.tags {
		g.tags[i] = Unwalkable
	}
	return g
}

// Index returns the flat row-major index of (x,y).
func Index(x, y int) int {
	return y*Size + x
}

// At returns the tag at (x,y); out-of-range reads return UNWALKABLE, per
// spec.md §7's defensive-read rule.
func (g *Grid) At(x, y int) Tag {
	if !InBounds(x, y) {
		return Unwalkable
	}
	return g.tags[Index(x, y)]
}

// Set writes the tag at (x,y); out-of-range writes are silently skipped.
func (g *Grid) Set(x, y int, tag Tag) {
	if !InBounds(x, y) {
		return
	}
	g.tags[Index(x, y)] = tag
}
