// Package host declares the external collaborators the planning core
// consumes without owning: terrain queries, path-finding, structure
// lookup, persistent memory, and logging. Spec.md §6 lists these as
// out-of-scope for the core itself — this package is only the seam.
package host

import "github.com/bestkurisu/screeps-room-planner/core"

// TerrainQuery is a pure function (x,y) → terrain bits. Bit 0 set means
// wall. The core never caches or mutates terrain; it is assumed immutable
// for the duration of one planning call.
type TerrainQuery func(x, y int) int

// IsWall reports whether q(x,y) designates a wall tile.
func (q TerrainQuery) IsWall(x, y int) bool {
	return q(x, y)&1 != 0
}

// PathOptions mirrors the host path-finder's tunable knobs, per spec.md §6.
type PathOptions struct {
	IgnoreCreeps                 bool
	IgnoreDestructibleStructures bool
	IgnoreRoads                  bool
	SwampCost                    int
	HeuristicWeight              float64
	Range                        int
}

// PathFinder returns an ordered list of tiles from start to goal inclusive
// of intermediate tiles, or an empty slice if no path exists.
type PathFinder func(start, goal core.Point, opts PathOptions) []core.Point

// Occupant describes a structure or construction site the host reports at
// a tile, as returned by Lookup.
type Occupant struct {
	Kind string
}

// Lookup returns the occupants the host's structure/construction-site
// index reports at (x,y); used by the layout planner's CanPut check.
type Lookup func(x, y int) []Occupant

// MemoryBag is the host's persistent key-value store. The layout planner
// writes containerPos/linkPos entries into it, keyed by resource/controller
// id, encoded as "x,y" — spec.md §6. The core never reads from it.
type MemoryBag interface {
	Set(key, value string)
}

// Logger is the minimal sink the core reports diagnostics to. A *log.Logger
// satisfies this directly. A nil Logger is treated as a discard sink —
// spec.md §6 explicitly keeps "console logging" a host responsibility, so
// the core never opens a file or writes to stdout on its own.
type Logger interface {
	Printf(format string, args ...any)
}

// discardLogger is used whenever a nil Logger is supplied.
type discardLogger struct{}

func (discardLogger) Printf(string, ...any) {}

// NormalizeLogger returns l, or a no-op logger if l is nil.
func NormalizeLogger(l Logger) Logger {
	if l == nil {
		return discardLogger{}
	}
	return l
}
