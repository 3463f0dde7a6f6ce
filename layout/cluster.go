package layout

import "github.com/bestkurisu/screeps-room-planner/core"

// StructureKind is the tagged-variant replacement for the stringly-typed
// cluster maps the source uses, per spec.md §9's REDESIGN FLAG. There are
// 14 kinds, matching the keys of the layout record spec.md §6 describes.
type StructureKind int

const (
	Spawn StructureKind = iota
	Extension
	Extractor
	Factory
	Lab
	Tower
	Link
	Nuker
	Observer
	PowerSpawn
	Storage
	Terminal
	Container
	Road
	numStructureKinds
)

func (k StructureKind) String() string {
	switch k {
	case Spawn:
		return "spawn"
	case Extension:
		return "extension"
	case Extractor:
		return "extractor"
	case Factory:
		return "factory"
	case Lab:
		return "lab"
	case Tower:
		return "tower"
	case Link:
		return "link"
	case Nuker:
		return "nuker"
	case Observer:
		return "observer"
	case PowerSpawn:
		return "powerSpawn"
	case Storage:
		return "storage"
	case Terminal:
		return "terminal"
	case Container:
		return "container"
	case Road:
		return "road"
	default:
		return "unknown"
	}
}

// Structure is one member of a Cluster: a kind tag plus its offset from the
// cluster's anchor tile.
type Structure struct {
	Kind   StructureKind
	DX, DY int
}

// Cluster is a fixed-size table of relative offsets labeled by structure
// kind, placed as a group at an anchor tile, per spec.md §4.6.
type Cluster []Structure

// StorageCluster: storage@(0,0), link@(0,1).
var StorageCluster = Cluster{
	{Kind: Storage, DX: 0, DY: 0},
	{Kind: Link, DX: 0, DY: 1},
}

// LabCluster: 10 labs filling the 3×3 block around (0,0) plus (0,2).
var LabCluster = Cluster{
	{Kind: Lab, DX: -1, DY: -1}, {Kind: Lab, DX: 0, DY: -1}, {Kind: Lab, DX: 1, DY: -1},
	{Kind: Lab, DX: -1, DY: 0}, {Kind: Lab, DX: 0, DY: 0}, {Kind: Lab, DX: 1, DY: 0},
	{Kind: Lab, DX: -1, DY: 1}, {Kind: Lab, DX: 0, DY: 1}, {Kind: Lab, DX: 1, DY: 1},
	{Kind: Lab, DX: 0, DY: 2},
}

// TowerCluster: tower@(−1,−1),(0,−1),(1,−1).
var TowerCluster = Cluster{
	{Kind: Tower, DX: -1, DY: -1}, {Kind: Tower, DX: 0, DY: -1}, {Kind: Tower, DX: 1, DY: -1},
}

// ExtensionCluster: extension@(−1,−1),(0,−1),(1,−1),(−1,0),(1,0).
var ExtensionCluster = Cluster{
	{Kind: Extension, DX: -1, DY: -1}, {Kind: Extension, DX: 0, DY: -1}, {Kind: Extension, DX: 1, DY: -1},
	{Kind: Extension, DX: -1, DY: 0}, {Kind: Extension, DX: 1, DY: 0},
}

// ObserverCluster: observer@(0,0).
var ObserverCluster = Cluster{
	{Kind: Observer, DX: 0, DY: 0},
}

// LayoutRecord holds the placement result: an ordered tile list per
// structure kind, indexed directly by StructureKind rather than a string
// map.
type LayoutRecord struct {
	structures [numStructureKinds][]core.Point
}

// Add appends p to kind's tile list.
func (r *LayoutRecord) Add(kind StructureKind, p core.Point) {
	r.structures[kind] = append(r.structures[kind], p)
}

// Get returns kind's tile list, or nil if nothing of that kind was placed.
func (r *LayoutRecord) Get(kind StructureKind) []core.Point {
	return r.structures[kind]
}
