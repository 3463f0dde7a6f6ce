// Package tuning holds every weight, radius, and structural constant the
// min-cut and layout packages use, following the teacher's parameter
// package convention: plain exported constants, one file per concern,
// short comments on the non-obvious numbers. No file or environment
// config — spec.md §6 rules that out for the core.
package tuning

// Min-cut protected-region expansion (spec.md §4.6).
const (
	// ProtectedMoatDepth is how many BFS steps the protected set expands
	// around each seed before calling the min-cut driver. Depth-3 cells
	// still enqueue their neighbors (added at depth 4); depth-4 cells do
	// not continue the expansion — a 3-wide moat, not a symmetric cutoff.
	// See SPEC_FULL.md §4 Open Questions.
	ProtectedMoatDepth = 3
)

// Distance-field radii used when building layout score fields (spec.md §4.6).
const (
	SourceFieldRadius     = 3
	MineralFieldRadius    = 2
	ControllerFieldRadius = 4
	StorageFieldRadius    = 0
)

// Wall-proximity soft-preference field: value = (previous + WallFieldStep) * WallFieldDecay.
const (
	WallFieldStep  = 10
	WallFieldDecay = 0.75
)

// Storage placement score weights: sourceField + MineralWeight*mineralField
// + controllerField - wallField.
const (
	StorageMineralWeight = 0.25
)

// Lab placement score weights.
const (
	LabMineralWeight    = 1.0
	LabStorageWeight    = 5.0
	LabSourceWeight     = 0.01
	LabControllerWeight = 0.01
)

// Tower placement score weights.
const (
	TowerMineralWeight    = 0.01
	TowerStorageWeight    = 1.0
	TowerSourceWeight     = 0.01
	TowerControllerWeight = 0.01
)

// Extension placement score weights.
const (
	ExtensionMineralWeight    = 0.01
	ExtensionStorageWeight    = 4.0
	ExtensionSourceWeight     = 1.0
	ExtensionControllerWeight = 0.01
)

// Observer placement reuses the tower score weights (spec.md §4.6).

// Tower/extension iteration count per spec.md §4.6 step 3.
const TowerExtensionIterations = 6

// Road/container path-finding options per spec.md §4.6 step 5-6.
const (
	RoadPathRange       = 1
	ControllerPathRange = 3
	ContainerPathRange  = 1
	MineralPathRange    = 1
	RoadHeuristicWeight = 1.0
	RoadSwampCost       = 1
)
