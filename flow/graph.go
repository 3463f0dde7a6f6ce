// Package flow implements the split-vertex maximum-flow / minimum-cut
// graph spec.md §3 and §4.2 describe: a Dinic solver over a per-tile
// TOP/BOT split with a single SOURCE and SINK, used to reduce "minimum
// defensive wall set" to a min-cut problem.
package flow

import "github.com/bestkurisu/screeps-room-planner/grid"

// Edge is a directed arc in the residual graph. Rev is the index of
// this edge's reverse partner in edges[To]'s slice — edges[e.To][e.Rev] is
// always the reverse of e, the invariant spec.md §4.2 names explicitly.
type Edge struct {
	To   int
	Rev  int
	Cap  int
	Flow int
}

// Graph is the adjacency-list residual graph over vertices 0..n-1.
type Graph struct {
	edges [][]Edge
}

// NewGraph allocates a graph with n vertices and no edges.
func NewGraph(n int) *Graph {
	return &Graph{edges: make([][]Edge, n)}
}

// NumVertices returns the number of vertices the graph was sized for.
func (g *Graph) NumVertices() int {
	return len(g.edges)
}

// Edges returns the outgoing edge slice for vertex u, for read-only use.
// The BFS/DFS passes and cut extraction in this package index g.edges
// directly.
func (g *Graph) Edges(u int) []Edge {
	return g.edges[u]
}

// AddEdge appends a forward edge u→v with the given capacity and its
// zero-capacity reverse partner v→u, per spec.md §4.2.
func (g *Graph) AddEdge(u, v, cap int) {
	g.edges[u] = append(g.edges[u], Edge{To: v, Rev: len(g.edges[v]), Cap: cap})
	g.edges[v] = append(g.edges[v], Edge{To: u, Rev: len(g.edges[u]) - 1, Cap: 0})
}

// addFlow pushes delta units of flow along the edge at (u, idx) and
// subtracts the same amount from its reverse partner's flow.
func (g *Graph) addFlow(u, idx, delta int) {
	e := &g.edges[u][idx]
	e.Flow += delta
	rev := &g.edges[e.To][e.Rev]
	rev.Flow -= delta
}

// residual returns the remaining capacity of the edge at (u, idx).
func (g *Graph) residual(u, idx int) int {
	e := g.edges[u][idx]
	return e.Cap - e.Flow
}

// Split-vertex layout constants from spec.md §3: each tile (x,y) owns a
// TOP and a BOT vertex; SOURCE and SINK follow the 2*50*50 tile vertices.
const (
	NumTileVertices = 2 * grid.Cells
	Source          = NumTileVertices
	Sink            = NumTileVertices + 1
	NumVertices     = NumTileVertices + 2
)

// Infinity stands in for ∞ capacity edges and the DFS bottleneck's initial
// value. It is large enough that it can never be the true bottleneck of a
// flow bounded by at most NumTileVertices unit-capacity TOP→BOT edges, and
// is the single source of truth both dfsBlockingFlow's initial bottleneck
// and callers' infinite-capacity edges are defined against, so the two can
// never drift independently.
const Infinity = 1 << 30

// Top returns the TOP vertex id for tile (x,y).
func Top(x, y int) int {
	return grid.Index(x, y)
}

// Bot returns the BOT vertex id for tile (x,y).
func Bot(x, y int) int {
	return grid.Index(x, y) + grid.Cells
}
