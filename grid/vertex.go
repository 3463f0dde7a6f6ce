package grid

// PosToVertex maps a tile coordinate to its flat vertex id over [0,2500),
// the bijection spec.md §3 and §8 require. The split-vertex flow graph
// layers TOP/BOT/SOURCE/SINK vertices on top of this id (see package flow).
func PosToVertex(x, y int) int {
	return Index(x, y)
}

// VertexToPos inverts PosToVertex.
func VertexToPos(v int) (x, y int) {
	return v % Size, v / Size
}
