package core

// Point represents a 2D tile coordinate.
type Point struct {
	X, Y int
}
