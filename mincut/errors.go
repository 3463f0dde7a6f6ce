package mincut

import "errors"

// ErrInvalidBounds is the sentinel spec.md §7 names for a bounds rectangle
// violating 0 ≤ x1 < x2 ≤ 49, 0 ≤ y1 < y2 ≤ 49.
var ErrInvalidBounds = errors.New("mincut: invalid bounds")
