package geodesic

import "errors"

// ErrZeroMagnitude is the panic value of Normalize for a zero vector.
var ErrZeroMagnitude = errors.New("geodesic: cannot normalize zero-magnitude point")

// ErrFaceIndex marks a face that references a vertex outside the vertex array.
var ErrFaceIndex = errors.New("geodesic: face vertex index out of range")
