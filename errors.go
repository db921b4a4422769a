package tinyrender

import "errors"

var (
	// ErrMissingUV is returned when texture coordinates are required from a
	// vertex that was built without them.
	ErrMissingUV = errors.New("vertex has no texture coordinates")
	// ErrUVAlreadySet is returned by Vertex.SetUV on a vertex that already
	// carries texture coordinates.
	ErrUVAlreadySet = errors.New("vertex texture coordinates already set")
)
