// Package render loads triangle models and textures and renders them into
// a raster.Image.
package render

import (
	"github.com/soypat/tinyrender"
)

// Source is a stream of triangles. ReadTriangles fills t and returns the
// number of triangles written; it returns io.EOF once the stream is
// exhausted.
type Source interface {
	ReadTriangles(t []tinyrender.Triangle) (int, error)
}
