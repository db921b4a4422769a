package tinyrender

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is a triangle corner. Its object space position is fixed at
// construction. Texture coordinates are optional and may be attached once.
// Screen and texel positions are derived from the former two.
type Vertex struct {
	coords r3.Vec
	uv     r2.Vec
	hasUV  bool
	// Screen is the pixel space position computed by ScaleToImage.
	// Z is carried from object space unchanged.
	Screen   r3.Vec
	texel    r2.Vec
	hasTexel bool
}

// NewVertex returns a vertex without texture coordinates.
func NewVertex(coords r3.Vec) Vertex {
	return Vertex{coords: coords}
}

// NewVertexUV returns a vertex with normalized texture coordinates uv.
func NewVertexUV(coords r3.Vec, uv r2.Vec) Vertex {
	return Vertex{coords: coords, uv: uv, hasUV: true}
}

// Coords returns the object space position of the vertex.
func (v Vertex) Coords() r3.Vec { return v.coords }

// UV returns the normalized texture coordinates and whether the vertex has any.
func (v Vertex) UV() (r2.Vec, bool) { return v.uv, v.hasUV }

// Texel returns the texture space position computed by ScaleToTexture.
func (v Vertex) Texel() (r2.Vec, bool) { return v.texel, v.hasTexel }

// SetUV attaches normalized texture coordinates to a vertex built without them.
func (v *Vertex) SetUV(uv r2.Vec) error {
	if v.hasUV {
		return ErrUVAlreadySet
	}
	v.uv = uv
	v.hasUV = true
	return nil
}

// ScaleToImage maps object space x,y in [-1,1] to pixel coordinates of a
// w by h image and stores the result in Screen.
func (v *Vertex) ScaleToImage(w, h int) {
	v.Screen = r3.Vec{
		X: (v.coords.X + 1) * float64(w) / 2,
		Y: (v.coords.Y + 1) * float64(h) / 2,
		Z: v.coords.Z,
	}
}

// ScaleToTexture maps the normalized texture coordinates to texel
// coordinates of a tw by th texture.
func (v *Vertex) ScaleToTexture(tw, th int) error {
	if !v.hasUV {
		return ErrMissingUV
	}
	v.texel = r2.Vec{X: v.uv.X * float64(tw), Y: v.uv.Y * float64(th)}
	v.hasTexel = true
	return nil
}
