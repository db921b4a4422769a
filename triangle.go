package tinyrender

import "gonum.org/v1/gonum/spatial/r3"

// Triangle is an ordered set of three vertices. The order defines the
// winding and hence the sign of SurfaceNormal.
type Triangle [3]Vertex

// SurfaceNormal returns the unit normal of the object space triangle.
// It is NaN for degenerate triangles.
func (t Triangle) SurfaceNormal() r3.Vec {
	v := r3.Sub(t[1].coords, t[0].coords)
	w := r3.Sub(t[2].coords, t[0].coords)
	return Normalize(r3.Cross(v, w))
}

// ScaleToImage projects all vertices onto a w by h image.
func (t *Triangle) ScaleToImage(w, h int) {
	for i := range t {
		t[i].ScaleToImage(w, h)
	}
}

// ScaleToTexture maps all vertex UVs into a tw by th texture. No vertex is
// modified if any of them lacks texture coordinates.
func (t *Triangle) ScaleToTexture(tw, th int) error {
	if !t.HasUV() {
		return ErrMissingUV
	}
	for i := range t {
		t[i].ScaleToTexture(tw, th)
	}
	return nil
}

// HasUV reports whether every vertex carries texture coordinates.
func (t Triangle) HasUV() bool {
	return t[0].hasUV && t[1].hasUV && t[2].hasUV
}

// SignedArea returns twice the signed area of the screen space projection.
// It is positive for counter-clockwise screen winding.
func (t Triangle) SignedArea() float64 {
	a, b, c := t[0].Screen, t[1].Screen, t[2].Screen
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Degenerate reports whether the screen projection has zero area.
func (t Triangle) Degenerate() bool {
	return t.SignedArea() == 0
}

// Transform returns a copy of t with every object space position mapped
// through fn. Texture coordinates are kept, derived fields are reset.
func (t Triangle) Transform(fn func(r3.Vec) r3.Vec) Triangle {
	var out Triangle
	for i, v := range t {
		out[i] = Vertex{coords: fn(v.coords), uv: v.uv, hasUV: v.hasUV}
	}
	return out
}
