// Package raster scan-converts screen space triangles into an Image with
// flat shading, a depth buffer and optional nearest neighbour texturing.
package raster

import (
	"fmt"
	"image"

	"github.com/soypat/tinyrender"
	"github.com/soypat/tinyrender/internal/d2"
	"github.com/soypat/tinyrender/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// DrawTriangle rasterizes t, whose vertices must already be projected with
// ScaleToImage, into img and returns the number of fragments written.
//
// The whole triangle is skipped if its surface normal does not face the
// light. Fragments pass the depth test when their interpolated screen z is
// strictly greater than the stored depth. Without a texture every fragment
// gets the same white shade scaled by the light intensity. With a texture
// the nearest texel is written unshaded; every vertex must then carry
// texture coordinates or an error wrapping tinyrender.ErrMissingUV is
// returned before any pixel is touched.
func DrawTriangle(img *Image, t tinyrender.Triangle, light r3.Vec, tex *Image) (int, error) {
	intensity := r3.Dot(t.SurfaceNormal(), tinyrender.Normalize(light))
	if !(intensity > 0) {
		return 0, nil
	}
	if tex != nil {
		if err := t.ScaleToTexture(tex.Width(), tex.Height()); err != nil {
			return 0, fmt.Errorf("raster: textured triangle: %w", err)
		}
	}
	box := BoundingBox(t, img.Bounds())
	if box.Empty() || t.Degenerate() {
		return 0, nil
	}

	shade := tinyrender.Shade(tinyrender.White, intensity)
	a, b, c := t[0].Screen, t[1].Screen, t[2].Screen
	ta, _ := t[0].Texel()
	tb, _ := t[1].Texel()
	tc, _ := t[2].Texel()
	n := 0
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			w, inside := Barycentric(a, b, c, r2.Vec{X: float64(x), Y: float64(y)})
			if !inside {
				continue
			}
			z := d3.Lerp3(a, b, c, w).Z
			if z <= img.Depth(x, y) {
				continue
			}
			col := shade
			if tex != nil {
				col = tex.Sample(d2.Lerp3(ta, tb, tc, w))
			}
			img.SetDepth(x, y, z)
			img.SetPixel(x, y, col)
			n++
		}
	}
	return n, nil
}

// BoundingBox returns the half open pixel rectangle covering the screen
// projection of t, clipped to clip. Vertex coordinates are truncated.
func BoundingBox(t tinyrender.Triangle, clip image.Rectangle) image.Rectangle {
	box := d2.BoxOf(
		screen2(t[0].Screen),
		screen2(t[1].Screen),
		screen2(t[2].Screen),
	)
	return box.Pixels().Intersect(clip)
}

// Barycentric returns the weights of p with respect to the x,y projection of
// triangle abc, each the ratio of a sub-triangle's signed area to the total.
// inside is true when all weights are non-negative, edges included. A
// degenerate triangle yields zero weights and inside false.
func Barycentric(a, b, c r3.Vec, p r2.Vec) (w [3]float64, inside bool) {
	area := edge(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	if area == 0 {
		return w, false
	}
	w[0] = edge(b.X, b.Y, c.X, c.Y, p.X, p.Y) / area
	w[1] = edge(c.X, c.Y, a.X, a.Y, p.X, p.Y) / area
	w[2] = edge(a.X, a.Y, b.X, b.Y, p.X, p.Y) / area
	return w, w[0] >= 0 && w[1] >= 0 && w[2] >= 0
}

// edge is the edge function: twice the signed area of triangle (0,1,p).
func edge(x0, y0, x1, y1, px, py float64) float64 {
	return (x1-x0)*(py-y0) - (y1-y0)*(px-x0)
}

func screen2(v r3.Vec) r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }
