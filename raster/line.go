package raster

import (
	"math"

	"github.com/soypat/tinyrender"
	"github.com/soypat/tinyrender/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Line draws a line from (x0,y0) to (x1,y1) inclusive with Bresenham's
// algorithm. The segment is clipped to the image first.
func Line(img *Image, x0, y0, x1, y1 int, c tinyrender.Color) {
	segment(img, r2.Vec{X: float64(x0), Y: float64(y0)}, r2.Vec{X: float64(x1), Y: float64(y1)}, c)
}

// DrawWireframe draws the three edges of the screen projection of t.
// Edges with a non-finite endpoint are skipped.
func DrawWireframe(img *Image, t tinyrender.Triangle, c tinyrender.Color) {
	for i := range t {
		p, q := screen2(t[i].Screen), screen2(t[(i+1)%3].Screen)
		if !finite2(p) || !finite2(q) {
			continue
		}
		segment(img, p, q, c)
	}
}

// segment clips pq to img and rasterizes what is left with truncated
// endpoints. The clip box ends half a pixel inside the far edges so that
// rounding in the clip never loses the last row or column.
func segment(img *Image, p, q r2.Vec, c tinyrender.Color) {
	if img.width == 0 || img.height == 0 {
		return
	}
	clip := d2.Box{Max: r2.Vec{X: float64(img.width) - 0.5, Y: float64(img.height) - 0.5}}
	if !clip.Contains(p) || !clip.Contains(q) {
		var ok bool
		p, q, ok = clipSegment(p, q, clip)
		if !ok {
			return
		}
	}
	bresenham(img, int(p.X), int(p.Y), int(q.X), int(q.Y), c)
}

// clipSegment is the Liang-Barsky line clip of pq against box.
// ok is false when no part of the segment lies in the box.
func clipSegment(p, q r2.Vec, box d2.Box) (cp, cq r2.Vec, ok bool) {
	d := r2.Sub(q, p)
	if !finite2(d) {
		return cp, cq, false
	}
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-d.X, p.X - box.Min.X},
		{d.X, box.Max.X - p.X},
		{-d.Y, p.Y - box.Min.Y},
		{d.Y, box.Max.Y - p.Y},
	} {
		den, num := e[0], e[1]
		if den == 0 {
			if num < 0 {
				return cp, cq, false
			}
			continue
		}
		r := num / den
		if den < 0 {
			if r > t1 {
				return cp, cq, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return cp, cq, false
			}
			t1 = math.Min(t1, r)
		}
	}
	cp, cq = p, q
	if t0 > 0 {
		cp = r2.Add(p, r2.Scale(t0, d))
	}
	if t1 < 1 {
		cq = r2.Add(p, r2.Scale(t1, d))
	}
	// Rounding may leave an endpoint a hair outside the box.
	cp = d2.MinElem(d2.MaxElem(cp, box.Min), box.Max)
	cq = d2.MinElem(d2.MaxElem(cq, box.Min), box.Max)
	return cp, cq, true
}

func bresenham(img *Image, x0, y0, x1, y1 int, c tinyrender.Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		img.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func finite2(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
