package d2

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// BoxOf returns the smallest box containing all points.
func BoxOf(points ...r2.Vec) Box {
	b := Box{Min: Elem(math.Inf(1)), Max: Elem(math.Inf(-1))}
	for _, p := range points {
		b = b.Include(p)
	}
	return b
}

// Include enlarges a 2d box to include a point.
func (a Box) Include(v r2.Vec) Box {
	return Box{MinElem(a.Min, v), MaxElem(a.Max, v)}
}

// Contains checks if the 2d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r2.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y &&
		v.X <= a.Max.X && v.Y <= a.Max.Y
}

// Pixels returns the half open integer rectangle covering every pixel whose
// truncated coordinate lies within the box: the corners are truncated toward
// zero and the maximum corner is made inclusive.
func (a Box) Pixels() image.Rectangle {
	return image.Rect(
		int(a.Min.X), int(a.Min.Y),
		int(a.Max.X)+1, int(a.Max.Y)+1,
	)
}
