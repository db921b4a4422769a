package tinyrender

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Normalize divides v by its euclidean norm. Unlike r3.Unit the zero
// vector is not special cased: its result has NaN components, so callers
// must not normalize degenerate normals.
func Normalize(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	return r3.Vec{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// R3ToI converts r3.Vec (float) to V3i (integer), truncating toward zero.
func R3ToI(a r3.Vec) V3i {
	return V3i{int(a.X), int(a.Y), int(a.Z)}
}

// R2ToI converts r2.Vec (float) to V2i (integer), truncating toward zero.
func R2ToI(a r2.Vec) V2i {
	return V2i{int(a.X), int(a.Y)}
}
