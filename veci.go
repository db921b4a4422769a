/*

Integer 2D/3D Vectors

*/

package tinyrender

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// V2i is a 2D integer vector.
type V2i [2]int

// V3i is a 3D integer vector.
type V3i [3]int

// Add adds two vectors. Return v = a + b.
func (a V2i) Add(b V2i) V2i {
	return V2i{a[0] + b[0], a[1] + b[1]}
}

// Add adds two vectors. Return v = a + b.
func (a V3i) Add(b V3i) V3i {
	return V3i{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub subtracts two vectors. Return v = a - b.
func (a V2i) Sub(b V2i) V2i {
	return V2i{a[0] - b[0], a[1] - b[1]}
}

// Sub subtracts two vectors. Return v = a - b.
func (a V3i) Sub(b V3i) V3i {
	return V3i{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale multiplies the vector by a float. The result is always a float vector.
func (a V2i) Scale(f float64) r2.Vec {
	return r2.Scale(f, a.ToV2())
}

// Scale multiplies the vector by a float. The result is always a float vector.
func (a V3i) Scale(f float64) r3.Vec {
	return r3.Scale(f, a.ToV3())
}

// Dot returns the dot product of a and b.
func (a V3i) Dot(b V3i) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the cross product a x b.
func (a V3i) Cross(b V3i) V3i {
	return V3i{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Normalize returns the unit vector colinear to a. The norm is computed
// in float64. The zero vector yields NaN components.
func (a V3i) Normalize() r3.Vec {
	return Normalize(a.ToV3())
}

// ToV2 converts V2i (integer) to r2.Vec (float).
func (a V2i) ToV2() r2.Vec {
	return r2.Vec{X: float64(a[0]), Y: float64(a[1])}
}

// ToV3 converts V3i (integer) to r3.Vec (float).
func (a V3i) ToV3() r3.Vec {
	return r3.Vec{X: float64(a[0]), Y: float64(a[1]), Z: float64(a[2])}
}
