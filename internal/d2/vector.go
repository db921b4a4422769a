package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func Elem(sides float64) r2.Vec {
	return r2.Vec{
		X: sides,
		Y: sides,
	}
}

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Lerp3 returns the weighted sum w[0]*a + w[1]*b + w[2]*c.
func Lerp3(a, b, c r2.Vec, w [3]float64) r2.Vec {
	return r2.Vec{
		X: w[0]*a.X + w[1]*b.X + w[2]*c.X,
		Y: w[0]*a.Y + w[1]*b.Y + w[2]*c.Y,
	}
}
