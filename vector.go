package overlap

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vector is the 3-component value type used throughout the engine. Its
// additive and linear-algebra operations (Add, Sub, Mul, Dot, Cross, Norm,
// Normalize) are supplied by github.com/golang/geo/r3 — per §1 of the spec,
// the core engine consumes a 3-vector type rather than implementing general
// linear algebra itself. The operations the pack's vector library does not
// provide (a numerically stable norm, component-wise max/abs) are added
// below, since those belong to the engine's own robust-primitives concern.
type Vector = r3.Vector

// NewVector constructs a Vector from its three components.
func NewVector(x, y, z Scalar) Vector { return Vector{X: x, Y: y, Z: z} }

// ZeroVector returns the zero vector.
func ZeroVector() Vector { return Vector{} }

// UnitX returns the X basis vector.
func UnitX() Vector { return Vector{X: 1} }

// UnitY returns the Y basis vector.
func UnitY() Vector { return Vector{Y: 1} }

// UnitZ returns the Z basis vector.
func UnitZ() Vector { return Vector{Z: 1} }

// ConstantVector returns a vector with all three components set to s.
func ConstantVector(s Scalar) Vector { return Vector{X: s, Y: s, Z: s} }

// SquaredNorm returns the squared Euclidean length of v.
func SquaredNorm(v Vector) Scalar { return v.Dot(v) }

// AbsVector returns the component-wise absolute value of v.
func AbsVector(v Vector) Vector {
	return Vector{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// MaxCoeff returns the largest of the three (unsigned) components of v.
func MaxCoeff(v Vector) Scalar {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}

// StableNorm computes the Euclidean length of v with a scale-then-sum-of-
// squares pass (Blue's algorithm) to avoid spurious overflow/underflow in
// the intermediate squared sum.
func StableNorm(v Vector) Scalar {
	scale := MaxCoeff(v)
	if scale == 0 {
		return 0
	}

	x, y, z := v.X/scale, v.Y/scale, v.Z/scale

	return scale * math.Sqrt(x*x+y*y+z*z)
}

// StableNormalized returns v scaled to unit length using StableNorm. If v is
// the zero vector, v is returned unchanged.
func StableNormalized(v Vector) Vector {
	n := StableNorm(v)
	if n == 0 {
		return v
	}

	return v.Mul(1 / n)
}

// Vector2 is a 2-component value type used by the 2-D orientation kernel.
type Vector2 struct {
	X, Y Scalar
}
