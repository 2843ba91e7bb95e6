package overlap

import (
	"math"

	"github.com/golang/geo/s1"
)

// orient2d returns the sign (and magnitude) of
// (ax-cx)(by-cy) - (ay-cy)(bx-cx), computed through the extended-precision
// scalar so that cancellation in near-collinear inputs cannot flip the sign.
//
// Ref: J.R. Shewchuk, Lecture Notes on Geometric Robustness.
func orient2d(a, b, c Vector2) Scalar {
	ax := newExtendedScalar(a.X)
	ay := newExtendedScalar(a.Y)
	bx := newExtendedScalar(b.X)
	by := newExtendedScalar(b.Y)
	cx := newExtendedScalar(c.X)
	cy := newExtendedScalar(c.Y)

	result := ax.sub(cx).mul(by.sub(cy)).sub(ay.sub(cy).mul(bx.sub(cx)))

	return result.value()
}

// triangleNormal returns the unit normal of the triangle (a, b, c), built
// from three orient2d calls on the coordinate-plane projections rather than
// a direct cross product, to resist cancellation for near-degenerate
// triangles.
func triangleNormal(a, b, c Vector) Vector {
	xy := orient2d(Vector2{a.X, a.Y}, Vector2{b.X, b.Y}, Vector2{c.X, c.Y})
	yz := orient2d(Vector2{a.Y, a.Z}, Vector2{b.Y, b.Z}, Vector2{c.Y, c.Z})
	zx := orient2d(Vector2{a.Z, a.X}, Vector2{b.Z, b.X}, Vector2{c.Z, c.X})

	return NewVector(yz, zx, xy).Normalize()
}

// normalNewell returns the normal of the polygon described by points (with
// a precomputed center) as the sum of cross products of consecutive
// center-relative vertex vectors. If the result's stable norm is below the numerical noise floor,
// the raw (near-zero) vector is returned so callers can detect degeneracy.
//
// Ref: Christer Ericson, Real-Time Collision Detection (2005).
func normalNewell(points []Vector, center Vector) Vector {
	normal := ZeroVector()
	n := len(points)
	for i := 0; i < n; i++ {
		a := points[i].Sub(center)
		b := points[(i+1)%n].Sub(center)
		normal = normal.Add(a.Cross(b))
	}

	scale := MaxCoeff(normal)
	if length := StableNorm(normal); length > scale*epsMachine {
		return normal.Mul(1 / length)
	}

	return normal
}

// vectorAngle returns the angle between the unit vectors u and v, using the
// half-angle identity to preserve accuracy near 0 and pi.
//
// Ref: http://www.plunk.org/~hatch/rightway.html
func vectorAngle(u, v Vector) s1.Angle {
	if u.Dot(v) < 0 {
		return s1.Angle(math.Pi - 2*math.Asin(0.5*StableNorm(v.Mul(-1).Sub(u))))
	}

	return s1.Angle(2 * math.Asin(0.5*StableNorm(v.Sub(u))))
}

// gramSchmidtPair orthonormalizes v0 and v1, keeping v0 fixed.
func gramSchmidtPair(v0, v1 Vector) [2]Vector {
	return [2]Vector{v0, v1.Sub(v0.Mul(v1.Dot(v0))).Normalize()}
}

// clampScalar returns lo if value is within tolerance below lo, hi if value
// is within tolerance above hi, and value otherwise.
func clampScalar(value, lo, hi, tolerance Scalar) Scalar {
	if value < lo && value > lo-tolerance {
		value = lo
	}

	if value > hi && value < hi+tolerance {
		value = hi
	}

	return value
}
