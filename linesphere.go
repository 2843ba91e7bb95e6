package overlap

import "math"

// LineSphereIntersection holds the (possibly absent) parametric roots of a
// line's intersection with a sphere. The line is base + t*direction; roots
// are ordered T0 <= T1.
type LineSphereIntersection struct {
	T0, T1   Scalar
	HasRoots bool
}

// lineSphereIntersection solves |base + t*direction - center| = radius for
// t using the numerically stable quadratic form (Numerical Recipes-style
// root selection) to avoid cancellation when one root is much smaller than
// the other. A strictly positive discriminant yields two roots, which are
// rejected (spurious) if their midpoint lies outside the sphere; an exactly
// zero discriminant yields the tangent point as a collapsed double root.
func lineSphereIntersection(base, direction Vector, s Sphere) LineSphereIntersection {
	oc := base.Sub(s.Center)

	a := SquaredNorm(direction)
	if a == 0 {
		return LineSphereIntersection{}
	}

	b := 2 * direction.Dot(oc)
	c := SquaredNorm(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return LineSphereIntersection{}
	}

	if disc == 0 {
		t := -b / (2 * a)
		return LineSphereIntersection{T0: t, T1: t, HasRoots: true}
	}

	sqrtDisc := math.Sqrt(disc)

	sign := Scalar(1)
	if b < 0 {
		sign = -1
	}

	q := -0.5 * (b + sign*sqrtDisc)

	t0 := q / a
	t1 := c / q

	if t0 > t1 {
		t0, t1 = t1, t0
	}

	midpoint := base.Add(direction.Mul(0.5 * (t0 + t1)))
	if SquaredNorm(midpoint.Sub(s.Center)) >= s.Radius*s.Radius {
		return LineSphereIntersection{}
	}

	return LineSphereIntersection{T0: t0, T1: t1, HasRoots: true}
}
