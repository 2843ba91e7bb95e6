package overlap

import "math"

// WedgePlane is one of the two oriented half-space boundaries bounding a
// general spherical wedge, given by a point on the plane and its outward
// normal.
type WedgePlane struct {
	Center Vector
	Normal Vector
}

func sign(x Scalar) Scalar {
	if x < 0 {
		return -1
	}

	return 1
}

// simpleSphericalWedgeVolume is the volume of a wedge whose axis passes
// through the sphere center, with dihedral angle pi - angle(n0, n1).
func simpleSphericalWedgeVolume(r, angleBetweenNormals Scalar) Scalar {
	return (2.0 / 3.0) * r * r * r * (math.Pi - angleBetweenNormals)
}

// simpleSphericalWedgeArea is the surface-area analogue of
// simpleSphericalWedgeVolume.
func simpleSphericalWedgeArea(r, angleBetweenNormals Scalar) Scalar {
	return 2 * r * r * (math.Pi - angleBetweenNormals)
}

// generalWedgeVolume returns the volume of the intersection of s with the
// dihedral wedge bounded by p0 and p1 (outward normals), where d is the
// vector from s.Center to the wedge apex's projection.
func generalWedgeVolume(s Sphere, p0, p1 WedgePlane, d Vector) Scalar {
	dist := StableNorm(d)

	if dist < tinyEpsilon {
		angle := Scalar(vectorAngle(p0.Normal, p1.Normal))
		return simpleSphericalWedgeVolume(s.Radius, angle)
	}

	if dist >= s.Radius {
		return 0
	}

	s0 := d.Dot(p0.Normal)
	s1 := d.Dot(p1.Normal)

	if absScalar(s0) < tinyEpsilon || absScalar(s1) < tinyEpsilon {
		alpha := math.Pi - Scalar(vectorAngle(p0.Normal, p1.Normal))
		z := s1
		if absScalar(s0) > absScalar(s1) {
			z = s0
		}

		DebugLog("general wedge volume: near-degenerate half-plane, falling back to regularized wedge")

		return regularizedWedgeVolumeLifted(s.Radius, dist, alpha, z, s.Volume)
	}

	dHat := d.Mul(1 / dist)
	if dist < largeEpsilon {
		axis := p0.Normal.Cross(p1.Normal)
		if axisNorm := StableNorm(axis); axisNorm > 0 {
			dHat = gramSchmidtPair(axis.Mul(1/axisNorm), dHat)[1]
		}
	}

	alpha0 := Scalar(vectorAngle(p0.Normal, dHat))
	alpha1 := Scalar(vectorAngle(p1.Normal, dHat))

	apex := s.Center.Add(d)
	dir0 := dHat.Dot(apex.Sub(p0.Center))
	dir1 := dHat.Dot(apex.Sub(p1.Center))

	switch {
	case s0 >= 0 && s1 >= 0:
		alpha0p := math.Pi/2 - sign(dir0)*alpha0
		alpha1p := math.Pi/2 - sign(dir1)*alpha1

		return regularizedWedgeVolumeLifted(s.Radius, dist, alpha0p, s0, s.Volume) +
			regularizedWedgeVolumeLifted(s.Radius, dist, alpha1p, s1, s.Volume)

	case s0 < 0 && s1 < 0:
		alpha0p := math.Pi/2 + sign(dir0)*(alpha0-math.Pi)
		alpha1p := math.Pi/2 + sign(dir1)*(alpha1-math.Pi)

		return s.Volume - (regularizedWedgeVolumeLifted(s.Radius, dist, alpha0p, -s0, s.Volume) +
			regularizedWedgeVolumeLifted(s.Radius, dist, alpha1p, -s1, s.Volume))

	default:
		alpha0p := mixedSignAngle(alpha0, dir0, s0)
		alpha1p := mixedSignAngle(alpha1, dir1, s1)

		term0 := regularizedWedgeVolumeLifted(s.Radius, dist, alpha0p, absScalar(s0), s.Volume)
		term1 := regularizedWedgeVolumeLifted(s.Radius, dist, alpha1p, absScalar(s1), s.Volume)

		return math.Max(term0, term1) - math.Min(term0, term1)
	}
}

// mixedSignAngle implements the "mixed signs" row of the general-wedge sign
// table: alpha' = pi/2 - sgn(dir*s)*(alpha - (pi if s<0 else 0)).
func mixedSignAngle(alpha, dir, s Scalar) Scalar {
	offset := Scalar(0)
	if s < 0 {
		offset = math.Pi
	}

	return math.Pi/2 - sign(dir*s)*(alpha-offset)
}

// generalWedgeArea is the surface-area analogue of generalWedgeVolume,
// substituting regularizedWedgeArea and the sphere's surface area for the
// volume quantities.
func generalWedgeArea(s Sphere, p0, p1 WedgePlane, d Vector) Scalar {
	dist := StableNorm(d)

	if dist < tinyEpsilon {
		angle := Scalar(vectorAngle(p0.Normal, p1.Normal))
		return simpleSphericalWedgeArea(s.Radius, angle)
	}

	if dist >= s.Radius {
		return 0
	}

	s0 := d.Dot(p0.Normal)
	s1 := d.Dot(p1.Normal)

	if absScalar(s0) < tinyEpsilon || absScalar(s1) < tinyEpsilon {
		alpha := math.Pi - Scalar(vectorAngle(p0.Normal, p1.Normal))
		z := s1
		if absScalar(s0) > absScalar(s1) {
			z = s0
		}

		DebugLog("general wedge area: near-degenerate half-plane, falling back to regularized wedge")

		return regularizedWedgeArea(s.Radius, z, alpha)
	}

	dHat := d.Mul(1 / dist)
	if dist < largeEpsilon {
		axis := p0.Normal.Cross(p1.Normal)
		if axisNorm := StableNorm(axis); axisNorm > 0 {
			dHat = gramSchmidtPair(axis.Mul(1/axisNorm), dHat)[1]
		}
	}

	alpha0 := Scalar(vectorAngle(p0.Normal, dHat))
	alpha1 := Scalar(vectorAngle(p1.Normal, dHat))

	apex := s.Center.Add(d)
	dir0 := dHat.Dot(apex.Sub(p0.Center))
	dir1 := dHat.Dot(apex.Sub(p1.Center))

	surfaceArea := s.SurfaceArea()

	switch {
	case s0 >= 0 && s1 >= 0:
		alpha0p := math.Pi/2 - sign(dir0)*alpha0
		alpha1p := math.Pi/2 - sign(dir1)*alpha1

		return regularizedWedgeArea(s.Radius, s0, alpha0p) + regularizedWedgeArea(s.Radius, s1, alpha1p)

	case s0 < 0 && s1 < 0:
		alpha0p := math.Pi/2 + sign(dir0)*(alpha0-math.Pi)
		alpha1p := math.Pi/2 + sign(dir1)*(alpha1-math.Pi)

		return surfaceArea - (regularizedWedgeArea(s.Radius, -s0, alpha0p) + regularizedWedgeArea(s.Radius, -s1, alpha1p))

	default:
		alpha0p := mixedSignAngle(alpha0, dir0, s0)
		alpha1p := mixedSignAngle(alpha1, dir1, s1)

		term0 := regularizedWedgeArea(s.Radius, absScalar(s0), alpha0p)
		term1 := regularizedWedgeArea(s.Radius, absScalar(s1), alpha1p)

		return math.Max(term0, term1) - math.Min(term0, term1)
	}
}
