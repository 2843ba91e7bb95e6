package overlap

import "math"

// Sphere is an immutable ball of a given radius centered at Center.
type Sphere struct {
	Center Vector
	Radius Scalar
	Volume Scalar
}

// NewSphere constructs a Sphere, failing with ErrInvalidRadius if radius is
// not strictly positive.
func NewSphere(center Vector, radius Scalar) (Sphere, error) {
	if !(radius > 0) {
		return Sphere{}, newError(ErrInvalidRadius, "sphere radius must be > 0, got %g", radius)
	}

	return Sphere{
		Center: center,
		Radius: radius,
		Volume: (Scalar(4) / Scalar(3)) * math.Pi * radius * radius * radius,
	}, nil
}

// SurfaceArea returns the surface area of the sphere, 4*pi*r^2.
func (s Sphere) SurfaceArea() Scalar {
	return (4 * math.Pi) * (s.Radius * s.Radius)
}

// CapVolume returns the volume of a spherical cap of penetration height h,
// clamped to [0, s.Volume] at the endpoints h<=0 and h>=2r.
func (s Sphere) CapVolume(h Scalar) Scalar {
	if h <= 0 {
		return 0
	}

	if h >= 2*s.Radius {
		return s.Volume
	}

	return (math.Pi / 3) * h * h * (3*s.Radius - h)
}

// CapSurfaceArea returns the curved surface area of a spherical cap of
// penetration height h, clamped analogously to CapVolume.
func (s Sphere) CapSurfaceArea(h Scalar) Scalar {
	if h <= 0 {
		return 0
	}

	if h >= 2*s.Radius {
		return s.SurfaceArea()
	}

	return (2 * math.Pi) * s.Radius * h
}

// DiskArea returns the area of the disk formed by a plane at penetration
// height h through the sphere; zero outside (0, 2r).
func (s Sphere) DiskArea(h Scalar) Scalar {
	if h <= 0 || h >= 2*s.Radius {
		return 0
	}

	return math.Pi * h * (2*s.Radius - h)
}

// unitSphere is the canonical sphere all classification/assembly works
// against after normalization.
var unitSphere = Sphere{Center: ZeroVector(), Radius: 1, Volume: (4.0 / 3.0) * math.Pi}
