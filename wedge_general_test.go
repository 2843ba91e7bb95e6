package overlap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneralWedgeVolumeApexAtCenter(t *testing.T) {
	p0 := WedgePlane{Center: ZeroVector(), Normal: UnitX()}
	p1 := WedgePlane{Center: ZeroVector(), Normal: UnitY()}

	v := generalWedgeVolume(unitSphere, p0, p1, ZeroVector())
	assert.InDelta(t, math.Pi/3, v, 1e-9)
}

func TestGeneralWedgeVolumeBeyondRadiusIsZero(t *testing.T) {
	p0 := WedgePlane{Center: NewVector(0, 0, 2), Normal: UnitX()}
	p1 := WedgePlane{Center: NewVector(0, 0, 2), Normal: UnitY()}

	v := generalWedgeVolume(unitSphere, p0, p1, NewVector(0, 0, 2))
	assert.Equal(t, Scalar(0), v)
}

func TestGeneralWedgeAreaApexAtCenter(t *testing.T) {
	p0 := WedgePlane{Center: ZeroVector(), Normal: UnitX()}
	p1 := WedgePlane{Center: ZeroVector(), Normal: UnitY()}

	a := generalWedgeArea(unitSphere, p0, p1, ZeroVector())
	assert.InDelta(t, simpleSphericalWedgeArea(1, math.Pi/2), a, 1e-9)
}

func TestGeneralWedgeVolumeDegenerateHalfPlaneShortCircuits(t *testing.T) {
	// d is perpendicular to p0's normal (s0 == 0) but not to p1's (s1 == 0.5).
	p0 := WedgePlane{Center: ZeroVector(), Normal: UnitX()}
	p1 := WedgePlane{Center: ZeroVector(), Normal: UnitZ()}
	d := NewVector(0, 0, 0.5)

	got := generalWedgeVolume(unitSphere, p0, p1, d)

	alpha := math.Pi - Scalar(vectorAngle(p0.Normal, p1.Normal))
	want := regularizedWedgeVolumeLifted(unitSphere.Radius, StableNorm(d), alpha, 0.5, unitSphere.Volume)

	assert.InDelta(t, want, got, 1e-12)
}

func TestGeneralWedgeAreaDegenerateHalfPlaneShortCircuits(t *testing.T) {
	p0 := WedgePlane{Center: ZeroVector(), Normal: UnitX()}
	p1 := WedgePlane{Center: ZeroVector(), Normal: UnitZ()}
	d := NewVector(0, 0, 0.5)

	got := generalWedgeArea(unitSphere, p0, p1, d)

	alpha := math.Pi - Scalar(vectorAngle(p0.Normal, p1.Normal))
	want := regularizedWedgeArea(unitSphere.Radius, 0.5, alpha)

	assert.InDelta(t, want, got, 1e-12)
}

func TestGeneralWedgeVolumeMixedSignUsesAbsoluteHeight(t *testing.T) {
	p0 := WedgePlane{Center: ZeroVector(), Normal: UnitX()}
	p1 := WedgePlane{Center: ZeroVector(), Normal: UnitY()}
	d := NewVector(0.3, -0.4, 0.2)

	got := generalWedgeVolume(unitSphere, p0, p1, d)

	dist := StableNorm(d)
	dHat := d.Mul(1 / dist)
	alpha0 := Scalar(vectorAngle(p0.Normal, dHat))
	alpha1 := Scalar(vectorAngle(p1.Normal, dHat))
	dir0 := dHat.Dot(d)
	dir1 := dHat.Dot(d)
	s0 := d.Dot(p0.Normal)
	s1 := d.Dot(p1.Normal)

	alpha0p := mixedSignAngle(alpha0, dir0, s0)
	alpha1p := mixedSignAngle(alpha1, dir1, s1)

	term0 := regularizedWedgeVolumeLifted(unitSphere.Radius, dist, alpha0p, absScalar(s0), unitSphere.Volume)
	term1 := regularizedWedgeVolumeLifted(unitSphere.Radius, dist, alpha1p, absScalar(s1), unitSphere.Volume)
	want := math.Max(term0, term1) - math.Min(term0, term1)

	assert.InDelta(t, want, got, 1e-12)

	// Regression guard: the pre-fix formula fed the raw (possibly negative)
	// s0/s1 straight into the lifted helper, which is a different value
	// whenever one of them is negative.
	buggyTerm0 := regularizedWedgeVolumeLifted(unitSphere.Radius, dist, alpha0p, s0, unitSphere.Volume)
	buggyTerm1 := regularizedWedgeVolumeLifted(unitSphere.Radius, dist, alpha1p, s1, unitSphere.Volume)
	buggyWant := math.Max(buggyTerm0, buggyTerm1) - math.Min(buggyTerm0, buggyTerm1)
	assert.NotEqual(t, buggyWant, got)
}

func TestGeneralWedgeAreaMixedSignUsesAbsoluteHeight(t *testing.T) {
	p0 := WedgePlane{Center: ZeroVector(), Normal: UnitX()}
	p1 := WedgePlane{Center: ZeroVector(), Normal: UnitY()}
	d := NewVector(0.3, -0.4, 0.2)

	got := generalWedgeArea(unitSphere, p0, p1, d)

	dist := StableNorm(d)
	dHat := d.Mul(1 / dist)
	alpha0 := Scalar(vectorAngle(p0.Normal, dHat))
	alpha1 := Scalar(vectorAngle(p1.Normal, dHat))
	dir0 := dHat.Dot(d)
	dir1 := dHat.Dot(d)
	s0 := d.Dot(p0.Normal)
	s1 := d.Dot(p1.Normal)

	alpha0p := mixedSignAngle(alpha0, dir0, s0)
	alpha1p := mixedSignAngle(alpha1, dir1, s1)

	term0 := regularizedWedgeArea(unitSphere.Radius, absScalar(s0), alpha0p)
	term1 := regularizedWedgeArea(unitSphere.Radius, absScalar(s1), alpha1p)
	want := math.Max(term0, term1) - math.Min(term0, term1)

	assert.InDelta(t, want, got, 1e-12)
}

func TestSign(t *testing.T) {
	assert.Equal(t, Scalar(1), sign(0))
	assert.Equal(t, Scalar(1), sign(3))
	assert.Equal(t, Scalar(-1), sign(-3))
}
