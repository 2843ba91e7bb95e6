package overlap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegularizedWedgeVolumeApexOnSurface(t *testing.T) {
	assert.InDelta(t, 0, regularizedWedgeVolume(1, 1, math.Pi/4), 1e-9)
}

func TestRegularizedWedgeVolumeApexAtCenter(t *testing.T) {
	assert.InDelta(t, math.Pi/6, regularizedWedgeVolume(1, 1e-9, math.Pi/4), 1e-6)
	assert.InDelta(t, math.Pi/3, regularizedWedgeVolume(1, 1e-9, math.Pi/2), 1e-6)
}

func TestRegularizedWedgeVolumeHalfOffset(t *testing.T) {
	assert.InDelta(t, 5*math.Pi/48, regularizedWedgeVolume(1, 0.5, math.Pi/2), 1e-9)
}

func TestCapVolumeAtEndpoints(t *testing.T) {
	assert.Equal(t, Scalar(0), capVolumeAt(1, 0))
	assert.Equal(t, Scalar(0), capVolumeAt(1, -1))
	assert.InDelta(t, (4.0/3.0)*math.Pi, capVolumeAt(1, 2), 1e-12)
	assert.InDelta(t, 0.5*(4.0/3.0)*math.Pi, capVolumeAt(1, 1), 1e-12)
}

func TestRegularizedWedgeVolumeLiftedContinuousAtZero(t *testing.T) {
	sphereVolume := (4.0 / 3.0) * math.Pi
	alpha := math.Pi / 3
	d := Scalar(0.3)

	above := regularizedWedgeVolumeLifted(1, d, alpha, 1e-9, sphereVolume)
	below := regularizedWedgeVolumeLifted(1, d, alpha, -1e-9, sphereVolume)

	assert.InDelta(t, above, below, 1e-6)
}

func TestCapSurfaceAreaAtEndpoints(t *testing.T) {
	assert.Equal(t, Scalar(0), capSurfaceAreaAt(1, 0))
	assert.InDelta(t, 4*math.Pi, capSurfaceAreaAt(1, 2), 1e-12)
}

func TestRegularizedWedgeAreaSymmetric(t *testing.T) {
	area := regularizedWedgeArea(1, 0, math.Pi/2)
	assert.Greater(t, area, Scalar(0))
}

func TestRegularizedWedgeAreaSmallAlphaIsZeroNotNaN(t *testing.T) {
	area := regularizedWedgeArea(1, 0.5, 1e-12)
	assert.Equal(t, Scalar(0), area)
	assert.False(t, math.IsNaN(float64(area)))
}

func TestRegularizedWedgeVolumeNearTangentApexIsNotNaN(t *testing.T) {
	r := Scalar(1)
	d := r - 1e-16

	v := regularizedWedgeVolume(r, d, math.Pi/4)
	assert.False(t, math.IsNaN(float64(v)))
	assert.InDelta(t, 0, v, 1e-6)
}

func TestRegularizedWedgeAreaNearTangentApexIsNotNaN(t *testing.T) {
	r := Scalar(1)
	z := r - 1e-16

	area := regularizedWedgeArea(r, z, math.Pi/4)
	assert.False(t, math.IsNaN(float64(area)))
}
