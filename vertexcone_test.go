package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexConeVolumeNonNegative(t *testing.T) {
	h := cubeHex(1)
	s, err := NewSphere(NewVector(1, -1, 1), 1)
	require.NoError(t, err)

	working := h.clone()
	working.Apply(Transformation{Translation: s.Center.Mul(-1), Scaling: 1 / s.Radius})

	c := classifyIntersections(unitSphere, working)
	require.True(t, c.VertexMask[5]) // v5 = (1,-1,1) in cubeHex's vertex ordering

	vol := VertexConeVolume(unitSphere, working, c, 5)
	assert.GreaterOrEqual(t, vol, Scalar(0))
}

func TestVertexConeVolumeTipTetNotDegenerateTriple(t *testing.T) {
	// At the unit-cube-corner sphere (the spec's vertex-corner seed
	// scenario), the three incident edges meet at a right angle, so the
	// tip tetrahedron has a known closed-form volume of 1/6: any formula
	// that collapses to the scalar triple product a.(a x b) would instead
	// return (near) zero here.
	h := cubeHex(1)
	s, err := NewSphere(NewVector(1, -1, 1), 1)
	require.NoError(t, err)

	working := h.clone()
	working.Apply(Transformation{Translation: s.Center.Mul(-1), Scaling: 1 / s.Radius})

	c := classifyIntersections(unitSphere, working)
	require.True(t, c.VertexMask[5])

	tip := buildConeTip(working, c, 5)
	require.False(t, tip.degenerate)

	p0, p1, p2 := tip.absolute[0], tip.absolute[1], tip.absolute[2]
	vertexFromP2 := tip.relative[2].Mul(-1)
	tipTetVolume := (1.0 / 6.0) * absScalar(vertexFromP2.Dot(p0.Sub(p2).Cross(p1.Sub(p2))))

	assert.InDelta(t, 1.0/6.0, tipTetVolume, 1e-9)
}

func TestVertexConeAreaNonNegative(t *testing.T) {
	h := cubeHex(1)
	s, err := NewSphere(NewVector(1, -1, 1), 1)
	require.NoError(t, err)

	working := h.clone()
	working.Apply(Transformation{Translation: s.Center.Mul(-1), Scaling: 1 / s.Radius})

	c := classifyIntersections(unitSphere, working)
	require.True(t, c.VertexMask[5])

	area := VertexConeArea(unitSphere, working, c, 5)
	assert.GreaterOrEqual(t, area, Scalar(0))
}

func TestOrientNormalAwayFlips(t *testing.T) {
	normal := UnitZ()
	flipped := orientNormalAway(normal, NewVector(0, 0, -1), ZeroVector())
	assert.Equal(t, normal.Mul(-1), flipped)

	unchanged := orientNormalAway(normal, NewVector(0, 0, 1), ZeroVector())
	assert.Equal(t, normal, unchanged)
}
