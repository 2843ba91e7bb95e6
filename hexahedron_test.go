package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitHexahedron() *Hexahedron {
	h, err := NewHexahedron(
		NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(1, 1, 0), NewVector(0, 1, 0),
		NewVector(0, 0, 1), NewVector(1, 0, 1), NewVector(1, 1, 1), NewVector(0, 1, 1))
	if err != nil {
		panic(err)
	}

	return h
}

func TestNewHexahedronRejectsReversedVertexOrder(t *testing.T) {
	_, err := NewHexahedron(
		NewVector(0, 0, 0), NewVector(0, 1, 0), NewVector(1, 1, 0), NewVector(1, 0, 0),
		NewVector(0, 0, 1), NewVector(0, 1, 1), NewVector(1, 1, 1), NewVector(1, 0, 1))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, ErrInvalidVertexOrder, kind)
}

func TestHexahedronVolumeUnitCube(t *testing.T) {
	h := unitHexahedron()
	assert.InDelta(t, 1.0, h.Volume, 1e-12)
	assert.Len(t, h.ElementFaces(), 6)
	assert.Equal(t, 12, h.NumEdges())
}

func TestHexahedronApplyRescalesVolume(t *testing.T) {
	h := unitHexahedron()
	h.Apply(Transformation{Translation: ZeroVector(), Scaling: 2})
	assert.InDelta(t, 8.0, h.Volume, 1e-12)
}

func TestValidateFacesAcceptsPlanarCube(t *testing.T) {
	h := unitHexahedron()
	assert.NoError(t, validateFaces(h, largeEpsilon))
}

func TestValidateFacesRejectsNonPlanarFace(t *testing.T) {
	h := unitHexahedron()
	h.Faces[5].Vertices[2] = h.Faces[5].Vertices[2].Add(NewVector(0, 0, 1))

	err := validateFaces(h, largeEpsilon)
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrNonPlanarFace, kind)
}
