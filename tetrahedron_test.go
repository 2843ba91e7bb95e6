package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTetrahedronRejectsInvertedOrder(t *testing.T) {
	_, err := NewTetrahedron(
		NewVector(0, 0, 0), NewVector(0, 1, 0), NewVector(1, 0, 0), NewVector(0, 0, 1))
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidVertexOrder, kind)
}

func TestTetrahedronVolumeUnitCorner(t *testing.T) {
	tet, err := NewTetrahedron(
		NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(0, 1, 0), NewVector(0, 0, 1))
	require.NoError(t, err)

	assert.InDelta(t, 1.0/6.0, tet.Volume, 1e-12)
	assert.Len(t, tet.ElementFaces(), 4)
}

func TestTetrahedronApplyRescalesVolume(t *testing.T) {
	tet, err := NewTetrahedron(
		NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(0, 1, 0), NewVector(0, 0, 1))
	require.NoError(t, err)

	tet.Apply(Transformation{Translation: ZeroVector(), Scaling: 2})
	assert.InDelta(t, 8*(1.0/6.0), tet.Volume, 1e-12)
}
