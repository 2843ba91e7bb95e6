package overlap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrient2dSign(t *testing.T) {
	a := Vector2{0, 0}
	b := Vector2{1, 0}
	c := Vector2{0, 1}

	assert.Greater(t, orient2d(a, b, c), Scalar(0))
	assert.Less(t, orient2d(a, c, b), Scalar(0))
}

func TestTriangleNormalUnit(t *testing.T) {
	n := triangleNormal(NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(0, 1, 0))
	assert.InDelta(t, 1, StableNorm(n), 1e-12)
	assert.InDelta(t, 1, n.Z, 1e-12)
}

func TestNormalNewellSquare(t *testing.T) {
	points := []Vector{
		NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(1, 1, 0), NewVector(0, 1, 0),
	}
	center := NewVector(0.5, 0.5, 0)

	n := normalNewell(points, center)
	assert.InDelta(t, 1, StableNorm(n), 1e-12)
	assert.InDelta(t, 1, n.Z, 1e-12)
}

func TestNormalNewellDegenerateReturnsNearZero(t *testing.T) {
	points := []Vector{NewVector(0, 0, 0), NewVector(0, 0, 0), NewVector(0, 0, 0)}
	center := ZeroVector()

	n := normalNewell(points, center)
	assert.Equal(t, ZeroVector(), n)
}

func TestVectorAngleRightAngle(t *testing.T) {
	angle := vectorAngle(UnitX(), UnitY())
	assert.InDelta(t, math.Pi/2, float64(angle), 1e-12)
}

func TestVectorAngleOpposite(t *testing.T) {
	angle := vectorAngle(UnitX(), UnitX().Mul(-1))
	assert.InDelta(t, math.Pi, float64(angle), 1e-9)
}

func TestGramSchmidtPairOrthonormal(t *testing.T) {
	pair := gramSchmidtPair(UnitX(), NewVector(1, 1, 0))
	assert.InDelta(t, 0, pair[0].Dot(pair[1]), 1e-12)
	assert.InDelta(t, 1, StableNorm(pair[1]), 1e-12)
}

func TestClampScalar(t *testing.T) {
	assert.Equal(t, Scalar(0), clampScalar(-0.001, 0, 1, 0.01))
	assert.Equal(t, Scalar(1), clampScalar(1.001, 0, 1, 0.01))
	assert.Equal(t, Scalar(0.5), clampScalar(0.5, 0, 1, 0.01))
}
