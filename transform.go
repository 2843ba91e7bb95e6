package overlap

// Transformation is an affine map applied as v -> scaling * (v + translation).
type Transformation struct {
	Translation Vector
	Scaling     Scalar
}

// IdentityTransformation returns the transformation that leaves its input
// unchanged.
func IdentityTransformation() Transformation {
	return Transformation{Translation: ZeroVector(), Scaling: 1}
}

func (t Transformation) apply(v Vector) Vector {
	return v.Add(t.Translation).Mul(t.Scaling)
}
