package overlap

// Face is implemented by Triangle and Quadrilateral, the two polygon shapes
// that appear as element faces.
type Face interface {
	FaceCenter() Vector
	FaceNormal() Vector
	FaceArea() Scalar
	NumVertices() int
	VertexAt(i int) Vector
	IsPlanar(tolerance Scalar) bool
	apply(t Transformation)
}

// Triangle is a 3-vertex planar polygon. Its normal is computed with the
// extended-precision triangleNormal rather than a plain cross product.
type Triangle struct {
	Vertices [3]Vector
	Center   Vector
	Normal   Vector
	Area     Scalar
}

// NewTriangle constructs a Triangle from its three vertices, in order.
func NewTriangle(v0, v1, v2 Vector) Triangle {
	t := Triangle{Vertices: [3]Vector{v0, v1, v2}}
	t.Center = v0.Add(v1).Add(v2).Mul(1.0 / 3.0)
	t.Normal = triangleNormal(v0, v1, v2)
	t.updateArea()

	return t
}

func (t *Triangle) updateArea() {
	t.Area = 0.5 * StableNorm(t.Vertices[1].Sub(t.Vertices[0]).Cross(t.Vertices[2].Sub(t.Vertices[0])))
}

func (t *Triangle) apply(tr Transformation) {
	for i := range t.Vertices {
		t.Vertices[i] = tr.apply(t.Vertices[i])
	}

	t.Center = tr.apply(t.Center)
	t.Normal = triangleNormal(t.Vertices[0], t.Vertices[1], t.Vertices[2])
	t.updateArea()
}

func (t Triangle) FaceCenter() Vector { return t.Center }
func (t Triangle) FaceNormal() Vector { return t.Normal }
func (t Triangle) FaceArea() Scalar   { return t.Area }
func (t Triangle) NumVertices() int   { return 3 }
func (t Triangle) VertexAt(i int) Vector {
	return t.Vertices[i]
}

// IsPlanar always holds for a triangle.
func (t Triangle) IsPlanar(Scalar) bool { return true }

// Quadrilateral is a 4-vertex polygon, assumed (and checked via IsPlanar) to
// be planar. Its normal is the normalized cross of its two diagonals, which
// is algebraically equivalent to Newell's method for a planar quad.
type Quadrilateral struct {
	Vertices [4]Vector
	Center   Vector
	Normal   Vector
	Area     Scalar
}

// NewQuadrilateral constructs a Quadrilateral from its four vertices, in
// order.
func NewQuadrilateral(v0, v1, v2, v3 Vector) Quadrilateral {
	q := Quadrilateral{Vertices: [4]Vector{v0, v1, v2, v3}}
	q.Center = v0.Add(v1).Add(v2).Add(v3).Mul(0.25)
	q.Normal = v2.Sub(v0).Cross(v3.Sub(v1)).Normalize()
	q.updateArea()

	return q
}

func (q *Quadrilateral) updateArea() {
	v0, v1, v2, v3 := q.Vertices[0], q.Vertices[1], q.Vertices[2], q.Vertices[3]
	q.Area = 0.5 * (StableNorm(v1.Sub(v0).Cross(v2.Sub(v0))) + StableNorm(v2.Sub(v0).Cross(v3.Sub(v0))))
}

func (q *Quadrilateral) apply(t Transformation) {
	for i := range q.Vertices {
		q.Vertices[i] = t.apply(q.Vertices[i])
	}

	q.Center = t.apply(q.Center)
	q.Normal = q.Vertices[2].Sub(q.Vertices[0]).Cross(q.Vertices[3].Sub(q.Vertices[1])).Normalize()
	q.updateArea()
}

func (q Quadrilateral) FaceCenter() Vector { return q.Center }
func (q Quadrilateral) FaceNormal() Vector { return q.Normal }
func (q Quadrilateral) FaceArea() Scalar   { return q.Area }
func (q Quadrilateral) NumVertices() int   { return 4 }
func (q Quadrilateral) VertexAt(i int) Vector {
	return q.Vertices[i]
}

// IsPlanar holds iff every vertex lies within tolerance (in signed normal
// distance) of the plane through the center with the computed normal.
func (q Quadrilateral) IsPlanar(tolerance Scalar) bool {
	for _, v := range q.Vertices {
		if absScalar(q.Normal.Dot(v.Sub(q.Center))) > tolerance {
			return false
		}
	}

	return true
}

func absScalar(x Scalar) Scalar {
	if x < 0 {
		return -x
	}

	return x
}
