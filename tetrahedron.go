package overlap

var tetEdgeMap = [6]EdgeMap{
	{Vertices: [2]int{0, 1}, Faces: [2]int{0, 1}},
	{Vertices: [2]int{1, 2}, Faces: [2]int{0, 2}},
	{Vertices: [2]int{2, 0}, Faces: [2]int{0, 3}},
	{Vertices: [2]int{0, 3}, Faces: [2]int{1, 3}},
	{Vertices: [2]int{1, 3}, Faces: [2]int{1, 2}},
	{Vertices: [2]int{2, 3}, Faces: [2]int{2, 3}},
}

var tetVertexMap = [4]VertexMap{
	{Edges: [3]int{0, 2, 3}, Orientations: [3]int{0, 1, 0}, Faces: [3]int{0, 1, 3}},
	{Edges: [3]int{0, 1, 4}, Orientations: [3]int{1, 0, 0}, Faces: [3]int{0, 1, 2}},
	{Edges: [3]int{1, 2, 5}, Orientations: [3]int{1, 0, 0}, Faces: [3]int{0, 2, 3}},
	{Edges: [3]int{3, 4, 5}, Orientations: [3]int{1, 1, 1}, Faces: [3]int{1, 3, 2}},
}

// Tetrahedron is a 4-vertex, 4-triangular-face element.
type Tetrahedron struct {
	Vertices [4]Vector
	Faces    [4]*Triangle
	Center   Vector
	Volume   Scalar
}

// NewTetrahedron constructs a Tetrahedron, failing with
// ErrInvalidVertexOrder if the vertices are not ordered so that the mixed
// product (v1-v0)*((v2-v0)x(v3-v0)) is non-negative.
func NewTetrahedron(v0, v1, v2, v3 Vector) (*Tetrahedron, error) {
	if v1.Sub(v0).Cross(v2.Sub(v0)).Dot(v3.Sub(v0)) < 0 {
		return nil, newError(ErrInvalidVertexOrder,
			"tetrahedron vertices must be ordered so that the signed volume is non-negative")
	}

	t := &Tetrahedron{Vertices: [4]Vector{v0, v1, v2, v3}}
	t.init()

	return t, nil
}

func (t *Tetrahedron) init() {
	f0 := NewTriangle(t.Vertices[2], t.Vertices[1], t.Vertices[0])
	f1 := NewTriangle(t.Vertices[0], t.Vertices[1], t.Vertices[3])
	f2 := NewTriangle(t.Vertices[1], t.Vertices[2], t.Vertices[3])
	f3 := NewTriangle(t.Vertices[2], t.Vertices[0], t.Vertices[3])
	t.Faces = [4]*Triangle{&f0, &f1, &f2, &f3}

	t.Center = t.Vertices[0].Add(t.Vertices[1]).Add(t.Vertices[2]).Add(t.Vertices[3]).Mul(0.25)
	t.Volume = t.calcVolume()
}

func (t *Tetrahedron) calcVolume() Scalar {
	return (1.0 / 6.0) * absScalar(t.Vertices[0].Sub(t.Vertices[3]).Dot(
		t.Vertices[1].Sub(t.Vertices[3]).Cross(t.Vertices[2].Sub(t.Vertices[3]))))
}

// Apply transforms the tetrahedron in place by v -> s*(v+t).
func (t *Tetrahedron) Apply(tr Transformation) {
	for i := range t.Vertices {
		t.Vertices[i] = tr.apply(t.Vertices[i])
	}

	for _, f := range t.Faces {
		f.apply(tr)
	}

	t.Center = t.Vertices[0].Add(t.Vertices[1]).Add(t.Vertices[2]).Add(t.Vertices[3]).Mul(0.25)
	t.Volume = t.calcVolume()
}

func (t *Tetrahedron) SurfaceArea() Scalar {
	sum := Scalar(0)
	for _, f := range t.Faces {
		sum += f.Area
	}

	return sum
}

func (t *Tetrahedron) ElementVertices() []Vector { return t.Vertices[:] }
func (t *Tetrahedron) ElementFaces() []Face {
	return []Face{t.Faces[0], t.Faces[1], t.Faces[2], t.Faces[3]}
}
func (t *Tetrahedron) ElementCenter() Vector      { return t.Center }
func (t *Tetrahedron) ElementVolume() Scalar      { return t.Volume }
func (t *Tetrahedron) ElementSurfaceArea() Scalar { return t.SurfaceArea() }

func (t *Tetrahedron) NumEdges() int                      { return 6 }
func (t *Tetrahedron) EdgeMapAt(i int) EdgeMap            { return tetEdgeMap[i] }
func (t *Tetrahedron) VertexMapAt(i int) VertexMap        { return tetVertexMap[i] }
func (t *Tetrahedron) FaceMapAt(i int) FaceEdgeSlot       { return faceMapping[i] }

func (t *Tetrahedron) clone() Element {
	c := *t
	for i, f := range t.Faces {
		cf := *f
		c.Faces[i] = &cf
	}

	return &c
}
