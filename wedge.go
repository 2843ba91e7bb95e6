package overlap

var wedgeEdgeMap = [9]EdgeMap{
	{Vertices: [2]int{0, 1}, Faces: [2]int{0, 1}},
	{Vertices: [2]int{1, 2}, Faces: [2]int{0, 2}},
	{Vertices: [2]int{2, 0}, Faces: [2]int{0, 3}},
	{Vertices: [2]int{0, 3}, Faces: [2]int{1, 3}},
	{Vertices: [2]int{1, 4}, Faces: [2]int{1, 2}},
	{Vertices: [2]int{2, 5}, Faces: [2]int{2, 3}},
	{Vertices: [2]int{3, 4}, Faces: [2]int{1, 4}},
	{Vertices: [2]int{4, 5}, Faces: [2]int{2, 4}},
	{Vertices: [2]int{5, 3}, Faces: [2]int{3, 4}},
}

var wedgeVertexMap = [6]VertexMap{
	{Edges: [3]int{0, 2, 3}, Orientations: [3]int{0, 1, 0}, Faces: [3]int{0, 1, 3}},
	{Edges: [3]int{0, 1, 4}, Orientations: [3]int{1, 0, 0}, Faces: [3]int{0, 1, 2}},
	{Edges: [3]int{1, 2, 5}, Orientations: [3]int{1, 0, 0}, Faces: [3]int{0, 2, 3}},
	{Edges: [3]int{3, 6, 8}, Orientations: [3]int{1, 0, 1}, Faces: [3]int{1, 3, 4}},
	{Edges: [3]int{4, 6, 7}, Orientations: [3]int{1, 1, 0}, Faces: [3]int{1, 2, 4}},
	{Edges: [3]int{5, 7, 8}, Orientations: [3]int{1, 1, 0}, Faces: [3]int{2, 3, 4}},
}

// Wedge is a 6-vertex triangular-prism element with two triangular caps
// (represented as degenerate quadrilaterals whose fourth vertex is the
// midpoint of one triangle edge) and three quadrilateral side faces.
type Wedge struct {
	Vertices [6]Vector
	Faces    [5]*Quadrilateral
	Center   Vector
	Volume   Scalar
}

// NewWedge constructs a Wedge from its 6 vertices: v0,v1,v2 form the bottom
// triangle, v3,v4,v5 the top triangle, with vi and vi+3 connected by an edge.
// It fails with ErrInvalidVertexOrder if the vertices are not ordered so
// that the signed volume is non-negative.
func NewWedge(v0, v1, v2, v3, v4, v5 Vector) (*Wedge, error) {
	w := &Wedge{Vertices: [6]Vector{v0, v1, v2, v3, v4, v5}}
	w.init()

	if w.Volume < 0 {
		return nil, newError(ErrInvalidVertexOrder,
			"wedge vertices must be ordered so that the signed volume is non-negative")
	}

	return w, nil
}

func (w *Wedge) init() {
	v := w.Vertices
	f0 := NewQuadrilateral(v[2], v[1], v[0], v[0].Add(v[2]).Mul(0.5))
	f1 := NewQuadrilateral(v[0], v[1], v[4], v[3])
	f2 := NewQuadrilateral(v[1], v[2], v[5], v[4])
	f3 := NewQuadrilateral(v[2], v[0], v[3], v[5])
	f4 := NewQuadrilateral(v[3], v[4], v[5], v[5].Add(v[3]).Mul(0.5))
	w.Faces = [5]*Quadrilateral{&f0, &f1, &f2, &f3, &f4}

	w.Center = (v[0].Add(v[1]).Add(v[2]).Add(v[3]).Add(v[4]).Add(v[5])).Mul(1.0 / 6.0)
	w.Volume = w.calcVolume()
}

func (w *Wedge) calcVolume() Scalar {
	v := w.Vertices
	diagonal := v[5].Sub(v[0])
	mid03 := v[3].Add(v[5]).Mul(0.5)
	mid02 := v[0].Add(v[2]).Mul(0.5)

	sum := v[1].Sub(v[0]).Cross(v[2].Sub(v[4])).
		Add(v[3].Sub(v[0]).Cross(v[4].Sub(mid03))).
		Add(mid02.Sub(v[0]).Cross(mid03.Sub(v[2])))

	return (1.0 / 6.0) * diagonal.Dot(sum)
}

func (w *Wedge) Apply(tr Transformation) {
	for i := range w.Vertices {
		w.Vertices[i] = tr.apply(w.Vertices[i])
	}

	for _, f := range w.Faces {
		f.apply(tr)
	}

	w.Center = (w.Vertices[0].Add(w.Vertices[1]).Add(w.Vertices[2]).
		Add(w.Vertices[3]).Add(w.Vertices[4]).Add(w.Vertices[5])).Mul(1.0 / 6.0)
	w.Volume = w.calcVolume()
}

func (w *Wedge) SurfaceArea() Scalar {
	sum := Scalar(0)
	for _, f := range w.Faces {
		sum += f.Area
	}

	return sum
}

func (w *Wedge) ElementVertices() []Vector { return w.Vertices[:] }
func (w *Wedge) ElementFaces() []Face {
	return []Face{w.Faces[0], w.Faces[1], w.Faces[2], w.Faces[3], w.Faces[4]}
}
func (w *Wedge) ElementCenter() Vector      { return w.Center }
func (w *Wedge) ElementVolume() Scalar      { return w.Volume }
func (w *Wedge) ElementSurfaceArea() Scalar { return w.SurfaceArea() }

func (w *Wedge) NumEdges() int                { return 9 }
func (w *Wedge) EdgeMapAt(i int) EdgeMap      { return wedgeEdgeMap[i] }
func (w *Wedge) VertexMapAt(i int) VertexMap  { return wedgeVertexMap[i] }
func (w *Wedge) FaceMapAt(i int) FaceEdgeSlot { return faceMapping[i] }

func (w *Wedge) clone() Element {
	c := *w
	for i, f := range w.Faces {
		cf := *f
		c.Faces[i] = &cf
	}

	return &c
}
