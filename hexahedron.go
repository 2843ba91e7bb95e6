package overlap

var hexEdgeMap = [12]EdgeMap{
	{Vertices: [2]int{0, 1}, Faces: [2]int{0, 1}},
	{Vertices: [2]int{1, 2}, Faces: [2]int{0, 2}},
	{Vertices: [2]int{2, 3}, Faces: [2]int{0, 3}},
	{Vertices: [2]int{3, 0}, Faces: [2]int{0, 4}},
	{Vertices: [2]int{0, 4}, Faces: [2]int{1, 4}},
	{Vertices: [2]int{1, 5}, Faces: [2]int{1, 2}},
	{Vertices: [2]int{2, 6}, Faces: [2]int{2, 3}},
	{Vertices: [2]int{3, 7}, Faces: [2]int{3, 4}},
	{Vertices: [2]int{4, 5}, Faces: [2]int{1, 5}},
	{Vertices: [2]int{5, 6}, Faces: [2]int{2, 5}},
	{Vertices: [2]int{6, 7}, Faces: [2]int{3, 5}},
	{Vertices: [2]int{7, 4}, Faces: [2]int{4, 5}},
}

var hexVertexMap = [8]VertexMap{
	{Edges: [3]int{0, 3, 4}, Orientations: [3]int{0, 1, 0}, Faces: [3]int{0, 1, 4}},
	{Edges: [3]int{0, 1, 5}, Orientations: [3]int{1, 0, 0}, Faces: [3]int{0, 1, 2}},
	{Edges: [3]int{1, 2, 6}, Orientations: [3]int{1, 0, 0}, Faces: [3]int{0, 2, 3}},
	{Edges: [3]int{2, 3, 7}, Orientations: [3]int{1, 0, 0}, Faces: [3]int{0, 3, 4}},
	{Edges: [3]int{4, 8, 11}, Orientations: [3]int{1, 0, 1}, Faces: [3]int{1, 4, 5}},
	{Edges: [3]int{5, 8, 9}, Orientations: [3]int{1, 1, 0}, Faces: [3]int{1, 2, 5}},
	{Edges: [3]int{6, 9, 10}, Orientations: [3]int{1, 1, 0}, Faces: [3]int{2, 3, 5}},
	{Edges: [3]int{7, 10, 11}, Orientations: [3]int{1, 1, 0}, Faces: [3]int{3, 4, 5}},
}

// Hexahedron is an 8-vertex, 6-quadrilateral-face element: v0..v3 the bottom
// face, v4..v7 the top face, with vi and vi+4 connected by an edge.
type Hexahedron struct {
	Vertices [8]Vector
	Faces    [6]*Quadrilateral
	Center   Vector
	Volume   Scalar
}

// NewHexahedron constructs a Hexahedron from its 8 vertices. Face planarity
// is not validated here; callers needing that guarantee should check with
// validateFaces before using the element in classification. It fails with
// ErrInvalidVertexOrder if the vertices are not ordered so that the signed
// volume is non-negative.
func NewHexahedron(v0, v1, v2, v3, v4, v5, v6, v7 Vector) (*Hexahedron, error) {
	h := &Hexahedron{Vertices: [8]Vector{v0, v1, v2, v3, v4, v5, v6, v7}}
	h.init()

	if h.Volume < 0 {
		return nil, newError(ErrInvalidVertexOrder,
			"hexahedron vertices must be ordered so that the signed volume is non-negative")
	}

	return h, nil
}

func (h *Hexahedron) init() {
	v := h.Vertices
	f0 := NewQuadrilateral(v[3], v[2], v[1], v[0])
	f1 := NewQuadrilateral(v[0], v[1], v[5], v[4])
	f2 := NewQuadrilateral(v[1], v[2], v[6], v[5])
	f3 := NewQuadrilateral(v[2], v[3], v[7], v[6])
	f4 := NewQuadrilateral(v[3], v[0], v[4], v[7])
	f5 := NewQuadrilateral(v[4], v[5], v[6], v[7])
	h.Faces = [6]*Quadrilateral{&f0, &f1, &f2, &f3, &f4, &f5}

	sum := ZeroVector()
	for _, vv := range h.Vertices {
		sum = sum.Add(vv)
	}
	h.Center = sum.Mul(1.0 / 8.0)
	h.Volume = h.calcVolume()
}

func (h *Hexahedron) calcVolume() Scalar {
	v := h.Vertices
	diagonal := v[6].Sub(v[0])

	sum := v[1].Sub(v[0]).Cross(v[2].Sub(v[5])).
		Add(v[4].Sub(v[0]).Cross(v[5].Sub(v[7]))).
		Add(v[3].Sub(v[0]).Cross(v[7].Sub(v[2])))

	return (1.0 / 6.0) * diagonal.Dot(sum)
}

func (h *Hexahedron) Apply(tr Transformation) {
	for i := range h.Vertices {
		h.Vertices[i] = tr.apply(h.Vertices[i])
	}

	for _, f := range h.Faces {
		f.apply(tr)
	}

	sum := ZeroVector()
	for _, vv := range h.Vertices {
		sum = sum.Add(vv)
	}
	h.Center = sum.Mul(1.0 / 8.0)
	h.Volume = h.calcVolume()
}

func (h *Hexahedron) SurfaceArea() Scalar {
	sum := Scalar(0)
	for _, f := range h.Faces {
		sum += f.Area
	}

	return sum
}

func (h *Hexahedron) ElementVertices() []Vector { return h.Vertices[:] }
func (h *Hexahedron) ElementFaces() []Face {
	return []Face{h.Faces[0], h.Faces[1], h.Faces[2], h.Faces[3], h.Faces[4], h.Faces[5]}
}
func (h *Hexahedron) ElementCenter() Vector      { return h.Center }
func (h *Hexahedron) ElementVolume() Scalar      { return h.Volume }
func (h *Hexahedron) ElementSurfaceArea() Scalar { return h.SurfaceArea() }

func (h *Hexahedron) NumEdges() int                { return 12 }
func (h *Hexahedron) EdgeMapAt(i int) EdgeMap      { return hexEdgeMap[i] }
func (h *Hexahedron) VertexMapAt(i int) VertexMap  { return hexVertexMap[i] }
func (h *Hexahedron) FaceMapAt(i int) FaceEdgeSlot { return faceMapping[i] }

func (h *Hexahedron) clone() Element {
	c := *h
	for i, f := range h.Faces {
		cf := *f
		c.Faces[i] = &cf
	}

	return &c
}

// validateFaces returns ErrNonPlanarFace if any quadrilateral face of e is
// not planar within tolerance. Only Hexahedron and Wedge have quadrilateral
// faces; Tetrahedron's triangular faces are always planar.
func validateFaces(e Element, tolerance Scalar) error {
	for i, f := range e.ElementFaces() {
		if !f.IsPlanar(tolerance) {
			return newError(ErrNonPlanarFace, "face %d is not planar within tolerance %g", i, tolerance)
		}
	}

	return nil
}
