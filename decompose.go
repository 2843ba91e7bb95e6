package overlap

// orientedTetrahedron builds a Tetrahedron from the given vertices, swapping
// the middle two if the natural order produces a negative mixed product, so
// that decomposition helpers never have to reason about orientation by hand.
func orientedTetrahedron(v0, v1, v2, v3 Vector) *Tetrahedron {
	t, err := NewTetrahedron(v0, v1, v2, v3)
	if err != nil {
		t, err = NewTetrahedron(v0, v2, v1, v3)
		if err != nil {
			panic("overlap: orientedTetrahedron: degenerate vertices")
		}
	}

	return t
}

// DecomposeTetrahedron splits t into 4 sub-tetrahedra, one per face of t,
// each spanned by that face's three vertices and t's centroid. The sub-tet
// volumes sum exactly to t.Volume, since a convex polyhedron's volume equals
// the sum of the pyramid volumes obtained by connecting every face to any
// interior point.
func DecomposeTetrahedron(t *Tetrahedron) [4]*Tetrahedron {
	var out [4]*Tetrahedron
	for i, f := range t.Faces {
		out[i] = orientedTetrahedron(f.Vertices[0], f.Vertices[1], f.Vertices[2], t.Center)
	}

	return out
}

// mustWedge builds a Wedge from vertices already known (by construction) to
// be consistently wound, panicking if that invariant is ever violated.
func mustWedge(v0, v1, v2, v3, v4, v5 Vector) *Wedge {
	w, err := NewWedge(v0, v1, v2, v3, v4, v5)
	if err != nil {
		panic("overlap: mustWedge: " + err.Error())
	}

	return w
}

// DecomposeHexahedronToWedges splits h into 2 triangular-prism wedges along
// the diagonal plane through v0, v2, v4, v6.
func DecomposeHexahedronToWedges(h *Hexahedron) [2]*Wedge {
	v := h.Vertices

	return [2]*Wedge{
		mustWedge(v[0], v[1], v[2], v[4], v[5], v[6]),
		mustWedge(v[0], v[2], v[3], v[4], v[6], v[7]),
	}
}

// DecomposeWedgeToTetrahedra splits w into 3 tetrahedra following the
// standard triangular-prism triangulation along consistent face diagonals.
func DecomposeWedgeToTetrahedra(w *Wedge) [3]*Tetrahedron {
	v := w.Vertices

	return [3]*Tetrahedron{
		orientedTetrahedron(v[0], v[1], v[2], v[5]),
		orientedTetrahedron(v[0], v[1], v[5], v[4]),
		orientedTetrahedron(v[0], v[4], v[5], v[3]),
	}
}

// DecomposeHexahedronToTetrahedra6 splits h into 6 tetrahedra by first
// splitting into 2 wedges and then each wedge into 3 tetrahedra.
func DecomposeHexahedronToTetrahedra6(h *Hexahedron) [6]*Tetrahedron {
	wedges := DecomposeHexahedronToWedges(h)

	var out [6]*Tetrahedron
	for wi, w := range wedges {
		tets := DecomposeWedgeToTetrahedra(w)
		copy(out[wi*3:wi*3+3], tets[:])
	}

	return out
}

// DecomposeHexahedronToTetrahedra5 splits h into 5 tetrahedra using Timmes's
// canonical decomposition of a hexahedral cell.
func DecomposeHexahedronToTetrahedra5(h *Hexahedron) [5]*Tetrahedron {
	v := h.Vertices

	return [5]*Tetrahedron{
		orientedTetrahedron(v[0], v[1], v[3], v[4]),
		orientedTetrahedron(v[1], v[2], v[3], v[6]),
		orientedTetrahedron(v[1], v[4], v[5], v[6]),
		orientedTetrahedron(v[3], v[4], v[6], v[7]),
		orientedTetrahedron(v[1], v[3], v[4], v[6]),
	}
}
