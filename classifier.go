package overlap

// Classification records how a sphere cuts an element's skeleton: which
// vertices lie strictly inside, which edges the sphere crosses
// non-tangentially, which faces it touches, and the per-edge intersection
// offsets needed by the wedge/cone assemblers.
type Classification struct {
	VertexMask []bool
	EdgeMask   []bool
	FaceMask   []bool

	// EdgePoints[e] holds the two intersection points of edge e, expressed
	// as offsets from the edge's own endpoints: EdgePoints[e][0] is
	// relative to the edge's first vertex, EdgePoints[e][1] relative to
	// its second.
	EdgePoints [][2]Vector
}

// AnyMarked reports whether any vertex, edge, or face was flagged.
func (c Classification) AnyMarked() bool {
	for _, b := range c.FaceMask {
		if b {
			return true
		}
	}
	for _, b := range c.EdgeMask {
		if b {
			return true
		}
	}
	for _, b := range c.VertexMask {
		if b {
			return true
		}
	}

	return false
}

// classifyIntersections computes the Classification of e against s.
func classifyIntersections(s Sphere, e Element) Classification {
	vertices := e.ElementVertices()
	faces := e.ElementFaces()
	numEdges := e.NumEdges()

	c := Classification{
		VertexMask: make([]bool, len(vertices)),
		EdgeMask:   make([]bool, numEdges),
		FaceMask:   make([]bool, len(faces)),
		EdgePoints: make([][2]Vector, numEdges),
	}

	for edgeIdx := 0; edgeIdx < numEdges; edgeIdx++ {
		em := e.EdgeMapAt(edgeIdx)
		u := vertices[em.Vertices[0]]
		v := vertices[em.Vertices[1]]
		direction := v.Sub(u)

		li := lineSphereIntersection(u, direction, s)
		if !li.HasRoots || li.T0 == li.T1 || li.T0 >= 1 || li.T1 <= 0 {
			continue
		}

		if li.T0 < 0 {
			c.VertexMask[em.Vertices[0]] = true
		}
		if li.T1 > 1 {
			c.VertexMask[em.Vertices[1]] = true
		}

		c.EdgePoints[edgeIdx] = [2]Vector{direction.Mul(li.T0), direction.Mul(li.T1 - 1)}
		c.EdgeMask[edgeIdx] = true
		c.FaceMask[em.Faces[0]] = true
		c.FaceMask[em.Faces[1]] = true
	}

	for vertexIdx, marked := range c.VertexMask {
		if !marked {
			continue
		}

		vm := e.VertexMapAt(vertexIdx)
		for _, incidentEdge := range vm.Edges {
			if !c.EdgeMask[incidentEdge] {
				DebugLog("clearing tangential vertex bit %d: incident edge %d not marked", vertexIdx, incidentEdge)
				c.VertexMask[vertexIdx] = false
				break
			}
		}
	}

	for faceIdx, marked := range c.FaceMask {
		if marked {
			continue
		}

		if intersectsFace(s, faces[faceIdx]) {
			c.FaceMask[faceIdx] = true
		}
	}

	return c
}
