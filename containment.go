package overlap

import "math"

// ContainsPoint reports whether p lies within or on the boundary of s.
func (s Sphere) ContainsPoint(p Vector) bool {
	return SquaredNorm(p.Sub(s.Center)) <= s.Radius*s.Radius
}

// ContainsElement reports whether every vertex of e lies within s, which
// for a convex element implies the whole element lies within s.
func (s Sphere) ContainsElement(e Element) bool {
	radiusSq := s.Radius * s.Radius
	for _, v := range e.ElementVertices() {
		if SquaredNorm(v.Sub(s.Center)) > radiusSq {
			return false
		}
	}

	return true
}

// containsPointInFace reports whether the projection proj of some point
// onto f's plane falls within f's boundary: for every directed edge
// (v_i, v_{i+1}), ((v_{i+1}-v_i) x n) . (proj - midpoint(v_i,v_{i+1})) <= 0.
func containsPointInFace(f Face, proj Vector) bool {
	n := f.FaceNormal()
	numVertices := f.NumVertices()

	for i := 0; i < numVertices; i++ {
		a := f.VertexAt(i)
		b := f.VertexAt((i + 1) % numVertices)
		mid := a.Add(b).Mul(0.5)

		if b.Sub(a).Cross(n).Dot(proj.Sub(mid)) > 0 {
			return false
		}
	}

	return true
}

// ContainsPoint reports whether p lies inside e, i.e. on the inward side of
// every face's plane.
func ContainsPoint(e Element, p Vector) bool {
	for _, f := range e.ElementFaces() {
		if f.FaceNormal().Dot(p.Sub(f.FaceCenter())) > 0 {
			return false
		}
	}

	return true
}

// intersectsFace is the classifier's interior-face check: the sphere
// overlaps f's footprint when the projection of the sphere center onto f's
// plane falls inside f's boundary and that plane comes within s.Radius of
// the sphere center.
func intersectsFace(s Sphere, f Face) bool {
	n := f.FaceNormal()
	dist := n.Dot(s.Center.Sub(f.FaceCenter()))

	if absScalar(dist) > s.Radius {
		return false
	}

	projection := s.Center.Sub(n.Mul(dist))

	return containsPointInFace(f, projection)
}

// elementBounds returns the axis-aligned bounding box of e's vertices.
func elementBounds(e Element) (Vector, Vector) {
	vertices := e.ElementVertices()
	min, max := vertices[0], vertices[0]

	for _, v := range vertices[1:] {
		min = NewVector(math.Min(min.X, v.X), math.Min(min.Y, v.Y), math.Min(min.Z, v.Z))
		max = NewVector(math.Max(max.X, v.X), math.Max(max.Y, v.Y), math.Max(max.Z, v.Z))
	}

	return min, max
}

// intersectsCoarse is a cheap AABB pretest: it rejects sphere/element pairs
// that cannot possibly overlap without running the exact classifier.
func intersectsCoarse(s Sphere, e Element) bool {
	min, max := elementBounds(e)

	closest := NewVector(
		math.Max(min.X, math.Min(s.Center.X, max.X)),
		math.Max(min.Y, math.Min(s.Center.Y, max.Y)),
		math.Max(min.Z, math.Min(s.Center.Z, max.Z)),
	)

	return SquaredNorm(s.Center.Sub(closest)) <= s.Radius*s.Radius
}
