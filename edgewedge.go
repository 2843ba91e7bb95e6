package overlap

// edgeIncidentPlanes returns the two faces incident to edgeIdx as oriented
// WedgePlanes, outward normals as stored on the faces themselves.
func edgeIncidentPlanes(e Element, edgeIdx int) (WedgePlane, WedgePlane) {
	em := e.EdgeMapAt(edgeIdx)
	faces := e.ElementFaces()

	f0, f1 := faces[em.Faces[0]], faces[em.Faces[1]]

	return WedgePlane{Center: f0.FaceCenter(), Normal: f0.FaceNormal()},
		WedgePlane{Center: f1.FaceCenter(), Normal: f1.FaceNormal()}
}

// edgeChordMidpoint returns, in absolute coordinates, the midpoint of the
// two points at which the sphere crosses edgeIdx.
func edgeChordMidpoint(e Element, c Classification, edgeIdx int) Vector {
	em := e.EdgeMapAt(edgeIdx)
	vertices := e.ElementVertices()

	p0 := vertices[em.Vertices[0]].Add(c.EdgePoints[edgeIdx][0])
	p1 := vertices[em.Vertices[1]].Add(c.EdgePoints[edgeIdx][1])

	return p0.Add(p1).Mul(0.5)
}

// edgeWedgeVolume is the general_wedge_3d contribution of a single marked
// edge, as used by the overlap volume assembler and the vertex cone
// correction's degenerate fallback.
func edgeWedgeVolume(s Sphere, e Element, c Classification, edgeIdx int) Scalar {
	p0, p1 := edgeIncidentPlanes(e, edgeIdx)
	mid := edgeChordMidpoint(e, c, edgeIdx)

	return generalWedgeVolume(s, p0, p1, mid.Sub(s.Center))
}

// edgeWedgeArea is the surface-area analogue of edgeWedgeVolume.
func edgeWedgeArea(s Sphere, e Element, c Classification, edgeIdx int) Scalar {
	p0, p1 := edgeIncidentPlanes(e, edgeIdx)
	mid := edgeChordMidpoint(e, c, edgeIdx)

	return generalWedgeArea(s, p0, p1, mid.Sub(s.Center))
}
