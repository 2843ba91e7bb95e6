package overlap

import "math"

// coneTip holds the geometry of the vertex cone correction's tip triangle.
type coneTip struct {
	absolute   [3]Vector
	relative   [3]Vector
	centroid   Vector
	normal     Vector
	edgesAtK   [3]int
	degenerate bool
	largestEdge int
}

// buildConeTip collects the three edge-sphere intersection points nearest
// vertex k and assembles the cone tip triangle.
func buildConeTip(e Element, c Classification, k int) coneTip {
	vm := e.VertexMapAt(k)
	vertex := e.ElementVertices()[k]

	var tip coneTip
	tip.edgesAtK = vm.Edges

	var distances [3]Scalar
	for i, edgeIdx := range vm.Edges {
		rel := c.EdgePoints[edgeIdx][vm.Orientations[i]]
		tip.relative[i] = rel
		tip.absolute[i] = vertex.Add(rel)
		distances[i] = SquaredNorm(rel)
	}

	tip.centroid = tip.absolute[0].Add(tip.absolute[1]).Add(tip.absolute[2]).Mul(1.0 / 3.0)
	tip.normal = triangleNormal(tip.relative[0], tip.relative[1], tip.relative[2])

	sorted := distances
	// insertion sort of 3 elements
	if sorted[0] > sorted[1] {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}
	if sorted[1] > sorted[2] {
		sorted[1], sorted[2] = sorted[2], sorted[1]
	}
	if sorted[0] > sorted[1] {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}

	if sorted[1] < largeEpsilon*sorted[2] {
		tip.degenerate = true
	}

	largest := 0
	for i := 1; i < 3; i++ {
		if distances[i] > distances[largest] {
			largest = i
		}
	}
	tip.largestEdge = vm.Edges[largest]

	return tip
}

// faceAnchorMidpoint returns, in absolute coordinates, the midpoint of the
// two intersection points that a face meeting at vertex k shares with the
// two edges incident to k bounding that face.
func faceAnchorMidpoint(tip coneTip, localFaceSlot int) Vector {
	slots := faceMapping[localFaceSlot]

	return tip.absolute[slots[0]].Add(tip.absolute[slots[1]]).Mul(0.5)
}

// orientNormalAway flips normal so it points away from center as seen from
// a point on the plane.
func orientNormalAway(normal, pointOnPlane, center Vector) Vector {
	if normal.Dot(center.Sub(pointOnPlane)) > 0 {
		return normal.Mul(-1)
	}

	return normal
}

// VertexConeVolume computes the §4.12 vertex cone correction for vertex k,
// subtracted from the running overlap volume by the caller.
func VertexConeVolume(s Sphere, e Element, c Classification, k int) Scalar {
	vm := e.VertexMapAt(k)
	tip := buildConeTip(e, c, k)

	if tip.degenerate {
		DebugLog("vertex %d cone tip degenerate, routing through edge %d", k, tip.largestEdge)
		return edgeWedgeVolume(s, e, c, tip.largestEdge)
	}

	normal := orientNormalAway(tip.normal, tip.centroid, e.ElementCenter())

	dt := -normal.Dot(tip.centroid.Sub(s.Center))
	cap := capVolumeAt(s.Radius, s.Radius+dt)

	p0, p1, p2 := tip.absolute[0], tip.absolute[1], tip.absolute[2]
	vertexFromP2 := tip.relative[2].Mul(-1)
	tipTetVolume := (1.0 / 6.0) * absScalar(vertexFromP2.Dot(p0.Sub(p2).Cross(p1.Sub(p2))))

	if cap < tinyEpsilon {
		return math.Max(0, tipTetVolume)
	}

	faces := e.ElementFaces()
	var segments Scalar
	for localSlot, faceIdx := range vm.Faces {
		f := faces[faceIdx]
		anchor := faceAnchorMidpoint(tip, localSlot)

		tipPlane := WedgePlane{Center: tip.centroid, Normal: normal}
		invertedFacePlane := WedgePlane{Center: f.FaceCenter(), Normal: f.FaceNormal().Mul(-1)}

		segments += generalWedgeVolume(s, tipPlane, invertedFacePlane, anchor.Sub(s.Center))
	}

	return math.Max(0, tipTetVolume+cap-segments)
}

// VertexConeArea is the surface-area analogue of VertexConeVolume.
func VertexConeArea(s Sphere, e Element, c Classification, k int) Scalar {
	vm := e.VertexMapAt(k)
	tip := buildConeTip(e, c, k)

	if tip.degenerate {
		return edgeWedgeArea(s, e, c, tip.largestEdge)
	}

	normal := orientNormalAway(tip.normal, tip.centroid, e.ElementCenter())

	dt := -normal.Dot(tip.centroid.Sub(s.Center))
	cap := capSurfaceAreaAt(s.Radius, s.Radius+dt)

	if cap < largeEpsilon {
		return 0
	}

	faces := e.ElementFaces()
	var segments Scalar
	for localSlot, faceIdx := range vm.Faces {
		f := faces[faceIdx]
		anchor := faceAnchorMidpoint(tip, localSlot)

		tipPlane := WedgePlane{Center: tip.centroid, Normal: normal}
		invertedFacePlane := WedgePlane{Center: f.FaceCenter(), Normal: f.FaceNormal().Mul(-1)}

		segments += generalWedgeArea(s, tipPlane, invertedFacePlane, anchor.Sub(s.Center))
	}

	return math.Max(0, cap-segments)
}
