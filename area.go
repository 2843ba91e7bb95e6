package overlap

import "math"

// circularSegmentArea returns the area of the circular segment of a disk of
// squared radius rho2 cut off by a chord of length chordLength.
func circularSegmentArea(rho2, chordLength Scalar) Scalar {
	apothem := math.Sqrt(math.Max(0, rho2-chordLength*chordLength/4))
	theta := 2 * math.Atan2(chordLength, 2*apothem)

	return 0.5*rho2*theta - 0.5*chordLength*apothem
}

// diskSegmentArea is the §4.11 "disk segment" contribution for a face: the
// area of the circular segment of the face's sphere-section disk (squared
// radius rho2) cut off by the chord p0-p1, inverted (rho2*pi - seg) when
// the projection of the sphere center onto the face plane falls on the
// opposite side of the chord from the face centroid.
func diskSegmentArea(s Sphere, faceCenter, faceNormal, p0, p1 Vector, rho2 Scalar) Scalar {
	chord := p1.Sub(p0)
	chordLength := StableNorm(chord)
	chordCenter := p0.Add(p1).Mul(0.5)

	seg := circularSegmentArea(rho2, chordLength)

	dist := faceNormal.Dot(s.Center.Sub(faceCenter))
	proj := s.Center.Sub(faceNormal.Mul(dist))

	crossToProj := chord.Cross(proj.Sub(chordCenter))
	crossToFace := chord.Cross(faceCenter.Sub(chordCenter))

	if crossToProj.Dot(crossToFace) < 0 {
		return math.Pi*rho2 - seg
	}

	return seg
}

// vertexDiskSegmentArea is the vertex-loop counterpart of diskSegmentArea.
// It covers the same disk segment but tests inversion relative to the
// vertex the correction triangle hangs off of, rather than relative to the
// chord itself: the projection of the sphere center onto the face plane is
// compared against the chord midpoint in vertex-relative coordinates. This
// is a distinct formula from the edge loop's cross-product test, not a
// reuse of it.
func vertexDiskSegmentArea(s Sphere, faceCenter, faceNormal, p0, p1, vertex Vector, rho2 Scalar) Scalar {
	chord := p1.Sub(p0)
	chordLength := StableNorm(chord)

	seg := circularSegmentArea(rho2, chordLength)

	dist := faceNormal.Dot(s.Center.Sub(faceCenter))
	proj := s.Center.Sub(faceNormal.Mul(dist))

	chordCenterRel := p0.Add(p1).Mul(0.5).Sub(vertex)

	if chordCenterRel.Dot(proj.Sub(vertex).Sub(chordCenterRel)) > 0 {
		return math.Pi*rho2 - seg
	}

	return seg
}

// OverlapArea returns, for the intersection of s and e, a slice of size
// len(e.ElementFaces())+2: slot 0 is the area of the sphere's surface
// inside e, slots 1..F are the areas of each face inside s, and the last
// slot is the sum of slots 1..F.
func OverlapArea(s Sphere, e Element) ([]Scalar, error) {
	faces := e.ElementFaces()
	result := make([]Scalar, len(faces)+2)

	if err := validateFaces(e, largeEpsilon); err != nil {
		return nil, wrap(err, "overlap area")
	}

	if !intersectsCoarse(s, e) {
		return result, nil
	}

	if s.ContainsElement(e) {
		var sum Scalar
		for i, f := range faces {
			result[i+1] = f.FaceArea()
			sum += f.FaceArea()
		}
		result[len(result)-1] = sum

		return result, nil
	}

	working := e.clone()
	working.Apply(Transformation{Translation: s.Center.Mul(-1), Scaling: 1 / s.Radius})
	workingFaces := working.ElementFaces()

	c := classifyIntersections(unitSphere, working)

	switch {
	case !hasAny(c.FaceMask) && ContainsPoint(working, unitSphere.Center):
		result[0] = unitSphere.SurfaceArea()

	case !c.AnyMarked():
		// all zero

	default:
		result[0] = unitSphere.SurfaceArea()

		faceH := make([]Scalar, len(workingFaces))
		for faceIdx, f := range workingFaces {
			faceH[faceIdx] = 1 - f.FaceNormal().Dot(f.FaceCenter())
		}

		for faceIdx, marked := range c.FaceMask {
			if !marked {
				continue
			}

			h := faceH[faceIdx]
			result[0] -= capSurfaceAreaAt(unitSphere.Radius, h)
			result[faceIdx+1] = unitSphere.DiskArea(h)
		}

		vertices := working.ElementVertices()

		for edgeIdx, marked := range c.EdgeMask {
			if !marked {
				continue
			}

			result[0] += edgeWedgeArea(unitSphere, working, c, edgeIdx)

			em := working.EdgeMapAt(edgeIdx)
			p0 := vertices[em.Vertices[0]].Add(c.EdgePoints[edgeIdx][0])
			p1 := vertices[em.Vertices[1]].Add(c.EdgePoints[edgeIdx][1])

			for _, faceIdx := range em.Faces {
				f := workingFaces[faceIdx]
				h := faceH[faceIdx]
				rho2 := h * (2 - h)

				result[faceIdx+1] -= diskSegmentArea(unitSphere, f.FaceCenter(), f.FaceNormal(), p0, p1, rho2)
			}
		}

		for vertexIdx, marked := range c.VertexMask {
			if !marked {
				continue
			}

			result[0] -= VertexConeArea(unitSphere, working, c, vertexIdx)

			vm := working.VertexMapAt(vertexIdx)
			tip := buildConeTip(working, c, vertexIdx)
			vertex := vertices[vertexIdx]

			for localSlot, faceIdx := range vm.Faces {
				slots := faceMapping[localSlot]
				p0, p1 := tip.absolute[slots[0]], tip.absolute[slots[1]]

				triangleArea := 0.5 * StableNorm(p0.Sub(vertex).Cross(p1.Sub(vertex)))

				f := workingFaces[faceIdx]
				h := faceH[faceIdx]
				rho2 := h * (2 - h)

				result[faceIdx+1] += triangleArea + vertexDiskSegmentArea(unitSphere, f.FaceCenter(), f.FaceNormal(), p0, p1, vertex, rho2)
			}
		}
	}

	sphereSurface := unitSphere.SurfaceArea()
	elementSurface := working.ElementSurfaceArea()
	sqrtEps := math.Sqrt(epsMachine)

	result[0] = clampScalar(result[0], 0, sphereSurface, sqrtEps*sphereSurface)

	faceTolerance := math.Max(sqrtEps*sphereSurface, sqrtEps*elementSurface)

	var sum Scalar
	for i, f := range workingFaces {
		result[i+1] = clampScalar(result[i+1], 0, f.FaceArea(), faceTolerance)
		sum += result[i+1]
	}
	result[len(result)-1] = sum

	radiusSq := s.Radius * s.Radius
	for i := range result {
		result[i] *= radiusSq
	}

	return result, nil
}
