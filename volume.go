package overlap

import "math"

func hasAny(mask []bool) bool {
	for _, b := range mask {
		if b {
			return true
		}
	}

	return false
}

// OverlapVolume returns the exact volume of the intersection of s and e.
func OverlapVolume(s Sphere, e Element) (Scalar, error) {
	if err := validateFaces(e, largeEpsilon); err != nil {
		return 0, wrap(err, "overlap volume")
	}

	if !intersectsCoarse(s, e) {
		return 0, nil
	}

	if s.ContainsElement(e) {
		return e.ElementVolume(), nil
	}

	working := e.clone()
	working.Apply(Transformation{Translation: s.Center.Mul(-1), Scaling: 1 / s.Radius})

	c := classifyIntersections(unitSphere, working)

	var v Scalar

	switch {
	case !hasAny(c.FaceMask) && ContainsPoint(working, unitSphere.Center):
		v = unitSphere.Volume

	case !c.AnyMarked():
		v = 0

	default:
		v = unitSphere.Volume

		faces := working.ElementFaces()
		for faceIdx, marked := range c.FaceMask {
			if !marked {
				continue
			}

			f := faces[faceIdx]
			d := f.FaceNormal().Dot(unitSphere.Center.Sub(f.FaceCenter()))
			v -= capVolumeAt(unitSphere.Radius, unitSphere.Radius+d)
		}

		for edgeIdx, marked := range c.EdgeMask {
			if !marked {
				continue
			}

			v += edgeWedgeVolume(unitSphere, working, c, edgeIdx)
		}

		for vertexIdx, marked := range c.VertexMask {
			if !marked {
				continue
			}

			v -= VertexConeVolume(unitSphere, working, c, vertexIdx)
		}
	}

	maxOverlap := math.Min(unitSphere.Volume, working.ElementVolume())
	tolerance := math.Sqrt(epsMachine) * maxOverlap

	switch {
	case v < 0 && v >= -tolerance:
		v = 0
	case v > maxOverlap && v <= maxOverlap+tolerance:
		v = maxOverlap
	}

	return v * (s.Volume / unitSphere.Volume), nil
}

// OverlapVolumeAll sums OverlapVolume over a slice of elements.
func OverlapVolumeAll(s Sphere, elements []Element) (Scalar, error) {
	var total Scalar

	for _, e := range elements {
		v, err := OverlapVolume(s, e)
		if err != nil {
			return 0, err
		}

		total += v
	}

	return total, nil
}
