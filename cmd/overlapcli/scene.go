package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/severinstrobl/overlap"
)

// VectorCfg is a JSON-friendly [x, y, z] triple.
type VectorCfg [3]float64

func (v VectorCfg) vector() overlap.Vector {
	return overlap.NewVector(v[0], v[1], v[2])
}

type SphereCfg struct {
	Center VectorCfg `json:"center"`
	Radius float64   `json:"radius"`
}

type ElementCfg struct {
	Kind     string      `json:"kind"` // "tetrahedron", "wedge", "hexahedron"
	Vertices []VectorCfg `json:"vertices"`
}

// SceneCfg describes a set of spheres measured against a set of elements.
type SceneCfg struct {
	Spheres  []SphereCfg  `json:"spheres"`
	Elements []ElementCfg `json:"elements"`
}

func loadScene(path string) (SceneCfg, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneCfg{}, errors.Wrap(err, "read scene file")
	}

	var cfg SceneCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SceneCfg{}, errors.Wrap(err, "parse scene file")
	}

	return cfg, nil
}

func (e ElementCfg) build() (overlap.Element, error) {
	v := func(i int) overlap.Vector { return e.Vertices[i].vector() }

	switch e.Kind {
	case "tetrahedron":
		if len(e.Vertices) != 4 {
			return nil, errors.Errorf("tetrahedron requires 4 vertices, got %d", len(e.Vertices))
		}
		return overlap.NewTetrahedron(v(0), v(1), v(2), v(3))

	case "wedge":
		if len(e.Vertices) != 6 {
			return nil, errors.Errorf("wedge requires 6 vertices, got %d", len(e.Vertices))
		}
		return overlap.NewWedge(v(0), v(1), v(2), v(3), v(4), v(5))

	case "hexahedron":
		if len(e.Vertices) != 8 {
			return nil, errors.Errorf("hexahedron requires 8 vertices, got %d", len(e.Vertices))
		}
		return overlap.NewHexahedron(v(0), v(1), v(2), v(3), v(4), v(5), v(6), v(7))

	default:
		return nil, errors.Errorf("unknown element kind %q", e.Kind)
	}
}
