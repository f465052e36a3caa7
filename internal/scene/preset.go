package scene

import (
	"fmt"
	"sort"

	"mini-rt/internal/vecmath"
)

// Preset bundles a scene with the camera pose it is meant to be viewed from.
type Preset struct {
	Name     string
	Scene    *Scene
	Position vecmath.Vec3
	Yaw      float64
	Pitch    float64
}

var presets = map[string]func() Preset{
	"sphere": func() Preset {
		return Preset{
			Scene:    NewSphereMask(Sphere{Radius: 1}),
			Position: vecmath.V(0, 3, 10),
			Yaw:      -90,
			Pitch:    -20,
		}
	},
	"normals": func() Preset {
		return Preset{
			Scene:    NewSphereNormals(Sphere{Radius: 1}),
			Position: vecmath.V(0, 3, 10),
			Yaw:      -90,
			Pitch:    -20,
		}
	},
	"triangle": func() Preset {
		return Preset{
			Scene: NewTriangleScene(NewTriangle(
				vecmath.V(-1.5, 0, 0),
				vecmath.V(1.5, 0, 0),
				vecmath.V(0, 2, 0),
				vecmath.V(1, 0.5, 0.2),
			)),
			Position: vecmath.V(0, 1, 5),
			Yaw:      -90,
			Pitch:    0,
		}
	},
}

// LoadPreset returns a freshly built preset by name.
func LoadPreset(name string) (Preset, error) {
	build, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown scene preset %q (available: %v)", name, PresetNames())
	}
	p := build()
	p.Name = name
	return p, nil
}

// PresetNames lists the registered presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
