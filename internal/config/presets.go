package config

import "sort"

// Presets are named drop-test scenarios.
var Presets = map[string]*Config{
	"brick": {
		Dt: 0.01, Duration: 10.0,
		Gravity: [3]float64{0, -9.81, 0},
		Body: BodyConfig{
			Mass: 2.0, Friction: 0.8, UseGravity: true, Height: 5.0,
		},
		Shape: ShapeConfig{Type: "box", Size: [3]float64{0.4, 0.2, 0.1}},
	},
	"ball": {
		Dt: 0.01, Duration: 10.0,
		Gravity: [3]float64{0, -9.81, 0},
		Body: BodyConfig{
			Mass: 0.5, Friction: 0.3, Restitution: 0.7, UseGravity: true, Height: 8.0,
		},
		Shape: ShapeConfig{Type: "sphere", Radius: 0.25},
	},
	"offset": {
		Dt: 0.005, Duration: 15.0,
		Gravity: [3]float64{0, -9.81, 0},
		Body: BodyConfig{
			Mass: 1.0, Friction: 0.5, UseGravity: true, Height: 5.0,
			CenterOfMass: [3]float64{0.2, 0, 0},
		},
		Shape: ShapeConfig{Type: "box", Size: [3]float64{1, 0.5, 0.5}},
	},
	"platform": {
		Dt: 0.01, Duration: 10.0,
		Gravity: [3]float64{0, -9.81, 0},
		Body: BodyConfig{
			Mass: 10.0, Kinematic: true, UseGravity: false, Height: 2.0,
		},
		Shape: ShapeConfig{Type: "box", Size: [3]float64{4, 0.2, 4}},
	},
	"anchored": {
		Dt: 0.01, Duration: 10.0,
		Gravity: [3]float64{0, -9.81, 0},
		Body: BodyConfig{
			Mass: 1.0, UseGravity: true, Height: 5.0,
			PositionLock: [3]float64{1, 1, 1},
		},
		Shape: ShapeConfig{Type: "box", Size: [3]float64{1, 1, 1}},
	},
}

// GetPreset returns a copy of the named preset, nil when unknown.
// Callers may mutate the result freely.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
