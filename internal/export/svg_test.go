package export

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/bodysim/internal/storage"
)

func TestTrajectorySVG(t *testing.T) {
	samples := []storage.Sample{
		{Time: 0, Position: mgl64.Vec3{0, 5, 0}},
		{Time: 0.5, Position: mgl64.Vec3{0, 3.8, 0}},
		{Time: 1.0, Position: mgl64.Vec3{0, 0.1, 0}},
	}

	svg := TrajectorySVG(samples, 800, 400)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected an XML header")
	}
	if !strings.Contains(svg, `width="800" height="400"`) {
		t.Error("dimensions missing from the SVG element")
	}
	if strings.Count(svg, " L") != len(samples)-1 {
		t.Errorf("expected %d line segments, got %d", len(samples)-1, strings.Count(svg, " L"))
	}
}

func TestTrajectorySVGTooFewSamples(t *testing.T) {
	if svg := TrajectorySVG([]storage.Sample{{Time: 0}}, 800, 400); svg != "" {
		t.Error("one sample cannot make a polyline")
	}
}

func TestSpeedSVGFlatLine(t *testing.T) {
	// A constant speed collapses the y range; the padding fallback keeps
	// the output well formed.
	samples := []storage.Sample{
		{Time: 0, Velocity: mgl64.Vec3{1, 0, 0}},
		{Time: 1, Velocity: mgl64.Vec3{1, 0, 0}},
	}

	svg := SpeedSVG(samples, 400, 200)
	if !strings.Contains(svg, "</svg>") {
		t.Error("expected a closed SVG document")
	}
}
