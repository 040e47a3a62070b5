package storage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testRun() *Run {
	return &Run{
		Samples: []Sample{
			{Time: 0, Position: mgl64.Vec3{0, 5, 0}, Velocity: mgl64.Vec3{}, Active: true},
			{Time: 0.01, Position: mgl64.Vec3{0, 4.9995, 0}, Velocity: mgl64.Vec3{0, -0.0981, 0}, Active: true},
			{Time: 0.02, Position: mgl64.Vec3{0, 4.998, 0}, Velocity: mgl64.Vec3{0, -0.1962, 0}, Active: false},
		},
		Metrics: map[string]float64{
			"final_height": 4.998,
			"max_speed":    0.1962,
		},
	}
}

func TestSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("brick", 0.01, 10.0, testRun())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Preset != "brick" {
		t.Errorf("preset = %s, expected brick", meta.Preset)
	}
	if meta.Dt != 0.01 || meta.Duration != 10.0 {
		t.Errorf("dt=%v duration=%v", meta.Dt, meta.Duration)
	}
	if meta.Metrics["max_speed"] != 0.1962 {
		t.Errorf("metrics = %v", meta.Metrics)
	}
}

func TestLoadSamples(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	run := testRun()
	runID, err := st.Save("ball", 0.01, 10.0, run)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(samples) != len(run.Samples) {
		t.Fatalf("expected %d samples, got %d", len(run.Samples), len(samples))
	}

	for i, s := range samples {
		want := run.Samples[i]
		if s.Time != want.Time || s.Position != want.Position || s.Velocity != want.Velocity {
			t.Errorf("sample %d = %+v, expected %+v", i, s, want)
		}
		if s.Active != want.Active {
			t.Errorf("sample %d active = %v, expected %v", i, s.Active, want.Active)
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save("brick", 0.01, 10.0, testRun()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Preset != "brick" {
		t.Errorf("preset = %s, expected brick", runs[0].Preset)
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := st.Load("missing_0"); err == nil {
		t.Error("expected an error for an unknown run")
	}
}
