package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}

	s, err := scene.Lookup(cfg.Scene, cfg.SceneOptions()...)
	if err != nil {
		t.Fatal(err)
	}
	want := scene.CameraConfig{
		Eye:    core.NewVec3(278, 273, -800),
		FOV:    40,
		Width:  784,
		Height: 784,
	}
	if diff := cmp.Diff(want, cfg.Camera(s.Camera())); diff != "" {
		t.Errorf("Default camera mismatch (-want +got):\n%s", diff)
	}
	if s.RussianRoulette() != 0.8 {
		t.Errorf("Expected roulette 0.8, got %v", s.RussianRoulette())
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
scene: facing-quads
width: 64
height: 32
fov: 55
eye: [1, 2, -3]
spp: 16
russianRoulette: 0.5
workers: 4
seed: 9
output: out/render.ppm.gz
bucket: mem://
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	eye := [3]float64{1, 2, -3}
	want := Config{
		Scene:           "facing-quads",
		Width:           64,
		Height:          32,
		FOV:             55,
		Eye:             &eye,
		SamplesPerPixel: 16,
		RussianRoulette: 0.5,
		Workers:         4,
		Seed:            9,
		Output:          "out/render.ppm.gz",
		Bucket:          "mem://",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Loaded config mismatch (-want +got):\n%s", diff)
	}

	view := cfg.Camera(scene.CameraConfig{Eye: core.NewVec3(9, 9, 9), FOV: 10, Width: 1, Height: 1})
	if diff := cmp.Diff(scene.CameraConfig{Eye: core.NewVec3(1, 2, -3), FOV: 55, Width: 64, Height: 32}, view); diff != "" {
		t.Errorf("Camera overlay mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "spp: 8\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.SamplesPerPixel = 8
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}

	empty, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), empty); diff != "" {
		t.Errorf("Empty file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"unknown field", "samples: 10\n"},
		{"bad yaml", "spp: [\n"},
		{"zero spp", "spp: 0\n"},
		{"roulette above one", "russianRoulette: 1.5\n"},
		{"zero roulette", "russianRoulette: 0\n"},
		{"fov too wide", "fov: 200\n"},
		{"negative width", "width: -5\n"},
		{"negative workers", "workers: -1\n"},
		{"empty output", "output: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.contents)); err == nil {
				t.Errorf("Expected error for %q", tt.contents)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
