// Package config holds the render settings read from YAML files and flags.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config is the full set of render settings. Camera fields left at zero
// (and a nil Eye) take the chosen scene's recommended view.
type Config struct {
	Scene           string      `yaml:"scene"`           // Built-in scene ID
	Width           int         `yaml:"width"`           // Image width in pixels
	Height          int         `yaml:"height"`          // Image height in pixels
	FOV             float64     `yaml:"fov"`             // Vertical field of view in degrees
	Eye             *[3]float64 `yaml:"eye,flow"`        // Camera position
	SamplesPerPixel int         `yaml:"spp"`             // Path samples averaged per pixel
	RussianRoulette float64     `yaml:"russianRoulette"` // Path continuation probability
	Workers         int         `yaml:"workers"`         // Concurrent sample evaluations (0 = all CPUs)
	Seed            uint64      `yaml:"seed"`            // Base random seed
	Output          string      `yaml:"output"`          // Output file name or object key
	Bucket          string      `yaml:"bucket"`          // Optional bucket URL for the output
}

// Default returns the settings of the classic Cornell box render
func Default() Config {
	return Config{
		Scene:           "cornell",
		SamplesPerPixel: 64,
		RussianRoulette: scene.DefaultRussianRoulette,
		Output:          "binary.ppm",
	}
}

// Load reads a YAML file on top of Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be rendered
func (c Config) Validate() error {
	switch {
	case c.Scene == "":
		return errors.New("scene must be set")
	case c.Width < 0 || c.Height < 0:
		return errors.Errorf("image size %dx%d must not be negative", c.Width, c.Height)
	case c.FOV != 0 && !(c.FOV > 0 && c.FOV < 180):
		return errors.Errorf("field of view %v outside (0, 180)", c.FOV)
	case c.SamplesPerPixel < 1:
		return errors.Errorf("spp must be at least 1, got %d", c.SamplesPerPixel)
	case !(c.RussianRoulette > 0 && c.RussianRoulette <= 1):
		return errors.Errorf("russianRoulette %v outside (0, 1]", c.RussianRoulette)
	case c.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	case c.Output == "":
		return errors.New("output must be set")
	}
	return nil
}

// SceneOptions returns the scene construction options these settings imply
func (c Config) SceneOptions() []scene.Option {
	return []scene.Option{scene.WithRussianRoulette(c.RussianRoulette)}
}

// Camera overlays the configured view on a scene's recommended one
func (c Config) Camera(base scene.CameraConfig) scene.CameraConfig {
	if c.Width > 0 {
		base.Width = c.Width
	}
	if c.Height > 0 {
		base.Height = c.Height
	}
	if c.FOV > 0 {
		base.FOV = c.FOV
	}
	if c.Eye != nil {
		base.Eye = core.NewVec3(c.Eye[0], c.Eye[1], c.Eye[2])
	}
	return base
}
