package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// FacingQuadsConfig describes an emissive square held parallel above a
// diffuse square with nothing else in the scene
type FacingQuadsConfig struct {
	LightSize    float64   // Side length of the emissive square
	Separation   float64   // Vertical distance between the two squares
	Emission     core.Vec3 // Radiance of the light
	Albedo       core.Vec3 // Reflectance of the diffuse square
	ReceiverSize float64   // Side length of the diffuse square
}

// DefaultFacingQuadsConfig returns a unit light one unit above a 2x2 receiver
func DefaultFacingQuadsConfig() FacingQuadsConfig {
	return FacingQuadsConfig{
		LightSize:    1,
		Separation:   1,
		Emission:     core.NewVec3(4, 4, 4),
		Albedo:       core.NewVec3(0.5, 0.5, 0.5),
		ReceiverSize: 2,
	}
}

// NewFacingQuadsScene builds the two squares centered on the Y axis: the
// receiver at y=0 facing up and the light at y=Separation facing down
func NewFacingQuadsScene(cfg FacingQuadsConfig, opts ...Option) (*Scene, error) {
	half := cfg.ReceiverSize / 2
	receiver := geometry.NewQuad(
		core.NewVec3(-half, 0, -half),
		core.NewVec3(0, 0, cfg.ReceiverSize),
		core.NewVec3(cfg.ReceiverSize, 0, 0),
		material.NewLambertian(cfg.Albedo),
	)

	lightHalf := cfg.LightSize / 2
	light := geometry.NewQuad(
		core.NewVec3(-lightHalf, cfg.Separation, -lightHalf),
		core.NewVec3(cfg.LightSize, 0, 0),
		core.NewVec3(0, 0, cfg.LightSize),
		material.NewEmissive(cfg.Emission),
	)

	camera := CameraConfig{
		Eye:    core.NewVec3(0, cfg.Separation/2, -3*cfg.ReceiverSize),
		FOV:    30,
		Width:  256,
		Height: 256,
	}

	return New([]geometry.Object{receiver, light}, append([]Option{WithCamera(camera)}, opts...)...)
}
