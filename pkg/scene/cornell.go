package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions, matching the measured scene
const (
	cornellWidth  = 556.0
	cornellHeight = 548.8
	cornellDepth  = 559.2
)

// CornellLightEmission is the radiance of the ceiling light, a blend of three
// measured spectral peaks collapsed to RGB
var CornellLightEmission = core.NewVec3(8, 8, 8).MultiplyVec(core.NewVec3(0.747+0.058, 0.747+0.258, 0.747)).
	Add(core.NewVec3(15.6, 15.6, 15.6).MultiplyVec(core.NewVec3(0.740+0.287, 0.740+0.160, 0.740))).
	Add(core.NewVec3(18.4, 18.4, 18.4).MultiplyVec(core.NewVec3(0.737+0.642, 0.737+0.159, 0.737)))

// cornellCamera is the classic view from in front of the open side
var cornellCamera = CameraConfig{
	Eye:    core.NewVec3(278, 273, -800),
	FOV:    40,
	Width:  784,
	Height: 784,
}

// NewCornellScene creates the classic Cornell box: white floor, ceiling and
// back wall, a red wall on the left, a green wall on the right, two white
// blocks and a quad light just below the ceiling
func NewCornellScene(opts ...Option) (*Scene, error) {
	objects := cornellRoom()

	// Ceiling light, facing down
	light := material.NewEmissive(CornellLightEmission)
	objects = append(objects, geometry.NewQuad(
		core.NewVec3(343, cornellHeight-0.1, 227),
		core.NewVec3(0, 0, 105),
		core.NewVec3(-130, 0, 0),
		light,
	))

	return New(objects, append([]Option{WithCamera(cornellCamera)}, opts...)...)
}

// NewCornellDiscScene is the Cornell box lit by a disc light with the same
// area and position as the standard ceiling quad
func NewCornellDiscScene(opts ...Option) (*Scene, error) {
	objects := cornellRoom()

	radius := math.Sqrt(130 * 105 / math.Pi)
	objects = append(objects, geometry.NewDisc(
		core.NewVec3(278, cornellHeight-0.1, 279.5),
		core.NewVec3(0, -1, 0),
		radius,
		material.NewEmissive(CornellLightEmission),
	))

	return New(objects, append([]Option{WithCamera(cornellCamera)}, opts...)...)
}

// NewDarkRoomScene is the Cornell box with its light removed. Nothing in it
// emits, so every pixel must render black.
func NewDarkRoomScene(opts ...Option) (*Scene, error) {
	return New(cornellRoom(), append([]Option{WithCamera(cornellCamera)}, opts...)...)
}

// cornellRoom returns the walls and blocks of the Cornell box without a light
func cornellRoom() []geometry.Object {
	white := material.NewLambertian(core.NewVec3(0.725, 0.71, 0.68))
	red := material.NewLambertian(core.NewVec3(0.63, 0.065, 0.05))
	green := material.NewLambertian(core.NewVec3(0.14, 0.45, 0.091))

	x := core.NewVec3(cornellWidth, 0, 0)
	y := core.NewVec3(0, cornellHeight, 0)
	z := core.NewVec3(0, 0, cornellDepth)
	origin := core.NewVec3(0, 0, 0)

	objects := []geometry.Object{
		geometry.NewQuad(origin, z, x, white),        // floor, facing up
		geometry.NewQuad(origin.Add(y), x, z, white), // ceiling, facing down
		geometry.NewQuad(origin.Add(z), y, x, white), // back wall, facing -z
		geometry.NewQuad(origin.Add(x), z, y, red),   // left wall as seen from the eye, facing -x
		geometry.NewQuad(origin, y, z, green),        // right wall, facing +x
	}

	// Short block on the right, tall block on the left, each turned about 17 degrees
	angle := 17 * math.Pi / 180
	objects = append(objects, geometry.NewBox(core.NewVec3(186, 0, 169), core.NewVec3(165, 165, 165), -angle, white)...)
	objects = append(objects, geometry.NewBox(core.NewVec3(368, 0, 351), core.NewVec3(165, 330, 165), angle, white)...)

	return objects
}
