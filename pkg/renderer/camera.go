package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera generates primary rays from a fixed eye position. It looks down +Z
// with the image's horizontal axis running toward -X, so the left edge of
// the image sees the +X side of the scene.
type Camera struct {
	eye    core.Vec3
	width  int
	height int
	aspect float64 // width / height
	scale  float64 // tan(fov/2)
}

// NewCamera creates a camera for a width×height image with the given
// vertical field of view in degrees
func NewCamera(eye core.Vec3, width, height int, fovDegrees float64) *Camera {
	return &Camera{
		eye:    eye,
		width:  width,
		height: height,
		aspect: float64(width) / float64(height),
		scale:  math.Tan(fovDegrees * math.Pi / 180 / 2),
	}
}

// GetRay returns the ray through pixel (i, j), offset inside the pixel cell
// by jitter, where both jitter components lie in [0, 1). Row 0 is the top of
// the image.
func (c *Camera) GetRay(i, j int, jitter core.Vec2) core.Ray {
	x := (2*(float64(i)+jitter.X)/float64(c.width) - 1) * c.aspect * c.scale
	y := (1 - 2*(float64(j)+jitter.Y)/float64(c.height)) * c.scale

	lookAt := core.NewVec3(c.eye.X-x, c.eye.Y+y, c.eye.Z+1)
	return core.NewRay(c.eye, lookAt.Subtract(c.eye))
}

// Eye returns the camera position
func (c *Camera) Eye() core.Vec3 {
	return c.eye
}
