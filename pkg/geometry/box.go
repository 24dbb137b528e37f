package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBox returns the six faces of a box resting on the plane y = base.y,
// rotated by angle radians around the vertical axis through its base center.
// Every face normal points outward. Faces come in -x, +x, -y, +y, -z, +z order.
func NewBox(base, size core.Vec3, angle float64, mat material.Material) []Object {
	sin, cos := math.Sincos(angle)

	// Edge vectors along the rotated local axes
	ex := core.NewVec3(cos*size.X, 0, -sin*size.X)
	ey := core.NewVec3(0, size.Y, 0)
	ez := core.NewVec3(sin*size.Z, 0, cos*size.Z)

	// Corner with minimum local coordinates
	origin := base.Subtract(ex.Multiply(0.5)).Subtract(ez.Multiply(0.5))
	opposite := origin.Add(ex).Add(ey).Add(ez)

	return []Object{
		NewQuad(origin, ez, ey, mat),
		NewQuad(opposite, ey.Negate(), ez.Negate(), mat),
		NewQuad(origin, ex, ez, mat),
		NewQuad(opposite, ez.Negate(), ex.Negate(), mat),
		NewQuad(origin, ey, ex, mat),
		NewQuad(opposite, ex.Negate(), ey.Negate(), mat),
	}
}
