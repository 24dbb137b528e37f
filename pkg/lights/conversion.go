package lights

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// SolidAnglePDF converts a density per unit area on a light into a density
// per unit solid angle as seen from a shading point:
//
//	pdf_ω = pdf_A · d² / cosθ_light
//
// where d is the distance to the light point and cosθ_light is the cosine
// between the light normal and the direction back toward the shading point.
// A light seen edge-on or from behind has no solid-angle density and yields 0.
func SolidAnglePDF(areaPDF, distance, cosLight float64) float64 {
	if cosLight <= 0 || areaPDF <= 0 {
		return 0
	}
	return areaPDF * distance * distance / cosLight
}

func emissionOf(obj geometry.Object) (core.Vec3, bool) {
	return material.EmissionOf(obj.Material())
}
