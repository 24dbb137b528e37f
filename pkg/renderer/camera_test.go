package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCameraGetRay_Center(t *testing.T) {
	eye := core.NewVec3(278, 273, -800)
	camera := NewCamera(eye, 100, 100, 40)

	// The center of the image lies on the pixel corner (50, 50)
	ray := camera.GetRay(50, 50, core.NewVec2(0, 0))
	if ray.Origin != eye {
		t.Errorf("Expected ray origin %v, got %v", eye, ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected forward direction (0,0,1), got %v", ray.Direction)
	}
}

func TestCameraGetRay_Corners(t *testing.T) {
	fov := 40.0
	camera := NewCamera(core.NewVec3(0, 0, 0), 200, 100, fov)
	scale := math.Tan(fov * math.Pi / 360)
	aspect := 2.0

	tests := []struct {
		name     string
		i, j     int
		jitter   core.Vec2
		expected core.Vec3
	}{
		{"top left", 0, 0, core.NewVec2(0, 0), core.NewVec3(aspect*scale, scale, 1)},
		{"bottom right", 199, 99, core.NewVec2(1, 1), core.NewVec3(-aspect*scale, -scale, 1)},
		{"top right", 199, 0, core.NewVec2(1, 0), core.NewVec3(-aspect*scale, scale, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.i, tt.j, tt.jitter)
			expected := tt.expected.Normalize()
			if ray.Direction.Subtract(expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-12 {
				t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
			}
		})
	}
}

func TestCameraGetRay_JitterStaysInPixel(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), 10, 10, 90)
	sampler := core.NewSampler(4)

	lo := camera.GetRay(3, 7, core.NewVec2(0, 0)).Direction
	hi := camera.GetRay(4, 8, core.NewVec2(0, 0)).Direction
	for k := 0; k < 100; k++ {
		d := camera.GetRay(3, 7, sampler.Get2D()).Direction
		// Project back onto the z = 1 image plane
		x, y := d.X/d.Z, d.Y/d.Z
		if x > lo.X/lo.Z || x < hi.X/hi.Z || y > lo.Y/lo.Z || y < hi.Y/hi.Z {
			t.Fatalf("Jittered ray %v left the pixel cell", d)
		}
	}
}
