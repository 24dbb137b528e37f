package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestEmissionOf(t *testing.T) {
	tests := []struct {
		name         string
		material     Material
		expectEmit   bool
		expectedEmit core.Vec3
	}{
		{
			name:         "White emission",
			material:     NewEmissive(core.NewVec3(1.0, 1.0, 1.0)),
			expectEmit:   true,
			expectedEmit: core.NewVec3(1.0, 1.0, 1.0),
		},
		{
			name:         "Red emission",
			material:     NewEmissive(core.NewVec3(1.0, 0.0, 0.0)),
			expectEmit:   true,
			expectedEmit: core.NewVec3(1.0, 0.0, 0.0),
		},
		{
			name:       "Zero emission",
			material:   NewEmissive(core.NewVec3(0.0, 0.0, 0.0)),
			expectEmit: false,
		},
		{
			name:       "Lambertian",
			material:   NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
			expectEmit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emission, emits := EmissionOf(tt.material)
			if emits != tt.expectEmit {
				t.Fatalf("Expected emits=%v, got %v", tt.expectEmit, emits)
			}
			if emits && emission != tt.expectedEmit {
				t.Errorf("Expected emission %v, got %v", tt.expectedEmit, emission)
			}
		})
	}
}

func TestEmissive_DoesNotReflect(t *testing.T) {
	emissive := NewEmissive(core.NewVec3(10.0, 5.0, 2.0))
	normal := core.NewVec3(0, 1, 0)

	if fr := emissive.Evaluate(normal, normal, normal); !fr.IsZero() {
		t.Errorf("Expected zero BRDF for emissive material, got %v", fr)
	}
	if pdf := emissive.PDF(normal, normal, normal); pdf != 0 {
		t.Errorf("Expected zero PDF for emissive material, got %f", pdf)
	}
}
