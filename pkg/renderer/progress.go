package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ProgressFunc receives the completed fraction of a render after each
// scanline. Values are non-decreasing and the last call reports exactly 1.
type ProgressFunc func(fraction float64)

// LogProgress returns a ProgressFunc that prints a line each time another
// tenth of the image is finished
func LogProgress(logger core.Logger) ProgressFunc {
	reported := 0
	return func(fraction float64) {
		step := int(math.Floor(fraction * 10))
		if step <= reported {
			return
		}
		reported = step
		logger.Printf("Rendering: %d%% complete\n", step*10)
	}
}
