package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DisplayGamma is the exponent applied when encoding radiance for display
const DisplayGamma = 2.2

// Framebuffer holds one radiance value per pixel in row-major order with
// row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the radiance of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[j*fb.Width+i]
}

// Set stores the radiance of pixel (i, j)
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.Pixels[j*fb.Width+i] = c
}

// ToneMap converts radiance to 8-bit display values: each channel is raised
// to 1/2.2, clamped to [0, 1] and scaled to [0, 255] with rounding. NaN and
// negative channels become 0 and +Inf becomes 255.
func ToneMap(c core.Vec3) [3]byte {
	displayable := core.NewVec3(positiveOrZero(c.X), positiveOrZero(c.Y), positiveOrZero(c.Z))
	encoded := displayable.GammaCorrect(DisplayGamma).Clamp(0, 1)
	return [3]byte{quantize(encoded.X), quantize(encoded.Y), quantize(encoded.Z)}
}

func positiveOrZero(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return v
}

func quantize(v float64) byte {
	return byte(math.Round(255 * v))
}

// EncodePPM writes the framebuffer as a binary P6 image
func EncodePPM(w io.Writer, fb *Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for _, pixel := range fb.Pixels {
		rgb := ToneMap(pixel)
		if _, err := bw.Write(rgb[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ToImage converts the framebuffer to an RGBA image using the same tone mapping
func ToImage(fb *Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			rgb := ToneMap(fb.At(i, j))
			img.SetRGBA(i, j, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return img
}
