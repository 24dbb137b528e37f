package renderer

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Camera          *scene.CameraConfig // View to render (nil = the scene's camera)
	SamplesPerPixel int                 // Independent path samples averaged per pixel
	Workers         int                 // Concurrent sample evaluations (0 = runtime.NumCPU())
	Seed            uint64              // Base seed for every sample's random stream
	Logger          *slog.Logger        // Structured logger (nil = slog.Default())
	Progress        ProgressFunc        // Called after every scanline (optional)
}

// Renderer drives the integrator over every pixel of the image
type Renderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	view       scene.CameraConfig
	config     Config
}

// NewRenderer validates the configuration and sets up the camera
func NewRenderer(s *scene.Scene, integ integrator.Integrator, config Config) (*Renderer, error) {
	view := s.Camera()
	if config.Camera != nil {
		view = *config.Camera
	}
	if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.Errorf("invalid image size %dx%d", view.Width, view.Height)
	}
	if !(view.FOV > 0 && view.FOV < 180) {
		return nil, errors.Errorf("field of view %v outside (0, 180)", view.FOV)
	}
	if config.SamplesPerPixel < 1 {
		return nil, errors.Errorf("samples per pixel must be at least 1, got %d", config.SamplesPerPixel)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Renderer{
		scene:      s,
		integrator: integ,
		camera:     NewCamera(view.Eye, view.Width, view.Height, view.FOV),
		view:       view,
		config:     config,
	}, nil
}

// Render estimates every pixel as the mean of SamplesPerPixel independent
// path samples. Scanlines are rendered top to bottom; within a scanline each
// (pixel, sample) pair is its own task with its own random stream, so the
// result depends only on Seed and not on scheduling. Cancelling ctx stops
// the render at the next scanline boundary.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	width, height := r.view.Width, r.view.Height
	spp := r.config.SamplesPerPixel
	renderID := uuid.New().String()
	logger := r.config.Logger.With(slog.String("render", renderID))

	attrs := []any{
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("spp", spp),
		slog.Int("workers", r.config.Workers),
		slog.Int("objects", r.scene.ObjectCount()),
		slog.Int("lights", r.scene.Lights().LightCount()),
	}
	if bvh, ok := r.scene.BVHStats(); ok {
		attrs = append(attrs, slog.Group("bvh",
			slog.Int("nodes", bvh.TotalNodes),
			slog.Int("leaves", bvh.LeafNodes),
			slog.Int("depth", bvh.MaxDepth)))
	}
	logger.Info("render started", attrs...)

	start := time.Now()
	fb := NewFramebuffer(width, height)
	samples := make([]core.Vec3, width*spp)

	for j := 0; j < height; j++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("render cancelled", slog.Int("scanline", j))
			return nil, RenderStats{}, errors.Wrapf(err, "render cancelled at scanline %d", j)
		}

		r.renderScanline(j, samples)

		for i := 0; i < width; i++ {
			var stats PixelStats
			for s := 0; s < spp; s++ {
				stats.AddSample(samples[i*spp+s])
			}
			fb.Set(i, j, stats.GetColor())
		}

		if r.config.Progress != nil {
			r.config.Progress(float64(j+1) / float64(height))
		}
	}

	stats := RenderStats{
		RenderID:        renderID,
		TotalPixels:     width * height,
		TotalSamples:    width * height * spp,
		SamplesPerPixel: spp,
		Duration:        time.Since(start),
		MeanLuminance:   CalculateAverageLuminance(fb),
	}
	logger.Info("render finished",
		slog.Duration("duration", stats.Duration),
		slog.Int("samples", stats.TotalSamples),
		slog.Float64("meanLuminance", stats.MeanLuminance))

	return fb, stats, nil
}

// renderScanline evaluates every sample of row j. Slot i*spp+s of out
// receives sample s of pixel i and is written by that task alone.
func (r *Renderer) renderScanline(j int, out []core.Vec3) {
	width, spp := r.view.Width, r.config.SamplesPerPixel

	var g errgroup.Group
	g.SetLimit(r.config.Workers)
	for i := 0; i < width; i++ {
		pixel := uint64(j*width + i)
		for s := 0; s < spp; s++ {
			g.Go(func() error {
				sampler := core.NewSampler(r.config.Seed, pixel, uint64(s))
				ray := r.camera.GetRay(i, j, sampler.Get2D())
				out[i*spp+s] = r.integrator.RayColor(ray, r.scene, sampler)
				return nil
			})
		}
	}
	// Tasks never fail
	_ = g.Wait()
}
