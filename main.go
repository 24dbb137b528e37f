package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "pathtracer: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run parses args, renders the selected scene and writes the image
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "YAML file with render settings")
	sceneID := flags.String("scene", "", "Built-in scene to render (see -list)")
	spp := flags.Int("spp", 0, "Samples per pixel")
	width := flags.Int("width", 0, "Image width (default: the scene's)")
	height := flags.Int("height", 0, "Image height (default: the scene's)")
	fov := flags.Float64("fov", 0, "Vertical field of view in degrees (default: the scene's)")
	rr := flags.Float64("rr", 0, "Russian roulette continuation probability")
	workers := flags.Int("workers", 0, "Concurrent sample evaluations (default: all CPUs)")
	seed := flags.Uint64("seed", 0, "Base random seed")
	out := flags.String("output", "", "Output file (.ppm, .ppm.gz or .png) or object key")
	bucket := flags.String("bucket", "", "Bucket URL to write the output into, e.g. gs://my-bucket")
	list := flags.Bool("list", false, "List the built-in scenes and exit")
	verbose := flags.Bool("v", false, "Log debug output")
	if err := flags.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		for _, info := range scene.List() {
			fmt.Fprintf(stdout, "  %-14s %s\n", info.ID, info.Description)
		}
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags given on the command line win over the config file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneID
		case "spp":
			cfg.SamplesPerPixel = *spp
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fov":
			cfg.FOV = *fov
		case "rr":
			cfg.RussianRoulette = *rr
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "output":
			cfg.Output = *out
		case "bucket":
			cfg.Bucket = *bucket
		}
	})
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}

	s, err := scene.Lookup(cfg.Scene, cfg.SceneOptions()...)
	if err != nil {
		return err
	}
	view := cfg.Camera(s.Camera())

	r, err := renderer.NewRenderer(s, integrator.NewPathTracingIntegrator(), renderer.Config{
		Camera:          &view,
		SamplesPerPixel: cfg.SamplesPerPixel,
		Workers:         cfg.Workers,
		Seed:            cfg.Seed,
		Logger:          logger,
		Progress:        renderer.LogProgress(core.SlogLogger{Logger: logger}),
	})
	if err != nil {
		return err
	}

	fb, stats, err := r.Render(ctx)
	if err != nil {
		return err
	}

	if err := output.Write(ctx, cfg.Bucket, cfg.Output, fb); err != nil {
		return err
	}

	logger.Info("image written",
		slog.String("render", stats.RenderID),
		slog.String("bucket", cfg.Bucket),
		slog.String("output", cfg.Output))
	return nil
}
