package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var logger = log.New("renderer")

// ProgressFunc receives the number of finished pixels. It is called from the
// progress goroutine only, never from render workers.
type ProgressFunc func(done, total int)

// Config contains renderer settings that are not part of the scene
type Config struct {
	NumWorkers int          // Worker goroutines, 0 means runtime.NumCPU()
	Seed       int64        // Base seed; column x renders with Seed + x
	Progress   ProgressFunc // Optional progress callback
}

// DefaultConfig returns one worker per CPU and seed 0
func DefaultConfig() Config {
	return Config{NumWorkers: runtime.NumCPU()}
}

// Raytracer renders a preprocessed scene into an 8-bit image
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	sampling   scene.SamplingConfig
	config     Config
}

// NewRaytracer validates the scene settings and derives the camera
func NewRaytracer(s *scene.Scene, config Config) (*Raytracer, error) {
	if s.World == nil {
		return nil, ErrSceneNotPreprocessed
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return nil, err
	}
	if config.NumWorkers < 0 {
		return nil, fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, config.NumWorkers)
	}
	if config.NumWorkers == 0 {
		config.NumWorkers = runtime.NumCPU()
	}

	camera, err := geometry.NewCamera(s.CameraConfig)
	if err != nil {
		return nil, err
	}

	return &Raytracer{
		scene:      s,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(s.SamplingConfig),
		sampling:   s.SamplingConfig,
		config:     config,
	}, nil
}

// Width returns the output image width
func (rt *Raytracer) Width() int {
	return rt.camera.Width()
}

// Height returns the output image height
func (rt *Raytracer) Height() int {
	return rt.camera.Height()
}

// Render traces every pixel and returns the image with statistics
func (rt *Raytracer) Render() (*RenderedImage, RenderStats) {
	width, height := rt.Width(), rt.Height()
	img := NewRenderedImage(width, height)

	logger.Infof("rendering %dx%d, %d samples per pixel, depth %d, %d workers",
		width, height, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth, rt.config.NumWorkers)

	start := time.Now()
	progress := newProgressTracker(width*height, rt.config.Progress)
	go progress.run()

	pool := NewWorkerPool(rt, img, progress, width, rt.config.NumWorkers)
	pool.Start()
	for x := 0; x < width; x++ {
		pool.SubmitTask(ColumnTask{X: x})
	}
	pool.Stop()

	var totalSamples int64
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		totalSamples += int64(result.Samples)
	}
	progress.finish()

	stats := rt.collectStats(img, totalSamples, time.Since(start))
	logger.Noticef("rendered %dx%d in %s", width, height, stats.Duration)
	return img, stats
}

// RenderColumn renders all rows of column x into img and returns the number of samples taken
func (rt *Raytracer) RenderColumn(x int, img *RenderedImage, sampler core.Sampler, onPixel func()) int {
	samples := 0
	for y := 0; y < rt.Height(); y++ {
		color := rt.PixelColor(x, y, sampler)
		r, g, b := vec3ToRGB(color)
		img.SetRGB(x, y, r, g, b)
		samples += rt.sampling.SamplesPerPixel
		if onPixel != nil {
			onPixel()
		}
	}
	return samples
}

// PixelColor returns the averaged linear radiance of pixel (i, j), j counted from the top
func (rt *Raytracer) PixelColor(i, j int, sampler core.Sampler) core.Vec3 {
	colorAccum := core.Vec3{}
	for sample := 0; sample < rt.sampling.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, sampler))
	}
	return colorAccum.Multiply(1.0 / float64(rt.sampling.SamplesPerPixel))
}

func (rt *Raytracer) collectStats(img *RenderedImage, totalSamples int64, duration time.Duration) RenderStats {
	mean, stdDev := CalculateLuminanceStats(img)
	return RenderStats{
		Width:           img.Width,
		Height:          img.Height,
		SamplesPerPixel: rt.sampling.SamplesPerPixel,
		MaxDepth:        rt.sampling.MaxDepth,
		Workers:         rt.config.NumWorkers,
		Primitives:      rt.scene.GetPrimitiveCount(),
		BVH:             rt.scene.BVHStats(),
		TotalSamples:    totalSamples,
		Duration:        duration,
		MeanLuminance:   mean,
		StdDevLuminance: stdDev,
	}
}
