package renderer

import (
	"math"
	"runtime"
	"time"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/integrator"
)

// workNormalization converts estimated path segments into a batch count
const workNormalization = 1e9

// Camera owns the viewport geometry and renders scenes in parallel row batches.
// It is immutable after construction and may render any number of scenes.
type Camera struct {
	config      CameraConfig
	imageWidth  int
	imageHeight int
	threads     int

	center       core.Point // Camera center
	pixel00      core.Point // Location of pixel (0, 0)
	pixelDeltaU  core.Point // Offset to the pixel on the right
	pixelDeltaV  core.Point // Offset to the pixel below
	u, v, w      core.Point // Camera frame basis vectors
	defocusDiskU core.Point // Defocus disk horizontal radius
	defocusDiskV core.Point // Defocus disk vertical radius

	sqrtSPP           int
	recipSqrtSPP      float64
	pixelSamplesScale float64

	integrator integrator.Integrator
	logger     core.Logger
}

// NewCamera derives the viewport from config. A degenerate look direction or
// up vector panics while normalizing the basis.
func NewCamera(config CameraConfig, logger core.Logger) *Camera {
	if logger == nil {
		logger = core.NopLogger{}
	}

	imageWidth := max(1, config.ImageWidth)
	imageHeight := max(1, int(float64(imageWidth)/config.AspectRatio))

	threads := config.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	sqrtSPP := max(1, int(math.Sqrt(float64(config.SamplesPerPixel))))

	center := config.LookFrom
	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDist
	viewportWidth := viewportHeight * (float64(imageWidth) / float64(imageHeight))

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)
	pixelDeltaU := viewportU.Divide(float64(imageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDist * math.Tan(degreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:            config,
		imageWidth:        imageWidth,
		imageHeight:       imageHeight,
		threads:           threads,
		center:            center,
		pixel00:           pixel00,
		pixelDeltaU:       pixelDeltaU,
		pixelDeltaV:       pixelDeltaV,
		u:                 u,
		v:                 v,
		w:                 w,
		defocusDiskU:      u.Multiply(defocusRadius),
		defocusDiskV:      v.Multiply(defocusRadius),
		sqrtSPP:           sqrtSPP,
		recipSqrtSPP:      1.0 / float64(sqrtSPP),
		pixelSamplesScale: 1.0 / float64(sqrtSPP*sqrtSPP),
		integrator: integrator.NewPathTracingIntegrator(integrator.Config{
			MaxDepth:      config.MaxDepth,
			Background:    config.Background,
			LightSampling: config.LightSampling,
		}),
		logger: logger,
	}
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.imageWidth
}

// Height returns the derived image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// Threads returns the resolved worker count
func (c *Camera) Threads() int {
	return c.threads
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay builds a ray from the defocus disk through a random point inside
// stratum (si, sj) of pixel (i, j), at a random time in [0, 1)
func (c *Camera) GetRay(i, j, si, sj int, sampler core.Sampler) core.Ray {
	offset := c.sampleSquareStratified(si, sj, sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// sampleSquareStratified returns an offset inside sub-square (si, sj) of the
// unit pixel [-0.5, 0.5]^2
func (c *Camera) sampleSquareStratified(si, sj int, sampler core.Sampler) core.Vec2 {
	r := sampler.Get2D()
	return core.NewVec2(
		(float64(si)+r.X)*c.recipSqrtSPP-0.5,
		(float64(sj)+r.Y)*c.recipSqrtSPP-0.5,
	)
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// Render traces the scene and returns width*height colors in row-major order,
// top row first. Colors are gamma corrected and scaled to [0, 256).
func (c *Camera) Render(scene core.Scene) []core.Color {
	pixels, _ := c.RenderWithStats(scene)
	return pixels
}

// RenderWithStats renders like Render and also reports how the work was split
func (c *Camera) RenderWithStats(scene core.Scene) ([]core.Color, RenderStats) {
	startTime := time.Now()

	tasks := planBatches(c.imageHeight, c.calcBatchSize())
	workers := min(c.threads, len(tasks))
	c.logger.Printf("Rendering %dx%d, %d spp, %d batches on %d workers\n",
		c.imageWidth, c.imageHeight, c.sqrtSPP*c.sqrtSPP, len(tasks), workers)

	pool := NewWorkerPool(c, scene, workers, len(tasks))
	pool.Start()
	for _, task := range tasks {
		pool.SubmitTask(task)
	}

	results := make([]BatchResult, 0, len(tasks))
	for range tasks {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		results = append(results, result)
	}
	pool.Stop()

	pixels := collectBatches(results)
	stats := newRenderStats(c, len(tasks), workers, pixels, time.Since(startTime))
	c.logger.Printf("Render completed in %v (mean luminance %.4f)\n", stats.Duration, stats.MeanLuminance)

	return pixels, stats
}

// calcBatchSize picks a row count per batch so that there are at least as
// many batches as workers, and more for heavier renders
func (c *Camera) calcBatchSize() int {
	work := float64(c.imageWidth) * float64(c.imageHeight) * float64(c.config.MaxDepth) /
		c.pixelSamplesScale / workNormalization
	batchCount := max(c.threads, nextPowerOfTwo(work))
	return max(1, c.imageHeight/batchCount)
}

// nextPowerOfTwo returns the smallest power of two >= x, and 1 for x <= 1
func nextPowerOfTwo(x float64) int {
	if x <= 1 {
		return 1
	}
	n := 1
	for float64(n) < x {
		n <<= 1
	}
	return n
}

// renderRows traces rows [yStart, yEnd). The sampler is reseeded at the start
// of every row so a row's pixels do not depend on which worker rendered it.
func (c *Camera) renderRows(scene core.Scene, yStart, yEnd int, sampler *core.RandomSampler) []core.Color {
	pixels := make([]core.Color, 0, (yEnd-yStart)*c.imageWidth)
	for j := yStart; j < yEnd; j++ {
		sampler.Seed(rowSeed(c.config.Seed, j))
		for i := 0; i < c.imageWidth; i++ {
			var pixelColor core.Color
			for sj := 0; sj < c.sqrtSPP; sj++ {
				for si := 0; si < c.sqrtSPP; si++ {
					ray := c.GetRay(i, j, si, sj, sampler)
					pixelColor = pixelColor.Add(c.integrator.RayColor(ray, scene, sampler))
				}
			}
			pixels = append(pixels, toDisplayColor(pixelColor.Multiply(c.pixelSamplesScale)))
		}
	}
	return pixels
}

// rowSeed mixes the render seed with a row index
func rowSeed(seed int64, row int) int64 {
	x := uint64(seed)*0x9e3779b97f4a7c15 + uint64(row)
	x ^= x >> 31
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	return int64(x)
}

// toDisplayColor applies gamma 2 and scales into the 8-bit range [0, 256)
func toDisplayColor(c core.Color) core.Color {
	return c.SqrtAxis().Clamp(0, 0.999).Multiply(256)
}
