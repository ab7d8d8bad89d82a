package renderer

import "github.com/df07/go-tiled-pathtracer/pkg/core"

// CameraBuilder accumulates camera options before the derived viewport is computed
type CameraBuilder struct {
	config CameraConfig
	logger core.Logger
}

// NewCameraBuilder starts from DefaultCameraConfig
func NewCameraBuilder() *CameraBuilder {
	return &CameraBuilder{config: DefaultCameraConfig(), logger: core.NopLogger{}}
}

// NewCameraBuilderFromConfig starts from an existing config
func NewCameraBuilderFromConfig(config CameraConfig) *CameraBuilder {
	return &CameraBuilder{config: config, logger: core.NopLogger{}}
}

// AspectRatio sets the width to height ratio
func (b *CameraBuilder) AspectRatio(aspectRatio float64) *CameraBuilder {
	b.config.AspectRatio = aspectRatio
	return b
}

// ImageWidth sets the image width in pixels
func (b *CameraBuilder) ImageWidth(width int) *CameraBuilder {
	b.config.ImageWidth = width
	return b
}

// SamplesPerPixel sets the sample budget; it is rounded down to a square number of strata
func (b *CameraBuilder) SamplesPerPixel(samples int) *CameraBuilder {
	b.config.SamplesPerPixel = samples
	return b
}

// MaxDepth sets the maximum number of bounces per path
func (b *CameraBuilder) MaxDepth(depth int) *CameraBuilder {
	b.config.MaxDepth = depth
	return b
}

// VFov sets the vertical field of view in degrees
func (b *CameraBuilder) VFov(degrees float64) *CameraBuilder {
	b.config.VFov = degrees
	return b
}

// LookFrom sets the camera position
func (b *CameraBuilder) LookFrom(p core.Point) *CameraBuilder {
	b.config.LookFrom = p
	return b
}

// LookAt sets the point the camera looks at
func (b *CameraBuilder) LookAt(p core.Point) *CameraBuilder {
	b.config.LookAt = p
	return b
}

// VUp sets the camera-relative up direction
func (b *CameraBuilder) VUp(v core.Point) *CameraBuilder {
	b.config.VUp = v
	return b
}

// DefocusAngle sets the aperture cone angle in degrees; 0 disables depth of field
func (b *CameraBuilder) DefocusAngle(degrees float64) *CameraBuilder {
	b.config.DefocusAngle = degrees
	return b
}

// FocusDist sets the distance to the plane of perfect focus
func (b *CameraBuilder) FocusDist(dist float64) *CameraBuilder {
	b.config.FocusDist = dist
	return b
}

// Threads sets the worker count; 0 means one per CPU
func (b *CameraBuilder) Threads(threads int) *CameraBuilder {
	b.config.Threads = threads
	return b
}

// Background sets the color returned by rays that escape the scene
func (b *CameraBuilder) Background(c core.Color) *CameraBuilder {
	b.config.Background = c
	return b
}

// Seed sets the base seed for per-row sampling
func (b *CameraBuilder) Seed(seed int64) *CameraBuilder {
	b.config.Seed = seed
	return b
}

// LightSampling toggles explicit sampling of scene lights
func (b *CameraBuilder) LightSampling(enabled bool) *CameraBuilder {
	b.config.LightSampling = enabled
	return b
}

// Logger sets where render progress is reported
func (b *CameraBuilder) Logger(logger core.Logger) *CameraBuilder {
	b.logger = logger
	return b
}

// Config returns the options accumulated so far
func (b *CameraBuilder) Config() CameraConfig {
	return b.config
}

// Build derives the immutable camera
func (b *CameraBuilder) Build() *Camera {
	return NewCamera(b.config, b.logger)
}
