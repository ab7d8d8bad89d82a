package renderer

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// CameraConfig contains every recognised camera and render option
type CameraConfig struct {
	AspectRatio     float64    // Width / height
	ImageWidth      int        // Image width in pixels
	SamplesPerPixel int        // Rounded down to a square number of strata
	MaxDepth        int        // Maximum ray bounce depth
	VFov            float64    // Vertical field of view in degrees
	LookFrom        core.Point // Camera position
	LookAt          core.Point // Point the camera looks at
	VUp             core.Point // Up direction
	DefocusAngle    float64    // Aperture cone angle in degrees, 0 disables depth of field
	FocusDist       float64    // Distance to the plane of perfect focus
	Threads         int        // Worker goroutines, 0 means one per CPU
	Background      core.Color // Radiance for rays that leave the scene
	Seed            int64      // Base seed for the per-row samplers
	LightSampling   bool       // Importance sample registered lights on diffuse bounces
}

// DefaultCameraConfig returns the documented defaults
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
		Threads:         runtime.NumCPU(),
		Background:      core.NewColor(0.7, 0.8, 1.0),
		Seed:            42,
		LightSampling:   true,
	}
}

// cameraFile is the on-disk TOML layout; vectors are written as 3-element arrays
type cameraFile struct {
	AspectRatio     float64    `toml:"aspect_ratio"`
	ImageWidth      int        `toml:"image_width"`
	SamplesPerPixel int        `toml:"samples_per_pixel"`
	MaxDepth        int        `toml:"max_depth"`
	VFov            float64    `toml:"vfov"`
	LookFrom        [3]float64 `toml:"look_from"`
	LookAt          [3]float64 `toml:"look_at"`
	VUp             [3]float64 `toml:"vup"`
	DefocusAngle    float64    `toml:"defocus_angle"`
	FocusDist       float64    `toml:"focus_dist"`
	Threads         int        `toml:"threads"`
	Background      [3]float64 `toml:"background"`
	Seed            int64      `toml:"seed"`
	LightSampling   bool       `toml:"light_sampling"`
}

func toArray[T any](v core.Vec3[T]) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func fromArray[T any](a [3]float64) core.Vec3[T] {
	return core.Vec3[T]{X: a[0], Y: a[1], Z: a[2]}
}

func newCameraFile(config CameraConfig) cameraFile {
	return cameraFile{
		AspectRatio:     config.AspectRatio,
		ImageWidth:      config.ImageWidth,
		SamplesPerPixel: config.SamplesPerPixel,
		MaxDepth:        config.MaxDepth,
		VFov:            config.VFov,
		LookFrom:        toArray(config.LookFrom),
		LookAt:          toArray(config.LookAt),
		VUp:             toArray(config.VUp),
		DefocusAngle:    config.DefocusAngle,
		FocusDist:       config.FocusDist,
		Threads:         config.Threads,
		Background:      toArray(config.Background),
		Seed:            config.Seed,
		LightSampling:   config.LightSampling,
	}
}

func (f cameraFile) config() CameraConfig {
	return CameraConfig{
		AspectRatio:     f.AspectRatio,
		ImageWidth:      f.ImageWidth,
		SamplesPerPixel: f.SamplesPerPixel,
		MaxDepth:        f.MaxDepth,
		VFov:            f.VFov,
		LookFrom:        fromArray[core.Coords](f.LookFrom),
		LookAt:          fromArray[core.Coords](f.LookAt),
		VUp:             fromArray[core.Coords](f.VUp),
		DefocusAngle:    f.DefocusAngle,
		FocusDist:       f.FocusDist,
		Threads:         f.Threads,
		Background:      fromArray[core.RGB](f.Background),
		Seed:            f.Seed,
		LightSampling:   f.LightSampling,
	}
}

// LoadCameraConfig reads a TOML file and overlays the keys it sets onto base.
// Keys absent from the file keep their value from base; unknown keys are an error.
func LoadCameraConfig(path string, base CameraConfig) (CameraConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("failed to open camera config: %w", err)
	}
	defer file.Close()

	overlay := newCameraFile(base)
	decoder := toml.NewDecoder(file).DisallowUnknownFields()
	if err := decoder.Decode(&overlay); err != nil {
		return base, fmt.Errorf("failed to parse camera config %s: %w", path, err)
	}
	return overlay.config(), nil
}

// MarshalCameraConfig encodes a config in the same layout LoadCameraConfig reads
func MarshalCameraConfig(config CameraConfig) ([]byte, error) {
	data, err := toml.Marshal(newCameraFile(config))
	if err != nil {
		return nil, fmt.Errorf("failed to encode camera config: %w", err)
	}
	return data, nil
}
