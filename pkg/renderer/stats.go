package renderer

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height   int           // Image dimensions
	TotalPixels     int           // Total number of pixels rendered
	SamplesPerPixel int           // Stratified samples actually taken per pixel
	TotalSamples    int           // Total number of camera rays traced
	Batches         int           // Row batches the image was split into
	Workers         int           // Goroutines that rendered batches
	Duration        time.Duration // Wall time of the render
	MeanLuminance   float64       // Mean display luminance in [0, 1)
	StdDevLuminance float64       // Standard deviation of display luminance
}

func newRenderStats(c *Camera, batches, workers int, pixels []core.Color, duration time.Duration) RenderStats {
	spp := c.sqrtSPP * c.sqrtSPP
	mean, stdDev := LuminanceStats(pixels)
	return RenderStats{
		Width:           c.imageWidth,
		Height:          c.imageHeight,
		TotalPixels:     len(pixels),
		SamplesPerPixel: spp,
		TotalSamples:    len(pixels) * spp,
		Batches:         batches,
		Workers:         workers,
		Duration:        duration,
		MeanLuminance:   mean,
		StdDevLuminance: stdDev,
	}
}

// LuminanceStats returns the mean and standard deviation of the luminance of
// display colors, normalized from [0, 256) to [0, 1)
func LuminanceStats(pixels []core.Color) (mean, stdDev float64) {
	if len(pixels) == 0 {
		return 0, 0
	}
	luminance := make([]float64, len(pixels))
	for i, p := range pixels {
		luminance[i] = p.Luminance() / 256
	}
	if len(luminance) == 1 {
		return luminance[0], 0
	}
	return stat.MeanStdDev(luminance, nil)
}

// String formats the stats as a single summary line
func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d spp, %d batches on %d workers, %v, luminance %.4f ± %.4f",
		s.Width, s.Height, s.SamplesPerPixel, s.Batches, s.Workers, s.Duration,
		s.MeanLuminance, s.StdDevLuminance)
}
