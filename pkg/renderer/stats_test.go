package renderer

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

func TestLuminanceStats(t *testing.T) {
	// Red, green, blue and black at full display intensity
	pixels := []core.Color{
		core.NewColor(256, 0, 0),
		core.NewColor(0, 256, 0),
		core.NewColor(0, 0, 256),
		core.NewColor(0, 0, 0),
	}

	mean, stdDev := LuminanceStats(pixels)
	assert.InDelta(t, 0.25, mean, 1e-9)

	// gonum reports the unbiased sample standard deviation
	lum := []float64{0.2126, 0.7152, 0.0722, 0}
	var ss float64
	for _, l := range lum {
		ss += (l - 0.25) * (l - 0.25)
	}
	assert.InDelta(t, math.Sqrt(ss/3), stdDev, 1e-9)
}

func TestLuminanceStats_Degenerate(t *testing.T) {
	mean, stdDev := LuminanceStats(nil)
	assert.Zero(t, mean)
	assert.Zero(t, stdDev)

	mean, stdDev = LuminanceStats([]core.Color{core.NewColor(128, 128, 128)})
	assert.InDelta(t, 0.5, mean, 1e-9)
	assert.Zero(t, stdDev)
}

func TestRenderStats_String(t *testing.T) {
	s := RenderStats{Width: 4, Height: 2, SamplesPerPixel: 9, Batches: 2, Workers: 2, Duration: time.Second}
	assert.Contains(t, s.String(), "4x2")
	assert.Contains(t, s.String(), "9 spp")
}

func TestToDisplayColor(t *testing.T) {
	tests := []struct {
		name string
		in   core.Color
		want core.Color
	}{
		{"black", core.Color{}, core.Color{}},
		{"quarter is half after gamma", core.NewColor(0.25, 0.25, 0.25), core.NewColor(128, 128, 128)},
		{"overexposed clamps", core.NewColor(4, 4, 4), core.NewColor(0.999*256, 0.999*256, 0.999*256)},
		{"negative clamps", core.NewColor(-1, 0, 0), core.Color{}},
		{"NaN is black", core.NewColor(math.NaN(), 0, 0), core.Color{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toDisplayColor(tt.in)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-9)
		})
	}
}

func TestToImage(t *testing.T) {
	pixels := []core.Color{
		core.NewColor(255.7, 0, 0), core.NewColor(0, 128.2, 0),
		core.NewColor(0, 0, 12), core.NewColor(300, -4, 1),
	}

	img := ToImage(2, 2, pixels)

	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 128, 0, 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{0, 0, 12, 255}, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{255, 0, 1, 255}, img.RGBAAt(1, 1))
}
