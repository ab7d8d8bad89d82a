package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // blue
	return img
}

func writeImage(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f))
	return path
}

func TestLoadImage(t *testing.T) {
	img := testImage()

	tests := []struct {
		name   string
		file   string
		format string
		encode func(f *os.File) error
	}{
		{"png", "test.png", "png", func(f *os.File) error { return png.Encode(f, img) }},
		{"bmp", "test.bmp", "bmp", func(f *os.File) error { return bmp.Encode(f, img) }},
		{"tiff", "test.tiff", "tiff", func(f *os.File) error { return tiff.Encode(f, img, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeImage(t, tt.file, tt.encode)

			data, err := LoadImage(path)
			require.NoError(t, err)
			assert.Equal(t, tt.format, data.Format)
			require.Equal(t, 2, data.Width)
			require.Equal(t, 2, data.Height)
			require.Len(t, data.Pixels, 4)

			expected := []core.Color{
				core.NewColor(1, 1, 1),
				core.NewColor(1, 0, 0),
				core.NewColor(0, 1, 0),
				core.NewColor(0, 0, 1),
			}
			for i, want := range expected {
				got := data.Pixels[i]
				assert.InDelta(t, want.X, got.X, 0.01, "pixel %d", i)
				assert.InDelta(t, want.Y, got.Y, 0.01, "pixel %d", i)
				assert.InDelta(t, want.Z, got.Z, 0.01, "pixel %d", i)
			}
		})
	}
}

func TestLoadImageErrors(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = LoadImage(garbage)
	assert.ErrorIs(t, err, image.ErrFormat)
}
