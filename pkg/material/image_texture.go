package material

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/loaders"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromFile decodes an image file into a texture. A file that
// cannot be loaded yields an empty texture, which renders as solid cyan.
func NewImageTextureFromFile(filename string, logger core.Logger) *ImageTexture {
	data, err := loaders.LoadImage(filename)
	if err != nil {
		logger.Printf("image texture %s: %v, using fallback color\n", filename, err)
		return NewImageTexture(0, 0, nil)
	}
	return NewImageTexture(data.Width, data.Height, data.Pixels)
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(u, v float64, p core.Point) core.Color {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) == 0 {
		// Debugging aid for missing textures
		return core.NewColor(0, 1, 1)
	}

	unit := core.NewInterval(0, 1)
	u = unit.Clamp(u)
	v = 1.0 - unit.Clamp(v) // Flip V to image coordinates

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
