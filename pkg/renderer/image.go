package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// ToImage packs display colors from Render into an 8-bit RGBA image.
// pixels must hold width*height colors in row-major order.
func ToImage(width, height int, pixels []core.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: to8Bit(p.X),
				G: to8Bit(p.Y),
				B: to8Bit(p.Z),
				A: 255,
			})
		}
	}
	return img
}

func to8Bit(v float64) uint8 {
	return uint8(max(0, min(255, v)))
}
