package material

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to red, V maps to green; V=1 is the top row.
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(width-1, 1))
			v := 1 - float64(y)/float64(max(height-1, 1))
			pixels[y*width+x] = core.NewColor(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}
