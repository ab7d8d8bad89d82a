package material

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Point) core.Color {
	return s.Color
}

// CheckerTexture alternates between two textures on a 3D grid of cells
type CheckerTexture struct {
	invScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewCheckerTexture creates a checker with cells of size scale
func NewCheckerTexture(scale float64, even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1 / scale, Even: even, Odd: odd}
}

// NewCheckerTextureFromColors creates a checker alternating two solid colors
func NewCheckerTextureFromColors(scale float64, even, odd core.Color) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value selects even or odd by the parity of the cell index sum
func (c *CheckerTexture) Value(u, v float64, p core.Point) core.Color {
	x := int(math.Floor(c.invScale * p.X))
	y := int(math.Floor(c.invScale * p.Y))
	z := int(math.Floor(c.invScale * p.Z))

	// &1 keeps the parity correct for negative cells
	if (x+y+z)&1 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
