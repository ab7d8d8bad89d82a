package material

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// DiffuseLight is an emitter that never scatters. Only the front face glows.
type DiffuseLight struct {
	nonEmissive
	Emit core.Texture
}

// NewDiffuseLight creates a light with a solid emission color
func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission comes from a texture
func NewTexturedDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emission}
}

// Scatter always absorbs
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the texture value on the front face and black on the back
func (l *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Color {
	if !hit.FrontFace {
		return core.Color{}
	}
	return l.Emit.Value(hit.U, hit.V, hit.Point)
}
