package material

import (
	"math"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/pdf"
)

// Isotropic scatters uniformly in all directions; it is the phase function
// of constant-density media
type Isotropic struct {
	nonEmissive
	Albedo core.Texture
}

// NewIsotropic creates an isotropic phase function with the given albedo
func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter sends the ray off in a uniformly random direction from the hit point
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         pdf.NewSpherePDF(),
	}, true
}

// ScatteringPDF is 1/4π for every direction
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}
