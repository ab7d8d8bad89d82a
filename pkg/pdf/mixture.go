package pdf

import "github.com/df07/go-tiled-pathtracer/pkg/core"

// MixturePDF is an equal-weight blend of two PDFs
type MixturePDF struct {
	p [2]core.PDF
}

// NewMixturePDF blends p0 and p1 with weight 1/2 each
func NewMixturePDF(p0, p1 core.PDF) *MixturePDF {
	return &MixturePDF{p: [2]core.PDF{p0, p1}}
}

// Value returns 0.5*p0(d) + 0.5*p1(d)
func (m *MixturePDF) Value(direction core.Point) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate picks one of the two PDFs with a fair coin and samples it
func (m *MixturePDF) Generate(sampler core.Sampler) core.Point {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
