package pdf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// integrateOverSphere estimates ∫ p(ω) dω with uniform sphere samples
func integrateOverSphere(p core.PDF, n int, seed int64) float64 {
	sampler := core.NewSeededSampler(seed)
	values := make([]float64, n)
	for i := range values {
		values[i] = p.Value(core.RandomUnitVector(sampler)) * 4 * math.Pi
	}
	return stat.Mean(values, nil)
}

// mockLight is a cone of directions around +Z with a constant density
type mockLight struct {
	cosMax float64
}

func (l mockLight) solidAngle() float64 {
	return 2 * math.Pi * (1 - l.cosMax)
}

func (l mockLight) PDFValue(origin, direction core.Point) float64 {
	if direction.Normalize().Z >= l.cosMax {
		return 1 / l.solidAngle()
	}
	return 0
}

func (l mockLight) Random(origin core.Point, sampler core.Sampler) core.Point {
	s := sampler.Get2D()
	z := 1 - s.Y*(1-l.cosMax)
	r := math.Sqrt(1 - z*z)
	phi := 2 * math.Pi * s.X
	return core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z).Multiply(3)
}

func TestPDF_Normalization(t *testing.T) {
	tests := []struct {
		name string
		pdf  core.PDF
	}{
		{name: "cosine around +Y", pdf: NewCosinePDF(core.NewVec3(0, 1, 0))},
		{name: "cosine around skewed normal", pdf: NewCosinePDF(core.NewVec3(1, -2, 0.5))},
		{name: "sphere", pdf: NewSpherePDF()},
		{name: "hittable", pdf: NewHittablePDF(mockLight{cosMax: 0.5}, core.NewVec3(0, 0, 0))},
		{name: "mixture", pdf: NewMixturePDF(NewCosinePDF(core.NewVec3(0, 0, 1)), NewSpherePDF())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integral := integrateOverSphere(tt.pdf, 200000, 42)
			assert.InDelta(t, 1.0, integral, 0.02)
		})
	}
}

func TestPDF_GeneratedDirectionsHavePositiveDensity(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	pdfs := []core.PDF{
		NewCosinePDF(core.NewVec3(0, 0, -1)),
		NewSpherePDF(),
		NewHittablePDF(mockLight{cosMax: 0.9}, core.NewVec3(1, 2, 3)),
		NewMixturePDF(NewHittablePDF(mockLight{cosMax: 0.9}, core.NewVec3(0, 0, 0)), NewCosinePDF(core.NewVec3(0, 1, 0))),
	}

	for i, p := range pdfs {
		for j := 0; j < 1000; j++ {
			d := p.Generate(sampler)
			assert.Greater(t, p.Value(d), 0.0, "pdf %d sample %d", i, j)
		}
	}
}

func TestCosinePDF_Value(t *testing.T) {
	p := NewCosinePDF(core.NewVec3(0, 0, 1))

	assert.InDelta(t, 1/math.Pi, p.Value(core.NewVec3(0, 0, 5)), 1e-12)
	assert.InDelta(t, 0.5/math.Pi, p.Value(core.NewVec3(math.Sqrt(3), 0, 1)), 1e-12)
	assert.Equal(t, 0.0, p.Value(core.NewVec3(0, 0, -1)))
}

func TestMixturePDF_Value(t *testing.T) {
	light := NewHittablePDF(mockLight{cosMax: 0.5}, core.NewVec3(0, 0, 0))
	sphere := NewSpherePDF()
	mix := NewMixturePDF(light, sphere)

	up := core.NewVec3(0, 0, 1)
	want := 0.5*light.Value(up) + 0.5*sphere.Value(up)
	assert.InDelta(t, want, mix.Value(up), 1e-12)

	down := core.NewVec3(0, 0, -1)
	assert.InDelta(t, 0.5/(4*math.Pi), mix.Value(down), 1e-12)
}

func TestMixturePDF_GenerateUsesBothComponents(t *testing.T) {
	sampler := core.NewSeededSampler(9)
	mix := NewMixturePDF(
		NewHittablePDF(mockLight{cosMax: 0.99}, core.NewVec3(0, 0, 0)),
		NewCosinePDF(core.NewVec3(0, 0, -1)),
	)

	up, down := 0, 0
	for i := 0; i < 10000; i++ {
		if mix.Generate(sampler).Z > 0 {
			up++
		} else {
			down++
		}
	}
	assert.InDelta(t, 0.5, float64(up)/10000, 0.03)
	assert.Equal(t, 10000, up+down)
}
