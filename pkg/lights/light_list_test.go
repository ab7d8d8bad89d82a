package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// constLight always returns the same density and direction
type constLight struct {
	density   float64
	direction core.Point
}

func (c constLight) PDFValue(origin, direction core.Point) float64 {
	return c.density
}

func (c constLight) Random(origin core.Point, sampler core.Sampler) core.Point {
	return c.direction
}

func TestLightList_PDFValueAverages(t *testing.T) {
	tests := []struct {
		name   string
		lights []core.LightSource
		want   float64
	}{
		{name: "empty", lights: nil, want: 0},
		{name: "single", lights: []core.LightSource{constLight{density: 2}}, want: 2},
		{name: "pair", lights: []core.LightSource{constLight{density: 2}, constLight{density: 4}}, want: 3},
		{name: "triple with zero", lights: []core.LightSource{constLight{density: 3}, constLight{}, constLight{density: 6}}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewLightList(tt.lights...)
			assert.Equal(t, len(tt.lights), list.Len())
			assert.InDelta(t, tt.want, list.PDFValue(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), 1e-12)
		})
	}
}

func TestLightList_RandomSelectsUniformly(t *testing.T) {
	list := NewLightList(
		constLight{direction: core.NewVec3(1, 0, 0)},
		constLight{direction: core.NewVec3(0, 1, 0)},
		constLight{direction: core.NewVec3(0, 0, 1)},
	)
	sampler := core.NewSeededSampler(42)

	counts := map[core.Point]int{}
	const n = 30000
	for i := 0; i < n; i++ {
		counts[list.Random(core.NewVec3(0, 0, 0), sampler)]++
	}

	assert.Len(t, counts, 3)
	for direction, count := range counts {
		assert.InDelta(t, 1.0/3.0, float64(count)/n, 0.02, "direction %v", direction)
	}
}

func TestLightList_RandomOnEmptyPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewLightList().Random(core.NewVec3(0, 0, 0), core.NewSeededSampler(1))
	})
}
