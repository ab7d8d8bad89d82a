package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5)))

	tests := []struct {
		name      string
		ray       core.Ray
		rayT      core.Interval
		wantHit   bool
		wantT     float64
		wantFront bool
	}{
		{
			name:      "head on from outside",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			rayT:      core.NewInterval(0.001, math.Inf(1)),
			wantHit:   true,
			wantT:     4,
			wantFront: true,
		},
		{
			name:      "from inside hits far side",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1)),
			rayT:      core.NewInterval(0.001, math.Inf(1)),
			wantHit:   true,
			wantT:     1,
			wantFront: false,
		},
		{
			name:    "miss",
			ray:     core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, -1)),
			rayT:    core.NewInterval(0.001, math.Inf(1)),
			wantHit: false,
		},
		{
			name:    "interval excludes both roots",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			rayT:    core.NewInterval(0.001, 3.9),
			wantHit: false,
		},
		{
			name:    "open interval excludes exact root",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			rayT:    core.NewInterval(4, 5.5),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Hit(tt.ray, tt.rayT)
			require.Equal(t, tt.wantHit, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.wantT, hit.T, 1e-9)
			assert.Equal(t, tt.wantFront, hit.FrontFace)
			assert.InDelta(t, 1, hit.Normal.Length(), 1e-9)
			assert.Less(t, hit.Normal.Dot(tt.ray.Direction), 0.0)
			assert.Same(t, sphere.Material, hit.Material)
		})
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name string
		p    core.Point
		u, v float64
	}{
		{"+X", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+Y", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"-Y", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"-X", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"+Z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"-Z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.p)
			assert.InDelta(t, tt.v, v, 1e-9)
			// -X sits on the seam, either end is acceptable
			if tt.name == "-X" {
				assert.True(t, math.Abs(u) < 1e-9 || math.Abs(u-1) < 1e-9, "u=%f", u)
				return
			}
			assert.InDelta(t, tt.u, u, 1e-9)
		})
	}
}

func TestSphere_NegativeRadiusIsClamped(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -2, nil)
	assert.Equal(t, 0.0, sphere.Radius)
}

func TestSphere_ZeroRadiusIsNeverHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 0, nil)

	// The ray passes exactly through the center
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	assert.NotPanics(t, func() {
		_, hit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
		assert.False(t, hit)
	})
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -5), core.NewVec3(2, 0, -5), 0.5, nil)

	box := sphere.BoundingBox()
	assert.InDelta(t, -0.5, box.X.Min, 1e-3)
	assert.InDelta(t, 2.5, box.X.Max, 1e-3)

	ray := func(time float64) core.Ray {
		return core.NewRayAtTime(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1), time)
	}
	_, hitEarly := sphere.Hit(ray(0), core.NewInterval(0.001, math.Inf(1)))
	_, hitLate := sphere.Hit(ray(1), core.NewInterval(0.001, math.Inf(1)))
	assert.False(t, hitEarly)
	assert.True(t, hitLate)

	assert.Panics(t, func() {
		sphere.PDFValue(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	})
	assert.Panics(t, func() {
		sphere.Random(core.NewVec3(0, 0, 0), core.NewSeededSampler(1))
	})
}

func TestSphere_LightSampling(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 3, 0), 1, nil)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewSeededSampler(42)

	cosThetaMax := math.Sqrt(1 - 1.0/9.0)
	want := 1 / (2 * math.Pi * (1 - cosThetaMax))

	for i := 0; i < 500; i++ {
		direction := sphere.Random(origin, sampler)
		_, ok := sphere.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)))
		require.True(t, ok, "sampled direction %v must hit the sphere", direction)
		assert.InDelta(t, want, sphere.PDFValue(origin, direction), 1e-9)
	}

	assert.Equal(t, 0.0, sphere.PDFValue(origin, core.NewVec3(0, -1, 0)))

	// Density integrates to one over all directions
	values := make([]float64, 1000000)
	for i := range values {
		values[i] = sphere.PDFValue(origin, core.RandomUnitVector(sampler)) * 4 * math.Pi
	}
	assert.InDelta(t, 1.0, stat.Mean(values, nil), 0.03)
}
