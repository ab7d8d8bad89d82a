package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	i := NewInterval(1, 3)

	assert.Equal(t, 2.0, i.Size())
	assert.True(t, i.Contains(1))
	assert.False(t, i.Surrounds(1))
	assert.True(t, i.Surrounds(2))
	assert.Equal(t, 3.0, i.Clamp(10))
	assert.Equal(t, 1.0, i.Clamp(-10))
	assert.Equal(t, NewInterval(0.5, 3.5), i.Expand(1))
	assert.Equal(t, NewInterval(2, 4), i.Shift(1))

	assert.False(t, EmptyInterval().Contains(0))
	assert.True(t, UniverseInterval().Surrounds(1e300))
	assert.Equal(t, i, EmptyInterval().Union(i))
}

func TestAABB_Padding(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 0))

	assert.Greater(t, flat.Z.Size(), 0.0)
	assert.InDelta(t, 1e-4, flat.Z.Size(), 1e-12)
	assert.InDelta(t, -5e-5, flat.Z.Min, 1e-12)
	assert.True(t, flat.IsValid())
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewInterval(0, 1), NewInterval(0, 1), NewInterval(0, 1))
	const pad = 5e-5

	tests := []struct {
		name      string
		ray       Ray
		rayT      Interval
		wantHit   bool
		wantStart float64
		wantEnd   float64
	}{
		{
			name:      "axis aligned through center",
			ray:       NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0)),
			rayT:      UniverseInterval(),
			wantHit:   true,
			wantStart: 1 - pad,
			wantEnd:   2 + pad,
		},
		{
			name:      "negative direction",
			ray:       NewRay(NewVec3(0.5, 3, 0.5), NewVec3(0, -2, 0)),
			rayT:      UniverseInterval(),
			wantHit:   true,
			wantStart: (2 - pad) / 2,
			wantEnd:   (3 + pad) / 2,
		},
		{
			name:      "diagonal",
			ray:       NewRay(NewVec3(-1, -1, -1), NewVec3(1, 1, 1)),
			rayT:      UniverseInterval(),
			wantHit:   true,
			wantStart: 1 - pad,
			wantEnd:   2 + pad,
		},
		{
			name:      "origin inside clipped by interval",
			ray:       NewRay(NewVec3(0.5, 0.5, 0.5), NewVec3(0, 0, 1)),
			rayT:      NewInterval(0.001, 100),
			wantHit:   true,
			wantStart: 0.001,
			wantEnd:   0.5 + pad,
		},
		{
			name:    "parallel outside slab",
			ray:     NewRay(NewVec3(-1, 2, 0.5), NewVec3(1, 0, 0)),
			rayT:    UniverseInterval(),
			wantHit: false,
		},
		{
			name:    "pointing away",
			ray:     NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(-1, 0, 0)),
			rayT:    NewInterval(0, math.Inf(1)),
			wantHit: false,
		},
		{
			name:    "interval ends before box",
			ray:     NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0)),
			rayT:    NewInterval(0, 0.5),
			wantHit: false,
		},
		{
			name:    "misses past corner",
			ray:     NewRay(NewVec3(-1, 1.5, 0.5), NewVec3(1, 0.2, 0)),
			rayT:    UniverseInterval(),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, hit := box.Hit(tt.ray, tt.rayT)
			require.Equal(t, tt.wantHit, hit)
			if !hit {
				return
			}
			assert.InDelta(t, tt.wantStart, interval.Min, 1e-9)
			assert.InDelta(t, tt.wantEnd, interval.Max, 1e-9)
		})
	}
}

func TestAABB_HitMatchesPointSampling(t *testing.T) {
	// Points strictly inside the returned interval must lie in the box, and
	// points outside it must not
	box := NewAABBFromPoints(NewVec3(-2, -1, 0.5), NewVec3(1, 3, 2))
	sampler := NewSeededSampler(7)

	for i := 0; i < 500; i++ {
		ray := NewRay(RandomVec3(sampler, -5, 5), RandomUnitVector(sampler))
		interval, hit := box.Hit(ray, NewInterval(-100, 100))

		inside := func(p Point) bool {
			return box.X.Contains(p.X) && box.Y.Contains(p.Y) && box.Z.Contains(p.Z)
		}
		if hit {
			mid := (interval.Min + interval.Max) / 2
			assert.True(t, inside(ray.At(mid)), "ray %d midpoint outside box", i)
			assert.False(t, inside(ray.At(interval.Max+1e-3)), "ray %d past exit inside box", i)
			continue
		}
		for step := -100.0; step <= 100; step += 0.05 {
			if inside(ray.At(step)) {
				t.Fatalf("ray %d reported miss but passes through box at t=%f", i, step)
			}
		}
	}
}

func TestAABB_UnionTranslateCorners(t *testing.T) {
	a := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABBFromPoints(NewVec3(2, -1, 0), NewVec3(3, 0, 4))

	u := a.Union(b)
	assert.InDelta(t, 3, u.X.Max, 1e-3)
	assert.InDelta(t, -1, u.Y.Min, 1e-3)
	assert.Equal(t, 2, u.LongestAxis())

	moved := a.Translate(NewVec3(10, 0, 0))
	assert.InDelta(t, 10.5, moved.Center().X, 1e-12)

	corners := a.Corners()
	assert.Equal(t, a.Min(), corners[0])
	assert.Equal(t, a.Max(), corners[7])
	assert.True(t, EmptyAABB().Union(a) == a)
}

func TestOnb(t *testing.T) {
	for _, n := range []Point{NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(-0.3, 0.4, 2)} {
		onb := NewOnb(n)
		assert.InDelta(t, 1, onb.U.Length(), 1e-12)
		assert.InDelta(t, 1, onb.V.Length(), 1e-12)
		assert.InDelta(t, 0, onb.U.Dot(onb.V), 1e-12)
		assert.InDelta(t, 0, onb.U.Dot(onb.W), 1e-12)
		assert.True(t, onb.Transform(NewVec3(0, 0, 1)).Subtract(n.Normalize()).Length() < 1e-12)
	}
}
