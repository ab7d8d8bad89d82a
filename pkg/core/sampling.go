package core

import (
	"math"
	"math/rand"
)

// Vec2 holds a pair of sample values
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Point
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Seed resets the underlying generator
func (r *RandomSampler) Seed(seed int64) {
	r.random.Seed(seed)
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Point {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInRange returns a value uniformly distributed in [min, max)
func RandomInRange(sampler Sampler, min, max float64) float64 {
	return min + (max-min)*sampler.Get1D()
}

// RandomVec3 returns a vector with each component uniform in [min, max)
func RandomVec3(sampler Sampler, min, max float64) Point {
	s := sampler.Get3D()
	return NewVec3(min+(max-min)*s.X, min+(max-min)*s.Y, min+(max-min)*s.Z)
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere.
// Candidates with squared length in (1e-160, 1] are accepted; tiny vectors
// would blow up when normalized.
func RandomUnitVector(sampler Sampler) Point {
	for {
		p := RandomVec3(sampler, -1, 1)
		lensq := p.LengthSquared()
		if 1e-160 < lensq && lensq <= 1 {
			return p.Multiply(1 / math.Sqrt(lensq))
		}
	}
}

// RandomOnHemisphere returns a uniform unit direction in the hemisphere around normal
func RandomOnHemisphere(normal Point, sampler Sampler) Point {
	onUnitSphere := RandomUnitVector(sampler)
	if onUnitSphere.Dot(normal) > 0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Point {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted direction around +Z
func RandomCosineDirection(sampler Sampler) Point {
	s := sampler.Get2D()
	phi := 2 * math.Pi * s.X
	r := math.Sqrt(s.Y)

	x := math.Cos(phi) * r
	y := math.Sin(phi) * r
	z := math.Sqrt(1 - s.Y)
	return NewVec3(x, y, z)
}

// RandomToSphere returns a direction around +Z uniformly distributed inside
// the cone subtended by a sphere of the given radius at the given squared distance
func RandomToSphere(radius, distanceSquared float64, sampler Sampler) Point {
	s := sampler.Get2D()
	z := 1 + s.Y*(math.Sqrt(1-radius*radius/distanceSquared)-1)

	phi := 2 * math.Pi * s.X
	x := math.Cos(phi) * math.Sqrt(1-z*z)
	y := math.Sin(phi) * math.Sqrt(1-z*z)
	return NewVec3(x, y, z)
}
