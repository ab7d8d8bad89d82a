package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
)

// NewSimpleScene creates three spheres (diffuse, metal and a hollow glass
// bubble) resting on a large ground sphere
func NewSimpleScene(opts Options) *Scene {
	s := newScene("simple", wideCamera(opts))

	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))))
	s.World.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.1)))

	// Glass shell with an air bubble inside
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)))
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, material.NewDielectric(1/1.5)))

	return s
}

// NewBouncingSpheresScene creates the classic random field of small spheres
// on a checkered ground. Diffuse spheres move upwards during the shutter.
func NewBouncingSpheresScene(opts Options) *Scene {
	s := newScene("bouncing-spheres", wideCamera(opts))
	random := newRandom(opts)
	sampler := core.NewRandomSampler(random)

	checker := material.NewCheckerTextureFromColors(0.32, core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			chooseMat := random.Float64()
			switch {
			case chooseMat < 0.75:
				albedo := core.Color(core.RandomVec3(sampler, 0, 1)).MultiplyVec(core.Color(core.RandomVec3(sampler, 0, 1)))
				center2 := center.Add(core.NewVec3(0, core.RandomInRange(sampler, 0, 0.5), 0))
				s.World.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.93:
				albedo := core.Color(core.RandomVec3(sampler, 0.5, 1))
				fuzz := core.RandomInRange(sampler, 0, 0.5)
				s.World.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.World.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	s.World.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))))
	s.World.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0)))

	return s
}

// NewCheckeredSpheresScene creates two large spheres sharing one 3D checker texture
func NewCheckeredSpheresScene(opts Options) *Scene {
	s := newScene("checkered-spheres", wideCamera(opts))

	checker := material.NewTexturedLambertian(
		material.NewCheckerTextureFromColors(0.32, core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9)))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker))

	return s
}

// earthTexture loads the configured globe image, or a UV debug pattern
// when no path is configured
func earthTexture(opts Options) core.Texture {
	if opts.TexturePath == "" {
		opts.logger().Printf("No earth texture configured, using UV debug texture\n")
		return material.NewUVDebugTexture(256, 128)
	}
	return material.NewImageTextureFromFile(opts.TexturePath, opts.logger())
}

// NewEarthScene creates a single image-textured globe
func NewEarthScene(opts Options) *Scene {
	s := newScene("earth", wideCamera(opts))

	earth := material.NewTexturedLambertian(earthTexture(opts))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, earth))

	return s
}

// NewPerlinSpheresScene creates a marble sphere on a marble ground
func NewPerlinSpheresScene(opts Options) *Scene {
	s := newScene("perlin-spheres", wideCamera(opts))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, newRandom(opts)))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble))

	return s
}
