package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
)

func finalCamera(opts Options) renderer.CameraConfig {
	config := cornellCamera(opts)
	config.ImageWidth = 400
	config.SamplesPerPixel = 250
	config.MaxDepth = 4
	config.LookFrom = core.NewVec3(478, 478, -600)
	return config
}

// NewFinalScene combines every feature: instanced boxes in nested BVHs,
// motion blur, glass, fuzzy metal, participating media, image and noise
// textures, and an area light
func NewFinalScene(opts Options) *Scene {
	s := newScene("final", finalCamera(opts))
	random := newRandom(opts)
	sampler := core.NewRandomSampler(random)

	// Floor of boxes with random heights
	ground := material.NewLambertian(core.NewColor(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	const boxWidth = 100.0
	groundBoxes := make([]core.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			a := core.NewVec3(-1000+float64(i)*boxWidth, 0, -1000+float64(j)*boxWidth)
			b := core.NewVec3(a.X+boxWidth, core.RandomInRange(sampler, 1, 101), a.Z+boxWidth)
			groundBoxes = append(groundBoxes, geometry.NewBox(a, b, ground))
		}
	}
	s.World.Add(core.NewBVH(groundBoxes))

	light := material.NewDiffuseLight(core.NewColor(7, 7, 7))
	s.World.AddLight(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	s.World.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewColor(0.7, 0.3, 0.1))))

	s.World.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewColor(0.8, 0.8, 0.9), 1)))

	// Glass ball filled with blue fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.World.Add(boundary)
	s.World.Add(geometry.NewConstantMediumFromColor(boundary, 0.2, core.NewColor(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.World.Add(geometry.NewConstantMediumFromColor(mist, 0.0001, core.NewColor(1, 1, 1)))

	s.World.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture(opts))))
	s.World.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewTexturedLambertian(material.NewNoiseTexture(0.2, random))))

	// Cube of small spheres
	white := material.NewLambertian(core.NewColor(0.73, 0.73, 0.73))
	const sphereCount = 100
	spheres := make([]core.Hittable, 0, sphereCount)
	for i := 0; i < sphereCount; i++ {
		spheres = append(spheres, geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	s.World.Add(geometry.NewTranslate(
		geometry.NewRotateY(core.NewBVH(spheres), 15),
		core.NewVec3(-100, 270, 395)))

	return s
}
