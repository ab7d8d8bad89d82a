package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
)

// NewQuadsScene creates five colored quads forming an open box around the camera axis
func NewQuadsScene(opts Options) *Scene {
	config := wideCamera(opts)
	config.AspectRatio = 1
	config.ImageWidth = 400
	config.VFov = 80
	config.LookFrom = core.NewVec3(0, 0, 9)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.DefocusAngle = 0
	s := newScene("quads", config)

	leftRed := material.NewLambertian(core.NewColor(1, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewColor(0.2, 1, 0.2))
	rightBlue := material.NewLambertian(core.NewColor(0.2, 0.2, 1))
	upperOrange := material.NewLambertian(core.NewColor(1, 0.5, 0))
	lowerTeal := material.NewLambertian(core.NewColor(0.2, 0.8, 0.8))

	s.World.Add(geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed))
	s.World.Add(geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen))
	s.World.Add(geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue))
	s.World.Add(geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange))
	s.World.Add(geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal))

	return s
}

// NewSimpleLightScene lights the marble spheres with a spherical and a
// rectangular light against a black sky
func NewSimpleLightScene(opts Options) *Scene {
	config := wideCamera(opts)
	config.ImageWidth = 400
	config.Background = core.Color{}
	config.LookFrom = core.NewVec3(26, 3, 6)
	config.LookAt = core.NewVec3(0, 2, 0)
	config.DefocusAngle = 0
	s := newScene("simple-light", config)

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, newRandom(opts)))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble))

	light := material.NewDiffuseLight(core.NewColor(4, 4, 4))
	s.World.AddLight(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))
	s.World.AddLight(geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light))

	return s
}
