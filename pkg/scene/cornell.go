package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
)

// cornellBoxSize is the edge length of the Cornell room
const cornellBoxSize = 555.0

// addCornellRoom adds the five walls and the ceiling light of the Cornell
// room and returns the white wall material for reuse by the contents
func addCornellRoom(world *World) core.Material {
	red := material.NewLambertian(core.NewColor(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewColor(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewColor(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewColor(15, 15, 15))

	n := cornellBoxSize
	world.Add(geometry.NewQuad(core.NewVec3(n, 0, 0), core.NewVec3(0, n, 0), core.NewVec3(0, 0, n), green))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, n, 0), core.NewVec3(0, 0, n), red))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(n, 0, 0), core.NewVec3(0, 0, n), white))
	world.Add(geometry.NewQuad(core.NewVec3(n, n, n), core.NewVec3(-n, 0, 0), core.NewVec3(0, 0, -n), white))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, n), core.NewVec3(n, 0, 0), core.NewVec3(0, n, 0), white))

	// Ceiling light, facing down into the room
	world.AddLight(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	return white
}

// cornellBlocks returns the tall and the short rotated block of the classic layout
func cornellBlocks(mat core.Material) (tall, short core.Hittable) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295))
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellScene creates the classic Cornell box with two rotated blocks
func NewCornellScene(opts Options) *Scene {
	s := newScene("cornell", cornellCamera(opts))

	white := addCornellRoom(s.World)
	tall, short := cornellBlocks(white)
	s.World.Add(tall)
	s.World.Add(short)

	return s
}

// NewCornellSmokeScene replaces the Cornell blocks with participating media:
// black smoke and a marble-textured fog
func NewCornellSmokeScene(opts Options) *Scene {
	s := newScene("cornell-smoke", cornellCamera(opts))

	white := addCornellRoom(s.World)
	tall, short := cornellBlocks(white)
	s.World.Add(geometry.NewConstantMediumFromColor(tall, 0.01, core.NewColor(0, 0, 0)))
	s.World.Add(geometry.NewConstantMedium(short, 0.01, material.NewNoiseTexture(0.2, newRandom(opts))))

	return s
}
