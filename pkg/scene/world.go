package scene

import (
	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/lights"
)

// World is the set of objects a camera renders, plus the subset that is
// importance sampled as lights. Build it fully, call Build, then share it
// read-only between render workers.
type World struct {
	objects *core.HittableList
	lights  *lights.LightList
	bvh     *core.BVH
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		objects: core.NewHittableList(),
		lights:  lights.NewLightList(),
	}
}

// Add inserts an object. It invalidates a previously built BVH.
func (w *World) Add(object core.Hittable) {
	w.objects.Add(object)
	w.bvh = nil
}

// AddLight inserts an object that is both rendered and sampled as a light.
// The same value backs both roles.
func (w *World) AddLight(light lights.Light) {
	w.Add(light)
	w.lights.Add(light)
}

// Build constructs the BVH over all objects added so far
func (w *World) Build() {
	w.bvh = core.NewBVH(w.objects.Objects)
}

// Hit finds the nearest intersection, through the BVH when one was built
func (w *World) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	if w.bvh != nil {
		return w.bvh.Hit(ray, rayT)
	}
	return w.objects.Hit(ray, rayT)
}

// BoundingBox returns the union of all object boxes
func (w *World) BoundingBox() core.AABB {
	return w.objects.BoundingBox()
}

// Lights returns the registered lights, or nil when there are none
func (w *World) Lights() core.LightSource {
	if w.lights.Len() == 0 {
		return nil
	}
	return w.lights
}

// Len returns the number of objects, lights included
func (w *World) Len() int {
	return w.objects.Len()
}

// LightCount returns the number of registered lights
func (w *World) LightCount() int {
	return w.lights.Len()
}

// BVHStats reports the shape of the built BVH; zero before Build
func (w *World) BVHStats() core.BVHStats {
	if w.bvh == nil {
		return core.BVHStats{}
	}
	return w.bvh.Stats()
}
