package lights

import "github.com/df07/go-tiled-pathtracer/pkg/core"

// Light is a scene object that can also be importance sampled from a
// shading point. Sphere and Quad implement it.
type Light interface {
	core.Hittable
	core.LightSource
}
