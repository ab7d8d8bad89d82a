package lights

import "github.com/df07/go-tiled-pathtracer/pkg/core"

// LightList samples uniformly among its member light sources
type LightList struct {
	lights []core.LightSource
}

// NewLightList creates a list from the given sources
func NewLightList(lights ...core.LightSource) *LightList {
	list := &LightList{}
	for _, light := range lights {
		list.Add(light)
	}
	return list
}

// Add registers another light source
func (l *LightList) Add(light core.LightSource) {
	l.lights = append(l.lights, light)
}

// Len returns the number of registered sources
func (l *LightList) Len() int {
	return len(l.lights)
}

// PDFValue averages the member densities, matching uniform selection in Random
func (l *LightList) PDFValue(origin, direction core.Point) float64 {
	if len(l.lights) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.lights))
	sum := 0.0
	for _, light := range l.lights {
		sum += weight * light.PDFValue(origin, direction)
	}
	return sum
}

// Random picks a member uniformly and samples a direction toward it.
// The list must not be empty.
func (l *LightList) Random(origin core.Point, sampler core.Sampler) core.Point {
	if len(l.lights) == 0 {
		panic("lights: Random on empty light list")
	}
	index := int(sampler.Get1D() * float64(len(l.lights)))
	if index >= len(l.lights) {
		index = len(l.lights) - 1
	}
	return l.lights[index].Random(origin, sampler)
}
