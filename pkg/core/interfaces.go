package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all output
type NopLogger struct{}

// Printf does nothing
func (NopLogger) Printf(format string, args ...interface{}) {}

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection with t strictly inside rayT
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
	BoundingBox() AABB
}

// HitRecord contains information about a ray-object intersection.
// It is only valid for the duration of the call that produced it.
type HitRecord struct {
	Point     Point    // Point of intersection
	Normal    Point    // Surface normal at intersection, facing against the ray
	Material  Material // Material of the hit object
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface coordinates
	FrontFace bool     // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Point) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Material decides how light interacts with a surface
type Material interface {
	// Scatter returns false when the ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterResult, bool)
	// Emitted returns light given off by the surface at the hit point
	Emitted(rayIn Ray, hit *HitRecord) Color
	// ScatteringPDF evaluates the material's own scattering density for a direction
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation Color
	PDF         PDF // Sampling strategy for diffuse scattering (nil for specular)
	Specular    Ray // Continuation ray for specular scattering
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF == nil
}

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at given surface coordinates and 3D point
	Value(u, v float64, p Point) Color
}

// PDF is a direction sampling strategy paired with its density
type PDF interface {
	Value(direction Point) float64
	Generate(sampler Sampler) Point
}

// LightSource can be sampled from an arbitrary shading point
type LightSource interface {
	// PDFValue is the solid-angle density of sampling direction from origin
	PDFValue(origin, direction Point) float64
	// Random returns a (non-normalized) direction from origin toward the light
	Random(origin Point, sampler Sampler) Point
}

// Scene is the read-only view of a world the integrator traces against
type Scene interface {
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
	// Lights returns nil when no light sources were registered
	Lights() LightSource
}
