package material

import "github.com/df07/go-tiled-pathtracer/pkg/core"

// nonEmissive provides the default Emitted and ScatteringPDF behaviour.
// Materials embed it and override what they need.
type nonEmissive struct{}

// Emitted returns black
func (nonEmissive) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Color {
	return core.Color{}
}

// ScatteringPDF returns zero
func (nonEmissive) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// reflectVector calculates the reflection of a vector v off a surface with normal n
func reflectVector(v, n core.Point) core.Point {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
