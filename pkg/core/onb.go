package core

import "math"

// Onb is an orthonormal basis whose W axis is aligned with a given vector
type Onb struct {
	U, V, W Point
}

// NewOnb builds a basis around n; n must be non-zero
func NewOnb(n Point) Onb {
	w := n.Normalize()
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return Onb{U: u, V: v, W: w}
}

// Transform maps a vector from basis-local coordinates to world coordinates
func (o Onb) Transform(local Point) Point {
	return o.U.Multiply(local.X).Add(o.V.Multiply(local.Y)).Add(o.W.Multiply(local.Z))
}
