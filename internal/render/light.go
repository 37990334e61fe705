package render

import (
	"math"

	"linmath"
)

// Light holds precomputed flat-shading parameters.
type Light struct {
	Dir     linmath.Vec3 // towards the light, unit length
	Ambient float64
	Hemi    float64
	Direct  float64
}

// DefaultLight returns a single key light with hemisphere fill.
func DefaultLight() Light {
	return Light{
		Dir:     linmath.Vec3{X: 0.45, Y: 0.65, Z: 0.35}.Normalize(),
		Ambient: 0.35,
		Hemi:    0.25,
		Direct:  0.65,
	}
}

// Shade returns the combined lighting scalar for a face normal, in [0, ~1.25].
func (l Light) Shade(normal linmath.Vec3) float64 {
	// Lambertian (abs for double-sided faces)
	ndl := math.Abs(normal.Dot(l.Dir))

	// Hemisphere fill keyed to how much the face looks up
	hemi := (normal.Y*0.5 + 0.5) * l.Hemi

	return l.Ambient + hemi + ndl*l.Direct
}
