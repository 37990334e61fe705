package linmath

import (
	"fmt"
	"math"
)

// Vec4 is a 4-component vector (value type, stack-allocated).
type Vec4 struct {
	X, Y, Z, W float64
}

// SplatVec4 broadcasts a single scalar to all four components.
func SplatVec4(s float64) Vec4 {
	return Vec4{s, s, s, s}
}

// Vec4FromArray builds a vector from [x, y, z, w].
func Vec4FromArray(a [4]float64) Vec4 {
	return Vec4{a[0], a[1], a[2], a[3]}
}

// Array returns the components as [x, y, z, w].
func (v Vec4) Array() [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}

func Vec4Zero() Vec4 { return Vec4{} }
func Vec4One() Vec4  { return Vec4{1, 1, 1, 1} }

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Mul multiplies componentwise.
func (a Vec4) Mul(b Vec4) Vec4 {
	return Vec4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// Div divides componentwise.
func (a Vec4) Div(b Vec4) Vec4 {
	return Vec4{a.X / b.X, a.Y / b.Y, a.Z / b.Z, a.W / b.W}
}

func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func (v Vec4) Len() float64 {
	return math.Sqrt(v.Len2())
}

// Len2 returns the squared length.
func (v Vec4) Len2() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Rlen returns the reciprocal length 1/|v|. +Inf for the zero vector.
func (v Vec4) Rlen() float64 {
	return 1 / math.Sqrt(v.Len2())
}

// Normalize scales v to unit length. The result is garbage for a
// zero-length v; use NormalizeSafe when the input is not trusted.
func (v Vec4) Normalize() Vec4 {
	return v.Scale(v.Rlen())
}

// NormalizeSafe returns the normalized vector, or fallback when the
// reciprocal length is not finite and positive. Never panics.
func (v Vec4) NormalizeSafe(fallback Vec4) Vec4 {
	rl := v.Rlen()
	if math.IsInf(rl, 0) || math.IsNaN(rl) || rl <= 0 {
		return fallback
	}
	return v.Scale(rl)
}

// IsNormalized reports whether the squared length is within epsNormalized of 1.
func (v Vec4) IsNormalized() bool {
	return math.Abs(v.Len2()-1) <= epsNormalized
}

// Lerp interpolates linearly from v to b by t.
func (v Vec4) Lerp(b Vec4, t float64) Vec4 {
	return v.Add(b.Sub(v).Scale(t))
}

// Eq reports componentwise equality within tol.
func (a Vec4) Eq(b Vec4, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol &&
		math.Abs(a.W-b.W) <= tol
}

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) String() string {
	return fmt.Sprintf("Vec4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
