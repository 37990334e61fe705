package linmath

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 struct {
	X, Y, Z float64
}

// SplatVec3 broadcasts a single scalar to all three components.
func SplatVec3(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Vec3FromArray builds a vector from [x, y, z].
func Vec3FromArray(a [3]float64) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// Array returns the components as [x, y, z].
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Axis-aligned unit constructors. Right-handed, Y up: forward is -Z.
func Vec3Zero() Vec3    { return Vec3{} }
func Vec3One() Vec3     { return Vec3{1, 1, 1} }
func Vec3Up() Vec3      { return Vec3{0, 1, 0} }
func Vec3Down() Vec3    { return Vec3{0, -1, 0} }
func Vec3Left() Vec3    { return Vec3{-1, 0, 0} }
func Vec3Right() Vec3   { return Vec3{1, 0, 0} }
func Vec3Forward() Vec3 { return Vec3{0, 0, -1} }
func Vec3Back() Vec3    { return Vec3{0, 0, 1} }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul multiplies componentwise.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Div divides componentwise.
func (a Vec3) Div(b Vec3) Vec3 {
	return Vec3{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Len2 returns the squared length.
func (v Vec3) Len2() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Rlen returns the reciprocal length 1/|v|. +Inf for the zero vector.
func (v Vec3) Rlen() float64 {
	return 1 / math.Sqrt(v.Len2())
}

// Normalize scales v to unit length. The result is garbage for a
// zero-length v; use NormalizeSafe when the input is not trusted.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(v.Rlen())
}

// NormalizeSafe returns the normalized vector, or fallback when the
// reciprocal length is not finite and positive. Never panics.
func (v Vec3) NormalizeSafe(fallback Vec3) Vec3 {
	rl := v.Rlen()
	if math.IsInf(rl, 0) || math.IsNaN(rl) || rl <= 0 {
		return fallback
	}
	return v.Scale(rl)
}

// IsNormalized reports whether the squared length is within epsNormalized of 1.
func (v Vec3) IsNormalized() bool {
	return math.Abs(v.Len2()-1) <= epsNormalized
}

// Project returns the projection of v onto b.
func (v Vec3) Project(b Vec3) Vec3 {
	return b.Scale(v.Dot(b) / b.Len2())
}

// Reflect mirrors the incident vector v across the plane with unit normal n:
// v - 2·dot(v,n)·n. Panics when n is not unit length.
func (v Vec3) Reflect(n Vec3) Vec3 {
	if !n.IsNormalized() {
		panic("linmath: Vec3.Reflect: normal must be unit length")
	}
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Angle returns the unsigned angle in radians between a and b.
// NaN when either operand has zero length.
func (a Vec3) Angle(b Vec3) float64 {
	if a.Len2() == 0 || b.Len2() == 0 {
		return math.NaN()
	}
	return math.Acos(Clamp(a.Dot(b)*a.Rlen()*b.Rlen(), -1, 1))
}

// RotateZ rotates v about the z axis by rad radians. This is the xy-plane
// rotation only, not a general 3D rotation; use Quat or Mat3FromAxisAngle
// for arbitrary axes.
func (v Vec3) RotateZ(rad float64) Vec3 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// Lerp interpolates linearly from v to b by t.
func (v Vec3) Lerp(b Vec3, t float64) Vec3 {
	return v.Add(b.Sub(v).Scale(t))
}

func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Len()
}

func (a Vec3) Distance2(b Vec3) float64 {
	return a.Sub(b).Len2()
}

// Eq reports componentwise equality within tol.
func (a Vec3) Eq(b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// XY drops the z component.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Vec4 extends v with a w component.
func (v Vec3) Vec4(w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%g, %g, %g)", v.X, v.Y, v.Z)
}
