package linmath

import (
	"fmt"
	"math"
)

// Vec2 is a 2-component vector (value type, stack-allocated).
type Vec2 struct {
	X, Y float64
}

// SplatVec2 broadcasts a single scalar to both components.
func SplatVec2(s float64) Vec2 {
	return Vec2{s, s}
}

// Vec2FromArray builds a vector from [x, y].
func Vec2FromArray(a [2]float64) Vec2 {
	return Vec2{a[0], a[1]}
}

// Array returns the components as [x, y].
func (v Vec2) Array() [2]float64 {
	return [2]float64{v.X, v.Y}
}

// Axis-aligned unit constructors.
func Vec2Zero() Vec2  { return Vec2{} }
func Vec2One() Vec2   { return Vec2{1, 1} }
func Vec2Up() Vec2    { return Vec2{0, 1} }
func Vec2Down() Vec2  { return Vec2{0, -1} }
func Vec2Left() Vec2  { return Vec2{-1, 0} }
func Vec2Right() Vec2 { return Vec2{1, 0} }

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul multiplies componentwise.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Div divides componentwise.
func (a Vec2) Div(b Vec2) Vec2 {
	return Vec2{a.X / b.X, a.Y / b.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product of a and b
// lifted into the xy-plane.
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Len2 returns the squared length.
func (v Vec2) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Rlen returns the reciprocal length 1/|v|. +Inf for the zero vector.
func (v Vec2) Rlen() float64 {
	return 1 / math.Sqrt(v.Len2())
}

// Normalize scales v to unit length. The result is garbage for a
// zero-length v; use NormalizeSafe when the input is not trusted.
func (v Vec2) Normalize() Vec2 {
	return v.Scale(v.Rlen())
}

// NormalizeSafe returns the normalized vector, or fallback when the
// reciprocal length is not finite and positive. Never panics.
func (v Vec2) NormalizeSafe(fallback Vec2) Vec2 {
	rl := v.Rlen()
	if math.IsInf(rl, 0) || math.IsNaN(rl) || rl <= 0 {
		return fallback
	}
	return v.Scale(rl)
}

// IsNormalized reports whether the squared length is within epsNormalized of 1.
func (v Vec2) IsNormalized() bool {
	return math.Abs(v.Len2()-1) <= epsNormalized
}

// Project returns the projection of v onto b.
func (v Vec2) Project(b Vec2) Vec2 {
	return b.Scale(v.Dot(b) / b.Len2())
}

// Reflect mirrors the incident vector v across the plane with unit normal n:
// v - 2·dot(v,n)·n. Panics when n is not unit length.
func (v Vec2) Reflect(n Vec2) Vec2 {
	if !n.IsNormalized() {
		panic("linmath: Vec2.Reflect: normal must be unit length")
	}
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Angle returns the signed angle in radians from a to b, positive
// counter-clockwise. NaN when either operand has zero length.
func (a Vec2) Angle(b Vec2) float64 {
	if a.Len2() == 0 || b.Len2() == 0 {
		return math.NaN()
	}
	return math.Atan2(a.Cross(b), a.Dot(b))
}

// Rotate rotates v counter-clockwise by rad radians.
func (v Vec2) Rotate(rad float64) Vec2 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// RotateDeg rotates v counter-clockwise by deg degrees.
func (v Vec2) RotateDeg(deg float64) Vec2 {
	return v.Rotate(Deg2Rad(deg))
}

// Lerp interpolates linearly from v to b by t.
func (v Vec2) Lerp(b Vec2, t float64) Vec2 {
	return v.Add(b.Sub(v).Scale(t))
}

func (a Vec2) Distance(b Vec2) float64 {
	return a.Sub(b).Len()
}

func (a Vec2) Distance2(b Vec2) float64 {
	return a.Sub(b).Len2()
}

// Eq reports componentwise equality within tol.
func (a Vec2) Eq(b Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// Vec3 extends v with a z component.
func (v Vec2) Vec3(z float64) Vec3 {
	return Vec3{v.X, v.Y, z}
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", v.X, v.Y)
}
