package linmath

import (
	"fmt"
	"math"
)

// Quat is a rotation quaternion (x, y, z, w). The identity rotation is
// (0, 0, 0, 1). Operations that extract rotations (AxisAngle, Euler,
// QuatAngle) require a unit quaternion; nothing renormalizes behind the
// caller's back.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the identity rotation (0, 0, 0, 1).
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromArray builds a quaternion from [x, y, z, w].
func QuatFromArray(a [4]float64) Quat {
	return Quat{a[0], a[1], a[2], a[3]}
}

// Array returns the components as [x, y, z, w].
func (q Quat) Array() [4]float64 {
	return [4]float64{q.X, q.Y, q.Z, q.W}
}

// QuatFromAxisAngle returns the rotation about axis by rad radians:
// (axis·sin(θ/2), cos(θ/2)). Panics when axis is not unit length.
func QuatFromAxisAngle(axis Vec3, rad float64) Quat {
	if !axis.IsNormalized() {
		panic("linmath: QuatFromAxisAngle: axis must be unit length")
	}
	s, c := math.Sincos(rad * 0.5)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuatRotationX returns the rotation about the x axis by rad radians.
func QuatRotationX(rad float64) Quat {
	s, c := math.Sincos(rad * 0.5)
	return Quat{s, 0, 0, c}
}

// QuatRotationY returns the rotation about the y axis by rad radians.
func QuatRotationY(rad float64) Quat {
	s, c := math.Sincos(rad * 0.5)
	return Quat{0, s, 0, c}
}

// QuatRotationZ returns the rotation about the z axis by rad radians.
func QuatRotationZ(rad float64) Quat {
	s, c := math.Sincos(rad * 0.5)
	return Quat{0, 0, s, c}
}

// QuatFromScaledAxis interprets |v| as the angle in radians and the
// direction of v as the axis. The exactly-zero vector yields the identity.
func QuatFromScaledAxis(v Vec3) Quat {
	if v == (Vec3{}) {
		return QuatIdentity()
	}
	angle := v.Len()
	return QuatFromAxisAngle(v.Scale(1/angle), angle)
}

// QuatFromEuler composes three single-axis rotations in the sequence named
// by order. The i-th component of angles belongs to the i-th letter of the
// order, so QuatFromEuler(Vec3{a, 0, 0}, EulerYXZ) rotates about y by a.
func QuatFromEuler(angles Vec3, order EulerOrder) Quat {
	ax := order.axes()
	e := angles.Array()
	return quatAboutAxis(ax[0], e[0]).
		Mul(quatAboutAxis(ax[1], e[1])).
		Mul(quatAboutAxis(ax[2], e[2]))
}

func quatAboutAxis(axis int, rad float64) Quat {
	switch axis {
	case axisX:
		return QuatRotationX(rad)
	case axisY:
		return QuatRotationY(rad)
	}
	return QuatRotationZ(rad)
}

// QuatFromAxes extracts the quaternion whose rotation maps the standard
// basis onto the orthonormal columns x, y, z. The largest quaternion
// component is branch-selected first and computed from an always-positive
// combination of the diagonal, so no division by a near-zero quantity
// happens. Panics when a column is not unit length.
func QuatFromAxes(x, y, z Vec3) Quat {
	if !x.IsNormalized() || !y.IsNormalized() || !z.IsNormalized() {
		panic("linmath: QuatFromAxes: basis columns must be unit length")
	}
	m00, m10, m20 := x.X, x.Y, x.Z
	m01, m11, m21 := y.X, y.Y, y.Z
	m02, m12, m22 := z.X, z.Y, z.Z

	var t float64
	var q Quat
	if m22 < 0 {
		// |x| or |y| dominates.
		if m00 > m11 {
			t = 1 + m00 - m11 - m22
			q = Quat{t, m01 + m10, m20 + m02, m21 - m12}
		} else {
			t = 1 - m00 + m11 - m22
			q = Quat{m01 + m10, t, m12 + m21, m02 - m20}
		}
	} else {
		// |z| or |w| dominates.
		if m00 < -m11 {
			t = 1 - m00 - m11 + m22
			q = Quat{m20 + m02, m12 + m21, t, m10 - m01}
		} else {
			t = 1 + m00 + m11 + m22
			q = Quat{m21 - m12, m02 - m20, m10 - m01, t}
		}
	}
	return q.Scale(0.5 / math.Sqrt(t))
}

// QuatFromMat3 extracts the quaternion equivalent to a rotation matrix.
// The columns must form an orthonormal basis.
func QuatFromMat3(m Mat3) Quat {
	return QuatFromAxes(m.C0, m.C1, m.C2)
}

// AxisAngle converts a unit quaternion back to a rotation axis and an
// angle in [0, 2π]. Near the identity the axis is ill-defined and falls
// back to (1, 0, 0).
func (q Quat) AxisAngle() (Vec3, float64) {
	if !q.IsNormalized() {
		panic("linmath: Quat.AxisAngle: quaternion must be unit length")
	}
	w := Clamp(q.W, -1, 1)
	angle := 2 * math.Acos(w)
	s2 := math.Max(1-w*w, 0)
	if s2 < 1e-12 {
		return Vec3{1, 0, 0}, angle
	}
	s := math.Sqrt(s2)
	return Vec3{q.X / s, q.Y / s, q.Z / s}, angle
}

// ScaledAxis converts a unit quaternion to a scaled-axis vector: the
// rotation axis with the angle as its length.
func (q Quat) ScaledAxis() Vec3 {
	axis, angle := q.AxisAngle()
	return axis.Scale(angle)
}

// Euler decomposes a unit quaternion into the angle sequence named by
// order, with the same component-to-letter mapping as QuatFromEuler. The
// middle angle comes from an asin whose argument is clamped to [-1, 1];
// at gimbal lock the two outer angles are ill-conditioned.
func (q Quat) Euler(order EulerOrder) Vec3 {
	if !q.IsNormalized() {
		panic("linmath: Quat.Euler: quaternion must be unit length")
	}
	x, y, z, w := q.X, q.Y, q.Z, q.W
	m00 := 1 - 2*(y*y+z*z)
	m01 := 2 * (x*y - w*z)
	m02 := 2 * (x*z + w*y)
	m10 := 2 * (x*y + w*z)
	m11 := 1 - 2*(x*x+z*z)
	m12 := 2 * (y*z - w*x)
	m20 := 2 * (x*z - w*y)
	m21 := 2 * (y*z + w*x)
	m22 := 1 - 2*(x*x+y*y)

	var ax, ay, az float64
	switch order {
	case EulerXYZ:
		ay = math.Asin(Clamp(m02, -1, 1))
		ax = math.Atan2(-m12, m22)
		az = math.Atan2(-m01, m00)
	case EulerYXZ:
		ax = math.Asin(-Clamp(m12, -1, 1))
		ay = math.Atan2(m02, m22)
		az = math.Atan2(m10, m11)
	case EulerZXY:
		ax = math.Asin(Clamp(m21, -1, 1))
		ay = math.Atan2(-m20, m22)
		az = math.Atan2(-m01, m11)
	case EulerZYX:
		ay = math.Asin(-Clamp(m20, -1, 1))
		ax = math.Atan2(m21, m22)
		az = math.Atan2(m10, m00)
	case EulerYZX:
		az = math.Asin(Clamp(m10, -1, 1))
		ax = math.Atan2(-m12, m11)
		ay = math.Atan2(-m20, m00)
	case EulerXZY:
		az = math.Asin(-Clamp(m01, -1, 1))
		ax = math.Atan2(m21, m11)
		ay = math.Atan2(m02, m00)
	default:
		panic(fmt.Sprintf("linmath: unknown EulerOrder %d", int(order)))
	}

	seq := order.axes()
	all := [3]float64{ax, ay, az}
	return Vec3{all[seq[0]], all[seq[1]], all[seq[2]]}
}

// Mat3 converts a unit quaternion to the equivalent rotation matrix.
func (q Quat) Mat3() Mat3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return Mat3{
		Vec3{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy)},
		Vec3{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx)},
		Vec3{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy)},
	}
}

// RotateVec3 rotates v by the unit quaternion q (the q·v·q* sandwich).
func (q Quat) RotateVec3(v Vec3) Vec3 {
	p := q.Mul(Quat{v.X, v.Y, v.Z, 0}).Mul(q.Conj())
	return Vec3{p.X, p.Y, p.Z}
}

func (a Quat) Add(b Quat) Quat {
	return Quat{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a Quat) Sub(b Quat) Quat {
	return Quat{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

func (q Quat) Scale(s float64) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Mul returns the Hamilton product q × r. When both operands are
// rotations, the combined rotation applies r first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		q.W*r.Y + q.Y*r.W + q.Z*r.X - q.X*r.Z,
		q.W*r.Z + q.Z*r.W + q.X*r.Y - q.Y*r.X,
		q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conj negates the vector part. For a unit quaternion this is the inverse
// rotation.
func (q Quat) Conj() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

func (a Quat) Dot(b Quat) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func (q Quat) Len() float64 {
	return math.Sqrt(q.Len2())
}

// Len2 returns the squared length.
func (q Quat) Len2() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Normalize scales q to unit length. The result is garbage for a
// zero quaternion; use NormalizeSafe when the input is not trusted.
func (q Quat) Normalize() Quat {
	return q.Scale(1 / q.Len())
}

// NormalizeSafe returns the normalized quaternion, or fallback when the
// length is not finite and positive. Never panics.
func (q Quat) NormalizeSafe(fallback Quat) Quat {
	l := q.Len()
	if l <= 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return fallback
	}
	return q.Scale(1 / l)
}

// IsNormalized reports whether the squared length is within epsNormalized of 1.
func (q Quat) IsNormalized() bool {
	return math.Abs(q.Len2()-1) <= epsNormalized
}

// QuatAngle returns the angle in radians between two unit rotations:
// 2·acos(|dot|). Panics when either operand is not unit length.
func QuatAngle(a, b Quat) float64 {
	if !a.IsNormalized() || !b.IsNormalized() {
		panic("linmath: QuatAngle: operands must be unit length")
	}
	return 2 * math.Acos(math.Min(math.Abs(a.Dot(b)), 1))
}

// Lerp interpolates the raw components linearly. The result is NOT unit
// length in general and this is deliberately not a slerp; normalize
// afterwards when a rotation is needed.
func (q Quat) Lerp(b Quat, t float64) Quat {
	return q.Add(b.Sub(q).Scale(t))
}

// Eq reports componentwise equality within tol.
func (a Quat) Eq(b Quat, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol &&
		math.Abs(a.W-b.W) <= tol
}

func (q Quat) String() string {
	return fmt.Sprintf("Quat(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
