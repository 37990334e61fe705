package linmath

import (
	"fmt"
	"math"
)

// Mat3 is a 3×3 matrix stored as three column vectors. Besides general 3D
// linear maps it doubles as a 2D affine transform: the upper-left 2×2 block
// is the linear part and the third column holds the translation as
// (tx, ty, 1). Nothing enforces that shape; the affine helpers assume the
// caller keeps it.
type Mat3 struct {
	C0, C1, C2 Vec3
}

// NewMat3 builds a matrix from scalars in column-major order:
// c0x, c0y, c0z, c1x, ...
func NewMat3(c0x, c0y, c0z, c1x, c1y, c1z, c2x, c2y, c2z float64) Mat3 {
	return Mat3{Vec3{c0x, c0y, c0z}, Vec3{c1x, c1y, c1z}, Vec3{c2x, c2y, c2z}}
}

// Mat3FromCols builds a matrix from three column vectors.
func Mat3FromCols(c0, c1, c2 Vec3) Mat3 {
	return Mat3{c0, c1, c2}
}

func Mat3Identity() Mat3 {
	return Mat3Diag(1, 1, 1)
}

func Mat3Diag(x, y, z float64) Mat3 {
	return Mat3{Vec3{x, 0, 0}, Vec3{0, y, 0}, Vec3{0, 0, z}}
}

// Mat3FromArray builds a matrix from 9 column-major elements.
func Mat3FromArray(a [9]float64) Mat3 {
	return NewMat3(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}

// Array returns the elements in column-major order.
func (m Mat3) Array() [9]float64 {
	return [9]float64{
		m.C0.X, m.C0.Y, m.C0.Z,
		m.C1.X, m.C1.Y, m.C1.Z,
		m.C2.X, m.C2.Y, m.C2.Z,
	}
}

// Mat3RotationX returns the rotation about the x axis by rad radians.
func Mat3RotationX(rad float64) Mat3 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat3{Vec3{1, 0, 0}, Vec3{0, c, s}, Vec3{0, -s, c}}
}

// Mat3RotationY returns the rotation about the y axis by rad radians.
func Mat3RotationY(rad float64) Mat3 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat3{Vec3{c, 0, -s}, Vec3{0, 1, 0}, Vec3{s, 0, c}}
}

// Mat3RotationZ returns the rotation about the z axis by rad radians.
func Mat3RotationZ(rad float64) Mat3 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat3{Vec3{c, s, 0}, Vec3{-s, c, 0}, Vec3{0, 0, 1}}
}

// Mat3FromAxisAngle returns the rotation about an arbitrary axis by rad
// radians (Rodrigues' formula expanded into columns). Panics when axis is
// not unit length.
func Mat3FromAxisAngle(axis Vec3, rad float64) Mat3 {
	if !axis.IsNormalized() {
		panic("linmath: Mat3FromAxisAngle: axis must be unit length")
	}
	c, s := math.Cos(rad), math.Sin(rad)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	return Mat3{
		Vec3{t*x*x + c, t*x*y + s*z, t*x*z - s*y},
		Vec3{t*x*y - s*z, t*y*y + c, t*y*z + s*x},
		Vec3{t*x*z + s*y, t*y*z - s*x, t*z*z + c},
	}
}

// Det returns the determinant as the triple product of the columns.
func (m Mat3) Det() float64 {
	return m.C2.Dot(m.C0.Cross(m.C1))
}

// Inverse returns the inverse matrix: the adjugate built from pairwise
// cross products of the columns, scaled by 1/det. Panics when the
// determinant is exactly zero.
func (m Mat3) Inverse() Mat3 {
	d := m.Det()
	if d == 0 {
		panic("linmath: Mat3.Inverse: singular matrix")
	}
	invD := 1 / d
	r0 := m.C1.Cross(m.C2).Scale(invD)
	r1 := m.C2.Cross(m.C0).Scale(invD)
	r2 := m.C0.Cross(m.C1).Scale(invD)
	// r0..r2 are the rows of the inverse.
	return Mat3{
		Vec3{r0.X, r1.X, r2.X},
		Vec3{r0.Y, r1.Y, r2.Y},
		Vec3{r0.Z, r1.Z, r2.Z},
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		Vec3{m.C0.X, m.C1.X, m.C2.X},
		Vec3{m.C0.Y, m.C1.Y, m.C2.Y},
		Vec3{m.C0.Z, m.C1.Z, m.C2.Z},
	}
}

// Row returns row i. Panics for i outside {0, 1, 2}.
func (m Mat3) Row(i int) Vec3 {
	switch i {
	case 0:
		return Vec3{m.C0.X, m.C1.X, m.C2.X}
	case 1:
		return Vec3{m.C0.Y, m.C1.Y, m.C2.Y}
	case 2:
		return Vec3{m.C0.Z, m.C1.Z, m.C2.Z}
	}
	panic(fmt.Sprintf("linmath: Mat3.Row: index %d out of range", i))
}

// Col returns column i. Panics for i outside {0, 1, 2}.
func (m Mat3) Col(i int) Vec3 {
	switch i {
	case 0:
		return m.C0
	case 1:
		return m.C1
	case 2:
		return m.C2
	}
	panic(fmt.Sprintf("linmath: Mat3.Col: index %d out of range", i))
}

func (m Mat3) Trace() float64 {
	return m.C0.X + m.C1.Y + m.C2.Z
}

// Mul returns m × rhs.
func (m Mat3) Mul(rhs Mat3) Mat3 {
	return Mat3{m.MulVec3(rhs.C0), m.MulVec3(rhs.C1), m.MulVec3(rhs.C2)}
}

// MulVec3 returns m × v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m.C0.X*v.X + m.C1.X*v.Y + m.C2.X*v.Z,
		m.C0.Y*v.X + m.C1.Y*v.Y + m.C2.Y*v.Z,
		m.C0.Z*v.X + m.C1.Z*v.Y + m.C2.Z*v.Z,
	}
}

// Mat3FromTranslation returns the 2D affine translation by t.
func Mat3FromTranslation(t Vec2) Mat3 {
	return Mat3{Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{t.X, t.Y, 1}}
}

// Mat3FromScale2 returns the 2D affine non-uniform scale.
func Mat3FromScale2(s Vec2) Mat3 {
	return Mat3Diag(s.X, s.Y, 1)
}

// Mat3FromAngle2 returns the 2D affine counter-clockwise rotation by rad
// radians.
func Mat3FromAngle2(rad float64) Mat3 {
	return Mat3FromMat2(Mat2FromAngle(rad))
}

// Mat3FromScaleAngleTranslation composes scale, then rotation, then
// translation into a single 2D affine matrix.
func Mat3FromScaleAngleTranslation(scale Vec2, rad float64, t Vec2) Mat3 {
	m := Mat3FromMat2(Mat2FromScaleAngle(scale, rad))
	m.C2 = Vec3{t.X, t.Y, 1}
	return m
}

// Mat3FromMat2 embeds a 2×2 linear map into a 2D affine matrix with no
// translation.
func Mat3FromMat2(m Mat2) Mat3 {
	return Mat3{
		Vec3{m.C0.X, m.C0.Y, 0},
		Vec3{m.C1.X, m.C1.Y, 0},
		Vec3{0, 0, 1},
	}
}

// Mat2 extracts the upper-left 2×2 block (the linear part of a 2D affine
// matrix).
func (m Mat3) Mat2() Mat2 {
	return Mat2{Vec2{m.C0.X, m.C0.Y}, Vec2{m.C1.X, m.C1.Y}}
}

// TransformVec2 applies only the linear part of a 2D affine matrix to a
// direction vector; translation is ignored.
func (m Mat3) TransformVec2(v Vec2) Vec2 {
	return m.Mat2().MulVec2(v)
}

// TransformPoint2 applies the full 2D affine map to a point: the linear
// part plus the translation column.
func (m Mat3) TransformPoint2(p Vec2) Vec2 {
	return m.Mat2().MulVec2(p).Add(Vec2{m.C2.X, m.C2.Y})
}

// Eq reports elementwise equality within tol.
func (m Mat3) Eq(n Mat3, tol float64) bool {
	return m.C0.Eq(n.C0, tol) && m.C1.Eq(n.C1, tol) && m.C2.Eq(n.C2, tol)
}

func (m Mat3) String() string {
	return fmt.Sprintf("Mat3(%v, %v, %v)", m.C0, m.C1, m.C2)
}
