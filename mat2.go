package linmath

import (
	"fmt"
	"math"
)

// Mat2 is a 2×2 matrix stored as two column vectors.
type Mat2 struct {
	C0, C1 Vec2
}

// NewMat2 builds a matrix from scalars in column-major order:
// c0x, c0y, c1x, c1y.
func NewMat2(c0x, c0y, c1x, c1y float64) Mat2 {
	return Mat2{Vec2{c0x, c0y}, Vec2{c1x, c1y}}
}

// Mat2FromCols builds a matrix from two column vectors.
func Mat2FromCols(c0, c1 Vec2) Mat2 {
	return Mat2{c0, c1}
}

func Mat2Identity() Mat2 {
	return Mat2{Vec2{1, 0}, Vec2{0, 1}}
}

// Mat2FromAngle returns the counter-clockwise rotation by rad radians.
func Mat2FromAngle(rad float64) Mat2 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat2{Vec2{c, s}, Vec2{-s, c}}
}

// Mat2FromScaleAngle returns a rotation by rad radians with a non-uniform
// scale applied first (columns are the scaled rotated basis vectors).
func Mat2FromScaleAngle(scale Vec2, rad float64) Mat2 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat2{Vec2{c * scale.X, s * scale.X}, Vec2{-s * scale.Y, c * scale.Y}}
}

// Mat2FromArray builds a matrix from column-major [c0x, c0y, c1x, c1y].
func Mat2FromArray(a [4]float64) Mat2 {
	return NewMat2(a[0], a[1], a[2], a[3])
}

// Array returns the elements in column-major order.
func (m Mat2) Array() [4]float64 {
	return [4]float64{m.C0.X, m.C0.Y, m.C1.X, m.C1.Y}
}

func (m Mat2) Det() float64 {
	return m.C0.X*m.C1.Y - m.C0.Y*m.C1.X
}

// Inverse returns the inverse matrix. Panics when the determinant is
// exactly zero.
func (m Mat2) Inverse() Mat2 {
	d := m.Det()
	if d == 0 {
		panic("linmath: Mat2.Inverse: singular matrix")
	}
	invD := 1 / d
	return Mat2{
		Vec2{m.C1.Y * invD, -m.C0.Y * invD},
		Vec2{-m.C1.X * invD, m.C0.X * invD},
	}
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{Vec2{m.C0.X, m.C1.X}, Vec2{m.C0.Y, m.C1.Y}}
}

// Row returns row i. Panics for i outside {0, 1}.
func (m Mat2) Row(i int) Vec2 {
	switch i {
	case 0:
		return Vec2{m.C0.X, m.C1.X}
	case 1:
		return Vec2{m.C0.Y, m.C1.Y}
	}
	panic(fmt.Sprintf("linmath: Mat2.Row: index %d out of range", i))
}

// Col returns column i. Panics for i outside {0, 1}.
func (m Mat2) Col(i int) Vec2 {
	switch i {
	case 0:
		return m.C0
	case 1:
		return m.C1
	}
	panic(fmt.Sprintf("linmath: Mat2.Col: index %d out of range", i))
}

func (m Mat2) Trace() float64 {
	return m.C0.X + m.C1.Y
}

// Mul returns m × rhs.
func (m Mat2) Mul(rhs Mat2) Mat2 {
	return Mat2{m.MulVec2(rhs.C0), m.MulVec2(rhs.C1)}
}

// MulVec2 returns m × v.
func (m Mat2) MulVec2(v Vec2) Vec2 {
	return Vec2{
		m.C0.X*v.X + m.C1.X*v.Y,
		m.C0.Y*v.X + m.C1.Y*v.Y,
	}
}

// Eq reports elementwise equality within tol.
func (m Mat2) Eq(n Mat2, tol float64) bool {
	return m.C0.Eq(n.C0, tol) && m.C1.Eq(n.C1, tol)
}

func (m Mat2) String() string {
	return fmt.Sprintf("Mat2(%v, %v)", m.C0, m.C1)
}
