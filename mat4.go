package linmath

import "fmt"

// Mat4 is a 4×4 matrix stored as four column vectors. Only storage,
// construction and comparison live here; arithmetic is left to consuming
// code that knows which projective conventions it wants.
type Mat4 struct {
	C0, C1, C2, C3 Vec4
}

// NewMat4 builds a matrix from scalars in column-major order:
// c0x, c0y, c0z, c0w, c1x, ...
func NewMat4(
	c0x, c0y, c0z, c0w,
	c1x, c1y, c1z, c1w,
	c2x, c2y, c2z, c2w,
	c3x, c3y, c3z, c3w float64,
) Mat4 {
	return Mat4{
		Vec4{c0x, c0y, c0z, c0w},
		Vec4{c1x, c1y, c1z, c1w},
		Vec4{c2x, c2y, c2z, c2w},
		Vec4{c3x, c3y, c3z, c3w},
	}
}

// Mat4FromCols builds a matrix from four column vectors.
func Mat4FromCols(c0, c1, c2, c3 Vec4) Mat4 {
	return Mat4{c0, c1, c2, c3}
}

func Mat4Identity() Mat4 {
	return Mat4{
		Vec4{1, 0, 0, 0},
		Vec4{0, 1, 0, 0},
		Vec4{0, 0, 1, 0},
		Vec4{0, 0, 0, 1},
	}
}

// Mat4FromMat3Translation builds an affine 4×4 matrix from a 3×3 linear
// part and a translation.
func Mat4FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r.C0.Vec4(0),
		r.C1.Vec4(0),
		r.C2.Vec4(0),
		t.Vec4(1),
	}
}

// Mat4FromArray builds a matrix from 16 column-major elements.
func Mat4FromArray(a [16]float64) Mat4 {
	return Mat4{
		Vec4{a[0], a[1], a[2], a[3]},
		Vec4{a[4], a[5], a[6], a[7]},
		Vec4{a[8], a[9], a[10], a[11]},
		Vec4{a[12], a[13], a[14], a[15]},
	}
}

// Array returns the elements in column-major order.
func (m Mat4) Array() [16]float64 {
	return [16]float64{
		m.C0.X, m.C0.Y, m.C0.Z, m.C0.W,
		m.C1.X, m.C1.Y, m.C1.Z, m.C1.W,
		m.C2.X, m.C2.Y, m.C2.Z, m.C2.W,
		m.C3.X, m.C3.Y, m.C3.Z, m.C3.W,
	}
}

// Row returns row i. Panics for i outside {0, 1, 2, 3}.
func (m Mat4) Row(i int) Vec4 {
	switch i {
	case 0:
		return Vec4{m.C0.X, m.C1.X, m.C2.X, m.C3.X}
	case 1:
		return Vec4{m.C0.Y, m.C1.Y, m.C2.Y, m.C3.Y}
	case 2:
		return Vec4{m.C0.Z, m.C1.Z, m.C2.Z, m.C3.Z}
	case 3:
		return Vec4{m.C0.W, m.C1.W, m.C2.W, m.C3.W}
	}
	panic(fmt.Sprintf("linmath: Mat4.Row: index %d out of range", i))
}

// Col returns column i. Panics for i outside {0, 1, 2, 3}.
func (m Mat4) Col(i int) Vec4 {
	switch i {
	case 0:
		return m.C0
	case 1:
		return m.C1
	case 2:
		return m.C2
	case 3:
		return m.C3
	}
	panic(fmt.Sprintf("linmath: Mat4.Col: index %d out of range", i))
}

// Eq reports elementwise equality within tol.
func (m Mat4) Eq(n Mat4, tol float64) bool {
	return m.C0.Eq(n.C0, tol) && m.C1.Eq(n.C1, tol) &&
		m.C2.Eq(n.C2, tol) && m.C3.Eq(n.C3, tol)
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	return m.Eq(Mat4Identity(), 1e-8)
}

func (m Mat4) String() string {
	return fmt.Sprintf("Mat4(%v, %v, %v, %v)", m.C0, m.C1, m.C2, m.C3)
}
