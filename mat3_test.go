package linmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMat3Determinant(t *testing.T) {
	require.Equal(t, 1.0, Mat3Identity().Det())
	require.Equal(t, 0.0, Mat3{}.Det())
	require.Equal(t, -6.0, Mat3Diag(1, 2, -3).Det())

	// Rotations preserve volume.
	require.InDelta(t, 1.0, Mat3RotationY(0.9).Det(), 1e-15)
}

func TestMat3InverseRoundTrip(t *testing.T) {
	m := NewMat3(
		2, 0, 1,
		-1, 3, 0,
		0, 1, 4,
	)
	inv := m.Inverse()
	require.True(t, m.Mul(inv).Eq(Mat3Identity(), 1e-12))
	require.True(t, inv.Inverse().Eq(m, 1e-12))
}

func TestMat3InverseSingularPanics(t *testing.T) {
	// Third column is the sum of the first two.
	m := Mat3FromCols(Vec3{1, 0, 2}, Vec3{0, 1, 1}, Vec3{1, 1, 3})
	require.Equal(t, 0.0, m.Det())
	require.Panics(t, func() { m.Inverse() })
}

func TestMat3TransposeInvolution(t *testing.T) {
	m := NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, m, m.Transpose().Transpose())
	require.Equal(t, m.Row(0), m.Transpose().Col(0))
}

func TestMat3RowColAccess(t *testing.T) {
	m := NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, Vec3{1, 2, 3}, m.Col(0))
	require.Equal(t, Vec3{1, 4, 7}, m.Row(0))

	require.Panics(t, func() { m.Row(3) })
	require.Panics(t, func() { m.Col(3) })
}

func TestMat3AxisRotations(t *testing.T) {
	// 90° about z maps x onto y.
	v := Mat3RotationZ(math.Pi / 2).MulVec3(Vec3Right())
	require.True(t, v.Eq(Vec3Up(), 1e-15))

	// 90° about x maps y onto z.
	v = Mat3RotationX(math.Pi / 2).MulVec3(Vec3Up())
	require.True(t, v.Eq(Vec3Back(), 1e-15))

	// 90° about y maps z onto x.
	v = Mat3RotationY(math.Pi / 2).MulVec3(Vec3Back())
	require.True(t, v.Eq(Vec3Right(), 1e-15))
}

func TestMat3FromAxisAngleMatchesSpecialized(t *testing.T) {
	rad := 0.77
	require.True(t, Mat3FromAxisAngle(Vec3Right(), rad).Eq(Mat3RotationX(rad), 1e-15))
	require.True(t, Mat3FromAxisAngle(Vec3Up(), rad).Eq(Mat3RotationY(rad), 1e-15))
	require.True(t, Mat3FromAxisAngle(Vec3Back(), rad).Eq(Mat3RotationZ(rad), 1e-15))

	axis := Vec3{1, 1, 1}.Normalize()
	R := Mat3FromAxisAngle(axis, 1.1)
	require.True(t, R.Transpose().Mul(R).Eq(Mat3Identity(), 1e-12))

	require.Panics(t, func() { Mat3FromAxisAngle(Vec3{1, 1, 1}, 1.1) })
}

func TestMat3AffinePointVsVector(t *testing.T) {
	m := Mat3FromScaleAngleTranslation(Vec2{2, 2}, math.Pi/2, Vec2{10, 20})

	p := m.TransformPoint2(Vec2{1, 0})
	v := m.TransformVec2(Vec2{1, 0})

	// The linear part rotates and scales; only points pick up translation.
	require.True(t, v.Eq(Vec2{0, 2}, 1e-15))
	require.True(t, p.Eq(Vec2{10, 22}, 1e-15))
}

func TestMat3AffineBuilders(t *testing.T) {
	tr := Mat3FromTranslation(Vec2{3, -4})
	require.True(t, tr.TransformPoint2(Vec2{1, 1}).Eq(Vec2{4, -3}, 1e-15))
	require.True(t, tr.TransformVec2(Vec2{1, 1}).Eq(Vec2{1, 1}, 1e-15))

	sc := Mat3FromScale2(Vec2{2, 3})
	require.True(t, sc.TransformPoint2(Vec2{1, 1}).Eq(Vec2{2, 3}, 1e-15))

	rot := Mat3FromAngle2(math.Pi / 2)
	require.True(t, rot.TransformVec2(Vec2{1, 0}).Eq(Vec2{0, 1}, 1e-15))
}

func TestMat3FromMat2Embedding(t *testing.T) {
	m2 := Mat2FromAngle(0.4)
	m3 := Mat3FromMat2(m2)
	require.Equal(t, Vec3{0, 0, 1}, m3.C2)
	require.True(t, m3.Mat2().Eq(m2, 0))
	require.True(t, m3.TransformVec2(Vec2{1, 2}).Eq(m2.MulVec2(Vec2{1, 2}), 0))
}

func TestMat3MulVecMatchesComposition(t *testing.T) {
	a := Mat3RotationX(0.3)
	b := Mat3RotationY(0.4)
	v := Vec3{1, 2, 3}
	require.True(t, a.Mul(b).MulVec3(v).Eq(a.MulVec3(b.MulVec3(v)), 1e-12))
}

func TestMat3ArrayRoundTrip(t *testing.T) {
	m := NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, [9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Array())
	require.Equal(t, m, Mat3FromArray(m.Array()))
}

func TestMat3Trace(t *testing.T) {
	require.Equal(t, 3.0, Mat3Identity().Trace())
	require.Equal(t, 6.0, Mat3Diag(1, 2, 3).Trace())
}
