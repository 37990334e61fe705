package linmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMat4Identity(t *testing.T) {
	id := Mat4Identity()
	require.True(t, id.IsIdentity())
	require.False(t, Mat4{}.IsIdentity())
	require.Equal(t, Vec4{1, 0, 0, 0}, id.C0)
	require.Equal(t, Vec4{0, 0, 0, 1}, id.C3)
}

func TestMat4CopySemantics(t *testing.T) {
	m := Mat4Identity()
	n := m
	n.C0.X = 5
	require.Equal(t, 1.0, m.C0.X)
	require.True(t, m.Eq(Mat4Identity(), 0))
}

func TestMat4RowColAccess(t *testing.T) {
	m := NewMat4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	require.Equal(t, Vec4{1, 2, 3, 4}, m.Col(0))
	require.Equal(t, Vec4{1, 5, 9, 13}, m.Row(0))
	require.Equal(t, Vec4{4, 8, 12, 16}, m.Row(3))

	require.Panics(t, func() { m.Row(4) })
	require.Panics(t, func() { m.Col(4) })
	require.Panics(t, func() { m.Col(-1) })
}

func TestMat4FromMat3Translation(t *testing.T) {
	r := Mat3RotationZ(0.5)
	tr := Vec3{1, 2, 3}
	m := Mat4FromMat3Translation(r, tr)

	require.Equal(t, r.C0.Vec4(0), m.C0)
	require.Equal(t, Vec4{1, 2, 3, 1}, m.C3)
	require.Equal(t, Vec4{0, 0, 0, 1}, m.Row(3))
}

func TestMat4ArrayRoundTrip(t *testing.T) {
	m := NewMat4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	a := m.Array()
	require.Equal(t, 1.0, a[0])
	require.Equal(t, 5.0, a[4])
	require.Equal(t, m, Mat4FromArray(a))
	require.Equal(t, m, Mat4FromCols(m.C0, m.C1, m.C2, m.C3))
}
