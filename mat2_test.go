package linmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMat2KnownScenario(t *testing.T) {
	// Column-major: columns (1,2) and (3,4).
	m := NewMat2(1, 2, 3, 4)
	require.Equal(t, -2.0, m.Det())
	require.True(t, m.Inverse().Eq(NewMat2(-2, 1, 1.5, -0.5), 1e-15))
}

func TestMat2InverseSingularPanics(t *testing.T) {
	// Linearly dependent columns.
	m := NewMat2(1, 3, 2, 6)
	require.Equal(t, 0.0, m.Det())
	require.Panics(t, func() { m.Inverse() })
}

func TestMat2InverseRoundTrip(t *testing.T) {
	m := NewMat2(2, 1, -1, 3)
	require.True(t, m.Inverse().Inverse().Eq(m, 1e-12))
	require.True(t, m.Mul(m.Inverse()).Eq(Mat2Identity(), 1e-12))
}

func TestMat2Identity(t *testing.T) {
	require.Equal(t, 1.0, Mat2Identity().Det())
	require.Equal(t, 0.0, Mat2{}.Det())
	v := Vec2{3, -4}
	require.Equal(t, v, Mat2Identity().MulVec2(v))
}

func TestMat2RowColAccess(t *testing.T) {
	m := NewMat2(1, 2, 3, 4)
	require.Equal(t, Vec2{1, 2}, m.Col(0))
	require.Equal(t, Vec2{3, 4}, m.Col(1))
	require.Equal(t, Vec2{1, 3}, m.Row(0))
	require.Equal(t, Vec2{2, 4}, m.Row(1))

	require.Panics(t, func() { m.Col(3) })
	require.Panics(t, func() { m.Row(2) })
	require.Panics(t, func() { m.Col(-1) })
}

func TestMat2Transpose(t *testing.T) {
	m := NewMat2(1, 2, 3, 4)
	require.Equal(t, NewMat2(1, 3, 2, 4), m.Transpose())
	require.Equal(t, m, m.Transpose().Transpose())
}

func TestMat2FromAngleMatchesVecRotate(t *testing.T) {
	rad := 0.7
	v := Vec2{2, -1}
	require.True(t, Mat2FromAngle(rad).MulVec2(v).Eq(v.Rotate(rad), 1e-15))
}

func TestMat2FromScaleAngle(t *testing.T) {
	m := Mat2FromScaleAngle(Vec2{2, 3}, math.Pi/2)
	// Scaled basis vectors rotated 90°.
	require.True(t, m.C0.Eq(Vec2{0, 2}, 1e-15))
	require.True(t, m.C1.Eq(Vec2{-3, 0}, 1e-15))
}

func TestMat2MulCompose(t *testing.T) {
	a := Mat2FromAngle(0.3)
	b := Mat2FromAngle(0.5)
	require.True(t, a.Mul(b).Eq(Mat2FromAngle(0.8), 1e-12))
}

func TestMat2ArrayRoundTrip(t *testing.T) {
	m := NewMat2(1, 2, 3, 4)
	require.Equal(t, [4]float64{1, 2, 3, 4}, m.Array())
	require.Equal(t, m, Mat2FromArray(m.Array()))
}
