package linmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDegRadConversions(t *testing.T) {
	require.InDelta(t, math.Pi, Deg2Rad(180), 1e-15)
	require.InDelta(t, 45.0, Rad2Deg(math.Pi/4), 1e-12)
	require.InDelta(t, 90.0, Rad2Deg(Deg2Rad(90)), 1e-12)
}

func TestAngleDist(t *testing.T) {
	require.Equal(t, 0.0, AngleDist(90, 90))
	require.Equal(t, 20.0, AngleDist(350, 10))
	require.Equal(t, 180.0, AngleDist(0, 180))
	require.Equal(t, 90.0, AngleDist(-45, 45))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 1.0, Clamp(5, -1, 1))
	require.Equal(t, -1.0, Clamp(-5, -1, 1))
	require.Equal(t, 0.5, Clamp(0.5, -1, 1))
}

func TestScalarLerp(t *testing.T) {
	require.Equal(t, 5.0, Lerp(0, 10, 0.5))
	require.Equal(t, 0.0, Lerp(0, 10, 0))
	require.Equal(t, 10.0, Lerp(0, 10, 1))
}
