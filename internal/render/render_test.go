package render

import (
	"image"
	"testing"

	"linmath"

	"github.com/stretchr/testify/require"
)

func TestFrameProducesOpaqueCenter(t *testing.T) {
	img := Frame(Cube(), linmath.QuatIdentity(), linmath.Mat3Identity(), Options{
		Size:  64,
		Light: DefaultLight(),
	})

	b := img.Bounds()
	require.Equal(t, 64, b.Dx())
	require.Equal(t, 64, b.Dy())

	// The cube covers the frame center.
	_, _, _, a := img.At(32, 32).RGBA()
	require.NotZero(t, a)

	// Corners stay empty (the cube is fit with a margin).
	_, _, _, a = img.At(0, 0).RGBA()
	require.Zero(t, a)
}

func TestFrameSupersampleKeepsSize(t *testing.T) {
	img := Frame(Cube(), linmath.QuatRotationY(0.5), linmath.Mat3RotationX(-0.3), Options{
		Size:        32,
		Supersample: 2,
		Texture:     Checkerboard(64, 4),
		Light:       DefaultLight(),
	})
	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, 32, img.Bounds().Dy())
}

func TestDownsampleNonSquare(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 80, 40))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 200
		src.Pix[i+3] = 255
	}

	out := Downsample(src, 20, 10)
	require.Equal(t, 20, out.Bounds().Dx())
	require.Equal(t, 10, out.Bounds().Dy())

	// A uniform opaque field survives the premultiply round trip.
	r, _, _, a := out.At(10, 5).RGBA()
	require.Equal(t, uint32(255), a>>8)
	require.InDelta(t, 200, float64(r>>8), 1)
}

func TestDownsampleNoOpWithinTarget(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	require.Same(t, src, Downsample(src, 16, 16))
}

func TestCubeMesh(t *testing.T) {
	mesh := Cube()
	require.Len(t, mesh, 12)

	// Rotating the mesh keeps every vertex on the unit cube's sphere.
	r := mesh.Transform(linmath.QuatRotationZ(1.0), linmath.Mat3Identity())
	for _, tri := range r {
		for _, p := range tri.P {
			require.InDelta(t, 3.0, p.Len2(), 1e-12)
		}
	}
}

func TestCheckerboard(t *testing.T) {
	tex := Checkerboard(16, 4)
	require.Equal(t, 16, tex.Bounds().Dx())
	// Adjacent cells alternate.
	require.NotEqual(t, tex.Pix[tex.PixOffset(0, 0)], tex.Pix[tex.PixOffset(4, 0)])
}
