// Package render is a small software rasterizer used by the demo commands.
// It exists to exercise the linmath types end to end: quaternion
// orientations, Mat3 view matrices and Vec2/Vec3 screen math.
package render

import (
	"image"
	"math"

	"linmath"
)

// Options controls a single frame render.
type Options struct {
	Size        int          // output edge length in pixels
	Supersample int          // render at Size*Supersample, then downsample
	Texture     *image.NRGBA // nil renders untextured gray
	Light       Light
}

// Frame renders the mesh under the given orientation and view into a
// square NRGBA image of Options.Size.
func Frame(mesh Mesh, orientation linmath.Quat, view linmath.Mat3, opt Options) *image.NRGBA {
	ss := opt.Supersample
	if ss < 1 {
		ss = 1
	}
	renderSize := opt.Size * ss

	world := mesh.Transform(orientation, view)

	// Fit the bounding box of the transformed vertices into the frame.
	lo := linmath.SplatVec3(math.Inf(1))
	hi := linmath.SplatVec3(math.Inf(-1))
	for _, tri := range world {
		for _, p := range tri.P {
			lo = linmath.Vec3{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
			hi = linmath.Vec3{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
		}
	}
	center := lo.Add(hi).Scale(0.5)
	extent := math.Max(hi.X-lo.X, hi.Y-lo.Y)
	if extent <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, opt.Size, opt.Size))
	}
	// 10% margin, y flipped for image coordinates.
	scale := float64(renderSize) * 0.9 / extent
	half := float64(renderSize) * 0.5

	fb := NewFrameBuffer(renderSize, renderSize)
	for _, tri := range world {
		var screen Triangle
		screen.UV = tri.UV
		for k, p := range tri.P {
			d := p.Sub(center)
			screen.P[k] = linmath.Vec3{
				X: half + d.X*scale,
				Y: half - d.Y*scale,
				Z: d.Z,
			}
		}
		fillTriangle(fb, screen, opt.Texture, opt.Light)
	}

	img := fb.Image()
	if ss > 1 {
		img = Downsample(img, opt.Size, opt.Size)
	}
	return img
}
