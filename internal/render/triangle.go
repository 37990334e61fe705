package render

import (
	"image"
	"math"

	"linmath"
)

// fillTriangle rasterizes one screen-space triangle with a z-buffer test,
// flat shading, and optional texture sampling.
//
// This is the hot path: no allocation in the inner loop.
func fillTriangle(fb *FrameBuffer, tri Triangle, tex *image.NRGBA, light Light) {
	p0, p1, p2 := tri.P[0], tri.P[1], tri.P[2]

	// Face normal for flat shading.
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Len2() < 1e-16 {
		return
	}
	shade := light.Shade(n.Normalize())
	if shade > 1 {
		shade = 1
	}

	// Bounding box clipped to the buffer.
	minX := int(math.Floor(math.Min(math.Min(p0.X, p1.X), p2.X)))
	maxX := int(math.Ceil(math.Max(math.Max(p0.X, p1.X), p2.X)))
	minY := int(math.Floor(math.Min(math.Min(p0.Y, p1.Y), p2.Y)))
	maxY := int(math.Ceil(math.Max(math.Max(p0.Y, p1.Y), p2.Y)))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup over the xy projection.
	a := linmath.Vec2{X: p0.X, Y: p0.Y}
	b := linmath.Vec2{X: p1.X, Y: p1.Y}
	c := linmath.Vec2{X: p2.X, Y: p2.Y}
	det := b.Sub(a).Cross(c.Sub(a))
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1 / det

	texW, texH := 0, 0
	if tex != nil {
		texW = tex.Bounds().Dx()
		texH = tex.Bounds().Dy()
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := linmath.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			w1 := p.Sub(a).Cross(c.Sub(a)) * invDet
			w2 := b.Sub(a).Cross(p.Sub(a)) * invDet
			w0 := 1 - w1 - w2
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*p0.Z + w1*p1.Z + w2*p2.Z
			zi := y*fb.Width + x
			if z <= fb.ZBuf[zi] {
				continue
			}
			fb.ZBuf[zi] = z

			r, g, bl := 200.0, 200.0, 205.0
			if tex != nil {
				u := w0*tri.UV[0].X + w1*tri.UV[1].X + w2*tri.UV[2].X
				v := w0*tri.UV[0].Y + w1*tri.UV[1].Y + w2*tri.UV[2].Y
				tx := int(linmath.Clamp(u, 0, 0.999999) * float64(texW))
				ty := int(linmath.Clamp(v, 0, 0.999999) * float64(texH))
				ti := tex.PixOffset(tx, ty)
				r = float64(tex.Pix[ti])
				g = float64(tex.Pix[ti+1])
				bl = float64(tex.Pix[ti+2])
			}

			ci := zi * 4
			fb.Color[ci] = clamp8(r * shade)
			fb.Color[ci+1] = clamp8(g * shade)
			fb.Color[ci+2] = clamp8(bl * shade)
			fb.Color[ci+3] = 255
		}
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
