package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales img down to w x h with CatmullRom filtering in
// premultiplied-alpha space. Filtering straight NRGBA would blend the
// colors of fully transparent pixels into visible ones, leaving dark
// halos around the silhouette.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	premul := image.NewRGBA(b)
	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		premul.Pix[i] = uint8((uint32(img.Pix[i])*a + 127) / 255)
		premul.Pix[i+1] = uint8((uint32(img.Pix[i+1])*a + 127) / 255)
		premul.Pix[i+2] = uint8((uint32(img.Pix[i+2])*a + 127) / 255)
		premul.Pix[i+3] = img.Pix[i+3]
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	out := image.NewNRGBA(dst.Bounds())
	for i := 0; i < len(dst.Pix); i += 4 {
		a := float64(dst.Pix[i+3])
		if a > 1 {
			inv := 255.0 / a
			out.Pix[i] = clamp8(float64(dst.Pix[i]) * inv)
			out.Pix[i+1] = clamp8(float64(dst.Pix[i+1]) * inv)
			out.Pix[i+2] = clamp8(float64(dst.Pix[i+2]) * inv)
		}
		out.Pix[i+3] = dst.Pix[i+3]
	}
	return out
}
