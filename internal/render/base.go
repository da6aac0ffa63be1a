package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/ha1tch/deluxetex/internal/scene"
)

// Multiply blends a solid fill of tint over img with the multiply
// operator and returns the result in a new buffer of the same size.
// The fill's alpha weights the blend the way a canvas multiply fill does.
func Multiply(img image.Image, tint scene.Factor) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	c := tint.RGBA8()
	sa := float64(c.A) / 255
	sr, sg, sb := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255

	for i := 0; i < len(out.Pix); i += 4 {
		p := out.Pix[i : i+4 : i+4]
		da := float64(p[3]) / 255
		dr, dg, db := float64(p[0])/255, float64(p[1])/255, float64(p[2])/255
		// premultiplied: co = cs*(1-ab) + cb*(1-as) + as*cb*Cs
		p[0] = unit8(sa*sr*(1-da) + dr*(1-sa) + sa*dr*sr)
		p[1] = unit8(sa*sg*(1-da) + dg*(1-sa) + sa*dg*sg)
		p[2] = unit8(sa*sb*(1-da) + db*(1-sa) + sa*db*sb)
		p[3] = unit8(sa + da - sa*da)
	}
	return out
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Fit draws src into dst scaled to dst's size, optionally flipped
// vertically. Same-size copies use nearest-neighbor sampling so they are
// exact.
func Fit(dst *image.RGBA, src image.Image, flipY bool) {
	sb := src.Bounds()
	db := dst.Bounds()
	sx := float64(db.Dx()) / float64(sb.Dx())
	sy := float64(db.Dy()) / float64(sb.Dy())

	s2d := f64.Aff3{
		sx, 0, float64(db.Min.X) - sx*float64(sb.Min.X),
		0, sy, float64(db.Min.Y) - sy*float64(sb.Min.Y),
	}
	if flipY {
		s2d[4] = -sy
		s2d[5] = float64(db.Max.Y) + sy*float64(sb.Min.Y)
	}

	var t xdraw.Transformer = xdraw.ApproxBiLinear
	if sb.Dx() == db.Dx() && sb.Dy() == db.Dy() {
		t = xdraw.NearestNeighbor
	}
	t.Transform(dst, s2d, src, sb, xdraw.Over, nil)
}

// ComposeBase builds the base layer at w x h: the base image, multiplied
// by tint when one is given, scaled to fit and optionally flipped.
func ComposeBase(base image.Image, tint *scene.Factor, w, h int, flipY bool) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if base == nil {
		return out
	}
	var src image.Image = base
	if tint != nil {
		src = Multiply(base, *tint)
	}
	Fit(out, src, flipY)
	return out
}
