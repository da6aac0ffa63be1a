// Package render draws a scene onto the editor canvas with gogpu/gg.
//
// Every call to Render redraws the full canvas in a fixed order: base
// texture, placed images, text, strokes. Item counts are small so there is
// no partial redraw.
package render

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/ha1tch/deluxetex/internal/scene"
)

// Renderer owns the visible canvas.
type Renderer struct {
	width  int
	height int
	fonts  *Fonts
	images *ImageCache
	dc     *gg.Context
}

// New returns a renderer for a w x h canvas.
func New(w, h int, fonts *Fonts) *Renderer {
	if fonts == nil {
		fonts = NewFonts()
	}
	return &Renderer{
		width:  w,
		height: h,
		fonts:  fonts,
		images: NewImageCache(),
		dc:     gg.NewContext(w, h),
	}
}

// Size returns the canvas dimensions.
func (r *Renderer) Size() (w, h int) {
	return r.width, r.height
}

// Fonts returns the font registry shared with the exporter.
func (r *Renderer) Fonts() *Fonts {
	return r.fonts
}

// Render clears the canvas and redraws s. The base texture is tinted by
// tint when it is non-nil and drawn flipped, since texture space has Y
// pointing up.
func (r *Renderer) Render(s *scene.Scene, tint *scene.Factor) error {
	if s.Base.Loaded() {
		base := ComposeBase(s.Base.Img, tint, r.width, r.height, true)
		r.dc = gg.NewContextForImage(base)
	} else {
		r.dc = gg.NewContext(r.width, r.height)
	}
	return DrawOverlays(r.dc, r.fonts, s, OverlayOptions{Selection: true, Images: r.images})
}

// DrawSegment paints one segment of an in-progress stroke without a full
// redraw.
func (r *Renderer) DrawSegment(from, to scene.Point, st *scene.StrokePath) error {
	seg := scene.StrokePath{
		Color:  st.Color,
		Width:  st.Width,
		Points: []scene.Point{from, to},
	}
	return drawStroke(r.dc, &seg, false)
}

// MeasureText returns the bounding box width and height of t.
func (r *Renderer) MeasureText(t *scene.TextItem) (w, h float64) {
	return r.fonts.Measure(t)
}

// Image returns a snapshot of the canvas.
func (r *Renderer) Image() *image.RGBA {
	img := r.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	for y := out.Rect.Min.Y; y < out.Rect.Max.Y; y++ {
		for x := out.Rect.Min.X; x < out.Rect.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
