// Package export bakes a scene into a PNG texture and hands it to the
// model viewer.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/gogpu/gg"

	"github.com/ha1tch/deluxetex/internal/render"
	"github.com/ha1tch/deluxetex/internal/scene"
)

// ErrNoMaterial is returned when the viewer has no material to receive
// the baked texture.
var ErrNoMaterial = errors.New("export: model not loaded or doesn't support texture editing")

// Exporter renders scenes to an offscreen surface at canvas resolution.
type Exporter struct {
	width  int
	height int
	fonts  *render.Fonts
}

// New returns an exporter for a w x h canvas.
func New(w, h int, fonts *render.Fonts) *Exporter {
	if fonts == nil {
		fonts = render.NewFonts()
	}
	return &Exporter{width: w, height: h, fonts: fonts}
}

// Export composites s. The base texture is tinted with tint, the last
// tint applied through a swatch, and is not flipped. Overlays are drawn
// in the vertically flipped space so they line up with texture
// coordinates. The base stays unflipped: it is already in texture
// orientation, and flipping it here would invert it on the model.
func (x *Exporter) Export(s *scene.Scene, tint *scene.Factor) (*image.RGBA, error) {
	var out *image.RGBA
	if s.Base.Loaded() {
		out = render.ComposeBase(s.Base.Img, tint, x.width, x.height, false)
	} else {
		out = image.NewRGBA(image.Rect(0, 0, x.width, x.height))
	}

	dc := gg.NewContext(x.width, x.height)
	err := render.DrawOverlays(dc, x.fonts, s, render.OverlayOptions{Segmented: true})
	if err != nil {
		return nil, fmt.Errorf("export: draw overlays: %w", err)
	}

	overlay := image.NewRGBA(out.Bounds())
	render.Fit(overlay, dc.Image(), true)
	draw.Draw(out, out.Bounds(), overlay, image.Point{}, draw.Over)
	return out, nil
}

// Encode exports s and encodes the result as PNG.
func (x *Exporter) Encode(s *scene.Scene, tint *scene.Factor) ([]byte, error) {
	img, err := x.Export(s, tint)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("export: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Apply bakes s and assigns the new texture to the base-color slot of the
// viewer's first material, creating the slot when it is absent.
func (x *Exporter) Apply(ctx context.Context, v Viewer, s *scene.Scene, tint *scene.Factor) (Texture, error) {
	data, err := x.Encode(s, tint)
	if err != nil {
		return nil, err
	}

	mats := v.Materials()
	if len(mats) == 0 {
		return nil, ErrNoMaterial
	}
	material := mats[0]

	tex, err := v.CreateTexture(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("export: create texture: %w", err)
	}

	pbr := material.PBR()
	if slot := pbr.BaseColorTexture(); slot != nil {
		slot.SetTexture(tex)
	} else {
		pbr.SetBaseColorTexture(tex)
	}
	return tex, nil
}
