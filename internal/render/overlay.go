package render

import (
	"github.com/gogpu/gg"

	"github.com/ha1tch/deluxetex/internal/scene"
)

const (
	// HandleSize is the side of the square resize handles, centered on
	// each image corner.
	HandleSize = 10

	selectionColor = "#0000ff"
)

// OverlayOptions control how overlays are drawn.
type OverlayOptions struct {
	// Selection draws the outline and handles of the selected item.
	Selection bool
	// Segmented strokes every path as independent line segments
	// instead of one connected polyline.
	Segmented bool
	// Images caches converted image buffers. It may be nil.
	Images *ImageCache
}

// DrawOverlays draws images, then text, then strokes, in list order.
func DrawOverlays(dc *gg.Context, fonts *Fonts, s *scene.Scene, opts OverlayOptions) error {
	sel := s.Selection()
	if !opts.Selection {
		sel = scene.SelectNone()
	}

	for i := range s.Images {
		it := &s.Images[i]
		drawImage(dc, opts.Images, it)
		if j, ok := sel.Image(); ok && j == i {
			if err := drawImageSelection(dc, it); err != nil {
				return err
			}
		}
	}

	opts.Images.Retain(s.Images)

	for i := range s.Texts {
		txt := &s.Texts[i]
		face, err := fonts.Face(txt.Font)
		if err != nil {
			return err
		}
		dc.SetFont(face)
		dc.SetHexColor(txt.Color)
		dc.DrawString(txt.Text, txt.X, txt.Y)
		if j, ok := sel.Text(); ok && j == i {
			w, h := fonts.Measure(txt)
			dc.SetHexColor(selectionColor)
			dc.SetLineWidth(1)
			dc.DrawRectangle(txt.X, txt.Y-h, w, h)
			if err := dc.Stroke(); err != nil {
				return err
			}
		}
	}

	for i := range s.Strokes {
		if err := drawStroke(dc, &s.Strokes[i], opts.Segmented); err != nil {
			return err
		}
	}
	return nil
}

func drawImage(dc *gg.Context, cache *ImageCache, it *scene.PlacedImage) {
	if it.Img == nil || it.W <= 0 || it.H <= 0 {
		return
	}
	dc.DrawImageEx(cache.Buf(it.Img), gg.DrawImageOptions{
		X:             it.X,
		Y:             it.Y,
		DstWidth:      it.W,
		DstHeight:     it.H,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

func drawImageSelection(dc *gg.Context, it *scene.PlacedImage) error {
	dc.SetHexColor(selectionColor)
	dc.SetLineWidth(2)
	dc.DrawRectangle(it.X, it.Y, it.W, it.H)
	if err := dc.Stroke(); err != nil {
		return err
	}

	dc.SetLineWidth(1)
	for _, c := range scene.Corners {
		p := it.Corner(c)
		dc.DrawRectangle(p.X-HandleSize/2, p.Y-HandleSize/2, HandleSize, HandleSize)
		dc.SetRGB(1, 1, 1)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		dc.SetHexColor(selectionColor)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func drawStroke(dc *gg.Context, st *scene.StrokePath, segmented bool) error {
	if len(st.Points) < 2 {
		return nil
	}
	width := st.Width
	if width <= 0 {
		width = 2
	}
	dc.SetHexColor(st.Color)
	dc.SetLineWidth(width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	pts := st.Points
	if segmented {
		for i := 1; i < len(pts); i++ {
			dc.MoveTo(pts[i-1].X, pts[i-1].Y)
			dc.LineTo(pts[i].X, pts[i].Y)
		}
	} else {
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(p.X, p.Y)
		}
	}
	return dc.Stroke()
}
