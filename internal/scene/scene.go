// Package scene holds the editable state of a texture editing session:
// the base texture, placed images, text items, freehand strokes and the
// current selection.
package scene

import (
	"image"
	"slices"
	"strings"
)

// DefaultOrigin is where newly placed images and text land.
var DefaultOrigin = Point{X: 50, Y: 50}

// Point is a position in canvas space (origin top-left, Y down).
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Corner identifies one corner of a placed image.
type Corner int

const (
	CornerTL Corner = iota
	CornerTR
	CornerBR
	CornerBL
)

// Corners lists corners in hit-test order.
var Corners = [4]Corner{CornerTL, CornerTR, CornerBR, CornerBL}

func (c Corner) String() string {
	names := []string{"tl", "tr", "br", "bl"}
	if int(c) >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// PlacedImage is a decoded image positioned on the canvas.
type PlacedImage struct {
	Img  image.Image
	X, Y float64
	W, H float64
}

// Corner returns the canvas position of corner c.
func (p *PlacedImage) Corner(c Corner) Point {
	switch c {
	case CornerTR:
		return Point{X: p.X + p.W, Y: p.Y}
	case CornerBR:
		return Point{X: p.X + p.W, Y: p.Y + p.H}
	case CornerBL:
		return Point{X: p.X, Y: p.Y + p.H}
	default:
		return Point{X: p.X, Y: p.Y}
	}
}

// Contains reports whether pt lies inside the image bounds, edges included.
func (p *PlacedImage) Contains(pt Point) bool {
	return pt.X >= p.X && pt.X <= p.X+p.W &&
		pt.Y >= p.Y && pt.Y <= p.Y+p.H
}

// TextItem is a single line of text anchored at its baseline.
type TextItem struct {
	Text  string
	X, Y  float64
	Font  Font
	Color string
}

// StrokePath is a freehand polyline. Points are kept in draw order.
type StrokePath struct {
	Color  string
	Width  float64
	Points []Point
}

// BaseTexture is the model texture the overlays are composited on.
type BaseTexture struct {
	Img  image.Image
	Path string
}

// Loaded reports whether the base image finished loading.
func (b BaseTexture) Loaded() bool {
	return b.Img != nil
}

// Scene is the single owned state record of an editing session.
// It is not safe for concurrent use; the editor touches it from the UI
// goroutine only.
type Scene struct {
	Base    BaseTexture
	Images  []PlacedImage
	Texts   []TextItem
	Strokes []StrokePath

	sel Selection
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Selection returns the current selection.
func (s *Scene) Selection() Selection {
	return s.sel
}

// Select replaces the selection. Indices that do not reference a live
// element clear the selection instead.
func (s *Scene) Select(sel Selection) {
	switch sel.Kind {
	case SelectedImage:
		if sel.Index < 0 || sel.Index >= len(s.Images) {
			sel = SelectNone()
		}
	case SelectedText:
		if sel.Index < 0 || sel.Index >= len(s.Texts) {
			sel = SelectNone()
		}
	default:
		sel = SelectNone()
	}
	s.sel = sel
}

// SelectedImage returns the selected image, if any.
func (s *Scene) SelectedImage() (*PlacedImage, bool) {
	i, ok := s.sel.Image()
	if !ok {
		return nil, false
	}
	return &s.Images[i], true
}

// SelectedText returns the selected text item, if any.
func (s *Scene) SelectedText() (*TextItem, bool) {
	i, ok := s.sel.Text()
	if !ok {
		return nil, false
	}
	return &s.Texts[i], true
}

// AddImage appends img at DefaultOrigin at its natural size and returns
// its index.
func (s *Scene) AddImage(img image.Image) int {
	b := img.Bounds()
	s.Images = append(s.Images, PlacedImage{
		Img: img,
		X:   DefaultOrigin.X,
		Y:   DefaultOrigin.Y,
		W:   float64(b.Dx()),
		H:   float64(b.Dy()),
	})
	return len(s.Images) - 1
}

// AddText appends a text item at DefaultOrigin. Blank text is ignored.
func (s *Scene) AddText(text string, font Font, color string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return -1, false
	}
	if font.Size <= 0 {
		font.Size = DefaultFont.Size
	}
	s.Texts = append(s.Texts, TextItem{
		Text:  text,
		X:     DefaultOrigin.X,
		Y:     DefaultOrigin.Y,
		Font:  font,
		Color: color,
	})
	return len(s.Texts) - 1, true
}

// BeginStroke starts a new stroke at p and returns its index.
func (s *Scene) BeginStroke(color string, width float64, p Point) int {
	s.Strokes = append(s.Strokes, StrokePath{
		Color:  color,
		Width:  width,
		Points: []Point{p},
	})
	return len(s.Strokes) - 1
}

// ExtendStroke appends p to stroke i.
func (s *Scene) ExtendStroke(i int, p Point) {
	if i < 0 || i >= len(s.Strokes) {
		return
	}
	s.Strokes[i].Points = append(s.Strokes[i].Points, p)
}

// ClearStrokes removes every stroke.
func (s *Scene) ClearStrokes() {
	s.Strokes = nil
}

// DeleteSelected removes the selected image or text item and clears the
// selection. It reports whether anything was removed.
func (s *Scene) DeleteSelected() bool {
	if i, ok := s.sel.Image(); ok {
		s.Images = slices.Delete(s.Images, i, i+1)
		s.sel = SelectNone()
		return true
	}
	if i, ok := s.sel.Text(); ok {
		s.Texts = slices.Delete(s.Texts, i, i+1)
		s.sel = SelectNone()
		return true
	}
	return false
}

// SetBase installs a freshly loaded base texture.
func (s *Scene) SetBase(base BaseTexture) {
	s.Base = base
}

// Reset drops every overlay and the selection and installs base.
func (s *Scene) Reset(base BaseTexture) {
	s.Images = nil
	s.Texts = nil
	s.Strokes = nil
	s.sel = SelectNone()
	s.Base = base
}
