package editor

import (
	"github.com/ha1tch/deluxetex/internal/render"
	"github.com/ha1tch/deluxetex/internal/scene"
)

// PointerDown starts a stroke in draw mode, otherwise selects the topmost
// item under p: resize handles first, then image bodies, then text.
func (e *Editor) PointerDown(p scene.Point) {
	if e.form.DrawMode {
		i := e.scene.BeginStroke(e.form.PenColor, e.form.PenSize, p)
		e.setMode(drawing(i, p))
		return
	}

	if txt, ok := e.scene.SelectedText(); ok {
		e.form.loadText(txt)
	} else {
		e.form.Text = ""
	}

	e.scene.Select(scene.SelectNone())
	e.setMode(idle())

	switch {
	case e.hitHandle(p):
	case e.hitImage(p):
	case e.hitText(p):
	}
	e.render()
}

func (e *Editor) hitHandle(p scene.Point) bool {
	for i := len(e.scene.Images) - 1; i >= 0; i-- {
		it := &e.scene.Images[i]
		for _, c := range scene.Corners {
			cp := it.Corner(c)
			if p.X >= cp.X-render.HandleSize && p.X <= cp.X+render.HandleSize &&
				p.Y >= cp.Y-render.HandleSize && p.Y <= cp.Y+render.HandleSize {
				e.scene.Select(scene.SelectImage(i))
				e.setMode(resizingImage(i, c))
				return true
			}
		}
	}
	return false
}

func (e *Editor) hitImage(p scene.Point) bool {
	for i := len(e.scene.Images) - 1; i >= 0; i-- {
		it := &e.scene.Images[i]
		if it.Contains(p) {
			e.scene.Select(scene.SelectImage(i))
			e.setMode(draggingImage(i, p.Sub(scene.Point{X: it.X, Y: it.Y})))
			return true
		}
	}
	return false
}

func (e *Editor) hitText(p scene.Point) bool {
	for i := len(e.scene.Texts) - 1; i >= 0; i-- {
		txt := &e.scene.Texts[i]
		w, h := e.canvas.MeasureText(txt)
		if p.X >= txt.X && p.X <= txt.X+w &&
			p.Y >= txt.Y-h && p.Y <= txt.Y {
			e.scene.Select(scene.SelectText(i))
			e.setMode(draggingText(i, p.Sub(scene.Point{X: txt.X, Y: txt.Y})))
			return true
		}
	}
	return false
}

// PointerMove extends the stroke, resizes or drags, depending on mode.
func (e *Editor) PointerMove(p scene.Point) {
	switch e.mode.Kind {
	case ModeDrawing:
		i := e.mode.Index
		if i >= len(e.scene.Strokes) {
			e.setMode(idle())
			return
		}
		e.scene.ExtendStroke(i, p)
		if err := e.canvas.DrawSegment(e.mode.Last, p, &e.scene.Strokes[i]); err != nil {
			Logger().Warn("draw segment failed", "err", err)
		}
		e.mode.Last = p
		e.version++

	case ModeResizingImage:
		it, ok := e.scene.SelectedImage()
		if !ok {
			return
		}
		resize(it, e.mode.Corner, p)
		e.render()

	case ModeDraggingImage:
		it, ok := e.scene.SelectedImage()
		if !ok {
			return
		}
		it.X = p.X - e.mode.Offset.X
		it.Y = p.Y - e.mode.Offset.Y
		e.render()

	case ModeDraggingText:
		txt, ok := e.scene.SelectedText()
		if !ok {
			return
		}
		txt.X = p.X - e.mode.Offset.X
		txt.Y = p.Y - e.mode.Offset.Y
		e.render()
	}
}

// resize moves corner c to p keeping the opposite corner fixed. An axis
// that would drop below MinSize keeps its previous extent.
func resize(it *scene.PlacedImage, c scene.Corner, p scene.Point) {
	prev := *it
	switch c {
	case scene.CornerTL:
		it.W += it.X - p.X
		it.H += it.Y - p.Y
		it.X = p.X
		it.Y = p.Y
	case scene.CornerTR:
		it.W = p.X - it.X
		it.H += it.Y - p.Y
		it.Y = p.Y
	case scene.CornerBR:
		it.W = p.X - it.X
		it.H = p.Y - it.Y
	case scene.CornerBL:
		it.W += it.X - p.X
		it.H = p.Y - it.Y
		it.X = p.X
	}
	if it.W < MinSize {
		it.W, it.X = prev.W, prev.X
	}
	if it.H < MinSize {
		it.H, it.Y = prev.H, prev.Y
	}
}

// PointerUp ends any drawing, drag or resize.
func (e *Editor) PointerUp() {
	e.setMode(idle())
}

// KeyDown handles key presses named as in the DOM ("Delete", "Backspace").
func (e *Editor) KeyDown(key string) {
	switch key {
	case "Delete", "Backspace":
		e.DeleteSelected()
	}
}

// DeleteSelected removes the selected image or text item.
func (e *Editor) DeleteSelected() bool {
	if !e.scene.DeleteSelected() {
		return false
	}
	e.setMode(idle())
	e.render()
	return true
}

func (e *Editor) setMode(m Mode) {
	if m != e.mode {
		Logger().Debug("mode", "from", e.mode, "to", m)
	}
	e.mode = m
}
