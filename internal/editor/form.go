package editor

import "github.com/ha1tch/deluxetex/internal/scene"

// Form mirrors the editor's input controls. Front-ends treat it as plain
// values: they write through the Set methods and read it back to display.
type Form struct {
	Text     string
	Color    string
	Family   string
	Size     int
	DrawMode bool
	PenColor string
	PenSize  float64
}

// DefaultForm returns the initial control values.
func DefaultForm() Form {
	return Form{
		Color:    "#000000",
		Family:   scene.DefaultFont.Family,
		Size:     scene.DefaultFont.Size,
		PenColor: "#000000",
		PenSize:  4,
	}
}

func (f Form) font() scene.Font {
	size := f.Size
	if size <= 0 {
		size = scene.DefaultFont.Size
	}
	return scene.Font{Size: size, Family: f.Family}
}

// loadText copies a text item's values into the form. A font that lost
// its size or family falls back to the default font.
func (f *Form) loadText(t *scene.TextItem) {
	font := t.Font
	if font.Size <= 0 || font.Family == "" {
		font = scene.DefaultFont
	}
	f.Text = t.Text
	f.Size = font.Size
	f.Family = font.Family
	f.Color = t.Color
}

// Form returns the current control values.
func (e *Editor) Form() Form {
	return e.form
}

// SetFormText edits the text field.
func (e *Editor) SetFormText(s string) {
	e.form.Text = s
	e.updateSelectedText()
}

// SetFormColor edits the text color field.
func (e *Editor) SetFormColor(c string) {
	e.form.Color = c
	e.updateSelectedText()
}

// SetFormFamily edits the font family field.
func (e *Editor) SetFormFamily(family string) {
	e.form.Family = family
	e.updateSelectedText()
}

// SetFormSize edits the font size field.
func (e *Editor) SetFormSize(size int) {
	e.form.Size = size
	e.updateSelectedText()
}

// SetDrawMode toggles freehand drawing.
func (e *Editor) SetDrawMode(on bool) {
	e.form.DrawMode = on
}

// SetPen sets the color and width of new strokes.
func (e *Editor) SetPen(color string, size float64) {
	e.form.PenColor = color
	e.form.PenSize = size
}

// updateSelectedText applies the form to the selected text item live.
func (e *Editor) updateSelectedText() {
	txt, ok := e.scene.SelectedText()
	if !ok {
		return
	}
	txt.Text = e.form.Text
	txt.Color = e.form.Color
	txt.Font = e.form.font()
	e.render()
}
