package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/deluxetex/internal/config"
	"github.com/ha1tch/deluxetex/internal/editor"
	"github.com/ha1tch/deluxetex/internal/export"
	"github.com/ha1tch/deluxetex/internal/render"
	"github.com/ha1tch/deluxetex/internal/scene"
	"github.com/ha1tch/deluxetex/internal/viewer"
)

const (
	screenWidth  = 1280
	screenHeight = 800
	fontSize     = 10
	leftPanel    = 100
	rightPanel   = 200
	topBar       = 50
	alertSeconds = 3
)

var logger = slog.Default()

// Tool types
type ToolType int

const (
	ToolSelect ToolType = iota
	ToolDraw
)

// Toolbar actions, in button order
type Action int

const (
	ActionSelect Action = iota
	ActionDraw
	ActionText
	ActionClear
	ActionReset
	ActionApply
	ActionClose
)

var actionNames = []string{"SELECT", "DRAW", "TEXT", "CLEAR", "RESET", "APPLY", "CLOSE"}

var fontFamilies = []string{"Arial", "Courier New", "Times New Roman", "Impact", "cursive"}

// GUI Control types
type Button struct {
	rect     rl.Rectangle
	text     string
	hover    bool
	selected bool
}

type Slider struct {
	rect  rl.Rectangle
	value float32
	min   float32
	max   float32
	label string
}

func (s *Slider) update(mousePos rl.Vector2) bool {
	if !rl.CheckCollisionPointRec(mousePos, s.rect) || !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		return false
	}
	relX := mousePos.X - s.rect.X
	s.value = clamp(s.min+(relX/s.rect.Width)*(s.max-s.min), s.min, s.max)
	return true
}

// Application state
type App struct {
	ctx     context.Context
	cfg     *config.Config
	catalog *viewer.Catalog
	model   int

	editor   *editor.Editor
	renderer *render.Renderer
	viewer   *RLViewer

	// 3D view
	camera rl.Camera3D

	// Canvas view
	canvas        rl.Texture2D
	canvasVersion uint64
	zoom          float32
	panX          float32
	panY          float32
	isPanning     bool
	panStartX     float32
	panStartY     float32

	// Tools
	currentTool  ToolType
	currentColor rl.Color

	// UI
	toolButtons    []Button
	familyButtons  []Button
	colorPalette   []rl.Color
	penSizeSlider  Slider
	fontSizeSlider Slider
	textField      rl.Rectangle
	textFocus      bool

	// State
	pointerDown bool
	lastPointer scene.Point
	alert       string
	alertTime   float64
}

// Initialize application
func NewApp(ctx context.Context, cfg *config.Config, catalog *viewer.Catalog) *App {
	app := &App{
		ctx:          ctx,
		cfg:          cfg,
		catalog:      catalog,
		zoom:         1.0,
		currentTool:  ToolSelect,
		currentColor: rl.Black,
	}

	app.renderer = render.New(cfg.CanvasWidth, cfg.CanvasHeight, nil)
	app.viewer = &RLViewer{}
	app.editor = editor.New(editor.Config{
		Canvas:  app.renderer,
		Viewer:  app.viewer,
		Catalog: catalog,
		Workers: cfg.LoadWorkers,
	})
	app.editor.SetFormFamily(cfg.DefaultFont)

	app.camera = rl.Camera3D{
		Position:   rl.NewVector3(5, 4, 5),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	// Canvas texture, refreshed whenever the editor redraws
	img := rl.GenImageColor(cfg.CanvasWidth, cfg.CanvasHeight, rl.Blank)
	app.canvas = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	x := float32(10)
	y := float32(topBar)
	for i, name := range actionNames {
		app.toolButtons = append(app.toolButtons, Button{
			rect:     rl.Rectangle{X: x, Y: y + float32(i)*30, Width: 76, Height: 24},
			text:     name,
			selected: Action(i) == ActionSelect,
		})
	}

	for i, family := range fontFamilies {
		app.familyButtons = append(app.familyButtons, Button{
			rect:     rl.Rectangle{X: float32(screenWidth - rightPanel + 10), Y: 160 + float32(i)*28, Width: rightPanel - 20, Height: 24},
			text:     family,
			selected: family == cfg.DefaultFont,
		})
	}

	// Initialize color palette
	app.colorPalette = []rl.Color{
		rl.Black, rl.White, rl.Red, rl.Green, rl.Blue,
		rl.Yellow, rl.Orange, rl.Purple, rl.Pink, rl.Brown,
		rl.Gray, rl.DarkGray, rl.LightGray, rl.SkyBlue, rl.Magenta,
		{255, 0, 128, 255}, {128, 255, 0, 255}, {0, 128, 255, 255},
	}

	form := app.editor.Form()
	app.penSizeSlider = Slider{
		rect:  rl.Rectangle{X: 10, Y: 290, Width: 76, Height: 20},
		value: float32(form.PenSize),
		min:   1,
		max:   50,
		label: "PEN",
	}
	app.fontSizeSlider = Slider{
		rect:  rl.Rectangle{X: screenWidth - rightPanel + 10, Y: 120, Width: rightPanel - 20, Height: 20},
		value: float32(form.Size),
		min:   8,
		max:   200,
		label: "FONT SIZE",
	}
	app.textField = rl.Rectangle{X: screenWidth - rightPanel + 10, Y: 70, Width: rightPanel - 20, Height: 28}

	app.selectModel(0)
	return app
}

// Switch the viewer and the editor to the i-th catalog model
func (app *App) selectModel(i int) {
	m, ok := app.catalog.At(i)
	if !ok {
		return
	}
	app.model = i
	app.viewer.Load(m)
	app.report(app.editor.SelectModel(m.Name))
}

func (app *App) openEditor() {
	if err := app.editor.Open(); err != nil {
		app.report(err)
		return
	}
	app.textFocus = false
	app.fitCanvas()
}

// Zoom the canvas to fit the viewport
func (app *App) fitCanvas() {
	vw := float32(screenWidth - leftPanel - rightPanel)
	vh := float32(screenHeight - topBar)
	app.zoom = min(vw/float32(app.cfg.CanvasWidth), vh/float32(app.cfg.CanvasHeight))
	app.panX = (vw - float32(app.cfg.CanvasWidth)*app.zoom) / 2
	app.panY = (vh - float32(app.cfg.CanvasHeight)*app.zoom) / 2
}

func (app *App) applySwatch(c rl.Color) {
	app.report(app.editor.ApplySwatch(app.ctx, colorHex(c)))
}

// Show an alert for err, if any
func (app *App) report(err error) {
	if err == nil {
		return
	}
	logger.Error("editor", "err", err)
	switch {
	case errors.Is(err, export.ErrNoMaterial):
		app.alert = "THIS MODEL HAS NO MATERIAL TO TEXTURE"
	default:
		app.alert = err.Error()
	}
	app.alertTime = rl.GetTime()
}

// Screen to canvas coordinates
func (app *App) ScreenToCanvas(screenX, screenY float32) scene.Point {
	return scene.Point{
		X: float64((screenX - leftPanel - app.panX) / app.zoom),
		Y: float64((screenY - topBar - app.panY) / app.zoom),
	}
}

// Update application
func (app *App) Update() {
	app.editor.Pump()
	app.handleDroppedFiles()

	if app.editor.Active() {
		app.updateEditor()
	} else {
		app.updateViewer()
	}

	app.uploadCanvas()
}

func (app *App) updateViewer() {
	rl.UpdateCamera(&app.camera, rl.CameraOrbital)

	if rl.IsKeyPressed(rl.KeyE) {
		app.openEditor()
		return
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		app.selectModel(app.model + 1)
	}
	for k := int32(rl.KeyOne); k <= rl.KeyNine; k++ {
		if rl.IsKeyPressed(k) {
			app.applySwatch(app.colorPalette[k-rl.KeyOne])
		}
	}

	mousePos := rl.GetMousePosition()
	if i, ok := app.paletteAt(mousePos); ok && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.applySwatch(app.colorPalette[i])
	}
}

func (app *App) updateEditor() {
	mousePos := rl.GetMousePosition()
	e := app.editor

	if app.textFocus {
		app.updateTextField()
	} else {
		switch {
		case rl.IsKeyPressed(rl.KeyEscape):
			e.Close()
			return
		case rl.IsKeyPressed(rl.KeyDelete):
			e.KeyDown("Delete")
		case rl.IsKeyPressed(rl.KeyBackspace):
			e.KeyDown("Backspace")
		case rl.IsKeyPressed(rl.KeyEnter):
			app.runAction(ActionApply)
		case rl.IsKeyPressed(rl.KeyD):
			if app.currentTool == ToolDraw {
				app.runAction(ActionSelect)
			} else {
				app.runAction(ActionDraw)
			}
		case rl.IsKeyPressed(rl.KeyC):
			app.runAction(ActionClear)
		case rl.IsKeyPressed(rl.KeyR):
			app.runAction(ActionReset)
		case rl.IsKeyPressed(rl.KeyT):
			app.textFocus = true
		}
	}
	if !e.Active() {
		return
	}

	// Handle space+drag panning
	if rl.IsKeyDown(rl.KeySpace) && !app.textFocus {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.isPanning = true
			app.panStartX = mousePos.X - app.panX
			app.panStartY = mousePos.Y - app.panY
		}
	}

	if app.isPanning && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		app.panX = mousePos.X - app.panStartX
		app.panY = mousePos.Y - app.panStartY
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) || !rl.IsKeyDown(rl.KeySpace) {
		app.isPanning = false
	}

	// Don't process other inputs while panning
	if app.isPanning {
		return
	}

	inViewport := mousePos.X > leftPanel && mousePos.X < screenWidth-rightPanel && mousePos.Y > topBar

	// Handle zoom with mouse wheel
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 && inViewport {
		oldZoom := app.zoom
		app.zoom *= 1.0 + wheel*0.1
		app.zoom = clamp(app.zoom, 0.1, 8.0)

		// Zoom towards mouse position
		if app.zoom != oldZoom {
			zoomFactor := app.zoom / oldZoom
			app.panX = mousePos.X - leftPanel - (mousePos.X-leftPanel-app.panX)*zoomFactor
			app.panY = mousePos.Y - topBar - (mousePos.Y-topBar-app.panY)*zoomFactor
		}
	}

	// Handle tool buttons
	for i := range app.toolButtons {
		btn := &app.toolButtons[i]
		btn.hover = rl.CheckCollisionPointRec(mousePos, btn.rect)
		if btn.hover && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.runAction(Action(i))
			if !e.Active() {
				return
			}
		}
	}

	// Handle color palette
	if i, ok := app.paletteAt(mousePos); ok && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.currentColor = app.colorPalette[i]
		e.SetPen(colorHex(app.currentColor), e.Form().PenSize)
		e.SetFormColor(colorHex(app.currentColor))
	}

	if app.penSizeSlider.update(mousePos) {
		e.SetPen(e.Form().PenColor, float64(app.penSizeSlider.value))
	}
	if app.fontSizeSlider.update(mousePos) {
		e.SetFormSize(int(app.fontSizeSlider.value))
	}

	for i := range app.familyButtons {
		btn := &app.familyButtons[i]
		btn.hover = rl.CheckCollisionPointRec(mousePos, btn.rect)
		if btn.hover && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			e.SetFormFamily(fontFamilies[i])
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if rl.CheckCollisionPointRec(mousePos, app.textField) {
			app.textFocus = true
		} else if inViewport {
			app.textFocus = false
		}
	}

	// Handle pointer on canvas
	p := app.ScreenToCanvas(mousePos.X, mousePos.Y)
	if inViewport && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.pointerDown = true
		app.lastPointer = p
		e.PointerDown(p)
	}
	if app.pointerDown && rl.IsMouseButtonDown(rl.MouseLeftButton) && p != app.lastPointer {
		app.lastPointer = p
		e.PointerMove(p)
	}
	if app.pointerDown && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.pointerDown = false
		e.PointerUp()
	}

	// Handle panning with middle mouse button
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		app.panX += delta.X
		app.panY += delta.Y
	}

	app.syncForm()
}

// Typing into the text field edits the form text
func (app *App) updateTextField() {
	e := app.editor
	text := []rune(e.Form().Text)
	changed := false
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		text = append(text, rune(r))
		changed = true
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && len(text) > 0 {
		text = text[:len(text)-1]
		changed = true
	}
	if changed {
		e.SetFormText(string(text))
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEnter):
		app.runAction(ActionText)
	case rl.IsKeyPressed(rl.KeyEscape):
		app.textFocus = false
	}
}

// Reflect the form (which follows the selected text) in the widgets
func (app *App) syncForm() {
	form := app.editor.Form()
	app.fontSizeSlider.value = clamp(float32(form.Size), app.fontSizeSlider.min, app.fontSizeSlider.max)
	for i := range app.familyButtons {
		app.familyButtons[i].selected = app.familyButtons[i].text == form.Family
	}
	for i := range app.toolButtons {
		app.toolButtons[i].selected = (Action(i) == ActionDraw) == form.DrawMode &&
			(Action(i) == ActionDraw || Action(i) == ActionSelect)
	}
}

func (app *App) runAction(a Action) {
	e := app.editor
	switch a {
	case ActionSelect:
		app.currentTool = ToolSelect
		e.SetDrawMode(false)
	case ActionDraw:
		app.currentTool = ToolDraw
		e.SetDrawMode(true)
	case ActionText:
		if e.AddText() {
			app.textFocus = false
		} else {
			app.textFocus = true
		}
	case ActionClear:
		e.ClearDrawing()
	case ActionReset:
		app.report(e.Reset())
	case ActionApply:
		app.report(e.Apply(app.ctx))
	case ActionClose:
		e.Close()
	}
}

// Dropped image files are placed on the canvas
func (app *App) handleDroppedFiles() {
	if !rl.IsFileDropped() {
		return
	}
	files := rl.LoadDroppedFiles()
	rl.UnloadDroppedFiles()

	if !app.editor.Active() {
		return
	}
	srcs := make([]editor.Source, 0, len(files))
	for _, f := range files {
		srcs = append(srcs, editor.FileSource(f))
	}
	app.editor.LoadImages(app.ctx, srcs...)
}

func (app *App) paletteAt(mousePos rl.Vector2) (int, bool) {
	for i := range app.colorPalette {
		if rl.CheckCollisionPointRec(mousePos, paletteRect(i)) {
			return i, true
		}
	}
	return 0, false
}

func paletteRect(i int) rl.Rectangle {
	return rl.Rectangle{X: float32(10 + (i%3)*25), Y: 360 + float32(i/3)*25, Width: 20, Height: 20}
}

// Upload the rendered canvas when the editor has redrawn it
func (app *App) uploadCanvas() {
	if v := app.editor.Version(); v != app.canvasVersion {
		rl.UpdateTexture(app.canvas, canvasPixels(app.renderer.Image()))
		app.canvasVersion = v
	}
}

// canvasPixels converts premultiplied canvas pixels to raylib's
// straight-alpha layout, top row first.
func canvasPixels(img *image.RGBA) []color.RGBA {
	b := img.Bounds()
	px := make([]color.RGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.RGBAAt(x, y)).(color.NRGBA)
			px = append(px, color.RGBA{c.R, c.G, c.B, c.A})
		}
	}
	return px
}

// Draw application
func (app *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{40, 40, 40, 255})

	if app.editor.Active() {
		app.drawEditor()
	} else {
		app.drawViewer()
	}
	app.drawAlert()

	rl.EndDrawing()
}

func (app *App) drawViewer() {
	rl.BeginMode3D(app.camera)
	app.viewer.Draw()
	rl.DrawGrid(10, 1)
	rl.EndMode3D()

	rl.DrawRectangle(0, 0, leftPanel, screenHeight, rl.Color{50, 50, 50, 255})
	rl.DrawText("DELUXE TEX", 10, 10, fontSize, rl.White)
	app.drawPalette("SWATCHES", rl.Blank)

	m := app.editor.Model()
	info := fmt.Sprintf("MODEL: %s | E: EDIT TEXTURE | TAB: NEXT MODEL | 1-9: SWATCH", m.Name)
	rl.DrawRectangle(leftPanel, 0, screenWidth-leftPanel, topBar, rl.Color{60, 60, 60, 255})
	rl.DrawText(info, leftPanel+10, 20, fontSize, rl.White)
}

func (app *App) drawEditor() {
	mousePos := rl.GetMousePosition()
	e := app.editor

	// Draw canvas viewport
	rl.BeginScissorMode(leftPanel, topBar, screenWidth-leftPanel-rightPanel, screenHeight-topBar)

	// Draw checkerboard background
	tileSize := int32(16)
	for y := int32(0); y < (screenHeight-topBar)/tileSize+1; y++ {
		for x := int32(0); x < (screenWidth-leftPanel-rightPanel)/tileSize+1; x++ {
			if (x+y)%2 == 0 {
				rl.DrawRectangle(leftPanel+x*tileSize, topBar+y*tileSize, tileSize, tileSize, rl.Color{150, 150, 150, 255})
			}
		}
	}

	// Draw canvas
	srcRect := rl.Rectangle{X: 0, Y: 0, Width: float32(app.cfg.CanvasWidth), Height: float32(app.cfg.CanvasHeight)}
	dstRect := rl.Rectangle{
		X:      leftPanel + app.panX,
		Y:      topBar + app.panY,
		Width:  float32(app.cfg.CanvasWidth) * app.zoom,
		Height: float32(app.cfg.CanvasHeight) * app.zoom,
	}
	rl.DrawTexturePro(app.canvas, srcRect, dstRect, rl.Vector2{}, 0, rl.White)
	rl.DrawRectangleLinesEx(dstRect, 2, rl.Color{100, 100, 100, 255})

	// Draw pen cursor
	inViewport := mousePos.X > leftPanel && mousePos.X < screenWidth-rightPanel && mousePos.Y > topBar
	if inViewport && app.currentTool == ToolDraw && !app.isPanning {
		radius := float32(e.Form().PenSize) * app.zoom / 2
		rl.DrawCircleLines(int32(mousePos.X), int32(mousePos.Y), radius, rl.White)
	}
	if rl.IsKeyDown(rl.KeySpace) && !app.isPanning && !app.textFocus {
		rl.DrawText("CLICK AND DRAG TO PAN", int32(mousePos.X+10), int32(mousePos.Y+10), fontSize, rl.Yellow)
	}

	rl.EndScissorMode()

	// Draw left toolbar
	rl.DrawRectangle(0, 0, leftPanel, screenHeight, rl.Color{50, 50, 50, 255})
	rl.DrawText("DELUXE TEX", 10, 10, fontSize, rl.White)
	rl.DrawText("TOOLS", 10, 35, fontSize, rl.LightGray)
	for _, btn := range app.toolButtons {
		drawButton(btn)
	}
	drawSlider(app.penSizeSlider)
	app.drawPalette("COLORS", app.currentColor)

	// Draw right panel (text form)
	form := e.Form()
	rl.DrawRectangle(screenWidth-rightPanel, 0, rightPanel, screenHeight, rl.Color{50, 50, 50, 255})
	rl.DrawText("TEXT", screenWidth-rightPanel+10, 55, fontSize, rl.White)
	fieldColor := rl.Color{30, 30, 30, 255}
	if app.textFocus {
		fieldColor = rl.Color{20, 20, 60, 255}
	}
	rl.DrawRectangleRec(app.textField, fieldColor)
	rl.DrawRectangleLinesEx(app.textField, 1, rl.Color{90, 90, 90, 255})
	caret := ""
	if app.textFocus && int(rl.GetTime()*2)%2 == 0 {
		caret = "_"
	}
	rl.DrawText(form.Text+caret, int32(app.textField.X+5), int32(app.textField.Y+9), fontSize, rl.White)
	drawSlider(app.fontSizeSlider)
	for _, btn := range app.familyButtons {
		drawButton(btn)
	}
	hints := []string{"T: TYPE TEXT", "ENTER: ADD / APPLY", "D: DRAW", "C: CLEAR DRAWING", "R: RESET", "DEL: DELETE", "ESC: CLOSE", "DROP IMAGES TO ADD"}
	for i, h := range hints {
		rl.DrawText(h, screenWidth-rightPanel+10, int32(330+i*16), fontSize, rl.LightGray)
	}

	// Draw top bar
	s := e.Scene()
	rl.DrawRectangle(leftPanel, 0, screenWidth-leftPanel-rightPanel, topBar, rl.Color{60, 60, 60, 255})
	info := fmt.Sprintf("MODEL: %s | ZOOM: %.0f%% | %s | IMAGES: %d TEXT: %d STROKES: %d | %s",
		e.Model().Name, app.zoom*100, e.Mode().Kind, len(s.Images), len(s.Texts), len(s.Strokes), s.Selection())
	rl.DrawText(info, leftPanel+10, 20, fontSize, rl.White)
}

func (app *App) drawPalette(label string, current rl.Color) {
	rl.DrawText(label, 10, 345, fontSize, rl.LightGray)
	for i, c := range app.colorPalette {
		rect := paletteRect(i)
		rl.DrawRectangleRec(rect, c)
		if current == c {
			rl.DrawRectangleLinesEx(rect, 2, rl.White)
		} else {
			rl.DrawRectangleLinesEx(rect, 1, rl.Color{70, 70, 70, 255})
		}
	}
}

func (app *App) drawAlert() {
	if app.alert == "" || rl.GetTime()-app.alertTime > alertSeconds {
		return
	}
	w := rl.MeasureText(app.alert, fontSize*2) + 40
	x := int32(screenWidth/2) - w/2
	y := int32(screenHeight/2) - 30
	rl.DrawRectangle(x, y, w, 60, rl.Color{120, 30, 30, 230})
	rl.DrawRectangleLines(x, y, w, 60, rl.White)
	rl.DrawText(app.alert, x+20, y+20, fontSize*2, rl.White)
}

func drawButton(btn Button) {
	c := rl.Color{70, 70, 70, 255}
	if btn.selected {
		c = rl.Color{100, 100, 150, 255}
	} else if btn.hover {
		c = rl.Color{80, 80, 80, 255}
	}
	rl.DrawRectangleRec(btn.rect, c)
	rl.DrawRectangleLinesEx(btn.rect, 1, rl.Color{90, 90, 90, 255})

	textW := rl.MeasureText(btn.text, fontSize)
	textX := int32(btn.rect.X + btn.rect.Width/2 - float32(textW)/2)
	textY := int32(btn.rect.Y + btn.rect.Height/2 - fontSize/2)
	rl.DrawText(btn.text, textX, textY, fontSize, rl.White)
}

func drawSlider(s Slider) {
	rl.DrawText(s.label, int32(s.rect.X), int32(s.rect.Y-12), fontSize, rl.LightGray)
	rl.DrawRectangleRec(s.rect, rl.Color{60, 60, 60, 255})
	pos := s.rect.X + (s.value-s.min)/(s.max-s.min)*s.rect.Width
	rl.DrawRectangle(int32(pos-2), int32(s.rect.Y), 4, int32(s.rect.Height), rl.White)
	rl.DrawText(fmt.Sprintf("%.0f", s.value), int32(s.rect.X), int32(s.rect.Y+24), fontSize, rl.White)
}

// Unload frees GPU resources
func (app *App) Unload() {
	app.editor.Close()
	app.viewer.Unload()
	rl.UnloadTexture(app.canvas)
}

// Helper functions
func colorHex(c rl.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func main() {
	cfg := config.Load()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	editor.SetLogger(logger)

	catalog, err := viewer.LoadCatalog(cfg.Catalog)
	if err != nil {
		logger.Warn("no model catalog, showing a blank cube", "err", err)
		catalog = &viewer.Catalog{Models: []viewer.Model{{Name: "cube"}}}
	}

	rl.InitWindow(screenWidth, screenHeight, "Deluxe Tex")
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull)

	ctx, cancel := context.WithCancel(context.Background())
	app := NewApp(ctx, cfg, catalog)

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}

	// Clean up
	cancel()
	app.Unload()
	rl.CloseWindow()
}
