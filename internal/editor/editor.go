// Package editor is the interaction controller of the texture editor. It
// turns pointer, keyboard and form events into scene mutations, redraws
// the canvas after each one, and owns the editing session.
//
// An Editor is driven from a single UI goroutine. Only image decoding runs
// elsewhere; its results are queued and applied by Pump or Await on the UI
// goroutine.
package editor

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/google/uuid"

	"github.com/ha1tch/deluxetex/internal/export"
	"github.com/ha1tch/deluxetex/internal/render"
	"github.com/ha1tch/deluxetex/internal/scene"
	"github.com/ha1tch/deluxetex/internal/viewer"
)

// MinSize is the smallest width or height a resize may produce.
const MinSize = 20

// Canvas is the visible drawing surface.
type Canvas interface {
	Render(s *scene.Scene, tint *scene.Factor) error
	DrawSegment(from, to scene.Point, st *scene.StrokePath) error
	MeasureText(t *scene.TextItem) (w, h float64)
}

// TextureLoader loads a base texture from its declared path.
type TextureLoader func(path string) (image.Image, error)

// Config wires an Editor to its collaborators.
type Config struct {
	Canvas   Canvas
	Exporter *export.Exporter
	Viewer   export.Viewer
	Catalog  *viewer.Catalog

	// LoadTexture defaults to decoding the file at the texture path.
	LoadTexture TextureLoader
	// Workers bounds concurrent image decodes. Defaults to 4.
	Workers int
}

type session struct {
	id     string
	gen    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// Editor holds the scene and the interaction state.
type Editor struct {
	scene       *scene.Scene
	canvas      Canvas
	exporter    *export.Exporter
	viewer      export.Viewer
	catalog     *viewer.Catalog
	loadTexture TextureLoader
	workers     int

	model    viewer.Model
	form     Form
	mode     Mode
	active   bool
	lastTint *scene.Factor
	version  uint64

	gen     uint64
	sess    session
	results chan LoadResult
}

// New returns an editor with an empty scene and no model selected.
func New(cfg Config) *Editor {
	e := &Editor{
		scene:       scene.New(),
		canvas:      cfg.Canvas,
		exporter:    cfg.Exporter,
		viewer:      cfg.Viewer,
		catalog:     cfg.Catalog,
		loadTexture: cfg.LoadTexture,
		workers:     cfg.Workers,
		form:        DefaultForm(),
		results:     make(chan LoadResult, 16),
	}
	if e.canvas == nil {
		e.canvas = render.New(1024, 1024, nil)
	}
	if e.exporter == nil {
		w, h := 1024, 1024
		if r, ok := e.canvas.(*render.Renderer); ok {
			w, h = r.Size()
			e.exporter = export.New(w, h, r.Fonts())
		} else {
			e.exporter = export.New(w, h, nil)
		}
	}
	if e.catalog == nil {
		e.catalog = &viewer.Catalog{}
	}
	if e.loadTexture == nil {
		e.loadTexture = decodeFile
	}
	if e.workers <= 0 {
		e.workers = 4
	}
	e.newSession()
	return e
}

// Scene returns the edited scene.
func (e *Editor) Scene() *scene.Scene { return e.scene }

// Mode returns the active interaction mode.
func (e *Editor) Mode() Mode { return e.mode }

// Active reports whether the editor is open.
func (e *Editor) Active() bool { return e.active }

// Model returns the selected model.
func (e *Editor) Model() viewer.Model { return e.model }

// Version increases every time the canvas changes.
func (e *Editor) Version() uint64 { return e.version }

// LastTint returns the tint last applied through a swatch.
func (e *Editor) LastTint() (scene.Factor, bool) {
	if e.lastTint == nil {
		return scene.Factor{}, false
	}
	return *e.lastTint, true
}

// SelectModel switches to the named catalog model and reloads the base
// texture from it. Overlays are kept; pending image loads are dropped.
func (e *Editor) SelectModel(name string) error {
	m, err := e.catalog.Find(name)
	if err != nil {
		return err
	}
	e.model = m
	e.mode = idle()
	e.newSession()
	Logger().Info("model selected", "model", m.Name, "texture", m.Texture)

	base, err := e.loadBase()
	e.scene.SetBase(base)
	if err != nil {
		return err
	}
	if e.active {
		e.render()
	}
	return nil
}

// Open shows the editor once the base texture has loaded.
func (e *Editor) Open() error {
	e.mode = idle()
	base, err := e.loadBase()
	if err != nil {
		return err
	}
	e.scene.SetBase(base)
	e.active = true
	e.newSession()
	Logger().Info("editor opened", "session", e.sess.id, "model", e.model.Name)
	e.render()
	return nil
}

// Close hides the editor and clears the selection. Pending image loads
// belong to the closed session and are dropped when they complete.
func (e *Editor) Close() {
	e.mode = idle()
	e.active = false
	e.scene.Select(scene.SelectNone())
	Logger().Info("editor closed", "session", e.sess.id)
	e.newSession()
}

// Reset drops every overlay and reloads the base texture of the selected
// model.
func (e *Editor) Reset() error {
	e.mode = idle()
	e.newSession()
	base, err := e.loadBase()
	e.scene.Reset(base)
	e.render()
	return err
}

// ClearDrawing removes every stroke.
func (e *Editor) ClearDrawing() {
	e.scene.ClearStrokes()
	e.render()
}

// AddText places the form's text at the default origin and clears the
// text field.
func (e *Editor) AddText() bool {
	e.mode = idle()
	if _, ok := e.scene.AddText(e.form.Text, e.form.font(), e.form.Color); !ok {
		return false
	}
	e.form.Text = ""
	e.render()
	return true
}

// Apply bakes the scene into a texture on the model's first material and
// closes the editor. It returns export.ErrNoMaterial, leaving the editor
// open, when the model has no material.
func (e *Editor) Apply(ctx context.Context) error {
	if e.viewer == nil {
		return export.ErrNoMaterial
	}
	tex, err := e.exporter.Apply(ctx, e.viewer, e.scene, e.lastTint)
	if err != nil {
		return err
	}
	Logger().Info("texture applied", "texture", tex.Name(), "model", e.model.Name)
	e.Close()
	return nil
}

// ApplySwatch records hex as the tint to bake with and applies the
// texture. It works whether or not the editor is open.
func (e *Editor) ApplySwatch(ctx context.Context, hex string) error {
	f, err := scene.FactorFromHex(hex)
	if err != nil {
		return err
	}
	e.lastTint = &f
	return e.Apply(ctx)
}

// tint is the material's own base-color factor when it has one, else the
// last applied swatch.
func (e *Editor) tint() *scene.Factor {
	if f, ok := export.LiveTint(e.viewer); ok {
		return &f
	}
	return e.lastTint
}

func (e *Editor) render() {
	if err := e.canvas.Render(e.scene, e.tint()); err != nil {
		Logger().Warn("render failed", "err", err)
		return
	}
	e.version++
}

func (e *Editor) loadBase() (scene.BaseTexture, error) {
	if e.model.Texture == "" {
		return scene.BaseTexture{}, nil
	}
	img, err := e.loadTexture(e.model.Texture)
	if err != nil {
		return scene.BaseTexture{}, fmt.Errorf("editor: load base texture %s: %w", e.model.Texture, err)
	}
	return scene.BaseTexture{Img: img, Path: e.model.Texture}, nil
}

// newSession cancels the current session and starts the next one.
func (e *Editor) newSession() {
	if e.sess.cancel != nil {
		e.sess.cancel()
	}
	e.gen++
	ctx, cancel := context.WithCancel(context.Background())
	e.sess = session{
		id:     uuid.NewString(),
		gen:    e.gen,
		ctx:    ctx,
		cancel: cancel,
	}
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
