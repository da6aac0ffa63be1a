// Command bake composites images, text and strokes onto a model texture
// without a window and writes the baked texture as PNG.
//
// Usage:
//
//	bake -manifest overlay.json -out baked.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ha1tch/deluxetex/internal/config"
	"github.com/ha1tch/deluxetex/internal/editor"
	"github.com/ha1tch/deluxetex/internal/render"
	"github.com/ha1tch/deluxetex/internal/scene"
	"github.com/ha1tch/deluxetex/internal/viewer"
)

func main() {
	cfg := config.Load()

	manifestPath := flag.String("manifest", "", "overlay manifest (JSON)")
	outPath := flag.String("out", "baked.png", "output PNG")
	catalogPath := flag.String("models", cfg.Catalog, "model catalog (JSON)")
	timeout := flag.Duration("timeout", time.Minute, "overall time limit")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	editor.SetLogger(logger)

	if *manifestPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, *catalogPath, *manifestPath, *outPath); err != nil {
		logger.Error("bake failed", "err", err)
		os.Exit(1)
	}
	logger.Info("texture baked", "out", *outPath)
}

func run(ctx context.Context, cfg *config.Config, catalogPath, manifestPath, outPath string) error {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	var catalog *viewer.Catalog
	modelName := m.Model
	if m.Base != "" {
		if modelName == "" {
			modelName = "base"
		}
		catalog = &viewer.Catalog{Models: []viewer.Model{{Name: modelName, Texture: m.Base}}}
	} else if catalog, err = viewer.LoadCatalog(catalogPath); err != nil {
		return err
	}

	v := viewer.NewMemory(viewer.NewMaterial("base"))
	r := render.New(cfg.CanvasWidth, cfg.CanvasHeight, nil)
	e := editor.New(editor.Config{
		Canvas:  r,
		Viewer:  v,
		Catalog: catalog,
		Workers: cfg.LoadWorkers,
	})

	if err := e.SelectModel(modelName); err != nil {
		return err
	}
	v.Load(e.Model())
	if err := e.Open(); err != nil {
		return err
	}

	if err := placeImages(ctx, e, m.Images); err != nil {
		return err
	}
	placeTexts(e, m.Texts, cfg.DefaultFont)
	drawStrokes(e, m.Strokes)

	if m.Swatch != "" {
		err = e.ApplySwatch(ctx, m.Swatch)
	} else {
		err = e.Apply(ctx)
	}
	if err != nil {
		return err
	}

	material, ok := v.Material(0)
	if !ok {
		return errors.New("viewer has no material")
	}
	tex, ok := material.BaseColor()
	if !ok {
		return errors.New("no texture was applied")
	}
	return os.WriteFile(outPath, tex.PNG, 0o644)
}

func placeImages(ctx context.Context, e *editor.Editor, entries []ImageEntry) error {
	for _, in := range entries {
		e.LoadImages(ctx, editor.FileSource(in.Path))
		res, err := e.Await(ctx)
		if err != nil {
			return err
		}
		if err := place(e.Scene(), res, in); err != nil {
			return err
		}
	}
	return nil
}

// place moves and sizes the image a load placed.
func place(s *scene.Scene, res editor.LoadResult, in ImageEntry) error {
	if res.Err != nil {
		return res.Err
	}
	if res.Index < 0 || res.Index >= len(s.Images) {
		return fmt.Errorf("image %s was not placed (stale: %v)", res.Name, res.Stale)
	}
	it := &s.Images[res.Index]
	it.X, it.Y = in.X, in.Y
	if in.Width > 0 {
		it.W = in.Width
	}
	if in.Height > 0 {
		it.H = in.Height
	}
	return nil
}

func placeTexts(e *editor.Editor, entries []TextEntry, family string) {
	for _, in := range entries {
		f := in.font(family)
		e.SetFormFamily(f.Family)
		e.SetFormSize(f.Size)
		e.SetFormColor(colorOr(in.Color, "#000000"))
		e.SetFormText(in.Text)
		if !e.AddText() {
			continue
		}
		texts := e.Scene().Texts
		texts[len(texts)-1].X = in.X
		texts[len(texts)-1].Y = in.Y
	}
}

func drawStrokes(e *editor.Editor, entries []StrokeEntry) {
	e.SetDrawMode(true)
	defer e.SetDrawMode(false)
	for _, in := range entries {
		pts := in.points()
		if len(pts) == 0 {
			continue
		}
		e.SetPen(colorOr(in.Color, "#000000"), in.Width)
		e.PointerDown(pts[0])
		for _, p := range pts[1:] {
			e.PointerMove(p)
		}
		e.PointerUp()
	}
}

func colorOr(c, fallback string) string {
	if _, err := scene.ParseHex(c); err != nil {
		return fallback
	}
	return c
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: bake -manifest overlay.json [-out baked.png]\n")
		flag.PrintDefaults()
	}
}
