package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ha1tch/deluxetex/internal/config"
	"github.com/ha1tch/deluxetex/internal/editor"
	"github.com/ha1tch/deluxetex/internal/scene"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	writeFile(t, path, buf.Bytes())
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.json")
	writeFile(t, path, []byte(`{
		"base": "tex/base.png",
		"swatch": "#ff8000",
		"images": [{"path": "logo.png", "x": 10, "y": 20}],
		"texts": [{"text": "hi", "font": "32px Impact"}, {"text": "x", "font": "bold"}],
		"strokes": [{"color": "#00ff00", "width": 3, "points": [[0, 0], [5, 5]]}]
	}`))

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if want := filepath.Join(dir, "tex", "base.png"); m.Base != want {
		t.Errorf("Base = %q, want %q", m.Base, want)
	}
	if want := filepath.Join(dir, "logo.png"); m.Images[0].Path != want {
		t.Errorf("image path = %q, want %q", m.Images[0].Path, want)
	}
	if got := m.Texts[0].font("Arial"); got != (scene.Font{Size: 32, Family: "Impact"}) {
		t.Errorf("font = %v", got)
	}
	if got := m.Texts[1].font("Arial"); got != scene.DefaultFont {
		t.Errorf("malformed font = %v, want default", got)
	}
	pts := m.Strokes[0].points()
	if len(pts) != 2 || pts[1] != (scene.Point{X: 5, Y: 5}) {
		t.Errorf("points = %v", pts)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"no base or model", `{"swatch": "#ffffff"}`},
		{"bad swatch", `{"base": "a.png", "swatch": "orange"}`},
		{"image without path", `{"base": "a.png", "images": [{"x": 1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "m.json")
			writeFile(t, path, []byte(tt.body))
			if _, err := LoadManifest(path); err == nil {
				t.Error("expected error")
			}
		})
	}
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPlace(t *testing.T) {
	s := scene.New()
	s.AddImage(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	in := ImageEntry{Path: "logo.png", X: 7, Y: 9, Width: 12}

	tests := []struct {
		name    string
		res     editor.LoadResult
		wantErr bool
	}{
		{"placed", editor.LoadResult{Name: "logo.png", Index: 0}, false},
		{"stale", editor.LoadResult{Name: "logo.png", Index: -1, Stale: true}, true},
		{"failed", editor.LoadResult{Name: "logo.png", Index: -1, Err: errors.New("bad png")}, true},
		{"out of range", editor.LoadResult{Name: "logo.png", Index: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := place(s, tt.res, in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
	if got := s.Images[0]; got.X != 7 || got.Y != 9 || got.W != 12 || got.H != 4 {
		t.Errorf("image = %+v", got)
	}
}

func TestRunBakesTexture(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "base.png"), 64, 64, color.White)
	writePNG(t, filepath.Join(dir, "logo.png"), 8, 8, color.RGBA{R: 255, A: 255})
	manifest := filepath.Join(dir, "overlay.json")
	writeFile(t, manifest, []byte(`{
		"base": "base.png",
		"swatch": "#00ff00",
		"images": [{"path": "logo.png", "x": 0, "y": 0, "width": 16, "height": 16}],
		"texts": [{"text": "hi", "x": 30, "y": 40}],
		"strokes": [{"color": "#0000ff", "width": 2, "points": [[40, 10], [60, 10]]}]
	}`))
	out := filepath.Join(dir, "baked.png")

	cfg := &config.Config{CanvasWidth: 64, CanvasHeight: 64, DefaultFont: "Arial", LoadWorkers: 2}
	if err := run(context.Background(), cfg, "", manifest, out); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(64, 64) {
		t.Fatalf("size = %v, want 64x64", got)
	}

	// Overlays are flipped vertically on export: the image placed at the top
	// lands at the bottom. The untouched middle shows the green-tinted base.
	r, g, b, _ := img.At(4, 60).RGBA()
	if r>>8 < 200 || g>>8 > 50 || b>>8 > 50 {
		t.Errorf("flipped image pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(20, 30).RGBA()
	if r>>8 > 50 || g>>8 < 200 || b>>8 > 50 {
		t.Errorf("base pixel = %d,%d,%d, want green", r>>8, g>>8, b>>8)
	}
}
