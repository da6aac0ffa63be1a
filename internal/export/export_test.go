package export_test

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/ha1tch/deluxetex/internal/export"
	"github.com/ha1tch/deluxetex/internal/scene"
	"github.com/ha1tch/deluxetex/internal/viewer"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func checkPixel(t *testing.T, img image.Image, x, y int, want color.RGBA) {
	t.Helper()
	r, g, b, a := img.At(x, y).RGBA()
	got := [4]int{int(r >> 8), int(g >> 8), int(b >> 8), int(a >> 8)}
	exp := [4]int{int(want.R), int(want.G), int(want.B), int(want.A)}
	for i := range got {
		if d := got[i] - exp[i]; d < -3 || d > 3 {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, exp)
			return
		}
	}
}

func TestExportKeepsBaseUnflipped(t *testing.T) {
	base := solid(8, 8, color.RGBA{255, 0, 0, 255})
	draw.Draw(base, image.Rect(0, 4, 8, 8), image.NewUniform(color.RGBA{0, 0, 255, 255}), image.Point{}, draw.Src)

	s := scene.New()
	s.SetBase(scene.BaseTexture{Img: base})

	img, err := export.New(8, 8, nil).Export(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkPixel(t, img, 4, 1, color.RGBA{255, 0, 0, 255})
	checkPixel(t, img, 4, 6, color.RGBA{0, 0, 255, 255})
}

func TestExportFlipsOverlays(t *testing.T) {
	s := scene.New()
	s.SetBase(scene.BaseTexture{Img: solid(16, 16, color.RGBA{255, 255, 255, 255})})
	s.AddImage(solid(4, 4, color.RGBA{0, 255, 0, 255}))
	s.Images[0].X, s.Images[0].Y = 0, 0

	img, err := export.New(16, 16, nil).Export(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkPixel(t, img, 1, 14, color.RGBA{0, 255, 0, 255})
	checkPixel(t, img, 1, 1, color.RGBA{255, 255, 255, 255})
}

func TestExportUsesGivenTint(t *testing.T) {
	s := scene.New()
	s.SetBase(scene.BaseTexture{Img: solid(4, 4, color.RGBA{255, 255, 255, 255})})
	tint, err := scene.FactorFromHex("#80ff00")
	if err != nil {
		t.Fatal(err)
	}

	img, err := export.New(4, 4, nil).Export(s, &tint)
	if err != nil {
		t.Fatal(err)
	}
	checkPixel(t, img, 2, 2, color.RGBA{0x80, 0xff, 0x00, 255})
}

func TestExportIgnoresSelection(t *testing.T) {
	s := scene.New()
	s.AddImage(solid(20, 20, color.RGBA{0, 255, 0, 255}))
	s.Images[0].X, s.Images[0].Y = 10, 10
	s.Select(scene.SelectImage(0))

	img, err := export.New(64, 64, nil).Export(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Top-left corner of the image after the flip: (10, 63-10). A handle
	// would paint white there.
	checkPixel(t, img, 11, 52, color.RGBA{0, 255, 0, 255})
}

func TestApplyWithoutMaterial(t *testing.T) {
	v := viewer.NewMemory()
	_, err := export.New(4, 4, nil).Apply(context.Background(), v, scene.New(), nil)
	if !errors.Is(err, export.ErrNoMaterial) {
		t.Fatalf("err = %v, want ErrNoMaterial", err)
	}
	if n := len(v.Textures()); n != 0 {
		t.Errorf("created %d textures, want 0", n)
	}
}

func TestApplyCreatesOrReplacesSlot(t *testing.T) {
	tests := []struct {
		name     string
		material *viewer.Material
	}{
		{"creates slot", viewer.NewMaterial("body")},
		{"replaces slot", viewer.NewMaterial("body").WithTexture(&viewer.Texture{ID: "old"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viewer.NewMemory(tt.material, viewer.NewMaterial("trim"))
			s := scene.New()
			s.SetBase(scene.BaseTexture{Img: solid(8, 8, color.RGBA{10, 20, 30, 255})})

			tex, err := export.New(32, 16, nil).Apply(context.Background(), v, s, nil)
			if err != nil {
				t.Fatal(err)
			}
			got, ok := tt.material.BaseColor()
			if !ok || got != tex {
				t.Fatalf("base color = %v, want %v", got, tex)
			}
			if b := got.Img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
				t.Errorf("texture size = %v, want 32x16", b)
			}
			if _, ok := v.Materials()[1].PBR().BaseColorFactor(); ok {
				t.Error("second material unexpectedly has a factor")
			}
			if trim, _ := v.Material(1); trim.BaseColorTexture() != nil {
				t.Error("second material was modified")
			}
		})
	}
}

func TestLiveTint(t *testing.T) {
	if _, ok := export.LiveTint(viewer.NewMemory()); ok {
		t.Error("empty viewer reported a tint")
	}
	f := scene.Factor{0.5, 0.25, 1, 1}
	v := viewer.NewMemory(viewer.NewMaterial("m").WithFactor(f))
	got, ok := export.LiveTint(v)
	if !ok || got != f {
		t.Errorf("LiveTint = %v, %v; want %v", got, ok, f)
	}
}
