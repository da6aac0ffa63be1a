package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ha1tch/deluxetex/internal/scene"
)

// Manifest describes a bake: a model (or a bare base texture), an
// optional swatch tint, and the overlays to composite.
type Manifest struct {
	Model   string        `json:"model"`
	Base    string        `json:"base"`
	Swatch  string        `json:"swatch"`
	Images  []ImageEntry  `json:"images"`
	Texts   []TextEntry   `json:"texts"`
	Strokes []StrokeEntry `json:"strokes"`
}

type ImageEntry struct {
	Path   string  `json:"path"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type TextEntry struct {
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Font  string  `json:"font"`
	Color string  `json:"color"`
}

type StrokeEntry struct {
	Color  string       `json:"color"`
	Width  float64      `json:"width"`
	Points [][2]float64 `json:"points"`
}

// font returns the parsed descriptor. An empty descriptor uses family at
// the default size; a malformed one falls back to the default font.
func (t TextEntry) font(family string) scene.Font {
	if t.Font == "" {
		return scene.Font{Size: scene.DefaultFont.Size, Family: family}
	}
	return scene.ParseFontOrDefault(t.Font)
}

func (s StrokeEntry) points() []scene.Point {
	pts := make([]scene.Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = scene.Point{X: p[0], Y: p[1]}
	}
	return pts
}

// LoadManifest reads and validates a manifest. Relative paths resolve
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.Model == "" && m.Base == "" {
		return nil, errors.New("manifest needs a model or a base texture")
	}
	if m.Swatch != "" {
		if _, err := scene.FactorFromHex(m.Swatch); err != nil {
			return nil, err
		}
	}

	dir := filepath.Dir(path)
	if m.Base != "" && !filepath.IsAbs(m.Base) {
		m.Base = filepath.Join(dir, m.Base)
	}
	for i := range m.Images {
		if m.Images[i].Path == "" {
			return nil, fmt.Errorf("image %d has no path", i)
		}
		if !filepath.IsAbs(m.Images[i].Path) {
			m.Images[i].Path = filepath.Join(dir, m.Images[i].Path)
		}
	}
	return &m, nil
}
