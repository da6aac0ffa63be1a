package viewer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "models.json")
	data := `{"models": [
		{"name": "cube", "model": "cube.glb", "texture": "tex/cube.png"},
		{"name": "abs", "model": "/m/abs.glb", "texture": "/m/abs.png"}
	]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	cube, err := c.Find("cube")
	if err != nil {
		t.Fatal(err)
	}
	if cube.Texture != filepath.Join(dir, "tex", "cube.png") || cube.Path != filepath.Join(dir, "cube.glb") {
		t.Errorf("cube = %+v", cube)
	}
	abs, _ := c.Find("abs")
	if abs.Texture != "/m/abs.png" {
		t.Errorf("absolute path rewritten: %q", abs.Texture)
	}
	if _, err := c.Find("teapot"); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("err = %v, want ErrUnknownModel", err)
	}
}

func TestLoadCatalogShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"array", `[{"name": "cube", "model": "cube.glb", "texture": "cube.png"}]`},
		{"array with whitespace", "\n\t [{\"name\": \"cube\", \"model\": \"cube.glb\", \"texture\": \"cube.png\"}]\n"},
		{"object", `{"models": [{"name": "cube", "model": "cube.glb", "texture": "cube.png"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "models.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			c, err := LoadCatalog(path)
			if err != nil {
				t.Fatalf("LoadCatalog: %v", err)
			}
			m, err := c.Find("cube")
			if err != nil {
				t.Fatal(err)
			}
			if m.Texture != filepath.Join(dir, "cube.png") || m.Path != filepath.Join(dir, "cube.glb") {
				t.Errorf("cube = %+v", m)
			}
		})
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file loaded")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Error("malformed file loaded")
	}
}

func TestCatalogAtWraps(t *testing.T) {
	c := &Catalog{Models: []Model{{Name: "a"}, {Name: "b"}, {Name: "c"}}}
	tests := []struct {
		i    int
		want string
	}{{0, "a"}, {2, "c"}, {3, "a"}, {-1, "c"}, {-4, "c"}}
	for _, tt := range tests {
		if m, ok := c.At(tt.i); !ok || m.Name != tt.want {
			t.Errorf("At(%d) = %q, %v; want %q", tt.i, m.Name, ok, tt.want)
		}
	}
	if _, ok := (&Catalog{}).At(0); ok {
		t.Error("empty catalog returned a model")
	}
}
