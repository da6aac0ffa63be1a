// Package viewer holds the model catalog and an in-memory implementation
// of the viewer contract used by headless baking and tests.
package viewer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnknownModel is returned when a model name is not in the catalog.
var ErrUnknownModel = errors.New("viewer: unknown model")

// Model is one selectable model and the texture its material declares.
type Model struct {
	Name    string `json:"name"`
	Path    string `json:"model"`
	Texture string `json:"texture"`
}

// Catalog is the ordered list of selectable models.
type Catalog struct {
	Models []Model `json:"models"`
}

// LoadCatalog reads a catalog JSON file, either a bare array of models or
// an object with a "models" array. Relative model and texture paths are
// resolved against the catalog's directory.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("viewer: read catalog: %w", err)
	}
	var c Catalog
	if data = bytes.TrimSpace(data); len(data) > 0 && data[0] == '[' {
		err = json.Unmarshal(data, &c.Models)
	} else {
		err = json.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("viewer: parse catalog %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range c.Models {
		m := &c.Models[i]
		if m.Path != "" && !filepath.IsAbs(m.Path) {
			m.Path = filepath.Join(dir, m.Path)
		}
		if m.Texture != "" && !filepath.IsAbs(m.Texture) {
			m.Texture = filepath.Join(dir, m.Texture)
		}
	}
	return &c, nil
}

// Find returns the model called name.
func (c *Catalog) Find(name string) (Model, error) {
	for _, m := range c.Models {
		if m.Name == name {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// At returns the i-th model, wrapping around in both directions.
func (c *Catalog) At(i int) (Model, bool) {
	n := len(c.Models)
	if n == 0 {
		return Model{}, false
	}
	return c.Models[((i%n)+n)%n], true
}
