package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ha1tch/deluxetex/internal/scene"
)

// families maps CSS-like family names to the embedded Go fonts.
var families = map[string][]byte{
	"arial":           goregular.TTF,
	"helvetica":       goregular.TTF,
	"verdana":         goregular.TTF,
	"sans-serif":      goregular.TTF,
	"courier new":     gomono.TTF,
	"monospace":       gomono.TTF,
	"times new roman": gomedium.TTF,
	"georgia":         gomedium.TTF,
	"serif":           gomedium.TTF,
	"impact":          gobold.TTF,
	"cursive":         goitalic.TTF,
}

type faceKey struct {
	family string
	size   int
}

// Fonts resolves font descriptors to gg faces. Unknown families fall back
// to Go Regular. Safe for concurrent use.
type Fonts struct {
	mu      sync.Mutex
	sources map[string]*text.FontSource
	faces   map[faceKey]text.Face
}

// NewFonts returns an empty font registry.
func NewFonts() *Fonts {
	return &Fonts{
		sources: make(map[string]*text.FontSource),
		faces:   make(map[faceKey]text.Face),
	}
}

// Face returns the face for f, parsing the backing font on first use.
func (fs *Fonts) Face(f scene.Font) (text.Face, error) {
	family := strings.ToLower(strings.TrimSpace(f.Family))
	data, ok := families[family]
	if !ok {
		family = "arial"
		data = goregular.TTF
	}
	size := f.Size
	if size <= 0 {
		size = scene.DefaultFont.Size
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	key := faceKey{family: family, size: size}
	if face, ok := fs.faces[key]; ok {
		return face, nil
	}
	src, ok := fs.sources[family]
	if !ok {
		var err error
		src, err = text.NewFontSource(data)
		if err != nil {
			return nil, fmt.Errorf("render: load font %q: %w", f.Family, err)
		}
		fs.sources[family] = src
	}
	face := src.Face(float64(size))
	fs.faces[key] = face
	return face, nil
}

// Measure returns the advance width of t and its box height, which is the
// font pixel size.
func (fs *Fonts) Measure(t *scene.TextItem) (w, h float64) {
	h = float64(t.Font.Size)
	face, err := fs.Face(t.Font)
	if err != nil {
		return 0, h
	}
	return face.Advance(t.Text), h
}
