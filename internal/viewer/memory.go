package viewer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/google/uuid"

	"github.com/ha1tch/deluxetex/internal/export"
	"github.com/ha1tch/deluxetex/internal/scene"
)

// Texture is a decoded texture held in memory.
type Texture struct {
	ID  string
	PNG []byte
	Img image.Image
}

func (t *Texture) Name() string { return t.ID }

type slot struct {
	tex export.Texture
}

func (s *slot) Texture() export.Texture     { return s.tex }
func (s *slot) SetTexture(t export.Texture) { s.tex = t }

// Material is an in-memory material with an optional tint and an optional
// base-color texture slot.
type Material struct {
	name   string
	factor *scene.Factor
	slot   *slot
}

// NewMaterial returns a material without tint or texture slot.
func NewMaterial(name string) *Material {
	return &Material{name: name}
}

// WithFactor sets the base-color factor.
func (m *Material) WithFactor(f scene.Factor) *Material {
	m.factor = &f
	return m
}

// WithTexture gives the material a base-color slot holding t.
func (m *Material) WithTexture(t export.Texture) *Material {
	m.slot = &slot{tex: t}
	return m
}

func (m *Material) Name() string    { return m.name }
func (m *Material) PBR() export.PBR { return m }

func (m *Material) BaseColorFactor() (scene.Factor, bool) {
	if m.factor == nil {
		return scene.Factor{}, false
	}
	return *m.factor, true
}

func (m *Material) BaseColorTexture() export.TextureSlot {
	if m.slot == nil {
		return nil
	}
	return m.slot
}

func (m *Material) SetBaseColorTexture(t export.Texture) {
	m.slot = &slot{tex: t}
}

// BaseColor returns the texture bound to the base-color slot, if any.
func (m *Material) BaseColor() (*Texture, bool) {
	if m.slot == nil {
		return nil, false
	}
	t, ok := m.slot.tex.(*Texture)
	return t, ok
}

// Memory is a viewer that keeps models and textures in memory.
type Memory struct {
	mu        sync.Mutex
	model     Model
	materials []*Material
	textures  []*Texture
}

// NewMemory returns a viewer whose active model has the given materials.
func NewMemory(materials ...*Material) *Memory {
	return &Memory{materials: materials}
}

// Load switches the active model. Materials are kept.
func (v *Memory) Load(m Model) {
	v.mu.Lock()
	v.model = m
	v.mu.Unlock()
}

// Model returns the active model.
func (v *Memory) Model() Model {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.model
}

// Materials implements export.Viewer.
func (v *Memory) Materials() []export.Material {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]export.Material, len(v.materials))
	for i, m := range v.materials {
		out[i] = m
	}
	return out
}

// Material returns the i-th concrete material.
func (v *Memory) Material(i int) (*Material, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i < 0 || i >= len(v.materials) {
		return nil, false
	}
	return v.materials[i], true
}

// CreateTexture implements export.Viewer. The payload must be a PNG.
func (v *Memory) CreateTexture(ctx context.Context, data []byte) (export.Texture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("viewer: decode texture: %w", err)
	}
	t := &Texture{
		ID:  uuid.NewString(),
		PNG: append([]byte(nil), data...),
		Img: img,
	}
	v.mu.Lock()
	v.textures = append(v.textures, t)
	v.mu.Unlock()
	return t, nil
}

// Textures returns every texture created so far, oldest first.
func (v *Memory) Textures() []*Texture {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]*Texture(nil), v.textures...)
}
