package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/ha1tch/deluxetex/internal/export"
	"github.com/ha1tch/deluxetex/internal/scene"
	"github.com/ha1tch/deluxetex/internal/viewer"
)

var errBadTexture = errors.New("texture could not be uploaded")

// Texture uploaded to the GPU
type rlTexture struct {
	name string
	tex  rl.Texture2D
}

func (t *rlTexture) Name() string { return t.name }

// Albedo map of a raylib material
type rlSlot struct {
	mat *rl.Material
}

func (s rlSlot) Texture() export.Texture {
	return &rlTexture{name: "albedo", tex: s.mat.GetMap(rl.MapAlbedo).Texture}
}

func (s rlSlot) SetTexture(t export.Texture) {
	if rt, ok := t.(*rlTexture); ok {
		rl.SetMaterialTexture(s.mat, rl.MapAlbedo, rt.tex)
	}
}

type rlMaterial struct {
	index int
	mat   *rl.Material
}

func (m *rlMaterial) Name() string    { return fmt.Sprintf("material%d", m.index) }
func (m *rlMaterial) PBR() export.PBR { return m }

// A white albedo color is raylib's "no tint".
func (m *rlMaterial) BaseColorFactor() (scene.Factor, bool) {
	c := m.mat.GetMap(rl.MapAlbedo).Color
	if c == rl.White {
		return scene.Factor{}, false
	}
	return scene.Factor{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}, true
}

func (m *rlMaterial) BaseColorTexture() export.TextureSlot {
	if m.mat.GetMap(rl.MapAlbedo).Texture.ID == 0 {
		return nil
	}
	return rlSlot{mat: m.mat}
}

func (m *rlMaterial) SetBaseColorTexture(t export.Texture) {
	rlSlot{mat: m.mat}.SetTexture(t)
}

// RLViewer shows one catalog model and lets the editor bake textures into
// its materials. All methods must run on the window's goroutine.
type RLViewer struct {
	model    rl.Model
	loaded   bool
	textures []rl.Texture2D
}

// Load replaces the shown model. A missing model file falls back to a cube
// so textures can still be previewed.
func (v *RLViewer) Load(m viewer.Model) {
	v.Unload()

	if _, err := os.Stat(m.Path); m.Path != "" && err == nil {
		v.model = rl.LoadModel(m.Path)
	} else {
		mesh := rl.GenMeshCube(2, 2, 2)
		v.model = rl.LoadModelFromMesh(mesh)
	}
	v.loaded = true

	if m.Texture == "" {
		return
	}
	if _, err := os.Stat(m.Texture); err != nil {
		logger.Warn("model texture missing", "model", m.Name, "texture", m.Texture)
		return
	}
	tex := rl.LoadTexture(m.Texture)
	v.textures = append(v.textures, tex)
	mats := v.model.GetMaterials()
	if len(mats) > 0 {
		rl.SetMaterialTexture(&mats[0], rl.MapAlbedo, tex)
	}
}

func (v *RLViewer) Materials() []export.Material {
	if !v.loaded {
		return nil
	}
	mats := v.model.GetMaterials()
	out := make([]export.Material, len(mats))
	for i := range mats {
		out[i] = &rlMaterial{index: i, mat: &mats[i]}
	}
	return out
}

func (v *RLViewer) CreateTexture(ctx context.Context, png []byte) (export.Texture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img := rl.LoadImageFromMemory(".png", png, int32(len(png)))
	if img.Data == nil || img.Width == 0 || img.Height == 0 {
		rl.UnloadImage(img)
		return nil, errBadTexture
	}
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if tex.ID == 0 {
		return nil, errBadTexture
	}
	v.textures = append(v.textures, tex)
	return &rlTexture{name: uuid.NewString(), tex: tex}, nil
}

// Draw renders the model at the origin.
func (v *RLViewer) Draw() {
	if !v.loaded {
		return
	}
	rl.DrawModel(v.model, rl.NewVector3(0, 0, 0), 1, rl.White)
}

// Unload frees the model and every texture created for it.
func (v *RLViewer) Unload() {
	if !v.loaded {
		return
	}
	rl.UnloadModel(v.model)
	for _, t := range v.textures {
		rl.UnloadTexture(t)
	}
	v.textures = nil
	v.loaded = false
}
