package export

import (
	"context"

	"github.com/ha1tch/deluxetex/internal/scene"
)

// Texture is a texture created by the viewer.
type Texture interface {
	Name() string
}

// TextureSlot is an existing base-color texture binding on a material.
type TextureSlot interface {
	Texture() Texture
	SetTexture(Texture)
}

// PBR is a material's metallic-roughness descriptor.
type PBR interface {
	// BaseColorFactor returns the tint factor, if the material has one.
	BaseColorFactor() (scene.Factor, bool)
	// BaseColorTexture returns the base-color slot, or nil if absent.
	BaseColorTexture() TextureSlot
	// SetBaseColorTexture creates the base-color slot holding t.
	SetBaseColorTexture(t Texture)
}

// Material is one material of the active model.
type Material interface {
	Name() string
	PBR() PBR
}

// Viewer is the 3D model viewer the editor bakes textures into.
type Viewer interface {
	// Materials lists the active model's materials. It is empty while
	// no model is loaded.
	Materials() []Material
	// CreateTexture builds a texture from an encoded PNG.
	CreateTexture(ctx context.Context, png []byte) (Texture, error)
}

// LiveTint returns the base-color factor of the first material, if any.
func LiveTint(v Viewer) (scene.Factor, bool) {
	if v == nil {
		return scene.Factor{}, false
	}
	mats := v.Materials()
	if len(mats) == 0 {
		return scene.Factor{}, false
	}
	return mats[0].PBR().BaseColorFactor()
}
