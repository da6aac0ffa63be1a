package render

import (
	"image"
	"reflect"

	"github.com/gogpu/gg"

	"github.com/ha1tch/deluxetex/internal/scene"
)

// ImageCache keeps the gg buffers of placed images between redraws so a
// drag does not reconvert every image on each pointer move. A nil cache
// converts on every call. Not safe for concurrent use.
type ImageCache struct {
	bufs map[image.Image]*gg.ImageBuf
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{bufs: make(map[image.Image]*gg.ImageBuf)}
}

// Buf returns the buffer for img, converting it on first use.
func (c *ImageCache) Buf(img image.Image) *gg.ImageBuf {
	if c == nil || !reflect.TypeOf(img).Comparable() {
		return gg.ImageBufFromImage(img)
	}
	if buf, ok := c.bufs[img]; ok {
		return buf
	}
	buf := gg.ImageBufFromImage(img)
	c.bufs[img] = buf
	return buf
}

// Retain drops every buffer whose image is no longer placed.
func (c *ImageCache) Retain(images []scene.PlacedImage) {
	if c == nil || len(c.bufs) == 0 {
		return
	}
	live := make(map[image.Image]bool, len(images))
	for _, it := range images {
		if it.Img != nil && reflect.TypeOf(it.Img).Comparable() {
			live[it.Img] = true
		}
	}
	for img := range c.bufs {
		if !live[img] {
			delete(c.bufs, img)
		}
	}
}

// Len returns the number of cached buffers.
func (c *ImageCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.bufs)
}
