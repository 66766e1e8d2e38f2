package gfx

import "sync"

// TextureFormat is the pixel format of a texture.
type TextureFormat uint8

const (
	TextureFormatRGBA8 TextureFormat = iota
	TextureFormatR8
	TextureFormatDepth16
)

// BytesPerPixel returns the byte size of one pixel in this format.
func (tf TextureFormat) BytesPerPixel() int32 {
	switch tf {
	case TextureFormatR8:
		return 1
	case TextureFormatDepth16:
		return 2
	default:
		return 4
	}
}

// IsDepth reports whether the format is a depth format. Depth textures are
// sampled with nearest filtering and are implicitly attachable as the depth
// buffer of a render target.
func (tf TextureFormat) IsDepth() bool {
	return tf == TextureFormatDepth16
}

// TextureFilter is the min/mag sampling filter.
type TextureFilter uint8

const (
	TextureFilterLinear TextureFilter = iota
	TextureFilterNearest
)

// TextureInfo describes a texture to be created.
type TextureInfo struct {
	Width     int32
	Height    int32
	Format    TextureFormat
	MinFilter TextureFilter
	MagFilter TextureFilter
	// Depth requests a companion depth texture when the info describes a
	// render target.
	Depth bool
	// Bytes is the optional initial pixel data. Ignored for depth formats.
	Bytes []byte
}

// TextureUpdate describes a sub-rectangle upload into an existing texture.
type TextureUpdate struct {
	XOffset int32
	YOffset int32
	Width   int32
	Height  int32
	Format  TextureFormat
	Bytes   []byte
}

// TextureRead describes a sub-rectangle readback from a texture.
type TextureRead struct {
	XOffset int32
	YOffset int32
	Width   int32
	Height  int32
	Format  TextureFormat
}

// Texture is a caller-facing handle to a backend texture.
type Texture struct {
	id   uint64
	info TextureInfo

	dropManager *DropManager
	dropOnce    sync.Once
}

func newTexture(id uint64, info TextureInfo, dm *DropManager) *Texture {
	return &Texture{id: id, info: info, dropManager: dm}
}

func (t *Texture) ID() uint64 {
	return t.id
}

func (t *Texture) Width() int32 {
	return t.info.Width
}

func (t *Texture) Height() int32 {
	return t.info.Height
}

func (t *Texture) Format() TextureFormat {
	return t.info.Format
}

func (t *Texture) Info() TextureInfo {
	return t.info
}

// Drop schedules the backend texture for deletion. Safe to call from any
// goroutine and idempotent.
func (t *Texture) Drop() {
	t.dropOnce.Do(func() {
		t.dropManager.Push(ResourceID{Kind: ResourceKindTexture, ID: t.id})
	})
}
