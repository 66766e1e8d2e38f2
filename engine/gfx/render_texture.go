package gfx

import "sync"

// RenderTexture is a caller-facing handle to an offscreen render target.
// It owns exactly one color texture and, on the backend side, at most one
// companion depth texture.
type RenderTexture struct {
	id      uint64
	texture *Texture

	dropManager *DropManager
	dropOnce    sync.Once
}

func newRenderTexture(id uint64, texture *Texture, dm *DropManager) *RenderTexture {
	return &RenderTexture{id: id, texture: texture, dropManager: dm}
}

func (rt *RenderTexture) ID() uint64 {
	return rt.id
}

// Texture returns the color attachment. Binding it samples what was last
// rendered into the target.
func (rt *RenderTexture) Texture() *Texture {
	return rt.texture
}

func (rt *RenderTexture) Width() int32 {
	return rt.texture.Width()
}

func (rt *RenderTexture) Height() int32 {
	return rt.texture.Height()
}

// Drop schedules the render target and its color texture for deletion.
// Safe to call from any goroutine and idempotent.
func (rt *RenderTexture) Drop() {
	rt.dropOnce.Do(func() {
		rt.dropManager.Push(ResourceID{Kind: ResourceKindRenderTexture, ID: rt.id})
		rt.texture.Drop()
	})
}
