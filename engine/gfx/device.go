// Package gfx exposes a backend-agnostic GPU rendering abstraction: typed
// handles for pipelines, buffers, textures and render targets, a recorded
// command protocol, and the Device facade that dispatches both to a
// concrete rasterization backend.
package gfx

import (
	"sync"

	"github.com/google/uuid"

	"github.com/spaghettifunk/prisma/engine/core"
)

// ResourceKind routes a dropped id to the correct backend resource table.
type ResourceKind uint8

const (
	ResourceKindBuffer ResourceKind = iota
	ResourceKindTexture
	ResourceKindPipeline
	ResourceKindRenderTexture
)

func (rk ResourceKind) String() string {
	switch rk {
	case ResourceKindBuffer:
		return "buffer"
	case ResourceKindTexture:
		return "texture"
	case ResourceKindPipeline:
		return "pipeline"
	case ResourceKindRenderTexture:
		return "render_texture"
	default:
		return "unknown"
	}
}

// ResourceID identifies one backend resource pending deletion.
type ResourceID struct {
	Kind ResourceKind
	ID   uint64
}

// DropManager collects the ids of handles that went out of scope. Handles
// may be dropped from any goroutine; the queue is drained only by
// Device.Clean on the thread owning the rendering context, so in-flight
// command execution is never invalidated by a concurrent deletion.
type DropManager struct {
	mu      sync.Mutex
	dropped []ResourceID
}

func NewDropManager() *DropManager {
	return &DropManager{}
}

// Push enqueues one id for deferred deletion.
func (dm *DropManager) Push(id ResourceID) {
	dm.mu.Lock()
	dm.dropped = append(dm.dropped, id)
	dm.mu.Unlock()
}

// Drain atomically takes the whole pending batch, leaving the queue empty.
func (dm *DropManager) Drain() []ResourceID {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	if len(dm.dropped) == 0 {
		return nil
	}
	batch := dm.dropped
	dm.dropped = nil
	return batch
}

// DeviceBackend is the contract a concrete rasterizer implements. Every
// create call returns a backend-assigned id that stays stable and unique
// within its kind for the lifetime of the backend instance.
type DeviceBackend interface {
	Limits() Limits

	CreatePipeline(vertexSource, fragmentSource []byte, attrs []VertexAttr, options PipelineOptions) (uint64, error)
	CreateVertexBuffer(info *VertexInfo) (uint64, error)
	CreateIndexBuffer() (uint64, error)
	CreateUniformBuffer(slot uint32, name string) (uint64, error)
	SetBufferData(id uint64, data []byte)

	CreateTexture(info TextureInfo) (uint64, error)
	CreateRenderTexture(textureID uint64, info TextureInfo) (uint64, error)
	UpdateTexture(id uint64, opts TextureUpdate) error
	ReadPixels(id uint64, dst []byte, opts TextureRead) error

	// Render executes the command list in recorded order, against the
	// default surface or, when target is non nil, a render texture id.
	Render(commands []Command, target *uint64)

	// Clean deletes the given batch of resources by kind.
	Clean(toClean []ResourceID)

	SetSize(width, height int32)
	SetDPI(scale float64)
	SwapBuffers()
}

// Device owns the backend and every resource created through it. All
// methods except handle drops must run on the thread that owns the
// rendering context.
type Device struct {
	id          uuid.UUID
	width       int32
	height      int32
	dpi         float64
	backend     DeviceBackend
	dropManager *DropManager
}

func NewDevice(backend DeviceBackend) *Device {
	return &Device{
		id:          uuid.New(),
		width:       1,
		height:      1,
		dpi:         1.0,
		backend:     backend,
		dropManager: NewDropManager(),
	}
}

func (d *Device) ID() uuid.UUID {
	return d.id
}

func (d *Device) Limits() Limits {
	return d.backend.Limits()
}

func (d *Device) Size() (int32, int32) {
	return d.width, d.height
}

func (d *Device) SetSize(width, height int32) {
	d.width = width
	d.height = height
	d.backend.SetSize(width, height)
}

func (d *Device) DPI() float64 {
	return d.dpi
}

func (d *Device) SetDPI(scale float64) {
	d.dpi = scale
	d.backend.SetDPI(scale)
}

// CreateCommandEncoder returns an encoder sized to the current surface.
func (d *Device) CreateCommandEncoder() *CommandEncoder {
	return NewCommandEncoder(d.width, d.height)
}

// Render executes the command list against the default surface.
func (d *Device) Render(commands []Command) {
	d.backend.Render(commands, nil)
}

// RenderTo executes the command list against an offscreen render target.
func (d *Device) RenderTo(target *RenderTexture, commands []Command) {
	id := target.ID()
	d.backend.Render(commands, &id)
}

// SetBufferData uploads raw bytes into the buffer. The backend reallocates
// when the length changes and updates in place otherwise.
func (d *Device) SetBufferData(buffer *Buffer, data []byte) {
	d.backend.SetBufferData(buffer.ID(), data)
}

// SetBufferDataF32 uploads a float32 slice, the common case for vertex and
// uniform payloads.
func (d *Device) SetBufferDataF32(buffer *Buffer, data []float32) {
	d.backend.SetBufferData(buffer.ID(), f32Bytes(data))
}

// SetBufferDataU32 uploads a uint32 slice, the common case for indices.
func (d *Device) SetBufferDataU32(buffer *Buffer, data []uint32) {
	d.backend.SetBufferData(buffer.ID(), u32Bytes(data))
}

// UpdateTexture uploads a sub-rectangle of pixels into the texture.
func (d *Device) UpdateTexture(texture *Texture, opts TextureUpdate) error {
	return d.backend.UpdateTexture(texture.ID(), opts)
}

// ReadPixels reads a sub-rectangle of pixels from the texture into dst.
func (d *Device) ReadPixels(texture *Texture, dst []byte, opts TextureRead) error {
	return d.backend.ReadPixels(texture.ID(), dst, opts)
}

// SwapBuffers presents the default surface.
func (d *Device) SwapBuffers() {
	d.backend.SwapBuffers()
}

// Clean hands every accumulated drop to the backend for deletion and
// clears the queue. No-op when nothing was dropped. Must run on the
// rendering thread, typically once per frame.
func (d *Device) Clean() {
	batch := d.dropManager.Drain()
	if len(batch) == 0 {
		return
	}
	core.LogDebug("device %s: cleaning %d dropped resources", d.id, len(batch))
	d.backend.Clean(batch)
}
