package gfx

import "sync"

// VertexFormat describes the type and arity of a single vertex attribute.
type VertexFormat uint8

const (
	VertexFormatFloat32 VertexFormat = iota
	VertexFormatFloat32x2
	VertexFormatFloat32x3
	VertexFormatFloat32x4
	VertexFormatUint8
	VertexFormatUint8x2
	VertexFormatUint8x3
	VertexFormatUint8x4
	// Normalized variants map the 0-255 byte range to 0.0-1.0 in the shader.
	VertexFormatUint8Norm
	VertexFormatUint8x2Norm
	VertexFormatUint8x3Norm
	VertexFormatUint8x4Norm
)

// Components returns the number of scalar components of the format.
func (vf VertexFormat) Components() int32 {
	switch vf {
	case VertexFormatFloat32, VertexFormatUint8, VertexFormatUint8Norm:
		return 1
	case VertexFormatFloat32x2, VertexFormatUint8x2, VertexFormatUint8x2Norm:
		return 2
	case VertexFormatFloat32x3, VertexFormatUint8x3, VertexFormatUint8x3Norm:
		return 3
	default:
		return 4
	}
}

// Bytes returns the total byte size of one attribute of this format.
func (vf VertexFormat) Bytes() int32 {
	switch vf {
	case VertexFormatFloat32, VertexFormatFloat32x2, VertexFormatFloat32x3, VertexFormatFloat32x4:
		return vf.Components() * 4
	default:
		return vf.Components()
	}
}

// Normalized reports whether the attribute values are normalized on upload.
func (vf VertexFormat) Normalized() bool {
	switch vf {
	case VertexFormatUint8Norm, VertexFormatUint8x2Norm, VertexFormatUint8x3Norm, VertexFormatUint8x4Norm:
		return true
	default:
		return false
	}
}

// VertexStepMode controls whether an attribute advances per vertex or per instance.
type VertexStepMode uint8

const (
	VertexStepModeVertex VertexStepMode = iota
	VertexStepModeInstance
)

// VertexAttr binds a shader attribute location to a format.
type VertexAttr struct {
	Location uint32
	Format   VertexFormat
}

// VertexInfo collects the attribute layout and step mode of a vertex buffer.
// Attributes are interleaved in declaration order.
type VertexInfo struct {
	Attrs    []VertexAttr
	StepMode VertexStepMode
}

func NewVertexInfo() *VertexInfo {
	return &VertexInfo{}
}

func (vi *VertexInfo) Attr(location uint32, format VertexFormat) *VertexInfo {
	vi.Attrs = append(vi.Attrs, VertexAttr{Location: location, Format: format})
	return vi
}

func (vi *VertexInfo) WithStepMode(mode VertexStepMode) *VertexInfo {
	vi.StepMode = mode
	return vi
}

// Stride returns the byte distance between two consecutive vertices,
// the sum of all attribute sizes in declaration order.
func (vi *VertexInfo) Stride() int32 {
	var stride int32
	for _, a := range vi.Attrs {
		stride += a.Format.Bytes()
	}
	return stride
}

// BufferUsage tags the role a buffer plays in the pipeline.
type BufferUsage uint8

const (
	BufferUsageVertex BufferUsage = iota
	BufferUsageIndex
	BufferUsageUniform
)

// Buffer is a caller-facing handle to a backend buffer object.
// Dropping it enqueues the backend id on the drop manager; the actual
// deallocation happens on the next Device.Clean call.
type Buffer struct {
	id          uint64
	usage       BufferUsage
	uniformSlot uint32
	info        *VertexInfo

	dropManager *DropManager
	dropOnce    sync.Once
}

func newBuffer(id uint64, usage BufferUsage, slot uint32, info *VertexInfo, dm *DropManager) *Buffer {
	return &Buffer{
		id:          id,
		usage:       usage,
		uniformSlot: slot,
		info:        info,
		dropManager: dm,
	}
}

func (b *Buffer) ID() uint64 {
	return b.id
}

func (b *Buffer) Usage() BufferUsage {
	return b.usage
}

// UniformSlot returns the binding slot of a uniform buffer. Zero for
// vertex and index buffers.
func (b *Buffer) UniformSlot() uint32 {
	return b.uniformSlot
}

// VertexInfo returns the attribute layout of a vertex buffer, nil otherwise.
func (b *Buffer) VertexInfo() *VertexInfo {
	return b.info
}

// Drop schedules the backend buffer for deletion. Safe to call from any
// goroutine and idempotent.
func (b *Buffer) Drop() {
	b.dropOnce.Do(func() {
		b.dropManager.Push(ResourceID{Kind: ResourceKindBuffer, ID: b.id})
	})
}
