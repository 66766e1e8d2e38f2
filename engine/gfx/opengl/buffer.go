package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/prisma/engine/gfx"
)

// innerBuffer owns one native buffer object. Vertex buffers remember the
// last pipeline they were bound under so attribute pointers are only
// re-specified when the (buffer, pipeline) pair changes; uniform buffers
// remember whether their block was already bound to the program.
type innerBuffer struct {
	buffer uint32

	usage       gfx.BufferUsage
	attrs       *vertexAttributes
	uniformSlot uint32
	uniformName string

	blockBound   bool
	gpuSize      int
	drawTarget   uint32
	lastPipeline uint64
}

func newInnerBuffer(usage gfx.BufferUsage, attrs *vertexAttributes, slot uint32, name string) *innerBuffer {
	var buffer uint32
	gl.GenBuffers(1, &buffer)

	var target uint32
	switch usage {
	case gfx.BufferUsageIndex:
		target = gl.ELEMENT_ARRAY_BUFFER
	case gfx.BufferUsageUniform:
		target = gl.UNIFORM_BUFFER
	default:
		target = gl.ARRAY_BUFFER
	}

	return &innerBuffer{
		buffer:      buffer,
		usage:       usage,
		attrs:       attrs,
		uniformSlot: slot,
		uniformName: name,
		drawTarget:  target,
	}
}

// bind binds the native buffer. When pipelineID is non zero and differs
// from the pipeline this buffer last saw, vertex attribute pointers are
// re-enabled for the new pipeline's layout.
func (b *innerBuffer) bind(pipelineID uint64) {
	pipelineChanged := pipelineID != 0 && pipelineID != b.lastPipeline
	if pipelineChanged {
		b.lastPipeline = pipelineID
	}

	gl.BindBuffer(b.drawTarget, b.buffer)

	switch b.usage {
	case gfx.BufferUsageVertex:
		if pipelineChanged && b.attrs != nil {
			b.attrs.enable()
		}
	case gfx.BufferUsageUniform:
		gl.BindBufferBase(gl.UNIFORM_BUFFER, b.uniformSlot, b.buffer)
	}
}

// bindUniformBlock resolves the buffer's named block against the program
// and binds it to the buffer's slot. Called once per buffer; repeated
// binds are skipped via blockBound.
func (b *innerBuffer) bindUniformBlock(pipeline *innerPipeline) {
	b.blockBound = true

	index := gl.GetUniformBlockIndex(pipeline.program, gl.Str(b.uniformName+"\x00"))
	if index != gl.INVALID_INDEX {
		gl.UniformBlockBinding(pipeline.program, index, b.uniformSlot)
	}
}

// update uploads data, reallocating the store only when the size changed.
func (b *innerBuffer) update(data []byte) {
	if len(data) == 0 {
		return
	}
	if b.gpuSize != len(data) {
		b.gpuSize = len(data)
		gl.BufferData(b.drawTarget, len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferSubData(b.drawTarget, 0, len(data), gl.Ptr(data))
}

func (b *innerBuffer) clean() {
	gl.DeleteBuffers(1, &b.buffer)
}
