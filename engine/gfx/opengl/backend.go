// Package opengl implements the gfx.DeviceBackend capability interface on
// top of OpenGL 4.1 core, loaded through a function-pointer resolver
// supplied by the platform layer.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/gfx"
)

// ProcAddrFunc resolves a native GL function pointer by name. The platform
// layer supplies one at backend construction (glfw.GetProcAddress).
type ProcAddrFunc func(name string) unsafe.Pointer

// Backend is the concrete OpenGL rasterizer. Ids are per-kind
// monotonically increasing counters; ids handed to Clean are never reused.
// All methods must run on the thread that owns the GL context.
type Backend struct {
	pipelineCount     uint64
	bufferCount       uint64
	textureCount      uint64
	renderTargetCount uint64

	pipelines     map[uint64]*innerPipeline
	buffers       map[uint64]*innerBuffer
	textures      map[uint64]*innerTexture
	renderTargets map[uint64]*innerRenderTexture

	width  int32
	height int32
	dpi    float32

	usingIndices    bool
	currentPipeline uint64
	currentUniforms []int32

	limits gfx.Limits

	swap func()
}

var _ gfx.DeviceBackend = (*Backend)(nil)

// New initializes the GL bindings through the given loader and queries the
// device limits. swap presents the default surface and may be nil for
// offscreen use.
func New(loader ProcAddrFunc, swap func()) (*Backend, error) {
	if err := gl.InitWithProcAddrFunc(loader); err != nil {
		return nil, fmt.Errorf("failed to load OpenGL functions: %w", err)
	}

	var limits gfx.Limits
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &limits.MaxTextureSize)
	gl.GetIntegerv(gl.MAX_UNIFORM_BLOCK_SIZE, &limits.MaxUniformBlockSize)

	core.LogInfo("opengl backend ready: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Backend{
		pipelines:     make(map[uint64]*innerPipeline),
		buffers:       make(map[uint64]*innerBuffer),
		textures:      make(map[uint64]*innerTexture),
		renderTargets: make(map[uint64]*innerRenderTexture),
		dpi:           1.0,
		limits:        limits,
		swap:          swap,
	}, nil
}

func (b *Backend) Limits() gfx.Limits {
	return b.limits
}

func (b *Backend) SetSize(width, height int32) {
	b.width = width
	b.height = height
}

func (b *Backend) SetDPI(scale float64) {
	b.dpi = float32(scale)
}

func (b *Backend) SwapBuffers() {
	if b.swap != nil {
		b.swap()
	}
}

func (b *Backend) CreatePipeline(vertexSource, fragmentSource []byte, attrs []gfx.VertexAttr, options gfx.PipelineOptions) (uint64, error) {
	pipeline, err := newInnerPipeline(string(vertexSource), string(fragmentSource))
	if err != nil {
		return 0, err
	}
	pipeline.bind(options)

	b.pipelineCount++
	b.pipelines[b.pipelineCount] = pipeline
	b.setPipeline(b.pipelineCount, options)
	return b.pipelineCount, nil
}

func (b *Backend) CreateVertexBuffer(info *gfx.VertexInfo) (uint64, error) {
	stride, attrs := buildAttributes(info.Attrs)
	buffer := newInnerBuffer(gfx.BufferUsageVertex, &vertexAttributes{
		stride:   stride,
		attrs:    attrs,
		stepMode: info.StepMode,
	}, 0, "")
	buffer.bind(b.currentPipeline)

	b.bufferCount++
	b.buffers[b.bufferCount] = buffer
	return b.bufferCount, nil
}

func (b *Backend) CreateIndexBuffer() (uint64, error) {
	buffer := newInnerBuffer(gfx.BufferUsageIndex, nil, 0, "")
	buffer.bind(b.currentPipeline)

	b.bufferCount++
	b.buffers[b.bufferCount] = buffer
	return b.bufferCount, nil
}

func (b *Backend) CreateUniformBuffer(slot uint32, name string) (uint64, error) {
	buffer := newInnerBuffer(gfx.BufferUsageUniform, nil, slot, name)
	buffer.bind(b.currentPipeline)

	b.bufferCount++
	b.buffers[b.bufferCount] = buffer
	return b.bufferCount, nil
}

func (b *Backend) SetBufferData(id uint64, data []byte) {
	buffer, ok := b.buffers[id]
	if !ok {
		core.LogWarn("set_buffer_data: buffer id '%d' not found", id)
		return
	}
	buffer.bind(0)
	buffer.update(data)
}

func (b *Backend) CreateTexture(info gfx.TextureInfo) (uint64, error) {
	texture, err := newInnerTexture(info)
	if err != nil {
		return 0, err
	}

	b.textureCount++
	b.textures[b.textureCount] = texture
	return b.textureCount, nil
}

func (b *Backend) CreateRenderTexture(textureID uint64, info gfx.TextureInfo) (uint64, error) {
	texture, ok := b.textures[textureID]
	if !ok {
		return 0, fmt.Errorf("creating render target: texture id '%d': %w", textureID, ErrTextureNotFound)
	}

	rt, err := newInnerRenderTexture(texture, info)
	if err != nil {
		return 0, err
	}

	b.renderTargetCount++
	b.renderTargets[b.renderTargetCount] = rt
	return b.renderTargetCount, nil
}

func (b *Backend) UpdateTexture(id uint64, opts gfx.TextureUpdate) error {
	texture, ok := b.textures[id]
	if !ok {
		return fmt.Errorf("updating texture id '%d': %w", id, ErrTextureNotFound)
	}

	gl.BindTexture(gl.TEXTURE_2D, texture.texture)
	gl.TexSubImage2D(
		gl.TEXTURE_2D,
		0,
		opts.XOffset,
		opts.YOffset,
		opts.Width,
		opts.Height,
		glTextureFormat(opts.Format),
		gl.UNSIGNED_BYTE,
		gl.Ptr(opts.Bytes),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// ReadPixels reads a sub-rectangle through a temporary framebuffer. The
// framebuffer is torn down whether or not the read succeeds.
func (b *Backend) ReadPixels(id uint64, dst []byte, opts gfx.TextureRead) error {
	texture, ok := b.textures[id]
	if !ok {
		return fmt.Errorf("reading pixels of texture id '%d': %w", id, ErrTextureNotFound)
	}

	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, texture.texture, 0)

	defer func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.DeleteFramebuffers(1, &fbo)
	}()

	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		return ErrFramebufferIncomplete
	}

	gl.ReadPixels(opts.XOffset, opts.YOffset, opts.Width, opts.Height, glTextureFormat(opts.Format), gl.UNSIGNED_BYTE, gl.Ptr(dst))
	return nil
}

// Render interprets the command list in recorded order. Commands that
// reference an id no longer in the tables are skipped; aborting mid-frame
// would leave the target partially drawn, which is worse.
func (b *Backend) Render(commands []gfx.Command, target *uint64) {
	for i := range commands {
		cmd := &commands[i]
		switch cmd.Kind {
		case gfx.CommandBegin:
			b.begin(target, cmd.Clear)
		case gfx.CommandEnd:
			b.end()
		case gfx.CommandSetPipeline:
			b.setPipeline(cmd.ID, cmd.Options)
		case gfx.CommandBindBuffer:
			b.bindBuffer(cmd.ID)
		case gfx.CommandDraw:
			b.draw(cmd.Primitive, cmd.Offset, cmd.Count)
		case gfx.CommandDrawInstanced:
			b.drawInstanced(cmd.Primitive, cmd.Offset, cmd.Count, cmd.InstanceCount)
		case gfx.CommandBindTexture:
			b.bindTexture(cmd.ID, cmd.Slot, cmd.Location)
		case gfx.CommandSetSize:
			b.SetSize(int32(cmd.Width), int32(cmd.Height))
		case gfx.CommandSetViewport:
			b.viewport(cmd.X, cmd.Y, cmd.Width, cmd.Height, b.dpi)
		case gfx.CommandSetScissor:
			b.scissor(cmd.X, cmd.Y, cmd.Width, cmd.Height, b.dpi)
		}
	}
}

// Clean deletes a batch of dropped resources, routing each id to the table
// of its kind.
func (b *Backend) Clean(toClean []gfx.ResourceID) {
	for _, res := range toClean {
		switch res.Kind {
		case gfx.ResourceKindPipeline:
			if pipeline, ok := b.pipelines[res.ID]; ok {
				pipeline.clean()
				delete(b.pipelines, res.ID)
			}
		case gfx.ResourceKindBuffer:
			if buffer, ok := b.buffers[res.ID]; ok {
				buffer.clean()
				delete(b.buffers, res.ID)
			}
		case gfx.ResourceKindTexture:
			if texture, ok := b.textures[res.ID]; ok {
				texture.clean()
				delete(b.textures, res.ID)
			}
		case gfx.ResourceKindRenderTexture:
			if rt, ok := b.renderTargets[res.ID]; ok {
				rt.clean()
				delete(b.renderTargets, res.ID)
			}
		}
	}
}

// begin selects the target framebuffer, sets the viewport to its full size
// and performs the requested clears. Offscreen targets are rendered at
// device resolution, so their DPI is forced to 1.
func (b *Backend) begin(target *uint64, opts gfx.ClearOptions) {
	width, height, dpi := b.width, b.height, b.dpi

	var rt *innerRenderTexture
	if target != nil {
		rt = b.renderTargets[*target]
	}

	if rt != nil {
		rt.bind()
		width, height, dpi = rt.width, rt.height, 1.0
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	}

	b.viewport(0, 0, float32(width), float32(height), dpi)
	clear(opts.Color, opts.Depth, opts.Stencil)
}

func (b *Backend) end() {
	gl.Disable(gl.SCISSOR_TEST)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	b.usingIndices = false
}

func (b *Backend) setPipeline(id uint64, options gfx.PipelineOptions) {
	pipeline, ok := b.pipelines[id]
	if !ok {
		return
	}
	pipeline.bind(options)
	b.usingIndices = false
	b.currentPipeline = id
	b.currentUniforms = pipeline.uniformLocations
}

func (b *Backend) bindBuffer(id uint64) {
	buffer, ok := b.buffers[id]
	if !ok {
		return
	}

	switch buffer.usage {
	case gfx.BufferUsageIndex:
		b.usingIndices = true
	case gfx.BufferUsageUniform:
		if !buffer.blockBound {
			if pipeline, ok := b.pipelines[b.currentPipeline]; ok {
				buffer.bindUniformBlock(pipeline)
			}
		}
	}

	buffer.bind(b.currentPipeline)
}

func (b *Backend) bindTexture(id uint64, slot, location uint32) {
	texture, ok := b.textures[id]
	if !ok {
		return
	}
	if int(location) >= len(b.currentUniforms) {
		core.LogWarn("bind_texture: uniform location index '%d' out of range", location)
		return
	}
	if err := texture.bind(slot, b.currentUniforms[location]); err != nil {
		core.LogWarn("bind_texture: %s", err)
	}
}

func (b *Backend) draw(primitive gfx.DrawPrimitive, offset, count int32) {
	if b.usingIndices {
		// index offsets are element counts; GL wants a byte offset
		gl.DrawElements(glDrawPrimitive(primitive), count, gl.UNSIGNED_INT, gl.PtrOffset(int(offset)*4))
		return
	}
	gl.DrawArrays(glDrawPrimitive(primitive), offset, count)
}

func (b *Backend) drawInstanced(primitive gfx.DrawPrimitive, offset, count, instanceCount int32) {
	if b.usingIndices {
		gl.DrawElementsInstanced(glDrawPrimitive(primitive), count, gl.UNSIGNED_INT, gl.PtrOffset(int(offset)*4), instanceCount)
		return
	}
	gl.DrawArraysInstanced(glDrawPrimitive(primitive), offset, count, instanceCount)
}

func (b *Backend) viewport(x, y, width, height, dpi float32) {
	gl.Viewport(int32(x*dpi), int32(y*dpi), int32(width*dpi), int32(height*dpi))
}

func (b *Backend) scissor(x, y, width, height, dpi float32) {
	sx, sy, sw, sh := scissorRect(b.height, dpi, x, y, width, height)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(sx, sy, sw, sh)
}
