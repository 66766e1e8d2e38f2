package gfx

// Builders collect the required and optional parameters of each resource
// kind. Build validates, forwards to the backend and wraps the returned id
// in a handle bound to the drop manager. A failed Build never leaves a
// partially constructed handle registered.

// PipelineBuilder configures a new pipeline.
type PipelineBuilder struct {
	device         *Device
	vertexSource   []byte
	fragmentSource []byte
	vertexInfo     *VertexInfo
	options        PipelineOptions
}

// CreatePipeline starts building a pipeline with default state options.
func (d *Device) CreatePipeline() *PipelineBuilder {
	return &PipelineBuilder{
		device:  d,
		options: DefaultPipelineOptions(),
	}
}

// From sets the vertex and fragment shader sources, written for the
// backend's target API.
func (pb *PipelineBuilder) From(vertex, fragment string) *PipelineBuilder {
	pb.vertexSource = []byte(vertex)
	pb.fragmentSource = []byte(fragment)
	return pb
}

// FromRaw is From for pre-encoded shader source bytes.
func (pb *PipelineBuilder) FromRaw(vertex, fragment []byte) *PipelineBuilder {
	pb.vertexSource = vertex
	pb.fragmentSource = fragment
	return pb
}

func (pb *PipelineBuilder) WithVertexInfo(info *VertexInfo) *PipelineBuilder {
	pb.vertexInfo = info
	return pb
}

func (pb *PipelineBuilder) WithOptions(options PipelineOptions) *PipelineBuilder {
	pb.options = options
	return pb
}

func (pb *PipelineBuilder) WithColorBlend(mode BlendMode) *PipelineBuilder {
	pb.options.ColorBlend = &mode
	return pb
}

func (pb *PipelineBuilder) WithAlphaBlend(mode BlendMode) *PipelineBuilder {
	pb.options.AlphaBlend = &mode
	return pb
}

func (pb *PipelineBuilder) WithDepthStencil(ds DepthStencil) *PipelineBuilder {
	pb.options.DepthStencil = ds
	return pb
}

func (pb *PipelineBuilder) WithStencil(opts StencilOptions) *PipelineBuilder {
	pb.options.Stencil = &opts
	return pb
}

func (pb *PipelineBuilder) WithCullMode(mode CullMode) *PipelineBuilder {
	pb.options.CullMode = mode
	return pb
}

func (pb *PipelineBuilder) Build() (*Pipeline, error) {
	if len(pb.vertexSource) == 0 {
		return nil, ErrMissingVertexSource
	}
	if len(pb.fragmentSource) == 0 {
		return nil, ErrMissingFragmentSource
	}
	if pb.vertexInfo == nil || len(pb.vertexInfo.Attrs) == 0 {
		return nil, ErrMissingVertexInfo
	}

	id, err := pb.device.backend.CreatePipeline(pb.vertexSource, pb.fragmentSource, pb.vertexInfo.Attrs, pb.options)
	if err != nil {
		return nil, err
	}
	return newPipeline(id, pb.vertexInfo.Stride(), pb.options, pb.device.dropManager), nil
}

// VertexBufferBuilder configures a new vertex buffer.
type VertexBufferBuilder struct {
	device *Device
	info   *VertexInfo
	data   []float32
}

func (d *Device) CreateVertexBuffer() *VertexBufferBuilder {
	return &VertexBufferBuilder{device: d}
}

// WithInfo sets the attribute layout used to re-enable attribute pointers
// when the buffer is bound under a new pipeline.
func (vb *VertexBufferBuilder) WithInfo(info *VertexInfo) *VertexBufferBuilder {
	vb.info = info
	return vb
}

func (vb *VertexBufferBuilder) WithData(data []float32) *VertexBufferBuilder {
	vb.data = data
	return vb
}

func (vb *VertexBufferBuilder) Build() (*Buffer, error) {
	if vb.info == nil || len(vb.info.Attrs) == 0 {
		return nil, ErrMissingVertexInfo
	}

	id, err := vb.device.backend.CreateVertexBuffer(vb.info)
	if err != nil {
		return nil, err
	}

	buffer := newBuffer(id, BufferUsageVertex, 0, vb.info, vb.device.dropManager)
	if vb.data != nil {
		vb.device.SetBufferDataF32(buffer, vb.data)
	}
	return buffer, nil
}

// IndexBufferBuilder configures a new index buffer.
type IndexBufferBuilder struct {
	device *Device
	data   []uint32
}

func (d *Device) CreateIndexBuffer() *IndexBufferBuilder {
	return &IndexBufferBuilder{device: d}
}

func (ib *IndexBufferBuilder) WithData(data []uint32) *IndexBufferBuilder {
	ib.data = data
	return ib
}

func (ib *IndexBufferBuilder) Build() (*Buffer, error) {
	id, err := ib.device.backend.CreateIndexBuffer()
	if err != nil {
		return nil, err
	}

	buffer := newBuffer(id, BufferUsageIndex, 0, nil, ib.device.dropManager)
	if ib.data != nil {
		ib.device.SetBufferDataU32(buffer, ib.data)
	}
	return buffer, nil
}

// UniformBufferBuilder configures a new uniform buffer bound to a block
// slot and name.
type UniformBufferBuilder struct {
	device *Device
	slot   uint32
	name   string
	data   []float32
}

func (d *Device) CreateUniformBuffer(slot uint32, name string) *UniformBufferBuilder {
	return &UniformBufferBuilder{device: d, slot: slot, name: name}
}

func (ub *UniformBufferBuilder) WithData(data []float32) *UniformBufferBuilder {
	ub.data = data
	return ub
}

func (ub *UniformBufferBuilder) Build() (*Buffer, error) {
	id, err := ub.device.backend.CreateUniformBuffer(ub.slot, ub.name)
	if err != nil {
		return nil, err
	}

	buffer := newBuffer(id, BufferUsageUniform, ub.slot, nil, ub.device.dropManager)
	if ub.data != nil {
		ub.device.SetBufferDataF32(buffer, ub.data)
	}
	return buffer, nil
}

// TextureBuilder configures a new texture.
type TextureBuilder struct {
	device *Device
	info   TextureInfo
}

func (d *Device) CreateTexture() *TextureBuilder {
	return &TextureBuilder{
		device: d,
		info: TextureInfo{
			Width:     1,
			Height:    1,
			Format:    TextureFormatRGBA8,
			MinFilter: TextureFilterLinear,
			MagFilter: TextureFilterLinear,
		},
	}
}

func (tb *TextureBuilder) WithSize(width, height int32) *TextureBuilder {
	tb.info.Width = width
	tb.info.Height = height
	return tb
}

func (tb *TextureBuilder) WithFormat(format TextureFormat) *TextureBuilder {
	tb.info.Format = format
	return tb
}

func (tb *TextureBuilder) WithFilter(min, mag TextureFilter) *TextureBuilder {
	tb.info.MinFilter = min
	tb.info.MagFilter = mag
	return tb
}

// WithData sets the initial pixel bytes, laid out per the format.
func (tb *TextureBuilder) WithData(bytes []byte) *TextureBuilder {
	tb.info.Bytes = bytes
	return tb
}

func (tb *TextureBuilder) Build() (*Texture, error) {
	if tb.info.Width <= 0 || tb.info.Height <= 0 {
		return nil, ErrInvalidTextureSize
	}

	id, err := tb.device.backend.CreateTexture(tb.info)
	if err != nil {
		return nil, err
	}
	return newTexture(id, tb.info, tb.device.dropManager), nil
}

// RenderTextureBuilder configures a new offscreen render target.
type RenderTextureBuilder struct {
	device *Device
	info   TextureInfo
}

func (d *Device) CreateRenderTexture(width, height int32) *RenderTextureBuilder {
	return &RenderTextureBuilder{
		device: d,
		info: TextureInfo{
			Width:     width,
			Height:    height,
			Format:    TextureFormatRGBA8,
			MinFilter: TextureFilterLinear,
			MagFilter: TextureFilterLinear,
		},
	}
}

// WithDepth requests a companion depth texture sized to match.
func (rb *RenderTextureBuilder) WithDepth() *RenderTextureBuilder {
	rb.info.Depth = true
	return rb
}

func (rb *RenderTextureBuilder) WithFilter(min, mag TextureFilter) *RenderTextureBuilder {
	rb.info.MinFilter = min
	rb.info.MagFilter = mag
	return rb
}

func (rb *RenderTextureBuilder) Build() (*RenderTexture, error) {
	if rb.info.Width <= 0 || rb.info.Height <= 0 {
		return nil, ErrInvalidTextureSize
	}

	textureID, err := rb.device.backend.CreateTexture(rb.info)
	if err != nil {
		return nil, err
	}

	id, err := rb.device.backend.CreateRenderTexture(textureID, rb.info)
	if err != nil {
		// The color texture was already registered; schedule it so the
		// failed build leaves nothing behind after the next Clean.
		rb.device.dropManager.Push(ResourceID{Kind: ResourceKindTexture, ID: textureID})
		return nil, err
	}

	texture := newTexture(textureID, rb.info, rb.device.dropManager)
	return newRenderTexture(id, texture, rb.device.dropManager), nil
}
