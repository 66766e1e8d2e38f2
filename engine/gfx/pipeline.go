package gfx

import "sync"

// DrawPrimitive selects how vertices are assembled.
type DrawPrimitive uint8

const (
	DrawTriangles DrawPrimitive = iota
	DrawTriangleStrip
	DrawLines
	DrawLineStrip
)

// CompareMode is the comparison function used for depth and stencil tests.
// CompareNone disables the test.
type CompareMode uint8

const (
	CompareNone CompareMode = iota
	CompareLess
	CompareEqual
	CompareLEqual
	CompareGreater
	CompareNotEqual
	CompareGEqual
	CompareAlways
)

// StencilAction is the operation applied to the stencil buffer.
type StencilAction uint8

const (
	StencilKeep StencilAction = iota
	StencilZero
	StencilReplace
	StencilIncrement
	StencilIncrementWrap
	StencilDecrement
	StencilDecrementWrap
	StencilInvert
)

// StencilOptions configures the stencil test of a pipeline.
type StencilOptions struct {
	StencilFail StencilAction
	DepthFail   StencilAction
	Pass        StencilAction
	Compare     CompareMode
	ReadMask    uint32
	WriteMask   uint32
	Reference   uint32
}

// BlendFactor is a multiplier for source or destination channels.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSourceAlpha
	BlendSourceColor
	BlendInverseSourceAlpha
	BlendInverseSourceColor
	BlendDestinationAlpha
	BlendDestinationColor
	BlendInverseDestinationAlpha
	BlendInverseDestinationColor
)

// BlendOperation combines the scaled source and destination values.
type BlendOperation uint8

const (
	BlendAdd BlendOperation = iota
	BlendSubtract
	BlendReverseSubtract
	BlendMax
	BlendMin
)

// BlendMode is a source factor, destination factor and operation triple.
type BlendMode struct {
	Src BlendFactor
	Dst BlendFactor
	Op  BlendOperation
}

var (
	// BlendNormal is standard alpha compositing.
	BlendNormal   = BlendMode{Src: BlendOne, Dst: BlendInverseSourceAlpha, Op: BlendAdd}
	BlendOver     = BlendMode{Src: BlendSourceAlpha, Dst: BlendInverseSourceAlpha, Op: BlendAdd}
	BlendAdditive = BlendMode{Src: BlendOne, Dst: BlendOne, Op: BlendAdd}
	BlendErase    = BlendMode{Src: BlendZero, Dst: BlendInverseSourceColor, Op: BlendAdd}
)

// CullMode selects which triangle faces are discarded.
type CullMode uint8

const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

// ColorMask holds the per-channel color write flags.
type ColorMask struct {
	R bool
	G bool
	B bool
	A bool
}

// DepthStencil configures the depth test. CompareNone disables it; the
// write mask is applied independently of the test.
type DepthStencil struct {
	Write   bool
	Compare CompareMode
}

// PipelineOptions is the full fixed-function state block of a pipeline.
// It is reapplied as a whole every time the pipeline is set.
type PipelineOptions struct {
	ColorBlend   *BlendMode
	AlphaBlend   *BlendMode
	CullMode     CullMode
	DepthStencil DepthStencil
	ColorMask    ColorMask
	Stencil      *StencilOptions
}

// DefaultPipelineOptions returns the options used when a pipeline is built
// without an explicit state block: no blending, no depth or stencil test,
// no culling, all color channels writable.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		DepthStencil: DepthStencil{Write: true, Compare: CompareNone},
		ColorMask:    ColorMask{R: true, G: true, B: true, A: true},
	}
}

// Pipeline is a caller-facing handle to a compiled shader program plus its
// fixed-function state and vertex layout.
type Pipeline struct {
	id      uint64
	stride  int32
	options PipelineOptions

	dropManager *DropManager
	dropOnce    sync.Once
}

func newPipeline(id uint64, stride int32, options PipelineOptions, dm *DropManager) *Pipeline {
	return &Pipeline{
		id:          id,
		stride:      stride,
		options:     options,
		dropManager: dm,
	}
}

func (p *Pipeline) ID() uint64 {
	return p.id
}

// Stride is the byte distance between consecutive vertices of any buffer
// bound under this pipeline.
func (p *Pipeline) Stride() int32 {
	return p.stride
}

func (p *Pipeline) Options() PipelineOptions {
	return p.options
}

// Drop schedules the backend pipeline for deletion. Safe to call from any
// goroutine and idempotent.
func (p *Pipeline) Drop() {
	p.dropOnce.Do(func() {
		p.dropManager.Push(ResourceID{Kind: ResourceKindPipeline, ID: p.id})
	})
}
