package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/prisma/engine/gfx"
)

// Translation of the declarative gfx enums into GL constants. Optional
// modes (compare, cull) translate to (value, ok) so the caller can pick
// enable+apply versus disable.

func glDrawPrimitive(p gfx.DrawPrimitive) uint32 {
	switch p {
	case gfx.DrawTriangleStrip:
		return gl.TRIANGLE_STRIP
	case gfx.DrawLines:
		return gl.LINES
	case gfx.DrawLineStrip:
		return gl.LINE_STRIP
	default:
		return gl.TRIANGLES
	}
}

func glStencilAction(a gfx.StencilAction) uint32 {
	switch a {
	case gfx.StencilZero:
		return gl.ZERO
	case gfx.StencilReplace:
		return gl.REPLACE
	case gfx.StencilIncrement:
		return gl.INCR
	case gfx.StencilIncrementWrap:
		return gl.INCR_WRAP
	case gfx.StencilDecrement:
		return gl.DECR
	case gfx.StencilDecrementWrap:
		return gl.DECR_WRAP
	case gfx.StencilInvert:
		return gl.INVERT
	default:
		return gl.KEEP
	}
}

func glBlendFactor(f gfx.BlendFactor) uint32 {
	switch f {
	case gfx.BlendZero:
		return gl.ZERO
	case gfx.BlendOne:
		return gl.ONE
	case gfx.BlendSourceAlpha:
		return gl.SRC_ALPHA
	case gfx.BlendSourceColor:
		return gl.SRC_COLOR
	case gfx.BlendInverseSourceAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case gfx.BlendInverseSourceColor:
		return gl.ONE_MINUS_SRC_COLOR
	case gfx.BlendDestinationAlpha:
		return gl.DST_ALPHA
	case gfx.BlendDestinationColor:
		return gl.DST_COLOR
	case gfx.BlendInverseDestinationAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case gfx.BlendInverseDestinationColor:
		return gl.ONE_MINUS_DST_COLOR
	default:
		return gl.ONE
	}
}

func glBlendOperation(op gfx.BlendOperation) uint32 {
	switch op {
	case gfx.BlendSubtract:
		return gl.FUNC_SUBTRACT
	case gfx.BlendReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case gfx.BlendMax:
		return gl.MAX
	case gfx.BlendMin:
		return gl.MIN
	default:
		return gl.FUNC_ADD
	}
}

func glCompareMode(c gfx.CompareMode) (uint32, bool) {
	switch c {
	case gfx.CompareLess:
		return gl.LESS, true
	case gfx.CompareEqual:
		return gl.EQUAL, true
	case gfx.CompareLEqual:
		return gl.LEQUAL, true
	case gfx.CompareGreater:
		return gl.GREATER, true
	case gfx.CompareNotEqual:
		return gl.NOTEQUAL, true
	case gfx.CompareGEqual:
		return gl.GEQUAL, true
	case gfx.CompareAlways:
		return gl.ALWAYS, true
	default:
		return 0, false
	}
}

func glCullMode(c gfx.CullMode) (uint32, bool) {
	switch c {
	case gfx.CullFront:
		return gl.FRONT, true
	case gfx.CullBack:
		return gl.BACK, true
	default:
		return 0, false
	}
}

func glVertexType(vf gfx.VertexFormat) uint32 {
	switch vf {
	case gfx.VertexFormatUint8, gfx.VertexFormatUint8x2, gfx.VertexFormatUint8x3, gfx.VertexFormatUint8x4,
		gfx.VertexFormatUint8Norm, gfx.VertexFormatUint8x2Norm, gfx.VertexFormatUint8x3Norm, gfx.VertexFormatUint8x4Norm:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

func glTextureFilter(f gfx.TextureFilter) int32 {
	if f == gfx.TextureFilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func glTextureFormat(tf gfx.TextureFormat) uint32 {
	switch tf {
	case gfx.TextureFormatR8:
		return gl.RED
	case gfx.TextureFormatDepth16:
		return gl.DEPTH_COMPONENT16
	default:
		return gl.RGBA
	}
}

func glTextureInternalFormat(tf gfx.TextureFormat) uint32 {
	if tf == gfx.TextureFormatR8 {
		return gl.R8
	}
	return glTextureFormat(tf)
}
