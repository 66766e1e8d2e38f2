package opengl

import "github.com/spaghettifunk/prisma/engine/gfx"

// State decisions that do not need a live context live here as pure
// functions, applied by the pipeline and backend code.

// shouldDisableStencil reports whether the stencil test can be disabled
// outright instead of configured as a no-op. True when no stencil options
// are given, or when compare is Always and every action is Keep.
func shouldDisableStencil(stencil *gfx.StencilOptions) bool {
	if stencil == nil {
		return true
	}
	return stencil.Compare == gfx.CompareAlways &&
		stencil.StencilFail == gfx.StencilKeep &&
		stencil.DepthFail == gfx.StencilKeep &&
		stencil.Pass == gfx.StencilKeep
}

// blendState is the resolved blending configuration of a pipeline.
type blendState struct {
	enabled bool
	// separate selects the per-channel blend entry points; when false the
	// color mode applies to both channels.
	separate bool
	color    gfx.BlendMode
	alpha    gfx.BlendMode
}

// resolveBlend turns the optional color/alpha blend pair into a concrete
// blend state. A lone color mode applies symmetrically to both channels; a
// lone alpha mode is paired with the default normal color blend; neither
// disables blending.
func resolveBlend(color, alpha *gfx.BlendMode) blendState {
	switch {
	case color != nil && alpha == nil:
		return blendState{enabled: true, color: *color, alpha: *color}
	case color != nil && alpha != nil:
		return blendState{enabled: true, separate: true, color: *color, alpha: *alpha}
	case color == nil && alpha != nil:
		return blendState{enabled: true, separate: true, color: gfx.BlendNormal, alpha: *alpha}
	default:
		return blendState{}
	}
}

// scissorRect converts a top-left-origin logical rectangle into the native
// bottom-left-origin device rectangle: y is flipped against the surface
// height and everything is scaled by dpi.
func scissorRect(surfaceHeight int32, dpi float32, x, y, width, height float32) (sx, sy, sw, sh int32) {
	sy = int32((float32(surfaceHeight) - (height + y)) * dpi)
	sx = int32(x * dpi)
	sw = int32(width * dpi)
	sh = int32(height * dpi)
	return sx, sy, sw, sh
}

// normalizeTextureInfo applies the depth-format rules before upload: depth
// textures always sample with nearest filters and never carry initial
// pixel bytes, regardless of what the descriptor requested.
func normalizeTextureInfo(info gfx.TextureInfo) gfx.TextureInfo {
	if !info.Format.IsDepth() {
		return info
	}
	info.MinFilter = gfx.TextureFilterNearest
	info.MagFilter = gfx.TextureFilterNearest
	info.Bytes = nil
	return info
}
