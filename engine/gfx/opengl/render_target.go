package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/prisma/engine/gfx"
)

// innerRenderTexture owns one native framebuffer plus an optional
// companion depth texture. The color texture is owned by its own handle.
type innerRenderTexture struct {
	fbo          uint32
	depthTexture uint32
	hasDepth     bool
	width        int32
	height       int32
}

func newInnerRenderTexture(texture *innerTexture, info gfx.TextureInfo) (*innerRenderTexture, error) {
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, texture.texture, 0)

	rt := &innerRenderTexture{fbo: fbo, width: texture.width, height: texture.height}

	if info.Depth {
		// createTexture attaches depth formats to the framebuffer bound
		// above, which is why the depth texture is created after the bind.
		depth, err := createTexture(gfx.TextureInfo{
			Width:  info.Width,
			Height: info.Height,
			Format: gfx.TextureFormatDepth16,
		})
		if err != nil {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			gl.DeleteFramebuffers(1, &fbo)
			return nil, err
		}
		rt.depthTexture = depth
		rt.hasDepth = true
	}

	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		rt.clean()
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return nil, ErrFramebufferIncomplete
	}

	// One transparent clear so the first use never samples uninitialized
	// memory.
	clear(&gfx.ColorTransparent, nil, nil)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return rt, nil
}

func (rt *innerRenderTexture) bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, rt.fbo)
}

func (rt *innerRenderTexture) clean() {
	gl.DeleteFramebuffers(1, &rt.fbo)
	if rt.hasDepth {
		gl.DeleteTextures(1, &rt.depthTexture)
	}
}

// clear clears whichever of color, depth and stencil are requested, in a
// single native clear call.
func clear(color *gfx.Color, depth *float32, stencil *int32) {
	var mask uint32

	if color != nil {
		mask |= gl.COLOR_BUFFER_BIT
		gl.ClearColor(color.R, color.G, color.B, color.A)
	}

	if depth != nil {
		mask |= gl.DEPTH_BUFFER_BIT
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
		gl.ClearDepth(float64(*depth))
	}

	if stencil != nil {
		mask |= gl.STENCIL_BUFFER_BIT
		gl.Enable(gl.STENCIL_TEST)
		gl.StencilMask(0xff)
		gl.ClearStencil(*stencil)
	}

	if mask != 0 {
		gl.Clear(mask)
	}
}
