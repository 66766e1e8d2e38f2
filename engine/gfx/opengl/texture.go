package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/prisma/engine/gfx"
)

// innerTexture owns one native texture object.
type innerTexture struct {
	texture uint32
	width   int32
	height  int32
}

func newInnerTexture(info gfx.TextureInfo) (*innerTexture, error) {
	texture, err := createTexture(info)
	if err != nil {
		return nil, err
	}
	return &innerTexture{texture: texture, width: info.Width, height: info.Height}, nil
}

// bind activates the texture unit, binds the texture and writes the slot
// number into the sampler uniform at the given location.
func (t *innerTexture) bind(slot uint32, location int32) error {
	unit, err := glTextureSlot(slot)
	if err != nil {
		return err
	}
	gl.ActiveTexture(unit)
	gl.BindTexture(gl.TEXTURE_2D, t.texture)
	gl.Uniform1i(location, int32(slot))
	return nil
}

func (t *innerTexture) clean() {
	gl.DeleteTextures(1, &t.texture)
}

// glTextureSlot maps a texture unit slot to the GL enum. Only the first
// eight units are supported.
func glTextureSlot(slot uint32) (uint32, error) {
	if slot > 7 {
		return 0, fmt.Errorf("unsupported texture slot '%d'", slot)
	}
	return gl.TEXTURE0 + slot, nil
}

// createTexture allocates and configures a native texture. Wrap is always
// clamp-to-edge. Depth formats force nearest filtering, upload as 16-bit
// depth data without initial pixels, and attach to the depth point of the
// currently bound framebuffer so they are render-target-attachable.
func createTexture(info gfx.TextureInfo) (uint32, error) {
	info = normalizeTextureInfo(info)

	var texture uint32
	gl.GenTextures(1, &texture)

	if bpp := info.Format.BytesPerPixel(); bpp != 4 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, bpp)
	}

	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glTextureFilter(info.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glTextureFilter(info.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	format := glTextureFormat(info.Format)
	xtype := uint32(gl.UNSIGNED_BYTE)
	if info.Format.IsDepth() {
		format = gl.DEPTH_COMPONENT
		xtype = gl.UNSIGNED_SHORT
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, texture, 0)
	}

	var pixels unsafe.Pointer
	if len(info.Bytes) > 0 {
		pixels = gl.Ptr(info.Bytes)
	}

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		int32(glTextureInternalFormat(info.Format)),
		info.Width,
		info.Height,
		0,
		format,
		xtype,
		pixels,
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture, nil
}
