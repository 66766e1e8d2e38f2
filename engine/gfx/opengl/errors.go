package opengl

import "errors"

var (
	// ErrFramebufferIncomplete is returned when a render target or a pixel
	// readback fails the framebuffer completeness check.
	ErrFramebufferIncomplete = errors.New("opengl: framebuffer incomplete")

	// ErrTextureNotFound is returned when a creation or readback call
	// references a texture id that is not in the backend tables.
	ErrTextureNotFound = errors.New("opengl: texture id not found")
)
