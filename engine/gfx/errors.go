package gfx

import "errors"

var (
	// ErrMissingVertexSource is returned by the pipeline builder when no
	// vertex shader source was provided.
	ErrMissingVertexSource = errors.New("pipeline requires a vertex shader source")
	// ErrMissingFragmentSource is returned by the pipeline builder when no
	// fragment shader source was provided.
	ErrMissingFragmentSource = errors.New("pipeline requires a fragment shader source")
	// ErrMissingVertexInfo is returned when a pipeline or vertex buffer is
	// built without an attribute layout.
	ErrMissingVertexInfo = errors.New("missing vertex attribute layout")
	// ErrInvalidTextureSize is returned when a texture is built with a non
	// positive width or height.
	ErrInvalidTextureSize = errors.New("texture width and height must be greater than zero")
)
