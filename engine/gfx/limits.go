package gfx

// Limits holds the read-only capabilities reported by the backend.
type Limits struct {
	MaxTextureSize      int32
	MaxUniformBlockSize int32
}
