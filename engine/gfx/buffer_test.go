package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/prisma/engine/gfx"
)

func TestVertexInfoStride(t *testing.T) {
	tests := []struct {
		name string
		info *gfx.VertexInfo
		want int32
	}{
		{
			name: "position only",
			info: gfx.NewVertexInfo().Attr(0, gfx.VertexFormatFloat32x2),
			want: 8,
		},
		{
			name: "position and color",
			info: gfx.NewVertexInfo().
				Attr(0, gfx.VertexFormatFloat32x2).
				Attr(1, gfx.VertexFormatFloat32x3),
			want: 20,
		},
		{
			name: "mixed float and byte attributes",
			info: gfx.NewVertexInfo().
				Attr(0, gfx.VertexFormatFloat32x3).
				Attr(1, gfx.VertexFormatUint8x4Norm),
			want: 16,
		},
		{
			name: "empty layout",
			info: gfx.NewVertexInfo(),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Stride())
		})
	}
}

func TestVertexFormatProperties(t *testing.T) {
	tests := []struct {
		format     gfx.VertexFormat
		components int32
		bytes      int32
		normalized bool
	}{
		{gfx.VertexFormatFloat32, 1, 4, false},
		{gfx.VertexFormatFloat32x2, 2, 8, false},
		{gfx.VertexFormatFloat32x3, 3, 12, false},
		{gfx.VertexFormatFloat32x4, 4, 16, false},
		{gfx.VertexFormatUint8x2, 2, 2, false},
		{gfx.VertexFormatUint8x4, 4, 4, false},
		{gfx.VertexFormatUint8x4Norm, 4, 4, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.components, tt.format.Components())
		assert.Equal(t, tt.bytes, tt.format.Bytes())
		assert.Equal(t, tt.normalized, tt.format.Normalized())
	}
}

func TestTextureFormatProperties(t *testing.T) {
	assert.Equal(t, int32(4), gfx.TextureFormatRGBA8.BytesPerPixel())
	assert.Equal(t, int32(1), gfx.TextureFormatR8.BytesPerPixel())
	assert.Equal(t, int32(2), gfx.TextureFormatDepth16.BytesPerPixel())

	assert.False(t, gfx.TextureFormatRGBA8.IsDepth())
	assert.True(t, gfx.TextureFormatDepth16.IsDepth())
}

func TestDefaultPipelineOptions(t *testing.T) {
	opts := gfx.DefaultPipelineOptions()

	assert.True(t, opts.DepthStencil.Write)
	assert.Equal(t, gfx.CompareNone, opts.DepthStencil.Compare)
	assert.Equal(t, gfx.ColorMask{R: true, G: true, B: true, A: true}, opts.ColorMask)
	assert.Nil(t, opts.ColorBlend)
	assert.Nil(t, opts.AlphaBlend)
	assert.Nil(t, opts.Stencil)
}
