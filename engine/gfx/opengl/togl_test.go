package opengl

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/engine/gfx"
)

func TestBuildAttributesOffsetsAndStride(t *testing.T) {
	attrs := []gfx.VertexAttr{
		{Location: 0, Format: gfx.VertexFormatFloat32x2},
		{Location: 1, Format: gfx.VertexFormatFloat32x3},
		{Location: 2, Format: gfx.VertexFormatUint8x4Norm},
	}

	stride, inner := buildAttributes(attrs)
	require.Len(t, inner, 3)

	assert.Equal(t, int32(24), stride)

	// Offsets follow declaration order, each past the previous attribute.
	assert.Equal(t, int32(0), inner[0].offset)
	assert.Equal(t, int32(8), inner[1].offset)
	assert.Equal(t, int32(20), inner[2].offset)
	for i := 1; i < len(inner); i++ {
		assert.Greater(t, inner[i].offset, inner[i-1].offset)
	}

	assert.Equal(t, uint32(gl.FLOAT), inner[0].dataType)
	assert.Equal(t, uint32(gl.UNSIGNED_BYTE), inner[2].dataType)
	assert.False(t, inner[0].normalized)
	assert.True(t, inner[2].normalized)
}

func TestCompareModeNoneDisablesTest(t *testing.T) {
	_, ok := glCompareMode(gfx.CompareNone)
	assert.False(t, ok)

	mode, ok := glCompareMode(gfx.CompareLEqual)
	assert.True(t, ok)
	assert.Equal(t, uint32(gl.LEQUAL), mode)
}

func TestCullModeNoneDisablesCulling(t *testing.T) {
	_, ok := glCullMode(gfx.CullNone)
	assert.False(t, ok)

	mode, ok := glCullMode(gfx.CullBack)
	assert.True(t, ok)
	assert.Equal(t, uint32(gl.BACK), mode)
}

func TestBlendFactorMapping(t *testing.T) {
	tests := []struct {
		factor gfx.BlendFactor
		want   uint32
	}{
		{gfx.BlendZero, gl.ZERO},
		{gfx.BlendOne, gl.ONE},
		{gfx.BlendSourceAlpha, gl.SRC_ALPHA},
		{gfx.BlendSourceColor, gl.SRC_COLOR},
		{gfx.BlendInverseSourceAlpha, gl.ONE_MINUS_SRC_ALPHA},
		{gfx.BlendDestinationAlpha, gl.DST_ALPHA},
		{gfx.BlendDestinationColor, gl.DST_COLOR},
		{gfx.BlendInverseDestinationColor, gl.ONE_MINUS_DST_COLOR},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, glBlendFactor(tt.factor))
	}
}

func TestTextureFormatMapping(t *testing.T) {
	assert.Equal(t, uint32(gl.RGBA), glTextureFormat(gfx.TextureFormatRGBA8))
	assert.Equal(t, uint32(gl.RED), glTextureFormat(gfx.TextureFormatR8))
	assert.Equal(t, uint32(gl.DEPTH_COMPONENT16), glTextureFormat(gfx.TextureFormatDepth16))

	// R8 needs a sized internal format under the core profile.
	assert.Equal(t, uint32(gl.R8), glTextureInternalFormat(gfx.TextureFormatR8))
	assert.Equal(t, uint32(gl.RGBA), glTextureInternalFormat(gfx.TextureFormatRGBA8))
}

func TestTextureSlotRange(t *testing.T) {
	slot, err := glTextureSlot(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(gl.TEXTURE0), slot)

	slot, err = glTextureSlot(7)
	require.NoError(t, err)
	assert.Equal(t, uint32(gl.TEXTURE7), slot)

	_, err = glTextureSlot(8)
	assert.Error(t, err)
}
