package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderLoaderStageFromExtension(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		file string
		want ShaderStage
	}{
		{"triangle.vert", ShaderStageVertex},
		{"triangle.frag", ShaderStageFragment},
		{"common.glsl", ShaderStageFragment},
	}

	loader := &ShaderLoader{}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte("void main() {}"), 0o644))

			resource, err := loader.Load(path, nil)
			require.NoError(t, err)

			src := resource.Data.(*ShaderSource)
			assert.Equal(t, tt.want, src.Stage)
			assert.Equal(t, "void main() {}", src.Source)
		})
	}
}

func TestShaderLoaderMissingFile(t *testing.T) {
	loader := &ShaderLoader{}
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.vert"), nil)
	assert.Error(t, err)
}

func writeTestPNG(t *testing.T, path string, colors []color.NRGBA) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 1, len(colors)))
	for y, c := range colors {
		img.SetNRGBA(0, y, c)
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestImageLoaderDecodesToRGBA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixel.png")
	writeTestPNG(t, path, []color.NRGBA{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	})

	loader := &ImageLoader{}
	resource, err := loader.Load(path, nil)
	require.NoError(t, err)

	data := resource.Data.(*ImageData)
	assert.Equal(t, uint32(1), data.Width)
	assert.Equal(t, uint32(2), data.Height)
	require.Len(t, data.Pixels, 8)

	// Row 0 red, row 1 blue.
	assert.Equal(t, uint8(255), data.Pixels[0])
	assert.Equal(t, uint8(255), data.Pixels[6])
}

func TestImageLoaderFlipY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixel.png")
	writeTestPNG(t, path, []color.NRGBA{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	})

	loader := &ImageLoader{}
	resource, err := loader.Load(path, &ImageParams{FlipY: true})
	require.NoError(t, err)

	data := resource.Data.(*ImageData)
	// Rows swapped: blue first, red last.
	assert.Equal(t, uint8(255), data.Pixels[2])
	assert.Equal(t, uint8(255), data.Pixels[4])
}

const testFNT = `info face="test" size=32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1 outline=0
common lineHeight=36 base=29 scaleW=256 scaleH=128 pages=1 packed=0 alphaChnl=0 redChnl=4 greenChnl=4 blueChnl=4
page id=0 file="test_0.png"
chars count=2
char id=65 x=2 y=2 width=20 height=24 xoffset=0 yoffset=5 xadvance=21 page=0 chnl=15
char id=66 x=24 y=2 width=18 height=24 xoffset=1 yoffset=5 xadvance=20 page=0 chnl=15
kernings count=1
kerning first=65 second=66 amount=-2
`

func TestBitmapFontLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fnt")
	require.NoError(t, os.WriteFile(path, []byte(testFNT), 0o644))

	loader := &BitmapFontLoader{}
	resource, err := loader.Load(path, nil)
	require.NoError(t, err)

	data := resource.Data.(*BitmapFontData)
	assert.Equal(t, "test", data.Face)
	assert.Equal(t, uint32(32), data.Size)
	assert.Equal(t, int32(36), data.LineHeight)
	assert.Equal(t, int32(256), data.AtlasSizeX)
	assert.Equal(t, int32(128), data.AtlasSizeY)

	require.Len(t, data.Glyphs, 2)
	require.Len(t, data.Pages, 1)
	assert.Equal(t, "test_0.png", data.Pages[0].File)

	require.Len(t, data.Kernings, 1)
	assert.Equal(t, int16(-2), data.Kernings[0].Amount)

	require.NoError(t, loader.Unload(resource))
	assert.Nil(t, resource.Data)
}
