package loaders

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// ImageLoader decodes PNG files into tightly packed RGBA pixels, the only
// layout the texture upload path accepts.
type ImageLoader struct{}

func (il *ImageLoader) Load(path string, params interface{}) (*Resource, error) {
	flipY := false
	if p, ok := params.(*ImageParams); ok {
		flipY = p.FlipY
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, bounds.Min, xdraw.Src)

	if flipY {
		flipVertically(rgba)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return &Resource{
		Name:     name,
		FullPath: path,
		Type:     ResourceTypeImage,
		DataSize: uint64(len(rgba.Pix)),
		Data: &ImageData{
			Width:  uint32(bounds.Dx()),
			Height: uint32(bounds.Dy()),
			Pixels: rgba.Pix,
		},
	}, nil
}

func (il *ImageLoader) Unload(resource *Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}

func flipVertically(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
