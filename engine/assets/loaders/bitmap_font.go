package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fzipp/bmfont"
)

// BitmapFontLoader imports BMFont .fnt descriptors. Page textures are not
// loaded here; callers feed the page file names through the image loader.
type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string, params interface{}) (*Resource, error) {
	desc, err := bmfont.LoadDescriptor(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	data := &BitmapFontData{
		Face:       desc.Info.Face,
		Size:       uint32(desc.Info.Size),
		LineHeight: int32(desc.Common.LineHeight),
		Baseline:   int32(desc.Common.Base),
		AtlasSizeX: int32(desc.Common.ScaleW),
		AtlasSizeY: int32(desc.Common.ScaleH),
		Glyphs:     make([]FontGlyph, 0, len(desc.Chars)),
		Kernings:   make([]FontKerning, 0, len(desc.Kerning)),
		Pages:      make([]FontPage, 0, len(desc.Pages)),
	}

	for _, p := range desc.Pages {
		data.Pages = append(data.Pages, FontPage{
			ID:   int8(p.ID),
			File: p.File,
		})
	}

	for _, g := range desc.Chars {
		data.Glyphs = append(data.Glyphs, FontGlyph{
			Codepoint: g.ID,
			X:         uint16(g.X),
			Y:         uint16(g.Y),
			Width:     uint16(g.Width),
			Height:    uint16(g.Height),
			XOffset:   int16(g.XOffset),
			YOffset:   int16(g.YOffset),
			XAdvance:  int16(g.XAdvance),
			PageID:    uint8(g.Page),
		})
	}

	for pair, k := range desc.Kerning {
		data.Kernings = append(data.Kernings, FontKerning{
			Codepoint0: pair.First,
			Codepoint1: pair.Second,
			Amount:     int16(k.Amount),
		})
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return &Resource{
		Name:     name,
		FullPath: path,
		Type:     ResourceTypeBitmapFont,
		DataSize: uint64(len(data.Glyphs)),
		Data:     data,
	}, nil
}

func (fl *BitmapFontLoader) Unload(resource *Resource) error {
	if resource.Data != nil {
		data := resource.Data.(*BitmapFontData)
		data.Glyphs = nil
		data.Kernings = nil
		data.Pages = nil
		resource.Data = nil
		resource.DataSize = 0
	}
	return nil
}
