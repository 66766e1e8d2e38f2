package loaders

type ResourceType int

const (
	ResourceTypeNone ResourceType = iota
	ResourceTypeShader
	ResourceTypeImage
	ResourceTypeBitmapFont
)

func (rt ResourceType) String() string {
	switch rt {
	case ResourceTypeShader:
		return "shader"
	case ResourceTypeImage:
		return "image"
	case ResourceTypeBitmapFont:
		return "bitmap font"
	default:
		return "none"
	}
}

// Resource is the result of a loader run. Data holds a type specific
// payload: *ShaderSource, *ImageData or *BitmapFontData.
type Resource struct {
	Name     string
	FullPath string
	Type     ResourceType
	DataSize uint64
	Data     interface{}
}

type ShaderStage int

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
)

// ShaderSource is a GLSL stage source read from disk.
type ShaderSource struct {
	Stage  ShaderStage
	Source string
}

// ImageData is a decoded image, always converted to tightly packed RGBA.
type ImageData struct {
	Width  uint32
	Height uint32
	Pixels []uint8
}

// ImageParams are the options accepted by the image loader.
type ImageParams struct {
	FlipY bool
}

// BitmapFontData describes a BMFont atlas. Pages name the texture files
// that back the glyphs; they are loaded separately as images.
type BitmapFontData struct {
	Face       string
	Size       uint32
	LineHeight int32
	Baseline   int32
	AtlasSizeX int32
	AtlasSizeY int32
	Glyphs     []FontGlyph
	Kernings   []FontKerning
	Pages      []FontPage
}

type FontGlyph struct {
	Codepoint rune
	X         uint16
	Y         uint16
	Width     uint16
	Height    uint16
	XOffset   int16
	YOffset   int16
	XAdvance  int16
	PageID    uint8
}

type FontKerning struct {
	Codepoint0 rune
	Codepoint1 rune
	Amount     int16
}

type FontPage struct {
	ID   int8
	File string
}
