package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/prisma/engine/gfx"
)

// innerPipeline owns the native program, its shaders, the vertex array
// object and the locations of every free-standing uniform.
type innerPipeline struct {
	vertex           uint32
	fragment         uint32
	program          uint32
	vao              uint32
	uniformLocations []int32
}

// innerAttr is a vertex attribute with its interleaved byte offset baked in.
type innerAttr struct {
	location   uint32
	size       int32
	dataType   uint32
	normalized bool
	offset     int32
}

// vertexAttributes is the layout a vertex buffer re-applies when bound
// under a new pipeline.
type vertexAttributes struct {
	stride   int32
	attrs    []innerAttr
	stepMode gfx.VertexStepMode
}

// buildAttributes computes the stride and the per-attribute offsets, which
// are strictly increasing in declaration order.
func buildAttributes(attrs []gfx.VertexAttr) (int32, []innerAttr) {
	var stride int32
	inner := make([]innerAttr, 0, len(attrs))
	for _, attr := range attrs {
		inner = append(inner, innerAttr{
			location:   attr.Location,
			size:       attr.Format.Components(),
			dataType:   glVertexType(attr.Format),
			normalized: attr.Format.Normalized(),
			offset:     stride,
		})
		stride += attr.Format.Bytes()
	}
	return stride, inner
}

// enable re-specifies the attribute pointers for the given layout against
// the currently bound array buffer.
func (va *vertexAttributes) enable() {
	var divisor uint32
	if va.stepMode == gfx.VertexStepModeInstance {
		divisor = 1
	}
	for _, attr := range va.attrs {
		gl.EnableVertexAttribArray(attr.location)
		gl.VertexAttribPointer(attr.location, attr.size, attr.dataType, attr.normalized, va.stride, gl.PtrOffset(int(attr.offset)))
		gl.VertexAttribDivisor(attr.location, divisor)
	}
}

func newInnerPipeline(vertexSource, fragmentSource string) (*innerPipeline, error) {
	vertex, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, err
	}

	fragment, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, err
	}

	program, err := linkProgram(vertex, fragment)
	if err != nil {
		gl.DeleteShader(vertex)
		gl.DeleteShader(fragment)
		return nil, err
	}

	locations := uniformLocations(program)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	return &innerPipeline{
		vertex:           vertex,
		fragment:         fragment,
		program:          program,
		vao:              vao,
		uniformLocations: locations,
	}, nil
}

// bind makes the pipeline current and reapplies its whole state block.
func (p *innerPipeline) bind(options gfx.PipelineOptions) {
	gl.BindVertexArray(p.vao)
	gl.UseProgram(p.program)

	setStencil(options.Stencil)
	setDepth(options.DepthStencil)
	setColorMask(options.ColorMask)
	setCulling(options.CullMode)
	setBlendMode(options.ColorBlend, options.AlphaBlend)
}

func (p *innerPipeline) clean() {
	gl.DeleteShader(p.vertex)
	gl.DeleteShader(p.fragment)
	gl.DeleteProgram(p.program)
	gl.DeleteVertexArrays(1, &p.vao)
}

func setStencil(opts *gfx.StencilOptions) {
	if shouldDisableStencil(opts) {
		gl.Disable(gl.STENCIL_TEST)
		return
	}
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilMask(opts.WriteMask)
	gl.StencilOp(glStencilAction(opts.StencilFail), glStencilAction(opts.DepthFail), glStencilAction(opts.Pass))
	compare, ok := glCompareMode(opts.Compare)
	if !ok {
		compare = gl.ALWAYS
	}
	gl.StencilFunc(compare, int32(opts.Reference), opts.ReadMask)
}

func setDepth(ds gfx.DepthStencil) {
	if compare, ok := glCompareMode(ds.Compare); ok {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(compare)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.DepthMask(ds.Write)
}

func setColorMask(mask gfx.ColorMask) {
	gl.ColorMask(mask.R, mask.G, mask.B, mask.A)
}

func setCulling(mode gfx.CullMode) {
	if face, ok := glCullMode(mode); ok {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(face)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

func setBlendMode(color, alpha *gfx.BlendMode) {
	blend := resolveBlend(color, alpha)
	if !blend.enabled {
		gl.Disable(gl.BLEND)
		return
	}

	gl.Enable(gl.BLEND)
	if blend.separate {
		gl.BlendFuncSeparate(
			glBlendFactor(blend.color.Src), glBlendFactor(blend.color.Dst),
			glBlendFactor(blend.alpha.Src), glBlendFactor(blend.alpha.Dst),
		)
		gl.BlendEquationSeparate(glBlendOperation(blend.color.Op), glBlendOperation(blend.alpha.Op))
	} else {
		gl.BlendFunc(glBlendFactor(blend.color.Src), glBlendFactor(blend.color.Dst))
		gl.BlendEquation(glBlendOperation(blend.color.Op))
	}
}

func compileShader(typ uint32, source string) (uint32, error) {
	shader := gl.CreateShader(typ)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return shader, nil
	}

	infoLog := shaderInfoLog(shader)
	gl.DeleteShader(shader)

	stage := "vertex"
	if typ == gl.FRAGMENT_SHADER {
		stage = "fragment"
	}
	return 0, fmt.Errorf("%s shader: %s", stage, infoLog)
}

func linkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return program, nil
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	gl.DeleteProgram(program)

	return 0, fmt.Errorf("program link: %s", strings.TrimRight(infoLog, "\x00"))
}

// uniformLocations resolves every active free-standing uniform. Uniforms
// consumed entirely by a named block have no location and are skipped,
// which is expected rather than an error.
func uniformLocations(program uint32) []int32 {
	var count int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)

	var maxNameLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxNameLen)
	if maxNameLen == 0 {
		maxNameLen = 256
	}

	locations := make([]int32, 0, count)
	nameBuf := make([]byte, maxNameLen+1)
	for i := int32(0); i < count; i++ {
		var nameLen, size int32
		var xtype uint32
		gl.GetActiveUniform(program, uint32(i), maxNameLen, &nameLen, &size, &xtype, &nameBuf[0])

		name := string(nameBuf[:nameLen])
		loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			continue
		}
		locations = append(locations, loc)
	}
	return locations
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}
