package testbed

import (
	"github.com/spaghettifunk/prisma/engine/assets/loaders"
	"github.com/spaghettifunk/prisma/engine/gfx"
	"github.com/spaghettifunk/prisma/engine/math"
)

const vertexSource = `#version 410
layout(location = 0) in vec2 a_position;
layout(location = 1) in vec3 a_color;

layout(std140) uniform Locals {
    mat4 u_mvp;
};

out vec3 v_color;

void main() {
    float shift = float(gl_InstanceID) * 0.25 - 0.5;
    gl_Position = u_mvp * vec4(a_position.x + shift, a_position.y, 0.0, 1.0);
    v_color = a_color;
}
`

const fragmentSource = `#version 410
in vec3 v_color;
out vec4 out_color;

void main() {
    out_color = vec4(v_color, 1.0);
}
`

const instanceCount = 5

// Demo draws a spinning triangle a few times over, each instance shifted
// in clip space by the vertex shader. It exercises pipelines, vertex and
// uniform buffers, the command encoder and the drop path.
type Demo struct {
	device   *gfx.Device
	pipeline *gfx.Pipeline
	vertices *gfx.Buffer
	locals   *gfx.Buffer

	vertSrc string
	fragSrc string
}

func New(device *gfx.Device) (*Demo, error) {
	d := &Demo{
		device:  device,
		vertSrc: vertexSource,
		fragSrc: fragmentSource,
	}

	pipeline, err := d.buildPipeline()
	if err != nil {
		return nil, err
	}
	d.pipeline = pipeline

	vertices, err := device.CreateVertexBuffer().
		WithInfo(vertexLayout()).
		WithData([]float32{
			// x, y, r, g, b
			0.0, 0.5, 1.0, 0.2, 0.3,
			-0.45, -0.5, 0.1, 1.0, 0.3,
			0.45, -0.5, 0.1, 0.2, 1.0,
		}).
		Build()
	if err != nil {
		return nil, err
	}
	d.vertices = vertices

	locals, err := device.CreateUniformBuffer(0, "Locals").
		WithData(math.Mat4Identity().Floats()).
		Build()
	if err != nil {
		return nil, err
	}
	d.locals = locals

	return d, nil
}

func vertexLayout() *gfx.VertexInfo {
	return gfx.NewVertexInfo().
		Attr(0, gfx.VertexFormatFloat32x2).
		Attr(1, gfx.VertexFormatFloat32x3)
}

func (d *Demo) buildPipeline() (*gfx.Pipeline, error) {
	return d.device.CreatePipeline().
		From(d.vertSrc, d.fragSrc).
		WithVertexInfo(vertexLayout()).
		WithColorBlend(gfx.BlendNormal).
		Build()
}

// Frame records and submits one frame. elapsed is seconds since startup.
func (d *Demo) Frame(elapsed float64) {
	mvp := math.Mat4Mul(
		math.Mat4EulerZ(float32(elapsed)),
		math.Mat4Scale(math.Vec3{X: 0.6, Y: 0.6, Z: 1.0}),
	)
	d.device.SetBufferDataF32(d.locals, mvp.Floats())

	clear := gfx.ClearColor(gfx.NewColor(0.1, 0.2, 0.3, 1.0))

	encoder := d.device.CreateCommandEncoder()
	encoder.Begin(&clear)
	encoder.SetPipeline(d.pipeline)
	encoder.BindBuffer(d.vertices)
	encoder.BindBuffer(d.locals)
	encoder.DrawInstanced(gfx.DrawTriangles, 0, 3, instanceCount)
	encoder.End()

	d.device.Render(encoder.Commands())
}

// ReloadShader swaps in a changed shader stage and rebuilds the pipeline.
// The old pipeline is dropped; the next Device.Clean deletes it.
func (d *Demo) ReloadShader(src *loaders.ShaderSource) error {
	switch src.Stage {
	case loaders.ShaderStageVertex:
		d.vertSrc = src.Source
	case loaders.ShaderStageFragment:
		d.fragSrc = src.Source
	}

	pipeline, err := d.buildPipeline()
	if err != nil {
		return err
	}
	d.pipeline.Drop()
	d.pipeline = pipeline
	return nil
}

// Shutdown drops every resource the demo owns.
func (d *Demo) Shutdown() {
	d.pipeline.Drop()
	d.vertices.Drop()
	d.locals.Drop()
}
