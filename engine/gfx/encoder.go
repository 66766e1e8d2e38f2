package gfx

// CommandEncoder records an ordered command list between Begin and End.
// It performs no semantic validation: what is recorded is what the backend
// executes, in the same order. Encoders are not safe for concurrent use.
type CommandEncoder struct {
	width    int32
	height   int32
	commands []Command
}

// NewCommandEncoder creates an encoder for a surface of the given size.
func NewCommandEncoder(width, height int32) *CommandEncoder {
	return &CommandEncoder{
		width:  width,
		height: height,
		// enough for a typical pass without growing
		commands: make([]Command, 0, 32),
	}
}

// Begin opens a render pass, optionally clearing color, depth and stencil.
func (e *CommandEncoder) Begin(clear *ClearOptions) {
	cmd := Command{Kind: CommandBegin}
	if clear != nil {
		cmd.Clear = *clear
	}
	e.commands = append(e.commands, cmd)
}

// End closes the pass, restoring scissor, buffer and framebuffer bindings.
func (e *CommandEncoder) End() {
	e.commands = append(e.commands, Command{Kind: CommandEnd})
}

// SetPipeline makes the pipeline and its full state block current.
func (e *CommandEncoder) SetPipeline(p *Pipeline) {
	e.commands = append(e.commands, Command{
		Kind:    CommandSetPipeline,
		ID:      p.ID(),
		Options: p.Options(),
	})
}

// BindBuffer binds a vertex, index or uniform buffer for subsequent draws.
func (e *CommandEncoder) BindBuffer(b *Buffer) {
	e.commands = append(e.commands, Command{Kind: CommandBindBuffer, ID: b.ID()})
}

// Draw issues a draw call of count vertices starting at offset. Uses the
// bound index buffer when one was bound since the last Begin.
func (e *CommandEncoder) Draw(primitive DrawPrimitive, offset, count int32) {
	e.commands = append(e.commands, Command{
		Kind:      CommandDraw,
		Primitive: primitive,
		Offset:    offset,
		Count:     count,
	})
}

// DrawInstanced is Draw repeated for instanceCount instances.
func (e *CommandEncoder) DrawInstanced(primitive DrawPrimitive, offset, count, instanceCount int32) {
	e.commands = append(e.commands, Command{
		Kind:          CommandDrawInstanced,
		Primitive:     primitive,
		Offset:        offset,
		Count:         count,
		InstanceCount: instanceCount,
	})
}

// BindTexture binds the texture to the given unit slot and writes the slot
// into the sampler uniform at location.
func (e *CommandEncoder) BindTexture(t *Texture, slot, location uint32) {
	e.commands = append(e.commands, Command{
		Kind:     CommandBindTexture,
		ID:       t.ID(),
		Slot:     slot,
		Location: location,
	})
}

// SetSize updates the logical surface size mid-list.
func (e *CommandEncoder) SetSize(width, height int32) {
	e.width = width
	e.height = height
	e.commands = append(e.commands, Command{
		Kind:   CommandSetSize,
		Width:  float32(width),
		Height: float32(height),
	})
}

// SetViewport sets the viewport in logical pixels, scaled by DPI at
// execution time.
func (e *CommandEncoder) SetViewport(x, y, width, height float32) {
	e.commands = append(e.commands, Command{
		Kind:   CommandSetViewport,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	})
}

// SetScissor restricts drawing to a rectangle given in top-left-origin
// logical pixels. The backend converts to the native bottom-left origin.
func (e *CommandEncoder) SetScissor(x, y, width, height float32) {
	e.commands = append(e.commands, Command{
		Kind:   CommandSetScissor,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	})
}

// Commands returns the recorded list. The slice must be treated as
// immutable once handed to Device.Render.
func (e *CommandEncoder) Commands() []Command {
	return e.commands
}
