package gfx

// ClearOptions selects which buffers a Begin command clears and with what
// values. A nil field leaves that buffer untouched.
type ClearOptions struct {
	Color   *Color
	Depth   *float32
	Stencil *int32
}

// ClearColor is a shorthand for clearing only the color buffer.
func ClearColor(c Color) ClearOptions {
	return ClearOptions{Color: &c}
}

// CommandKind tags one variant of the recorded command set.
type CommandKind uint8

const (
	CommandBegin CommandKind = iota
	CommandEnd
	CommandSetPipeline
	CommandBindBuffer
	CommandDraw
	CommandDrawInstanced
	CommandBindTexture
	CommandSetSize
	CommandSetViewport
	CommandSetScissor
)

// Command is one recorded drawing operation. The active fields depend on
// Kind; commands are flat values so recording never allocates per command.
// A recorded list is immutable and executed strictly in order, since GPU
// state changes are order-dependent.
type Command struct {
	Kind CommandKind

	// Begin
	Clear ClearOptions

	// SetPipeline, BindBuffer, BindTexture
	ID      uint64
	Options PipelineOptions

	// Draw, DrawInstanced
	Primitive     DrawPrimitive
	Offset        int32
	Count         int32
	InstanceCount int32

	// BindTexture
	Slot     uint32
	Location uint32

	// SetSize, SetViewport, SetScissor
	X      float32
	Y      float32
	Width  float32
	Height float32
}
