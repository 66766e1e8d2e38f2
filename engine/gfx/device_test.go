package gfx_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/engine/gfx"
)

var errFakeCreate = errors.New("create failed")

// fakeBackend records every call the device makes, so resource lifetime
// can be asserted without a live rendering context.
type fakeBackend struct {
	nextID uint64

	createdPipelines []uint64
	createdBuffers   []uint64
	createdTextures  []uint64
	createdTargets   []uint64

	bufferData map[uint64][]byte

	cleanCalls int
	cleaned    []gfx.ResourceID

	rendered      [][]gfx.Command
	renderTargets []*uint64

	failRenderTexture bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{bufferData: make(map[uint64][]byte)}
}

func (f *fakeBackend) allocate() uint64 {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) Limits() gfx.Limits {
	return gfx.Limits{MaxTextureSize: 4096, MaxUniformBlockSize: 16384}
}

func (f *fakeBackend) CreatePipeline(vertexSource, fragmentSource []byte, attrs []gfx.VertexAttr, options gfx.PipelineOptions) (uint64, error) {
	id := f.allocate()
	f.createdPipelines = append(f.createdPipelines, id)
	return id, nil
}

func (f *fakeBackend) CreateVertexBuffer(info *gfx.VertexInfo) (uint64, error) {
	id := f.allocate()
	f.createdBuffers = append(f.createdBuffers, id)
	return id, nil
}

func (f *fakeBackend) CreateIndexBuffer() (uint64, error) {
	id := f.allocate()
	f.createdBuffers = append(f.createdBuffers, id)
	return id, nil
}

func (f *fakeBackend) CreateUniformBuffer(slot uint32, name string) (uint64, error) {
	id := f.allocate()
	f.createdBuffers = append(f.createdBuffers, id)
	return id, nil
}

func (f *fakeBackend) SetBufferData(id uint64, data []byte) {
	f.bufferData[id] = data
}

func (f *fakeBackend) CreateTexture(info gfx.TextureInfo) (uint64, error) {
	id := f.allocate()
	f.createdTextures = append(f.createdTextures, id)
	return id, nil
}

func (f *fakeBackend) CreateRenderTexture(textureID uint64, info gfx.TextureInfo) (uint64, error) {
	if f.failRenderTexture {
		return 0, errFakeCreate
	}
	id := f.allocate()
	f.createdTargets = append(f.createdTargets, id)
	return id, nil
}

func (f *fakeBackend) UpdateTexture(id uint64, opts gfx.TextureUpdate) error {
	return nil
}

func (f *fakeBackend) ReadPixels(id uint64, dst []byte, opts gfx.TextureRead) error {
	return nil
}

func (f *fakeBackend) Render(commands []gfx.Command, target *uint64) {
	f.rendered = append(f.rendered, commands)
	f.renderTargets = append(f.renderTargets, target)
}

func (f *fakeBackend) Clean(toClean []gfx.ResourceID) {
	f.cleanCalls++
	f.cleaned = append(f.cleaned, toClean...)
}

func (f *fakeBackend) SetSize(width, height int32) {}
func (f *fakeBackend) SetDPI(scale float64)        {}
func (f *fakeBackend) SwapBuffers()                {}

func testVertexInfo() *gfx.VertexInfo {
	return gfx.NewVertexInfo().
		Attr(0, gfx.VertexFormatFloat32x2).
		Attr(1, gfx.VertexFormatFloat32x3)
}

func TestDropThenCleanDeletesExactlyOnce(t *testing.T) {
	backend := newFakeBackend()
	device := gfx.NewDevice(backend)

	buffer, err := device.CreateVertexBuffer().WithInfo(testVertexInfo()).Build()
	require.NoError(t, err)

	texture, err := device.CreateTexture().WithSize(4, 4).Build()
	require.NoError(t, err)

	buffer.Drop()
	texture.Drop()
	device.Clean()

	require.Len(t, backend.cleaned, 2)
	assert.Contains(t, backend.cleaned, gfx.ResourceID{Kind: gfx.ResourceKindBuffer, ID: buffer.ID()})
	assert.Contains(t, backend.cleaned, gfx.ResourceID{Kind: gfx.ResourceKindTexture, ID: texture.ID()})

	// Nothing left pending: a second Clean never reaches the backend.
	device.Clean()
	assert.Equal(t, 1, backend.cleanCalls)
}

func TestDropIsIdempotent(t *testing.T) {
	backend := newFakeBackend()
	device := gfx.NewDevice(backend)

	buffer, err := device.CreateIndexBuffer().WithData([]uint32{0, 1, 2}).Build()
	require.NoError(t, err)

	buffer.Drop()
	buffer.Drop()
	buffer.Drop()
	device.Clean()

	assert.Len(t, backend.cleaned, 1)
}

func TestCleanWithoutDropsIsNoop(t *testing.T) {
	backend := newFakeBackend()
	device := gfx.NewDevice(backend)

	device.Clean()

	assert.Zero(t, backend.cleanCalls)
}

func TestRenderTextureDropIncludesColorTexture(t *testing.T) {
	backend := newFakeBackend()
	device := gfx.NewDevice(backend)

	target, err := device.CreateRenderTexture(64, 64).WithDepth().Build()
	require.NoError(t, err)

	target.Drop()
	device.Clean()

	require.Len(t, backend.cleaned, 2)
	assert.Contains(t, backend.cleaned, gfx.ResourceID{Kind: gfx.ResourceKindRenderTexture, ID: target.ID()})
	assert.Contains(t, backend.cleaned, gfx.ResourceID{Kind: gfx.ResourceKindTexture, ID: target.Texture().ID()})
}

func TestFailedRenderTextureBuildLeavesNothingRegistered(t *testing.T) {
	backend := newFakeBackend()
	backend.failRenderTexture = true
	device := gfx.NewDevice(backend)

	_, err := device.CreateRenderTexture(64, 64).Build()
	require.ErrorIs(t, err, errFakeCreate)

	// The color texture created before the failure is scheduled for
	// deletion, so the failed build does not leak it.
	device.Clean()
	require.Len(t, backend.cleaned, 1)
	assert.Equal(t, gfx.ResourceKindTexture, backend.cleaned[0].Kind)
}

func TestRenderToPassesTargetID(t *testing.T) {
	backend := newFakeBackend()
	device := gfx.NewDevice(backend)

	target, err := device.CreateRenderTexture(32, 32).Build()
	require.NoError(t, err)

	encoder := device.CreateCommandEncoder()
	encoder.Begin(nil)
	encoder.End()

	device.RenderTo(target, encoder.Commands())
	device.Render(encoder.Commands())

	require.Len(t, backend.renderTargets, 2)
	require.NotNil(t, backend.renderTargets[0])
	assert.Equal(t, target.ID(), *backend.renderTargets[0])
	assert.Nil(t, backend.renderTargets[1])
}

func TestSetBufferDataF32UploadsBytes(t *testing.T) {
	backend := newFakeBackend()
	device := gfx.NewDevice(backend)

	buffer, err := device.CreateVertexBuffer().WithInfo(testVertexInfo()).Build()
	require.NoError(t, err)

	device.SetBufferDataF32(buffer, []float32{1, 2, 3, 4})
	assert.Len(t, backend.bufferData[buffer.ID()], 16)

	device.SetBufferDataU32(buffer, []uint32{1, 2, 3})
	assert.Len(t, backend.bufferData[buffer.ID()], 12)
}

func TestPipelineBuilderValidation(t *testing.T) {
	backend := newFakeBackend()
	device := gfx.NewDevice(backend)

	tests := []struct {
		name    string
		build   func() (*gfx.Pipeline, error)
		wantErr error
	}{
		{
			name: "missing vertex source",
			build: func() (*gfx.Pipeline, error) {
				return device.CreatePipeline().From("", "frag").WithVertexInfo(testVertexInfo()).Build()
			},
			wantErr: gfx.ErrMissingVertexSource,
		},
		{
			name: "missing fragment source",
			build: func() (*gfx.Pipeline, error) {
				return device.CreatePipeline().From("vert", "").WithVertexInfo(testVertexInfo()).Build()
			},
			wantErr: gfx.ErrMissingFragmentSource,
		},
		{
			name: "missing vertex info",
			build: func() (*gfx.Pipeline, error) {
				return device.CreatePipeline().From("vert", "frag").Build()
			},
			wantErr: gfx.ErrMissingVertexInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// No validation failure ever reached the backend.
	assert.Empty(t, backend.createdPipelines)
}

func TestInvalidTextureSize(t *testing.T) {
	backend := newFakeBackend()
	device := gfx.NewDevice(backend)

	_, err := device.CreateTexture().WithSize(0, 16).Build()
	assert.ErrorIs(t, err, gfx.ErrInvalidTextureSize)

	_, err = device.CreateRenderTexture(-1, 16).Build()
	assert.ErrorIs(t, err, gfx.ErrInvalidTextureSize)
}

func TestDropManagerConcurrentPushes(t *testing.T) {
	dm := gfx.NewDropManager()

	const workers = 16
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(base uint64) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				dm.Push(gfx.ResourceID{Kind: gfx.ResourceKindBuffer, ID: base + uint64(i)})
			}
		}(uint64(w * perWorker))
	}
	wg.Wait()

	batch := dm.Drain()
	assert.Len(t, batch, workers*perWorker)
	assert.Nil(t, dm.Drain())
}
