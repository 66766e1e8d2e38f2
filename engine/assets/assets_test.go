package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prisma/engine/assets/loaders"
)

func TestDetermineAssetType(t *testing.T) {
	tests := []struct {
		path string
		want loaders.ResourceType
	}{
		{"shaders/triangle.vert", loaders.ResourceTypeShader},
		{"shaders/triangle.frag", loaders.ResourceTypeShader},
		{"shaders/common.glsl", loaders.ResourceTypeShader},
		{"textures/grass.png", loaders.ResourceTypeImage},
		{"fonts/roboto.fnt", loaders.ResourceTypeBitmapFont},
		{"notes.txt", loaders.ResourceTypeNone},
		{"Makefile", loaders.ResourceTypeNone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, determineAssetType(tt.path))
		})
	}
}

func TestLoadAssetRoutesToShaderLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.vert")
	require.NoError(t, os.WriteFile(path, []byte("#version 410\nvoid main() {}\n"), 0o644))

	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(""))
	defer am.Shutdown()

	resource, err := am.LoadAsset(path, nil)
	require.NoError(t, err)

	assert.Equal(t, loaders.ResourceTypeShader, resource.Type)
	src := resource.Data.(*loaders.ShaderSource)
	assert.Equal(t, loaders.ShaderStageVertex, src.Stage)
	assert.Contains(t, src.Source, "#version 410")
}

func TestLoadAssetUnknownExtension(t *testing.T) {
	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(""))
	defer am.Shutdown()

	_, err = am.LoadAsset("data.bin", nil)
	assert.Error(t, err)
}

func TestNextReloadEmpty(t *testing.T) {
	am, err := NewAssetManager()
	require.NoError(t, err)
	defer am.Shutdown()

	_, ok := am.NextReload()
	assert.False(t, ok)
}

func TestHandleFileEventQueuesReloadOnlyForKnownAssets(t *testing.T) {
	am, err := NewAssetManager()
	require.NoError(t, err)
	defer am.Shutdown()

	// First sighting indexes the file without queueing.
	am.handleFileEvent("shaders/a.frag", true)
	_, ok := am.NextReload()
	assert.False(t, ok)

	// A change to a known file queues a reload.
	am.handleFileEvent("shaders/a.frag", true)
	ev, ok := am.NextReload()
	require.True(t, ok)
	assert.Equal(t, "shaders/a.frag", ev.Path)
	assert.Equal(t, loaders.ResourceTypeShader, ev.Type)
}
