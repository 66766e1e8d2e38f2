package loaders

import (
	"os"
	"path/filepath"
	"strings"
)

// ShaderLoader reads GLSL sources. The stage is derived from the file
// extension: .vert is a vertex stage, everything else a fragment stage.
type ShaderLoader struct{}

func (sl *ShaderLoader) Load(path string, params interface{}) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	stage := ShaderStageFragment
	if filepath.Ext(path) == ".vert" {
		stage = ShaderStageVertex
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return &Resource{
		Name:     name,
		FullPath: path,
		Type:     ResourceTypeShader,
		DataSize: uint64(len(data)),
		Data: &ShaderSource{
			Stage:  stage,
			Source: string(data),
		},
	}, nil
}

func (sl *ShaderLoader) Unload(resource *Resource) error {
	resource.Data = nil
	resource.DataSize = 0
	return nil
}
