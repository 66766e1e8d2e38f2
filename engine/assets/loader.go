package assets

import "github.com/spaghettifunk/prisma/engine/assets/loaders"

// Loader turns a file on disk into a Resource. `interface{}` params allow
// loaders to take type specific options (flip, font face name, ...).
type Loader interface {
	Load(path string, params interface{}) (*loaders.Resource, error)
	Unload(*loaders.Resource) error
}
