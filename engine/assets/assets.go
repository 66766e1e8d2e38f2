package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/prisma/engine/assets/loaders"
	"github.com/spaghettifunk/prisma/engine/containers"
	"github.com/spaghettifunk/prisma/engine/core"
)

// AssetInfo is the watcher's view of a file on disk.
type AssetInfo struct {
	Path       string
	Type       loaders.ResourceType
	LastLoaded time.Time
}

// ReloadEvent is queued when a watched asset changes on disk. The render
// loop drains these and re-creates the affected GPU resources.
type ReloadEvent struct {
	Path string
	Type loaders.ResourceType
}

// AssetManager indexes an asset directory and watches it for changes.
// Reload notifications go through a ring queue so that the render loop,
// which owns the GL context, can re-create resources on its own thread.
type AssetManager struct {
	assets  map[string]AssetInfo
	loaders map[loaders.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool

	reloadMu sync.Mutex
	reloads  *containers.RingQueue[ReloadEvent]
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[loaders.ResourceType]Loader),
		fsnotify: fsWatch,
		reloads:  containers.NewRingQueue[ReloadEvent](64),
		done:     make(chan struct{}),
	}, nil
}

// Initialize indexes assetsDir, registers the default loaders and starts
// the watch goroutine. An empty assetsDir disables watching entirely.
func (am *AssetManager) Initialize(assetsDir string) error {
	am.registerLoader(loaders.ResourceTypeShader, &loaders.ShaderLoader{})
	am.registerLoader(loaders.ResourceTypeImage, &loaders.ImageLoader{})
	am.registerLoader(loaders.ResourceTypeBitmapFont, &loaders.BitmapFontLoader{})

	if assetsDir == "" {
		return nil
	}

	go am.start()

	return am.addRecursive(assetsDir)
}

func (am *AssetManager) registerLoader(assetType loaders.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset loads (or reloads) the asset at path with the loader matching
// its type.
func (am *AssetManager) LoadAsset(path string, params interface{}) (*loaders.Resource, error) {
	assetType := determineAssetType(path)
	if assetType == loaders.ResourceTypeNone {
		return nil, fmt.Errorf("no loader for file: %s", path)
	}

	loader, exists := am.loaders[assetType]
	if !exists {
		return nil, fmt.Errorf("no loader registered for asset type: %s", assetType)
	}

	resource, err := loader.Load(path, params)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()

	return resource, nil
}

func (am *AssetManager) UnloadAsset(resource *loaders.Resource) error {
	loader, exists := am.loaders[resource.Type]
	if !exists {
		return fmt.Errorf("no loader registered for asset type: %s", resource.Type)
	}
	return loader.Unload(resource)
}

// NextReload pops a pending reload event, if any. Called from the render
// loop once per frame.
func (am *AssetManager) NextReload() (ReloadEvent, bool) {
	am.reloadMu.Lock()
	defer am.reloadMu.Unlock()

	ev, err := am.reloads.Dequeue()
	if err != nil {
		return ReloadEvent{}, false
	}
	return ev, true
}

func (am *AssetManager) Shutdown() {
	if am.isClosed {
		return
	}
	am.isClosed = true
	close(am.done)
}

// addRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	return am.watchRecursive(name, false)
}

func (am *AssetManager) start() {
	for {
		select {

		case e := <-am.fsnotify.Events:
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					am.watchRecursive(e.Name, false)
				}
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				am.handleFileEvent(e.Name, true)
			}
			// A deleted path cannot be stat'ed, so remove it from both the
			// index and the watch list unconditionally.
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
				am.fsnotify.Remove(e.Name)
			}

		case e := <-am.fsnotify.Errors:
			core.LogError(e.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch list.
func (am *AssetManager) watchRecursive(path string, unWatch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if unWatch {
				return am.fsnotify.Remove(walkPath)
			}
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath, false)
		return nil
	})
}

// handleFileEvent indexes a created or modified file and, when the file
// was already known, queues a reload for the render loop.
func (am *AssetManager) handleFileEvent(path string, notify bool) {
	assetType := determineAssetType(path)
	if assetType == loaders.ResourceTypeNone {
		return
	}

	am.mutex.Lock()
	_, known := am.assets[path]
	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()

	if notify && known {
		am.reloadMu.Lock()
		if err := am.reloads.Enqueue(ReloadEvent{Path: path, Type: assetType}); err != nil {
			core.LogWarn("reload queue full, dropping event for %s", path)
		}
		am.reloadMu.Unlock()
	}
}

func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, path)
}

func determineAssetType(path string) loaders.ResourceType {
	switch filepath.Ext(path) {
	case ".vert", ".frag", ".glsl":
		return loaders.ResourceTypeShader
	case ".png":
		return loaders.ResourceTypeImage
	case ".fnt":
		return loaders.ResourceTypeBitmapFont
	default:
		return loaders.ResourceTypeNone
	}
}
