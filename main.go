package main

import (
	"os"

	"github.com/spaghettifunk/prisma/engine/assets"
	"github.com/spaghettifunk/prisma/engine/assets/loaders"
	"github.com/spaghettifunk/prisma/engine/config"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/gfx"
	"github.com/spaghettifunk/prisma/engine/gfx/opengl"
	"github.com/spaghettifunk/prisma/engine/platform"
	"github.com/spaghettifunk/prisma/testbed"
)

func main() {
	cfg, err := config.Load("prisma.toml")
	if err != nil {
		core.LogFatal("failed to load configuration: %s", err)
	}
	core.SetLogLevel(cfg.Log.Level)

	p := platform.New()
	if err := p.Startup(cfg.Window.Title, cfg.Window.X, cfg.Window.Y, cfg.Window.Width, cfg.Window.Height, cfg.Window.VSync); err != nil {
		os.Exit(1)
	}
	defer p.Shutdown()

	backend, err := opengl.New(p.ProcAddress, p.SwapBuffers)
	if err != nil {
		core.LogFatal("failed to initialize the opengl backend: %s", err)
	}

	device := gfx.NewDevice(backend)
	fbWidth, fbHeight := p.FramebufferSize()
	device.SetSize(fbWidth, fbHeight)
	device.SetDPI(p.ContentScale())

	p.OnResize = func(width, height int32) {
		device.SetSize(width, height)
	}
	p.OnContentScale = func(scale float64) {
		device.SetDPI(scale)
	}

	assetManager, err := assets.NewAssetManager()
	if err != nil {
		core.LogFatal("failed to create the asset manager: %s", err)
	}
	if err := assetManager.Initialize(cfg.Assets.Dir); err != nil {
		core.LogFatal("failed to initialize the asset manager: %s", err)
	}
	defer assetManager.Shutdown()

	demo, err := testbed.New(device)
	if err != nil {
		core.LogFatal("failed to create the demo scene: %s", err)
	}

	core.MetricsInitialize()
	clock := core.NewClock()
	clock.Start()

	lastElapsed := 0.0
	for !p.ShouldClose() {
		p.PumpMessages()

		clock.Update()
		elapsed := clock.Elapsed()
		core.MetricsUpdate(elapsed - lastElapsed)
		lastElapsed = elapsed

		if ev, ok := assetManager.NextReload(); ok {
			handleReload(assetManager, demo, ev)
		}

		demo.Frame(elapsed)
		device.SwapBuffers()
		device.Clean()
	}

	fps, frameTime := core.MetricsFrame()
	core.LogInfo("shutting down after %.0f fps, %.2f ms avg frame", fps, frameTime)

	demo.Shutdown()
	device.Clean()
}

func handleReload(am *assets.AssetManager, demo *testbed.Demo, ev assets.ReloadEvent) {
	if ev.Type != loaders.ResourceTypeShader {
		return
	}

	resource, err := am.LoadAsset(ev.Path, nil)
	if err != nil {
		core.LogError("failed to reload %s: %s", ev.Path, err)
		return
	}
	if err := demo.ReloadShader(resource.Data.(*loaders.ShaderSource)); err != nil {
		core.LogError("failed to rebuild pipeline from %s: %s", ev.Path, err)
	}
}
