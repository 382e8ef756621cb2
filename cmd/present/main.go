// Command present opens a resizable window and clears it to a solid color
// every frame until the window is closed or Escape is pressed.
//
// Settings come from the environment (see package config), an optional
// .env file given with -env, and the flags below, in increasing priority.
//
// The window and GPU stack are Pure Go; build with CGO_ENABLED=0.
//
// Exit status is 0 after a normal shutdown and 1 when initialization fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/present"
	"github.com/gogpu/present/backend"
	backendwgpu "github.com/gogpu/present/backend/wgpu"
	"github.com/gogpu/present/config"
	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/present/internal/window"
	"github.com/gogpu/present/loop"
	"github.com/gogpu/wgpu"
	_ "github.com/gogpu/wgpu/hal/allbackends"
)

// The window system requires its calls on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr, defaultDeps())
	stop()
	os.Exit(code)
}

// host is the window system the program renders into. It owns the
// surface and device, which the backend borrows.
type host interface {
	gpucore.Host
	present.Window
	loop.Source

	ScaleFactor() float64

	// Run calls frame once per host frame until it returns false or the
	// window closes, and calls closed once while the device is alive.
	Run(frame func() bool, closed func()) error
}

// deps opens the platform pieces run needs.
type deps struct {
	openWindow  func(window.Config) (host, error)
	openBackend func(backend.Options) (gpucore.Instance, error)
}

func defaultDeps() deps {
	return deps{
		openWindow: func(cfg window.Config) (host, error) {
			w, err := window.Open(cfg)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
		openBackend: backend.OpenDefault,
	}
}

func run(ctx context.Context, args []string, stderr io.Writer, d deps) int {
	fs := flag.NewFlagSet("present", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		envFile = fs.String("env", "", "optional .env file")
		width   = fs.Uint("width", 0, "window width (overrides "+config.KeyWindowWidth+")")
		height  = fs.Uint("height", 0, "window height (overrides "+config.KeyWindowHeight+")")
		fps     = fs.Int("fps", -1, "frames per second, 0 for uncapped (overrides "+config.KeyFPS+")")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintf(stderr, "present: %v\n", err)
		return 1
	}
	if *width > 0 {
		cfg.Window.Width = uint32(*width)
	}
	if *height > 0 {
		cfg.Window.Height = uint32(*height)
	}
	if *fps >= 0 {
		cfg.Time.FramesPerSecond = *fps
	}
	if *verbose {
		cfg.Log.Level = slog.LevelDebug
	}

	logger := newLogger(stderr, cfg.Log)
	slog.SetDefault(logger)
	present.SetLogger(logger)
	backendwgpu.SetLogger(logger)
	wgpu.SetLogger(logger)

	win, err := d.openWindow(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		logger.Error("present: open window", "err", err)
		return 1
	}

	inst, err := d.openBackend(backend.Options{
		Backends: cfg.Renderer.Backends,
		Debug:    cfg.Renderer.Debug,
		Host:     win,
	})
	if err != nil {
		logger.Error("present: open GPU backend", "err", err, "available", backend.Available())
		return 1
	}
	defer inst.Release()

	a := &app{
		ctx:    ctx,
		inst:   inst,
		win:    win,
		cfg:    cfg,
		logger: logger,
	}
	defer a.close()

	if err := win.Run(a.frame, a.close); err != nil {
		logger.Error("present: window", "err", err)
		return 1
	}
	return a.code
}

// app renders into the host, one dispatcher cycle per host frame.
type app struct {
	ctx    context.Context
	inst   gpucore.Instance
	win    host
	cfg    config.Configuration
	logger *slog.Logger

	state  *present.State
	disp   *loop.Dispatcher
	ticker *loop.Ticker
	code   int
	closed bool
}

// frame runs one cycle. The state is created on the first frame, when the
// host's device exists.
func (a *app) frame() bool {
	if err := a.ctx.Err(); err != nil {
		a.logger.Info("present: interrupted", "reason", context.Cause(a.ctx))
		return false
	}
	if a.state == nil && !a.init() {
		a.code = 1
		return false
	}
	if !a.disp.Cycle() {
		a.logger.Info("present: exiting", "cycles", a.disp.Cycles())
		return false
	}
	select {
	case <-a.ctx.Done():
	case <-a.ticker.C():
	}
	return true
}

func (a *app) init() bool {
	st, err := present.NewState(a.ctx, a.inst, a.win,
		present.WithPowerPreference(a.cfg.Renderer.PowerPreference),
		present.WithForceFallbackAdapter(a.cfg.Renderer.ForceFallbackAdapter),
		present.WithClearColor(a.cfg.Renderer.ClearColor),
	)
	if err != nil {
		a.logger.Error("present: initialization failed", "err", err)
		return false
	}
	a.state = st

	info := st.DeviceContext().Info()
	a.logger.Info("present: running",
		"gpu", backendwgpu.NewGPUInfo(info).String(),
		"size", st.Size(),
		"scale", a.win.ScaleFactor(),
		"fps", a.cfg.Time.FramesPerSecond,
	)

	a.disp = loop.NewDispatcher(a.win, st)
	a.disp.OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		a.logger.Debug("present: key pressed", "key", key, "mods", mods)
	})
	a.disp.OnFocus(func(focused bool) {
		a.logger.Debug("present: focus changed", "focused", focused)
	})
	a.ticker = loop.NewTicker(a.cfg.Time.FramesPerSecond)
	return true
}

// close releases the state before the host tears its device down.
func (a *app) close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.ticker != nil {
		a.ticker.Stop()
	}
	if a.state != nil {
		a.state.Close()
	}
}

func newLogger(w io.Writer, cfg config.LogConfiguration) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
