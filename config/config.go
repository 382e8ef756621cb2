// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the application configuration from the environment
// and optional .env files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/gogpu/gputypes"
	"github.com/joho/godotenv"
)

// Environment keys.
const (
	KeyWindowTitle     = "PRESENT_WINDOW_TITLE"
	KeyWindowWidth     = "PRESENT_WINDOW_WIDTH"
	KeyWindowHeight    = "PRESENT_WINDOW_HEIGHT"
	KeyClearColor      = "PRESENT_CLEAR_COLOR"
	KeyPowerPreference = "PRESENT_POWER_PREFERENCE"
	KeyForceFallback   = "PRESENT_FORCE_FALLBACK"
	KeyGraphicsAPI     = "GOGPU_GRAPHICS_API"
	KeyGPUDebug        = "PRESENT_GPU_DEBUG"
	KeyFPS             = "PRESENT_FPS"
	KeyLogLevel        = "PRESENT_LOG_LEVEL"
	KeyLogFormat       = "PRESENT_LOG_FORMAT"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is wrapped by every parse error returned from Load.
var ErrInvalid = errors.New("config: invalid value")

// Configuration defines the application settings.
type Configuration struct {
	Window   WindowConfiguration
	Renderer RendererConfiguration
	Time     TimeConfiguration
	Log      LogConfiguration
}

// WindowConfiguration is used to configure the window.
type WindowConfiguration struct {
	Title string

	// Width and Height are the initial logical window size.
	Width  uint32
	Height uint32
}

// RendererConfiguration is used to configure adapter selection and drawing.
type RendererConfiguration struct {
	ClearColor           gputypes.Color
	PowerPreference      gputypes.PowerPreference
	ForceFallbackAdapter bool

	// Backends restricts the graphics APIs tried. BackendsNone means all.
	Backends gputypes.Backends

	// Debug enables GPU validation layers.
	Debug bool
}

// TimeConfiguration is used to configure time services.
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out.
	// To unlimit, set to 0.
	FramesPerSecond int
}

// LogConfiguration selects the log handler.
type LogConfiguration struct {
	Level  slog.Level
	Format string
}

// Default returns the built-in configuration.
func Default() Configuration {
	return Configuration{
		Window: WindowConfiguration{
			Title:  "present",
			Width:  800,
			Height: 600,
		},
		Renderer: RendererConfiguration{
			ClearColor:      gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
			PowerPreference: gputypes.PowerPreferenceNone,
		},
		Time: TimeConfiguration{
			FramesPerSecond: 60,
		},
		Log: LogConfiguration{
			Level:  slog.LevelInfo,
			Format: FormatText,
		},
	}
}

// Load reads the given .env files in order, later files overriding earlier
// ones and the process environment, and then builds a Configuration from
// the environment. Unset keys keep their Default value.
func Load(files ...string) (Configuration, error) {
	if len(files) > 0 {
		if err := godotenv.Overload(files...); err != nil {
			return Configuration{}, fmt.Errorf("config: load %s: %w", strings.Join(files, ", "), err)
		}
	}
	envy.Reload()
	return FromEnv()
}

// FromEnv builds a Configuration from the environment as last loaded by envy.
func FromEnv() (Configuration, error) {
	cfg := Default()
	var err error

	if cfg.Window.Title, err = lookup(KeyWindowTitle, cfg.Window.Title, parseTitle); err != nil {
		return Configuration{}, err
	}
	if cfg.Window.Width, err = lookup(KeyWindowWidth, cfg.Window.Width, parseDimension); err != nil {
		return Configuration{}, err
	}
	if cfg.Window.Height, err = lookup(KeyWindowHeight, cfg.Window.Height, parseDimension); err != nil {
		return Configuration{}, err
	}

	if cfg.Renderer.ClearColor, err = lookup(KeyClearColor, cfg.Renderer.ClearColor, ParseColor); err != nil {
		return Configuration{}, err
	}
	if cfg.Renderer.PowerPreference, err = lookup(KeyPowerPreference, cfg.Renderer.PowerPreference, ParsePowerPreference); err != nil {
		return Configuration{}, err
	}
	if cfg.Renderer.ForceFallbackAdapter, err = lookup(KeyForceFallback, cfg.Renderer.ForceFallbackAdapter, strconv.ParseBool); err != nil {
		return Configuration{}, err
	}
	if cfg.Renderer.Backends, err = lookup(KeyGraphicsAPI, cfg.Renderer.Backends, ParseBackends); err != nil {
		return Configuration{}, err
	}
	if cfg.Renderer.Debug, err = lookup(KeyGPUDebug, cfg.Renderer.Debug, strconv.ParseBool); err != nil {
		return Configuration{}, err
	}

	if cfg.Time.FramesPerSecond, err = lookup(KeyFPS, cfg.Time.FramesPerSecond, parseFPS); err != nil {
		return Configuration{}, err
	}

	if cfg.Log.Level, err = lookup(KeyLogLevel, cfg.Log.Level, parseLevel); err != nil {
		return Configuration{}, err
	}
	if cfg.Log.Format, err = lookup(KeyLogFormat, cfg.Log.Format, parseFormat); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// lookup parses the value of key, or returns def when key is unset or empty.
func lookup[T any](key string, def T, parse func(string) (T, error)) (T, error) {
	raw := strings.TrimSpace(envy.Get(key, ""))
	if raw == "" {
		return def, nil
	}
	v, err := parse(raw)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q: %w", ErrInvalid, key, raw, err)
	}
	return v, nil
}

func parseTitle(s string) (string, error) { return s, nil }

func parseDimension(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.New("must be positive")
	}
	return uint32(n), nil
}

func parseFPS(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("must not be negative")
	}
	return n, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}

func parseFormat(s string) (string, error) {
	switch f := strings.ToLower(s); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}

// ParsePowerPreference parses "none", "low" or "high".
func ParsePowerPreference(s string) (gputypes.PowerPreference, error) {
	switch strings.ToLower(s) {
	case "none", "default":
		return gputypes.PowerPreferenceNone, nil
	case "low", "lowpower", "low-power":
		return gputypes.PowerPreferenceLowPower, nil
	case "high", "highperformance", "high-performance":
		return gputypes.PowerPreferenceHighPerformance, nil
	default:
		return gputypes.PowerPreferenceNone, fmt.Errorf("unknown power preference %q", s)
	}
}

// ParseBackends parses a graphics API name. Several names may be given
// separated by commas; the result is their union.
func ParseBackends(s string) (gputypes.Backends, error) {
	var b gputypes.Backends
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
		case "vulkan", "vk":
			b |= gputypes.BackendsVulkan
		case "dx12", "d3d12":
			b |= gputypes.BackendsDX12
		case "metal", "mtl":
			b |= gputypes.BackendsMetal
		case "gl", "gles", "opengl":
			b |= gputypes.BackendsGL
		case "all":
			b |= gputypes.BackendsAll
		default:
			return gputypes.BackendsNone, fmt.Errorf("unknown graphics API %q", name)
		}
	}
	return b, nil
}
