package present

import "github.com/gogpu/gputypes"

// DefaultClearColor is the color every frame is cleared to unless
// WithClearColor is given.
var DefaultClearColor = gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// Option configures device and renderer creation.
// Use functional options to customize behavior.
//
// Example:
//
//	st, err := present.NewState(ctx, inst, win,
//	    present.WithPowerPreference(gputypes.PowerPreferenceHighPerformance),
//	    present.WithClearColor(gputypes.Color{R: 0, G: 0, B: 0, A: 1}),
//	)
type Option func(*options)

// options holds optional configuration.
type options struct {
	powerPreference gputypes.PowerPreference
	forceFallback   bool
	limits          *gputypes.Limits
	label           string
	clearColor      gputypes.Color
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		powerPreference: gputypes.PowerPreferenceNone,
		label:           "present",
		clearColor:      DefaultClearColor,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPowerPreference selects between integrated and discrete GPUs.
func WithPowerPreference(p gputypes.PowerPreference) Option {
	return func(o *options) {
		o.powerPreference = p
	}
}

// WithForceFallbackAdapter requests a software adapter.
func WithForceFallbackAdapter(force bool) Option {
	return func(o *options) {
		o.forceFallback = force
	}
}

// WithRequiredLimits overrides the device limits.
// By default, downlevel limits are requested on restricted runtimes
// (js/wasm) and full default limits elsewhere.
func WithRequiredLimits(l gputypes.Limits) Option {
	return func(o *options) {
		o.limits = &l
	}
}

// WithDeviceLabel sets the debug label of the device.
func WithDeviceLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithClearColor sets the color frames are cleared to.
func WithClearColor(c gputypes.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}
