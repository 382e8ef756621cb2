package present

import "github.com/gogpu/gputypes"

// requiredLimits returns the device limits to request: downlevel limits on a
// restricted runtime, full default limits otherwise.
func requiredLimits() gputypes.Limits {
	if restrictedRuntime {
		return gputypes.DownlevelLimits()
	}
	return gputypes.DefaultLimits()
}
