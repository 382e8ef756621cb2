package loop

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/present/gpucore"
)

// EventKind identifies the type of a window event.
type EventKind uint8

// Event kinds.
const (
	// EventResized reports a new client area size in physical pixels.
	EventResized EventKind = iota + 1

	// EventScaleFactorChanged reports a DPI change. Size carries the
	// authoritative new physical size.
	EventScaleFactorChanged

	// EventKeyPressed reports a key press.
	EventKeyPressed

	// EventKeyReleased reports a key release.
	EventKeyReleased

	// EventCloseRequested reports that the user asked to close the window.
	EventCloseRequested

	// EventFocusChanged reports that the window gained or lost focus.
	EventFocusChanged
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventResized:
		return "Resized"
	case EventScaleFactorChanged:
		return "ScaleFactorChanged"
	case EventKeyPressed:
		return "KeyPressed"
	case EventKeyReleased:
		return "KeyReleased"
	case EventCloseRequested:
		return "CloseRequested"
	case EventFocusChanged:
		return "FocusChanged"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is a window lifecycle or input event.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Size is set for EventResized and EventScaleFactorChanged.
	Size gpucore.Size

	// ScaleFactor is set for EventScaleFactorChanged.
	ScaleFactor float64

	// Key and Mods are set for EventKeyPressed and EventKeyReleased.
	Key  gpucontext.Key
	Mods gpucontext.Modifiers

	// Focused is set for EventFocusChanged.
	Focused bool
}

// Resized returns an EventResized event.
func Resized(width, height uint32) Event {
	return Event{Kind: EventResized, Size: gpucore.Size{Width: width, Height: height}}
}

// ScaleFactorChanged returns an EventScaleFactorChanged event.
func ScaleFactorChanged(scale float64, width, height uint32) Event {
	return Event{
		Kind:        EventScaleFactorChanged,
		ScaleFactor: scale,
		Size:        gpucore.Size{Width: width, Height: height},
	}
}

// KeyPressed returns an EventKeyPressed event.
func KeyPressed(key gpucontext.Key, mods gpucontext.Modifiers) Event {
	return Event{Kind: EventKeyPressed, Key: key, Mods: mods}
}

// KeyReleased returns an EventKeyReleased event.
func KeyReleased(key gpucontext.Key, mods gpucontext.Modifiers) Event {
	return Event{Kind: EventKeyReleased, Key: key, Mods: mods}
}

// CloseRequested returns an EventCloseRequested event.
func CloseRequested() Event {
	return Event{Kind: EventCloseRequested}
}

// FocusChanged returns an EventFocusChanged event.
func FocusChanged(focused bool) Event {
	return Event{Kind: EventFocusChanged, Focused: focused}
}
