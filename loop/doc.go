// Package loop drives the window event loop.
//
// A [Dispatcher] pulls window events from a [Source], hands each one to a
// [Handler] until it is fully processed, and then runs one update and one
// render per cycle. Resize events are always applied before the render of
// the same cycle, so a frame is never acquired while a resize is pending.
//
// The loop stops after the event that requested exit (close request or the
// Escape key), when the handler reports an unrecoverable error through
// ShouldExit, or when the run context is cancelled.
package loop
