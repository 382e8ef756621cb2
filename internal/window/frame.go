package window

import (
	"unsafe"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu"
)

// Frame contexts expose the surface view and size in one of these shapes,
// depending on the host version.
type (
	viewTarget interface {
		SurfaceView() gpucontext.TextureView
	}
	nativeViewTarget interface {
		SurfaceView() *wgpu.TextureView
	}
	surfaceSizer interface {
		SurfaceSize() (uint32, uint32)
	}
	intSurfaceSizer interface {
		SurfaceSize() (int, int)
	}
	extent interface {
		Width() int
		Height() int
	}
)

// surfaceView returns the view of the frame fc is drawing, or the zero
// TextureView when fc exposes none.
func surfaceView(fc any) gpucontext.TextureView {
	switch t := fc.(type) {
	case viewTarget:
		return t.SurfaceView()
	case nativeViewTarget:
		if v := t.SurfaceView(); v != nil {
			return gpucontext.NewTextureView(unsafe.Pointer(v))
		}
	}
	return gpucontext.TextureView{}
}

// framePixels returns the physical size of the surface fc draws into.
// Hosts without a surface size report their drawable extent instead.
func framePixels(fc any) (width, height int) {
	switch t := fc.(type) {
	case surfaceSizer:
		w, h := t.SurfaceSize()
		return int(w), int(h)
	case intSurfaceSizer:
		return t.SurfaceSize()
	case extent:
		return t.Width(), t.Height()
	}
	return 0, 0
}
