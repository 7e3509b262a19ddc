// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

// Package headless provides an in-memory backend: the screen is a plain
// pixel buffer and native notifications are raised programmatically.
// It is always available, which makes it the fallback backend and the one
// tests and server-side tools run on.
//
// The package registers itself on import:
//
//	import _ "github.com/easelgfx/easel/driver/headless"
package headless

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/easelgfx/easel/driver"
	"github.com/easelgfx/easel/internal/blit"
)

// Name is the registry name of the headless backend.
const Name = "headless"

func init() {
	driver.Register(Name, 10, func() driver.Backend { return New() }, nil)
}

// framebuffer is a CPU pixel buffer.
type framebuffer struct {
	img      *image.RGBA
	released bool
}

func (f *framebuffer) Size() (int, int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

func (f *framebuffer) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

func (f *framebuffer) RGBA() *image.RGBA { return f.img }

func (f *framebuffer) Release() { f.released = true }

// Backend is the in-memory capability provider.
//
// The Simulate* methods stand in for the asynchronous native layer: they
// invoke the registered callbacks exactly the way a real backend would,
// and may be called from any goroutine.
type Backend struct {
	mu sync.Mutex

	initialized bool
	screen      *image.RGBA
	screenW     int
	screenH     int

	// pending native size, applied by AcknowledgeResize.
	pendingW int
	pendingH int

	switchIn func()
	resize   func(driver.ResizeInfo)
	drop     func([]string)
	closeReq func()
}

// New creates an uninitialized headless backend.
func New() *Backend { return &Backend{} }

// Name returns the backend identifier.
func (b *Backend) Name() string { return Name }

// Init initializes the backend.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = true
	return nil
}

// Close tears the backend down.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.screen = nil
	b.screenW, b.screenH = 0, 0
	b.initialized = false
}

// Caps reports the capability bits. The headless screen can be resized
// programmatically, so it reports CapResizeDisplay.
func (b *Backend) Caps() driver.Caps { return driver.CapResizeDisplay }

// AcquireInput acquires the input devices. The headless backend has no
// devices to acquire; it only checks initialization.
func (b *Backend) AcquireInput() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return driver.ErrNotInitialized
	}
	return nil
}

// SetMode allocates the in-memory screen at the requested size.
func (b *Backend) SetMode(opts driver.ModeOptions) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return driver.ErrNotInitialized
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", driver.ErrInvalidDimensions, opts.Width, opts.Height)
	}
	b.screen = image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	b.screenW, b.screenH = opts.Width, opts.Height
	b.pendingW, b.pendingH = opts.Width, opts.Height
	return nil
}

// TeardownMode releases the in-memory screen.
func (b *Backend) TeardownMode() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.screen = nil
	b.screenW, b.screenH = 0, 0
}

// ScreenSize returns the current screen size.
func (b *Backend) ScreenSize() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.screenW, b.screenH
}

// NewFramebuffer allocates a CPU framebuffer.
func (b *Backend) NewFramebuffer(width, height int) (driver.Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", driver.ErrInvalidDimensions, width, height)
	}
	return &framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Present copies fb onto the screen: 1:1 at scale 1, stretched otherwise.
func (b *Backend) Present(fb driver.Framebuffer, scale int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.screen == nil {
		return driver.ErrNoMode
	}
	src := fb.RGBA()
	if scale == 1 {
		blit.Copy(b.screen, src, 0, 0, 0, 0, b.screenW, b.screenH)
	} else {
		blit.Stretch(b.screen, src)
	}
	return nil
}

// AcknowledgeResize applies the pending native size and reallocates the
// screen buffer at it.
func (b *Backend) AcknowledgeResize() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pendingW == b.screenW && b.pendingH == b.screenH {
		return
	}
	b.screenW, b.screenH = b.pendingW, b.pendingH
	b.screen = image.NewRGBA(image.Rect(0, 0, b.screenW, b.screenH))
}

// SetSwitchInCallback registers the focus-regained callback.
func (b *Backend) SetSwitchInCallback(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.switchIn = fn
}

// SetResizeCallback registers the resize callback.
func (b *Backend) SetResizeCallback(fn func(driver.ResizeInfo)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resize = fn
}

// SetDropCallback registers the file-drop callback.
func (b *Backend) SetDropCallback(fn func([]string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drop = fn
}

// SetCloseCallback registers the close-request callback.
func (b *Backend) SetCloseCallback(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeReq = fn
}

// Maximize is a no-op: the headless backend has no window manager.
func (b *Backend) Maximize() {}

// IsMaximized always reports false.
func (b *Backend) IsMaximized() bool { return false }

// NativeWindow returns 0: there is no platform window.
func (b *Backend) NativeWindow() uintptr { return 0 }

// Screen returns the presented screen pixels for inspection.
func (b *Backend) Screen() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.screen
}

// SimulateSwitchIn raises the focus-regained notification.
func (b *Backend) SimulateSwitchIn() {
	b.mu.Lock()
	fn := b.switchIn
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// SimulateResize records a pending native size of width×height and raises
// the resize notification. The new size takes effect once the consumer
// calls AcknowledgeResize.
func (b *Backend) SimulateResize(width, height int, fromMaximize bool) {
	b.mu.Lock()
	info := driver.ResizeInfo{
		OldWidth:     b.screenW,
		OldHeight:    b.screenH,
		FromMaximize: fromMaximize,
	}
	b.pendingW, b.pendingH = width, height
	fn := b.resize
	b.mu.Unlock()
	if fn != nil {
		fn(info)
	}
}

// SimulateDrop raises a file-drop notification with the given paths.
func (b *Backend) SimulateDrop(paths []string) {
	b.mu.Lock()
	fn := b.drop
	b.mu.Unlock()
	if fn != nil {
		fn(paths)
	}
}

// SimulateCloseRequest raises a close-request notification.
func (b *Backend) SimulateCloseRequest() {
	b.mu.Lock()
	fn := b.closeReq
	b.mu.Unlock()
	if fn != nil {
		fn()
	}
}
