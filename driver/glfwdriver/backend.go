// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package glfwdriver

import (
	"fmt"
	"image"
	"os"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gputypes"

	"github.com/easelgfx/easel/driver"
)

// Name is the registry name of the GLFW backend.
const Name = "glfw"

func init() {
	driver.Register(Name, 100, func() driver.Backend { return New() }, available)
}

// available reports whether a window system is reachable. On X11 and
// Wayland that means the respective environment variable is set; Windows
// and macOS always have one.
func available() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	case "linux", "freebsd", "openbsd", "netbsd":
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	default:
		return false
	}
}

// framebuffer is a CPU pixel buffer; presentation uploads it as a texture.
type framebuffer struct {
	img *image.RGBA
}

func (f *framebuffer) Size() (int, int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

func (f *framebuffer) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

func (f *framebuffer) RGBA() *image.RGBA { return f.img }

func (f *framebuffer) Release() {}

// Backend drives a GLFW window.
type Backend struct {
	mu sync.Mutex

	initialized bool
	win         *glfw.Window

	screenW, screenH   int
	pendingW, pendingH int

	// lastW, lastH is the size before the most recent native resize;
	// maximizePending marks that resize as caused by a maximize.
	lastW, lastH    int
	maximizePending bool

	switchIn func()
	resize   func(driver.ResizeInfo)
	drop     func([]string)
	closeReq func()

	presenter presenter
}

// New creates an uninitialized GLFW backend.
func New() *Backend { return &Backend{} }

// Name returns the backend identifier.
func (b *Backend) Name() string { return Name }

// Init initializes GLFW. Must run on the main goroutine.
func (b *Backend) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfwdriver: init: %w", err)
	}
	b.mu.Lock()
	b.initialized = true
	b.mu.Unlock()
	return nil
}

// Close terminates GLFW.
func (b *Backend) Close() {
	b.mu.Lock()
	b.initialized = false
	b.mu.Unlock()
	b.presenter.release()
	glfw.Terminate()
}

// Caps reports the capability bits.
func (b *Backend) Caps() driver.Caps { return driver.CapResizeDisplay }

// AcquireInput is satisfied by window creation: GLFW delivers input to
// the window without a separate acquisition step.
func (b *Backend) AcquireInput() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return driver.ErrNotInitialized
	}
	return nil
}

// SetMode creates the window. Fullscreen modes go on the primary monitor
// with 16-bit color hints; windowed modes keep the native depth.
func (b *Backend) SetMode(opts driver.ModeOptions) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return driver.ErrNotInitialized
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", driver.ErrInvalidDimensions, opts.Width, opts.Height)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		glfw.WindowHint(glfw.RedBits, 5)
		glfw.WindowHint(glfw.GreenBits, 6)
		glfw.WindowHint(glfw.BlueBits, 5)
	}

	title := opts.Title
	if title == "" {
		title = "easel"
	}
	win, err := glfw.CreateWindow(opts.Width, opts.Height, title, monitor, nil)
	if err != nil {
		return fmt.Errorf("glfwdriver: create window %dx%d: %w", opts.Width, opts.Height, err)
	}
	b.win = win

	w, h := win.GetSize()
	b.screenW, b.screenH = w, h
	b.pendingW, b.pendingH = w, h
	b.lastW, b.lastH = w, h

	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			return
		}
		b.mu.Lock()
		fn := b.switchIn
		b.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
	win.SetMaximizeCallback(func(_ *glfw.Window, maximized bool) {
		b.mu.Lock()
		b.maximizePending = maximized
		b.mu.Unlock()
	})
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		b.mu.Lock()
		info := driver.ResizeInfo{
			OldWidth:     b.lastW,
			OldHeight:    b.lastH,
			FromMaximize: b.maximizePending,
		}
		b.maximizePending = false
		b.pendingW, b.pendingH = width, height
		fn := b.resize
		b.mu.Unlock()
		if fn != nil {
			fn(info)
		}
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		b.mu.Lock()
		fn := b.closeReq
		b.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
	b.registerDropCallback(win)
	return nil
}

// TeardownMode destroys the window.
func (b *Backend) TeardownMode() {
	b.mu.Lock()
	win := b.win
	b.win = nil
	b.screenW, b.screenH = 0, 0
	b.mu.Unlock()
	b.presenter.release()
	if win != nil {
		win.Destroy()
	}
}

// ScreenSize returns the acknowledged native size.
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

// Present uploads fb and draws it over the whole window through the
// configured texture drawer.
func (b *Backend) Present(fb driver.Framebuffer, scale int) error {
	b.mu.Lock()
	if b.win == nil {
		b.mu.Unlock()
		return driver.ErrNoMode
	}
	w, h := b.screenW, b.screenH
	b.mu.Unlock()
	return b.presenter.present(fb.RGBA(), w, h, scale)
}

// AcknowledgeResize applies the size reported by the last native resize.
func (b *Backend) AcknowledgeResize() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.screenW, b.screenH = b.pendingW, b.pendingH
	b.lastW, b.lastH = b.pendingW, b.pendingH
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

// dropFiles delivers a drop notification to the registered callback.
func (b *Backend) dropFiles(paths []string) {
	b.mu.Lock()
	fn := b.drop
	b.mu.Unlock()
	if fn != nil {
		fn(paths)
	}
}

// Maximize maximizes the window.
func (b *Backend) Maximize() {
	b.mu.Lock()
	win := b.win
	b.mu.Unlock()
	if win != nil {
		win.Maximize()
	}
}

// IsMaximized reports whether the window is maximized.
func (b *Backend) IsMaximized() bool {
	b.mu.Lock()
	win := b.win
	b.mu.Unlock()
	return win != nil && win.GetAttrib(glfw.Maximized) == glfw.True
}

// NativeWindow returns the platform window handle, or 0 where there is
// none to expose.
func (b *Backend) NativeWindow() uintptr {
	b.mu.Lock()
	win := b.win
	b.mu.Unlock()
	if win == nil {
		return 0
	}
	return nativeHandle(win)
}

// PollEvents pumps the native event loop once. Call it every frame from
// the main goroutine.
func (b *Backend) PollEvents() { glfw.PollEvents() }

// Window returns the underlying GLFW window, or nil before SetMode.
// Hosts use it to create a GPU surface for the texture drawer.
func (b *Backend) Window() *glfw.Window {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.win
}
