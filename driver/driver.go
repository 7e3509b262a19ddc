// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"errors"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Common driver errors.
var (
	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("driver: backend not initialized")

	// ErrNoMode is returned when a framebuffer or presentation operation is
	// attempted before a graphics mode has been set.
	ErrNoMode = errors.New("driver: no graphics mode set")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("driver: invalid dimensions")
)

// Caps is the capability bitset a backend reports.
type Caps uint32

const (
	// CapResizeDisplay is set by backends whose display can change size
	// while running, so the application may offer a resize affordance.
	CapResizeDisplay Caps = 1 << iota
)

// DeviceHandle provides GPU device access from the host application.
//
// Backends that present through the GPU receive the device from the host,
// they do not create one. This keeps a single device shared between the
// shim and whatever else the host renders with.
type DeviceHandle = gpucontext.DeviceProvider

// ModeOptions describes the graphics mode requested from a backend.
type ModeOptions struct {
	// Width, Height is the requested mode size in pixels.
	// The backend may adjust it; query ScreenSize for the actual size.
	Width, Height int

	// Fullscreen requests an exclusive fullscreen mode. Backends without
	// a fullscreen concept treat this as a plain window.
	Fullscreen bool

	// Title is the window title on windowing backends.
	Title string
}

// ResizeInfo describes a native resize notification.
type ResizeInfo struct {
	// OldWidth, OldHeight is the size before the resize.
	OldWidth, OldHeight int

	// FromMaximize reports whether the resize originated from a
	// maximize transition, in which case the old size is worth
	// remembering for a later restore.
	FromMaximize bool
}

// Framebuffer is a pixel buffer allocated by a backend.
//
// All shipped backends expose CPU-addressable pixels; compositing runs on
// the CPU and presentation uploads or copies the result.
type Framebuffer interface {
	// Size returns the buffer dimensions in pixels.
	Size() (width, height int)

	// Format returns the pixel format of the buffer.
	Format() gputypes.TextureFormat

	// RGBA returns the backing pixels. The pointer stays valid until
	// Release.
	RGBA() *image.RGBA

	// Release frees the buffer. The framebuffer must not be used after
	// Release; Release is idempotent.
	Release()
}

// Backend is the capability provider the shim runs on: it sets graphics
// modes, allocates framebuffers, presents the back buffer and delivers
// native notifications.
//
// Callbacks registered through the Set*Callback methods may run on a
// backend-managed thread. They are expected to only set flags or push
// events; the backend never waits for them.
type Backend interface {
	// Name returns the backend identifier (e.g. "glfw", "headless").
	Name() string

	// Init initializes the backend. It must be called before any other
	// operation and is paired with Close.
	Init() error

	// Close tears the backend down. An active mode is torn down first.
	Close()

	// Caps reports the backend's capability bits.
	Caps() Caps

	// AcquireInput acquires the pointer and keyboard devices.
	AcquireInput() error

	// SetMode requests a graphics mode. The error carries the backend's
	// diagnostic when the mode is unavailable.
	SetMode(opts ModeOptions) error

	// TeardownMode leaves the graphics mode and returns the display to
	// its pre-SetMode state. No-op when no mode is set.
	TeardownMode()

	// ScreenSize returns the current native mode size.
	ScreenSize() (width, height int)

	// NewFramebuffer allocates a framebuffer of the given size.
	NewFramebuffer(width, height int) (Framebuffer, error)

	// Present shows fb on screen: a 1:1 copy at scale 1, a stretching
	// copy covering the whole screen otherwise.
	Present(fb Framebuffer, scale int) error

	// AcknowledgeResize accepts a pending native resize; ScreenSize
	// reflects the new size afterwards.
	AcknowledgeResize()

	// SetSwitchInCallback registers fn to run when the display regains
	// focus or visibility.
	SetSwitchInCallback(fn func())

	// SetResizeCallback registers fn to run when the native window is
	// resized. Backends without live resize never invoke it.
	SetResizeCallback(fn func(ResizeInfo))

	// SetDropCallback registers fn to receive files dropped onto the
	// window, in drop order. Backends without drag-and-drop never
	// invoke it.
	SetDropCallback(fn func(paths []string))

	// SetCloseCallback registers fn to run when the user asks to close
	// the window.
	SetCloseCallback(fn func())

	// Maximize maximizes the native window. No-op on backends without a
	// window manager concept.
	Maximize()

	// IsMaximized reports whether the native window is maximized; always
	// false without a window manager.
	IsMaximized() bool

	// NativeWindow returns the platform window handle, or 0 when there
	// is none.
	NativeWindow() uintptr
}

// MessageFilterer is implemented by backends that can intercept the native
// window's message stream. Absence of the interface is a valid no-op, not
// an error: such backends deliver drops through SetDropCallback alone.
type MessageFilterer interface {
	// InstallMessageFilter hooks the native message stream. Unhandled
	// messages are always forwarded to the previous handler unchanged.
	InstallMessageFilter() error

	// RemoveMessageFilter restores the previous handler.
	RemoveMessageFilter()
}
