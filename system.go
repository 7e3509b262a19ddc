// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"fmt"
	"image/png"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/image/draw"

	"github.com/easelgfx/easel/driver"
)

// Capabilities describes what the selected backend can do.
type Capabilities = driver.Caps

// CanResizeDisplay is set when the backend supports live native resizes.
const CanResizeDisplay = driver.CapResizeDisplay

// System is the process-wide entry point. It selects and initializes a
// driver backend and hands out displays and surfaces. At most one System
// exists at a time; create it with NewSystem and release it with Dispose.
type System struct {
	backend driver.Backend
	start   time.Time
}

var theSystem atomic.Pointer[System]

// SystemOption configures NewSystem.
type SystemOption func(*systemOptions)

type systemOptions struct {
	backendName string
}

// WithBackendName selects a registered backend by name instead of the
// highest-priority available one.
func WithBackendName(name string) SystemOption {
	return func(o *systemOptions) { o.backendName = name }
}

// DisplayOptions configures CreateDisplay.
type DisplayOptions struct {
	// Fullscreen requests an exclusive fullscreen mode instead of a window.
	Fullscreen bool

	// Title is the native window title. Ignored in fullscreen modes and by
	// backends without a window.
	Title string
}

// DisplayOption mutates DisplayOptions.
type DisplayOption func(*DisplayOptions)

// WithFullscreen requests fullscreen mode.
func WithFullscreen() DisplayOption {
	return func(o *DisplayOptions) { o.Fullscreen = true }
}

// WithTitle sets the native window title.
func WithTitle(title string) DisplayOption {
	return func(o *DisplayOptions) { o.Title = title }
}

// NewSystem creates the process System, selecting and initializing a
// backend. Without WithBackendName the highest-priority available backend
// wins; backends register themselves from their package init, so import
// at least one backend package for its side effects.
func NewSystem(opts ...SystemOption) (*System, error) {
	var o systemOptions
	for _, opt := range opts {
		opt(&o)
	}

	var be driver.Backend
	if o.backendName != "" {
		be = driver.Get(o.backendName)
		if be == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, o.backendName)
		}
	} else {
		be = driver.Default()
		if be == nil {
			return nil, ErrNoBackend
		}
	}

	sys := &System{backend: be, start: time.Now()}
	if !theSystem.CompareAndSwap(nil, sys) {
		return nil, ErrSystemExists
	}
	if err := be.Init(); err != nil {
		theSystem.Store(nil)
		return nil, fmt.Errorf("easel: backend %q init: %w", be.Name(), err)
	}

	Logger().Info("easel: system created", "backend", be.Name())
	return sys, nil
}

// Instance returns the current System, or nil if none exists.
func Instance() *System { return theSystem.Load() }

// Dispose shuts the system down: the active display is disposed first,
// then the backend is closed and the singleton slot freed.
func (s *System) Dispose() {
	if theSystem.Load() != s {
		Logger().Warn("easel: system disposed twice")
		return
	}
	if d := activeDisplay.Load(); d != nil {
		d.Dispose()
	}
	s.backend.Close()
	theSystem.Store(nil)
	Logger().Info("easel: system disposed")
}

// Capabilities reports what the backend supports.
func (s *System) Capabilities() Capabilities { return s.backend.Caps() }

// Backend returns the driver backend behind the system.
func (s *System) Backend() driver.Backend { return s.backend }

// Uptime returns the time elapsed since the system was created.
func (s *System) Uptime() time.Duration { return time.Since(s.start) }

// CreateDisplay sets the requested graphics mode and returns the process
// Display. width and height are the native size request; scale is the
// integer factor between the native screen and the back buffer, so the
// back buffer measures nativeSize/scale. Only one Display may exist at a
// time. On failure no mode is left set and no resources are retained.
func (s *System) CreateDisplay(width, height, scale int, opts ...DisplayOption) (*Display, error) {
	if activeDisplay.Load() != nil {
		return nil, ErrDisplayExists
	}

	var o DisplayOptions
	for _, opt := range opts {
		opt(&o)
	}

	d, err := newDisplay(s.backend, width, height, scale, o)
	if err != nil {
		return nil, err
	}
	if !activeDisplay.CompareAndSwap(nil, d) {
		d.Dispose()
		return nil, ErrDisplayExists
	}
	return d, nil
}

// CreateSurface allocates an offscreen surface of the given size. The
// caller owns it and must Dispose it.
func (s *System) CreateSurface(width, height int) (*Surface, error) {
	fb, err := s.backend.NewFramebuffer(width, height)
	if err != nil {
		return nil, &AllocationError{Width: width, Height: height, Err: err}
	}
	return newSurface(fb, true), nil
}

// WrapFramebuffer wraps an existing backend framebuffer in a Surface.
// With owned set, Dispose releases the framebuffer; otherwise the caller
// keeps responsibility for it.
func (s *System) WrapFramebuffer(fb driver.Framebuffer, owned bool) *Surface {
	return newSurface(fb, owned)
}

// LoadSurfacePNG decodes a PNG file into a new surface owned by the
// caller.
func (s *System) LoadSurfacePNG(path string) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("easel: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("easel: decode %s: %w", path, err)
	}

	b := img.Bounds()
	surf, err := s.CreateSurface(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(surf.fb.RGBA(), surf.fb.RGBA().Bounds(), img, b.Min, draw.Src)
	return surf, nil
}
