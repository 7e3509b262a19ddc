// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"sync/atomic"

	"github.com/easelgfx/easel/driver"
	"github.com/easelgfx/easel/event"
	"github.com/easelgfx/easel/internal/nativestr"
)

// Async condition bits. Written by native callbacks, consumed on the
// application thread; each bit is cleared with a CAS so a concurrent
// writer of the other bit is never lost.
const (
	flagFullRefresh uint32 = 1 << iota
	flagResize
)

// asyncFlags is the only channel between native callback contexts and the
// frame loop: a flag word plus the remembered pre-maximize size.
type asyncFlags struct {
	bits  atomic.Uint32
	prevW atomic.Int32
	prevH atomic.Int32
}

func (f *asyncFlags) set(bit uint32) {
	for {
		old := f.bits.Load()
		if f.bits.CompareAndSwap(old, old|bit) {
			return
		}
	}
}

// take clears bit and reports whether it was set.
func (f *asyncFlags) take(bit uint32) bool {
	for {
		old := f.bits.Load()
		if old&bit == 0 {
			return false
		}
		if f.bits.CompareAndSwap(old, old&^bit) {
			return true
		}
	}
}

// Display owns the back-buffer Surface the application draws into, the
// event queue it polls, and the scale/resize state machine in between.
//
// At most one Display exists per process. All methods are for the
// application thread; the native callbacks registered at construction
// communicate only through the internal flags and the queue.
type Display struct {
	backend driver.Backend
	back    *Surface
	scale   int
	queue   *event.Queue
	flags   asyncFlags

	disposed bool
}

// activeDisplay is the process-wide registration point native interceptors
// use to reach the Display. Set by CreateDisplay, cleared by Dispose.
var activeDisplay atomic.Pointer[Display]

// ActiveDisplay returns the current Display, or nil if none exists.
func ActiveDisplay() *Display { return activeDisplay.Load() }

// newDisplay runs the construction sequence against an initialized
// backend. On error nothing is left behind.
func newDisplay(be driver.Backend, width, height, scale int, opts DisplayOptions) (*Display, error) {
	if scale < 1 {
		scale = 1
	}

	if err := be.AcquireInput(); err != nil {
		return nil, &DisplayCreationError{Reason: "input acquisition", Err: err}
	}

	if err := be.SetMode(driver.ModeOptions{
		Width:      width,
		Height:     height,
		Fullscreen: opts.Fullscreen,
		Title:      opts.Title,
	}); err != nil {
		return nil, &DisplayCreationError{Reason: "mode set", Err: err}
	}

	d := &Display{backend: be, queue: event.NewQueue()}
	if err := d.setScale(scale); err != nil {
		be.TeardownMode()
		return nil, err
	}

	// Bridge the asynchronous notification paths. The callbacks run on
	// backend threads and only touch atomics or the lock-free queue.
	be.SetSwitchInCallback(func() {
		d.flags.set(flagFullRefresh)
	})
	be.SetResizeCallback(func(info driver.ResizeInfo) {
		if info.FromMaximize {
			d.flags.prevW.Store(int32(info.OldWidth))
			d.flags.prevH.Store(int32(info.OldHeight))
		}
		d.flags.set(flagResize)
	})
	be.SetDropCallback(func(paths []string) {
		d.queue.Push(event.Event{
			Type:  event.DropFiles,
			Files: nativestr.CleanAll(paths),
		})
	})
	be.SetCloseCallback(func() {
		d.queue.Push(event.Event{Type: event.CloseRequest})
	})

	if mf, ok := be.(driver.MessageFilterer); ok {
		if err := mf.InstallMessageFilter(); err != nil {
			// The display works without the filter; drops just won't
			// arrive through the native message stream.
			Logger().Warn("easel: message filter not installed", "err", err)
		}
	}

	w, h := be.ScreenSize()
	Logger().Info("easel: display created",
		"backend", be.Name(), "size", [2]int{w, h}, "scale", scale)
	return d, nil
}

// Surface returns the back buffer. The Display owns it; do not dispose it.
func (d *Display) Surface() *Surface { return d.back }

// Scale returns the current integer scale factor.
func (d *Display) Scale() int { return d.scale }

// Width returns the native screen width.
func (d *Display) Width() int {
	w, _ := d.backend.ScreenSize()
	return w
}

// Height returns the native screen height.
func (d *Display) Height() int {
	_, h := d.backend.ScreenSize()
	return h
}

// OriginalWidth returns the width the display had before it was maximized,
// or the current width when no maximize happened.
func (d *Display) OriginalWidth() int {
	if w := d.flags.prevW.Load(); w > 0 {
		return int(w)
	}
	return d.Width()
}

// OriginalHeight returns the height the display had before it was
// maximized, or the current height when no maximize happened.
func (d *Display) OriginalHeight() int {
	if h := d.flags.prevH.Load(); h > 0 {
		return int(h)
	}
	return d.Height()
}

// SetScale changes the scale factor. Unchanged values are a no-op;
// otherwise a new back buffer is allocated at nativeSize/scale, the old
// one is disposed and swapped out. This is the only path that resizes the
// back buffer.
func (d *Display) SetScale(scale int) error {
	if scale < 1 {
		scale = 1
	}
	if scale == d.scale {
		return nil
	}
	return d.setScale(scale)
}

// setScale reallocates the back buffer for the given scale at the current
// native size, regardless of the previous scale value.
func (d *Display) setScale(scale int) error {
	w, h := d.backend.ScreenSize()
	fb, err := d.backend.NewFramebuffer(w/scale, h/scale)
	if err != nil {
		return &AllocationError{Width: w / scale, Height: h / scale, Err: err}
	}
	if d.back != nil {
		d.back.Dispose()
	}
	d.back = newSurface(fb, true)
	d.scale = scale
	Logger().Debug("easel: back buffer allocated",
		"size", [2]int{w / scale, h / scale}, "scale", scale)
	return nil
}

// Flip presents the back buffer: a 1:1 copy at scale 1, a stretching copy
// otherwise. It returns false when a pending native resize was
// acknowledged instead; the back buffer has been recreated at the new
// native size and the caller is expected to redraw and flip again.
func (d *Display) Flip() bool {
	if d.flags.take(flagResize) {
		d.backend.AcknowledgeResize()
		if err := d.setScale(d.scale); err != nil {
			// Keep the stale back buffer; the next flip retries.
			d.flags.set(flagResize)
			Logger().Warn("easel: resize acknowledge failed", "err", err)
		}
		return false
	}
	if err := d.backend.Present(d.back.fb, d.scale); err != nil {
		Logger().Warn("easel: present failed", "err", err)
	}
	return true
}

// TakeFullRefresh reports whether the display regained focus since the
// last call, in which case callers should repaint everything rather than
// incrementally. The flag is cleared by the call.
func (d *Display) TakeFullRefresh() bool {
	return d.flags.take(flagFullRefresh)
}

// PollEvent removes and returns the oldest pending event, or an event of
// type event.None when the queue is empty. It never blocks.
func (d *Display) PollEvent() event.Event {
	return d.queue.Poll()
}

// Queue returns the display's event queue. Producers other than the
// backend (tests, tooling) may push into it.
func (d *Display) Queue() *event.Queue { return d.queue }

// Maximize maximizes the native window where a window manager exists;
// elsewhere it is a no-op.
func (d *Display) Maximize() { d.backend.Maximize() }

// IsMaximized reports whether the native window is maximized; always
// false without a window manager.
func (d *Display) IsMaximized() bool { return d.backend.IsMaximized() }

// NativeWindow returns the platform window handle, or 0 when there is none.
func (d *Display) NativeWindow() uintptr { return d.backend.NativeWindow() }

// Dispose removes the message filter, disposes the back buffer, tears
// down the graphics mode and clears the active-display registration.
func (d *Display) Dispose() {
	if d.disposed {
		Logger().Warn("easel: display disposed twice")
		return
	}
	d.disposed = true

	if mf, ok := d.backend.(driver.MessageFilterer); ok {
		mf.RemoveMessageFilter()
	}
	d.back.Dispose()
	d.backend.TeardownMode()
	activeDisplay.CompareAndSwap(d, nil)
	Logger().Info("easel: display disposed")
}
