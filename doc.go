// Package easel provides a thin display, surface and event substrate for Go.
//
// # Overview
//
// easel maps a small, stable windowing API (one System, one Display with a
// scaled back-buffer Surface, and a polled event queue) onto pluggable
// native backends. It does no drawing of its own beyond rectangle blits and
// alpha compositing; applications draw into the back buffer and easel
// presents it.
//
// # Quick Start
//
//	import (
//	    "github.com/easelgfx/easel"
//	    "github.com/easelgfx/easel/event"
//	    _ "github.com/easelgfx/easel/driver/headless"
//	)
//
//	sys, err := easel.NewSystem()
//	// handle err
//	defer sys.Dispose()
//
//	disp, err := sys.CreateDisplay(640, 480, 1)
//	// handle err
//	defer disp.Dispose()
//
//	for running {
//	    l := disp.Surface().Lock()
//	    l.Clear()
//	    // ... draw into l ...
//	    l.Unlock()
//	    if !disp.Flip() {
//	        continue // native size changed; redraw at the new size
//	    }
//	    for ev := disp.PollEvent(); ev.Type != event.None; ev = disp.PollEvent() {
//	        // ... handle ev ...
//	    }
//	}
//
// # Backends
//
// Backends register themselves in the driver registry on import. The
// headless backend is an always-available in-memory screen; glfwdriver
// opens a desktop window and presents through a host-provided GPU device.
// NewSystem picks the highest-priority available backend unless one is
// chosen explicitly with WithBackendName.
//
// # Scaling
//
// A Display runs at an integer scale factor: the back buffer is
// nativeSize/scale and presentation stretches it back up. Scale 1 presents
// with a 1:1 copy.
//
// # Concurrency
//
// One application thread draws, flips and polls. Native notifications
// (focus regained, window resized, files dropped) arrive on backend
// threads and are bridged through atomic flags and a lock-free event
// queue; no callback ever blocks.
package easel

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
