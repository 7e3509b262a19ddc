// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"errors"
	"testing"
	"time"

	"github.com/easelgfx/easel/driver/headless"
)

// newTestSystem creates a System on the headless backend and disposes it
// when the test ends.
func newTestSystem(t *testing.T) *System {
	t.Helper()
	sys, err := NewSystem(WithBackendName(headless.Name))
	if err != nil {
		t.Fatalf("NewSystem() error = %v", err)
	}
	t.Cleanup(sys.Dispose)
	return sys
}

// headlessBackend returns the simulation handle behind sys.
func headlessBackend(t *testing.T, sys *System) *headless.Backend {
	t.Helper()
	be, ok := sys.Backend().(*headless.Backend)
	if !ok {
		t.Fatalf("Backend() = %T, want *headless.Backend", sys.Backend())
	}
	return be
}

func TestNewSystemSingleton(t *testing.T) {
	sys := newTestSystem(t)

	if Instance() != sys {
		t.Error("Instance() did not return the created system")
	}
	if _, err := NewSystem(WithBackendName(headless.Name)); !errors.Is(err, ErrSystemExists) {
		t.Errorf("second NewSystem() error = %v, want ErrSystemExists", err)
	}
}

func TestNewSystemUnknownBackend(t *testing.T) {
	if _, err := NewSystem(WithBackendName("no-such-backend")); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewSystem(unknown) error = %v, want ErrUnknownBackend", err)
	}
	if Instance() != nil {
		t.Error("failed NewSystem left a system behind")
	}
}

func TestSystemDispose(t *testing.T) {
	sys, err := NewSystem(WithBackendName(headless.Name))
	if err != nil {
		t.Fatalf("NewSystem() error = %v", err)
	}
	sys.Dispose()

	if Instance() != nil {
		t.Error("Instance() != nil after Dispose")
	}

	// A new system may be created after dispose.
	sys2, err := NewSystem(WithBackendName(headless.Name))
	if err != nil {
		t.Fatalf("NewSystem() after Dispose error = %v", err)
	}
	sys2.Dispose()

	// Double dispose is tolerated.
	sys2.Dispose()
}

func TestSystemDisposesActiveDisplay(t *testing.T) {
	sys, err := NewSystem(WithBackendName(headless.Name))
	if err != nil {
		t.Fatalf("NewSystem() error = %v", err)
	}
	if _, err := sys.CreateDisplay(320, 200, 1); err != nil {
		t.Fatalf("CreateDisplay() error = %v", err)
	}
	sys.Dispose()

	if ActiveDisplay() != nil {
		t.Error("ActiveDisplay() != nil after system Dispose")
	}
}

func TestSystemCapabilities(t *testing.T) {
	sys := newTestSystem(t)
	if sys.Capabilities()&CanResizeDisplay == 0 {
		t.Error("headless system should report CanResizeDisplay")
	}
}

func TestSystemUptime(t *testing.T) {
	sys := newTestSystem(t)
	time.Sleep(time.Millisecond)
	if sys.Uptime() <= 0 {
		t.Errorf("Uptime() = %v, want > 0", sys.Uptime())
	}
}

func TestCreateDisplaySingleton(t *testing.T) {
	sys := newTestSystem(t)

	d, err := sys.CreateDisplay(640, 480, 1)
	if err != nil {
		t.Fatalf("CreateDisplay() error = %v", err)
	}
	if _, err := sys.CreateDisplay(640, 480, 1); !errors.Is(err, ErrDisplayExists) {
		t.Errorf("second CreateDisplay() error = %v, want ErrDisplayExists", err)
	}

	d.Dispose()
	if ActiveDisplay() != nil {
		t.Error("ActiveDisplay() != nil after display Dispose")
	}

	// A new display may be created after the first is gone.
	d2, err := sys.CreateDisplay(320, 240, 1)
	if err != nil {
		t.Fatalf("CreateDisplay() after Dispose error = %v", err)
	}
	if d2.Width() != 320 || d2.Height() != 240 {
		t.Errorf("display size = %dx%d, want 320x240", d2.Width(), d2.Height())
	}
}

func TestCreateDisplayBadMode(t *testing.T) {
	sys := newTestSystem(t)

	_, err := sys.CreateDisplay(0, 0, 1)
	var dce *DisplayCreationError
	if !errors.As(err, &dce) {
		t.Fatalf("CreateDisplay(0, 0, 1) error = %v, want *DisplayCreationError", err)
	}
	if dce.Reason != "mode set" {
		t.Errorf("DisplayCreationError.Reason = %q, want %q", dce.Reason, "mode set")
	}
	if ActiveDisplay() != nil {
		t.Error("failed CreateDisplay left an active display")
	}

	// The failure must not poison the singleton slot.
	d, err := sys.CreateDisplay(100, 100, 1)
	if err != nil {
		t.Fatalf("CreateDisplay() after failure error = %v", err)
	}
	d.Dispose()
}

func TestCreateSurface(t *testing.T) {
	sys := newTestSystem(t)

	surf, err := sys.CreateSurface(17, 9)
	if err != nil {
		t.Fatalf("CreateSurface() error = %v", err)
	}
	defer surf.Dispose()

	if surf.Width() != 17 || surf.Height() != 9 {
		t.Errorf("surface size = %dx%d, want 17x9", surf.Width(), surf.Height())
	}
}

func TestCreateSurfaceInvalid(t *testing.T) {
	sys := newTestSystem(t)

	_, err := sys.CreateSurface(-1, 10)
	var ae *AllocationError
	if !errors.As(err, &ae) {
		t.Fatalf("CreateSurface(-1, 10) error = %v, want *AllocationError", err)
	}
	if ae.Width != -1 || ae.Height != 10 {
		t.Errorf("AllocationError size = %dx%d, want -1x10", ae.Width, ae.Height)
	}
}
