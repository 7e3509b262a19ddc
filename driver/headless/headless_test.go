// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"
	"image/color"
	"testing"

	"github.com/easelgfx/easel/driver"
	"github.com/easelgfx/easel/internal/blit"
)

func newModeBackend(t *testing.T, w, h int) *Backend {
	t.Helper()
	b := New()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	if err := b.SetMode(driver.ModeOptions{Width: w, Height: h}); err != nil {
		t.Fatalf("SetMode() = %v", err)
	}
	t.Cleanup(b.Close)
	return b
}

// TestRegistered tests that the backend self-registers on import.
func TestRegistered(t *testing.T) {
	b := driver.Get(Name)
	if b == nil {
		t.Fatal("driver.Get(headless) = nil, want backend")
	}
	if b.Name() != Name {
		t.Errorf("Name() = %q, want %q", b.Name(), Name)
	}
}

// TestModeLifecycle tests SetMode/ScreenSize/TeardownMode.
func TestModeLifecycle(t *testing.T) {
	b := newModeBackend(t, 640, 480)

	w, h := b.ScreenSize()
	if w != 640 || h != 480 {
		t.Errorf("ScreenSize() = %dx%d, want 640x480", w, h)
	}

	b.TeardownMode()
	if w, h := b.ScreenSize(); w != 0 || h != 0 {
		t.Errorf("ScreenSize() after teardown = %dx%d, want 0x0", w, h)
	}
}

// TestSetModeBeforeInit tests the initialization guard.
func TestSetModeBeforeInit(t *testing.T) {
	b := New()
	err := b.SetMode(driver.ModeOptions{Width: 1, Height: 1})
	if !errors.Is(err, driver.ErrNotInitialized) {
		t.Errorf("SetMode before Init = %v, want ErrNotInitialized", err)
	}
}

// TestPresentCopiesToScreen tests a 1:1 present.
func TestPresentCopiesToScreen(t *testing.T) {
	b := newModeBackend(t, 8, 8)

	fb, err := b.NewFramebuffer(8, 8)
	if err != nil {
		t.Fatalf("NewFramebuffer() = %v", err)
	}
	blit.Clear(fb.RGBA(), color.RGBA{255, 0, 0, 255})

	if err := b.Present(fb, 1); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if got := b.Screen().RGBAAt(4, 4); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("screen pixel = %v, want red", got)
	}
}

// TestPresentStretches tests that scale > 1 covers the whole screen.
func TestPresentStretches(t *testing.T) {
	b := newModeBackend(t, 8, 8)

	fb, err := b.NewFramebuffer(4, 4)
	if err != nil {
		t.Fatalf("NewFramebuffer() = %v", err)
	}
	blit.Clear(fb.RGBA(), color.RGBA{0, 0, 255, 255})

	if err := b.Present(fb, 2); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if got := b.Screen().RGBAAt(7, 7); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("far corner = %v, want blue (stretched)", got)
	}
}

// TestResizeProtocol tests that a simulated resize only takes effect after
// AcknowledgeResize.
func TestResizeProtocol(t *testing.T) {
	b := newModeBackend(t, 100, 100)

	var got driver.ResizeInfo
	b.SetResizeCallback(func(info driver.ResizeInfo) { got = info })

	b.SimulateResize(200, 150, true)
	if got.OldWidth != 100 || got.OldHeight != 100 || !got.FromMaximize {
		t.Errorf("ResizeInfo = %+v, want old 100x100 fromMaximize", got)
	}
	if w, h := b.ScreenSize(); w != 100 || h != 100 {
		t.Errorf("ScreenSize before ack = %dx%d, want 100x100", w, h)
	}

	b.AcknowledgeResize()
	if w, h := b.ScreenSize(); w != 200 || h != 150 {
		t.Errorf("ScreenSize after ack = %dx%d, want 200x150", w, h)
	}
}

// TestSimulatedCallbacks tests switch-in, drop and close delivery.
func TestSimulatedCallbacks(t *testing.T) {
	b := newModeBackend(t, 10, 10)

	switched := false
	b.SetSwitchInCallback(func() { switched = true })
	var dropped []string
	b.SetDropCallback(func(paths []string) { dropped = paths })
	closed := false
	b.SetCloseCallback(func() { closed = true })

	b.SimulateSwitchIn()
	b.SimulateDrop([]string{"/a.png", "/b.png"})
	b.SimulateCloseRequest()

	if !switched {
		t.Error("switch-in callback not invoked")
	}
	if len(dropped) != 2 || dropped[0] != "/a.png" {
		t.Errorf("drop callback got %v, want [/a.png /b.png]", dropped)
	}
	if !closed {
		t.Error("close callback not invoked")
	}
}
