// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package glfwdriver

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/easelgfx/easel/driver"
)

// These tests exercise the parts of the backend that do not need a
// window system. Window creation and presentation paths require a real
// display server and are covered by the example programs.

func TestRegistered(t *testing.T) {
	if !available() {
		t.Skip("no window system reachable")
	}
	b := driver.Get(Name)
	if b == nil {
		t.Fatalf("driver.Get(%q) = nil, want backend", Name)
	}
	if b.Name() != Name {
		t.Errorf("Name() = %q, want %q", b.Name(), Name)
	}
}

func TestNewFramebuffer(t *testing.T) {
	b := New()
	fb, err := b.NewFramebuffer(20, 10)
	if err != nil {
		t.Fatalf("NewFramebuffer(20, 10) error = %v", err)
	}
	if w, h := fb.Size(); w != 20 || h != 10 {
		t.Errorf("Size() = %dx%d, want 20x10", w, h)
	}
	if fb.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", fb.Format())
	}
	if fb.RGBA() == nil {
		t.Error("RGBA() = nil")
	}
}

func TestNewFramebufferInvalid(t *testing.T) {
	b := New()
	if _, err := b.NewFramebuffer(0, 10); !errors.Is(err, driver.ErrInvalidDimensions) {
		t.Errorf("NewFramebuffer(0, 10) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestPresentWithoutMode(t *testing.T) {
	b := New()
	fb, err := b.NewFramebuffer(4, 4)
	if err != nil {
		t.Fatalf("NewFramebuffer() error = %v", err)
	}
	if err := b.Present(fb, 1); !errors.Is(err, driver.ErrNoMode) {
		t.Errorf("Present() without mode error = %v, want ErrNoMode", err)
	}
}

func TestSetModeBeforeInit(t *testing.T) {
	b := New()
	err := b.SetMode(driver.ModeOptions{Width: 100, Height: 100})
	if !errors.Is(err, driver.ErrNotInitialized) {
		t.Errorf("SetMode() before Init error = %v, want ErrNotInitialized", err)
	}
}

func TestDeviceRoundTrip(t *testing.T) {
	b := New()
	if b.Device() != nil {
		t.Error("Device() != nil before SetDevice")
	}
	b.SetDevice(nil)
	if b.Device() != nil {
		t.Error("Device() != nil after SetDevice(nil)")
	}
}
