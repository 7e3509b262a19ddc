// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

//go:build windows

package glfwdriver

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// registerDropCallback is a no-op on Windows: WM_DROPFILES interception
// by the message filter is the sole drop source, so registering GLFW's
// callback as well would deliver every drop twice.
func (b *Backend) registerDropCallback(*glfw.Window) {}

func nativeHandle(win *glfw.Window) uintptr {
	return uintptr(unsafe.Pointer(win.GetWin32Window()))
}
