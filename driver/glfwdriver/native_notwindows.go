// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

//go:build !windows

package glfwdriver

import "github.com/go-gl/glfw/v3.3/glfw"

// registerDropCallback wires GLFW's drop callback; outside Windows it is
// the source of file-drop notifications.
func (b *Backend) registerDropCallback(win *glfw.Window) {
	win.SetDropCallback(func(_ *glfw.Window, names []string) {
		b.dropFiles(names)
	})
}

func nativeHandle(*glfw.Window) uintptr { return 0 }
