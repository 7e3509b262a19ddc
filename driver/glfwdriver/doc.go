// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

// Package glfwdriver provides the desktop backend on top of GLFW.
//
// The window is created with ClientAPI NoAPI: the backend owns the window
// and its native notifications, while pixel presentation goes through a
// gpucontext.TextureDrawer supplied by the host via SetTextureDrawer.
// Without a drawer, flips are accepted and discarded so applications can
// run their frame loop before the GPU side is wired up.
//
// GLFW is a main-thread library. Init, SetMode, PollEvents and
// TeardownMode must all be called from the main goroutine, locked to the
// OS thread.
//
// The package registers itself on import:
//
//	import _ "github.com/easelgfx/easel/driver/glfwdriver"
//
// On Windows the backend also implements driver.MessageFilterer: the
// native window procedure is subclassed to intercept WM_DROPFILES, which
// is then the sole source of file-drop notifications. Everywhere else
// drops arrive through GLFW's drop callback.
package glfwdriver
