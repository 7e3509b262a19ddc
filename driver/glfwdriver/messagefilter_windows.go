// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

//go:build windows

package glfwdriver

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/easelgfx/easel/internal/nativestr"
)

const wmDropFiles = 0x0233

// gwlpWndProc is GWLP_WNDPROC (-4) as a uintptr index.
const gwlpWndProc = ^uintptr(3)

var (
	moduser32  = windows.NewLazySystemDLL("user32.dll")
	modshell32 = windows.NewLazySystemDLL("shell32.dll")

	procSetWindowLongPtrW = moduser32.NewProc("SetWindowLongPtrW")
	procCallWindowProcW   = moduser32.NewProc("CallWindowProcW")

	procDragAcceptFiles = modshell32.NewProc("DragAcceptFiles")
	procDragQueryFileW  = modshell32.NewProc("DragQueryFileW")
	procDragFinish      = modshell32.NewProc("DragFinish")
)

// The window procedure has no receiver, so the subclass state is package
// level. Only one filter can be installed at a time, matching the
// one-display process model.
var (
	filterBackend *Backend
	prevWndProc   uintptr
	filterProc    = windows.NewCallback(filterWndProc)
)

// InstallMessageFilter subclasses the native window procedure so drops
// are taken from WM_DROPFILES before GLFW sees them. Implements
// driver.MessageFilterer.
func (b *Backend) InstallMessageFilter() error {
	hwnd := b.NativeWindow()
	if hwnd == 0 {
		return errors.New("glfwdriver: no native window to filter")
	}
	if filterBackend != nil {
		return errors.New("glfwdriver: message filter already installed")
	}

	prev, _, err := procSetWindowLongPtrW.Call(hwnd, gwlpWndProc, filterProc)
	if prev == 0 {
		return err
	}
	prevWndProc = prev
	filterBackend = b
	procDragAcceptFiles.Call(hwnd, 1)
	return nil
}

// RemoveMessageFilter restores the original window procedure.
func (b *Backend) RemoveMessageFilter() {
	if filterBackend != b {
		return
	}
	hwnd := b.NativeWindow()
	if hwnd != 0 && prevWndProc != 0 {
		procSetWindowLongPtrW.Call(hwnd, gwlpWndProc, prevWndProc)
		procDragAcceptFiles.Call(hwnd, 0)
	}
	filterBackend = nil
	prevWndProc = 0
}

// filterWndProc consumes WM_DROPFILES and chains everything else to the
// previous procedure.
func filterWndProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	if msg == wmDropFiles && filterBackend != nil {
		filterBackend.dropFiles(readDrop(wParam))
		return 0
	}
	ret, _, _ := procCallWindowProcW.Call(prevWndProc, hwnd, uintptr(msg), wParam, lParam)
	return ret
}

// readDrop extracts the dropped paths in drop order and releases the
// drop handle.
func readDrop(hDrop uintptr) []string {
	count, _, _ := procDragQueryFileW.Call(hDrop, 0xFFFFFFFF, 0, 0)
	paths := make([]string, 0, count)
	for i := uintptr(0); i < count; i++ {
		length, _, _ := procDragQueryFileW.Call(hDrop, i, 0, 0)
		if length == 0 {
			continue
		}
		buf := make([]uint16, length+1)
		procDragQueryFileW.Call(hDrop, i,
			uintptr(unsafe.Pointer(&buf[0])), length+1)
		paths = append(paths, nativestr.FromUTF16(buf))
	}
	procDragFinish.Call(hDrop)
	return paths
}
