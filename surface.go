// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package easel

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/easelgfx/easel/driver"
	"github.com/easelgfx/easel/internal/blit"
)

// Surface is a fixed-size pixel buffer allocated by the backend.
//
// A Surface is unlocked by default and grants no drawing capability; Lock
// returns the LockedSurface view that does. Width and height never change
// after construction. A Surface either owns its framebuffer, in which
// case Dispose releases it, or merely borrows one supplied by the caller.
//
// Surfaces are not safe for concurrent use.
type Surface struct {
	fb       driver.Framebuffer
	owned    bool
	locked   bool
	disposed bool
}

// newSurface wraps a framebuffer.
func newSurface(fb driver.Framebuffer, owned bool) *Surface {
	return &Surface{fb: fb, owned: owned}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	w, _ := s.fb.Size()
	return w
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	_, h := s.fb.Size()
	return h
}

// Framebuffer returns the backend buffer behind the surface.
func (s *Surface) Framebuffer() driver.Framebuffer { return s.fb }

// Lock acquires exclusive access and returns the drawing view.
// Every Lock must be paired with Unlock, including on error paths.
// Lock panics on a disposed or already-locked surface: both are contract
// violations in the caller, not runtime conditions.
func (s *Surface) Lock() *LockedSurface {
	if s.disposed {
		panic("easel: Lock on disposed surface")
	}
	if s.locked {
		panic("easel: surface already locked")
	}
	s.locked = true
	return &LockedSurface{s: s}
}

// Dispose releases the surface, freeing the framebuffer only if the
// surface owns it. A second Dispose is a no-op with a warning log; any
// other use after Dispose is forbidden by contract.
func (s *Surface) Dispose() {
	if s.disposed {
		Logger().Warn("easel: surface disposed twice")
		return
	}
	s.disposed = true
	if s.owned {
		s.fb.Release()
	}
}

// LockedSurface is the capability view of a locked Surface. It is valid
// only between Lock and Unlock and must not be retained afterwards.
type LockedSurface struct {
	s *Surface
}

// Unlock releases exclusive access and consumes the view.
func (l *LockedSurface) Unlock() {
	l.s.locked = false
	l.s = nil
}

// Image returns the pixels of the locked surface for direct access.
func (l *LockedSurface) Image() *image.RGBA {
	return l.s.fb.RGBA()
}

// Clear fills the surface with opaque black.
func (l *LockedSurface) Clear() {
	blit.Clear(l.s.fb.RGBA(), color.RGBA{A: 0xff})
}

// BlitTo copies the w×h rectangle at (sx, sy) into dst at (dx, dy).
// Both surfaces must be locked. Out-of-range rectangles are clamped; no
// resampling is performed.
func (l *LockedSurface) BlitTo(dst *LockedSurface, sx, sy, dx, dy, w, h int) {
	blit.Copy(dst.s.fb.RGBA(), l.s.fb.RGBA(), sx, sy, dx, dy, w, h)
}

// DrawAlpha composites src onto this surface at (dx, dy) at 1:1 scale
// using source-over alpha blending.
func (l *LockedSurface) DrawAlpha(src *LockedSurface, dx, dy int) {
	blit.Over(l.s.fb.RGBA(), src.s.fb.RGBA(), dx, dy)
}

// EncodePNG writes the current surface contents as PNG.
func (l *LockedSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, l.s.fb.RGBA())
}
