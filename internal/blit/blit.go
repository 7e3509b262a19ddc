// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

// Package blit implements the rectangle operations shared by all
// CPU-addressable framebuffers: plain copy, nearest-neighbor stretch and
// straight-alpha source-over compositing.
package blit

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Clear fills the entire image with the given color.
func Clear(dst *image.RGBA, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Copy copies the w×h rectangle at (sx, sy) in src to (dx, dy) in dst.
// The rectangle is clamped against both images; a fully clamped-away
// rectangle is a no-op. No resampling is performed.
func Copy(dst *image.RGBA, src *image.RGBA, sx, sy, dx, dy, w, h int) {
	srcRect := image.Rect(sx, sy, sx+w, sy+h).Intersect(src.Bounds())
	if srcRect.Empty() {
		return
	}
	// Keep the source and destination offsets in step after clamping.
	dx += srcRect.Min.X - sx
	dy += srcRect.Min.Y - sy
	dstRect := image.Rect(dx, dy, dx+srcRect.Dx(), dy+srcRect.Dy())
	draw.Draw(dst, dstRect, src, srcRect.Min, draw.Src)
}

// Stretch scales all of src onto all of dst with nearest-neighbor sampling.
// It is the presentation path for displays running at scale > 1.
func Stretch(dst *image.RGBA, src *image.RGBA) {
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// Over composites src onto dst at (dx, dy) using source-over alpha
// blending at 1:1 scale.
func Over(dst *image.RGBA, src *image.RGBA, dx, dy int) {
	b := src.Bounds()
	dstRect := image.Rect(dx, dy, dx+b.Dx(), dy+b.Dy())
	draw.Draw(dst, dstRect, src, b.Min, draw.Over)
}
