// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package glfwdriver

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/easelgfx/easel"
	"github.com/easelgfx/easel/driver"
	"github.com/easelgfx/easel/internal/blit"
)

// textureDestroyer is the interface for destroying textures.
// Textures created by gpucontext.TextureCreator implement it.
type textureDestroyer interface {
	Destroy()
}

// presenter uploads the back buffer as a texture and draws it over the
// window. The texture drawer and device come from the host: the backend
// never creates a GPU device of its own.
type presenter struct {
	mu sync.Mutex

	drawer gpucontext.TextureDrawer
	device driver.DeviceHandle

	// texture is the live GPU texture as `any`; oldTexture is the
	// previous one, destroyed only after its replacement exists so the
	// GPU never reads freed memory.
	texture    any
	oldTexture any

	// scratch holds the stretched frame when scale > 1.
	scratch *image.RGBA

	warned bool
}

// SetTextureDrawer wires the GPU drawing surface. Pass nil to detach;
// subsequent presents are then discarded.
func (b *Backend) SetTextureDrawer(dc gpucontext.TextureDrawer) {
	b.presenter.mu.Lock()
	defer b.presenter.mu.Unlock()
	b.presenter.drawer = dc
	b.presenter.warned = false
}

// SetDevice records the host's GPU device.
func (b *Backend) SetDevice(dev driver.DeviceHandle) {
	b.presenter.mu.Lock()
	defer b.presenter.mu.Unlock()
	b.presenter.device = dev
}

// Device returns the host's GPU device, or nil if none was set.
func (b *Backend) Device() driver.DeviceHandle {
	b.presenter.mu.Lock()
	defer b.presenter.mu.Unlock()
	return b.presenter.device
}

// present uploads src and draws it at the window origin. At scale 1 the
// buffer already matches the window; otherwise it is stretched on the CPU
// first, so the texture is always window-sized.
func (p *presenter) present(src *image.RGBA, screenW, screenH, scale int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.drawer == nil {
		if !p.warned {
			p.warned = true
			easel.Logger().Warn("glfwdriver: no texture drawer set, frames discarded")
		}
		return nil
	}

	frame := src
	if scale != 1 {
		if p.scratch == nil || p.scratch.Bounds().Dx() != screenW || p.scratch.Bounds().Dy() != screenH {
			p.scratch = image.NewRGBA(image.Rect(0, 0, screenW, screenH))
		}
		blit.Stretch(p.scratch, src)
		frame = p.scratch
	}

	creator := p.drawer.TextureCreator()
	if creator == nil {
		return fmt.Errorf("glfwdriver: drawer has no texture creator")
	}

	// NewTextureFromRGBA waits for the GPU internally, so once it
	// returns the previous frame's texture is no longer in flight.
	tex, err := creator.NewTextureFromRGBA(frame.Bounds().Dx(), frame.Bounds().Dy(), frame.Pix)
	if err != nil {
		return fmt.Errorf("glfwdriver: texture upload: %w", err)
	}
	p.oldTexture = p.texture
	p.texture = tex
	if p.oldTexture != nil {
		if destroyer, ok := p.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		p.oldTexture = nil
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("glfwdriver: creator returned %T, not a gpucontext.Texture", tex)
	}
	return p.drawer.DrawTexture(gpuTex, 0, 0)
}

// release destroys the cached textures and the scratch frame.
func (p *presenter) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, t := range []any{p.texture, p.oldTexture} {
		if destroyer, ok := t.(textureDestroyer); ok {
			destroyer.Destroy()
		}
	}
	p.texture, p.oldTexture = nil, nil
	p.scratch = nil
}
