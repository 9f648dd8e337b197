package gaze

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/crxxn/FFoveated/internal/media"
)

// PointerFallback is the no-eye-tracker gaze provider: it reads the
// current pointer position and window size and normalizes the pointer
// into [0,1]^2, the way the teacher's input tracker reads
// sdl.GetMouseState for on-screen interaction.
type PointerFallback struct {
	window *sdl.Window
}

// NewPointerFallback builds a fallback provider bound to window, used
// to resolve the pointer position into normalized window coordinates.
func NewPointerFallback(window *sdl.Window) *PointerFallback {
	return &PointerFallback{window: window}
}

// Descriptor returns (mx/W, my/H, 0.3, 20), clamped to [0,1] on the
// coordinates, per spec §4.6's fallback mode.
func (p *PointerFallback) Descriptor() (media.FoveationDescriptor, error) {
	mx, my, _ := sdl.GetMouseState()
	w, h := p.window.GetSize()
	if w == 0 || h == 0 {
		return media.FoveationDescriptor{}, fmt.Errorf("gaze: pointer fallback: zero-sized window")
	}

	return fallbackDescriptor(mx, my, w, h), nil
}

// fallbackDescriptor is the pure coordinate math behind Descriptor,
// split out so it is testable without a real SDL window.
func fallbackDescriptor(mx, my, w, h int32) media.FoveationDescriptor {
	return media.FoveationDescriptor{
		FX:     clamp01(float32(mx) / float32(w)),
		FY:     clamp01(float32(my) / float32(h)),
		Sigma:  0.3,
		Offset: 20,
	}
}
