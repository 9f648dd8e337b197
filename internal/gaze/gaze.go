// Package gaze provides the foveation descriptor source: on each call,
// a fresh (fx, fy, sigma, offset) tuple describing the viewer's current
// point of attention.
package gaze

import "github.com/crxxn/FFoveated/internal/media"

// Provider is the capability the encoder stage pulls a fresh
// FoveationDescriptor from on every submitted frame. The two concrete
// implementations are PointerFallback (mouse position, no eye tracker)
// and WebcamTracker (ET mode).
type Provider interface {
	Descriptor() (media.FoveationDescriptor, error)
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Fixed is a Provider that always returns the same descriptor, used in
// tests and for deterministic end-to-end runs (spec §8 scenario S1).
type Fixed struct {
	Value media.FoveationDescriptor
}

func (f Fixed) Descriptor() (media.FoveationDescriptor, error) {
	return f.Value, nil
}
