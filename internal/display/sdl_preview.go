package display

import (
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/crxxn/FFoveated/internal/media"
)

// SDLPreview mirrors the foveation decoder's output to an SDL2 window,
// adapting the teacher's texture-and-letterbox render path to a
// streaming YUV420P texture instead of an RGBA one. It is purely a
// convenience enabled by FOV_PREVIEW — the pipeline never blocks
// waiting for one to exist.
type SDLPreview struct {
	renderer *sdl.Renderer
	window   *sdl.Window

	mu      sync.Mutex
	texture *sdl.Texture
}

// NewSDLPreview opens a window sized to the stream's dimensions.
func NewSDLPreview(width, height int) (*SDLPreview, error) {
	window, renderer, err := sdl.CreateWindowAndRenderer(
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("display: create preview window: %w", err)
	}

	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_IYUV), sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("display: create preview texture: %w", err)
	}

	return &SDLPreview{renderer: renderer, window: window, texture: texture}, nil
}

// Show uploads frame into the preview texture and draws it, letterboxed
// to the window's current size.
func (s *SDLPreview) Show(frame *media.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pitch := frame.Width
	if err := s.texture.Update(nil, frame.Data, pitch); err != nil {
		return fmt.Errorf("display: update preview texture: %w", err)
	}

	winW, winH := s.window.GetSize()
	dst := letterbox(int32(frame.Width), int32(frame.Height), winW, winH)

	s.renderer.Clear()
	if err := s.renderer.Copy(s.texture, nil, &dst); err != nil {
		return fmt.Errorf("display: copy preview frame: %w", err)
	}
	s.renderer.Present()
	return nil
}

// letterbox scales a videoW x videoH rectangle to fit inside
// screenW x screenH while preserving aspect ratio, centered.
func letterbox(videoW, videoH, screenW, screenH int32) sdl.Rect {
	scaleW := float64(screenW) / float64(videoW)
	scaleH := float64(screenH) / float64(videoH)
	scale := scaleW
	if scaleH < scaleW {
		scale = scaleH
	}

	renderW := int32(float64(videoW) * scale)
	renderH := int32(float64(videoH) * scale)

	return sdl.Rect{
		X: (screenW - renderW) / 2,
		Y: (screenH - renderH) / 2,
		W: renderW,
		H: renderH,
	}
}

// Close destroys the texture and window.
func (s *SDLPreview) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.texture != nil {
		s.texture.Destroy()
	}
	return s.window.Destroy()
}

var _ Sink = (*SDLPreview)(nil)
