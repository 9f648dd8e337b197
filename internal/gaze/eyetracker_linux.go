//go:build linux

package gaze

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/vladimirvivien/go4vl/device"
	"github.com/vladimirvivien/go4vl/v4l2"

	"github.com/crxxn/FFoveated/internal/media"
)

// WebcamTracker is the ET-mode gaze provider: a V4L2 camera feeds
// frames which are reduced to a gaze estimate by locating the darkest
// region of the frame (a stand-in for pupil detection). The real
// tracker integration is left as an external-API open question, per
// spec §9 — this backend only has to return valid floats on every
// call, which it does regardless of how crude the estimate is.
type WebcamTracker struct {
	dev    *device.Device
	cancel context.CancelFunc
	frames <-chan []byte
}

// NewWebcamTracker opens devicePath as an MJPEG V4L2 capture device at
// width x height and starts streaming.
func NewWebcamTracker(devicePath string, width, height uint32) (*WebcamTracker, error) {
	dev, err := device.Open(devicePath,
		device.WithPixFormat(v4l2.PixFormat{
			PixelFormat: v4l2.PixelFmtMJPEG,
			Width:       width,
			Height:      height,
		}),
		device.WithBufferSize(4),
	)
	if err != nil {
		return nil, fmt.Errorf("gaze: open webcam %s: %w", devicePath, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := dev.Start(ctx); err != nil {
		cancel()
		dev.Close()
		return nil, fmt.Errorf("gaze: start webcam capture: %w", err)
	}

	return &WebcamTracker{dev: dev, cancel: cancel, frames: dev.GetOutput()}, nil
}

// Descriptor blocks for the next camera frame and estimates a gaze
// point from it.
func (t *WebcamTracker) Descriptor() (media.FoveationDescriptor, error) {
	frame, ok := <-t.frames
	if !ok {
		return media.FoveationDescriptor{}, fmt.Errorf("gaze: webcam capture stream closed")
	}

	fx, fy, err := darkestRegionCentroid(frame)
	if err != nil {
		return media.FoveationDescriptor{}, fmt.Errorf("gaze: estimate gaze: %w", err)
	}

	return media.FoveationDescriptor{FX: fx, FY: fy, Sigma: 0.2, Offset: 25}, nil
}

// Close stops capture and releases the device.
func (t *WebcamTracker) Close() error {
	t.cancel()
	return t.dev.Close()
}

// darkestRegionCentroid decodes an MJPEG frame and returns the
// unweighted centroid of the pixels whose luminance lies in the darkest
// quarter of the frame's luminance range (see darknessThreshold),
// normalized to [0,1]^2. A real pupil tracker would replace this with
// actual eye-region detection.
func darkestRegionCentroid(jpegBytes []byte) (fx, fy float32, err error) {
	img, err := jpeg.Decode(bytes.NewReader(jpegBytes))
	if err != nil {
		return 0, 0, fmt.Errorf("decode mjpeg frame: %w", err)
	}

	bounds := img.Bounds()
	threshold := darknessThreshold(img, bounds)

	var sumX, sumY, count int64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if luminance(img, x, y) <= threshold {
				sumX += int64(x)
				sumY += int64(y)
				count++
			}
		}
	}
	if count == 0 {
		// Fall back to the frame's center.
		return 0.5, 0.5, nil
	}

	w := float32(bounds.Dx())
	h := float32(bounds.Dy())
	fx = clamp01(float32(sumX/count) / w)
	fy = clamp01(float32(sumY/count) / h)
	return fx, fy, nil
}

func luminance(img image.Image, x, y int) uint32 {
	r, g, b, _ := img.At(x, y).RGBA()
	return (r*299 + g*587 + b*114) / 1000
}

// darknessThreshold picks the luminance cutoff marking the darkest
// quarter of the frame's dynamic range.
func darknessThreshold(img image.Image, bounds image.Rectangle) uint32 {
	var min, max uint32 = 1<<32 - 1, 0
	const stride = 4
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			l := luminance(img, x, y)
			if l < min {
				min = l
			}
			if l > max {
				max = l
			}
		}
	}
	if max <= min {
		return min
	}
	return min + (max-min)/4
}
