//go:build !linux

package gaze

import (
	"fmt"

	"github.com/crxxn/FFoveated/internal/media"
)

// WebcamTracker is the ET-mode gaze provider on platforms where V4L2
// capture is unavailable. It always fails at construction time.
type WebcamTracker struct{}

// NewWebcamTracker reports that eye tracking requires V4L2, which this
// platform does not have.
func NewWebcamTracker(devicePath string, width, height uint32) (*WebcamTracker, error) {
	return nil, fmt.Errorf("gaze: eye tracking (ET=1) is only supported on linux")
}

func (t *WebcamTracker) Descriptor() (media.FoveationDescriptor, error) {
	return media.FoveationDescriptor{}, fmt.Errorf("gaze: eye tracking is not supported on this platform")
}

func (t *WebcamTracker) Close() error {
	return nil
}
