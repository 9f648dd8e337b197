// Package display consumes the foveation decoder's output frames. The
// pipeline never depends on a display existing — the real-time-pacing
// scenario's capacity-1 out_frm_q only requires *something* drains it.
package display

import "github.com/crxxn/FFoveated/internal/media"

// Sink is what the pipeline's sink goroutine hands every decoded
// frame to.
type Sink interface {
	Show(frame *media.Frame) error
}

// Counting is the headless Sink used whenever FOV_PREVIEW is unset: it
// just counts frames, so a pipeline run never blocks on a display that
// was never asked for.
type Counting struct {
	Count int
}

func (c *Counting) Show(frame *media.Frame) error {
	c.Count++
	return nil
}
