// Package nullcodec is a passthrough codec backend: decoded "frames"
// are just the packet bytes relabeled, and encoded "packets" are just
// the frame bytes relabeled. It implements the exact submit/receive
// state machine codec.Decoder and codec.Encoder expect, so it exercises
// the pipeline's concurrency and shutdown logic without linking a real
// codec library.
package nullcodec

import (
	"github.com/crxxn/FFoveated/internal/codec"
	"github.com/crxxn/FFoveated/internal/media"
)

// Decoder is a 1:1 passthrough codec.Decoder.
type Decoder struct {
	width, height int
	timeBase      media.Rational

	pending  *media.Packet
	draining bool
	done     bool
}

// NewDecoder builds a passthrough decoder that reports the given stream
// geometry, as a real decoder would infer from the container.
func NewDecoder(width, height int, timeBase media.Rational) *Decoder {
	return &Decoder{width: width, height: height, timeBase: timeBase}
}

func (d *Decoder) SubmitPacket(pkt *media.Packet) codec.Status {
	if d.done {
		return codec.StatusEndOfStream
	}
	if pkt == nil {
		d.draining = true
		return codec.StatusOK
	}
	d.pending = pkt
	return codec.StatusOK
}

func (d *Decoder) ReceiveFrame(frame *media.Frame) codec.Status {
	if d.pending != nil {
		frame.Data = append(frame.Data[:0], d.pending.Data...)
		frame.Width = d.width
		frame.Height = d.height
		frame.PTS = d.pending.PTS
		frame.Format = media.PixelFormatYUV420P
		frame.SideData = nil
		d.pending = nil
		return codec.StatusOK
	}
	if d.draining {
		d.done = true
		return codec.StatusEndOfStream
	}
	return codec.StatusNeedInput
}

func (d *Decoder) Width() int                 { return d.width }
func (d *Decoder) Height() int                { return d.height }
func (d *Decoder) TimeBase() media.Rational   { return d.timeBase }
func (d *Decoder) Close()                     {}

// Encoder is a 1:1 passthrough codec.Encoder.
type Encoder struct {
	opts codec.Options

	pending  *media.Frame
	draining bool
	done     bool
}

// NewEncoder builds a passthrough encoder parameterized by opts (only
// used for bookkeeping; it has no real quantizer to steer).
func NewEncoder(opts codec.Options) *Encoder {
	return &Encoder{opts: opts}
}

func (e *Encoder) SubmitFrame(frame *media.Frame) codec.Status {
	if e.done {
		return codec.StatusEndOfStream
	}
	if frame == nil {
		e.draining = true
		return codec.StatusOK
	}
	e.pending = frame
	return codec.StatusOK
}

func (e *Encoder) ReceivePacket(pkt *media.Packet) codec.Status {
	if e.pending != nil {
		pkt.Data = append(pkt.Data[:0], e.pending.Data...)
		pkt.PTS = e.pending.PTS
		pkt.KeyFrame = true
		e.pending = nil
		return codec.StatusOK
	}
	if e.draining {
		e.done = true
		return codec.StatusEndOfStream
	}
	return codec.StatusNeedInput
}

func (e *Encoder) Close() {}
