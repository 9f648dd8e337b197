package pipeline

import (
	"fmt"

	"github.com/crxxn/FFoveated/internal/codec"
	"github.com/crxxn/FFoveated/internal/gaze"
	"github.com/crxxn/FFoveated/internal/media"
	"github.com/crxxn/FFoveated/internal/queue"
)

// Encoder attaches a foveation descriptor to every frame it submits to
// the encoder codec and records a lag timestamp alongside it, per
// spec §4.4.
type Encoder struct {
	Enc   codec.Encoder
	Gaze  gaze.Provider
	In    *queue.Bounded[*media.Frame]
	Out   *queue.Bounded[*media.Packet]
	Lag   *queue.Bounded[int64]
	Clock func() int64 // now_monotonic, in microseconds
}

// Run encodes until its input is exhausted or the encoder codec
// reaches end-of-stream, then forwards end-of-stream on both its
// packet and lag queues and closes the codec. Unlike DecodeStage, the
// encoder does not submit a drain frame on the sentinel — it breaks out
// of the loop directly, per spec §4.4's literal algorithm.
func (e *Encoder) Run() error {
	defer func() {
		e.Out.Enqueue(queue.EndOfStream[*media.Packet]())
		e.Lag.Enqueue(queue.EndOfStream[int64]())
		e.Enc.Close()
	}()

	for {
		pkt := &media.Packet{}
		switch status := e.Enc.ReceivePacket(pkt); status {
		case codec.StatusOK:
			e.Out.Enqueue(queue.Payload(pkt))

		case codec.StatusNeedInput:
			msg := e.In.Dequeue()
			if msg.End {
				return nil
			}
			frame := msg.Value

			descriptor, err := e.Gaze.Descriptor()
			if err != nil {
				return fmt.Errorf("encoder: gaze descriptor: %w", err)
			}
			frame.SetSideData(media.SideDataFoveationDescriptor, descriptor.Marshal())

			if st := e.Enc.SubmitFrame(frame); st == codec.StatusInvalid || st == codec.StatusNoMemory {
				return fmt.Errorf("encoder: submit frame: codec reported %s", st)
			}

			e.Lag.Enqueue(queue.Payload(e.Clock()))

		case codec.StatusEndOfStream:
			return nil

		default:
			return fmt.Errorf("encoder: codec reported %s", status)
		}
	}
}
