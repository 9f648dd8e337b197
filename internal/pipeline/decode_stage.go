package pipeline

import (
	"fmt"

	"github.com/crxxn/FFoveated/internal/codec"
	"github.com/crxxn/FFoveated/internal/media"
	"github.com/crxxn/FFoveated/internal/queue"
)

// DecodeStage runs the receive-then-feed loop shared by the source
// decoder and the foveation decoder (spec §4.3/§4.5): it is identical
// for both, differing only in which queues and which codec.Decoder it
// is wired to.
type DecodeStage struct {
	Name string
	Dec  codec.Decoder
	In   *queue.Bounded[*media.Packet]
	Out  *queue.Bounded[*media.Frame]
}

// Run decodes until its codec reports end-of-stream, then forwards the
// end-of-stream marker downstream and closes the codec. A non-nil
// return is a fatal codec API violation.
func (s *DecodeStage) Run() error {
	defer func() {
		s.Out.Enqueue(queue.EndOfStream[*media.Frame]())
		s.Dec.Close()
	}()

	for {
		frame := &media.Frame{}
		switch status := s.Dec.ReceiveFrame(frame); status {
		case codec.StatusOK:
			s.Out.Enqueue(queue.Payload(frame))

		case codec.StatusNeedInput:
			msg := s.In.Dequeue()
			var pkt *media.Packet
			if !msg.End {
				pkt = msg.Value
			}
			// A nil packet (the sentinel) activates drain mode; the
			// codec eventually answers every further ReceiveFrame
			// call with StatusEndOfStream.
			if st := s.Dec.SubmitPacket(pkt); st == codec.StatusInvalid || st == codec.StatusNoMemory {
				return fmt.Errorf("%s: submit packet: codec reported %s", s.Name, st)
			}

		case codec.StatusEndOfStream:
			return nil

		default:
			return fmt.Errorf("%s: codec reported %s", s.Name, status)
		}
	}
}
