package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/crxxn/FFoveated/internal/codec"
	"github.com/crxxn/FFoveated/internal/media"
	"github.com/crxxn/FFoveated/internal/queue"
)

// Reader demultiplexes a container and emits its best video stream's
// packets, in file order, onto its output queue. It owns the demuxer
// and closes it once its run loop exits, whether that is a clean
// end-of-stream or a fatal read error.
type Reader struct {
	Demux codec.Demuxer
	Out   *queue.Bounded[*media.Packet]
}

// Run selects the best video stream and forwards its packets until
// end-of-stream, then forwards the end-of-stream marker and closes the
// demuxer. A non-nil return is fatal: configuration errors (no video
// stream) and read errors other than end-of-stream.
func (r *Reader) Run() error {
	defer func() {
		r.Out.Enqueue(queue.EndOfStream[*media.Packet]())
		if err := r.Demux.Close(); err != nil {
			log.Printf("reader: close demuxer: %v", err)
		}
	}()

	streamIndex, err := r.Demux.SelectBestVideoStream()
	if err != nil {
		return fmt.Errorf("reader: %w", err)
	}

	for {
		pkt, err := r.Demux.ReadPacket()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("reader: read packet: %w", err)
		}

		if pkt == nil || len(pkt.Data) == 0 || pkt.StreamIndex != streamIndex {
			// Benign: empty buffer or a non-video packet (e.g. audio).
			continue
		}

		r.Out.Enqueue(queue.Payload(pkt))
	}
}
