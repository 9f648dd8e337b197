// Package memdemux is an in-memory codec.Demuxer over a fixed packet
// slice, used to exercise the reader and pipeline shutdown logic in
// tests without opening a real container.
package memdemux

import (
	"fmt"
	"io"

	"github.com/crxxn/FFoveated/internal/media"
)

// Demux serves packets from a fixed slice in order, as if it were the
// stream order read off a container. Packets whose StreamIndex does
// not match the selected video stream are left in place for the reader
// to drop, the same way a real demuxer interleaves audio packets.
type Demux struct {
	videoStream int
	packets     []*media.Packet
	idx         int
	closed      bool
}

// New builds a Demux that will report videoStream as the best video
// stream, provided at least one packet carries that stream index.
func New(videoStream int, packets []*media.Packet) *Demux {
	return &Demux{videoStream: videoStream, packets: packets}
}

func (d *Demux) SelectBestVideoStream() (int, error) {
	for _, p := range d.packets {
		if p.StreamIndex == d.videoStream {
			return d.videoStream, nil
		}
	}
	return 0, fmt.Errorf("memdemux: no packets on stream %d", d.videoStream)
}

func (d *Demux) ReadPacket() (*media.Packet, error) {
	if d.idx >= len(d.packets) {
		return nil, io.EOF
	}
	p := d.packets[d.idx]
	d.idx++
	return p, nil
}

func (d *Demux) Close() error {
	d.closed = true
	return nil
}

// Closed reports whether Close has been called, for tests that assert
// the reader releases the demuxer on shutdown.
func (d *Demux) Closed() bool { return d.closed }
