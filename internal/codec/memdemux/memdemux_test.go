package memdemux

import (
	"errors"
	"io"
	"testing"

	"github.com/crxxn/FFoveated/internal/media"
)

func TestDemuxReadsInOrderThenEOF(t *testing.T) {
	packets := []*media.Packet{
		{StreamIndex: 0, PTS: 0},
		{StreamIndex: 0, PTS: 1},
	}
	d := New(0, packets)

	if _, err := d.SelectBestVideoStream(); err != nil {
		t.Fatalf("SelectBestVideoStream: %v", err)
	}
	for i := 0; i < 2; i++ {
		pkt, err := d.ReadPacket()
		if err != nil {
			t.Fatalf("ReadPacket %d: %v", i, err)
		}
		if pkt.PTS != int64(i) {
			t.Fatalf("ReadPacket %d: pts = %d, want %d", i, pkt.PTS, i)
		}
	}
	if _, err := d.ReadPacket(); !errors.Is(err, io.EOF) {
		t.Fatalf("ReadPacket after exhaustion = %v, want io.EOF", err)
	}
}

func TestDemuxSelectBestVideoStreamFailsWithoutAMatch(t *testing.T) {
	d := New(0, []*media.Packet{{StreamIndex: 1}})
	if _, err := d.SelectBestVideoStream(); err == nil {
		t.Fatalf("expected an error when no packet matches the requested stream")
	}
}

func TestDemuxCloseIsObservable(t *testing.T) {
	d := New(0, nil)
	if d.Closed() {
		t.Fatalf("Demux reports closed before Close is called")
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !d.Closed() {
		t.Fatalf("Demux does not report closed after Close")
	}
}
