package pipeline

import (
	"testing"

	"github.com/crxxn/FFoveated/internal/codec"
	"github.com/crxxn/FFoveated/internal/codec/memdemux"
	"github.com/crxxn/FFoveated/internal/codec/nullcodec"
	"github.com/crxxn/FFoveated/internal/display"
	"github.com/crxxn/FFoveated/internal/gaze"
	"github.com/crxxn/FFoveated/internal/media"
	"github.com/crxxn/FFoveated/internal/report"
)

func TestPipelineRunsEndToEndOverAFixedPacketSequence(t *testing.T) {
	const frameCount = 5
	packets := make([]*media.Packet, frameCount)
	for i := range packets {
		packets[i] = &media.Packet{StreamIndex: 0, Data: []byte{byte(i)}, PTS: int64(i)}
	}

	sink := &display.Counting{}
	reporter := report.New("t.mp4", "", false, 16, func() int64 { return 0 })

	p := New(Config{
		PacketQueueCapacity: 2,
		FrameQueueCapacity:  2,
		Demux:               memdemux.New(0, packets),
		SourceDec:           nullcodec.NewDecoder(16, 9, media.Rational{Num: 1, Den: 30}),
		Enc:                 nullcodec.NewEncoder(codec.DefaultOptions(codec.H264)),
		FovDec:              nullcodec.NewDecoder(16, 9, media.Rational{Num: 1, Den: 30}),
		Gaze:                gaze.Fixed{Value: media.FoveationDescriptor{FX: 0.5, FY: 0.5, Sigma: 0.3, Offset: 20}},
		Sink:                sink,
		Reporter:            reporter,
		Clock:               func() int64 { return 1 },
	})

	if err := p.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if sink.Count != frameCount {
		t.Fatalf("sink saw %d frames, want %d", sink.Count, frameCount)
	}
	if err := reporter.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
}

func TestPipelineReportsReaderFailureWithNoVideoStream(t *testing.T) {
	sink := &display.Counting{}
	reporter := report.New("t.mp4", "", false, 16, func() int64 { return 0 })

	p := New(Config{
		Demux:     memdemux.New(0, []*media.Packet{{StreamIndex: 1}}),
		SourceDec: nullcodec.NewDecoder(16, 9, media.Rational{Num: 1, Den: 30}),
		Enc:       nullcodec.NewEncoder(codec.DefaultOptions(codec.H264)),
		FovDec:    nullcodec.NewDecoder(16, 9, media.Rational{Num: 1, Den: 30}),
		Gaze:      gaze.Fixed{},
		Sink:      sink,
		Reporter:  reporter,
		Clock:     func() int64 { return 1 },
	})

	if err := p.Run(); err == nil {
		t.Fatalf("expected an error when the demuxer has no video stream")
	}
}
